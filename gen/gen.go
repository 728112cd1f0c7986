package gen

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Gen is a re-invokable producer of random values of type T. A Gen has no
// memory between invocations: its output is a pure function of the Source's
// state at the moment it is called. Callers (the check engine, collection
// builders, OneOf) invoke the same Gen as many times as they need values.
type Gen[T any] func(*Source) T

// Generation errors.
var (
	// ErrUnsupportedType is returned when no generation rule exists for a type.
	ErrUnsupportedType = errors.New("gen: unsupported type")

	// ErrEmptyInput is returned when a combinator is given too little to
	// choose from.
	ErrEmptyInput = errors.New("gen: empty input")
)

// Const returns a generator that always produces v and consumes no entropy.
func Const[T any](v T) Gen[T] {
	return func(*Source) T {
		return v
	}
}

// =============================================================================
// Boolean and Integer Generators
// =============================================================================

// Bool generates true or false with equal probability.
func Bool() Gen[bool] {
	return func(s *Source) bool {
		return s.Bool()
	}
}

// Int generates an int across the full int range.
func Int() Gen[int] {
	return func(s *Source) int {
		return int(s.Uint64())
	}
}

// IntRange generates an int in [min, max] inclusive.
// Panics if min > max.
func IntRange(min, max int) Gen[int] {
	if min > max {
		panic("gen: IntRange min > max")
	}
	return func(s *Source) int {
		return int(int64Between(s, int64(min), int64(max)))
	}
}

// Int64 generates an int64 across the full int64 range.
func Int64() Gen[int64] {
	return func(s *Source) int64 {
		return int64(s.Uint64())
	}
}

// Int64Range generates an int64 in [min, max] inclusive.
// Panics if min > max.
func Int64Range(min, max int64) Gen[int64] {
	if min > max {
		panic("gen: Int64Range min > max")
	}
	return func(s *Source) int64 {
		return int64Between(s, min, max)
	}
}

// Uint64 generates a uint64 across the full uint64 range.
func Uint64() Gen[uint64] {
	return func(s *Source) uint64 {
		return s.Uint64()
	}
}

// Uint64Range generates a uint64 in [min, max] inclusive.
// Panics if min > max.
func Uint64Range(min, max uint64) Gen[uint64] {
	if min > max {
		panic("gen: Uint64Range min > max")
	}
	return func(s *Source) uint64 {
		span := max - min + 1
		if span == 0 { // full range
			return s.Uint64()
		}
		return min + s.uint64n(span)
	}
}

// int64Between returns a uniform int64 in [min, max] inclusive.
// The span is computed in uint64 space so full-width ranges do not overflow.
func int64Between(s *Source, min, max int64) int64 {
	if min == max {
		return min
	}
	span := uint64(max-min) + 1
	if span == 0 { // full int64 range
		return int64(s.Uint64())
	}
	return min + int64(s.uint64n(span))
}

// =============================================================================
// Float Generators
// =============================================================================

// Float64 generates a float64 in [-math.MaxFloat64, math.MaxFloat64].
// Unset bounds fall back to the type's own extremes on both ends; see
// Float64Range for explicit bounds.
func Float64() Gen[float64] {
	return Float64Range(-math.MaxFloat64, math.MaxFloat64)
}

// Float64Range generates a float64 in [min, max].
// Panics if min > max.
func Float64Range(min, max float64) Gen[float64] {
	if min > max {
		panic("gen: Float64Range min > max")
	}
	return func(s *Source) float64 {
		// Interpolated rather than min + f*(max-min): the width of a
		// full-range request overflows to +Inf.
		f := s.Float64()
		return min*(1-f) + max*f
	}
}

// Float32 generates a float32 in [-math.MaxFloat32, math.MaxFloat32].
func Float32() Gen[float32] {
	return Float32Range(-math.MaxFloat32, math.MaxFloat32)
}

// Float32Range generates a float32 in [min, max].
// Panics if min > max.
func Float32Range(min, max float32) Gen[float32] {
	if min > max {
		panic("gen: Float32Range min > max")
	}
	return func(s *Source) float32 {
		f := s.Float64()
		return float32(float64(min)*(1-f) + float64(max)*f)
	}
}

// =============================================================================
// Shape-Dispatched Generation
// =============================================================================

// Of derives a generator for T from the shape of the type, checked in this
// order:
//
//  1. map[K]V: a map of up to DefaultMaxLen insertion trials, keys and
//     values derived recursively. Duplicate keys overwrite, so the map may
//     end up smaller than the trial count.
//  2. []E: a slice of length [0, DefaultMaxLen], elements derived recursively.
//  3. float32/float64: uniform across the type's full range.
//  4. bool: uniform.
//  5. fixed-width integers (signed and unsigned): uniform across the type's
//     intrinsic range.
//
// Any other type fails with ErrUnsupportedType. Explicit bounds are expressed
// with the typed ...Range constructors instead.
func Of[T any]() (Gen[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	g, err := ofType(rt)
	if err != nil {
		return nil, err
	}
	return func(s *Source) T {
		return g(s).Interface().(T)
	}, nil
}

func ofType(rt reflect.Type) (func(*Source) reflect.Value, error) {
	switch rt.Kind() {
	case reflect.Map:
		keyGen, err := ofType(rt.Key())
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		valGen, err := ofType(rt.Elem())
		if err != nil {
			return nil, fmt.Errorf("map value: %w", err)
		}
		return func(s *Source) reflect.Value {
			n := s.Intn(DefaultMaxLen + 1)
			m := reflect.MakeMapWithSize(rt, n)
			for i := 0; i < n; i++ {
				k := keyGen(s)
				m.SetMapIndex(k, valGen(s))
			}
			return m
		}, nil

	case reflect.Slice:
		elemGen, err := ofType(rt.Elem())
		if err != nil {
			return nil, fmt.Errorf("slice element: %w", err)
		}
		return func(s *Source) reflect.Value {
			n := s.Intn(DefaultMaxLen + 1)
			sl := reflect.MakeSlice(rt, n, n)
			for i := 0; i < n; i++ {
				sl.Index(i).Set(elemGen(s))
			}
			return sl
		}, nil

	case reflect.Float32, reflect.Float64:
		g := Float64()
		if rt.Kind() == reflect.Float32 {
			g32 := Float32()
			g = func(s *Source) float64 { return float64(g32(s)) }
		}
		return func(s *Source) reflect.Value {
			v := reflect.New(rt).Elem()
			v.SetFloat(g(s))
			return v
		}, nil

	case reflect.Bool:
		return func(s *Source) reflect.Value {
			v := reflect.New(rt).Elem()
			v.SetBool(s.Bool())
			return v
		}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := rt.Bits()
		return func(s *Source) reflect.Value {
			var n int64
			if bits == 64 {
				n = int64(s.Uint64())
			} else {
				// Draw the type's full width, then shift into the
				// signed range.
				u := s.uint64n(uint64(1) << bits)
				n = int64(u) - (int64(1) << (bits - 1))
			}
			v := reflect.New(rt).Elem()
			v.SetInt(n)
			return v
		}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bits := rt.Bits()
		return func(s *Source) reflect.Value {
			var u uint64
			if bits == 64 {
				u = s.Uint64()
			} else {
				u = s.uint64n(uint64(1) << bits)
			}
			v := reflect.New(rt).Elem()
			v.SetUint(u)
			return v
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rt)
	}
}
