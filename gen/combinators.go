package gen

import "fmt"

// =============================================================================
// Selection Combinators
// =============================================================================

// Choose returns a generator that picks a uniformly random element of values
// on each invocation. Fails with ErrEmptyInput if values is empty. The slice
// is not copied; callers must not mutate it while the generator is in use.
func Choose[T any](values []T) (Gen[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: Choose needs a non-empty sequence", ErrEmptyInput)
	}
	return func(s *Source) T {
		return values[s.Intn(len(values))]
	}, nil
}

// OneOf returns a generator that draws from one of at least two candidate
// generators, chosen uniformly at random.
//
// Every candidate is invoked on every draw, consuming entropy (and running
// any side effects) from each of them before the selection happens; only the
// selected value is returned. Replaying a seed therefore reproduces the
// entropy consumed by the discarded candidates too.
func OneOf[T any](gens ...Gen[T]) (Gen[T], error) {
	if len(gens) < 2 {
		return nil, fmt.Errorf("%w: OneOf needs at least two generators, got %d", ErrEmptyInput, len(gens))
	}
	return func(s *Source) T {
		results := make([]T, len(gens))
		for i, g := range gens {
			results[i] = g(s)
		}
		return results[s.Intn(len(results))]
	}, nil
}

// Transform invokes g exactly once per draw and applies f to the result.
func Transform[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(s *Source) U {
		return f(g(s))
	}
}

// Filter draws from g until pred accepts a value, retrying at most
// maxRetries times per draw. Panics when the retries are exhausted; keep
// predicates loose.
func Filter[T any](g Gen[T], pred func(T) bool, maxRetries int) Gen[T] {
	return func(s *Source) T {
		for i := 0; i < maxRetries; i++ {
			v := g(s)
			if pred(v) {
				return v
			}
		}
		panic("gen: Filter exhausted retries without a matching value")
	}
}
