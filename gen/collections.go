package gen

// DefaultMaxLen caps the size of generated collections when no explicit cap
// is given, bounding generation cost.
const DefaultMaxLen = 1000

// =============================================================================
// Collection Generators
// =============================================================================

// SliceOf generates a slice of length [0, maxLen] inclusive, invoking elem
// once per slot. Generated elements are independent; nothing is shared
// between slots. A negative maxLen means DefaultMaxLen.
func SliceOf[T any](maxLen int, elem Gen[T]) Gen[[]T] {
	if maxLen < 0 {
		maxLen = DefaultMaxLen
	}
	return func(s *Source) []T {
		return sliceOfLen(s, s.Intn(maxLen+1), elem)
	}
}

// SliceOfN generates a slice of exactly n elements; the length is never
// randomized. Panics if n < 0.
func SliceOfN[T any](n int, elem Gen[T]) Gen[[]T] {
	if n < 0 {
		panic("gen: SliceOfN n < 0")
	}
	return func(s *Source) []T {
		return sliceOfLen(s, n, elem)
	}
}

func sliceOfLen[T any](s *Source, n int, elem Gen[T]) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = elem(s)
	}
	return out
}

// MapOf generates a map by drawing an insertion count uniformly from
// [0, maxLen] and inserting a fresh key/value pair that many times.
// Duplicate keys overwrite, so the final size may be smaller than the drawn
// count; with a small key domain (boolean keys, say) the map saturates at
// the domain size no matter how large maxLen is. A negative maxLen means
// DefaultMaxLen.
func MapOf[K comparable, V any](maxLen int, key Gen[K], val Gen[V]) Gen[map[K]V] {
	if maxLen < 0 {
		maxLen = DefaultMaxLen
	}
	return func(s *Source) map[K]V {
		n := s.Intn(maxLen + 1)
		out := make(map[K]V, n)
		for i := 0; i < n; i++ {
			out[key(s)] = val(s)
		}
		return out
	}
}

// Sample invokes g exactly n times against src and returns the results in
// invocation order. Unlike SliceOf the count is never randomized, which
// makes it handy for printing illustrative value sets.
func Sample[T any](src *Source, n int, g Gen[T]) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g(src))
	}
	return out
}
