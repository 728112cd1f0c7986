// Package sorting is the example algorithm exercised by the propq demo:
// a hand-written merge sort whose correctness is stated as properties.
package sorting

// Ints returns a sorted copy of xs in ascending order. The input is not
// modified.
func Ints(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	if len(out) < 2 {
		return out
	}

	mid := len(out) / 2
	left := Ints(out[:mid])
	right := Ints(out[mid:])
	return merge(left, right)
}

func merge(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// IsSorted reports whether xs is in ascending order.
func IsSorted(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}

// SameElements reports whether xs and ys contain the same values with the
// same multiplicities.
func SameElements(xs, ys []int) bool {
	if len(xs) != len(ys) {
		return false
	}
	counts := make(map[int]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	for _, y := range ys {
		counts[y]--
		if counts[y] < 0 {
			return false
		}
	}
	return true
}
