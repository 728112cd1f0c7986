package gen

import "testing"

func TestSliceOfNExactLength(t *testing.T) {
	src := NewSource(11)
	g := SliceOfN(5, IntRange(0, 9))
	for i := 0; i < 100; i++ {
		if xs := g(src); len(xs) != 5 {
			t.Fatalf("SliceOfN(5) produced length %d", len(xs))
		}
	}
}

func TestSliceOfNZero(t *testing.T) {
	src := NewSource(11)
	g := SliceOfN(0, Bool())
	if xs := g(src); len(xs) != 0 {
		t.Fatalf("SliceOfN(0) produced length %d", len(xs))
	}
}

func TestSliceOfLengthBounds(t *testing.T) {
	src := NewSource(12)
	g := SliceOf(10, IntRange(0, 9))

	lengths := map[int]bool{}
	for i := 0; i < 500; i++ {
		xs := g(src)
		if len(xs) > 10 {
			t.Fatalf("SliceOf(10) produced length %d", len(xs))
		}
		lengths[len(xs)] = true
	}

	// Length is drawn uniformly from [0, 10]; in 500 draws every length
	// should show up.
	for want := 0; want <= 10; want++ {
		if !lengths[want] {
			t.Errorf("length %d never produced in 500 draws", want)
		}
	}
}

func TestSliceOfElementsIndependent(t *testing.T) {
	src := NewSource(13)
	g := SliceOfN(50, IntRange(0, 1_000_000))

	xs := g(src)
	allSame := true
	for _, x := range xs[1:] {
		if x != xs[0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("all 50 elements identical; element generator not re-invoked per slot")
	}
}

func TestMapOfBoolKeysSaturateAtTwo(t *testing.T) {
	src := NewSource(14)
	g := MapOf(100, Bool(), IntRange(0, 9))
	for i := 0; i < 200; i++ {
		if m := g(src); len(m) > 2 {
			t.Fatalf("bool-keyed map has %d entries", len(m))
		}
	}
}

func TestMapOfSizeBounds(t *testing.T) {
	src := NewSource(15)
	g := MapOf(8, IntRange(0, 1_000_000), Bool())
	for i := 0; i < 200; i++ {
		if m := g(src); len(m) > 8 {
			t.Fatalf("MapOf(8) produced %d entries", len(m))
		}
	}
}

func TestSampleCountAndOrder(t *testing.T) {
	src := NewSource(16)

	// A stateful producer makes invocation order observable.
	next := 0
	counter := func(*Source) int {
		n := next
		next++
		return n
	}

	got := Sample(src, 6, Gen[int](counter))
	if len(got) != 6 {
		t.Fatalf("Sample returned %d values, want 6", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("result %d = %d; values not in invocation order", i, v)
		}
	}
}
