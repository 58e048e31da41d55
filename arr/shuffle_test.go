package arr_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/hasbyte1/go-arrayx/arr"
)

// randFunc adapts a plain function to arr.Rand.
type randFunc func(n int) int

func (f randFunc) IntN(n int) int { return f(n) }

func TestShuffleWithAlwaysFront(t *testing.T) {
	// Every draw picks slot 0, so each new element goes to the front and the
	// previous front moves to the end.
	got := arr.ShuffleWith([]int{1, 2, 3, 4}, randFunc(func(int) int { return 0 }))
	assertSlice(t, got, []int{4, 1, 2, 3})
}

func TestShuffleWithAlwaysLast(t *testing.T) {
	got := arr.ShuffleWith([]int{1, 2, 3, 4}, randFunc(func(n int) int { return n - 1 }))
	assertSlice(t, got, []int{1, 2, 3, 4})
}

func TestShuffleWithBounds(t *testing.T) {
	var bounds []int
	arr.ShuffleWith([]string{"a", "b", "c"}, randFunc(func(n int) int {
		bounds = append(bounds, n)
		return 0
	}))
	assertSlice(t, bounds, []int{1, 2, 3})
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []int{5, 3, 3, 1, 9, 7}
	got := arr.Shuffle(in)
	if len(got) != len(in) {
		t.Fatalf("len = %d; want %d", len(got), len(in))
	}
	sortedIn := slices.Clone(in)
	slices.Sort(sortedIn)
	slices.Sort(got)
	assertSlice(t, got, sortedIn)
	assertSlice(t, in, []int{5, 3, 3, 1, 9, 7})
}

func TestShuffleEmpty(t *testing.T) {
	if got := arr.Shuffle([]int{}); len(got) != 0 {
		t.Fatalf("Shuffle(empty) = %v", got)
	}
}

func TestShuffleWithNilPointerRand(t *testing.T) {
	got := arr.ShuffleWith([]int{1, 2, 3}, (*rand.Rand)(nil))
	slices.Sort(got)
	assertSlice(t, got, []int{1, 2, 3})
}
