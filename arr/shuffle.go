package arr

import (
	"math/rand/v2"
	"reflect"
)

// Rand is the random source consumed by [ShuffleWith].
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a randomly shuffled copy of items using the global
// math/rand/v2 source, which is safe for concurrent use.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, globalRand{})
}

// ShuffleWith returns a randomly shuffled copy of items drawing from r.
// A nil r, including a nil pointer wrapped in the interface, falls back to
// the global source.
//
// The copy is built in a single pass with the inside-out variant of
// Fisher–Yates: the i-th element lands on a random slot j in [0, i] and
// whatever held j moves to i.
func ShuffleWith[T any](items []T, r Rand) []T {
	if isNil(r) {
		r = globalRand{}
	}
	out := make([]T, len(items))
	for i, item := range items {
		j := r.IntN(i + 1)
		out[i] = out[j]
		out[j] = item
	}
	return out
}

func isNil(r Rand) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
