package collect

import "github.com/hasbyte1/go-arrayx/arr"

// ReduceFunc is the callback used by [Reduce]. It receives the accumulator,
// the current element, the element's index and the sequence being reduced,
// and returns the next accumulator.
type ReduceFunc func(acc, value any, index int, array any) any

// Optional marks a value that may be absent. Absent is distinct from a
// present nil.
type Optional struct {
	value any
	ok    bool
}

// Some returns a present Optional holding v.
func Some(v any) Optional { return Optional{value: v, ok: true} }

// None returns an absent Optional.
func None() Optional { return Optional{} }

// Get returns the held value and whether it is present.
func (o Optional) Get() (any, bool) { return o.value, o.ok }

// Reduce folds a sequence into a single value, left to right, or right to
// left when fromRight is set.
//
// With a seed, the fold starts from it and visits every element. Without
// one, the first element (the last when folding rightward) becomes the
// accumulator and the fold starts from its neighbour; a one-element sequence
// therefore returns that element without calling fn.
//
// Errors: [ErrNotSequence] for a non-sequence array, [ErrNilCallback] for a
// nil fn and [ErrEmptyCollection] for an empty sequence without a seed.
func Reduce(array any, fn ReduceFunc, seed Optional, fromRight bool) (any, error) {
	if Classify(array) != KindSequence {
		return nil, ErrNotSequence
	}
	if fn == nil {
		return nil, ErrNilCallback
	}
	items, _ := sliceOf(array)

	acc, hasSeed := seed.Get()
	offset := 0
	if !hasSeed {
		if len(items) == 0 {
			return nil, ErrEmptyCollection
		}
		if fromRight {
			acc, items = items[len(items)-1], items[:len(items)-1]
		} else {
			acc, items, offset = items[0], items[1:], 1
		}
	}

	step := func(acc any, value any, i int) any {
		return fn(acc, value, i+offset, array)
	}
	if fromRight {
		return arr.ReduceRight(items, step, acc), nil
	}
	return arr.Reduce(items, step, acc), nil
}
