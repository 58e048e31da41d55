package collect

import (
	"cmp"
	"math"
	"strings"

	"github.com/hasbyte1/go-arrayx/arr"
)

// Sum adds up the values of a sequence or mapping after coercing each with
// [ToNumber]. An element that does not coerce turns the total into NaN.
// Sum returns NaN when collection is neither a sequence nor a mapping.
//
//	Sum([]any{1, "2", 3})               // → 6
//	Sum(map[string]any{"a": 1, "b": 2}) // → 3
//	Sum([]any{1, "x"})                  // → NaN
func Sum(collection any) float64 {
	c, ok := Of(collection)
	if !ok || c.Kind() == KindText {
		return math.NaN()
	}
	return arr.Sum(values(c), ToNumber)
}

// Product multiplies the numeric-like elements of a sequence or mapping,
// skipping every other element. It returns 0 when no element is
// numeric-like.
//
//	Product([]any{2, "x", "3"}) // → 6
//	Product([]any{"x"})         // → 0
func Product(array any) float64 {
	c, ok := Of(array)
	if !ok || c.Kind() == KindText {
		return 0
	}
	var nums []float64
	c.Each(func(v, _ any) {
		if f, ok := ParseNumericLike(v); ok {
			nums = append(nums, f)
		}
	})
	return arr.Product(nums)
}

// Max returns the element of a sequence or mapping whose projection is the
// greatest. The projection is fn's result, or the element itself when fn is
// nil. Ties keep the first element seen.
//
// Max returns math.Inf(-1) when target is not a sequence or mapping, or when
// no projection compares greater than it; callers treat that as "no result".
// The input is never modified.
func Max(target any, fn Iteratee, opts ...Option) any {
	return extremum(math.Inf(-1), 1, target, fn, opts)
}

// Min is the counterpart of [Max]. Its "no result" sentinel is math.Inf(1).
func Min(target any, fn Iteratee, opts ...Option) any {
	return extremum(math.Inf(1), -1, target, fn, opts)
}

// aggregate pairs an element with its projection.
type aggregate struct {
	value    any
	computed any
}

func extremum(initial float64, sign int, target any, fn Iteratee, opts []Option) any {
	c, ok := Of(target)
	if !ok || c.Kind() == KindText {
		return initial
	}
	o := newOptions(opts)

	candidates := make([]aggregate, 0, c.Len()+1)
	candidates = append(candidates, aggregate{value: initial, computed: initial})
	c.Each(func(value, key any) {
		computed := value
		if fn != nil {
			computed = fn(Visit{Value: value, Key: key, Container: target, Context: o.context})
		}
		candidates = append(candidates, aggregate{value: value, computed: computed})
	})

	best, _ := arr.Best(candidates, func(cand, cur aggregate) bool {
		order, ok := compare(cand.computed, cur.computed)
		return ok && order == sign
	})
	return best.value
}

// compare orders two projections. Two strings compare lexically; anything
// else compares numerically after [ToNumber]. ok is false when either side is
// NaN, so such projections never win.
func compare(a, b any) (order int, ok bool) {
	if x, isStr := a.(string); isStr {
		if y, isStr := b.(string); isStr {
			return strings.Compare(x, y), true
		}
	}
	x, y := ToNumber(a), ToNumber(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	return cmp.Compare(x, y), true
}
