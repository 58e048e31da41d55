package collect

import "github.com/hasbyte1/go-arrayx/arr"

// Shuffle returns the values of target in a uniformly random order. target
// may be a sequence, a mapping or text; the result is always a sequence and
// target is never modified. A non-collection yields an empty sequence.
//
// Randomness comes from the global math/rand/v2 source unless [WithRand]
// supplies another.
func Shuffle(target any, opts ...Option) []any {
	c, ok := Of(target)
	if !ok {
		return []any{}
	}
	return arr.ShuffleWith(values(c), newOptions(opts).rand)
}
