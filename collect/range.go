package collect

import (
	"math"

	"github.com/hasbyte1/go-arrayx/arr"
)

// Range builds the sequence from from to to inclusive.
//
// When both bounds are numeric-like the result holds float64 values and is
// free of binary rounding drift for fractional steps:
//
//	Range(1, 2, 0.5)   // → []any{1.0, 1.5, 2.0}
//	Range("5", 1)      // → []any{5.0, 4.0, 3.0, 2.0, 1.0}
//
// Otherwise both bounds must be single ASCII letters of the same case, and
// the result holds one-letter strings:
//
//	Range("a", "e")    // → []any{"a", "b", "c", "d", "e"}
//
// step defaults to 1; a step that is not a positive number is treated as 1.
// The direction always follows from and to. Any other input yields an empty
// sequence.
func Range(from, to any, step ...any) []any {
	s := 1.0
	if len(step) > 0 {
		if f, ok := ParseNumericLike(step[0]); ok && f > 0 {
			s = f
		}
	}

	f, fok := ParseNumericLike(from)
	t, tok := ParseNumericLike(to)
	if fok && tok {
		return arr.Map(arr.Range(f, t, s), func(v float64, _ int) any { return v })
	}

	lo, lok := letter(from)
	hi, hok := letter(to)
	if !lok || !hok || isUpper(lo) != isUpper(hi) {
		return []any{}
	}
	codes := arr.Range(float64(lo), float64(hi), s)
	return arr.Map(codes, func(code float64, _ int) any {
		return string(rune(math.Trunc(code)))
	})
}

func letter(v any) (rune, bool) {
	s, ok := v.(string)
	if !ok || len(s) != 1 {
		return 0, false
	}
	r := rune(s[0])
	return r, isUpper(r) || ('a' <= r && r <= 'z')
}

func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
