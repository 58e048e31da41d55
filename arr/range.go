package arr

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is any integer or floating-point type.
type Number interface {
	Integer | Float
}

// MaxDecimals caps the number of fractional digits [Range] scales by.
// Beyond this a scaled float64 can no longer hold the bounds exactly.
const MaxDecimals = 15

// Range returns the values from from to to inclusive, stepping by step.
//
// step is a magnitude: a step <= 0 is treated as 1 and the direction comes
// from comparing from and to. Values are generated upward from the smaller
// bound; when from > to the result is reversed, so it always starts at from.
//
//	Range(1, 5, 1)       // → [1 2 3 4 5]
//	Range(5, 1, 1)       // → [5 4 3 2 1]
//	Range(1.0, 2.0, 0.5) // → [1 1.5 2]
//	Range(10, 1, 4)      // → [9 5 1]
//
// Fractional inputs are scaled by 10^d, where d is the largest number of
// decimal digits among from, to and step, stepped as integers, and divided
// back down per value.
func Range[N Number](from, to, step N) []N {
	if !finite(float64(from)) || !finite(float64(to)) {
		return []N{}
	}
	if step <= 0 || !finite(float64(step)) {
		step = 1
	}
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}

	var out []N
	bits := floatBits[N]()
	digits := max(Decimals(float64(from), bits), Decimals(float64(to), bits), Decimals(float64(step), bits))
	if digits == 0 {
		out = make([]N, 0, rangeLen(float64(lo), float64(hi), float64(step)))
		for v := lo; ; v += step {
			out = append(out, v)
			if lastStep(v, hi, step) {
				break
			}
		}
	} else {
		scale := math.Pow10(digits)
		a := math.Round(float64(lo) * scale)
		b := math.Round(float64(hi) * scale)
		s := max(math.Round(float64(step)*scale), 1)
		out = make([]N, 0, rangeLen(a, b, s))
		for k := a; k <= b; k += s {
			out = append(out, N(k/scale))
		}
	}

	if from > to {
		return Reverse(out)
	}
	return out
}

// Decimals reports how many digits follow the decimal point in the shortest
// representation of f that round-trips at the given bit size (32 or 64).
// The result is capped at [MaxDecimals].
//
//	Decimals(1.25, 64) // → 2
//	Decimals(3, 64)    // → 0
func Decimals(f float64, bitSize int) int {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return min(len(s)-i-1, MaxDecimals)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func floatBits[N Number]() int {
	if reflect.TypeFor[N]().Kind() == reflect.Float32 {
		return 32
	}
	return 64
}

// lastStep reports whether stepping past v would overshoot hi. Integer
// distances are taken in uint64, which stays exact for spans wider than the
// signed range of N.
func lastStep[N Number](v, hi, step N) bool {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Float32, reflect.Float64:
		return float64(hi)-float64(v) < float64(step)
	}
	return uint64(hi)-uint64(v) < uint64(step)
}

func rangeLen(lo, hi, step float64) int {
	n := (hi-lo)/step + 1
	if n < 1 || n > 1<<20 {
		return 0
	}
	return int(n)
}
