package collect

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var numeral = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`)

// ParseNumericLike returns the numeric value of v when v is a finite Go number
// or text consisting solely of a decimal numeral ("3", "-2.5", ".5", "1e3").
// Surrounding whitespace, hex notation, NaN and infinities are rejected.
func ParseNumericLike(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	s, ok := v.(string)
	if !ok || !numeral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsNumericLike reports whether [ParseNumericLike] accepts v.
func IsNumericLike(v any) bool {
	_, ok := ParseNumericLike(v)
	return ok
}

// ToNumber coerces v to a float64 the lenient way: booleans become 0 or 1,
// nil becomes 0, blank text becomes 0, text is trimmed before parsing and
// anything that still is not a number becomes NaN.
func ToNumber(v any) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(t)
		switch s {
		case "":
			return 0
		case "Infinity", "+Infinity":
			return math.Inf(1)
		case "-Infinity":
			return math.Inf(-1)
		}
		if f, ok := ParseNumericLike(s); ok {
			return f
		}
	}
	return math.NaN()
}

// Truthy reports whether v counts as true when a callback result is used as
// a condition: false, nil, zero, NaN and "" are false, everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case nil, bool, string:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
