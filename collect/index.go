package collect

import "github.com/hasbyte1/go-arrayx/arr"

// InArray returns the position of the first element of array equal to
// element at or after from, or -1. A negative from counts back from the end.
// Equality is by value for numbers, strings and booleans and by identity for
// slices, maps and pointers; no numeric-text coercion is applied.
//
// A non-sequence array yields -1.
func InArray(element, array any, from int) int {
	items, ok := sliceOf(array)
	if !ok {
		return -1
	}
	return arr.IndexFrom(items, from, func(v any) bool { return strictEqual(v, element) })
}
