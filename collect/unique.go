package collect

import "github.com/hasbyte1/go-arrayx/arr"

// Unique removes repeated values from a sequence.
//
// Numeric-like text is replaced by its float64 value before it is compared
// or stored, so "2" and 2 collapse into one entry. Go numbers compare equal
// across types (int 2 equals float64 2). Slices, maps and pointers compare by
// identity. NaN never equals anything, itself included.
//
// By default the first occurrence of each value is kept; with keepLast the
// last one is, and survivors keep their relative order either way.
//
//	Unique([]any{1, "1", 2, 2, "3"}, false) // → []any{1, 2, 3.0}
//	Unique([]any{1, "1", 2}, true)          // → []any{1.0, 2}
//
// A non-sequence yields an empty sequence.
func Unique(array any, keepLast bool) []any {
	items, ok := sliceOf(array)
	if !ok {
		return []any{}
	}
	items = arr.Map(items, func(item any, _ int) any {
		if s, isText := item.(string); isText {
			if f, ok := ParseNumericLike(s); ok {
				return f
			}
		}
		return item
	})

	// Values without a plain value key are grouped by identity: each
	// distinct one gets the index of its first representative.
	var reps []any
	key := func(item any) any {
		if k, ok := hashKey(item); ok {
			return k
		}
		i := InArray(item, reps, 0)
		if i < 0 {
			i = len(reps)
			reps = append(reps, item)
		}
		return identityKey(i)
	}

	if keepLast {
		return arr.UniqueLastBy(items, key)
	}
	return arr.UniqueBy(items, key)
}

// identityKey labels a group of identical non-hashable values.
type identityKey int

// hashKey maps values whose equality is plain value equality onto a map key.
// Numbers share one float64 key space. NaN is hashable but never matches.
func hashKey(v any) (any, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	switch v.(type) {
	case nil, bool, string:
		return v, true
	}
	return nil, false
}
