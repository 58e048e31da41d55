// Package collect provides loosely typed collection algorithms that dispatch on
// the kind of container they are given and, where it makes sense, hand back a
// result of the same kind.
//
// # Container kinds
//
// Three container kinds are recognised (see [Classify] and [Of]):
//
//   - sequence: []any, or any other Go slice or array
//   - mapping: *[OrderedMap] (insertion ordered), or map[string]V (sorted key order)
//   - text: string, visited one character at a time
//
// [Filter] and [Map] never change the kind: filtering a string yields a
// string, mapping a *OrderedMap yields a *OrderedMap.
//
//	collect.Filter([]any{1, 2, 3, 4}, func(v collect.Visit) any {
//	    return collect.ToNumber(v.Value) > 2
//	}) // → []any{3, 4}
//
//	collect.Map("abc", func(v collect.Visit) any {
//	    return strings.ToUpper(v.Value.(string))
//	}) // → "ABC"
//
// # Numeric coercion
//
// Text that consists solely of a numeral is "numeric-like". Coercion happens
// only at explicit points: [ParseNumericLike] (strict, used by [Unique],
// [Product] and [Range]) and [ToNumber] (lenient, used by [Sum] and by
// [Max]/[Min] comparisons).
//
// # Sentinels instead of errors
//
// Malformed input degrades to a documented sentinel rather than an error:
// NaN from [Sum], ±Inf from [Max]/[Min], nil from [Filter]/[Map] and an empty
// sequence from [Range]. [Reduce] returns an error because folding an empty
// sequence without a seed has no result at all.
//
// Panics raised inside callbacks are never recovered; they abort the
// traversal and reach the caller unchanged.
//
// # Named handlers
//
// [Default] returns a [Registry] exposing every operation under a name with
// an argument validator and a fallback value, for hosts that dispatch calls
// by name with positional arguments.
package collect
