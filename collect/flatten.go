package collect

// Flatten concatenates every non-sequence leaf of a nested sequence, depth
// first and left to right, into one []any. Text is a leaf, not a sequence.
//
//	Flatten([]any{1, []any{2, []int{3, 4}, 5}}) // → []any{1, 2, 3, 4, 5}
//
// A value that is not a sequence is returned unchanged.
func Flatten(v any) any {
	items, ok := sliceOf(v)
	if !ok {
		return v
	}
	return flattenInto(make([]any, 0, len(items)), items)
}

func flattenInto(out, items []any) []any {
	for _, item := range items {
		if nested, ok := sliceOf(item); ok {
			out = flattenInto(out, nested)
			continue
		}
		out = append(out, item)
	}
	return out
}
