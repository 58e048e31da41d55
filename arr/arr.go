package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexFrom returns the index of the first element at or after from that
// satisfies fn, or -1. A negative from counts back from the end of items and
// is clamped to 0.
func IndexFrom[T any](items []T, from int, fn func(T) bool) int {
	if from < 0 {
		from = max(0, len(items)+from)
	}
	for i := from; i < len(items); i++ {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce folds items from left to right, starting from initial.
// fn receives the accumulator, the element and the element's index.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceRight folds items from right to left, starting from initial.
// Indices passed to fn are positions in items, so they count down.
func ReduceRight[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i := len(items) - 1; i >= 0; i-- {
		result = fn(result, items[i], i)
	}
	return result
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// UniqueBy returns elements with duplicates removed using a key function.
// The first element producing a given key is kept.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueLastBy is like [UniqueBy] but keeps the last element producing each
// key. Survivors stay in their original relative order.
func UniqueLastBy[T any, K comparable](items []T, fn func(T) K) []T {
	return Reverse(UniqueBy(Reverse(items), fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items via fn.
func Sum[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Product multiplies every element together.
// An empty slice yields 0, not the multiplicative identity.
func Product[N Number](items []N) N {
	if len(items) == 0 {
		return 0
	}
	result := N(1)
	for _, n := range items {
		result *= n
	}
	return result
}

// Best returns the element that wins every comparison against the running
// winner. better(candidate, current) must report a strict improvement, so ties
// keep the earliest element. Returns the zero value and false if items is empty.
func Best[T any](items []T, better func(candidate, current T) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if better(item, best) {
			best = item
		}
	}
	return best, true
}
