// Package arr provides standalone, statically typed algorithms over plain Go
// slices: numeric ranges, folds, deduplication, shuffling and aggregation.
//
// All helpers are generic and operate on []T values directly, with no wrapper
// type required:
//
//	arr.Range(1.0, 2.0, 0.25)                // → [1 1.25 1.5 1.75 2]
//	arr.Range(5, 1, 2)                       // → [5 3 1]
//	arr.ReduceRight([]string{"a", "b"},
//	    func(acc, s string, _ int) string { return acc + s }, "") // → "ba"
//	arr.Shuffle([]int{1, 2, 3, 4})
//
// # Decimal ranges
//
// [Range] scales fractional bounds and steps to integers before stepping, so
// stepping by 0.1 ten times lands exactly on 1 rather than accumulating binary
// floating-point drift.
//
// # Randomness
//
// [Shuffle] draws from the goroutine-safe global source of math/rand/v2.
// [ShuffleWith] accepts any [Rand]; a *rand.Rand built over a seeded source
// (see the random package) gives reproducible permutations.
//
// The dynamically typed operations in the collect package are built on top of
// these helpers.
package arr
