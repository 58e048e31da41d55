package collect_test

import (
	"testing"

	"github.com/hasbyte1/go-arrayx/collect"
)

func makeAny(n int) []any {
	items := make([]any, n)
	for i := range items {
		items[i] = i % 100
	}
	return items
}

func BenchmarkFilter(b *testing.B) {
	items := makeAny(10_000)
	fn := func(v collect.Visit) any { return v.Value.(int)%2 == 0 }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collect.Filter(items, fn)
	}
}

func BenchmarkUnique(b *testing.B) {
	items := makeAny(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collect.Unique(items, false)
	}
}

func BenchmarkMax(b *testing.B) {
	items := makeAny(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collect.Max(items, nil)
	}
}

func BenchmarkRangeDecimal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		collect.Range(0, 100, 0.01)
	}
}
