package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-lite/arr"
)

// makeInts creates a []int of size n with every value repeated twice.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i / 2
	}
	return items
}

func BenchmarkChunk(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Chunk(items, 64)
	}
}

func BenchmarkUniq(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Uniq(items)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.GroupBy(items, func(n int) int { return n % 10 })
	}
}

func BenchmarkFlatten(b *testing.B) {
	nested := make([]any, 1_000)
	for i := range nested {
		nested[i] = []any{i, i + 1, []any{i + 2}}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Flatten(nested)
	}
}
