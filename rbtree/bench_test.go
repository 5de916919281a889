package rbtree

import "testing"

func benchTree(b *testing.B, bits, n int) *Tree[int] {
	tree := makeIntTree(b, bits)
	for i := 0; i < n; i++ {
		tree = tree.Appended(n - i)
	}
	return tree
}

func BenchmarkAppended(b *testing.B) {
	tree := makeIntTree(b, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree = tree.Appended(i)
	}
}

func BenchmarkUpdated(b *testing.B) {
	tree := benchTree(b, 5, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Updated(i&(1<<16-1), i)
	}
}

func BenchmarkMinSlice(b *testing.B) {
	tree := benchTree(b, 5, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := i & (1<<15 - 1)
		_, _ = tree.MinSlice(lo, lo+1<<15)
	}
}
