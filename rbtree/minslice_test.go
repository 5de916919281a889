package rbtree

import (
	"math/rand"
	"testing"
)

func bruteForceMin(values []int, i, j int) int {
	m := values[i]
	for _, v := range values[i+1 : j+1] {
		if v < m {
			m = v
		}
	}
	return m
}

func TestMinSliceSameLeafDoesNotLeakOutOfRange(t *testing.T) {
	// With B=2 items 4..7 share a leaf. A query on [5..6] must not see 4 or 7.
	tree := makeIntTree(t, 2, 50, 51, 52, 53, 0, 60, 61, 1)
	got, err := tree.MinSlice(5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
	if got, _ := tree.MinSlice(5, 5); got != 60 {
		t.Fatalf("expected single-item range to yield 60, got %d", got)
	}
}

func TestMinSliceDivergenceExcludesOuterSiblings(t *testing.T) {
	// B=1, depth 4. The range [5..10] diverges at the root; the siblings right
	// of j's leaf and left of i's leaf hold smaller values than the range.
	values := []int{0, 0, 0, 0, 0, 9, 8, 7, 6, 5, 4, 0, 0, 0, 0, 0}
	tree := makeIntTree(t, 1, values...)
	if tree.Depth() != 4 {
		t.Fatalf("expected depth 4, got %d", tree.Depth())
	}
	if got, _ := tree.MinSlice(5, 10); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got, _ := tree.MinSlice(5, 9); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestMinSliceFullRangeUsesRoot(t *testing.T) {
	tree := makeIntTree(t, 3, 12, 5, 33, 7, -2, 19)
	got, err := tree.MinSlice(0, tree.Len()-1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, _ := tree.Min(); got != m || got != -2 {
		t.Fatalf("expected full-range minimum -2, got %d (root %d)", got, m)
	}
}

func TestMinSliceMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for bits := 1; bits <= 4; bits++ {
		for _, n := range []int{1, 2, 3, 7, 16, 17, 65, 200} {
			values := make([]int, n)
			for k := range values {
				values[k] = rnd.Intn(1000) - 500
			}
			tree := makeIntTree(t, bits, values...)
			for i := 0; i < n; i++ {
				for j := i; j < n; j++ {
					got, err := tree.MinSlice(i, j)
					if err != nil {
						t.Fatalf("B=%d n=%d: unexpected error for [%d..%d]: %v", bits, n, i, j, err)
					}
					if want := bruteForceMin(values, i, j); got != want {
						t.Fatalf("B=%d n=%d: MinSlice(%d, %d) = %d, want %d", bits, n, i, j, got, want)
					}
				}
			}
		}
	}
}

func TestMinSliceAfterRandomUpdates(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	values := make([]int, 90)
	for k := range values {
		values[k] = rnd.Intn(100)
	}
	tree := makeIntTree(t, 2, values...)
	base := tree
	baseValues := append([]int(nil), values...)
	for round := 0; round < 300; round++ {
		k := rnd.Intn(len(values))
		v := rnd.Intn(200) - 50
		var err error
		tree, err = tree.Updated(k, v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		values[k] = v
		i := rnd.Intn(len(values))
		j := i + rnd.Intn(len(values)-i)
		if got, _ := tree.MinSlice(i, j); got != bruteForceMin(values, i, j) {
			t.Fatalf("round %d: MinSlice(%d, %d) = %d, want %d", round, i, j, got, bruteForceMin(values, i, j))
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	// the base version must be unaffected by all derived versions
	for k, want := range baseValues {
		if v, _ := base.At(k); v != want {
			t.Fatalf("base version changed at %d: %d != %d", k, v, want)
		}
	}
}
