package rbtree

import "golang.org/x/exp/constraints"

// treeNode is either a *leafNode or an *innerNode. Depth is not stored in
// nodes; it is tracked by traversals.
type treeNode[V constraints.Ordered] interface {
	isLeaf() bool
	min() minimum[V]
}

type leafNode[V constraints.Ordered] struct {
	agg minimum[V]
	// n is the number of occupied slots; valid values are slots[:n].
	n int
	// slots has length 2^B for every leaf.
	slots []V
}

func (l *leafNode[V]) isLeaf() bool    { return true }
func (l *leafNode[V]) min() minimum[V] { return l.agg }

// values returns the occupied prefix of the slots.
func (l *leafNode[V]) values() []V { return l.slots[:l.n] }

type innerNode[V constraints.Ordered] struct {
	agg minimum[V]
	// children has length 2^B; nil entries are empty slots. Non-empty
	// children always form a prefix.
	children []treeNode[V]
}

func (n *innerNode[V]) isLeaf() bool    { return false }
func (n *innerNode[V]) min() minimum[V] { return n.agg }

// occupied returns the number of non-empty child slots.
func (n *innerNode[V]) occupied() int {
	cnt := 0
	for _, child := range n.children {
		if child == nil {
			break
		}
		cnt++
	}
	return cnt
}
