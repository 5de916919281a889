package rbtree

import "fmt"

// At returns the item at index.
func (t *Tree[V]) At(index int) (V, error) {
	var zero V
	if t == nil || index < 0 || index >= t.size {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, t.Len())
	}
	return t.atNode(t.root, t.depth, index), nil
}

func (t *Tree[V]) atNode(n treeNode[V], depth int, index int) V {
	assert(n != nil, "atNode called with nil node")
	assert(depth > 0, "atNode called with non-positive depth")
	if depth == 1 {
		leaf := n.(*leafNode[V])
		assert(index < leaf.n, "atNode index addresses empty leaf slot")
		return leaf.slots[index]
	}
	inner := n.(*innerNode[V])
	slot, rest := t.decompose(index, depth)
	return t.atNode(inner.children[slot], depth-1, rest)
}
