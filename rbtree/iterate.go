package rbtree

import "iter"

// ForEach walks items in index order.
//
// Iteration stops early if fn returns false.
func (t *Tree[V]) ForEach(fn func(index int, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	index := 0
	t.forEachNode(t.root, &index, fn)
}

func (t *Tree[V]) forEachNode(n treeNode[V], index *int, fn func(int, V) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if n.isLeaf() {
		for _, v := range n.(*leafNode[V]).values() {
			if !fn(*index, v) {
				return false
			}
			*index++
		}
		return true
	}
	for _, child := range n.(*innerNode[V]).children {
		if child == nil {
			break
		}
		if !t.forEachNode(child, index, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over index/item pairs in index order.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		t.ForEach(yield)
	}
}

// Values returns a freshly allocated slice of all items.
func (t *Tree[V]) Values() []V {
	out := make([]V, 0, t.Len())
	t.ForEach(func(_ int, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}
