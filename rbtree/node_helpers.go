package rbtree

// nodeSize returns the fanout 2^B of this tree's nodes.
func (t *Tree[V]) nodeSize() int {
	return 1 << t.cfg.BranchingBits
}

// decompose splits an index into the slot to descend into at the given depth
// and the remaining index to hand to the child.
//
// The index is read as a base-2^B number, most significant digit first. At
// depth 1 the slot is the index itself.
func (t *Tree[V]) decompose(index, depth int) (slot int, rest int) {
	assert(depth > 0, "decompose called with non-positive depth")
	shift := t.cfg.BranchingBits * (depth - 1)
	slot = (index >> shift) & (t.nodeSize() - 1)
	rest = index & ((1 << shift) - 1)
	return slot, rest
}

// makeLeaf materializes a new leaf with values occupying its leftmost slots
// and computes its aggregate.
func (t *Tree[V]) makeLeaf(values ...V) *leafNode[V] {
	assert(len(values) <= t.nodeSize(), "makeLeaf exceeds node capacity")
	leaf := &leafNode[V]{
		slots: make([]V, t.nodeSize()),
		n:     len(values),
	}
	copy(leaf.slots, values)
	t.recomputeLeafMin(leaf)
	return leaf
}

// makeInner materializes a new internal node with children occupying its
// leftmost slots and computes its aggregate from child aggregates.
func (t *Tree[V]) makeInner(children ...treeNode[V]) *innerNode[V] {
	assert(len(children) <= t.nodeSize(), "makeInner exceeds node capacity")
	inner := &innerNode[V]{
		children: make([]treeNode[V], t.nodeSize()),
	}
	copy(inner.children, children)
	t.recomputeInnerMin(inner)
	return inner
}

func (t *Tree[V]) cloneLeaf(leaf *leafNode[V]) *leafNode[V] {
	assert(leaf != nil, "cloneLeaf called with nil leaf")
	cloned := &leafNode[V]{
		agg:   leaf.agg,
		n:     leaf.n,
		slots: make([]V, len(leaf.slots)),
	}
	copy(cloned.slots, leaf.slots)
	return cloned
}

func (t *Tree[V]) cloneInner(inner *innerNode[V]) *innerNode[V] {
	assert(inner != nil, "cloneInner called with nil inner node")
	cloned := &innerNode[V]{
		agg:      inner.agg,
		children: make([]treeNode[V], len(inner.children)),
	}
	copy(cloned.children, inner.children)
	return cloned
}

func (t *Tree[V]) recomputeLeafMin(leaf *leafNode[V]) {
	leaf.agg = minimum[V]{}.addValues(leaf.values()...)
}

// recomputeInnerMin folds the aggregates of all non-empty children. Empty
// slots do not contribute.
func (t *Tree[V]) recomputeInnerMin(inner *innerNode[V]) {
	agg := minimum[V]{}
	for _, child := range inner.children {
		if child != nil {
			agg = agg.add(child.min())
		}
	}
	inner.agg = agg
}

// createBranch builds a fresh chain of nodes from depth down to a leaf, with
// value placed in the leftmost leaf slot.
func (t *Tree[V]) createBranch(value V, depth int) treeNode[V] {
	assert(depth > 0, "createBranch called with non-positive depth")
	if depth == 1 {
		return t.makeLeaf(value)
	}
	return t.makeInner(t.createBranch(value, depth-1))
}
