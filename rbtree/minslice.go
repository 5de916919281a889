package rbtree

import "fmt"

// MinSlice returns the minimum of the items at indices i through j, inclusive.
//
// The query descends the paths to i and j simultaneously. Above the level
// where both paths split, they share one node. Below it, every subtree lying
// between the two paths is fully covered by the range and contributes its
// cached aggregate without being visited. The query thus touches at most
// 2*depth nodes.
func (t *Tree[V]) MinSlice(i, j int) (V, error) {
	var zero V
	if t == nil {
		return zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if i > j {
		return zero, fmt.Errorf("%w: [%d..%d]", ErrInvalidRange, i, j)
	}
	if i < 0 || j >= t.size {
		return zero, fmt.Errorf("%w: range [%d..%d], length %d", ErrIndexOutOfBounds, i, j, t.size)
	}
	if i == 0 && j == t.size-1 {
		return t.root.min().value, nil
	}
	agg := t.minSlice(i, j)
	assert(agg.set, "MinSlice aggregated empty range")
	return agg.value, nil
}

func (t *Tree[V]) minSlice(i, j int) minimum[V] {
	var agg minimum[V]
	iNode, jNode := t.root, t.root
	diverged := false
	for depth := t.depth; depth > 1; depth-- {
		iInner := iNode.(*innerNode[V])
		jInner := jNode.(*innerNode[V])
		iSlot, iRest := t.decompose(i, depth)
		jSlot, jRest := t.decompose(j, depth)
		if !diverged {
			if iSlot != jSlot {
				diverged = true
				// iInner == jInner: children between both slots are covered
				agg = agg.add(t.foldChildren(iInner, iSlot+1, jSlot))
			}
		} else {
			agg = agg.add(t.foldChildren(iInner, iSlot+1, len(iInner.children)))
			agg = agg.add(t.foldChildren(jInner, 0, jSlot))
		}
		iNode, jNode = iInner.children[iSlot], jInner.children[jSlot]
		i, j = iRest, jRest
	}
	iLeaf := iNode.(*leafNode[V])
	jLeaf := jNode.(*leafNode[V])
	if !diverged {
		assert(iLeaf == jLeaf, "undiverged range query must end in a single leaf")
		return agg.addValues(iLeaf.slots[i : j+1]...)
	}
	agg = agg.addValues(iLeaf.values()[i:]...)
	return agg.addValues(jLeaf.slots[:j+1]...)
}

// foldChildren aggregates the children in slots [from, to). Empty slots do
// not contribute.
func (t *Tree[V]) foldChildren(inner *innerNode[V], from, to int) minimum[V] {
	var agg minimum[V]
	for k := from; k < to; k++ {
		if child := inner.children[k]; child != nil {
			agg = agg.add(child.min())
		}
	}
	return agg
}
