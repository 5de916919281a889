package rbtree

import "fmt"

// Check validates structural tree invariants:
//   - all leaves are at depth 1, all other nodes are internal,
//   - every node has 2^B slots, occupied slots form a prefix,
//   - every cached minimum equals the minimum of its subtree,
//   - items fill exactly the index range [0, Len()).
//
// Check is intended for tests.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.depth < 1 {
		return fmt.Errorf("%w: depth must be >= 1, is %d", ErrInvalidConfig, t.depth)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidConfig)
	}
	if t.size < 0 || t.size > t.Capacity() {
		return fmt.Errorf("%w: size %d exceeds capacity %d", ErrInvalidConfig, t.size, t.Capacity())
	}
	if t.depth > 1 && t.size <= t.Capacity()>>t.cfg.BranchingBits {
		return fmt.Errorf("%w: size %d fits into a shallower tree of depth %d",
			ErrInvalidConfig, t.size, t.depth)
	}
	items, err := t.checkNode(t.root, t.depth, true)
	if err != nil {
		return err
	}
	if items != t.size {
		return fmt.Errorf("%w: size mismatch (%d items != %d)", ErrInvalidConfig, items, t.size)
	}
	return nil
}

func (t *Tree[V]) checkNode(n treeNode[V], depth int, isRoot bool) (items int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if depth == 1 {
		leaf, ok := n.(*leafNode[V])
		if !ok || leaf == nil {
			return 0, fmt.Errorf("%w: expected leaf at depth 1", ErrInvalidConfig)
		}
		if len(leaf.slots) != t.nodeSize() {
			return 0, fmt.Errorf("%w: leaf has %d slots, expected %d", ErrInvalidConfig, len(leaf.slots), t.nodeSize())
		}
		if leaf.n < 0 || leaf.n > len(leaf.slots) || (leaf.n == 0 && !isRoot) {
			return 0, fmt.Errorf("%w: leaf occupancy %d out of range", ErrInvalidConfig, leaf.n)
		}
		if want := (minimum[V]{}).addValues(leaf.values()...); !want.equals(leaf.agg) {
			return 0, fmt.Errorf("%w: stale leaf minimum", ErrInvalidConfig)
		}
		return leaf.n, nil
	}
	inner, ok := n.(*innerNode[V])
	if !ok || inner == nil {
		return 0, fmt.Errorf("%w: expected internal node at depth %d", ErrInvalidConfig, depth)
	}
	if len(inner.children) != t.nodeSize() {
		return 0, fmt.Errorf("%w: internal node has %d slots, expected %d",
			ErrInvalidConfig, len(inner.children), t.nodeSize())
	}
	occupied := inner.occupied()
	if occupied == 0 {
		return 0, fmt.Errorf("%w: internal node has no children", ErrInvalidConfig)
	}
	for k := occupied; k < len(inner.children); k++ {
		if inner.children[k] != nil {
			return 0, fmt.Errorf("%w: child slot %d occupied after empty slot", ErrInvalidConfig, k)
		}
	}
	subtreeCapacity := 1 << (t.cfg.BranchingBits * (depth - 1))
	var want minimum[V]
	for k, child := range inner.children[:occupied] {
		cnt, err := t.checkNode(child, depth-1, false)
		if err != nil {
			return 0, err
		}
		if k < occupied-1 && cnt != subtreeCapacity {
			return 0, fmt.Errorf("%w: child %d at depth %d is not full (%d of %d items)",
				ErrInvalidConfig, k, depth-1, cnt, subtreeCapacity)
		}
		items += cnt
		want = want.add(child.min())
	}
	if !want.equals(inner.agg) {
		return 0, fmt.Errorf("%w: stale internal minimum at depth %d", ErrInvalidConfig, depth)
	}
	return items, nil
}
