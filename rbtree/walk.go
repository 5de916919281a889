package rbtree

import "golang.org/x/exp/constraints"

// NodeRef is an opaque handle identifying a tree node. NodeRefs are
// comparable; trees which share a subtree report identical refs for its
// nodes. The zero NodeRef refers to no node.
type NodeRef struct {
	node any
}

// IsZero reports whether r refers to no node.
func (r NodeRef) IsZero() bool {
	return r.node == nil
}

// NodeInfo describes a single node during a Walk.
type NodeInfo[V constraints.Ordered] struct {
	Ref    NodeRef
	Parent NodeRef // zero for the root
	Slot   int     // slot index within the parent
	Level  int     // 1 for leaves, tree depth for the root
	Leaf   bool
	Slots  int  // node fanout 2^B
	Min    V    // cached subtree minimum, valid if HasMin
	HasMin bool // false for an empty subtree
	// Values holds the occupied slots of a leaf. It must not be modified.
	Values []V
	// Children is the number of occupied child slots of an internal node.
	Children int
}

// Walk visits all nodes of the tree in pre-order. Walk stops at the first
// error returned by fn and returns it.
func (t *Tree[V]) Walk(fn func(NodeInfo[V]) error) error {
	if t == nil || t.root == nil || fn == nil {
		return nil
	}
	return t.walkNode(t.root, NodeRef{}, 0, t.depth, fn)
}

func (t *Tree[V]) walkNode(n treeNode[V], parent NodeRef, slot, level int, fn func(NodeInfo[V]) error) error {
	info := NodeInfo[V]{
		Ref:    NodeRef{node: n},
		Parent: parent,
		Slot:   slot,
		Level:  level,
		Leaf:   n.isLeaf(),
		Slots:  t.nodeSize(),
		Min:    n.min().value,
		HasMin: n.min().set,
	}
	if info.Leaf {
		info.Values = n.(*leafNode[V]).values()
		return fn(info)
	}
	inner := n.(*innerNode[V])
	info.Children = inner.occupied()
	if err := fn(info); err != nil {
		return err
	}
	for k, child := range inner.children[:info.Children] {
		if err := t.walkNode(child, info.Ref, k, level-1, fn); err != nil {
			return err
		}
	}
	return nil
}

// SharedNodes counts the nodes of b which are also part of a. For a tree
// derived from a by a single update, this is the number of nodes of a minus
// its depth.
func SharedNodes[V constraints.Ordered](a, b *Tree[V]) int {
	seen := make(map[NodeRef]struct{})
	_ = a.Walk(func(info NodeInfo[V]) error {
		seen[info.Ref] = struct{}{}
		return nil
	})
	shared := 0
	_ = b.Walk(func(info NodeInfo[V]) error {
		if _, ok := seen[info.Ref]; ok {
			shared++
		}
		return nil
	})
	return shared
}
