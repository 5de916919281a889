package rbtree

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Tree is a persistent radix-balanced tree holding values of an ordered type.
//
// A tree is never modified after it has been returned from an operation.
// Operations which change content return a new tree sharing all unchanged
// subtrees with the receiver.
type Tree[V constraints.Ordered] struct {
	cfg   Config
	root  treeNode[V]
	size  int
	depth int // 1 means the root is a leaf
}

// New creates an empty tree with validated configuration.
func New[V constraints.Ordered](cfg Config) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[V]{cfg: cfg, depth: 1}
	t.root = t.makeLeaf()
	return t, nil
}

// Empty creates an empty tree with default configuration.
func Empty[V constraints.Ordered]() *Tree[V] {
	t, err := New[V](Config{})
	assert(err == nil, "default configuration must be valid")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config {
	if t == nil {
		return Config{}.normalized()
	}
	return t.cfg
}

// Len returns the number of items in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[V]) IsEmpty() bool {
	return t.Len() == 0
}

// Depth returns the tree height in levels, where 1 means a leaf root.
func (t *Tree[V]) Depth() int {
	if t == nil {
		return 1
	}
	return t.depth
}

// Capacity returns the number of items the tree can hold without growing a
// new root, i.e. 2^(B*depth). Capacities exceeding the int range are reported
// as math.MaxInt.
func (t *Tree[V]) Capacity() int {
	if t == nil {
		return Config{}.NodeSize()
	}
	shift := t.cfg.BranchingBits * t.depth
	if shift >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << shift
}

// IsFull reports whether every slot of the current shape is occupied. The
// next append will grow the tree by one level.
func (t *Tree[V]) IsFull() bool {
	return t.Len() == t.Capacity()
}

// Min returns the minimum over all items. The boolean result is false for an
// empty tree.
func (t *Tree[V]) Min() (V, bool) {
	if t == nil || t.root == nil {
		var zero V
		return zero, false
	}
	agg := t.root.min()
	return agg.value, agg.set
}

func (t *Tree[V]) clone() *Tree[V] {
	cloned := *t
	return &cloned
}

// Updated returns a new tree with the item at index replaced by value.
//
// Exactly one root-to-leaf path of nodes is copied; all other nodes are shared
// with the receiver.
func (t *Tree[V]) Updated(index int, value V) (*Tree[V], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.size {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, t.size)
	}
	updated := t.clone()
	updated.root = t.updatedNode(t.root, t.depth, index, value)
	return updated, nil
}

// updatedNode path-copies subtree n, replacing the item at index.
func (t *Tree[V]) updatedNode(n treeNode[V], depth, index int, value V) treeNode[V] {
	assert(n != nil, "updatedNode called with nil node")
	if depth == 1 {
		leaf, ok := n.(*leafNode[V])
		assert(ok, "updatedNode expected leaf at depth 1")
		assert(index < leaf.n, "updatedNode index addresses empty leaf slot")
		cloned := t.cloneLeaf(leaf)
		cloned.slots[index] = value
		t.recomputeLeafMin(cloned)
		return cloned
	}
	inner, ok := n.(*innerNode[V])
	assert(ok, "updatedNode expected internal node")
	slot, rest := t.decompose(index, depth)
	cloned := t.cloneInner(inner)
	cloned.children[slot] = t.updatedNode(inner.children[slot], depth-1, rest, value)
	t.recomputeInnerMin(cloned)
	return cloned
}

// Appended returns a new tree with value added at index Len().
//
// If the receiver is full, the new tree is one level deeper: its root holds
// the old root in slot 0 and a fresh branch for value in slot 1. Appending to
// a nil tree is equivalent to appending to an empty tree with default
// configuration.
func (t *Tree[V]) Appended(value V) *Tree[V] {
	if t == nil {
		t = Empty[V]()
	}
	appended := t.clone()
	appended.size = t.size + 1
	if t.IsFull() {
		appended.root = t.makeInner(t.root, t.createBranch(value, t.depth))
		appended.depth = t.depth + 1
		return appended
	}
	appended.root = t.appendedNode(t.root, t.depth, t.size, value)
	return appended
}

// appendedNode path-copies subtree n, adding value at index. Missing
// branches on the path are created.
func (t *Tree[V]) appendedNode(n treeNode[V], depth, index int, value V) treeNode[V] {
	assert(n != nil, "appendedNode called with nil node")
	if depth == 1 {
		leaf, ok := n.(*leafNode[V])
		assert(ok, "appendedNode expected leaf at depth 1")
		assert(index == leaf.n && index < len(leaf.slots), "appendedNode index is not next free slot")
		cloned := t.cloneLeaf(leaf)
		cloned.slots[index] = value
		cloned.n++
		cloned.agg = cloned.agg.add(minOf(value))
		return cloned
	}
	inner, ok := n.(*innerNode[V])
	assert(ok, "appendedNode expected internal node")
	slot, rest := t.decompose(index, depth)
	cloned := t.cloneInner(inner)
	if child := inner.children[slot]; child != nil {
		cloned.children[slot] = t.appendedNode(child, depth-1, rest, value)
	} else {
		assert(rest == 0, "appendedNode creates branch for non-leftmost index")
		cloned.children[slot] = t.createBranch(value, depth-1)
	}
	t.recomputeInnerMin(cloned)
	return cloned
}
