package rbvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/rbvec/rbtree"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Vector may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is a persistent sequence of numbers, stored in a radix-balanced tree
// which caches subtree minima.
//
// A vector created by
//
//	Vector[int]{}
//
// is a valid object and behaves like an empty vector with default branching.
//
// Vectors are values. Methods never modify the receiver; operations which
// change content return a new vector. Old and new versions share structure
// and may be used concurrently.
//
// Vectors of floating point numbers should not hold NaN; minimum queries over
// ranges containing NaN are unspecified.
type Vector[N Number] struct {
	tree *rbtree.Tree[N]
}

// Empty returns an empty vector with default branching.
func Empty[N Number]() Vector[N] {
	return Vector[N]{}
}

// NewVector creates an empty vector whose tree nodes have 2^branchingBits
// slots. branchingBits = 0 selects the default.
func NewVector[N Number](branchingBits int) (Vector[N], error) {
	tree, err := rbtree.New[N](rbtree.Config{BranchingBits: branchingBits})
	if err != nil {
		return Vector[N]{}, err
	}
	return Vector[N]{tree: tree}, nil
}

// FromSlice creates a vector with default branching holding values in order.
func FromSlice[N Number](values ...N) Vector[N] {
	b := NewBuilder[N]()
	err := b.Append(values...)
	assert(err == nil, "FromSlice: fresh builder rejected values")
	return b.Vector()
}

func treeFromVector[N Number](v Vector[N]) *rbtree.Tree[N] {
	if v.tree != nil {
		return v.tree
	}
	return rbtree.Empty[N]()
}

// Len returns the number of elements.
func (v Vector[N]) Len() int {
	return v.tree.Len()
}

// IsVoid reports whether the vector has no elements.
func (v Vector[N]) IsVoid() bool {
	return v.tree.IsEmpty()
}

// Depth returns the height of the vector's tree, where 1 means a single leaf.
func (v Vector[N]) Depth() int {
	return v.tree.Depth()
}

// IsFull reports whether the next append will grow the tree by one level.
func (v Vector[N]) IsFull() bool {
	return treeFromVector(v).IsFull()
}

// BranchingBits returns B, the number of index bits per tree level.
func (v Vector[N]) BranchingBits() int {
	return v.tree.Config().BranchingBits
}

// Get returns the element at index.
func (v Vector[N]) Get(index int) (N, error) {
	return treeFromVector(v).At(index)
}

// Updated returns a new vector with the element at index replaced by value.
func (v Vector[N]) Updated(index int, value N) (Vector[N], error) {
	tree, err := treeFromVector(v).Updated(index, value)
	if err != nil {
		return v, err
	}
	return Vector[N]{tree: tree}, nil
}

// Appended returns a new vector with value added at the end.
func (v Vector[N]) Appended(value N) Vector[N] {
	before := treeFromVector(v)
	tree := before.Appended(value)
	if tree.Depth() > before.Depth() {
		T().Debugf("vector grows to depth %d at length %d", tree.Depth(), tree.Len())
	}
	return Vector[N]{tree: tree}
}

// MinSlice returns the smallest element at positions i through j, inclusive.
func (v Vector[N]) MinSlice(i, j int) (N, error) {
	return treeFromVector(v).MinSlice(i, j)
}

// Min returns the smallest element of the vector. The boolean result is false
// for an empty vector.
func (v Vector[N]) Min() (N, bool) {
	return v.tree.Min()
}

// Values returns all elements as a freshly allocated slice.
func (v Vector[N]) Values() []N {
	return v.tree.Values()
}

// All returns an iterator over position/element pairs in order.
func (v Vector[N]) All() iter.Seq2[int, N] {
	return v.tree.All()
}

// String returns the elements in the format of fmt's %v for slices.
func (v Vector[N]) String() string {
	return fmt.Sprint(v.Values())
}
