package rbvec

import (
	"github.com/npillmayer/rbvec/rbtree"
)

// Builder incrementally stages numbers and finalizes them into a Vector.
//
// Builder collects values and materializes the vector only when Vector() is
// called.
//
// The empty instance is a valid builder with default branching, but clients
// may use NewBuilder or NewBuilderWithBranching.
type Builder[N Number] struct {
	cfg    rbtree.Config
	values []N

	done  bool
	dirty bool
	vec   Vector[N]
}

// NewBuilder creates a new and empty vector builder with default branching.
func NewBuilder[N Number]() *Builder[N] {
	return &Builder[N]{}
}

// NewBuilderWithBranching creates a new and empty vector builder for vectors
// with 2^branchingBits slots per tree node.
func NewBuilderWithBranching[N Number](branchingBits int) (*Builder[N], error) {
	cfg := rbtree.Config{BranchingBits: branchingBits}
	if _, err := rbtree.New[N](cfg); err != nil {
		return nil, err
	}
	return &Builder[N]{cfg: cfg}, nil
}

// Vector returns the vector built from all staged values.
//
// It is illegal to continue adding values after Vector has been called, but
// Vector may be called multiple times.
func (b *Builder[N]) Vector() Vector[N] {
	if b == nil {
		return Vector[N]{}
	}
	if b.dirty || b.vec.tree == nil {
		b.vec = b.buildVector()
		b.dirty = false
	}
	b.done = true
	if b.vec.IsVoid() {
		T().Debugf("vector builder: vector is void")
	}
	return b.vec
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[N]) Reset() {
	if b == nil {
		return
	}
	b.values = nil
	b.done = false
	b.dirty = false
	b.vec = Vector[N]{}
}

// Append stages values at the end of the build.
func (b *Builder[N]) Append(values ...N) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrVectorCompleted
	}
	if len(values) > 0 {
		b.values = append(b.values, values...)
		b.dirty = true
	}
	return nil
}

// Len returns the number of staged values.
func (b *Builder[N]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.values)
}

func (b *Builder[N]) buildVector() Vector[N] {
	tree, err := rbtree.New[N](b.cfg)
	assert(err == nil, "vector builder: configuration has been validated")
	for _, v := range b.values {
		tree = tree.Appended(v)
	}
	T().Debugf("vector builder: built vector of length %d, depth %d", tree.Len(), tree.Depth())
	return Vector[N]{tree: tree}
}
