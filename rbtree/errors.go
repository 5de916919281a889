package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a corrupt tree.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("rbtree: index out of bounds")
	// ErrInvalidRange signals a range with lower bound greater than upper bound.
	ErrInvalidRange = errors.New("rbtree: invalid range")
)
