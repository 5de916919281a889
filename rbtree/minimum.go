package rbtree

import "golang.org/x/exp/constraints"

// minimum is the cached aggregate of a subtree.
//
// An unset minimum acts as +infinity: it is the neutral element for add and
// represents an empty subtree.
type minimum[V constraints.Ordered] struct {
	value V
	set   bool
}

func minOf[V constraints.Ordered](v V) minimum[V] {
	return minimum[V]{value: v, set: true}
}

func (m minimum[V]) add(other minimum[V]) minimum[V] {
	if !other.set {
		return m
	}
	if !m.set || other.value < m.value {
		return other
	}
	return m
}

func (m minimum[V]) addValues(values ...V) minimum[V] {
	for _, v := range values {
		m = m.add(minOf(v))
	}
	return m
}

func (m minimum[V]) equals(other minimum[V]) bool {
	if m.set != other.set {
		return false
	}
	return !m.set || m.value == other.value
}
