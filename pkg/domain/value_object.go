// Package domain holds the shared domain kernel: the small capabilities every
// bounded context's model building blocks have in common. It depends on
// nothing outside the standard library so context packages can embed it
// without dragging in infrastructure.
package domain

// ValueObject is implemented by immutable types whose identity is their
// content. Components returns the comparable parts of the value in their
// declared field order; the slice must be rebuilt on each call, never stored.
type ValueObject interface {
	Components() []any
}

// Equal reports whether two value objects are equal by comparing their
// components pairwise in declared order. Values of different component
// lengths are never equal.
func Equal(a, b ValueObject) bool {
	ca, cb := a.Components(), b.Components()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}
