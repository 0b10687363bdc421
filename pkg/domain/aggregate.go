package domain

// Root provides identity of type K plus equality-by-identity for aggregate
// roots. Embed it in an aggregate and construct it with NewRoot; two roots
// are the same aggregate iff their identifiers are equal, regardless of the
// rest of their state.
type Root[K comparable] struct {
	id K
}

// NewRoot wraps an already-validated identifier. The root performs no
// validation of its own; identifier invariants belong to the identifier type.
func NewRoot[K comparable](id K) Root[K] {
	return Root[K]{id: id}
}

// ID returns the aggregate identifier.
func (r Root[K]) ID() K {
	return r.id
}

// SameIdentity reports whether both roots identify the same aggregate.
func (r Root[K]) SameIdentity(other Root[K]) bool {
	return r.id == other.id
}
