package clocks

// CmRDT is an operation-based CRDT. Applying an operation must be
// idempotent so that at-least-once delivery with arbitrary duplication and
// reordering across actors still converges.
type CmRDT[Op any] interface {
	// Apply applies one operation to the local state.
	Apply(op Op)
}

// CvRDT is a state-based CRDT. Merge must be commutative, associative and
// idempotent (a join-semilattice), so replicas converge by exchanging and
// absorbing whole states without coordination.
type CvRDT[T any] interface {
	// Merge absorbs another replica's full state.
	Merge(other T)
}
