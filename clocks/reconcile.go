package clocks

// Versioned pairs a value with the vector clock under which it was written.
// Hosts collect these from replicas during a read and reconcile them into
// the maximal set of causally-latest versions.
type Versioned[A Actor, C Counter, V any] struct {
	Value   V
	Version VClock[A, C]
}

// ReconcileResult is the outcome of reconciling a set of versions.
type ReconcileResult[A Actor, C Counter, V any] struct {
	// Winners is the maximal set of non-dominated versions (siblings).
	// A single winner means the read resolved cleanly; more than one means
	// concurrent writes the application must merge.
	Winners []Versioned[A, C, V]

	// Stale holds the versions dominated by at least one winner, in input
	// order. Hosts use these to drive read repair.
	Stale []Versioned[A, C, V]
}

// HasConflict reports whether reconciliation left multiple concurrent
// winners.
func (r *ReconcileResult[A, C, V]) HasConflict() bool {
	return len(r.Winners) > 1
}

// IsResolved reports whether reconciliation produced exactly one winner.
func (r *ReconcileResult[A, C, V]) IsResolved() bool {
	return len(r.Winners) == 1
}

// IsEmpty reports whether there were no versions to reconcile.
func (r *ReconcileResult[A, C, V]) IsEmpty() bool {
	return len(r.Winners) == 0
}

// Reconcile computes the maximal set of versions: any version whose clock is
// dominated by another's is stale, and among causally-equal versions only
// the first is kept as a winner. The surviving winners are pairwise
// concurrent.
func Reconcile[A Actor, C Counter, V any](versions []Versioned[A, C, V]) ReconcileResult[A, C, V] {
	result := ReconcileResult[A, C, V]{}
	if len(versions) == 0 {
		return result
	}

	for i, candidate := range versions {
		dominated := false
		for j, other := range versions {
			if i == j {
				continue
			}
			if candidate.Version.Compare(other.Version) == Precede {
				dominated = true
				break
			}
		}
		if dominated {
			result.Stale = append(result.Stale, candidate)
			continue
		}

		duplicate := false
		for _, winner := range result.Winners {
			if candidate.Version.Equal(winner.Version) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result.Winners = append(result.Winners, candidate)
		}
	}

	return result
}
