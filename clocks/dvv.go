package clocks

import (
	"fmt"
	"strings"
)

// Sibling is one causally-concurrent value stored in a Dvv, tagged with the
// dot under which it was written. It doubles as the operation type for the
// Dvv's CmRDT surface: a (dot, value) pair.
type Sibling[A Actor, C Counter, V any] struct {
	Dot   Dot[A, C]
	Value V
}

// Dvv is a dotted version vector scoped to a single local actor. It
// sequences the writes that clients obtained from this replica: writes that
// causally supersede a stored value evict it, while concurrent writes
// accumulate as siblings for the application to resolve.
//
// A Dvv only grows; the sole pruning it performs is the dominance-based
// sibling eviction in Merge.
type Dvv[A Actor, C Counter, V any] struct {
	dot      Dot[A, C]
	siblings []Sibling[A, C, V]
}

// NewDvv creates a Dvv for the given local actor, with the sequencer at
// counter 0 and no siblings.
func NewDvv[A Actor, C Counter, V any](actor A) *Dvv[A, C, V] {
	return &Dvv[A, C, V]{dot: Dot[A, C]{Actor: actor}}
}

// DvvFromParts reassembles a Dvv from a previously captured sequencer dot
// and sibling list, for snapshot restore. The siblings are copied.
func DvvFromParts[A Actor, C Counter, V any](dot Dot[A, C], siblings []Sibling[A, C, V]) *Dvv[A, C, V] {
	d := &Dvv[A, C, V]{dot: dot}
	if len(siblings) > 0 {
		d.siblings = append(d.siblings, siblings...)
	}
	return d
}

// Actor returns the local actor this Dvv sequences writes for.
func (d *Dvv[A, C, V]) Actor() A {
	return d.dot.Actor
}

// Dot returns the current local sequencer dot.
func (d *Dvv[A, C, V]) Dot() Dot[A, C] {
	return d.dot
}

// Merge folds in a write made against the context dot the client last read
// from this replica. A dot belonging to a foreign actor is rejected: Merge
// returns false and leaves the Dvv completely unchanged, sequencer
// included.
//
// For an accepted write, in order: the local sequencer advances by one,
// every sibling whose dot the incoming dot descends is evicted (the write
// causally supersedes it), and the value is appended under the new local
// dot. Writes concurrent with the stored siblings therefore accumulate
// rather than overwrite.
func (d *Dvv[A, C, V]) Merge(incoming Dot[A, C], value V) bool {
	if incoming.Actor != d.dot.Actor {
		return false
	}

	d.dot.Advance()

	kept := d.siblings[:0]
	for _, s := range d.siblings {
		if !incoming.Descends(s.Dot) {
			kept = append(kept, s)
		}
	}
	d.siblings = append(kept, Sibling[A, C, V]{Dot: d.dot, Value: value})
	return true
}

// Apply applies a (dot, value) pair as an operation, discarding the
// accepted/rejected outcome. Callers that need to observe rejection should
// call Merge directly.
func (d *Dvv[A, C, V]) Apply(op Sibling[A, C, V]) {
	d.Merge(op.Dot, op.Value)
}

// Siblings returns a copy of the stored (dot, value) pairs in write order.
func (d *Dvv[A, C, V]) Siblings() []Sibling[A, C, V] {
	if len(d.siblings) == 0 {
		return nil
	}
	out := make([]Sibling[A, C, V], len(d.siblings))
	copy(out, d.siblings)
	return out
}

// Values returns the stored values in write order, without their dots.
func (d *Dvv[A, C, V]) Values() []V {
	if len(d.siblings) == 0 {
		return nil
	}
	out := make([]V, 0, len(d.siblings))
	for _, s := range d.siblings {
		out = append(out, s.Value)
	}
	return out
}

// Len returns the number of stored siblings.
func (d *Dvv[A, C, V]) Len() int {
	return len(d.siblings)
}

// IsEmpty reports whether no siblings are stored.
func (d *Dvv[A, C, V]) IsEmpty() bool {
	return len(d.siblings) == 0
}

// String returns the sequencer dot and the stored siblings.
func (d *Dvv[A, C, V]) String() string {
	parts := make([]string, 0, len(d.siblings))
	for _, s := range d.siblings {
		parts = append(parts, fmt.Sprintf("%s=%v", s.Dot, s.Value))
	}
	return fmt.Sprintf("dot=%s values=[%s]", d.dot, strings.Join(parts, ", "))
}

var _ CmRDT[Sibling[string, uint64, string]] = (*Dvv[string, uint64, string])(nil)
