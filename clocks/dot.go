package clocks

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Actor identifies a replica. The library assumes nothing about actors
// beyond equality and total ordering; allocating cluster-unique actor
// identifiers is the host's responsibility.
type Actor interface {
	constraints.Ordered
}

// Counter is the numeric capability a clock counter needs: an unsigned
// integer with ordinary arithmetic and comparison. Counters only grow;
// exceeding the counter's range is a host programming error, not a
// condition the library checks for.
type Counter interface {
	constraints.Unsigned
}

// Dot is a single event marker: the counter-th event produced by an actor.
// Dots are plain comparable values; two dots are equal when both the actor
// and the counter match.
type Dot[A Actor, C Counter] struct {
	Actor   A
	Counter C
}

// NewDot returns a dot for the given actor and counter.
func NewDot[A Actor, C Counter](actor A, counter C) Dot[A, C] {
	return Dot[A, C]{Actor: actor, Counter: counter}
}

// Next returns a new dot for the same actor with the counter advanced by one.
func (d Dot[A, C]) Next() Dot[A, C] {
	return Dot[A, C]{Actor: d.Actor, Counter: d.Counter + 1}
}

// Step returns a new dot for the same actor with the counter advanced by n.
func (d Dot[A, C]) Step(n C) Dot[A, C] {
	return Dot[A, C]{Actor: d.Actor, Counter: d.Counter + n}
}

// Advance increments the dot's counter in place.
func (d *Dot[A, C]) Advance() {
	d.Counter++
}

// PartialCompare compares two dots. Dots are ordered only when they belong
// to the same actor, in which case the order is the numeric order of the
// counters; ok is false for dots of different actors.
func (d Dot[A, C]) PartialCompare(other Dot[A, C]) (cmp int, ok bool) {
	if d.Actor != other.Actor {
		return 0, false
	}
	switch {
	case d.Counter < other.Counter:
		return -1, true
	case d.Counter > other.Counter:
		return 1, true
	default:
		return 0, true
	}
}

// Compare classifies the causal relationship between two dots. Dots of
// different actors are always Concurrent; dots of the same actor are never
// Concurrent.
func (d Dot[A, C]) Compare(other Dot[A, C]) Ordering {
	cmp, ok := d.PartialCompare(other)
	return ordering(cmp, ok)
}

// Dominates reports whether d strictly succeeds other.
func (d Dot[A, C]) Dominates(other Dot[A, C]) bool {
	return d.Compare(other) == Succeed
}

// Descends reports whether d succeeds or equals other.
func (d Dot[A, C]) Descends(other Dot[A, C]) bool {
	ord := d.Compare(other)
	return ord == Succeed || ord == Equal
}

// ConcurrentWith reports whether the two dots share no causal order.
func (d Dot[A, C]) ConcurrentWith(other Dot[A, C]) bool {
	return d.Compare(other) == Concurrent
}

// String returns the dot as "actor:counter".
func (d Dot[A, C]) String() string {
	return fmt.Sprintf("%v:%d", d.Actor, d.Counter)
}
