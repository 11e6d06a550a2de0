package clocks

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// VClock is a vector clock: a map from actor to the highest counter observed
// from that actor. A missing actor is equivalent to counter 0. Counters only
// grow under Apply and Merge.
//
// The zero value is not usable; create clocks with NewVClock or one of the
// From constructors. Thread safety is the caller's responsibility.
type VClock[A Actor, C Counter] map[A]C

// NewVClock creates a new empty vector clock.
func NewVClock[A Actor, C Counter]() VClock[A, C] {
	return make(VClock[A, C])
}

// VClockFromActors creates a clock with an explicit zero entry per actor.
// Pre-registering actors makes Len and iteration deterministic before any
// increments have been observed.
func VClockFromActors[A Actor, C Counter](actors ...A) VClock[A, C] {
	vc := make(VClock[A, C], len(actors))
	for _, a := range actors {
		vc[a] = 0
	}
	return vc
}

// VClockFromDots creates a clock by joining every given dot.
func VClockFromDots[A Actor, C Counter](dots ...Dot[A, C]) VClock[A, C] {
	vc := make(VClock[A, C], len(dots))
	for _, d := range dots {
		vc.Apply(d)
	}
	return vc
}

// Len returns the number of actors stored in the clock.
func (vc VClock[A, C]) Len() int {
	return len(vc)
}

// IsEmpty reports whether the clock stores no actors.
func (vc VClock[A, C]) IsEmpty() bool {
	return len(vc) == 0
}

// Counter returns the counter stored for the actor, or 0 if absent.
func (vc VClock[A, C]) Counter(actor A) C {
	return vc[actor]
}

// Dot returns a fresh dot carrying the actor's current counter (0 if the
// actor has not been seen).
func (vc VClock[A, C]) Dot(actor A) Dot[A, C] {
	return Dot[A, C]{Actor: actor, Counter: vc[actor]}
}

// Apply joins a dot into the clock: the dot's counter replaces the stored
// one only if it is strictly greater. Re-applying the same or an older dot
// is a no-op, which makes Apply idempotent and tolerant of duplicated or
// reordered delivery.
func (vc VClock[A, C]) Apply(dot Dot[A, C]) {
	if vc[dot.Actor] < dot.Counter {
		vc[dot.Actor] = dot.Counter
	}
}

// Merge absorbs another clock by joining every one of its dots: the result
// is the per-actor pointwise maximum of the two maps, the canonical join of
// the vector-clock semilattice.
func (vc VClock[A, C]) Merge(other VClock[A, C]) {
	for actor, counter := range other {
		if vc[actor] < counter {
			vc[actor] = counter
		}
	}
}

// Equal reports whether the two clocks describe the same causal history.
// Absent actors count as 0, so a stored zero entry and a missing entry are
// the same history.
func (vc VClock[A, C]) Equal(other VClock[A, C]) bool {
	for actor, counter := range vc {
		if other[actor] != counter {
			return false
		}
	}
	for actor, counter := range other {
		if vc[actor] != counter {
			return false
		}
	}
	return true
}

// Compare classifies the causal relationship between two clocks:
//   - Equal when the histories are identical,
//   - Succeed when vc has observed at least as much as other everywhere,
//   - Precede when other has observed at least as much as vc everywhere,
//   - Concurrent when each clock has advanced where the other has not.
func (vc VClock[A, C]) Compare(other VClock[A, C]) Ordering {
	cmp, ok := vc.partialCompare(other)
	return ordering(cmp, ok)
}

// partialCompare returns the numeric order of the two clocks when one
// exists; ok is false for concurrent histories.
func (vc VClock[A, C]) partialCompare(other VClock[A, C]) (cmp int, ok bool) {
	if vc.Equal(other) {
		return 0, true
	}
	dominates := true // vc >= other at every actor present in other
	for actor, counter := range other {
		if vc[actor] < counter {
			dominates = false
			break
		}
	}
	if dominates {
		return 1, true
	}
	dominated := true // vc <= other at every actor present in vc
	for actor, counter := range vc {
		if other[actor] < counter {
			dominated = false
			break
		}
	}
	if dominated {
		return -1, true
	}
	return 0, false
}

// Dominates reports whether vc strictly succeeds other.
func (vc VClock[A, C]) Dominates(other VClock[A, C]) bool {
	return vc.Compare(other) == Succeed
}

// Descends reports whether vc succeeds or equals other.
func (vc VClock[A, C]) Descends(other VClock[A, C]) bool {
	ord := vc.Compare(other)
	return ord == Succeed || ord == Equal
}

// ConcurrentWith reports whether the two clocks describe divergent
// histories.
func (vc VClock[A, C]) ConcurrentWith(other VClock[A, C]) bool {
	return vc.Compare(other) == Concurrent
}

// Copy creates a deep copy of the clock.
func (vc VClock[A, C]) Copy() VClock[A, C] {
	dup := make(VClock[A, C], len(vc))
	for actor, counter := range vc {
		dup[actor] = counter
	}
	return dup
}

// Dots returns every stored entry as a dot, sorted by actor for
// deterministic iteration.
func (vc VClock[A, C]) Dots() []Dot[A, C] {
	actors := make([]A, 0, len(vc))
	for actor := range vc {
		actors = append(actors, actor)
	}
	slices.Sort(actors)

	dots := make([]Dot[A, C], 0, len(actors))
	for _, actor := range actors {
		dots = append(dots, Dot[A, C]{Actor: actor, Counter: vc[actor]})
	}
	return dots
}

// Actors returns the set of actors stored in the clock.
func (vc VClock[A, C]) Actors() mapset.Set[A] {
	actors := mapset.NewSet[A]()
	for actor := range vc {
		actors.Add(actor)
	}
	return actors
}

// String returns a deterministic representation like "<a:1, b:2>".
func (vc VClock[A, C]) String() string {
	parts := make([]string, 0, len(vc))
	for _, d := range vc.Dots() {
		parts = append(parts, d.String())
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

var (
	_ CmRDT[Dot[string, uint64]]    = VClock[string, uint64]{}
	_ CvRDT[VClock[string, uint64]] = VClock[string, uint64]{}
	_ fmt.Stringer                  = VClock[string, uint64]{}
)
