package clocks

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// GCounter is a grow-only counter: a vector clock reinterpreted as a
// monotonically growing sum. Each actor's contribution never decreases, so
// the counter's value is non-decreasing under Apply and Merge.
type GCounter[A Actor, C Counter] struct {
	counters VClock[A, C]
}

// NewGCounter creates a new empty grow-only counter.
func NewGCounter[A Actor, C Counter]() *GCounter[A, C] {
	return &GCounter[A, C]{counters: NewVClock[A, C]()}
}

// GCounterFromActors creates a counter with a zero contribution per actor,
// so Len and Value are deterministic before any increments.
func GCounterFromActors[A Actor, C Counter](actors ...A) *GCounter[A, C] {
	return &GCounter[A, C]{counters: VClockFromActors[A, C](actors...)}
}

// GCounterFromPairs creates a counter from per-actor contributions.
func GCounterFromPairs[A Actor, C Counter](pairs map[A]C) *GCounter[A, C] {
	counters := make(VClock[A, C], len(pairs))
	for actor, counter := range pairs {
		counters[actor] = counter
	}
	return &GCounter[A, C]{counters: counters}
}

// Apply joins a dot into the counter; the actor's contribution grows only
// if the dot's counter is strictly greater than the stored one.
func (g *GCounter[A, C]) Apply(dot Dot[A, C]) {
	g.counters.Apply(dot)
}

// Merge absorbs another counter, taking the per-actor maximum.
func (g *GCounter[A, C]) Merge(other *GCounter[A, C]) {
	g.counters.Merge(other.counters)
}

// Inc grows the actor's contribution by one.
func (g *GCounter[A, C]) Inc(actor A) {
	g.Add(actor, 1)
}

// Add grows the actor's contribution by n.
func (g *GCounter[A, C]) Add(actor A, n C) {
	g.counters.Apply(g.counters.Dot(actor).Step(n))
}

// Value returns the sum of all per-actor contributions. The sum is carried
// in a uint64 and shares the Counter contract: keeping the total within
// range over the deployment's lifetime is the host's responsibility, even
// when no single contribution has overflowed.
func (g *GCounter[A, C]) Value() uint64 {
	var total uint64
	for _, counter := range g.counters {
		total += uint64(counter)
	}
	return total
}

// Len returns the number of actors with a stored contribution.
func (g *GCounter[A, C]) Len() int {
	return g.counters.Len()
}

// IsEmpty reports whether no actor has a stored contribution.
func (g *GCounter[A, C]) IsEmpty() bool {
	return g.counters.IsEmpty()
}

// Counters returns a copy of the underlying vector clock.
func (g *GCounter[A, C]) Counters() VClock[A, C] {
	return g.counters.Copy()
}

// Actors returns the set of actors with a stored contribution.
func (g *GCounter[A, C]) Actors() mapset.Set[A] {
	return g.counters.Actors()
}

// Equal reports whether the two counters carry identical contributions,
// treating absent actors as zero.
func (g *GCounter[A, C]) Equal(other *GCounter[A, C]) bool {
	return g.counters.Equal(other.counters)
}

// String returns the per-actor contributions in actor order.
func (g *GCounter[A, C]) String() string {
	return g.counters.String()
}

var (
	_ CmRDT[Dot[string, uint64]]       = (*GCounter[string, uint64])(nil)
	_ CvRDT[*GCounter[string, uint64]] = (*GCounter[string, uint64])(nil)
	_ fmt.Stringer                     = (*GCounter[string, uint64])(nil)
)
