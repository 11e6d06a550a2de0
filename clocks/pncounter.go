package clocks

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// PnOpKind tags a PnCounter operation as an increment or a decrement.
type PnOpKind int

const (
	// OpIncrement applies the dot to the increments side.
	OpIncrement PnOpKind = iota
	// OpDecrement applies the dot to the decrements side.
	OpDecrement
)

// PnOp is one PnCounter operation: a dot and the side it applies to.
type PnOp[A Actor, C Counter] struct {
	Dot  Dot[A, C]
	Kind PnOpKind
}

// Increment builds an increment operation from a dot.
func Increment[A Actor, C Counter](dot Dot[A, C]) PnOp[A, C] {
	return PnOp[A, C]{Dot: dot, Kind: OpIncrement}
}

// Decrement builds a decrement operation from a dot.
func Decrement[A Actor, C Counter](dot Dot[A, C]) PnOp[A, C] {
	return PnOp[A, C]{Dot: dot, Kind: OpDecrement}
}

// PnCounter is a counter supporting both increments and decrements,
// implemented as two independent grow-only vector clocks. Its value is the
// difference of the two sums and can legitimately be negative.
type PnCounter[A Actor, C Counter] struct {
	increments VClock[A, C]
	decrements VClock[A, C]
}

// NewPnCounter creates a new empty counter.
func NewPnCounter[A Actor, C Counter]() *PnCounter[A, C] {
	return &PnCounter[A, C]{
		increments: NewVClock[A, C](),
		decrements: NewVClock[A, C](),
	}
}

// PnCounterFromActors creates a counter with a zero increment entry per
// actor and no decrements.
func PnCounterFromActors[A Actor, C Counter](actors ...A) *PnCounter[A, C] {
	return &PnCounter[A, C]{
		increments: VClockFromActors[A, C](actors...),
		decrements: NewVClock[A, C](),
	}
}

// PnCounterFromPairs creates a counter from per-actor increment totals and
// no decrements.
func PnCounterFromPairs[A Actor, C Counter](pairs map[A]C) *PnCounter[A, C] {
	increments := make(VClock[A, C], len(pairs))
	for actor, counter := range pairs {
		increments[actor] = counter
	}
	return &PnCounter[A, C]{increments: increments, decrements: NewVClock[A, C]()}
}

// PnCounterFromParts reassembles a counter from previously captured
// increment and decrement clocks, for snapshot restore. Both clocks are
// copied.
func PnCounterFromParts[A Actor, C Counter](increments, decrements VClock[A, C]) *PnCounter[A, C] {
	return &PnCounter[A, C]{
		increments: increments.Copy(),
		decrements: decrements.Copy(),
	}
}

// Incr grows the actor's increment total by one.
func (p *PnCounter[A, C]) Incr(actor A) {
	p.StepUp(actor, 1)
}

// StepUp grows the actor's increment total by n.
func (p *PnCounter[A, C]) StepUp(actor A, n C) {
	p.increments.Apply(p.increments.Dot(actor).Step(n))
}

// Decr grows the actor's decrement total by one.
func (p *PnCounter[A, C]) Decr(actor A) {
	p.StepDown(actor, 1)
}

// StepDown grows the actor's decrement total by n.
func (p *PnCounter[A, C]) StepDown(actor A, n C) {
	p.decrements.Apply(p.decrements.Dot(actor).Step(n))
}

// Apply applies a tagged operation to the matching side.
func (p *PnCounter[A, C]) Apply(op PnOp[A, C]) {
	switch op.Kind {
	case OpIncrement:
		p.increments.Apply(op.Dot)
	case OpDecrement:
		p.decrements.Apply(op.Dot)
	}
}

// Merge absorbs another counter by merging both sides independently; the
// pair of joins is itself a join, so Merge stays commutative, associative
// and idempotent.
func (p *PnCounter[A, C]) Merge(other *PnCounter[A, C]) {
	p.increments.Merge(other.increments)
	p.decrements.Merge(other.decrements)
}

// Value returns the counter's value: the sum of increments minus the sum of
// decrements. The result is signed, since decrements may exceed increments.
// Each side's sum is carried in a uint64 before the subtraction and shares
// the Counter contract: keeping the totals within range is the host's
// responsibility, even when no single contribution has overflowed.
func (p *PnCounter[A, C]) Value() int64 {
	var incs, decs uint64
	for _, counter := range p.increments {
		incs += uint64(counter)
	}
	for _, counter := range p.decrements {
		decs += uint64(counter)
	}
	return int64(incs) - int64(decs)
}

// Increments returns a copy of the increments clock.
func (p *PnCounter[A, C]) Increments() VClock[A, C] {
	return p.increments.Copy()
}

// Decrements returns a copy of the decrements clock.
func (p *PnCounter[A, C]) Decrements() VClock[A, C] {
	return p.decrements.Copy()
}

// Actors returns the set of actors that contributed to either side.
func (p *PnCounter[A, C]) Actors() mapset.Set[A] {
	return p.increments.Actors().Union(p.decrements.Actors())
}

// Equal reports whether both sides carry identical contributions, treating
// absent actors as zero.
func (p *PnCounter[A, C]) Equal(other *PnCounter[A, C]) bool {
	return p.increments.Equal(other.increments) && p.decrements.Equal(other.decrements)
}

// String returns both sides in actor order.
func (p *PnCounter[A, C]) String() string {
	return fmt.Sprintf("inc=%s dec=%s", p.increments, p.decrements)
}

var (
	_ CmRDT[PnOp[string, uint64]]       = (*PnCounter[string, uint64])(nil)
	_ CvRDT[*PnCounter[string, uint64]] = (*PnCounter[string, uint64])(nil)
)
