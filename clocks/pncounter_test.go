package clocks

import (
	"testing"
)

func TestPnCounter_New(t *testing.T) {
	p := NewPnCounter[string, uint64]()
	if p.Value() != 0 {
		t.Errorf("Expected value 0, got %d", p.Value())
	}
}

func TestPnCounter_Scenario(t *testing.T) {
	p := NewPnCounter[string, uint64]()

	p.Incr("A")
	p.StepUp("A", 3)
	p.Decr("A")

	if p.Value() != 3 {
		t.Errorf("Expected value 3, got %d", p.Value())
	}
}

func TestPnCounter_NegativeValue(t *testing.T) {
	p := NewPnCounter[string, uint64]()

	p.Decr("A")
	p.StepDown("B", 4)
	p.Incr("A")

	if p.Value() != -4 {
		t.Errorf("Decrements may exceed increments; expected -4, got %d", p.Value())
	}
}

func TestPnCounter_ApplyOps(t *testing.T) {
	p := NewPnCounter[string, uint64]()

	p.Apply(Increment(NewDot("A", uint64(20))))
	if p.Value() != 20 {
		t.Errorf("Expected value 20, got %d", p.Value())
	}

	p.Apply(Decrement(NewDot("B", uint64(10))))
	if p.Value() != 10 {
		t.Errorf("Expected value 10, got %d", p.Value())
	}

	// Ops are joins: re-applying or applying older dots changes nothing.
	p.Apply(Increment(NewDot("A", uint64(20))))
	p.Apply(Increment(NewDot("A", uint64(15))))
	if p.Value() != 10 {
		t.Errorf("Duplicate or stale ops should be no-ops, got %d", p.Value())
	}
}

func TestPnCounter_Merge(t *testing.T) {
	a := PnCounterFromPairs(map[string]uint64{"A": 10, "B": 0, "C": 20})
	b := PnCounterFromPairs(map[string]uint64{"A": 5, "B": 5})
	b.StepDown("A", 2)

	a.Merge(b)

	if a.Value() != 10+5+20-2 {
		t.Errorf("Expected value 33, got %d", a.Value())
	}
}

func TestPnCounter_FromActors(t *testing.T) {
	p := PnCounterFromActors[string, uint64]("A", "B")
	if p.Value() != 0 {
		t.Errorf("Expected value 0, got %d", p.Value())
	}
	if p.Increments().Len() != 2 {
		t.Errorf("Expected 2 pre-registered actors, got %d", p.Increments().Len())
	}
	if p.Decrements().Len() != 0 {
		t.Errorf("Expected no decrement entries, got %d", p.Decrements().Len())
	}
}

func TestPnCounter_Actors(t *testing.T) {
	p := NewPnCounter[string, uint64]()
	p.Incr("A")
	p.Decr("B")

	actors := p.Actors()
	if actors.Cardinality() != 2 || !actors.Contains("A") || !actors.Contains("B") {
		t.Errorf("Expected {A, B}, got %v", actors)
	}
}

func TestPnCounter_PartsAreCopies(t *testing.T) {
	p := NewPnCounter[string, uint64]()
	p.Incr("A")

	inc := p.Increments()
	inc.Apply(NewDot("A", uint64(100)))

	if p.Value() != 1 {
		t.Errorf("Mutating the returned clock should not affect the counter, got %d", p.Value())
	}
}
