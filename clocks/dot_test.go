package clocks

import (
	"testing"
)

func TestDot_New(t *testing.T) {
	d := NewDot("a", uint64(3))
	if d.Actor != "a" {
		t.Errorf("Expected actor 'a', got %q", d.Actor)
	}
	if d.Counter != 3 {
		t.Errorf("Expected counter 3, got %d", d.Counter)
	}
}

func TestDot_NextAndStep(t *testing.T) {
	d := NewDot("a", uint64(1))

	next := d.Next()
	if next.Counter != 2 {
		t.Errorf("Expected counter 2 after Next, got %d", next.Counter)
	}
	if next.Actor != "a" {
		t.Errorf("Next should keep the actor, got %q", next.Actor)
	}
	if d.Counter != 1 {
		t.Errorf("Next should not mutate the receiver, got %d", d.Counter)
	}

	stepped := d.Step(5)
	if stepped.Counter != 6 {
		t.Errorf("Expected counter 6 after Step(5), got %d", stepped.Counter)
	}
	if d.Counter != 1 {
		t.Errorf("Step should not mutate the receiver, got %d", d.Counter)
	}
}

func TestDot_Advance(t *testing.T) {
	d := NewDot("a", uint64(0))
	d.Advance()
	d.Advance()
	if d.Counter != 2 {
		t.Errorf("Expected counter 2 after two Advances, got %d", d.Counter)
	}
}

func TestDot_Compare(t *testing.T) {
	tests := []struct {
		name     string
		d1       Dot[string, uint64]
		d2       Dot[string, uint64]
		expected Ordering
	}{
		{
			name:     "dot equals itself",
			d1:       NewDot("a", uint64(1)),
			d2:       NewDot("a", uint64(1)),
			expected: Equal,
		},
		{
			name:     "higher counter succeeds",
			d1:       NewDot("a", uint64(2)),
			d2:       NewDot("a", uint64(1)),
			expected: Succeed,
		},
		{
			name:     "lower counter precedes",
			d1:       NewDot("a", uint64(1)),
			d2:       NewDot("a", uint64(2)),
			expected: Precede,
		},
		{
			name:     "different actors are concurrent",
			d1:       NewDot("a", uint64(1)),
			d2:       NewDot("b", uint64(1)),
			expected: Concurrent,
		},
		{
			name:     "different actors concurrent even with ordered counters",
			d1:       NewDot("a", uint64(5)),
			d2:       NewDot("b", uint64(1)),
			expected: Concurrent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.d1.Compare(tt.d2)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestDot_CausalLaws(t *testing.T) {
	d := NewDot("a", uint64(4))

	if ord := d.Compare(d); ord != Equal {
		t.Errorf("dot.Compare(dot) should be Equal, got %v", ord)
	}
	if ord := d.Next().Compare(d); ord != Succeed {
		t.Errorf("dot.Next().Compare(dot) should be Succeed, got %v", ord)
	}
	if ord := d.Compare(d.Next()); ord != Precede {
		t.Errorf("dot.Compare(dot.Next()) should be Precede, got %v", ord)
	}

	if !d.Next().Dominates(d) {
		t.Error("A later dot should dominate an earlier one")
	}
	if d.Dominates(d) {
		t.Error("A dot should not dominate itself")
	}
	if !d.Descends(d) {
		t.Error("A dot should descend itself")
	}
	if !d.Next().Descends(d) {
		t.Error("A later dot should descend an earlier one")
	}
	if d.Descends(d.Next()) {
		t.Error("An earlier dot should not descend a later one")
	}

	other := NewDot("b", uint64(4))
	if !d.ConcurrentWith(other) {
		t.Error("Dots of different actors should be concurrent")
	}
	if !other.ConcurrentWith(d) {
		t.Error("Concurrency should be symmetric")
	}
	if d.ConcurrentWith(d.Next()) {
		t.Error("Same-actor dots are always ordered, never concurrent")
	}
}

func TestDot_PartialCompare(t *testing.T) {
	d1 := NewDot("a", uint64(1))
	d2 := NewDot("b", uint64(1))

	if _, ok := d1.PartialCompare(d2); ok {
		t.Error("Dots of different actors should not be comparable")
	}
	if cmp, ok := d1.PartialCompare(d1); !ok || cmp != 0 {
		t.Errorf("Expected (0, true), got (%d, %v)", cmp, ok)
	}
}

func TestDot_String(t *testing.T) {
	d := NewDot("node1", uint64(7))
	if s := d.String(); s != "node1:7" {
		t.Errorf("Expected 'node1:7', got %q", s)
	}
}
