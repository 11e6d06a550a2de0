package clocks

// Ordering is the result of causally comparing two values of the same
// clock type.
type Ordering int

const (
	// Precede indicates this value is causally older than the other.
	Precede Ordering = iota
	// Equal indicates the two values carry the same causal history.
	Equal
	// Succeed indicates this value is causally newer than the other.
	Succeed
	// Concurrent indicates neither value descends the other; the conflict
	// is a first-class outcome the caller must branch on, not an error.
	Concurrent
)

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case Precede:
		return "Precede"
	case Equal:
		return "Equal"
	case Succeed:
		return "Succeed"
	case Concurrent:
		return "Concurrent"
	default:
		return "Unknown"
	}
}

// ordering derives the four-way causal classification from a partial
// comparison: cmp is the numeric order when the values are comparable,
// ok is false when they are not.
func ordering(cmp int, ok bool) Ordering {
	if !ok {
		return Concurrent
	}
	switch {
	case cmp < 0:
		return Precede
	case cmp > 0:
		return Succeed
	default:
		return Equal
	}
}
