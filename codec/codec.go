package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"causal/clocks"
)

type dotWire[A clocks.Actor, C clocks.Counter] struct {
	Actor   A `msgpack:"a"`
	Counter C `msgpack:"c"`
}

type siblingWire[A clocks.Actor, C clocks.Counter, V any] struct {
	Dot   dotWire[A, C] `msgpack:"d"`
	Value V             `msgpack:"v"`
}

type dvvWire[A clocks.Actor, C clocks.Counter, V any] struct {
	Dot      dotWire[A, C]          `msgpack:"dot"`
	Siblings []siblingWire[A, C, V] `msgpack:"values"`
}

type pnWire[A clocks.Actor, C clocks.Counter] struct {
	P map[A]C `msgpack:"p"`
	N map[A]C `msgpack:"n"`
}

// MarshalDot encodes a dot.
func MarshalDot[A clocks.Actor, C clocks.Counter](d clocks.Dot[A, C]) ([]byte, error) {
	return msgpack.Marshal(dotWire[A, C]{Actor: d.Actor, Counter: d.Counter})
}

// UnmarshalDot decodes a dot.
func UnmarshalDot[A clocks.Actor, C clocks.Counter](data []byte) (clocks.Dot[A, C], error) {
	var w dotWire[A, C]
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return clocks.Dot[A, C]{}, fmt.Errorf("decode dot: %w", err)
	}
	return clocks.NewDot(w.Actor, w.Counter), nil
}

// MarshalVClock encodes a vector clock as an actor-to-counter map.
func MarshalVClock[A clocks.Actor, C clocks.Counter](vc clocks.VClock[A, C]) ([]byte, error) {
	return msgpack.Marshal(map[A]C(vc))
}

// UnmarshalVClock decodes a vector clock.
func UnmarshalVClock[A clocks.Actor, C clocks.Counter](data []byte) (clocks.VClock[A, C], error) {
	var m map[A]C
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode vclock: %w", err)
	}
	if m == nil {
		m = map[A]C{}
	}
	return clocks.VClock[A, C](m), nil
}

// MarshalGCounter encodes a grow-only counter's per-actor contributions.
func MarshalGCounter[A clocks.Actor, C clocks.Counter](g *clocks.GCounter[A, C]) ([]byte, error) {
	return msgpack.Marshal(map[A]C(g.Counters()))
}

// UnmarshalGCounter decodes a grow-only counter.
func UnmarshalGCounter[A clocks.Actor, C clocks.Counter](data []byte) (*clocks.GCounter[A, C], error) {
	var m map[A]C
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode gcounter: %w", err)
	}
	return clocks.GCounterFromPairs(m), nil
}

// MarshalPnCounter encodes both sides of a positive/negative counter.
func MarshalPnCounter[A clocks.Actor, C clocks.Counter](p *clocks.PnCounter[A, C]) ([]byte, error) {
	return msgpack.Marshal(pnWire[A, C]{
		P: map[A]C(p.Increments()),
		N: map[A]C(p.Decrements()),
	})
}

// UnmarshalPnCounter decodes a positive/negative counter.
func UnmarshalPnCounter[A clocks.Actor, C clocks.Counter](data []byte) (*clocks.PnCounter[A, C], error) {
	var w pnWire[A, C]
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode pncounter: %w", err)
	}
	return clocks.PnCounterFromParts(clocks.VClock[A, C](w.P), clocks.VClock[A, C](w.N)), nil
}

// MarshalDvv encodes a dotted version vector: its sequencer dot and its
// siblings in write order.
func MarshalDvv[A clocks.Actor, C clocks.Counter, V any](d *clocks.Dvv[A, C, V]) ([]byte, error) {
	dot := d.Dot()
	w := dvvWire[A, C, V]{Dot: dotWire[A, C]{Actor: dot.Actor, Counter: dot.Counter}}
	for _, s := range d.Siblings() {
		w.Siblings = append(w.Siblings, siblingWire[A, C, V]{
			Dot:   dotWire[A, C]{Actor: s.Dot.Actor, Counter: s.Dot.Counter},
			Value: s.Value,
		})
	}
	return msgpack.Marshal(w)
}

// UnmarshalDvv decodes a dotted version vector.
func UnmarshalDvv[A clocks.Actor, C clocks.Counter, V any](data []byte) (*clocks.Dvv[A, C, V], error) {
	var w dvvWire[A, C, V]
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode dvv: %w", err)
	}
	siblings := make([]clocks.Sibling[A, C, V], 0, len(w.Siblings))
	for _, s := range w.Siblings {
		siblings = append(siblings, clocks.Sibling[A, C, V]{
			Dot:   clocks.NewDot(s.Dot.Actor, s.Dot.Counter),
			Value: s.Value,
		})
	}
	return clocks.DvvFromParts(clocks.NewDot(w.Dot.Actor, w.Dot.Counter), siblings), nil
}
