// Package clocks provides causal-clock primitives for building replicated,
// eventually-consistent data stores: per-actor event markers (dots), vector
// clocks, dotted version vectors for sibling tracking, and the grow-only and
// positive/negative counters derived from them. Every merge operation forms
// a join-semilattice (commutative, associative, idempotent), which is what
// lets replica states converge regardless of delivery order or duplication.
package clocks
