// Package codec provides msgpack snapshot encoding for the clock types, as
// a default implementation of the serialization a host replication layer
// must otherwise supply. The wire structures live here so the core types
// stay free of any encoding concern.
package codec
