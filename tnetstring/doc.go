// Package tnetstring implements the tagged-netstring wire format: a
// self-delimiting encoding of a typed value as "<payload-length>:<payload><tag>".
//
// The package owns two concerns only: the low-level codec primitives
// (digit counting, tag validation, prefix parsing) and the Term type, a
// typed view over a byte slice that holds exactly one tnetstring encoding.
// Term supports two construction modes: Create, which allocates an owning
// buffer from a payload, and ParseAt, which borrows a term out of a larger
// slice without copying. Everything above this — dictionary traversal,
// mutation, value marshalling — lives in sibling packages.
package tnetstring
