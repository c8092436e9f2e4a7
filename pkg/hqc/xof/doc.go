// Package xof provides the two SHAKE-256-based randomness primitives the
// HQC core treats as opaque external collaborators: a process-wide
// PRNG stream seeded once from entropy, and a
// domain-separated seed expander deterministic in its seed. Both are
// thin wrappers over golang.org/x/crypto/sha3's extendable-output
// functions; neither performs any cryptographic design of its own.
package xof
