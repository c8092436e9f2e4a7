// Package pke implements HQC-PKE: key generation,
// encryption, and decryption built directly on gf2x's polynomial
// multiplication, sparse's fixed-weight sampling, and cc's concatenated
// error-correcting code. Decrypt is the only operation that multiplies
// against the long-term secret y under an adversary-observed operand,
// so it is the only one that runs through gf2x.SafeMul; key generation
// and encryption use the plain multiplier.
package pke
