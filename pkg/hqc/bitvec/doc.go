// Package bitvec implements a packed binary
// polynomial in GF(2)[X] of degree < n, stored as ceil(n/64) machine
// words. Every exported constructor and mutator preserves the RED_MASK
// invariant — the unused high bits of the last word are always zero —
// so callers never need to mask defensively before reducing modulo
// X^n - 1.
package bitvec
