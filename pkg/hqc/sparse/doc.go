// Package sparse implements an ordered list of distinct coordinates in
// [0, n) representing the set bits of a sparse binary polynomial, plus
// the fixed-weight rejection sampler that produces one.
package sparse
