// Package rm implements the inner code of HQC's concatenated scheme:
// a first-order Reed-Muller code RM(1, order) that maps
// one byte to a 2^order-bit codeword, repeated multiplicity times for
// the soft-decision gain spent by Decode's Hadamard-transform
// combining. order is fixed at 7 throughout this module, matching the
// one-byte-per-symbol boundary of the outer Reed-Solomon code.
package rm
