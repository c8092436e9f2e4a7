// Package params holds the compile-time constant sets that select an HQC
// security profile. Nothing in this package allocates or performs
// cryptographic work; it is pure data plus the byte-size formulas derived
// from it.
package params
