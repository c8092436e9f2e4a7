// Package gf256 implements GF(2^8) arithmetic with reduction polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D), and the systematic (n1, k, delta)
// Reed-Solomon code built on top of it: the outer code of HQC's
// concatenated error-correcting scheme.
package gf256
