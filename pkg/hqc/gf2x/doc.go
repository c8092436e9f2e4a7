// Package gf2x implements sparse x dense polynomial multiplication
// modulo X^n - 1 over GF(2), the hardest subsystem of the core. Mul is the plain variant; SafeMul is the side-channel-hardened,
// multi-share masked variant. Both are grounded on
// original_source/src/fields/gf2x.c's fast_convolution_mult/reduce
// structure: a 16-row shift table consumed through secret coordinates,
// folded modulo X^n - 1 via the X^n == 1 identity.
package gf2x
