// Package cc wires gf256's Reed-Solomon code and rm's repeated
// Reed-Muller code into the concatenated error-correcting code used by
// HQC-PKE: Encode maps a K-byte message to an N-bit
// dense codeword (Reed-Solomon outer code, Reed-Muller inner code, zero
// padding to the ambient length), and Decode reverses it, tolerating
// the noise introduced by the vector channel.
package cc
