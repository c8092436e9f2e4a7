// Package hqc implements the HQC (Hamming Quasi-Cyclic) post-quantum
// key encapsulation mechanism at NIST security levels 128, 192, and
// 256, built as an HHK-style implicit-rejection transform over
// pkg/hqc/pke's public-key encryption scheme.
//
// Subpackages implement one layer of the construction each:
// pkg/hqc/params (parameter sets), pkg/hqc/xof (SHAKE-256 seed
// expansion), pkg/hqc/bitvec and pkg/hqc/sparse (dense/sparse
// polynomial representations), pkg/hqc/gf2x (the sparse x dense
// multiplier, plain and masked), pkg/hqc/shares (additive masking),
// pkg/hqc/gf256 and pkg/hqc/rm (the concatenated error-correcting
// code's two layers, wired together in pkg/hqc/cc), and pkg/hqc/pke
// (the public-key encryption scheme this package turns into a KEM).
package hqc
