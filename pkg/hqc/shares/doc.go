// Package shares implements an M-way additive secret-sharing of a dense
// binary polynomial, where the XOR of the M
// parts equals the unmasked value. The contiguous word-range split and
// XOR-reduction are grounded directly on
// original_source/src/fields/shares.{h,c}'s shares_t/shares_add.
package shares
