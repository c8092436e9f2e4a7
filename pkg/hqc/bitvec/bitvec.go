package bitvec

import (
	"crypto/subtle"
	"encoding/binary"
	"io"
)

// Vec is a packed binary polynomial of some fixed bit length, the word
// array backing a PolyDense. Ownership is caller-local: operations
// return new values or write into a caller-supplied destination: they
// never retain a reference to an argument.
type Vec []uint64

// New allocates a zeroed Vec able to hold a polynomial of bitLen bits.
func New(bitLen int) Vec {
	return make(Vec, words(bitLen))
}

func words(bitLen int) int {
	return (bitLen + 63) / 64
}

// topMask returns the bitmask that keeps only the low (bitLen mod 64)
// bits of the top word, or ^uint64(0) when bitLen is a multiple of 64
// (the whole top word is significant).
func topMask(bitLen int) uint64 {
	rem := uint(bitLen % 64)
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << rem) - 1
}

// TruncateN clears the bits of v at positions >= bitLen, enforcing the
// RED_MASK invariant in place.
func TruncateN(v Vec, bitLen int) {
	n := words(bitLen)
	if n == 0 {
		return
	}
	if n <= len(v) {
		v[n-1] &= topMask(bitLen)
	}
	for i := n; i < len(v); i++ {
		v[i] = 0
	}
}

// Clone returns an independent copy of v.
func Clone(v Vec) Vec {
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Xor computes o = a XOR b component-wise. a and b must have equal
// length; o is sized to match.
func Xor(a, b Vec) Vec {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	o := make(Vec, n)
	for i := 0; i < n; i++ {
		o[i] = a[i] ^ b[i]
	}
	return o
}

// XorInto writes a XOR b into o, which must already be sized to hold the
// result (len(o) >= min(len(a), len(b))).
func XorInto(o, a, b Vec) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		o[i] = a[i] ^ b[i]
	}
}

// Bit returns the value of the bit at position pos.
func (v Vec) Bit(pos int) uint64 {
	return (v[pos/64] >> uint(pos%64)) & 1
}

// SetBit sets the bit at position pos to 1.
func (v Vec) SetBit(pos int) {
	v[pos/64] |= uint64(1) << uint(pos%64)
}

// EqualConstantTime reports whether a and b (interpreted as bitLen-bit
// vectors) are equal, without branching or timing on the position of
// the first difference. It delegates to crypto/subtle rather than a
// hand-rolled accumulator, since secret-dependent branches are
// forbidden and subtle.ConstantTimeCompare is the standard library's
// audited primitive for exactly this contract.
func EqualConstantTime(a, b Vec, bitLen int) bool {
	pa := Pack(a, bitLen)
	pb := Pack(b, bitLen)
	return subtle.ConstantTimeCompare(pa, pb) == 1
}

// Resize re-bit-lengths a packed bitstring. When bitLen is smaller than
// v's current bit length (by word count), the result is v truncated and
// masked; otherwise it is v zero-extended. This mirrors
// original_source/src/common/vector.c's vect_resize, which special-cases
// shrinking by only ever touching the already-allocated prefix.
func Resize(v Vec, newBitLen int) Vec {
	out := New(newBitLen)
	n := len(out)
	if n > len(v) {
		n = len(v)
	}
	copy(out, v[:n])
	TruncateN(out, newBitLen)
	return out
}

// RandomDense draws bitLen uniform random bits from r and applies the
// top-word mask.
func RandomDense(r io.Reader, bitLen int) (Vec, error) {
	v := New(bitLen)
	buf := make([]byte, len(v)*8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	TruncateN(v, bitLen)
	return v, nil
}

// Pack serializes v to its canonical little-endian byte representation,
// truncated to ceil(bitLen/8) bytes with any bits at positions >= bitLen
// cleared: byte packing is little-endian within each 64-bit word, and
// inter-word order is ascending position.
func Pack(v Vec, bitLen int) []byte {
	nBytes := (bitLen + 7) / 8
	out := make([]byte, nBytes)
	var word [8]byte
	for i := 0; i*8 < nBytes; i++ {
		var w uint64
		if i < len(v) {
			w = v[i]
		}
		binary.LittleEndian.PutUint64(word[:], w)
		copy(out[i*8:], word[:])
	}
	if rem := uint(bitLen % 8); rem != 0 {
		out[nBytes-1] &= byte(1<<rem) - 1
	}
	return out
}

// Unpack parses the little-endian packed byte representation of a
// bitLen-bit vector, zeroing any bits at positions >= bitLen.
func Unpack(b []byte, bitLen int) Vec {
	v := New(bitLen)
	for i := range v {
		var word [8]byte
		lo := i * 8
		hi := lo + 8
		if hi > len(b) {
			hi = len(b)
		}
		if lo < hi {
			copy(word[:], b[lo:hi])
		}
		v[i] = binary.LittleEndian.Uint64(word[:])
	}
	TruncateN(v, bitLen)
	return v
}
