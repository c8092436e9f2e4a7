package cc

import (
	"fmt"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/gf256"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/params"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/rm"
)

// Code is the concatenated (Reed-Solomon outer, Reed-Muller inner) code
// for one parameter set.
type Code struct {
	p params.Set
	rs *gf256.RS
	rm *rm.Code
}

// New builds the concatenated code for p.
func New(p params.Set) (*Code, error) {
	rs, err := gf256.NewRS(p.N1, p.K, p.Delta)
	if err != nil {
		return nil, fmt.Errorf("cc: build outer code: %w", err)
	}
	rmCode, err := rm.New(p.RMOrder, p.RMMultiplicity)
	if err != nil {
		return nil, fmt.Errorf("cc: build inner code: %w", err)
	}
	if rmCode.BlockBits() != p.N2 {
		return nil, fmt.Errorf("cc: inner code block size %d != N2 %d", rmCode.BlockBits(), p.N2)
	}
	return &Code{p: p, rs: rs, rm: rmCode}, nil
}

// Encode maps a K-byte message to an N-bit dense codeword: outer
// Reed-Solomon encode to N1 bytes, inner Reed-Muller encode each byte
// to N2 bits, concatenate, then zero-pad to the parameter set's N.
func (c *Code) Encode(msg []byte) (bitvec.Vec, error) {
	rsWord, err := c.rs.Encode(msg)
	if err != nil {
		return nil, fmt.Errorf("cc: outer encode: %w", err)
	}
	packed := c.rm.Encode(rsWord)

	innerBits := c.p.N1 * c.p.N2
	out := bitvec.New(c.p.N)
	copy(out, bitvec.Unpack(packed, innerBits))
	return out, nil
}

// Decode reverses Encode: it slices the first N1*N2 bits off received,
// Reed-Muller decodes each symbol, then Reed-Solomon corrects and
// extracts the K-byte message. ok is false on an uncorrectable error
// pattern.
func (c *Code) Decode(received bitvec.Vec) (msg []byte, ok bool) {
	innerBits := c.p.N1 * c.p.N2
	packed := bitvec.Pack(received, innerBits)

	rmWord, err := c.rm.Decode(packed)
	if err != nil {
		// Unreachable in practice: packed is always exactly
		// innerBits/8 bytes by construction. Kept non-nil so a caller
		// relying on the same-shape-on-failure contract as rs.Decode
		// never sees a nil message.
		return make([]byte, c.p.K), false
	}
	return c.rs.Decode(rmWord)
}
