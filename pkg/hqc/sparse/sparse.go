package sparse

import (
	"fmt"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/xof"
)

// Sparse is an ordered list of distinct coordinates in [0, n). A
// coordinate c is consumed by the multiplier as dec = c & 0xF, lane = c
// >> 4, so no separate packing step is needed: the raw position already
// carries both fields.
type Sparse []uint32

// SampleFixedWeight draws `weight` distinct coordinates uniformly from
// [0, n) using the seed expander's Uint24 stream:
// reject any draw >= rejectionThreshold, reduce mod n, and only advance
// to the next slot once the candidate is confirmed distinct from every
// coordinate already accepted. Non-rejected samples are never shuffled.
func SampleFixedWeight(se *xof.SeedExpander, n int, weight int, rejectionThreshold uint32) (Sparse, error) {
	out := make(Sparse, 0, weight)
	seen := make(map[uint32]struct{}, weight)
	for len(out) < weight {
		r, err := se.Uint24()
		if err != nil {
			return nil, fmt.Errorf("sparse: draw coordinate: %w", err)
		}
		if r >= rejectionThreshold {
			continue
		}
		v := r % uint32(n)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// ToDense expands the sparse coordinate list into a dense bitLen-bit
// PolyDense, setting exactly the listed bit positions.
func (s Sparse) ToDense(bitLen int) bitvec.Vec {
	v := bitvec.New(bitLen)
	for _, c := range s {
		v.SetBit(int(c))
	}
	return v
}

// Weight returns the number of coordinates (the Hamming weight).
func (s Sparse) Weight() int { return len(s) }

// Clone returns an independent copy of s.
func (s Sparse) Clone() Sparse {
	out := make(Sparse, len(s))
	copy(out, s)
	return out
}
