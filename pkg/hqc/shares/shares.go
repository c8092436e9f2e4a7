package shares

import (
	"fmt"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
)

// Shares holds M additive parts of a masked PolyDense. XOR-folding every
// part (Reduce) recovers the unmasked value. Parts built by FromSplit
// are disjoint word ranges of the value, so each such part carries its
// range of the value unmasked.
type Shares struct {
	M int
	Parts []bitvec.Vec
}

// New allocates an M-way Shares container, each part sized to hold a
// bitLen-bit polynomial, all initialized to zero.
func New(m int, bitLen int) (*Shares, error) {
	if m < 1 {
		return nil, fmt.Errorf("shares: invalid share count %d", m)
	}
	parts := make([]bitvec.Vec, m)
	for i := range parts {
		parts[i] = bitvec.New(bitLen)
	}
	return &Shares{M: m, Parts: parts}, nil
}

// FromSplit distributes in's bits across m contiguous word ranges, the
// same layout as shares_resize in the reference implementation: part i
// owns words [i*words/m, (i+1)*words/m) of the result and is zero
// elsewhere, so XOR-folding the parts reproduces in exactly.
func FromSplit(in bitvec.Vec, m int) (*Shares, error) {
	s, err := New(m, len(in)*64)
	if err != nil {
		return nil, err
	}
	n := len(in)
	for i := 0; i < m; i++ {
		lo := i * n / m
		hi := (i + 1) * n / m
		copy(s.Parts[i][lo:hi], in[lo:hi])
	}
	return s, nil
}

// Reduce XOR-folds every part together, recovering the unmasked
// PolyDense.
func (s *Shares) Reduce() bitvec.Vec {
	out := bitvec.Clone(s.Parts[0])
	for i := 1; i < s.M; i++ {
		bitvec.XorInto(out, out, s.Parts[i])
	}
	return out
}

// Add returns the share-wise XOR of s and o: Add(s, o).Reduce() ==
// bitvec.Xor(s.Reduce(), o.Reduce()) for any s, o of equal shape.
func (s *Shares) Add(o *Shares) (*Shares, error) {
	if s.M != o.M {
		return nil, fmt.Errorf("shares: mismatched share counts %d != %d", s.M, o.M)
	}
	out := &Shares{M: s.M, Parts: make([]bitvec.Vec, s.M)}
	for i := range out.Parts {
		out.Parts[i] = bitvec.Xor(s.Parts[i], o.Parts[i])
	}
	return out, nil
}
