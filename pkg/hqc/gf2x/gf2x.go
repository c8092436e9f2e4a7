package gf2x

import (
	"encoding/binary"
	"fmt"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/shares"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/sparse"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/xof"
)

const tableRows = 16

func wordsForBits(n int) int { return (n + 63) / 64 }

// buildTable precomputes the 16 rows T[d] = a2 shifted left by d bits,
// each stored as wordsN+1 64-bit words to hold the carry-out.
func buildTable(a2 bitvec.Vec, wordsN int) [tableRows][]uint64 {
	var table [tableRows][]uint64
	row0 := make([]uint64, wordsN+1)
	copy(row0, a2[:wordsN])
	table[0] = row0

	for d := 1; d < tableRows; d++ {
		row := make([]uint64, wordsN+1)
		var carry uint64
		for j := 0; j < wordsN; j++ {
			row[j] = (a2[j] << uint(d)) | carry
			carry = a2[j] >> uint(64-d)
		}
		row[wordsN] = carry
		table[d] = row
	}
	return table
}

func wordToLanes(w uint64, out []uint16) {
	out[0] = uint16(w)
	out[1] = uint16(w >> 16)
	out[2] = uint16(w >> 32)
	out[3] = uint16(w >> 48)
}

func lanesToWord(l []uint16) uint64 {
	return uint64(l[0]) | uint64(l[1])<<16 | uint64(l[2])<<32 | uint64(l[3])<<48
}

// rowToLanes re-expresses a table row as 16-bit lanes so it can be
// XORed into the accumulation buffer at an arbitrary lane offset.
func rowToLanes(row []uint64) []uint16 {
	lanes := make([]uint16, len(row)*4)
	for i, w := range row {
		wordToLanes(w, lanes[4*i:])
	}
	return lanes
}

// identityPerm is the no-op permutation used by the plain variant: the
// physical table/coordinate order matches the logical one.
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// fisherYates draws a uniform permutation of [0, n) from se, following
// the reference implementation's swap(tab+i, 0, rnd[i] % (n-i)) scheme:
// the bias from the modulo is identical to the C reference's and is
// negligible for n in {16, weight}.
func fisherYates(se *xof.SeedExpander, n int) ([]int, error) {
	perm := identityPerm(n)
	if n <= 1 {
		return perm, nil
	}
	raw := make([]byte, n*2)
	if _, err := se.Read(raw); err != nil {
		return nil, fmt.Errorf("gf2x: draw permutation: %w", err)
	}
	for i := 0; i < n-1; i++ {
		r := binary.BigEndian.Uint16(raw[2*i:])
		j := i + int(r)%(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm, nil
}

// convolve accumulates the unreduced product of sparse a1 (consumed in
// the order given by coordOrder) against dense a2, using table rows
// stored at the physical slots given by tablePerm (tablePerm[d] is the
// slot holding the row shifted by d bits). It returns the raw
// (2*wordsN+1)-word buffer; callers must call reduceModXnMinus1.
func convolve(a1 sparse.Sparse, a2 bitvec.Vec, wordsN int, tablePerm, coordOrder []int) []uint64 {
	table := buildTable(a2, wordsN)
	laneTable := make([][]uint16, tableRows)
	for d := 0; d < tableRows; d++ {
		laneTable[tablePerm[d]] = rowToLanes(table[d])
	}

	totalLanes := 4 * (2*wordsN + 1)
	buf := make([]uint16, totalLanes)

	for _, idx := range coordOrder {
		c := a1[idx]
		d := c & 0xF
		s := c >> 4
		row := laneTable[tablePerm[d]]
		base := int(s)
		for k, lane := range row {
			pos := base + k
			if pos < len(buf) {
				buf[pos] ^= lane
			}
		}
	}

	words2 := totalLanes / 4
	out := make([]uint64, words2)
	for i := 0; i < words2; i++ {
		out[i] = lanesToWord(buf[4*i:])
	}
	return out
}

// reduceModXnMinus1 folds a (2*wordsN+1)-word buffer down to wordsN
// words using the identity X^n == 1, following the reference
// implementation's reduce().
func reduceModXnMinus1(a []uint64, n, wordsN int) bitvec.Vec {
	o := make(bitvec.Vec, wordsN)
	rem := uint(n % 64)
	for i := 0; i < wordsN; i++ {
		var r, carry uint64
		if rem != 0 {
			r = a[i+wordsN-1] >> rem
			carry = a[i+wordsN] << (64 - rem)
		} else {
			carry = a[i+wordsN]
		}
		o[i] = a[i] ^ r ^ carry
	}
	bitvec.TruncateN(o, n)
	return o
}

// Mul computes o(x) = a1(x) * a2(x) mod (X^n - 1): a sparse operand
// against a dense one, using a public (unpermuted) table and
// coordinate order. a2 must hold exactly wordsForBits(n) words.
func Mul(a1 sparse.Sparse, a2 bitvec.Vec, n int) bitvec.Vec {
	wordsN := wordsForBits(n)
	tablePerm := identityPerm(tableRows)
	coordOrder := identityPerm(len(a1))
	buf := convolve(a1, a2, wordsN, tablePerm, coordOrder)
	return reduceModXnMinus1(buf, n, wordsN)
}

// splitSparse partitions a1's coordinate list into m contiguous,
// disjoint slices whose union is a1.
func splitSparse(a1 sparse.Sparse, m int) []sparse.Sparse {
	out := make([]sparse.Sparse, m)
	w := len(a1)
	for i := 0; i < m; i++ {
		lo := i * w / m
		hi := (i + 1) * w / m
		out[i] = a1[lo:hi]
	}
	return out
}

// pairKey canonicalizes an unordered share-index pair so the same
// blinding polynomial is looked up for (i,j) and (j,i).
func pairKey(i, j int) [2]int {
	if i < j {
		return [2]int{i, j}
	}
	return [2]int{j, i}
}

// SafeMul computes the masked product of a1 and a2 as an M-way Shares
// container whose XOR-reduction equals Mul(a1, a2, n), using a
// side-channel-hardened schedule:
//
//   - the sparse operand is split into m contiguous support slices, the
//     dense operand into m contiguous word-range slices;
//   - every partial product a1_i . a2_j is computed with its own fresh
//     table/coordinate permutation;
//   - every cross term (i != j) is blinded with a fresh fixed-weight
//     polynomial shared between the (i,j) and (j,i) partials so the
//     blind cancels only once both are folded into the final XOR-sum.
//
// fixedWeight sets the Hamming weight of the blinding polynomials;
// rejectionThreshold is the caller's params.Set.RejectionThreshold for
// length n.
func SafeMul(se *xof.SeedExpander, a1 sparse.Sparse, a2 bitvec.Vec, n int, m int, fixedWeight int, rejectionThreshold uint32) (*shares.Shares, error) {
	if m < 1 {
		return nil, fmt.Errorf("gf2x: invalid share count %d", m)
	}
	wordsN := wordsForBits(n)

	a1Shares := splitSparse(a1, m)
	a2Shares, err := shares.FromSplit(a2, m)
	if err != nil {
		return nil, fmt.Errorf("gf2x: split dense operand: %w", err)
	}

	blinds := make(map[[2]int]bitvec.Vec)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			sp, err := sparse.SampleFixedWeight(se, n, fixedWeight, rejectionThreshold)
			if err != nil {
				return nil, fmt.Errorf("gf2x: draw blinding polynomial: %w", err)
			}
			blinds[pairKey(i, j)] = sp.ToDense(n)
		}
	}

	rows := make([]bitvec.Vec, m)
	for i := range rows {
		rows[i] = bitvec.New(n)
	}

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			tablePerm, err := fisherYates(se, tableRows)
			if err != nil {
				return nil, err
			}
			coordOrder, err := fisherYates(se, len(a1Shares[i]))
			if err != nil {
				return nil, err
			}
			buf := convolve(a1Shares[i], a2Shares.Parts[j], wordsN, tablePerm, coordOrder)
			partial := reduceModXnMinus1(buf, n, wordsN)
			if i != j {
				partial = bitvec.Xor(partial, blinds[pairKey(i, j)])
			}
			bitvec.XorInto(rows[i], rows[i], partial)
		}
	}

	return &shares.Shares{M: m, Parts: rows}, nil
}
