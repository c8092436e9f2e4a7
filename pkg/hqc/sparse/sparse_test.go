package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/xof"
)

func TestSampleFixedWeightProducesDistinctCoordinates(t *testing.T) {
	se := xof.NewSeedExpander(xof.DomainG, []byte("seed"))
	n, weight := 1000, 50
	s, err := SampleFixedWeight(se, n, weight, rejectionThreshold(n))
	require.NoError(t, err)
	require.Equal(t, weight, s.Weight())

	seen := make(map[uint32]bool)
	for _, c := range s {
		require.False(t, seen[c], "coordinate %d repeated", c)
		require.Less(t, c, uint32(n))
		seen[c] = true
	}
}

func TestSampleFixedWeightDeterministic(t *testing.T) {
	seed := []byte("deterministic seed")
	a, err := SampleFixedWeight(xof.NewSeedExpander(xof.DomainG, seed), 500, 20, rejectionThreshold(500))
	require.NoError(t, err)
	b, err := SampleFixedWeight(xof.NewSeedExpander(xof.DomainG, seed), 500, 20, rejectionThreshold(500))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestToDenseSetsExactlyListedBits(t *testing.T) {
	s := Sparse{3, 7, 64, 65}
	v := s.ToDense(128)
	for i := 0; i < 128; i++ {
		want := uint64(0)
		for _, c := range s {
			if int(c) == i {
				want = 1
			}
		}
		require.Equal(t, want, v.Bit(i))
	}
}

func rejectionThreshold(n int) uint32 {
	const span = uint32(1) << 24
	return (span / uint32(n)) * uint32(n)
}
