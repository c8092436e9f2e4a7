package shares

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
)

func TestFromSplitReducesToOriginal(t *testing.T) {
	v, err := bitvec.RandomDense(rand.Reader, 300)
	require.NoError(t, err)

	for _, m := range []int{1, 2, 3, 6} {
		s, err := FromSplit(v, m)
		require.NoError(t, err)
		require.Equal(t, v, s.Reduce())
	}
}

func TestAddIsShareWiseXor(t *testing.T) {
	a, err := bitvec.RandomDense(rand.Reader, 150)
	require.NoError(t, err)
	b, err := bitvec.RandomDense(rand.Reader, 150)
	require.NoError(t, err)

	sa, err := FromSplit(a, 3)
	require.NoError(t, err)
	sb, err := FromSplit(b, 3)
	require.NoError(t, err)

	sum, err := sa.Add(sb)
	require.NoError(t, err)
	require.Equal(t, bitvec.Xor(a, b), sum.Reduce())
}

func TestAddRejectsMismatchedShareCounts(t *testing.T) {
	v, err := bitvec.RandomDense(rand.Reader, 64)
	require.NoError(t, err)
	s2, err := FromSplit(v, 2)
	require.NoError(t, err)
	s3, err := FromSplit(v, 3)
	require.NoError(t, err)

	_, err = s2.Add(s3)
	require.Error(t, err)
}

func TestNewRejectsInvalidShareCount(t *testing.T) {
	_, err := New(0, 64)
	require.Error(t, err)
}
