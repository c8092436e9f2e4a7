package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedExpanderDeterministic(t *testing.T) {
	seed := []byte("a 40 byte seed padded out to length.....")
	a := NewSeedExpander(DomainG, seed)
	b := NewSeedExpander(DomainG, seed)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, err := a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.Equal(t, bufA, bufB)
}

func TestSeedExpanderDomainSeparation(t *testing.T) {
	seed := []byte("shared seed material")
	g := NewSeedExpander(DomainG, seed)
	h := NewSeedExpander(DomainH, seed)

	bufG := make([]byte, 32)
	bufH := make([]byte, 32)
	_, _ = g.Read(bufG)
	_, _ = h.Read(bufH)
	require.NotEqual(t, bufG, bufH)
}

func TestUint24Range(t *testing.T) {
	se := NewSeedExpander(DomainK, []byte("seed"))
	for i := 0; i < 1000; i++ {
		v, err := se.Uint24()
		require.NoError(t, err)
		require.Less(t, v, uint32(1<<24))
	}
}

func TestStreamReadFillsBuffer(t *testing.T) {
	s := NewStream([]byte("entropy"), []byte("pers"))
	buf := make([]byte, 16)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 16, n)
}
