package bitvec

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBitAndBit(t *testing.T) {
	v := New(100)
	v.SetBit(3)
	v.SetBit(99)
	require.Equal(t, uint64(1), v.Bit(3))
	require.Equal(t, uint64(1), v.Bit(99))
	require.Equal(t, uint64(0), v.Bit(50))
}

func TestXorSelfInverse(t *testing.T) {
	a, err := RandomDense(rand.Reader, 200)
	require.NoError(t, err)
	b, err := RandomDense(rand.Reader, 200)
	require.NoError(t, err)

	x := Xor(a, b)
	y := Xor(x, b)
	require.Equal(t, a, y)
}

func TestTruncateNClearsHighBits(t *testing.T) {
	v := New(70)
	for i := range v {
		v[i] = ^uint64(0)
	}
	TruncateN(v, 70)
	for i := 70; i < 128; i++ {
		require.Equal(t, uint64(0), v.Bit(i))
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	v, err := RandomDense(rand.Reader, 137)
	require.NoError(t, err)
	packed := Pack(v, 137)
	require.Len(t, packed, 18)

	got := Unpack(packed, 137)
	require.Equal(t, v, got)
}

func TestEqualConstantTime(t *testing.T) {
	a, err := RandomDense(rand.Reader, 64)
	require.NoError(t, err)
	b := Clone(a)
	require.True(t, EqualConstantTime(a, b, 64))

	b[0] ^= 1
	require.False(t, EqualConstantTime(a, b, 64))
}

func TestResizeShrinkAndGrow(t *testing.T) {
	v, err := RandomDense(rand.Reader, 200)
	require.NoError(t, err)

	shrunk := Resize(v, 50)
	require.Equal(t, Pack(v, 50), Pack(shrunk, 50))

	grown := Resize(shrunk, 300)
	require.True(t, bytes.Equal(Pack(shrunk, 50), Pack(grown, 50)[:7]))
}
