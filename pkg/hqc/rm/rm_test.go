package rm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c, err := New(7, 3)
	require.NoError(t, err)

	msg := []byte{0x00, 0xFF, 0x5A, 0xA5, 0x7E}
	encoded := c.Encode(msg)
	require.Len(t, encoded, len(msg)*c.Multiplicity*16)

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, msg, decoded)
}

func TestDecodeCorrectsNoise(t *testing.T) {
	c, err := New(7, 5)
	require.NoError(t, err)

	msg := []byte{0x3C}
	encoded := c.Encode(msg)

	// Flip a handful of bits across the repeats; Hadamard combining
	// should still recover the correct symbol.
	flipBit := func(buf []byte, pos int) {
		buf[pos/8] ^= 1 << uint(pos%8)
	}
	noisy := append([]byte(nil), encoded...)
	for _, pos := range []int{3, 17, 44, 90, 130, 300} {
		flipBit(noisy, pos)
	}

	decoded, err := c.Decode(noisy)
	require.NoError(t, err)
	require.Equal(t, msg, decoded)
}

func TestNewRejectsBadOrder(t *testing.T) {
	_, err := New(5, 3)
	require.Error(t, err)
}
