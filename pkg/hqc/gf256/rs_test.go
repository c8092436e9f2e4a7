package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldMulInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := Inv(Elem(a))
		require.Equal(t, Elem(1), Mul(Elem(a), inv), "a=%d", a)
	}
}

func TestFieldMulCommutative(t *testing.T) {
	require.Equal(t, Mul(37, 201), Mul(201, 37))
}

func TestRSEncodeDecodeNoErrors(t *testing.T) {
	rs, err := NewRS(46, 16, 15)
	require.NoError(t, err)

	msg := make([]byte, 16)
	for i := range msg {
		msg[i] = byte(i * 7)
	}
	cw, err := rs.Encode(msg)
	require.NoError(t, err)
	require.Len(t, cw, 46)

	decoded, ok := rs.Decode(cw)
	require.True(t, ok)
	require.Equal(t, msg, decoded)
}

func TestRSCorrectsErrorsWithinDelta(t *testing.T) {
	rs, err := NewRS(46, 16, 15)
	require.NoError(t, err)

	msg := make([]byte, 16)
	for i := range msg {
		msg[i] = byte(255 - i)
	}
	cw, err := rs.Encode(msg)
	require.NoError(t, err)

	corrupted := append([]byte(nil), cw...)
	for i := 0; i < rs.Delta; i++ {
		corrupted[i*2] ^= 0x5A
	}

	decoded, ok := rs.Decode(corrupted)
	require.True(t, ok)
	require.Equal(t, msg, decoded)
}

func TestRSRejectsTooManyErrors(t *testing.T) {
	rs, err := NewRS(46, 16, 15)
	require.NoError(t, err)

	msg := make([]byte, 16)
	cw, err := rs.Encode(msg)
	require.NoError(t, err)

	corrupted := append([]byte(nil), cw...)
	for i := range corrupted {
		corrupted[i] ^= 0xFF
	}

	_, ok := rs.Decode(corrupted)
	require.False(t, ok)
}

func TestNewRSRejectsBadShape(t *testing.T) {
	_, err := NewRS(46, 16, 14)
	require.Error(t, err)
}
