package cc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/params"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	code, err := New(params.HQC128)
	require.NoError(t, err)

	msg := make([]byte, params.HQC128.K)
	for i := range msg {
		msg[i] = byte(i*31 + 7)
	}

	cw, err := code.Encode(msg)
	require.NoError(t, err)
	require.Len(t, cw, params.HQC128.WordsN())

	decoded, ok := code.Decode(cw)
	require.True(t, ok)
	require.Equal(t, msg, decoded)
}

func TestDecodeToleratesSparseNoise(t *testing.T) {
	code, err := New(params.HQC128)
	require.NoError(t, err)

	msg := make([]byte, params.HQC128.K)
	cw, err := code.Encode(msg)
	require.NoError(t, err)

	flipped := make([]uint64, len(cw))
	copy(flipped, cw)
	for _, pos := range []int{1, 500, 1000, 4000, 9000} {
		flipped[pos/64] ^= 1 << uint(pos%64)
	}

	decoded, ok := code.Decode(flipped)
	require.True(t, ok)
	require.Equal(t, msg, decoded)
}

func TestNewRejectsMismatchedShape(t *testing.T) {
	bad := params.HQC128
	bad.RMOrder = 5
	_, err := New(bad)
	require.Error(t, err)
}
