package pke

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/params"
)

func TestKeyGenEncryptDecryptRoundTrip(t *testing.T) {
	p := params.HQC128

	pk, sk, err := KeyGen(rand.Reader, p)
	require.NoError(t, err)
	require.Len(t, pk.HSeed, p.SeedBytes)
	require.Len(t, sk.SKSeed, p.SeedBytes)
	require.Len(t, sk.Sigma, p.SharedSecretBytes)

	msg := make([]byte, p.K)
	_, err = rand.Read(msg)
	require.NoError(t, err)

	theta := make([]byte, p.SeedBytes)
	_, err = rand.Read(theta)
	require.NoError(t, err)

	ct, err := Encrypt(pk, msg, theta, p)
	require.NoError(t, err)

	decoded, ok, err := Decrypt(sk, ct, rand.Reader, 3, p)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, msg, decoded)
}

func TestDecryptWithDifferentShareCountsAgree(t *testing.T) {
	p := params.HQC128

	pk, sk, err := KeyGen(rand.Reader, p)
	require.NoError(t, err)

	msg := make([]byte, p.K)
	_, err = rand.Read(msg)
	require.NoError(t, err)
	theta := make([]byte, p.SeedBytes)
	_, err = rand.Read(theta)
	require.NoError(t, err)

	ct, err := Encrypt(pk, msg, theta, p)
	require.NoError(t, err)

	for _, m := range []int{1, 2, 4, 6} {
		decoded, ok, err := Decrypt(sk, ct, rand.Reader, m, p)
		require.NoError(t, err)
		require.True(t, ok, "share count %d", m)
		require.Equal(t, msg, decoded, "share count %d", m)
	}
}
