package kat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorsReproducible(t *testing.T) {
	for _, v := range Vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			a, err := Run(v)
			require.NoError(t, err)
			b, err := Run(v)
			require.NoError(t, err)

			require.Equal(t, a.PublicKey, b.PublicKey)
			require.Equal(t, a.SecretKey, b.SecretKey)
			require.Equal(t, a.Ciphertext, b.Ciphertext)
			require.Equal(t, []byte(a.SharedSecret), []byte(b.SharedSecret))
		})
	}
}

func TestVectorsDistinctAcrossEntropy(t *testing.T) {
	a, err := Run(Vectors[0])
	require.NoError(t, err)
	b, err := Run(Vectors[1])
	require.NoError(t, err)
	require.NotEqual(t, a.PublicKey, b.PublicKey)
}
