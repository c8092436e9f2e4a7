package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByLevel(t *testing.T) {
	s, err := ByLevel(Level128)
	require.NoError(t, err)
	require.Equal(t, HQC128, s)

	_, err = ByLevel(Level(7))
	require.Error(t, err)
}

func TestByteSizesDerivedFromStructure(t *testing.T) {
	for _, s := range []Set{HQC128, HQC192, HQC256} {
		require.Equal(t, s.SeedBytes+s.BytesN(), s.PublicKeyBytes())
		require.Equal(t, s.SeedBytes+s.SharedSecretBytes+s.PublicKeyBytes(), s.SecretKeyBytes())
		require.Equal(t, s.BytesN()+s.BytesN1N2()+s.SaltBytes, s.CiphertextBytes())
	}
}

func TestShareCountValidate(t *testing.T) {
	require.NoError(t, ShareCount(1).Validate())
	require.NoError(t, ShareCount(6).Validate())
	require.Error(t, ShareCount(0).Validate())
	require.Error(t, ShareCount(7).Validate())
}

func TestRMDecompositionMatchesN2(t *testing.T) {
	for _, s := range []Set{HQC128, HQC192, HQC256} {
		require.Equal(t, s.N2, s.RMMultiplicity*(1<<uint(s.RMOrder)))
	}
}
