package params

import "fmt"

// Level names one of the three NIST security categories this scheme
// targets. The integer values are stable and may be persisted by callers
// that need to remember which profile produced a given key.
type Level int

const (
	Level128 Level = 128
	Level192 Level = 192
	Level256 Level = 256
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case Level128:
		return "HQC-128"
	case Level192:
		return "HQC-192"
	case Level256:
		return "HQC-256"
	default:
		return fmt.Sprintf("HQC-unknown(%d)", int(l))
	}
}

// ShareCount is the masking order M used by the side-channel-hardened
// multiplier (gf2x.SafeMul). M == 1 degrades to the plain, unmasked
// multiplication and exists for benchmarking .
type ShareCount int

// MinShareCount and MaxShareCount bound the masking order a build may
// select. The upper bound matches the reference implementation's
// macro-expanded M in {1..6}.
const (
	MinShareCount ShareCount = 1
	MaxShareCount ShareCount = 6
)

// Validate reports whether m is an acceptable masking order.
func (m ShareCount) Validate() error {
	if m < MinShareCount || m > MaxShareCount {
		return fmt.Errorf("hqc: share count %d out of range [%d,%d]", m, MinShareCount, MaxShareCount)
	}
	return nil
}

// Set is the full constant record for one security level: code length,
// information length, interleaver dimensions, and the three sparse
// vector weights, plus the fixed byte sizes shared by every level.
type Set struct {
	Level Level

	N int // code length (prime, ring degree of GF(2)[X]/(X^N-1))
	K int // information length in bytes, RS message size
	N1 int // RS codeword length in bytes
	N2 int // RM block length in bits, per RS symbol
	Delta int // RS correction capacity in symbols
	Omega int // Hamming weight of the secret vectors x, y
	OmegaE int // Hamming weight of the error vector e
	OmegaR int // Hamming weight of the randomness vectors r1, r2

	RMOrder int // m in RM(1, m): block length is 2^RMOrder bits
	RMMultiplicity int // repeat factor so that N2 == RMMultiplicity * 2^RMOrder

	SeedBytes int
	SaltBytes int
	SharedSecretBytes int
	RejectionThreshold uint32 // floor(2^24 / N) * N
}

const (
	seedBytes = 40
	saltBytes = 16
	sharedSecretBytes = 64
)

func rejectionThreshold(n int) uint32 {
	const span = uint32(1) << 24
	return (span / uint32(n)) * uint32(n)
}

// HQC128, HQC192, HQC256 are the three standard profiles. Values follow
// the HQC round 3/4 NIST submission parameter sets; an interoperable
// build MUST NOT change them. See DESIGN.md for how the RM
// order/multiplicity decomposition of N2 was chosen.
var (
	HQC128 = mustBuild(Set{
			Level: Level128, N: 17669, K: 16, N1: 46, N2: 384, Delta: 15,
			Omega: 66, OmegaE: 75, OmegaR: 75,
			RMOrder: 7, RMMultiplicity: 3,
	})
	HQC192 = mustBuild(Set{
			Level: Level192, N: 35851, K: 24, N1: 56, N2: 640, Delta: 16,
			Omega: 100, OmegaE: 114, OmegaR: 114,
			RMOrder: 7, RMMultiplicity: 5,
	})
	HQC256 = mustBuild(Set{
			Level: Level256, N: 57637, K: 32, N1: 90, N2: 640, Delta: 29,
			Omega: 131, OmegaE: 149, OmegaR: 149,
			RMOrder: 7, RMMultiplicity: 5,
	})
)

func mustBuild(s Set) Set {
	s.SeedBytes = seedBytes
	s.SaltBytes = saltBytes
	s.SharedSecretBytes = sharedSecretBytes
	s.RejectionThreshold = rejectionThreshold(s.N)
	if s.N1*s.N2 > ((s.N + 63) / 64 * 64) {
		panic(fmt.Sprintf("hqc: params %s: N1*N2=%d exceeds padded N=%d", s.Level, s.N1*s.N2, s.N))
	}
	if s.RMMultiplicity*(1<<s.RMOrder) != s.N2 {
		panic(fmt.Sprintf("hqc: params %s: RM multiplicity*2^order (%d) != N2 (%d)", s.Level, s.RMMultiplicity*(1<<s.RMOrder), s.N2))
	}
	return s
}

// ByLevel returns the constant Set for a security level.
func ByLevel(l Level) (Set, error) {
	switch l {
	case Level128:
		return HQC128, nil
	case Level192:
		return HQC192, nil
	case Level256:
		return HQC256, nil
	default:
		return Set{}, fmt.Errorf("hqc: unsupported security level %v", l)
	}
}

// WordsN returns ceil(N/64), the number of 64-bit words in a PolyDense of
// length N.
func (s Set) WordsN() int { return (s.N + 63) / 64 }

// WordsN1N2 returns ceil(N1*N2/64).
func (s Set) WordsN1N2() int { return (s.N1*s.N2 + 63) / 64 }

// BytesN returns ceil(N/8), the packed byte length of a length-N vector.
func (s Set) BytesN() int { return (s.N + 7) / 8 }

// BytesN1N2 returns ceil(N1*N2/8).
func (s Set) BytesN1N2() int { return (s.N1*s.N2 + 7) / 8 }

// PublicKeyBytes is SEED_BYTES plus the packed byte length of s.
func (s Set) PublicKeyBytes() int { return s.SeedBytes + s.BytesN() }

// SecretKeyBytes is SEED_BYTES plus the sigma fallback value plus the
// serialized public key: sk = sk_seed || sigma || pk.
func (s Set) SecretKeyBytes() int { return s.SeedBytes + s.SharedSecretBytes + s.PublicKeyBytes() }

// CiphertextBytes is the packed byte length of u, plus the packed byte
// length of v (truncated to N1*N2 bits), plus the salt.
func (s Set) CiphertextBytes() int { return s.BytesN() + s.BytesN1N2() + s.SaltBytes }
