package xof

import (
	"golang.org/x/crypto/sha3"
)

// Domain separates the different roles a seed expander plays across the
// PKE and KEM layers: G binds message to randomness, H binds (pk,
// salt, m) to key material, K binds (m, ct) or (sigma, ct) to the
// shared secret, and
// I separates reseeding boundaries.
type Domain byte

const (
	DomainG Domain = 'G'
	DomainH Domain = 'H'
	DomainK Domain = 'K'
	DomainI Domain = 'I'
)

// Stream is a SHAKE-256 stream seeded from entropy and a personalization
// string, playing the role of a process-wide PRNG singleton. Unlike the
// C reference's global singleton, a Stream is an explicit value a caller
// owns and can instantiate per scenario: a process-wide default is a
// convenience, not a requirement.
type Stream struct {
	h sha3.ShakeHash
}

// NewStream seeds a fresh SHAKE-256 stream from entropy and an optional
// personalization string. Both are absorbed before any output is drawn.
func NewStream(entropy, personalization []byte) *Stream {
	h := sha3.NewShake256()
	h.Write(entropy)
	if len(personalization) > 0 {
		h.Write(personalization)
	}
	return &Stream{h: h}
}

// Read fills p with the next len(p) bytes of the stream. It always
// returns len(p), nil: a SHAKE stream never runs dry.
func (s *Stream) Read(p []byte) (int, error) {
	return s.h.Read(p)
}

// SeedExpander is a domain-separated SHAKE-256 stream deterministic in
// its seed, used for every randomized step inside key generation,
// encryption, and the masked multiplier's table/coordinate permutation.
type SeedExpander struct {
	h sha3.ShakeHash
}

// NewSeedExpander absorbs a domain byte followed by the seed and returns
// a stream ready to be read. Two SeedExpanders constructed from the same
// (domain, seed) pair always produce identical output.
func NewSeedExpander(domain Domain, seed []byte) *SeedExpander {
	h := sha3.NewShake256()
	h.Write([]byte{byte(domain)})
	h.Write(seed)
	return &SeedExpander{h: h}
}

// Read fills p with the next len(p) bytes of the expansion.
func (e *SeedExpander) Read(p []byte) (int, error) {
	return e.h.Read(p)
}

// Uint24 draws a single big-endian 24-bit integer from the stream, the
// primitive the fixed-weight sampler rejects against
// params.Set.RejectionThreshold.
func (e *SeedExpander) Uint24() (uint32, error) {
	var buf [3]byte
	if _, err := e.Read(buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}
