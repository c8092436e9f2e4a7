package hqc

import (
	"fmt"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/params"
)

// PublicKey is h_seed (40 bytes) followed by the byte-packed dense
// polynomial s.
type PublicKey struct {
	level params.Level
	hSeed []byte
	s bitvec.Vec
}

// Level reports the security level this key was generated for.
func (pk *PublicKey) Level() params.Level { return pk.level }

// MarshalBinary serializes pk to its fixed-length external
// representation: h_seed || byte-packed(s).
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	p, err := params.ByLevel(pk.level)
	if err != nil {
		return nil, fmt.Errorf("hqc: marshal public key: %w", err)
	}
	out := make([]byte, 0, p.PublicKeyBytes())
	out = append(out, pk.hSeed...)
	out = append(out, bitvec.Pack(pk.s, p.N)...)
	return out, nil
}

// UnmarshalBinary parses a public key previously produced by
// MarshalBinary for the given level.
func (pk *PublicKey) UnmarshalBinary(level params.Level, data []byte) error {
	p, err := params.ByLevel(level)
	if err != nil {
		return fmt.Errorf("hqc: unmarshal public key: %w", err)
	}
	if len(data) != p.PublicKeyBytes() {
		return fmt.Errorf("%w: public key wants %d bytes, got %d", ErrShortBuffer, p.PublicKeyBytes(), len(data))
	}
	pk.level = level
	pk.hSeed = append([]byte(nil), data[:p.SeedBytes]...)
	pk.s = bitvec.Unpack(data[p.SeedBytes:], p.N)
	return nil
}

// SecretKey is sk_seed (40 bytes), sigma (64 bytes), and the
// corresponding public key: sk = sk_seed || sigma || pk.
type SecretKey struct {
	level params.Level
	skSeed []byte
	sigma []byte
	pk PublicKey
}

// Level reports the security level this key was generated for.
func (sk *SecretKey) Level() params.Level { return sk.level }

// PublicKey returns the public key embedded in sk.
func (sk *SecretKey) PublicKey() *PublicKey { return &sk.pk }

// MarshalBinary serializes sk to sk_seed || sigma || pk.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	p, err := params.ByLevel(sk.level)
	if err != nil {
		return nil, fmt.Errorf("hqc: marshal secret key: %w", err)
	}
	pkBytes, err := sk.pk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, p.SecretKeyBytes())
	out = append(out, sk.skSeed...)
	out = append(out, sk.sigma...)
	out = append(out, pkBytes...)
	return out, nil
}

// UnmarshalBinary parses a secret key previously produced by
// MarshalBinary for the given level.
func (sk *SecretKey) UnmarshalBinary(level params.Level, data []byte) error {
	p, err := params.ByLevel(level)
	if err != nil {
		return fmt.Errorf("hqc: unmarshal secret key: %w", err)
	}
	if len(data) != p.SecretKeyBytes() {
		return fmt.Errorf("%w: secret key wants %d bytes, got %d", ErrShortBuffer, p.SecretKeyBytes(), len(data))
	}
	sk.level = level
	sk.skSeed = append([]byte(nil), data[:p.SeedBytes]...)
	sk.sigma = append([]byte(nil), data[p.SeedBytes:p.SeedBytes+p.SharedSecretBytes]...)
	return sk.pk.UnmarshalBinary(level, data[p.SeedBytes+p.SharedSecretBytes:])
}

// Zeroize overwrites sk's secret material in place. The embedded
// public key is left intact since it carries no secrets.
func (sk *SecretKey) Zeroize() {
	zeroizeBytes(sk.skSeed)
	zeroizeBytes(sk.sigma)
}

// Ciphertext is the byte-packed u, the byte-packed (truncated) v, and
// a 16-byte salt.
type Ciphertext struct {
	level params.Level
	u bitvec.Vec
	v bitvec.Vec
	salt []byte
}

// Level reports the security level this ciphertext was produced for.
func (ct *Ciphertext) Level() params.Level { return ct.level }

// MarshalBinary serializes ct to byte-packed(u) || byte-packed(v) ||
// salt.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	p, err := params.ByLevel(ct.level)
	if err != nil {
		return nil, fmt.Errorf("hqc: marshal ciphertext: %w", err)
	}
	out := make([]byte, 0, p.CiphertextBytes())
	out = append(out, bitvec.Pack(ct.u, p.N)...)
	out = append(out, bitvec.Pack(ct.v, p.N1*p.N2)...)
	out = append(out, ct.salt...)
	return out, nil
}

// UnmarshalBinary parses a ciphertext previously produced by
// MarshalBinary for the given level.
func (ct *Ciphertext) UnmarshalBinary(level params.Level, data []byte) error {
	p, err := params.ByLevel(level)
	if err != nil {
		return fmt.Errorf("hqc: unmarshal ciphertext: %w", err)
	}
	if len(data) != p.CiphertextBytes() {
		return fmt.Errorf("%w: ciphertext wants %d bytes, got %d", ErrShortBuffer, p.CiphertextBytes(), len(data))
	}
	ct.level = level
	uBytes := p.BytesN()
	vBytes := p.BytesN1N2()
	ct.u = bitvec.Unpack(data[:uBytes], p.N)
	ct.v = bitvec.Unpack(data[uBytes:uBytes+vBytes], p.N1*p.N2)
	ct.salt = append([]byte(nil), data[uBytes+vBytes:]...)
	return nil
}

// SharedSecret is the 64-byte session key produced by Encapsulate and
// Decapsulate.
type SharedSecret []byte
