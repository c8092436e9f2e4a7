package pke

import (
	"fmt"
	"io"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/cc"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/gf2x"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/params"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/sparse"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/xof"
)

// PublicKey is (h_seed, s): the seed that expands to the dense public
// polynomial h, and s = x + h*y.
type PublicKey struct {
	HSeed []byte
	S bitvec.Vec
}

// SecretKey is (sk_seed, sigma): sk_seed deterministically regenerates
// x, y, and h_seed (and therefore the whole public key); sigma is the
// KEM layer's decapsulation-failure fallback material.
type SecretKey struct {
	SKSeed []byte
	Sigma []byte
}

// Ciphertext is (u, v): u is N bits, v is the truncated N1*N2-bit
// masked codeword.
type Ciphertext struct {
	U bitvec.Vec
	V bitvec.Vec
}

// expandH regenerates the dense public polynomial h from its seed. h is
// public: using DomainG here is a convenience, not a secrecy
// requirement.
func expandH(hSeed []byte, p params.Set) bitvec.Vec {
	se := xof.NewSeedExpander(xof.DomainG, hSeed)
	buf := make([]byte, p.BytesN())
	// Errors are impossible: a SHAKE stream never runs dry.
	_, _ = se.Read(buf)
	return bitvec.Unpack(buf, p.N)
}

// deriveSecrets replays the deterministic expansion of sk_seed into
// (x, y, h_seed), in the exact order KeyGen drew them so Decrypt can
// recover y from sk_seed alone.
func deriveSecrets(skSeed []byte, p params.Set) (x, y sparse.Sparse, hSeed []byte, err error) {
	se := xof.NewSeedExpander(xof.DomainG, skSeed)
	x, err = sparse.SampleFixedWeight(se, p.N, p.Omega, p.RejectionThreshold)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pke: sample x: %w", err)
	}
	y, err = sparse.SampleFixedWeight(se, p.N, p.Omega, p.RejectionThreshold)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pke: sample y: %w", err)
	}
	hSeed = make([]byte, p.SeedBytes)
	if _, err := se.Read(hSeed); err != nil {
		return nil, nil, nil, fmt.Errorf("pke: draw h_seed: %w", err)
	}
	return x, y, hSeed, nil
}

// KeyGen draws a fresh key pair. rng supplies sk_seed and sigma; every
// other value is derived deterministically from sk_seed.
func KeyGen(rng io.Reader, p params.Set) (*PublicKey, *SecretKey, error) {
	skSeed := make([]byte, p.SeedBytes)
	if _, err := io.ReadFull(rng, skSeed); err != nil {
		return nil, nil, fmt.Errorf("pke: draw sk_seed: %w", err)
	}
	sigma := make([]byte, p.SharedSecretBytes)
	if _, err := io.ReadFull(rng, sigma); err != nil {
		return nil, nil, fmt.Errorf("pke: draw sigma: %w", err)
	}

	x, y, hSeed, err := deriveSecrets(skSeed, p)
	if err != nil {
		return nil, nil, err
	}
	h := expandH(hSeed, p)

	hy := gf2x.Mul(y, h, p.N)
	s := bitvec.Xor(x.ToDense(p.N), hy)

	pk := &PublicKey{HSeed: hSeed, S: s}
	sk := &SecretKey{SKSeed: skSeed, Sigma: sigma}
	return pk, sk, nil
}

// Encrypt deterministically encrypts msg under pk using theta as the
// sole source of randomness: the KEM layer derives theta from (m, pk)
// so Decrypt can recompute it and check re-encryption.
func Encrypt(pk *PublicKey, msg []byte, theta []byte, p params.Set) (*Ciphertext, error) {
	se := xof.NewSeedExpander(xof.DomainG, theta)
	r1, err := sparse.SampleFixedWeight(se, p.N, p.OmegaR, p.RejectionThreshold)
	if err != nil {
		return nil, fmt.Errorf("pke: sample r1: %w", err)
	}
	r2, err := sparse.SampleFixedWeight(se, p.N, p.OmegaR, p.RejectionThreshold)
	if err != nil {
		return nil, fmt.Errorf("pke: sample r2: %w", err)
	}
	e, err := sparse.SampleFixedWeight(se, p.N, p.OmegaE, p.RejectionThreshold)
	if err != nil {
		return nil, fmt.Errorf("pke: sample e: %w", err)
	}

	h := expandH(pk.HSeed, p)
	u := bitvec.Xor(r1.ToDense(p.N), gf2x.Mul(r2, h, p.N))

	code, err := cc.New(p)
	if err != nil {
		return nil, fmt.Errorf("pke: build concatenated code: %w", err)
	}
	encoded, err := code.Encode(msg)
	if err != nil {
		return nil, fmt.Errorf("pke: encode message: %w", err)
	}
	encodedTrunc := bitvec.Resize(encoded, p.N1*p.N2)

	sr2 := gf2x.Mul(r2, pk.S, p.N)
	noise := bitvec.Xor(sr2, e.ToDense(p.N))
	noiseTrunc := bitvec.Resize(noise, p.N1*p.N2)

	v := bitvec.Xor(encodedTrunc, noiseTrunc)

	return &Ciphertext{U: u, V: v}, nil
}

// Decrypt recovers the message masked under sk, masking the long-term
// secret multiplication u*y with SafeMul. scheduleRNG supplies fresh
// entropy for the masked multiplier's table/coordinate permutations and
// blinding polynomials; it is independent of sk_seed. ok is false on an
// uncorrectable codeword; the KEM layer is responsible for falling back
// to the implicit-rejection shared secret in that case.
func Decrypt(sk *SecretKey, ct *Ciphertext, scheduleRNG io.Reader, shareCount int, p params.Set) (msg []byte, ok bool, err error) {
	_, y, _, err := deriveSecrets(sk.SKSeed, p)
	if err != nil {
		return nil, false, err
	}

	scheduleSeed := make([]byte, p.SeedBytes)
	if _, err := io.ReadFull(scheduleRNG, scheduleSeed); err != nil {
		return nil, false, fmt.Errorf("pke: draw masking schedule seed: %w", err)
	}
	scheduleSE := xof.NewSeedExpander(xof.DomainI, scheduleSeed)

	uyShares, err := gf2x.SafeMul(scheduleSE, y, ct.U, p.N, shareCount, p.Omega, p.RejectionThreshold)
	if err != nil {
		return nil, false, fmt.Errorf("pke: masked multiply: %w", err)
	}
	uy := uyShares.Reduce()
	uyTrunc := bitvec.Resize(uy, p.N1*p.N2)

	mPrime := bitvec.Xor(ct.V, uyTrunc)

	code, err := cc.New(p)
	if err != nil {
		return nil, false, fmt.Errorf("pke: build concatenated code: %w", err)
	}
	msg, decOK := code.Decode(mPrime)
	return msg, decOK, nil
}
