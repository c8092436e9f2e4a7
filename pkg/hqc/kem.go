package hqc

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/bitvec"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/logging"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/params"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/pke"
	"github.com/open-quantum-safe/hqc-go/pkg/hqc/xof"
)

// DefaultRNG is a convenience entropy source that callers may pass to
// KeyPair/Encapsulate/Decapsulate. No function in this package reads it
// implicitly: every operation takes its io.Reader as an argument, so
// callers that need an isolated or deterministic source pass their own.
var DefaultRNG io.Reader = rand.Reader

// Log is the logger the three KEM operations report byte counts and
// security levels to. It defaults to a slog.Default() wrapper, whose
// default handler drops the Debug-level lines these operations emit
// but still prints the Error line of a failed key generation; callers
// that want visibility swap in their
// own logging.New(slog.New(...)) the same way they would swap
// DefaultRNG. Never fed key material, sampled vectors, recovered
// messages, or shared secrets; see pkg/hqc/logging's security
// considerations.
var Log logging.Logger = logging.New(nil)

// KeyPair generates a fresh key pair at the given security level,
// drawing all randomness from rng.
func KeyPair(rng io.Reader, level params.Level) (*PublicKey, *SecretKey, error) {
	p, err := params.ByLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadParameter, err)
	}
	Log.Debug(context.Background(), "generating key pair", "level", level.String())

	innerPK, innerSK, err := pke.KeyGen(rng, p)
	if err != nil {
		Log.Error(context.Background(), "key generation failed", "level", level.String(), "error", err)
		return nil, nil, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}

	pk := &PublicKey{level: level, hSeed: innerPK.HSeed, s: innerPK.S}
	sk := &SecretKey{level: level, skSeed: innerSK.SKSeed, sigma: innerSK.Sigma, pk: *pk}
	Log.Debug(context.Background(), "key pair generated",
		"level", level.String(), "public_key_bytes", p.PublicKeyBytes(), "secret_key_bytes", p.SecretKeyBytes())
	return pk, sk, nil
}

// hashTheta derives the 64-byte encryption randomness from (pk, salt,
// m) via the H-domain XOF.
func hashTheta(pkBytes, salt, m []byte) []byte {
	se := xof.NewSeedExpander(xof.DomainH, concatBytes(pkBytes, salt, m))
	theta := make([]byte, 64)
	_, _ = se.Read(theta)
	return theta
}

// hashSharedSecret derives the 64-byte shared secret from (m, ct) via
// the K-domain XOF.
func hashSharedSecret(m, ctBytes []byte) SharedSecret {
	se := xof.NewSeedExpander(xof.DomainK, concatBytes(m, ctBytes))
	ss := make(SharedSecret, 64)
	_, _ = se.Read(ss)
	return ss
}

func concatBytes(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Encapsulate draws fresh randomness from rng, encrypts it under pk,
// and derives the matching shared secret.
func Encapsulate(rng io.Reader, pk *PublicKey) (*Ciphertext, SharedSecret, error) {
	p, err := params.ByLevel(pk.level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadParameter, err)
	}
	Log.Debug(context.Background(), "encapsulating", "level", pk.level.String())

	m := make([]byte, p.K)
	if _, err := io.ReadFull(rng, m); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}
	salt := make([]byte, p.SaltBytes)
	if _, err := io.ReadFull(rng, salt); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}

	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	theta := hashTheta(pkBytes, salt, m)

	innerPK := &pke.PublicKey{HSeed: pk.hSeed, S: pk.s}
	innerCT, err := pke.Encrypt(innerPK, m, theta, p)
	if err != nil {
		return nil, nil, fmt.Errorf("hqc: encapsulate: %w", err)
	}

	ct := &Ciphertext{level: pk.level, u: innerCT.U, v: innerCT.V, salt: salt}
	ctBytes, err := ct.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}

	ss := hashSharedSecret(m, ctBytes)
	Log.Debug(context.Background(), "encapsulated", "level", pk.level.String(), "ciphertext_bytes", len(ctBytes))
	return ct, ss, nil
}

// Decapsulate recovers the shared secret encapsulated in ct under sk:
// it re-encrypts the decrypted message and constant-time-selects
// between the re-encryption-derived
// shared secret and sk.sigma's implicit-rejection fallback, so neither
// a tampered ciphertext nor a tampered secret key ever surfaces a
// decoding failure to the caller. scheduleRNG seeds the masked
// multiplier's table/coordinate permutations; shareCount sets its
// masking order.
func Decapsulate(scheduleRNG io.Reader, sk *SecretKey, ct *Ciphertext, shareCount ShareCount) (SharedSecret, error) {
	if err := shareCount.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParameter, err)
	}
	p, err := params.ByLevel(sk.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParameter, err)
	}
	// Only the level and masking order are logged here: whether the
	// re-encryption check below passes must never reach a log line,
	// since that is exactly the signal the implicit-rejection fallback
	// exists to hide from an observer.
	Log.Debug(context.Background(), "decapsulating", "level", sk.level.String(), "share_count", int(shareCount))

	innerSK := &pke.SecretKey{SKSeed: sk.skSeed, Sigma: sk.sigma}
	innerCT := &pke.Ciphertext{U: ct.u, V: ct.v}
	mPrime, decOK, err := pke.Decrypt(innerSK, innerCT, scheduleRNG, int(shareCount), p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}
	_ = decOK // the re-encryption check below is the only signal that reaches the caller.

	pkBytes, err := sk.pk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	thetaPrime := hashTheta(pkBytes, ct.salt, mPrime)

	innerPK := &pke.PublicKey{HSeed: sk.pk.hSeed, S: sk.pk.s}
	ctPrime, err := pke.Encrypt(innerPK, mPrime, thetaPrime, p)
	if err != nil {
		return nil, fmt.Errorf("hqc: decapsulate: re-encrypt: %w", err)
	}

	// Both comparisons run unconditionally and are combined by
	// multiplying their 0/1 results, not by a boolean "&&", so the
	// combination itself never branches on the outcome.
	validU := subtle.ConstantTimeCompare(bitvec.Pack(ct.u, p.N), bitvec.Pack(ctPrime.U, p.N))
	validV := subtle.ConstantTimeCompare(bitvec.Pack(ct.v, p.N1*p.N2), bitvec.Pack(ctPrime.V, p.N1*p.N2))
	valid := validU * validV

	ctBytes, err := ct.MarshalBinary()
	if err != nil {
		return nil, err
	}
	candidate := hashSharedSecret(mPrime, ctBytes)
	fallback := hashSharedSecret(sk.sigma, ctBytes)

	ss := make(SharedSecret, len(candidate))
	subtle.ConstantTimeCopy(valid, ss, candidate)
	subtle.ConstantTimeCopy(1-valid, ss, fallback)
	Log.Debug(context.Background(), "decapsulated", "level", sk.level.String(), "ciphertext_bytes", len(ctBytes))
	return ss, nil
}
