// Package kat supplies the fixed-seed known-answer-test harness for the
// hqc module: deterministic (entropy, personalization) inputs replayed
// through a single SHAKE-256 stream shared by key generation and
// encapsulation, reproducing a byte-identical (pk, sk, ct, ss) tuple
// across runs. See DESIGN.md for why this package ships the harness
// and reproducibility vectors rather than literal expected-output
// bytes.
package kat
