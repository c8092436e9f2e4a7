package hqc

import "errors"

// ErrBadParameter signals a build-time misconfiguration: an
// unsupported security level, or a share count outside [1, 6]. It is
// unreachable once a caller sticks to the exported Level and
// params.ShareCount constants.
var ErrBadParameter = errors.New("hqc: bad parameter")

// ErrRNGFailure means the entropy source refused to supply bytes.
// Every buffer the failing call was writing into must be treated as
// undefined; none of it is safe to use or to zeroize-and-retry.
var ErrRNGFailure = errors.New("hqc: rng failure")

// ErrShortBuffer means a MarshalBinary/UnmarshalBinary counterpart was
// given a byte slice of the wrong length for the security level it was
// built against.
var ErrShortBuffer = errors.New("hqc: short buffer")

// There is deliberately no decoding-failure error: a failed
// re-encryption check inside Decapsulate resolves to the implicit
// rejection shared secret and returns success. Surfacing which path
// was taken would be a padding-oracle-style break of the scheme's
// chosen-ciphertext security; see DESIGN.md.
