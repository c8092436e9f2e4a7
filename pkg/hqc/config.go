package hqc

import "github.com/open-quantum-safe/hqc-go/pkg/hqc/params"

// Level selects one of the three NIST security categories. It is a
// type alias so callers never need to import pkg/hqc/params directly
// just to name a level.
type Level = params.Level

// Standard level constants, re-exported for convenience.
const (
	Level128 = params.Level128
	Level192 = params.Level192
	Level256 = params.Level256
)

// ShareCount selects the masking order of the side-channel-hardened
// multiplier used inside Decapsulate. 1 disables masking.
type ShareCount = params.ShareCount

// DefaultShareCount is a masking order callers may pass to Decapsulate
// when they do not need to tune it. Decapsulate always takes the share
// count as an argument; nothing in this package applies it implicitly.
const DefaultShareCount ShareCount = 3
