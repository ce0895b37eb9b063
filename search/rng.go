package search

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or inject
// no random source at all.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is NOT goroutine-safe; give every goroutine its own.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
