package cryptography

import (
	"math/big"
	"math/rand"
	"time"
)

// NewTimeSeededRand returns a pseudo-random generator seeded from the wall clock
// at one-second resolution. Generators created within the same second produce
// identical sequences.
func NewTimeSeededRand() *rand.Rand {
	return NewSeededRand(time.Now().Unix())
}

// NewSeededRand returns a pseudo-random generator with a fixed seed. It is not a
// cryptographic source.
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // textbook scheme, not a CSPRNG
}

// randBelow returns a uniform value in [0, bound). bound must be positive.
func randBelow(rng *rand.Rand, bound *big.Int) *big.Int {
	return new(big.Int).Rand(rng, bound)
}
