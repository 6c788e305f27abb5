package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// primeGenerator implements rsacore.PrimeGenerator by rejection sampling.
type primeGenerator struct {
	logger logger.Logger
	tester rsacore.PrimalityTester
	rng    *rand.Rand
}

// NewPrimeGenerator creates a prime generator drawing candidates from rng and
// checking them with tester. A nil rng means a wall-clock seeded generator per
// Generate call.
func NewPrimeGenerator(logger logger.Logger, tester rsacore.PrimalityTester, rng *rand.Rand) (rsacore.PrimeGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if tester == nil {
		return nil, errors.New("primality tester cannot be nil")
	}
	return &primeGenerator{
		logger: logger,
		tester: tester,
		rng:    rng,
	}, nil
}

// Generate returns the first candidate lower + U[0, upper) that passes
// rsacore.DefaultRounds Fermat trials. The search has no attempt limit and does
// not return for a range without primes.
func (g *primeGenerator) Generate(r rsacore.Range) (*big.Int, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate prime: %w", err)
	}

	rng := g.rng
	if rng == nil {
		rng = NewTimeSeededRand()
	}

	prime, attempts := retryUntil(func(int) (*big.Int, bool) {
		candidate := randBelow(rng, r.Upper)
		candidate.Add(candidate, r.Lower)
		return candidate, g.tester.ProbablyPrime(candidate, rsacore.DefaultRounds)
	})

	g.logger.Debug("found probable prime ", prime, " in ", r, " after ", attempts, " candidates")
	return prime, nil
}
