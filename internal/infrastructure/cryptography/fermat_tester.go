package cryptography

import (
	"errors"
	"math/big"
	"math/rand"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// fermatTester implements rsacore.PrimalityTester with the Fermat test.
type fermatTester struct {
	logger logger.Logger
	rng    *rand.Rand
}

// NewFermatTester creates a Fermat primality tester drawing bases from rng.
//
// With a nil rng every ProbablyPrime call seeds its own generator from the wall
// clock (see NewTimeSeededRand), so calls within the same second draw the same
// bases. With a non-nil rng the tester is not safe for concurrent use.
func NewFermatTester(logger logger.Logger, rng *rand.Rand) (rsacore.PrimalityTester, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &fermatTester{
		logger: logger,
		rng:    rng,
	}, nil
}

// ProbablyPrime reports whether n passes rounds Fermat trials with bases drawn
// uniformly from [1, n-2]. It returns false as soon as one trial fails.
//
// Carmichael numbers such as 561 satisfy a^(n-1) = 1 (mod n) for every base
// coprime to n and can be reported prime for any number of rounds.
// rounds below 1 are treated as 1.
func (f *fermatTester) ProbablyPrime(n *big.Int, rounds int) bool {
	if n == nil || n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if rounds < 1 {
		rounds = 1
	}

	rng := f.rng
	if rng == nil {
		rng = NewTimeSeededRand()
	}

	nMinusOne := new(big.Int).Sub(n, one)
	nMinusTwo := new(big.Int).Sub(n, two)

	for i := 0; i < rounds; i++ {
		a := randBelow(rng, nMinusTwo)
		a.Add(a, one)

		if !fermatTrial(n, nMinusOne, a) {
			f.logger.Debug("fermat witness ", a, " shows ", n, " is composite")
			return false
		}
	}

	return true
}

// fermatTrial reports whether a^(n-1) mod n == 1.
func fermatTrial(n, nMinusOne, a *big.Int) bool {
	return new(big.Int).Exp(a, nMinusOne, n).Cmp(one) == 0
}
