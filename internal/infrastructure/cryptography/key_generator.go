package cryptography

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

var errSamePrime = errors.New("q equals p")

// keyGenerator implements rsacore.KeyGenerator.
type keyGenerator struct {
	logger logger.Logger
	primes rsacore.PrimeGenerator
}

// NewKeyGenerator creates a key generator drawing p and q from primes.
func NewKeyGenerator(logger logger.Logger, primes rsacore.PrimeGenerator) (rsacore.KeyGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if primes == nil {
		return nil, errors.New("prime generator cannot be nil")
	}
	return &keyGenerator{
		logger: logger,
		primes: primes,
	}, nil
}

// Generate derives a key pair from two distinct primes in r. When e = 65537 has
// no inverse modulo φ the attempt is discarded and both primes are drawn again.
func (k *keyGenerator) Generate(r rsacore.Range) (*rsacore.KeyPair, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	keyPair, attempts, err := retryOnError(
		func(int) (*rsacore.KeyPair, error) { return k.derive(r) },
		func(err error) bool {
			if !errors.Is(err, rsacore.ErrKeyGenerationFailure) {
				return false
			}
			k.logger.Warn("restarting key generation: ", err)
			return true
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	k.logger.Info("Generated textbook RSA key pair with ", keyPair.Modulus.BitLen(), "-bit modulus after ", attempts, " attempt(s)")
	return keyPair, nil
}

func (k *keyGenerator) derive(r rsacore.Range) (*rsacore.KeyPair, error) {
	p, err := k.primes.Generate(r)
	if err != nil {
		return nil, err
	}

	q, _, err := retryOnError(
		func(int) (*big.Int, error) {
			q, err := k.primes.Generate(r)
			if err == nil && q.Cmp(p) == 0 {
				return nil, errSamePrime
			}
			return q, err
		},
		func(err error) bool { return errors.Is(err, errSamePrime) },
	)
	if err != nil {
		return nil, err
	}

	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, fmt.Errorf("prime generator returned %s and %s, want values >= 2", p, q)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	e := big.NewInt(rsacore.PublicExponent)
	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, fmt.Errorf("%w: gcd(%s, %s) != 1", rsacore.ErrKeyGenerationFailure, e, phi)
	}

	return &rsacore.KeyPair{
		PublicExponent:  e,
		PrivateExponent: d,
		Modulus:         n,
		P:               p,
		Q:               q,
	}, nil
}
