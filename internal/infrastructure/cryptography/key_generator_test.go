//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupKeyGenerator(t *testing.T, seed int64) rsacore.KeyGenerator {
	t.Helper()
	generator, err := NewKeyGenerator(testutil.SetupTestLogger(t), setupPrimeGenerator(t, seed))
	require.NoError(t, err)
	return generator
}

func TestNewKeyGenerator_Validation(t *testing.T) {
	_, err := NewKeyGenerator(nil, &MockPrimeGenerator{})
	assert.Error(t, err)

	_, err = NewKeyGenerator(testutil.SetupTestLogger(t), nil)
	assert.Error(t, err)
}

func TestKeyGenerator(t *testing.T) {
	r := rsacore.NewRange(rsacore.DemoLower, rsacore.DemoUpper)
	e := big.NewInt(rsacore.PublicExponent)

	for seed := int64(1); seed <= 10; seed++ {
		keyPair, err := setupKeyGenerator(t, seed).Generate(r)
		require.NoError(t, err)

		assert.Zero(t, keyPair.PublicExponent.Cmp(e))
		assert.NotZero(t, keyPair.P.Cmp(keyPair.Q), "p == q")
		assert.True(t, r.Contains(keyPair.P))
		assert.True(t, r.Contains(keyPair.Q))
		assert.Zero(t, new(big.Int).Mul(keyPair.P, keyPair.Q).Cmp(keyPair.Modulus))
		assert.Greater(t, keyPair.Modulus.Cmp(big.NewInt(rsacore.MaxByteValue)), 0)

		ed := new(big.Int).Mul(keyPair.PublicExponent, keyPair.PrivateExponent)
		assert.Zero(t, ed.Mod(ed, keyPair.Totient()).Cmp(one), "e*d != 1 mod phi")

		for _, x := range []int64{2, 3, 65, 104, 255, 1000} {
			m := big.NewInt(x)
			if new(big.Int).GCD(nil, nil, m, keyPair.Modulus).Cmp(one) != 0 {
				continue
			}
			c := new(big.Int).Exp(m, keyPair.PublicExponent, keyPair.Modulus)
			got := c.Exp(c, keyPair.PrivateExponent, keyPair.Modulus)
			assert.Zero(t, got.Cmp(m), "x=%d", x)
		}
	}
}

func TestKeyGenerator_ResamplesEqualPrimes(t *testing.T) {
	primes := &MockPrimeGenerator{}
	primes.On("Generate", mock.Anything).Return(big.NewInt(101), nil).Twice()
	primes.On("Generate", mock.Anything).Return(big.NewInt(103), nil).Once()

	generator, err := NewKeyGenerator(testutil.SetupTestLogger(t), primes)
	require.NoError(t, err)

	keyPair, err := generator.Generate(rsacore.NewRange(100, 10))
	require.NoError(t, err)

	assert.Equal(t, int64(101), keyPair.P.Int64())
	assert.Equal(t, int64(103), keyPair.Q.Int64())
	assert.Equal(t, int64(10403), keyPair.Modulus.Int64())
	assert.Equal(t, int64(10073), keyPair.PrivateExponent.Int64())
	primes.AssertNumberOfCalls(t, "Generate", 3)
}

func TestKeyGenerator_RestartsWhenExponentNotInvertible(t *testing.T) {
	// 917519 - 1 = 14 * 65537, so the first totient is a multiple of e.
	primes := &MockPrimeGenerator{}
	primes.On("Generate", mock.Anything).Return(big.NewInt(917519), nil).Once()
	primes.On("Generate", mock.Anything).Return(big.NewInt(101), nil).Twice()
	primes.On("Generate", mock.Anything).Return(big.NewInt(103), nil).Once()

	generator, err := NewKeyGenerator(testutil.SetupTestLogger(t), primes)
	require.NoError(t, err)

	keyPair, err := generator.Generate(rsacore.NewRange(100, 1000000))
	require.NoError(t, err)

	assert.Equal(t, int64(101), keyPair.P.Int64())
	assert.Equal(t, int64(103), keyPair.Q.Int64())
	primes.AssertNumberOfCalls(t, "Generate", 4)
}

func TestKeyGenerator_DeriveReportsFailure(t *testing.T) {
	primes := &MockPrimeGenerator{}
	primes.On("Generate", mock.Anything).Return(big.NewInt(917519), nil).Once()
	primes.On("Generate", mock.Anything).Return(big.NewInt(101), nil).Once()

	generator := &keyGenerator{logger: testutil.SetupTestLogger(t), primes: primes}

	_, err := generator.derive(rsacore.NewRange(100, 1000000))
	assert.ErrorIs(t, err, rsacore.ErrKeyGenerationFailure)
}

func TestKeyGenerator_PropagatesPrimeErrors(t *testing.T) {
	errBroken := errors.New("entropy exhausted")
	primes := &MockPrimeGenerator{}
	primes.On("Generate", mock.Anything).Return(nil, errBroken)

	generator, err := NewKeyGenerator(testutil.SetupTestLogger(t), primes)
	require.NoError(t, err)

	_, err = generator.Generate(rsacore.NewRange(100, 10))
	assert.ErrorIs(t, err, errBroken)
	primes.AssertNumberOfCalls(t, "Generate", 1)
}

func TestKeyGenerator_InvalidRange(t *testing.T) {
	_, err := setupKeyGenerator(t, testSeed).Generate(rsacore.NewRange(100, 0))
	assert.ErrorIs(t, err, rsacore.ErrInvalidRange)
}
