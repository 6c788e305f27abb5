//go:build unit
// +build unit

package cryptography

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/stretchr/testify/mock"
)

// MockPrimeGenerator is a mock implementation of rsacore.PrimeGenerator
type MockPrimeGenerator struct {
	mock.Mock
}

func (m *MockPrimeGenerator) Generate(r rsacore.Range) (*big.Int, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockPrimalityTester is a mock implementation of rsacore.PrimalityTester
type MockPrimalityTester struct {
	mock.Mock
}

func (m *MockPrimalityTester) ProbablyPrime(n *big.Int, rounds int) bool {
	args := m.Called(n, rounds)
	return args.Bool(0)
}
