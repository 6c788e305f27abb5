package rsacore

import (
	"fmt"
	"math/big"
	"strings"
)

// Range bounds a prime search. Candidates are drawn from [Lower, Lower+Upper):
// Upper is a span added to Lower, not an absolute ceiling.
type Range struct {
	Lower *big.Int
	Upper *big.Int
}

// NewRange builds a Range from small integer bounds.
func NewRange(lower, upper int64) Range {
	return Range{Lower: big.NewInt(lower), Upper: big.NewInt(upper)}
}

// Validate checks lower >= 0 and upper > 0.
func (r Range) Validate() error {
	if r.Lower == nil || r.Upper == nil {
		return fmt.Errorf("%w: bounds must be set", ErrInvalidRange)
	}
	if r.Lower.Sign() < 0 {
		return fmt.Errorf("%w: lower bound %s is negative", ErrInvalidRange, r.Lower)
	}
	if r.Upper.Sign() <= 0 {
		return fmt.Errorf("%w: upper bound %s must be positive", ErrInvalidRange, r.Upper)
	}
	return nil
}

// Contains reports whether v lies in [Lower, Lower+Upper).
func (r Range) Contains(v *big.Int) bool {
	ceiling := new(big.Int).Add(r.Lower, r.Upper)
	return v.Cmp(r.Lower) >= 0 && v.Cmp(ceiling) < 0
}

// String renders the effective half-open candidate interval.
func (r Range) String() string {
	if r.Lower == nil || r.Upper == nil {
		return "[<nil>)"
	}
	return fmt.Sprintf("[%s, %s)", r.Lower, new(big.Int).Add(r.Lower, r.Upper))
}

// PublicKey is the (e, N) half of a key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the (d, N) half of a key pair.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair holds a derived key. P and Q are kept so the derivation can be
// checked; they are never printed by the CLI.
type KeyPair struct {
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Modulus         *big.Int
	P               *big.Int
	Q               *big.Int
}

// PublicKey returns (e, N).
func (k *KeyPair) PublicKey() PublicKey {
	return PublicKey{E: k.PublicExponent, N: k.Modulus}
}

// PrivateKey returns (d, N).
func (k *KeyPair) PrivateKey() PrivateKey {
	return PrivateKey{D: k.PrivateExponent, N: k.Modulus}
}

// Totient returns (p-1)(q-1).
func (k *KeyPair) Totient() *big.Int {
	pMinusOne := new(big.Int).Sub(k.P, big.NewInt(1))
	qMinusOne := new(big.Int).Sub(k.Q, big.NewInt(1))
	return pMinusOne.Mul(pMinusOne, qMinusOne)
}

// Ciphertext is one unit per plaintext byte, in plaintext order.
type Ciphertext []*big.Int

// String renders each unit in decimal, separated by single spaces.
func (c Ciphertext) String() string {
	parts := make([]string, len(c))
	for i, unit := range c {
		parts[i] = unit.String()
	}
	return strings.Join(parts, " ")
}

// ParseCiphertext reads the space-separated decimal form produced by String.
func ParseCiphertext(s string) (Ciphertext, error) {
	fields := strings.Fields(s)
	units := make(Ciphertext, 0, len(fields))
	for i, field := range fields {
		unit, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, fmt.Errorf("%w: unit %d (%q) is not a decimal integer", ErrInvalidCiphertext, i, field)
		}
		units = append(units, unit)
	}
	return units, nil
}
