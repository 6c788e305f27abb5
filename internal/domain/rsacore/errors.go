package rsacore

import "errors"

var (
	// ErrKeyGenerationFailure reports that e has no inverse modulo φ for the drawn
	// primes. Key generators recover from it by drawing new primes.
	ErrKeyGenerationFailure = errors.New("public exponent is not invertible modulo the totient")

	// ErrInvalidModulus reports a modulus N <= 255, for which byte-wise encryption
	// cannot round-trip.
	ErrInvalidModulus = errors.New("modulus must exceed 255")

	// ErrUnsupportedInput reports plaintext that is not single-byte ASCII.
	ErrUnsupportedInput = errors.New("plaintext must be ASCII")

	// ErrInvalidRange reports a candidate range with lower < 0 or upper <= 0.
	ErrInvalidRange = errors.New("invalid prime search range")

	// ErrInvalidCiphertext reports a ciphertext unit outside [0, N-1].
	ErrInvalidCiphertext = errors.New("ciphertext unit out of range")
)
