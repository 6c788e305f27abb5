package rsacore

import "math/big"

// PrimalityTester classifies integers as probably prime or composite.
type PrimalityTester interface {
	// ProbablyPrime runs up to rounds Fermat trials on n and stops at the first
	// failing base. A composite passes all rounds with probability at most 2^-rounds,
	// except Carmichael numbers, which may pass regardless of rounds.
	ProbablyPrime(n *big.Int, rounds int) bool
}

// PrimeGenerator draws probable primes from a Range.
type PrimeGenerator interface {
	// Generate samples [Lower, Lower+Upper) until a candidate passes
	// DefaultRounds Fermat trials. There is no attempt limit.
	Generate(r Range) (*big.Int, error)
}

// KeyGenerator derives key pairs with the fixed PublicExponent.
type KeyGenerator interface {
	// Generate draws two distinct primes from r and derives N, φ and d.
	// It restarts from fresh primes whenever e has no inverse modulo φ.
	Generate(r Range) (*KeyPair, error)
}

// Cipher applies textbook RSA to each plaintext byte independently.
type Cipher interface {
	// Encrypt maps each byte b to b^e mod N.
	Encrypt(plaintext []byte, publicKey PublicKey) (Ciphertext, error)

	// EncryptText encrypts an ASCII string. Runes above 0x7F are rejected.
	EncryptText(message string, publicKey PublicKey) (Ciphertext, error)

	// Decrypt maps each unit c to the low 8 bits of c^d mod N.
	Decrypt(ciphertext Ciphertext, privateKey PrivateKey) ([]byte, error)
}
