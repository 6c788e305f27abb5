package rsacore

// PublicExponent is the fixed public exponent e. It is never resampled.
const PublicExponent = 65537

// DefaultRounds is the number of Fermat trials applied to every prime candidate.
const DefaultRounds = 10

// MaxByteValue is the largest plaintext unit. A modulus must exceed it for a
// byte-wise round trip to be unambiguous.
const MaxByteValue = 255

// Demo parameters used by the command-line demo.
const (
	DemoLower   = 100
	DemoUpper   = 5000
	DemoMessage = "get in IT"
)
