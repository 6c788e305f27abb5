package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"unicode"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

var (
	maxByteValue = big.NewInt(rsacore.MaxByteValue)
	lowByteMask  = big.NewInt(0xFF)
)

// textbookCipher implements rsacore.Cipher. Each byte is encrypted on its own
// without padding, so equal bytes yield equal ciphertext units.
type textbookCipher struct {
	logger logger.Logger
}

// NewCipher creates a byte-wise textbook RSA cipher.
func NewCipher(logger logger.Logger) (rsacore.Cipher, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &textbookCipher{logger: logger}, nil
}

// Encrypt computes b^e mod N for every byte b of plaintext.
func (c *textbookCipher) Encrypt(plaintext []byte, publicKey rsacore.PublicKey) (rsacore.Ciphertext, error) {
	if err := validateModulus(publicKey.N); err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	if publicKey.E == nil || publicKey.E.Sign() <= 0 {
		return nil, errors.New("public exponent must be positive")
	}

	ciphertext := make(rsacore.Ciphertext, len(plaintext))
	for i, b := range plaintext {
		m := big.NewInt(int64(b))
		ciphertext[i] = m.Exp(m, publicKey.E, publicKey.N)
	}

	c.logger.Debug("encrypted ", len(plaintext), " byte(s)")
	return ciphertext, nil
}

// EncryptText encrypts message after checking it is ASCII. Multi-byte
// encodings are not supported.
func (c *textbookCipher) EncryptText(message string, publicKey rsacore.PublicKey) (rsacore.Ciphertext, error) {
	for i, r := range message {
		if r > unicode.MaxASCII {
			return nil, fmt.Errorf("%w: %q at byte offset %d", rsacore.ErrUnsupportedInput, r, i)
		}
	}
	return c.Encrypt([]byte(message), publicKey)
}

// Decrypt computes c^d mod N for every unit and keeps its low 8 bits.
func (c *textbookCipher) Decrypt(ciphertext rsacore.Ciphertext, privateKey rsacore.PrivateKey) ([]byte, error) {
	if err := validateModulus(privateKey.N); err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	if privateKey.D == nil || privateKey.D.Sign() <= 0 {
		return nil, errors.New("private exponent must be positive")
	}

	plaintext := make([]byte, len(ciphertext))
	for i, unit := range ciphertext {
		if unit == nil || unit.Sign() < 0 || unit.Cmp(privateKey.N) >= 0 {
			return nil, fmt.Errorf("failed to decrypt data: %w: unit %d is not in [0, %s)", rsacore.ErrInvalidCiphertext, i, privateKey.N)
		}
		m := new(big.Int).Exp(unit, privateKey.D, privateKey.N)
		plaintext[i] = byte(m.And(m, lowByteMask).Uint64())
	}

	c.logger.Debug("decrypted ", len(ciphertext), " unit(s)")
	return plaintext, nil
}

// validateModulus requires N > 255 so every byte value stays distinct mod N.
func validateModulus(n *big.Int) error {
	if n == nil {
		return fmt.Errorf("%w: modulus is nil", rsacore.ErrInvalidModulus)
	}
	if n.Cmp(maxByteValue) <= 0 {
		return fmt.Errorf("%w: got %s", rsacore.ErrInvalidModulus, n)
	}
	return nil
}
