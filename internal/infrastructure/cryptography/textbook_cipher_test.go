//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// p = 61, q = 53
func textbookKeyPair() *rsacore.KeyPair {
	return &rsacore.KeyPair{
		PublicExponent:  big.NewInt(rsacore.PublicExponent),
		PrivateExponent: big.NewInt(2753),
		Modulus:         big.NewInt(3233),
		P:               big.NewInt(61),
		Q:               big.NewInt(53),
	}
}

func setupCipher(t *testing.T) rsacore.Cipher {
	t.Helper()
	cipher, err := NewCipher(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return cipher
}

func TestNewCipher_NilLogger(t *testing.T) {
	_, err := NewCipher(nil)
	assert.Error(t, err)
}

func TestTextbookCipher(t *testing.T) {
	cipher := setupCipher(t)
	keyPair := textbookKeyPair()

	t.Run("EncryptKnownVector", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt([]byte("hi"), keyPair.PublicKey())
		require.NoError(t, err)
		assert.Equal(t, "2170 3179", ciphertext.String())
	})

	t.Run("RoundTripEveryByte", func(t *testing.T) {
		plaintext := make([]byte, 256)
		for i := range plaintext {
			plaintext[i] = byte(i)
		}

		ciphertext, err := cipher.Encrypt(plaintext, keyPair.PublicKey())
		require.NoError(t, err)
		require.Len(t, ciphertext, len(plaintext))
		for _, unit := range ciphertext {
			assert.True(t, unit.Sign() >= 0 && unit.Cmp(keyPair.Modulus) < 0)
		}

		decrypted, err := cipher.Decrypt(ciphertext, keyPair.PrivateKey())
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("DeterministicAndUnpadded", func(t *testing.T) {
		ciphertext, err := cipher.EncryptText("aaba", keyPair.PublicKey())
		require.NoError(t, err)

		assert.Zero(t, ciphertext[0].Cmp(ciphertext[1]))
		assert.Zero(t, ciphertext[0].Cmp(ciphertext[3]))
		assert.NotZero(t, ciphertext[0].Cmp(ciphertext[2]))

		again, err := cipher.EncryptText("aaba", keyPair.PublicKey())
		require.NoError(t, err)
		assert.Equal(t, ciphertext.String(), again.String())
	})

	t.Run("EmptyPlaintext", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(nil, keyPair.PublicKey())
		require.NoError(t, err)
		assert.Empty(t, ciphertext)

		decrypted, err := cipher.Decrypt(ciphertext, keyPair.PrivateKey())
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("NonASCIIRejected", func(t *testing.T) {
		_, err := cipher.EncryptText("naïve", keyPair.PublicKey())
		assert.ErrorIs(t, err, rsacore.ErrUnsupportedInput)
	})

	t.Run("WrongKeyDoesNotRoundTrip", func(t *testing.T) {
		ciphertext, err := cipher.EncryptText("secret", keyPair.PublicKey())
		require.NoError(t, err)

		wrong := rsacore.PrivateKey{D: big.NewInt(2751), N: keyPair.Modulus}
		decrypted, err := cipher.Decrypt(ciphertext, wrong)
		require.NoError(t, err)
		assert.NotEqual(t, []byte("secret"), decrypted)
	})
}

func TestTextbookCipher_InvalidModulus(t *testing.T) {
	cipher := setupCipher(t)

	// 221 = 13 * 17 and 65537^-1 mod 192 = 65
	for _, n := range []*big.Int{nil, big.NewInt(221), big.NewInt(rsacore.MaxByteValue)} {
		_, err := cipher.Encrypt([]byte("hi"), rsacore.PublicKey{E: big.NewInt(rsacore.PublicExponent), N: n})
		assert.ErrorIs(t, err, rsacore.ErrInvalidModulus)

		_, err = cipher.Decrypt(rsacore.Ciphertext{big.NewInt(1)}, rsacore.PrivateKey{D: big.NewInt(65), N: n})
		assert.ErrorIs(t, err, rsacore.ErrInvalidModulus)
	}
}

func TestTextbookCipher_InvalidExponents(t *testing.T) {
	cipher := setupCipher(t)
	n := big.NewInt(3233)

	_, err := cipher.Encrypt([]byte("hi"), rsacore.PublicKey{N: n})
	assert.Error(t, err)
	_, err = cipher.Encrypt([]byte("hi"), rsacore.PublicKey{E: big.NewInt(-3), N: n})
	assert.Error(t, err)

	_, err = cipher.Decrypt(rsacore.Ciphertext{big.NewInt(1)}, rsacore.PrivateKey{N: n})
	assert.Error(t, err)
}

func TestTextbookCipher_InvalidCiphertext(t *testing.T) {
	cipher := setupCipher(t)
	priv := textbookKeyPair().PrivateKey()

	for name, ct := range map[string]rsacore.Ciphertext{
		"nil unit":      {big.NewInt(5), nil},
		"negative unit": {big.NewInt(-1)},
		"unit equals N": {big.NewInt(3233)},
		"unit above N":  {big.NewInt(10000)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cipher.Decrypt(ct, priv)
			assert.ErrorIs(t, err, rsacore.ErrInvalidCiphertext)
		})
	}
}

func TestEndToEnd_DemoRange(t *testing.T) {
	keyPair, err := setupKeyGenerator(t, testSeed).Generate(rsacore.NewRange(rsacore.DemoLower, rsacore.DemoUpper))
	require.NoError(t, err)
	assert.Equal(t, int64(rsacore.PublicExponent), keyPair.PublicExponent.Int64())

	cipher := setupCipher(t)
	for _, message := range []string{"hi", rsacore.DemoMessage} {
		ciphertext, err := cipher.EncryptText(message, keyPair.PublicKey())
		require.NoError(t, err)
		assert.Len(t, ciphertext, len(message))

		decrypted, err := cipher.Decrypt(ciphertext, keyPair.PrivateKey())
		require.NoError(t, err)
		assert.Equal(t, message, string(decrypted))
	}
}
