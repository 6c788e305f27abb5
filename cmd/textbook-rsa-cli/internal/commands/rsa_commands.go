package commands

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler wires the textbook RSA components for one CLI invocation.
type RSACommandHandler struct {
	settings config.KeyGenSettings
	tester   rsacore.PrimalityTester
	primes   rsacore.PrimeGenerator
	keys     rsacore.KeyGenerator
	cipher   rsacore.Cipher
	logger   logger.Logger
}

// NewRSACommandHandler builds the component chain from cfg. All components share
// one generator: seeded from cfg.KeyGen.Seed, or from the clock when it is 0.
func NewRSACommandHandler(cfg *config.CLIConfig) (*RSACommandHandler, error) {
	baseLogger, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	log := baseLogger.With("session", uuid.NewString())

	var rng *rand.Rand
	if cfg.KeyGen.Seed != 0 {
		rng = cryptography.NewSeededRand(cfg.KeyGen.Seed)
	} else {
		rng = cryptography.NewTimeSeededRand()
	}

	tester, err := cryptography.NewFermatTester(log, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality tester: %w", err)
	}
	primes, err := cryptography.NewPrimeGenerator(log, tester, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}
	keys, err := cryptography.NewKeyGenerator(log, primes)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}
	cipher, err := cryptography.NewCipher(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &RSACommandHandler{
		settings: cfg.KeyGen,
		tester:   tester,
		primes:   primes,
		keys:     keys,
		cipher:   cipher,
		logger:   log,
	}, nil
}

// withHandler adapts a handler method to cobra's RunE, building the handler
// after flags are parsed.
func withHandler(run func(*RSACommandHandler, *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		handler, err := NewRSACommandHandler(cfg)
		if err != nil {
			return err
		}
		if err := run(handler, cmd); err != nil {
			handler.logger.Error(cmd.Name(), " failed: ", err)
			return err
		}
		return nil
	}
}

// DemoCmd generates a key pair, then encrypts and decrypts the configured message.
func (h *RSACommandHandler) DemoCmd(cmd *cobra.Command) error {
	keyPair, err := h.generateKeyPair(cmd)
	if err != nil {
		return err
	}

	message := h.settings.Message
	if cmd.Flags().Changed("message") {
		if message, err = cmd.Flags().GetString("message"); err != nil {
			return fmt.Errorf("invalid message flag: %w", err)
		}
	}

	ciphertext, err := h.cipher.EncryptText(message, keyPair.PublicKey())
	if err != nil {
		return err
	}
	decrypted, err := h.cipher.Decrypt(ciphertext, keyPair.PrivateKey())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printKeys(cmd, keyPair)
	fmt.Fprintf(out, "Encrypted: %s\n", ciphertext)
	fmt.Fprintf(out, "Decrypted: %s\n", decrypted)
	return nil
}

// KeyGenCmd generates a key pair and prints both halves in decimal.
func (h *RSACommandHandler) KeyGenCmd(cmd *cobra.Command) error {
	keyPair, err := h.generateKeyPair(cmd)
	if err != nil {
		return err
	}
	printKeys(cmd, keyPair)
	return nil
}

// EncryptCmd encrypts --message with the public key (--e, --n).
func (h *RSACommandHandler) EncryptCmd(cmd *cobra.Command) error {
	e, err := bigIntFlag(cmd, "e")
	if err != nil {
		return err
	}
	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	ciphertext, err := h.cipher.EncryptText(message, rsacore.PublicKey{E: e, N: n})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return nil
}

// DecryptCmd decrypts the space-separated --ciphertext units with the private key (--d, --n).
func (h *RSACommandHandler) DecryptCmd(cmd *cobra.Command) error {
	d, err := bigIntFlag(cmd, "d")
	if err != nil {
		return err
	}
	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		return err
	}
	raw, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}

	ciphertext, err := rsacore.ParseCiphertext(raw)
	if err != nil {
		return err
	}

	plaintext, err := h.cipher.Decrypt(ciphertext, rsacore.PrivateKey{D: d, N: n})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))
	return nil
}

func (h *RSACommandHandler) searchRange(cmd *cobra.Command) (rsacore.Range, error) {
	settings := h.settings
	if err := overrideRange(cmd, &settings); err != nil {
		return rsacore.Range{}, err
	}
	return settings.Range()
}

func (h *RSACommandHandler) generateKeyPair(cmd *cobra.Command) (*rsacore.KeyPair, error) {
	r, err := h.searchRange(cmd)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("generating key pair from candidates in ", r)
	return h.keys.Generate(r)
}

func printKeys(cmd *cobra.Command, keyPair *rsacore.KeyPair) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Public key: (e = %s, N = %s)\n", keyPair.PublicExponent, keyPair.Modulus)
	fmt.Fprintf(out, "Private key: (d = %s, N = %s)\n", keyPair.PrivateExponent, keyPair.Modulus)
}

// InitRSACommands registers the key generation and cipher commands.
func InitRSACommands(rootCmd *cobra.Command) {
	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Generate a key pair and round-trip a message",
		RunE:  withHandler((*RSACommandHandler).DemoCmd),
	}
	demoCmd.Flags().String("lower", "", "Lower bound of the prime search (default from config: 100)")
	demoCmd.Flags().String("upper", "", "Span of the prime search added to --lower (default from config: 5000)")
	demoCmd.Flags().String("message", "", "ASCII message to encrypt (default from config: \"get in IT\")")
	rootCmd.AddCommand(demoCmd)

	var keyGenCmd = &cobra.Command{
		Use:   "keygen",
		Short: "Generate a textbook RSA key pair",
		RunE:  withHandler((*RSACommandHandler).KeyGenCmd),
	}
	keyGenCmd.Flags().String("lower", "", "Lower bound of the prime search")
	keyGenCmd.Flags().String("upper", "", "Span of the prime search added to --lower")
	rootCmd.AddCommand(keyGenCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt an ASCII message byte by byte",
		RunE:  withHandler((*RSACommandHandler).EncryptCmd),
	}
	encryptCmd.Flags().String("e", big.NewInt(rsacore.PublicExponent).String(), "Public exponent")
	encryptCmd.Flags().String("n", "", "Modulus")
	encryptCmd.Flags().String("message", "", "ASCII message to encrypt")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt space-separated ciphertext units",
		RunE:  withHandler((*RSACommandHandler).DecryptCmd),
	}
	decryptCmd.Flags().String("d", "", "Private exponent")
	decryptCmd.Flags().String("n", "", "Modulus")
	decryptCmd.Flags().String("ciphertext", "", "Ciphertext units in decimal, separated by spaces")
	rootCmd.AddCommand(decryptCmd)
}
