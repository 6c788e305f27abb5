package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds textbook-rsa-cli with every sub-command registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA key generation and byte-wise encryption",
		Long: `textbook-rsa-cli generates textbook RSA key pairs from small random primes
and encrypts ASCII messages one byte at a time.

The scheme is unpadded and deterministic. It is meant for teaching, not for
protecting data.

Configuration is read from --config (YAML) and TEXTBOOK_RSA_* environment
variables, e.g. TEXTBOOK_RSA_KEYGEN_SEED=42.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "Log level (debug, info, warning, error, critical)")
	rootCmd.PersistentFlags().Int64(flagSeed, 0, "Seed for the pseudo-random generator (0 seeds from the clock)")

	InitRSACommands(rootCmd)
	InitPrimeCommands(rootCmd)

	return rootCmd
}
