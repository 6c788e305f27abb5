package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// IsPrimeCmd runs the Fermat test on --n.
func (h *RSACommandHandler) IsPrimeCmd(cmd *cobra.Command) error {
	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		return err
	}

	rounds := h.settings.Rounds
	if cmd.Flags().Changed("rounds") {
		if rounds, err = cmd.Flags().GetInt("rounds"); err != nil {
			return fmt.Errorf("invalid rounds flag: %w", err)
		}
	}

	verdict := "not prime"
	if h.tester.ProbablyPrime(n, rounds) {
		verdict = "probably prime"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", n, verdict)
	return nil
}

// PrimeCmd prints a probable prime drawn from [lower, lower+upper).
func (h *RSACommandHandler) PrimeCmd(cmd *cobra.Command) error {
	r, err := h.searchRange(cmd)
	if err != nil {
		return err
	}

	prime, err := h.primes.Generate(r)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime)
	return nil
}

// InitPrimeCommands registers the primality commands.
func InitPrimeCommands(rootCmd *cobra.Command) {
	var isPrimeCmd = &cobra.Command{
		Use:   "isprime",
		Short: "Run the Fermat primality test on a number",
		Long: `isprime runs the Fermat test. Carmichael numbers (561, 1105, ...) can be
reported as probably prime regardless of --rounds.`,
		RunE: withHandler((*RSACommandHandler).IsPrimeCmd),
	}
	isPrimeCmd.Flags().String("n", "", "Number to test, in decimal")
	isPrimeCmd.Flags().Int("rounds", 0, "Number of Fermat trials (default from config: 10)")
	rootCmd.AddCommand(isPrimeCmd)

	var primeCmd = &cobra.Command{
		Use:   "prime",
		Short: "Draw a probable prime from [lower, lower+upper)",
		RunE:  withHandler((*RSACommandHandler).PrimeCmd),
	}
	primeCmd.Flags().String("lower", "", "Lower bound of the prime search")
	primeCmd.Flags().String("upper", "", "Span of the prime search added to --lower")
	rootCmd.AddCommand(primeCmd)
}
