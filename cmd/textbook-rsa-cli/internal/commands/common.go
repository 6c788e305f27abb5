package commands

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// Persistent root flag names.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagSeed     = "seed"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.CLIConfig, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagConfig, err)
	}

	cfg, err := config.InitializeCLIConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagLogLevel) {
		if cfg.Logger.LogLevel, err = cmd.Flags().GetString(flagLogLevel); err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", flagLogLevel, err)
		}
	}
	if cmd.Flags().Changed(flagSeed) {
		if cfg.KeyGen.Seed, err = cmd.Flags().GetInt64(flagSeed); err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", flagSeed, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// bigIntFlag parses a decimal integer flag.
func bigIntFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("--%s must be a decimal integer, got %q", name, raw)
	}
	return v, nil
}

// overrideRange copies --lower/--upper into the key generation settings when set.
func overrideRange(cmd *cobra.Command, settings *config.KeyGenSettings) error {
	for name, target := range map[string]*string{"lower": &settings.Lower, "upper": &settings.Upper} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", name, err)
		}
		*target = v
	}
	return nil
}
