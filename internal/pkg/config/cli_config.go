package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/spf13/viper"
)

// CLIConfig is the full configuration of textbook-rsa-cli.
type CLIConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	KeyGen KeyGenSettings `mapstructure:"keygen"`
}

// Validate validates every section.
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.KeyGen.Validate()
}

// InitializeCLIConfig loads defaults, then the YAML file at path (skipped when
// path is empty), then TEXTBOOK_RSA_* environment variables.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("keygen.lower", strconv.Itoa(rsacore.DemoLower))
	v.SetDefault("keygen.upper", strconv.Itoa(rsacore.DemoUpper))
	v.SetDefault("keygen.rounds", rsacore.DefaultRounds)
	v.SetDefault("keygen.seed", 0)
	v.SetDefault("keygen.message", rsacore.DemoMessage)
}
