package config

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/rsacore"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Validate checks the tags and, for file loggers, the rotation bounds.
func (s *LoggerSettings) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	switch {
	case s.FilePath == "":
		return fmt.Errorf("file path is required for file logger")
	case s.MaxSize < 1 || s.MaxSize > 100:
		return fmt.Errorf("max size must be between 1 and 100 MB")
	case s.MaxBackups < 1 || s.MaxBackups > 10:
		return fmt.Errorf("max backups must be between 1 and 10")
	case s.MaxAge < 1 || s.MaxAge > 365:
		return fmt.Errorf("max age must be between 1 and 365 days")
	}
	return nil
}

// KeyGenSettings holds the prime search range and the demo parameters.
// Bounds are decimal strings so ranges beyond int64 can be configured.
type KeyGenSettings struct {
	Lower   string `mapstructure:"lower" validate:"required,bignat"`
	Upper   string `mapstructure:"upper" validate:"required,bigpos"`
	Rounds  int    `mapstructure:"rounds" validate:"min=1,max=128"`
	Seed    int64  `mapstructure:"seed"`
	Message string `mapstructure:"message" validate:"ascii"`
}

// Validate checks the bounds parse as decimal integers with lower >= 0 and upper > 0.
func (s *KeyGenSettings) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}
	return nil
}

// Range converts the validated bounds into a search range.
func (s *KeyGenSettings) Range() (rsacore.Range, error) {
	if err := s.Validate(); err != nil {
		return rsacore.Range{}, err
	}
	lower, _ := new(big.Int).SetString(s.Lower, 10)
	upper, _ := new(big.Int).SetString(s.Upper, 10)
	return rsacore.Range{Lower: lower, Upper: upper}, nil
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return validate, nil
}
