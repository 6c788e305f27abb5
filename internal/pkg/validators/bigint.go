package validators

import (
	"math/big"

	"github.com/go-playground/validator/v10"
)

// Tag names registered by Register.
const (
	BigNaturalTag  = "bignat"
	BigPositiveTag = "bigpos"
)

// BigNaturalValidation accepts a decimal string holding an integer >= 0.
func BigNaturalValidation(fl validator.FieldLevel) bool {
	v, ok := parseDecimal(fl.Field().String())
	return ok && v.Sign() >= 0
}

// BigPositiveValidation accepts a decimal string holding an integer > 0.
func BigPositiveValidation(fl validator.FieldLevel) bool {
	v, ok := parseDecimal(fl.Field().String())
	return ok && v.Sign() > 0
}

// Register installs the big-integer tags on validate.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation(BigNaturalTag, BigNaturalValidation); err != nil {
		return err
	}
	return validate.RegisterValidation(BigPositiveTag, BigPositiveValidation)
}

func parseDecimal(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}
