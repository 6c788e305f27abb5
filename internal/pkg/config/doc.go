// Package config loads and validates the CLI configuration: logger settings and
// the key-generation parameters (search range, Fermat rounds, seed, demo message).
//
// Built-in defaults are overridden by an optional YAML file, which is in turn
// overridden by TEXTBOOK_RSA_* environment variables.
package config
