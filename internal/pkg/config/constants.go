package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// EnvPrefix prefixes every environment override, e.g. TEXTBOOK_RSA_KEYGEN_SEED.
const EnvPrefix = "TEXTBOOK_RSA"
