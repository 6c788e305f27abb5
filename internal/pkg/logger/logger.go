package logger

// Logger defines the logging interface shared by every component.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	// With returns a Logger that adds the key/value pairs to every record.
	With(args ...interface{}) Logger
}
