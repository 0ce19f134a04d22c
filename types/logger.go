package types

// Logger defines methods for structured logging.
//
// hashring.NewSlogLogger adapts log/slog; any logger taking alternating key-value
// pairs fits. All methods accept alternating key-value pairs for structured fields.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and then calls os.Exit(1).
	//
	// The ring itself never calls Fatal; consistency violations panic instead so
	// that the caller's recovery policy applies.
	Fatal(msg string, keysAndValues ...any)
}
