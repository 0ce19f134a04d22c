package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/hashring/types"
)

// TestLogger writes messages to a testing.TB so they show up with -v and on failure.
type TestLogger struct {
	tb testing.TB
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger that writes through tb.Logf.
func NewTest(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

// Debug logs a debug-level message.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("DEBUG: %s %s", msg, formatKeyValues(keysAndValues))
}

// Info logs an info-level message.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("INFO: %s %s", msg, formatKeyValues(keysAndValues))
}

// Warn logs a warning-level message.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("WARN: %s %s", msg, formatKeyValues(keysAndValues))
}

// Error logs an error-level message.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("ERROR: %s %s", msg, formatKeyValues(keysAndValues))
}

// Fatal logs the message and stops the test.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Fatalf("FATAL: %s %s", msg, formatKeyValues(keysAndValues))
}

// formatKeyValues renders alternating key-value pairs as "k=v" fields.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, "%v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&sb, "%v=<missing>", keysAndValues[i])
		}
	}

	return sb.String()
}
