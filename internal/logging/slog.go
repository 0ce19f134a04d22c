// Package logging adapts log/slog to the hashring Logger interface.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/arloliu/hashring/types"
)

// SlogLogger implements types.Logger on top of a *slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

var _ types.Logger = (*SlogLogger)(nil)

// NewSlog wraps logger. A nil logger falls back to slog.Default().
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	ring, err := hashring.New[string, Counter](150, hashring.WithLogger(logging.NewSlog(slog.New(handler))))
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// NewSlogDefault wraps slog.Default().
func NewSlogDefault() *SlogLogger {
	return &SlogLogger{logger: slog.Default()}
}

// With returns a logger that adds keysAndValues to every record.
func (l *SlogLogger) With(keysAndValues ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...)}
}

// Debug logs at slog.LevelDebug.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs at slog.LevelInfo.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs at slog.LevelWarn.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs at slog.LevelError.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs at a level above slog.LevelError and exits the process.
//
// slog has no fatal level, so the record is emitted at LevelError+4.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelError+4, msg, keysAndValues...)
	os.Exit(1)
}
