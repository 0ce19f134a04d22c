package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/hashring/types"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestSlogLogger_ImplementsInterface(_ *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufferLogger(slog.LevelDebug)
	require.NotNil(t, logger.logger)

	fallback := NewSlog(nil)
	require.NotNil(t, fallback.logger)

	require.NotNil(t, NewSlogDefault().logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
		msg   string
	}{
		{"debug", func(l *SlogLogger) { l.Debug("node added", "key", "node-1") }, "level=DEBUG", "node added"},
		{"info", func(l *SlogLogger) { l.Info("ring created", "replicas", 150) }, "level=INFO", "ring created"},
		{"warn", func(l *SlogLogger) { l.Warn("value lost", "key", "node-1") }, "level=WARN", "value lost"},
		{"error", func(l *SlogLogger) { l.Error("position missing", "key", "node-1") }, "level=ERROR", "position missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(slog.LevelDebug)
			tt.log(logger)

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, tt.msg)
		})
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelWarn)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "visible warn")
}

func TestSlogLogger_With(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.With("component", "ring").Info("node deleted", "key", "node-2", "successor", "node-3")

	out := buf.String()
	require.Contains(t, out, "component=ring")
	require.Contains(t, out, "key=node-2")
	require.Contains(t, out, "successor=node-3")
}
