package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return NewSlog(slog.New(handler)), buf
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
	require.Contains(t, out, "key=value")
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	logger := NewNop()

	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")
	logger.Fatal("msg") // must not exit
}
