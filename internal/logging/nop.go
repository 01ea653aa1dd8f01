package logging

import "github.com/bbs-caleb/absplit/types"

// NopLogger discards all log messages.
//
// Used as the default logger so assignment stays silent unless the caller
// injects a real logger.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a logger that discards everything.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (*NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (*NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (*NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (*NopLogger) Error(string, ...any) {}

// Fatal discards the message. Unlike real loggers it does not exit; a nop
// logger must never terminate the process.
func (*NopLogger) Fatal(string, ...any) {}
