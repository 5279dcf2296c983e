package log

import "github.com/bft-labs/mdmedium/internal/ports"

// NoopLogger discards everything. The app services fall back to it when
// they are built without a logger.
type NoopLogger struct{}

// NewNoopLogger returns a logger that drops every entry.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(string, ...ports.Field) {}
func (NoopLogger) Info(string, ...ports.Field)  {}
func (NoopLogger) Warn(string, ...ports.Field)  {}
func (NoopLogger) Error(string, ...ports.Field) {}
