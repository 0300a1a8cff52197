// Package logger wraps zap with the small surface the rest of this
// module needs: leveled, structured logging with a no-op default so
// packages never have to guard against a nil logger.
package logger

import (
	"go.uber.org/zap"
)

// Logger is a thin, structured logger used across the simulation
// packages for construction-time diagnostics. The evacuation stepper
// itself never logs — see internal/evac.
type Logger struct {
	z *zap.Logger
}

// Noop returns a Logger that discards everything. Safe zero value
// for packages that don't care about diagnostics (e.g. in tests).
func Noop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// New builds a production JSON logger.
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// NewDevelopment builds a human-readable, console-output logger.
func NewDevelopment() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// With returns a child logger carrying the given structured fields
// on every subsequent call.
func (l *Logger) With(fields ...zap.Field) *Logger {
	if l == nil {
		return Noop()
	}
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.z.Sync()
}
