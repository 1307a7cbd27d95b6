// Package log provides a structured logging interface for logistic regression
// training and inference.
//
// The Logger interface is slog-compatible and small enough that different
// backends can sit behind it: a zerolog backend for library use
// (ZerologProvider), a log/slog JSON handler for programs (SetupLogger) and an
// in-memory TestLogger for assertions in tests.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear.logistic").With(
//	    log.ModelNameKey, "LogisticRegression",
//	    log.EstimatorIDKey, id,
//	)
//	logger.Info("Training completed",
//	    log.OperationKey, log.OperationFit,
//	    log.LossKey, cost,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. With returns a child logger whose
// fields are attached to every subsequent record.
type Logger interface {
	// Debug logs detailed diagnostic information such as per-iteration cost.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	//
	// Example:
	//   logger.Info("Training completed",
	//       log.DurationMsKey, 12,
	//       log.LossKey, 0.031,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a condition that does not stop the operation.
	Warn(msg string, fields ...any)

	// Error logs an error condition. Error values passed as field values
	// are rendered with their message.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" into a Level.
func ParseLevel(level string) (Level, bool) {
	switch level {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// LoggerProvider creates loggers. It lets callers swap the backend, for
// example a TestLoggerProvider in tests.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
