package logging

import "log/slog"

// Nil-safe wrappers around slog so callers never guard their own logger.
// Scenes and pollers run with whatever logger the server injected, which in
// tests is often nil.

// Info logs at info level. A nil logger drops the message.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level. A nil logger drops the message.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level, attaching err under the "error" key when
// non-nil. A nil logger drops the message.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
