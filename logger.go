package bitarray

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitarray-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogAcquire logs a slot acquisition.
func (l *Logger) LogAcquire(slot int, err error) {
	if err != nil {
		l.Error("acquire failed",
			"slot", slot,
			"error", err,
		)
	} else {
		l.Debug("slot acquired",
			"slot", slot,
		)
	}
}

// LogExhausted logs an acquisition attempt against a full allocator.
func (l *Logger) LogExhausted(inUse int) {
	l.Warn("no free slots",
		"in_use", inUse,
	)
}

// LogRelease logs a slot release.
func (l *Logger) LogRelease(slot int, err error) {
	if err != nil {
		l.Error("release failed",
			"slot", slot,
			"error", err,
		)
	} else {
		l.Debug("slot released",
			"slot", slot,
		)
	}
}

// LogReceive logs the arrival of a chunk.
func (l *Logger) LogReceive(index int, duplicate bool, err error) {
	switch {
	case err != nil:
		l.Error("receive failed",
			"chunk", index,
			"error", err,
		)
	case duplicate:
		l.Debug("duplicate chunk",
			"chunk", index,
		)
	default:
		l.Debug("chunk received",
			"chunk", index,
		)
	}
}

// LogTransferComplete logs that every chunk of a transfer has arrived.
func (l *Logger) LogTransferComplete(chunks int) {
	l.Info("transfer complete",
		"chunks", chunks,
	)
}

// LogAckApplied logs an acknowledgment folded into a sender.
func (l *Logger) LogAckApplied(waitingFor int, acked int, err error) {
	if err != nil {
		l.Warn("ack rejected",
			"waiting_for", waitingFor,
			"error", err,
		)
	} else {
		l.Debug("ack applied",
			"waiting_for", waitingFor,
			"acked", acked,
		)
	}
}
