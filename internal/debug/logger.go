package debug

import (
	"io"
	"log/slog"
	"os"

	"detective/internal/logging"
)

const logFile = "debug.log"

// NewLogger returns the game's logger. When enabled, records are appended to debug.log because the terminal
// belongs to the game; otherwise they are discarded. The returned close function releases the log file.
func NewLogger(enabled bool) (*slog.Logger, func() error) {
	if !enabled {
		return New(io.Discard, slog.LevelInfo), func() error { return nil }
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return New(io.Discard, slog.LevelInfo), func() error { return nil }
	}

	logger := New(f, slog.LevelDebug)
	logger.Debug("=== DEBUG MODE ENABLED ===")
	return logger, f.Close
}

// New creates a logger writing text records to sink, such as io.Discard in tests.
func New(sink io.Writer, level slog.Level) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(sink, &slog.HandlerOptions{
		AddSource: level == slog.LevelDebug,
		Level:     level,
	}))
	return slog.New(handler)
}
