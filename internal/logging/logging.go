package logging

import (
	"io"
	"log/slog"
	"os"
)

// New initializes a slog logger and sets it as the default.
// format "json" selects the JSON handler, anything else the text handler.
func New(format string) *slog.Logger {
	return NewWithWriter(format, os.Stderr)
}

// NewWithWriter is New with an explicit output, used by tests.
func NewWithWriter(format string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
