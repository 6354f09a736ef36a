package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/formations/internal/config"
)

// Setup builds the application's logger from cfg, writing to stderr so that
// log records never interleave with console reports on stdout. The logger
// is also installed as the slog default.
func Setup(cfg config.LogConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stderr)
}

// SetupWithWriter is Setup with an explicit destination.
func SetupWithWriter(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if level == slog.LevelInfo && !strings.EqualFold(cfg.Level, "info") {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	return logger, nil
}

// parseLevel maps a case-insensitive level name to a slog.Level, falling back
// to info.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
