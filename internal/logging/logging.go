package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a *slog.Logger writing JSON to stderr and optionally to logFile,
// and installs it as the slog default. The returned cleanup func closes the
// log file if one was opened; callers must defer it.
func New(level, logFile string) (*slog.Logger, func(), error) {
	lvl := parseLevel(level)

	var w io.Writer = os.Stderr
	cleanup := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch s {
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
