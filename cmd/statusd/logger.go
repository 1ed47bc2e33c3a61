package main

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/tamzrod/statusreg/internal/config"
)

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

// newLogger writes text to stderr and, when log.file is set, JSON lines to
// that file. The returned func closes the file.
func newLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}
	stderr := slog.NewTextHandler(os.Stderr, opts)

	if lc.File == "" {
		return slog.New(stderr), func() {}, nil
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slogmulti.Fanout(
		stderr,
		slog.NewJSONHandler(f, opts),
	))
	return logger, func() { _ = f.Close() }, nil
}
