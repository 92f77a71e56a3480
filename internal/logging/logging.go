// Package logging configures log/slog for the CLI.
//
// Diagnostics never go to stdout, which carries the report. By default they
// are written as text to stderr at warn level; with a file path they are
// written as JSON to that file instead.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// FilePath is the path to a JSON log file. Empty logs text to Stderr.
	FilePath string
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Setup builds a logger for cfg and returns it with a cleanup function that
// closes the log file, if any.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.FilePath == "" {
		out := cfg.Stderr
		if out == nil {
			out = os.Stderr
		}
		return slog.New(slog.NewTextHandler(out, opts)), func() {}, nil
	}

	if dir := filepath.Dir(cfg.FilePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = f.Sync()
		_ = f.Close()
	}
	return slog.New(slog.NewJSONHandler(f, opts)), cleanup, nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
