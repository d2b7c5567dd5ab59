package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the application's structured logger.
// The TUI owns the terminal, so nothing is ever written to stdout or stderr.
var Logger *slog.Logger

func init() {
	// Default to discarding logs until Init is called
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a config level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Init points the logger at logPath at the given level.
// If logPath is empty, logs are discarded.
// The log file is created with mode 0600 (user-only).
// The returned closer releases the file and is never nil.
func Init(logPath string, level slog.Level) (io.Closer, error) {
	opts := &slog.HandlerOptions{Level: level}

	if logPath == "" {
		Logger = slog.New(slog.NewTextHandler(io.Discard, opts))
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return io.NopCloser(nil), fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return io.NopCloser(nil), fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewTextHandler(file, opts))
	return file, nil
}
