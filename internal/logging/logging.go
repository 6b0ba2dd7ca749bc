// Package logging builds the structured logger backed by an append-only
// file sink.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbarbosa/cvgen/internal/config"
)

const logFileName = "cvgen.log"

// New creates a JSON logger writing to <directory>/cvgen.log. The returned
// closer owns the file handle. A disabled sink yields a logger that
// discards everything, so callers never branch on logging being off.
func New(settings config.LoggingSettings, directory string) (*slog.Logger, io.Closer, error) {
	if !settings.SinkEnabled() {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory %s: %w", directory, err)
	}

	logPath := filepath.Join(directory, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: parseLevel(settings.Level)})
	return slog.New(handler), file, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
