// Package logging builds the zerolog logger shared by the CLI and the dashboard.
//
// The dashboard owns the terminal while it runs, so it logs to a file or not
// at all; the non-interactive commands log to stderr when --debug is set.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level and destination.
type Config struct {
	Level string
	// File, when set, receives JSON log lines (appended).
	File string
	// Console writes human-readable lines to Writer (stderr when nil).
	Console bool
	Writer  io.Writer
}

// Logger bundles the logger with the file it may hold open.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel parses level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// New builds a logger from cfg. With neither File nor Console set the
// logger discards everything.
func New(cfg Config) (*Logger, error) {
	lvl := ParseLevel(cfg.Level)

	var writers []io.Writer
	var file *os.File
	if cfg.Console {
		out := cfg.Writer
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		return &Logger{Logger: zerolog.Nop()}, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return &Logger{Logger: logger, file: file}, nil
}
