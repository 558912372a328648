// Package logging configures the zerolog loggers used by both binaries.
// Output goes to a file under ~/.local/state/slides so it never corrupts
// the terminal UI; stderr is the fallback.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log destination and verbosity.
type Config struct {
	Name    string // file stem, e.g. "slides" -> slides.log
	Level   string
	Dir     string // empty = ~/.local/state/slides
	Console bool   // human-readable output instead of JSON
}

// Setup builds a logger per cfg and returns a cleanup func closing the file.
func Setup(cfg Config) (zerolog.Logger, func()) {
	out, cleanup := openOutput(cfg)
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	logger := zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.Name).
		Logger()
	return logger, cleanup
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// DefaultDir returns the directory log files are written to.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "slides"), nil
}

func openOutput(cfg Config) (io.Writer, func()) {
	dir := cfg.Dir
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return os.Stderr, func() {}
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return os.Stderr, func() {}
	}

	name := cfg.Name
	if name == "" {
		name = "slides"
	}
	f, err := os.OpenFile(filepath.Join(dir, name+".log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr, func() {}
	}
	return f, func() {
		_ = f.Close()
	}
}
