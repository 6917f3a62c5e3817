package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures the handler built by NewHandler.
type Options struct {
	// Level is the minimum level to log ("debug", "info", "warn" or "error").
	Level string `yaml:"level"`

	// Format is FormatText or FormatJSON.
	Format string `yaml:"format"`

	// File is the path of a log file to write to instead of the default writer. The file is rotated once it reaches
	// MaxSizeMB.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ParseLevel parses a level name. An empty name is slog.LevelInfo.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}

	return level, nil
}

// NewHandler builds a text or JSON slog.Handler per opts, writing to fallback unless a log File is configured. The
// returned io.Closer releases the log file, if any.
func NewHandler(opts Options, fallback io.Writer) (slog.Handler, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}

		w, closer = rotating, rotating
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return slog.NewTextHandler(w, handlerOpts), closer, nil
	case FormatJSON:
		return slog.NewJSONHandler(w, handlerOpts), closer, nil
	default:
		return nil, nil, fmt.Errorf("log format %q: must be %q or %q", opts.Format, FormatText, FormatJSON)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
