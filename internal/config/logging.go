package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LoggingConfig controls the structured log written to stderr.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format is "text" or "json".
	Format string `json:"format"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Format)
	}
}

func (c LoggingConfig) slogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.Level)
	}
	return lvl, nil
}

// NewLogger builds a slog logger writing to w. Invalid settings fall back to
// info level text output.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.slogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
