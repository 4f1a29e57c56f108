// Package logging builds the process logger.
//
// Components receive a zerolog.Logger by value and tag themselves with a
// component field. Logs go to stderr only: stdout carries protocol
// messages and rendered reports.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log encoding.
type Format string

const (
	// FormatJSON emits one JSON object per line.
	FormatJSON Format = "json"
	// FormatHuman emits console-style lines for interactive use.
	FormatHuman Format = "human"
)

// Config holds logger settings.
type Config struct {
	Level  string // debug, info, warn, error
	Format Format
	Output io.Writer // defaults to stderr
}

// New builds the root logger. Unknown or empty levels fall back to info.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	lv, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lv == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lv
}
