package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New returns a pterm structured logger configured from opts.
func New(opts Options) (*pterm.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	l := pterm.DefaultLogger.
		WithLevel(level).
		WithFormatter(formatter)

	if opts.Writer != nil {
		l = l.WithWriter(opts.Writer)
	}

	return l, nil
}

// Discard returns a logger that drops everything. Used by tests and by CLI
// subcommands that render their own output.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}

func ParseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level '%s'", s)
	}
}

func parseFormat(s string) (pterm.LogFormatter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "colorful", "text":
		return pterm.LogFormatterColorful, nil
	case "json":
		return pterm.LogFormatterJSON, nil
	default:
		return pterm.LogFormatterColorful, fmt.Errorf("unknown log format '%s' (must be colorful or json)", s)
	}
}
