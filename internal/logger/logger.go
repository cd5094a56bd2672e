// Package logger configures the charm logger used by the actionx command.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Config selects logger output.
type Config struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// ParseLevel maps a level name to a charm log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch level {
	case DebugLevel:
		return log.DebugLevel
	case InfoLevel:
		return log.InfoLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New builds a logger from cfg. A nil Output writes to stderr so command
// output on stdout stays machine readable.
func New(cfg Config) *log.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           ParseLevel(cfg.Level),
		Prefix:          "actionx",
	})
	if cfg.JSON {
		l.SetFormatter(log.JSONFormatter)
	}
	return l
}
