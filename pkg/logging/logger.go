package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. Unknown formats fall back to text and
// unknown levels to info.
func NewLogger(w io.Writer, format, level string) *log.Logger {
	if w == nil {
		w = os.Stdout
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Level:           ParseLevel(level),
		TimeFormat:      time.Kitchen,
		Formatter:       parseFormatter(format),
	})
	return logger
}

func ParseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

func parseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
