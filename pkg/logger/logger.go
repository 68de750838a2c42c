package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults.
var Log = logrus.New()

// Init configures the global logger. level and format come from the config
// file; LOG_LEVEL and LOG_FORMAT override them. Unknown levels fall back to
// info, unknown formats to text.
func Init(level, format string) {
	Log = New(os.Stdout, level, format)
}

// New builds a logger writing to out with the same rules as Init.
func New(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = v
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		format = v
	}
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
