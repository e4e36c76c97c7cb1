// Package logging configures the process-wide logrus logger.
//
// Logs always go to stderr; stdout carries converted data only.
package logging

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Init sets level, format and destination of the standard logrus logger.
// format is "text" or "json"; anything else falls back to text.
func Init(w io.Writer, level log.Level, format string) {
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(Formatter(format))
}

// Formatter returns the logrus formatter for a format name.
func Formatter(format string) log.Formatter {
	if strings.EqualFold(format, "json") {
		return &log.JSONFormatter{}
	}
	return &log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	}
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to a
// logrus level. Unknown strings default to InfoLevel.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
