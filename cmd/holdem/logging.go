package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds the structured logger shared by the table and the CLI
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem",
		Level:           level,
	})
}
