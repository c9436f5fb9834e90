package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newTUILogger returns a logger for use while the TUI owns the
// terminal. With a path it writes to a size-rotated file; without one
// it discards everything.
func newTUILogger(path string) *log.Logger {
	if path == "" {
		return log.New(io.Discard)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	logger := log.New(writer)
	logger.SetLevel(log.DebugLevel)
	logger.SetReportTimestamp(true)

	return logger
}

// newStderrLogger returns a logger for the non-TUI subcommands. Colors
// are enabled only when stderr is a terminal.
func newStderrLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logger.SetColorProfile(termenv.Ascii)
	}

	return logger
}
