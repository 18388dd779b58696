package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	logFile *os.File

	// logger is used by interactive commands. Without --log-file it
	// discards everything so the alternate screen stays clean.
	logger = log.New(io.Discard)
)

// setupLogging builds the CLI logger from the global flags.
func setupLogging(level, path string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	if path == "" {
		logger = log.New(io.Discard)
		logger.SetLevel(lvl)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "arcade",
	})
	return nil
}

// stderrLogger returns a logger for non-interactive commands. It honours
// --log-file when set and writes to stderr otherwise.
func stderrLogger(prefix string) *log.Logger {
	if logFile != nil {
		return logger.WithPrefix(prefix)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           logger.GetLevel(),
		Prefix:          prefix,
	})
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
