package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomb-arcade/internal/games/bomber"
	"github.com/vovakirdan/bomb-arcade/internal/platform/tui"
)

var (
	appLogger = log.New(io.Discard)
	logFile   *os.File
)

// setupLogging builds the process logger. Commands that own the terminal log
// to a file; serve logs to stderr unless --log-file says otherwise.
func setupLogging(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer
	switch {
	case flagLogFile == "-":
		w = os.Stderr
	case flagLogFile != "":
		if w, err = openLogFile(flagLogFile); err != nil {
			return err
		}
	case cmd.Name() == "serve":
		w = os.Stderr
	case cmd.Name() == "play" || cmd.Name() == "menu":
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			w = io.Discard
			break
		}
		if w, err = openLogFile(filepath.Join(home, ".arcade", "bomber.log")); err != nil {
			return err
		}
	default:
		w = os.Stderr
	}

	appLogger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
		Level:           level,
	})
	bomber.SetLogger(appLogger)
	tui.SetLogger(appLogger)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	return f, nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
