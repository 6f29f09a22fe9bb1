package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/clyde80/cliclock/internal/config"
)

// newLogger returns the logger handed to the clock. The display owns the
// terminal, so log lines never go to stdout or stderr: with debug set they
// are appended to the state file, otherwise they are discarded.
func newLogger(debug bool) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard), func() {}, nil
	}

	path, err := xdg.StateFile(config.LogFileName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	return openLogFile(path)
}

func openLogFile(path string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		Prefix:          config.AppName,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
	})
	return logger, func() { _ = f.Close() }, nil
}
