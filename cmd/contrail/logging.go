package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "contrail.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the root logger
// Without debug everything is discarded; the terminal UI owns stdout and stderr
// The returned file is nil when logging is disabled or the file could not be opened
func setupLogging(dir string, debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	f, err := openLogFile(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}
	log := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return log, f
}

// openLogFile creates dir, rotates an oversized log aside and opens the log for append
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("contrail-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log")
	}
	return f, nil
}
