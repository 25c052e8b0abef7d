package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "eco-fighter.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// stderr receives setup failures; it is only written before the screen takes the terminal
var stderr io.Writer = os.Stderr

// setupLogging returns a file-backed logger when debug is set
// A failed rotation is reported on stderr and logging continues in the old file
func setupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("eco-fighter-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(stderr, "eco-fighter: log rotation failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	log.Info().Int("pid", os.Getpid()).Msg("logging started")
	return log, f
}
