package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "log"
	logFileName = "nova-fighter.log"
)

// setupLogging routes the standard logger to a file when debug is set,
// and discards it otherwise so log calls never corrupt the terminal UI.
// Returns the open file (nil when disabled) for the caller to close
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(logDir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	fmt.Fprintf(f, "--- session %s ---\n", time.Now().Format(time.RFC3339))
	return f
}
