package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogging sends the standard logger to the log file, and to stdout
// as well when console is set. The returned func restores the default.
func setupLogging(path string, console bool) (func(), error) {
	restore := func() { log.SetOutput(os.Stderr) }

	if path == "" {
		if console {
			log.SetOutput(os.Stdout)
		} else {
			log.SetOutput(io.Discard)
		}
		return restore, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	if console {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		log.SetOutput(f)
	}

	return func() {
		restore()
		_ = f.Close()
	}, nil
}
