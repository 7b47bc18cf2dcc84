package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// setupLogging sends log output to path, or leaves it on stderr when path
// is empty. The returned file must be closed by the caller.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("=== LOG INITIALIZED ===")
	return f, nil
}
