package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "macromanager.log")

	f, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging() error: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
		f.Close()
	})

	log.Println("hello from test")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestSetupLoggingStderr(t *testing.T) {
	f, err := setupLogging("")
	if err != nil || f != nil {
		t.Errorf("setupLogging(\"\") = %v, %v; want nil, nil", f, err)
	}
}
