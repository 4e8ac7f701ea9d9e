package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), logDir)
	log, logFile := setupLogging(dir, false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	log.Error().Msg("dropped")

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), logDir)
	log, logFile := setupLogging(dir, true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Debug().Str("plane", "p1").Msg("takeoff")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"takeoff"`) || !strings.Contains(string(data), `"plane":"p1"`) {
		t.Errorf("log file = %q, want a JSON takeoff line", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile := setupLogging(dir, true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	_, logFile := setupLogging(filepath.Join(t.TempDir(), logDir), true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if logFile == os.Stdout || logFile == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
