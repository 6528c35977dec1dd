package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lumen-studio/recruit-intake/internal/config"
	log "github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"":      log.InfoLevel,
		"debug": log.DebugLevel,
		" warn": log.WarnLevel,
		"ERROR": log.ErrorLevel,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestConfigureStdoutOnly(t *testing.T) {
	logger := log.New()
	var buf bytes.Buffer

	closer, err := configure(logger, config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn entry missing: %q", out)
	}
}

func TestConfigureWritesRotatingFile(t *testing.T) {
	logger := log.New()
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "recruit.log")

	closer, err := configure(logger, config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, &buf)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	logger.Info("to both sinks")
	if errClose := closer.Close(); errClose != nil {
		t.Fatalf("close: %v", errClose)
	}

	data, errRead := os.ReadFile(path)
	if errRead != nil {
		t.Fatalf("read log file: %v", errRead)
	}
	if !strings.Contains(string(data), "to both sinks") {
		t.Fatalf("file sink missing entry: %q", string(data))
	}
	if !strings.Contains(buf.String(), "to both sinks") {
		t.Fatalf("stdout sink missing entry: %q", buf.String())
	}
}

func TestConfigureRejectsBadLevel(t *testing.T) {
	if _, err := configure(log.New(), config.LogConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error")
	}
}
