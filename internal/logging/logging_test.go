package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/MyelinBots/ecochat-go/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, config.AppConfig{APPName: "ecochat", Version: "1.0.0", LogLevel: "info", LogFormat: "json"})

	logger.Info("hello", slog.Int("n", 1))
	logger.Debug("hidden")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "hello" || line["app"] != "ecochat" || line["version"] != "1.0.0" {
		t.Errorf("unexpected log line: %v", line)
	}
}

func TestSetup_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := setup(&buf, config.AppConfig{APPName: "ecochat", LogLevel: "debug", LogFormat: "TEXT"})

	logger.Debug("visible")

	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("expected text output with debug line, got %q", buf.String())
	}
}
