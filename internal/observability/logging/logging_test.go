package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name     string
		input    string
		wantSame bool
	}{
		{"valid uuid kept", valid, true},
		{"empty generates", "", false},
		{"garbage generates", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAndExtractRequestID(tt.input)
			if tt.wantSame && got != tt.input {
				t.Errorf("ValidateAndExtractRequestID(%q) = %q, want input kept", tt.input, got)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("ValidateAndExtractRequestID(%q) = %q, not a uuid", tt.input, got)
			}
		})
	}
}

func TestHandler_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, HandlerConfig{
		ServiceInfo:   ServiceInfo{Name: "park-live-board", Version: "test"},
		Environment:   EnvDev,
		DefaultModule: Module("board"),
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithModule(ctx, Module("refresh"))
	logger.InfoContext(ctx, "cycle done", slog.Int("records", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}

	checks := map[string]any{
		"message":    "cycle done",
		"severity":   "INFO",
		"module":     "refresh",
		"request_id": "req-1",
		"env":        "dev",
		"records":    float64(3),
	}
	for key, want := range checks {
		if entry[key] != want {
			t.Errorf("entry[%q] = %v, want %v", key, entry[key], want)
		}
	}

	service, ok := entry["service"].(map[string]any)
	if !ok || service["name"] != "park-live-board" {
		t.Errorf("service group = %v, want name park-live-board", entry["service"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
