package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/sankalpam/panchanga-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetup_SetsDefault(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment, LogLevel: "info", LogFormat: "text"}
	log := Setup(cfg)

	if log == nil {
		t.Fatal("Setup() returned nil")
	}
	if slog.Default() != log {
		t.Error("Setup() did not install the logger as default")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Errorf("RequestID() = %q, want req-42", got)
	}

	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on bare context = %q, want empty", got)
	}
}

// setTestDefault installs a buffer-backed default logger and restores the
// previous one when the test finishes.
func setTestDefault(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestFromContext_AddsRequestID(t *testing.T) {
	buf := setTestDefault(t, slog.LevelInfo)

	ctx := WithRequestID(context.Background(), "req-7")
	FromContext(ctx).Info("hello")

	if out := buf.String(); !strings.Contains(out, "request_id=req-7") {
		t.Errorf("log line missing request_id: %q", out)
	}
}

func TestFromContext_NoRequestID(t *testing.T) {
	buf := setTestDefault(t, slog.LevelInfo)

	FromContext(context.Background()).Info("hello")

	if out := buf.String(); strings.Contains(out, "request_id") {
		t.Errorf("log line should carry no request_id: %q", out)
	}
}

func TestContextHelpers(t *testing.T) {
	buf := setTestDefault(t, slog.LevelDebug)
	ctx := WithRequestID(context.Background(), "req-9")

	Info(ctx, "served", slog.String("city", "Chennai"))
	Warn(ctx, "slow provider")
	Debug(ctx, "resolved")
	Error(ctx, "provider down", errors.New("connection refused"))

	out := buf.String()
	for _, want := range []string{
		"served", "city=Chennai",
		"slow provider",
		"resolved",
		"provider down", "connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "request_id=req-9"); got != 4 {
		t.Errorf("request_id stamped on %d lines, want 4", got)
	}
}
