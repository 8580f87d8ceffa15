package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/fiskerit/intake_backend/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewDefaultsToStdout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Logging.Level = "info"
	cfg.Server.Environment = "development"

	logger := New(cfg)
	if logger == nil {
		t.Fatal("expected a logger even with empty output config")
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	}}

	logger := slog.New(h)
	logger.Info("intake started", "port", 5000)

	if !strings.Contains(a.String(), "intake started") {
		t.Errorf("text handler missed the record: %q", a.String())
	}
	if !strings.Contains(b.String(), "intake started") {
		t.Errorf("json handler missed the record: %q", b.String())
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	warnOnly := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	info := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})

	h := &multiHandler{handlers: []slog.Handler{warnOnly, info}}

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("multi handler must be enabled when any child is")
	}

	strict := &multiHandler{handlers: []slog.Handler{warnOnly}}
	if strict.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("multi handler must be disabled when no child accepts the level")
	}
}
