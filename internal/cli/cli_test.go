package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ResolveLogLevel(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: got %v want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ResolveLogLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "block", 512)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "block=512") {
		t.Fatalf("warn record missing: %q", out)
	}

	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		in   cpu.Features
		want string
	}{
		{cpu.Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true}, "amd64: sse2 avx2"},
		{cpu.Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "amd64: generic"},
		{cpu.Features{Architecture: "arm64", HasNEON: true}, "arm64: neon"},
		{cpu.Features{Architecture: "wasm"}, "wasm: generic"},
	}
	for _, tt := range tests {
		if got := summarize(tt.in); got != tt.want {
			t.Fatalf("summarize(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLogHost(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(&buf, "debug")
	LogHost(logger)
	if !strings.Contains(buf.String(), "simd=") {
		t.Fatalf("missing simd attribute: %q", buf.String())
	}
}
