package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf})

	log.Debug(context.Background(), "speed set", String("body", "mars"), Float("value", 2.5))

	out := buf.String()
	if !strings.Contains(out, "speed set") || !strings.Contains(out, "body=mars") || !strings.Contains(out, "value=2.5") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "json", Output: &buf}).With(String("frontend", "tui"))

	log.Info(context.Background(), "started", Int("bodies", 8))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "started" || rec["frontend"] != "tui" || rec["bodies"] != float64(8) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info(context.Background(), "hidden")
	log.Error(context.Background(), "shown", Err(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "boom") {
		t.Errorf("expected error record, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNoop(t *testing.T) {
	log := Noop().With(String("k", "v"))
	log.Info(context.Background(), "dropped")
}
