package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/mdmedium/internal/ports"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Info("converted",
		ports.String("path", "post.md"),
		ports.Int("lines", 12),
		ports.Bool("display", false),
		ports.Duration("took", 2*time.Millisecond),
		ports.Any("tags", []string{"go", "cli"}),
		ports.Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}

	if entry["message"] != "converted" {
		t.Errorf("message = %v, want converted", entry["message"])
	}
	if entry["path"] != "post.md" {
		t.Errorf("path = %v, want post.md", entry["path"])
	}
	if entry["lines"] != float64(12) {
		t.Errorf("lines = %v, want 12", entry["lines"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	if tags, ok := entry["tags"].([]interface{}); !ok || len(tags) != 2 {
		t.Errorf("tags = %v, want two entries", entry["tags"])
	}
}

func TestNewConsoleLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapterWithLogger(NewConsoleLogger(&buf, zerolog.WarnLevel))

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNoopLogger(t *testing.T) {
	var l ports.Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", ports.Err(errors.New("ignored")))
}
