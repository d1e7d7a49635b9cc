package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelNone, ""},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q; want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "": LevelInfo, "warning": LevelWarn, "off": LevelNone} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = (%v, %v); want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines; want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "warn 3" {
		t.Errorf("message = %v; want %q", entry["message"], "warn 3")
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v; want warn", entry["level"])
	}
}

func TestLoggerEventFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.Event(LevelInfo).Str("check", "binding").Msg("advisory")

	if !strings.Contains(buf.String(), `"check":"binding"`) {
		t.Errorf("output %q missing structured field", buf.String())
	}
}

func TestLoggerSetLevelAndNop(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.SetLevel(LevelNone)
	l.Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("LevelNone should drop everything, got %q", buf.String())
	}

	Nop().Event(LevelError).Str("k", "v").Msg("nil-safe")
	Nop().Event(LevelNone).Msg("nil-safe")
}
