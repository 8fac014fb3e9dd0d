package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Info("hidden")
	l.Warn("shown %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 42") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestDerivedLoggerSharesSink(t *testing.T) {
	var buf bytes.Buffer
	root := New(Config{Level: LevelError, Output: &buf})
	child := root.WithComponent("grid").WithField("op", "paste")

	root.SetLevel(LevelDebug)
	child.Debug("msg")

	out := buf.String()
	if !strings.Contains(out, "{component=grid, op=paste}") {
		t.Errorf("fields not rendered in sorted order: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v", l.Level())
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"}))
	Component("menu").Info("opened")

	if !strings.Contains(buf.String(), "test: opened {component=menu}") {
		t.Errorf("unexpected output %q", buf.String())
	}

	SetDefault(nil)
	Default().Error("dropped")
}
