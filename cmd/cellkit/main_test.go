package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dshills/cellkit/internal/app"
	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/script"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"80x25", 80, 25, false},
		{"120X40", 120, 40, false},
		{"80", 0, 0, true},
		{"0x10", 0, 0, true},
		{"80x-1", 0, 0, true},
		{"wide x tall", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %d,%d, want %d,%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestDemoUnderScript(t *testing.T) {
	a, err := app.New(
		app.WithBackend(backend.NewNullBackend(80, 25)),
		app.WithClipboard(&clipboard.Memory{}),
		app.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("app.New() failed: %v", err)
	}
	if err := buildDemo(a); err != nil {
		t.Fatalf("buildDemo() = %v", err)
	}
	if n := len(a.Windows()); n != 1 {
		t.Fatalf("demo has %d windows", n)
	}

	var out bytes.Buffer
	r := script.NewRunner(a, script.WithOutput(&out), script.WithLogger(logging.Discard()))
	defer r.Close()
	err = r.Run(context.Background(), `
		if not Screen.Contains("cellkit demo") then Error("title missing") end
		if not Screen.Contains("Mon") then Error("grid header missing") end
		Screen.Print()
	`)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	if !strings.Contains(out.String(), "File") {
		t.Errorf("printed screen lacks the menu bar:\n%s", out.String())
	}
}
