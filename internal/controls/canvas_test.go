package controls

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer/core"
)

func TestCanvasScrolling(t *testing.T) {
	root := newTestRoot(40, 10)
	if _, err := NewCanvas(root, "x:0,y:0,w:10,h:5", 0, 3); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("zero width canvas: err = %v", err)
	}
	cv, err := NewCanvas(root, "x:0,y:0,w:10,h:5", 30, 20)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	colors := core.Pair(core.White, core.Blue)
	cv.Renderer().WriteSingleLineText(0, 0, "hello", colors)
	cv.Renderer().WriteSingleLineText(20, 15, "end", colors)

	if got := rowText(root.paint(), 0); !strings.HasPrefix(got, "hello") {
		t.Errorf("row 0 = %q", got)
	}

	tests := []struct {
		name  string
		key   input.Key
		wantX int
		wantY int
	}{
		{"right", input.KeyRight, 1, 0},
		{"down", input.KeyDown, 1, 1},
		{"page down", input.KeyPageDown, 1, 6},
		{"end", input.KeyEnd, 20, 15},
		{"past end", input.KeyRight, 20, 15},
		{"home", input.KeyHome, 0, 0},
		{"past home", input.KeyUp, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !cv.OnKeyEvent(tt.key, 0) {
				t.Fatalf("key not used")
			}
			if x, y := cv.Scroll(); x != tt.wantX || y != tt.wantY {
				t.Errorf("scroll = %d,%d, want %d,%d", x, y, tt.wantX, tt.wantY)
			}
		})
	}

	cv.ScrollTo(20, 15)
	if got := rowText(root.paint(), 0); !strings.HasPrefix(got, "end") {
		t.Errorf("row 0 after scroll = %q", got)
	}
	sb := cv.Base().ScrollBars
	if sb.Horizontal() != 20 || sb.MaxVertical() != 15 {
		t.Errorf("scroll bars h=%d maxV=%d", sb.Horizontal(), sb.MaxVertical())
	}

	cv.ScrollTo(0, 0)
	cv.OnMousePressed(5, 2, input.MouseLeft)
	cv.OnMouseDrag(3, 1, input.MouseLeft)
	cv.OnMouseReleased(3, 1, input.MouseLeft)
	if x, y := cv.Scroll(); x != 2 || y != 1 {
		t.Errorf("drag scroll = %d,%d, want 2,1", x, y)
	}
	if cv.OnMouseDrag(0, 0, input.MouseLeft) {
		t.Errorf("drag without a press scrolled")
	}
	cv.OnMouseWheel(0, 0, input.WheelDown)
	if _, y := cv.Scroll(); y != 2 {
		t.Errorf("wheel scroll y = %d, want 2", y)
	}

	cv.ScrollTo(20, 15)
	cv.ResizeSurface(15, 8)
	if x, y := cv.Scroll(); x != 5 || y != 3 {
		t.Errorf("after shrinking surface scroll = %d,%d, want 5,3", x, y)
	}
	if cv.ResizeSurface(0, 8) {
		t.Errorf("ResizeSurface accepted a zero width")
	}
}

func TestNumericSelector(t *testing.T) {
	root := newTestRoot(40, 5)
	if _, err := NewNumericSelector(root, "x:0,y:0,w:20,h:1", 5, 1, 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("inverted range: err = %v", err)
	}
	ns, err := NewNumericSelector(root, "x:0,y:0,w:20,h:1", 0, 100, 50)
	if err != nil {
		t.Fatalf("NewNumericSelector: %v", err)
	}
	changes := 0
	root.ctx.Handlers().OnEvent = func(ev Event) bool {
		if ev.Type == EventValueChanged {
			changes++
		}
		return true
	}

	keys := []struct {
		key  input.Key
		want int64
	}{
		{input.KeyRight, 51},
		{input.KeyLeft, 50},
		{input.KeyDown, 49},
		{input.KeyHome, 0},
		{input.KeyLeft, 0},
		{input.KeyEnd, 100},
	}
	for _, k := range keys {
		ns.OnKeyEvent(k.key, 0)
		if ns.Value() != k.want {
			t.Errorf("after %v value = %d, want %d", k.key, ns.Value(), k.want)
		}
	}

	typeText := func(s string) {
		for _, r := range s {
			ns.OnKeyEvent(input.KeyNone, r)
		}
	}
	typeText("42")
	if !ns.IsEditing() || ns.Text() != "42" {
		t.Errorf("editing %v text %q", ns.IsEditing(), ns.Text())
	}
	ns.OnKeyEvent(input.KeyEnter, 0)
	if ns.IsEditing() || ns.Value() != 42 {
		t.Errorf("commit: editing %v value %d", ns.IsEditing(), ns.Value())
	}

	typeText("777")
	ns.OnKeyEvent(input.KeyEnter, 0)
	if !ns.IsEditing() || !ns.State().wrong || ns.Value() != 42 {
		t.Errorf("out of range commit: editing %v wrong %v value %d", ns.IsEditing(), ns.State().wrong, ns.Value())
	}
	ns.OnKeyEvent(input.KeyEscape, 0)
	if ns.IsEditing() || ns.Text() != "42" {
		t.Errorf("escape: editing %v text %q", ns.IsEditing(), ns.Text())
	}

	typeText("5-")
	if ns.Text() != "-5" {
		t.Errorf("minus toggle text = %q", ns.Text())
	}
	ns.OnKeyEvent(input.KeyBackspace, 0)
	if ns.Text() != "-" {
		t.Errorf("backspace text = %q", ns.Text())
	}
	ns.OnKeyEvent(input.KeyEnter, 0)
	if !ns.State().wrong {
		t.Errorf("malformed input not marked wrong")
	}
	ns.OnKeyEvent(input.KeyEscape, 0)

	ns.OnMousePressed(1, 0, input.MouseLeft)
	ns.OnMouseReleased(1, 0, input.MouseLeft)
	if ns.Value() != 41 {
		t.Errorf("minus button value = %d, want 41", ns.Value())
	}
	ns.OnMousePressed(19, 0, input.MouseLeft)
	ns.OnMouseReleased(19, 0, input.MouseLeft)
	if ns.Value() != 42 {
		t.Errorf("plus button value = %d, want 42", ns.Value())
	}
	ns.OnMouseWheel(5, 0, input.WheelUp)
	if ns.Value() != 43 {
		t.Errorf("wheel value = %d, want 43", ns.Value())
	}

	if ns.SetRange(5, 1) {
		t.Errorf("SetRange accepted an inverted range")
	}
	ns.SetRange(0, 10)
	if ns.Value() != 10 {
		t.Errorf("value after narrowing range = %d, want 10", ns.Value())
	}
	if changes != 10 {
		t.Errorf("value events = %d, want 10", changes)
	}

	row := rowText(root.paint(), 0)
	if !strings.Contains(row, "10") || row[1] != '-' || row[18] != '+' {
		t.Errorf("painted row = %q", row)
	}
}
