package backend

import (
	"testing"

	"github.com/dshills/cellkit/internal/renderer/core"
)

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cell := core.NewCell('X', core.Pair(core.Red, core.Black))
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if !b.GetCell(-1, 0).Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 5)
	if _, ok := b.TryPollEvent(); ok {
		t.Fatal("queue should start empty")
	}
	b.PostEvent(Event{Type: EventKey, Key: KeyEnter})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyEnter {
		t.Errorf("got %+v", ev)
	}

	b.Resize(20, 6)
	ev, ok := b.TryPollEvent()
	if !ok || ev.Type != EventResize || ev.Width != 20 || ev.Height != 6 {
		t.Errorf("resize event = %+v, %v", ev, ok)
	}
}

func TestNullBackendLines(t *testing.T) {
	b := NewNullBackend(4, 2)
	b.SetCell(0, 0, core.NewCell('a', core.DefaultColors))
	b.SetCell(1, 0, core.NewCell('世', core.DefaultColors))
	b.SetCell(2, 0, core.ContinuationCell(core.DefaultColors))

	lines := b.Lines()
	if lines[0] != "a世 " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "    " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(10, 5)
	b.ShowCursor(3, 4)
	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("cursor = %d,%d,%v", x, y, visible)
	}
	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor still visible")
	}
}

func TestScreenBufferFlushOnlyChanges(t *testing.T) {
	sb := NewScreenBuffer(5, 3)
	b := NewNullBackend(5, 3)

	if n := sb.Flush(b); n != 15 {
		t.Errorf("first flush wrote %d cells, want full redraw", n)
	}
	sb.SetString(1, 1, "hi", core.Pair(core.White, core.Blue))
	if n := sb.Flush(b); n != 2 {
		t.Errorf("second flush wrote %d cells, want 2", n)
	}
	if b.GetCell(2, 1).Rune != 'i' {
		t.Errorf("backend cell = %q", b.GetCell(2, 1).Rune)
	}
	if n := sb.Flush(b); n != 0 {
		t.Errorf("idle flush wrote %d cells", n)
	}
	if b.ShowCount() != 3 {
		t.Errorf("ShowCount = %d", b.ShowCount())
	}
}

func TestScreenBufferResizePreserves(t *testing.T) {
	sb := NewScreenBuffer(4, 2)
	sb.SetString(0, 1, "abcd", core.DefaultColors)
	sb.Resize(6, 3)
	if sb.GetCell(3, 1).Rune != 'd' {
		t.Errorf("content lost on resize")
	}
	if sb.GetCell(5, 2).Rune != ' ' {
		t.Errorf("new area not blank")
	}
	sb.Resize(2, 2)
	if w, h := sb.Size(); w != 2 || h != 2 {
		t.Errorf("Size = %dx%d", w, h)
	}
	if sb.GetCell(1, 1).Rune != 'b' {
		t.Errorf("content lost on shrink")
	}
}

func TestScreenBufferFill(t *testing.T) {
	sb := NewScreenBuffer(5, 5)
	sb.Fill(core.ScreenRect{Top: -1, Left: 3, Bottom: 2, Right: 9}, core.NewCell('#', core.DefaultColors))
	if sb.GetCell(4, 1).Rune != '#' || sb.GetCell(2, 1).Rune != ' ' || sb.GetCell(4, 2).Rune != ' ' {
		t.Error("fill clipped incorrectly")
	}
}
