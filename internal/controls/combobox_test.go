package controls

import (
	"strings"
	"testing"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
)

func newTestCombo(t *testing.T, root *testRoot, format string) *ComboBox {
	t.Helper()
	cb, err := NewComboBox(root, format, "Red", "Green")
	if err != nil {
		t.Fatalf("NewComboBox: %v", err)
	}
	cb.AddSeparator("More")
	cb.AddItem("Blue", 3)
	cb.AddItem("Cyan", 4)
	cb.AddItem("Gray", 5)
	cb.AddItem("White", 6)
	return cb
}

func TestComboBoxKeys(t *testing.T) {
	root := newTestRoot(40, 10)
	cb := newTestCombo(t, root, "x:2,y:1,w:20,h:1")
	changes := 0
	root.ctx.Handlers().OnEvent = func(ev Event) bool {
		if ev.Type == EventCurrentItemChanged {
			changes++
		}
		return true
	}
	if cb.CurrentItem() != -1 || cb.ItemsCount() != 7 {
		t.Fatalf("initial current %d count %d", cb.CurrentItem(), cb.ItemsCount())
	}
	steps := []struct {
		key  input.Key
		want int
	}{
		{input.KeyDown, 0},
		{input.KeyDown, 1},
		{input.KeyDown, 3},
		{input.KeyUp, 1},
		{input.KeyEnd, 6},
		{input.KeyDown, 6},
		{input.KeyHome, 0},
		{input.KeyUp, 0},
	}
	for _, s := range steps {
		cb.OnKeyEvent(s.key, 0)
		if cb.CurrentItem() != s.want {
			t.Errorf("after %v current = %d, want %d", s.key, cb.CurrentItem(), s.want)
		}
	}
	if changes != 6 {
		t.Errorf("changes = %d, want 6", changes)
	}
	if cb.SetCurrentItem(2) || cb.SetCurrentItem(9) {
		t.Errorf("SetCurrentItem accepted a separator or a bad index")
	}
	if d, _ := cb.ItemData(4); d != 4 {
		t.Errorf("ItemData(4) = %v", d)
	}
	if !cb.IsSeparator(2) {
		t.Errorf("item 2 is not a separator")
	}
}

func TestComboBoxExpand(t *testing.T) {
	root := newTestRoot(40, 10)
	cb := newTestCombo(t, root, "x:2,y:1,w:20,h:1")
	cb.SetCurrentItem(0)

	cb.OnKeyEvent(input.KeyEnter, 0)
	if !cb.IsExpanded() || root.expanded != cb {
		t.Fatalf("Enter did not open the list")
	}
	clip := cb.Base().ExpandedViewClip
	if clip.ScreenY != 1 || clip.Height() != 8 || clip.Width() != 20 {
		t.Errorf("expanded clip y=%d %dx%d, want y=1 20x8", clip.ScreenY, clip.Width(), clip.Height())
	}
	for k := 0; k < 3; k++ {
		cb.OnKeyEvent(input.KeyDown, 0)
	}
	if cb.CurrentItem() != 0 {
		t.Errorf("moving in the open list changed the selection")
	}
	buf := root.paint()
	if row := rowText(buf, 4); !strings.Contains(row, "Green") {
		t.Errorf("list row 4 = %q", row)
	}
	if row := rowText(buf, 5); !strings.Contains(row, "More") {
		t.Errorf("separator row = %q", row)
	}
	cb.OnKeyEvent(input.KeyEnter, 0)
	if cb.IsExpanded() || root.expanded != nil || cb.CurrentItemText() != "Cyan" {
		t.Errorf("after Enter: expanded %v current %q", cb.IsExpanded(), cb.CurrentItemText())
	}

	cb.Open()
	cb.OnKeyEvent(input.KeyHome, 0)
	cb.OnKeyEvent(input.KeyEscape, 0)
	if cb.IsExpanded() || cb.CurrentItemText() != "Cyan" {
		t.Errorf("Escape changed the selection to %q", cb.CurrentItemText())
	}

	// the list is Red, Green, More, Blue, Cyan; row 1 of the list is Green
	cb.OnMousePressed(0, 0, input.MouseLeft)
	if !cb.IsExpanded() {
		t.Fatalf("click did not open the list")
	}
	cb.OnMouseOver(3, 3)
	if cb.State().hovered != 1 {
		t.Errorf("hovered = %d, want 1", cb.State().hovered)
	}
	cb.OnMousePressed(3, 3, input.MouseLeft)
	if cb.IsExpanded() || cb.CurrentItemText() != "Green" {
		t.Errorf("click picked %q", cb.CurrentItemText())
	}
}

func TestComboBoxOpensAboveNearBottom(t *testing.T) {
	root := newTestRoot(40, 10)
	cb := newTestCombo(t, root, "x:2,y:8,w:20,h:1")
	cb.Open()
	clip := cb.Base().ExpandedViewClip
	if clip.ScreenY != 1 || clip.Height() != 8 {
		t.Errorf("flipped clip y=%d h=%d, want y=1 h=8", clip.ScreenY, clip.Height())
	}
	st := cb.State()
	if st.headerOffset != 7 || st.contentOffset != 0 {
		t.Errorf("offsets header=%d content=%d, want 7/0", st.headerOffset, st.contentOffset)
	}
	cb.Close()
	if st.headerOffset != 0 || st.contentOffset != 1 {
		t.Errorf("offsets not reset after close")
	}
}

func TestComboBoxLoseFocusCloses(t *testing.T) {
	root := newTestRoot(40, 10)
	cb := newTestCombo(t, root, "x:2,y:1,w:20,h:1")
	NewButton(root, "x:2,y:5,w:8,h:1", "Ok", 1)
	Activate(root, true)
	cb.Base().SetFocus()
	cb.Open()
	FocusNext(root, true)
	if cb.IsExpanded() {
		t.Errorf("list still open after losing focus")
	}
}

func TestColorPicker(t *testing.T) {
	root := newTestRoot(40, 10)
	cp, err := NewColorPicker(root, "x:0,y:0,w:24,h:1", core.Red)
	if err != nil {
		t.Fatalf("NewColorPicker: %v", err)
	}
	cp.OnKeyEvent(input.KeyRight, 0)
	if cp.Color() != core.Pink {
		t.Errorf("Right = %v, want Pink", cp.Color())
	}
	cp.OnKeyEvent(input.KeyLeft, 0)
	if cp.SetColor(core.Transparent) || cp.Color() != core.Red {
		t.Errorf("color = %v after rejecting Transparent", cp.Color())
	}

	cp.OnKeyEvent(input.KeySpace, ' ')
	if !cp.IsExpanded() {
		t.Fatalf("Space did not open the palette")
	}
	if h := cp.Base().ExpandedViewClip.Height(); h != 7 {
		t.Errorf("palette height = %d, want 7", h)
	}
	// Red is at column 0 of row 3; Down wraps to row 0
	cp.OnKeyEvent(input.KeyRight, 0)
	cp.OnKeyEvent(input.KeyDown, 0)
	if cp.State().cursor != core.DarkBlue {
		t.Errorf("cursor = %v, want DarkBlue", cp.State().cursor)
	}
	cp.OnKeyEvent(input.KeyEnter, 0)
	if cp.IsExpanded() || cp.Color() != core.DarkBlue {
		t.Errorf("Enter: expanded %v color %v", cp.IsExpanded(), cp.Color())
	}

	cp.OnMousePressed(2, 0, input.MouseLeft)
	// Yellow: row 3, column 2
	cp.OnMousePressed(7, 5, input.MouseLeft)
	if cp.IsExpanded() || cp.Color() != core.Yellow {
		t.Errorf("click picked %v", cp.Color())
	}
	buf := root.paint()
	if got := string([]rune(rowText(buf, 0))[3:9]); got != "Yellow" {
		t.Errorf("header = %q", got)
	}
	if c := buf.GetCell(1, 0); c.Rune != renderer.BlockCentered.Rune() || c.Colors.Foreground != core.Yellow {
		t.Errorf("swatch cell = %q %v", c.Rune, c.Colors)
	}
}

func TestColorPickerEscapeAndFlip(t *testing.T) {
	root := newTestRoot(40, 10)
	cp, _ := NewColorPicker(root, "x:0,y:5,w:24,h:1", core.Green)
	cp.Open()
	st := cp.State()
	if cp.Base().ExpandedViewClip.ScreenY != 0 || st.headerOffset != 5 || st.contentOffset != 0 {
		t.Errorf("flip: y=%d header=%d content=%d", cp.Base().ExpandedViewClip.ScreenY, st.headerOffset, st.contentOffset)
	}
	cp.OnKeyEvent(input.KeyLeft, 0)
	cp.OnKeyEvent(input.KeyEscape, 0)
	if cp.IsExpanded() || cp.Color() != core.Green {
		t.Errorf("Escape: expanded %v color %v", cp.IsExpanded(), cp.Color())
	}
}
