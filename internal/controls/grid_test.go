package controls

import (
	"slices"
	"testing"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// newTestGrid returns a 4x4 grid with 10x5 cells whose matrix starts at
// (0, 1), below the header row.
func newTestGrid(t *testing.T, flags GridFlags) (*testRoot, *Grid) {
	t.Helper()
	root := newTestRoot(100, 40)
	g, err := NewGrid(root, "x:0,y:0,w:41,h:22", 4, 4, flags)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return root, g
}

// cellPoint returns a point inside the given cell.
func cellPoint(col, row int) (int, int) {
	return col*10 + 1, 1 + row*5 + 1
}

func TestGridGeometry(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	if w, h := g.CellSize(); w != 10 || h != 5 {
		t.Errorf("CellSize() = %d,%d, want 10,5", w, h)
	}
	if x, y := g.Offsets(); x != 0 || y != 1 {
		t.Errorf("Offsets() = %d,%d, want 0,1", x, y)
	}
	if g.CellsCount() != 16 {
		t.Errorf("CellsCount() = %d", g.CellsCount())
	}

	_, hidden := newTestGrid(t, GridHideHeader)
	if x, y := hidden.Offsets(); x != 0 || y != 0 {
		t.Errorf("without header Offsets() = %d,%d, want 0,0", x, y)
	}
}

func TestGridInvalidSize(t *testing.T) {
	root := newTestRoot(80, 25)
	if _, err := NewGrid(root, "x:0,y:0,w:20,h:20", 0, 3, GridNone); err != ErrInvalidSize {
		t.Errorf("NewGrid(0 columns) error = %v, want ErrInvalidSize", err)
	}
}

func TestGridNoCellSentinel(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	if g.HoveredCell() != InvalidCellIndex || g.AnchorCell() != InvalidCellIndex {
		t.Errorf("new grid hovered=%d anchor=%d, want InvalidCellIndex", g.HoveredCell(), g.AnchorCell())
	}
	var idx int32 = InvalidCellIndex
	if idx >= 0 {
		t.Errorf("InvalidCellIndex = %d, want a negative index", idx)
	}
	x, y := cellPoint(1, 1)
	g.OnMouseOver(x, y)
	g.OnMouseLeave()
	if g.HoveredCell() != InvalidCellIndex {
		t.Errorf("hovered after leave = %d", g.HoveredCell())
	}
}

func TestGridComputeCellNumber(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	tests := []struct {
		x, y int
		want int
	}{
		{11, 7, 5},
		{1, 2, 0},
		{39, 20, 15},
		{0, 5, InvalidCellIndex},
		{40, 5, InvalidCellIndex},
		{5, 1, InvalidCellIndex},
		{5, 21, InvalidCellIndex},
		{-3, 5, InvalidCellIndex},
	}
	for _, tt := range tests {
		if got := g.ComputeCellNumber(tt.x, tt.y); got != tt.want {
			t.Errorf("ComputeCellNumber(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGridClickExtendEscape(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	x, y := cellPoint(1, 1)
	if !g.OnMousePressed(x, y, input.MouseLeft) {
		t.Fatal("left press not consumed")
	}
	if got := g.SelectedCells(); !slices.Equal(got, []int{5}) {
		t.Fatalf("after click selection = %v, want [5]", got)
	}
	if g.AnchorCell() != 5 {
		t.Errorf("anchor = %d, want 5", g.AnchorCell())
	}
	if !g.OnKeyEvent(input.KeyRight|input.KeyShift, 0) {
		t.Fatal("Shift+Right not consumed")
	}
	if got := g.SelectedCells(); !slices.Equal(got, []int{5, 6}) {
		t.Fatalf("after Shift+Right selection = %v, want [5 6]", got)
	}
	if !g.OnKeyEvent(input.KeyEscape, 0) {
		t.Fatal("Escape with a selection not consumed")
	}
	if got := g.SelectedCells(); len(got) != 0 {
		t.Errorf("after Escape selection = %v", got)
	}
	if g.OnKeyEvent(input.KeyEscape, 0) {
		t.Error("Escape on an empty selection must not be consumed")
	}
}

func TestGridArrowKeys(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	steps := []struct {
		key      input.Key
		want     []int
		consumed bool
	}{
		{input.KeyRight, []int{0}, true},
		{input.KeyDown, []int{4}, true},
		{input.KeyLeft, []int{4}, false},
		{input.KeyRight, []int{5}, true},
		{input.KeyUp, []int{1}, true},
		{input.KeyUp, []int{1}, false},
	}
	for i, s := range steps {
		if got := g.OnKeyEvent(s.key, 0); got != s.consumed {
			t.Errorf("step %d (%v): consumed = %v, want %v", i, s.key, got, s.consumed)
		}
		if got := g.SelectedCells(); !slices.Equal(got, s.want) {
			t.Errorf("step %d (%v): selection = %v, want %v", i, s.key, got, s.want)
		}
	}
}

func TestGridShiftSelectionShrinks(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	g.SelectCell(5)
	g.OnKeyEvent(input.KeyRight|input.KeyShift, 0)
	g.OnKeyEvent(input.KeyRight|input.KeyShift, 0)
	g.OnKeyEvent(input.KeyDown|input.KeyShift, 0)
	if got := g.SelectedCells(); !slices.Equal(got, []int{5, 6, 7, 9, 10, 11}) {
		t.Fatalf("selection = %v", got)
	}
	// the anchor is the top-left corner, so Left pulls the right edge in
	g.OnKeyEvent(input.KeyLeft|input.KeyShift, 0)
	if got := g.SelectedCells(); !slices.Equal(got, []int{5, 6, 9, 10}) {
		t.Errorf("after Shift+Left selection = %v", got)
	}
	g.OnKeyEvent(input.KeyUp|input.KeyShift, 0)
	if got := g.SelectedCells(); !slices.Equal(got, []int{5, 6}) {
		t.Errorf("after Shift+Up selection = %v", got)
	}
}

func TestGridShiftFromBottomRightAnchor(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	g.SelectCell(10)
	g.OnKeyEvent(input.KeyLeft|input.KeyShift, 0)
	g.OnKeyEvent(input.KeyUp|input.KeyShift, 0)
	if got := g.SelectedCells(); !slices.Equal(got, []int{5, 6, 9, 10}) {
		t.Fatalf("selection = %v", got)
	}
	g.OnKeyEvent(input.KeyLeft|input.KeyShift, 0)
	if got := g.SelectedCells(); !slices.Equal(got, []int{4, 5, 6, 8, 9, 10}) {
		t.Errorf("after Shift+Left selection = %v", got)
	}
}

func TestGridDrag(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	x, y := cellPoint(2, 2)
	g.OnMousePressed(x, y, input.MouseLeft)
	x, y = cellPoint(1, 1)
	if !g.OnMouseDrag(x, y, input.MouseLeft) {
		t.Fatal("drag not consumed")
	}
	if got := g.SelectedCells(); !slices.Equal(got, []int{5, 6, 9, 10}) {
		t.Errorf("selection = %v", got)
	}
	if g.AnchorCell() != 10 {
		t.Errorf("anchor = %d, want 10", g.AnchorCell())
	}
	if g.OnMouseDrag(0, 0, input.MouseLeft) {
		t.Error("drag outside the cells must not be consumed")
	}
}

func TestGridUpdateCell(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	tests := []struct {
		name  string
		index int
		typ   CellType
		value any
		ok    bool
	}{
		{"string", 0, CellString, "a", true},
		{"bool", 1, CellBoolean, true, true},
		{"out of range", 16, CellString, "x", false},
		{"negative", -1, CellString, "x", false},
		{"bool into string", 2, CellString, true, false},
		{"string into bool", 2, CellBoolean, "True", false},
		{"unsupported", 2, CellString, 42, false},
	}
	for _, tt := range tests {
		if got := g.UpdateCell(tt.index, tt.typ, tt.value, renderer.AlignLeft); got != tt.ok {
			t.Errorf("%s: UpdateCell = %v, want %v", tt.name, got, tt.ok)
		}
	}
	if c, ok := g.Cell(1); !ok || c.String() != "True" {
		t.Errorf("Cell(1) = %+v, %v", c, ok)
	}
	if !g.UpdateCellAt(3, 3, CellString, "z", renderer.AlignRight) {
		t.Fatal("UpdateCellAt(3,3) failed")
	}
	if c, _ := g.Cell(15); c.Text != "z" {
		t.Errorf("Cell(15) = %+v", c)
	}
	g.ClearCell(0)
	if _, ok := g.Cell(0); ok {
		t.Error("Cell(0) still present after ClearCell")
	}
	g.ClearCells()
	if _, ok := g.Cell(15); ok {
		t.Error("cells remain after ClearCells")
	}
}

func TestGridToggle(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	g.UpdateCell(5, CellBoolean, true, renderer.AlignCenter)
	g.UpdateCell(6, CellString, "text", renderer.AlignLeft)

	x, y := cellPoint(1, 1)
	if !g.OnMousePressed(x, y, input.MouseLeft|input.MouseDoubleClicked) {
		t.Fatal("double click on a boolean cell not consumed")
	}
	if c, _ := g.Cell(5); c.Bool {
		t.Error("double click did not toggle the cell")
	}
	if !g.OnKeyEvent(input.KeySpace, 0) {
		t.Fatal("Space not consumed")
	}
	if c, _ := g.Cell(5); !c.Bool {
		t.Error("Space did not toggle the cell")
	}
	g.SelectCell(6)
	if g.ToggleBooleanCell() {
		t.Error("toggled a string cell")
	}
}

func TestGridCopy(t *testing.T) {
	root, g := newTestGrid(t, GridNone)
	g.UpdateCell(0, CellString, "a", renderer.AlignLeft)
	g.UpdateCell(1, CellString, "b", renderer.AlignLeft)
	g.UpdateCell(4, CellString, "c", renderer.AlignLeft)
	g.UpdateCell(5, CellBoolean, true, renderer.AlignLeft)
	if g.CopySelection() {
		t.Error("copy with an empty selection reported success")
	}
	g.SelectCell(0)
	g.OnKeyEvent(input.KeyRight|input.KeyShift, 0)
	g.OnKeyEvent(input.KeyDown|input.KeyShift, 0)
	if !g.OnKeyEvent(input.KeyC|input.KeyCtrl, 0) {
		t.Fatal("Ctrl+C not consumed")
	}
	if got := root.board.GetText(); got != "a,b\nc,True\n" {
		t.Errorf("clipboard = %q", got)
	}

	g.SetSeparator(";")
	g.SelectCell(1)
	g.OnKeyEvent(input.KeyDown|input.KeyShift, 0)
	g.OnKeyEvent(input.KeyDown|input.KeyShift, 0)
	if !g.CopySelection() {
		t.Fatal("CopySelection failed")
	}
	if got := root.board.GetText(); got != "b\nTrue\n\n" {
		t.Errorf("clipboard = %q", got)
	}

	root.board.Fail = true
	if g.CopySelection() {
		t.Error("copy reported success on a failing clipboard")
	}
}

func TestGridPaste(t *testing.T) {
	root, g := newTestGrid(t, GridNone)
	g.UpdateCell(1, CellString, "b", renderer.AlignLeft)
	g.UpdateCell(5, CellBoolean, true, renderer.AlignLeft)

	if g.PasteToSelection() {
		t.Error("paste with an empty selection reported success")
	}

	root.board.SetText("x,y,z\nw")
	g.SelectCell(0)
	g.OnKeyEvent(input.KeyRight|input.KeyShift, 0)
	if !g.OnKeyEvent(input.KeyV|input.KeyCtrl, 0) {
		t.Fatal("Ctrl+V not consumed")
	}
	if c, _ := g.Cell(0); c.Type != CellString || c.Text != "x" {
		t.Errorf("Cell(0) = %+v", c)
	}
	// extra tokens are joined into the last selected cell
	if c, _ := g.Cell(1); c.Text != "yzw" {
		t.Errorf("Cell(1) = %+v, want yzw", c)
	}

	root.board.SetText("False\n")
	g.SelectCell(5)
	g.PasteToSelection()
	if c, _ := g.Cell(5); c.Type != CellBoolean || c.Bool {
		t.Errorf("Cell(5) = %+v, want boolean false", c)
	}
}

func TestGridDisableCopyPaste(t *testing.T) {
	root, g := newTestGrid(t, GridDisableCopyPaste)
	g.UpdateCell(0, CellString, "a", renderer.AlignLeft)
	g.SelectCell(0)
	if g.OnKeyEvent(input.KeyC|input.KeyCtrl, 0) {
		t.Error("Ctrl+C consumed with copy disabled")
	}
	if root.board.GetText() != "" {
		t.Error("clipboard written with copy disabled")
	}
}

func TestGridZoom(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	steps := []struct {
		key  input.Key
		w, h int
	}{
		{input.KeyUp | input.KeyCtrl | input.KeyAlt, 10, 6},
		{input.KeyLeft | input.KeyCtrl | input.KeyAlt, 11, 6},
		{input.KeyRight | input.KeyCtrl | input.KeyAlt, 10, 6},
		{input.KeyDown | input.KeyCtrl | input.KeyAlt, 10, 5},
	}
	for _, s := range steps {
		if !g.OnKeyEvent(s.key, 0) {
			t.Errorf("%v not consumed", s.key)
		}
		if w, h := g.CellSize(); w != s.w || h != s.h {
			t.Errorf("after %v CellSize() = %d,%d, want %d,%d", s.key, w, h, s.w, s.h)
		}
	}
	g.UpdateDimensions(-20, -20)
	if w, h := g.CellSize(); w != 1 || h != 1 {
		t.Errorf("CellSize() = %d,%d, want 1,1", w, h)
	}

	_, fixed := newTestGrid(t, GridDisableZoom)
	if fixed.OnKeyEvent(input.KeyUp|input.KeyCtrl|input.KeyAlt, 0) {
		t.Error("zoom consumed with zoom disabled")
	}
}

func TestGridHover(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	x, y := cellPoint(3, 0)
	if !g.OnMouseOver(x, y) || g.HoveredCell() != 3 {
		t.Errorf("hovered = %d, want 3", g.HoveredCell())
	}
	if g.OnMouseOver(x+1, y) {
		t.Error("moving inside the same cell reported a change")
	}
	g.OnMouseLeave()
	if g.HoveredCell() != InvalidCellIndex {
		t.Errorf("hovered after leave = %d", g.HoveredCell())
	}
}

func TestGridLoseFocusClearsSelection(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	g.SelectCell(3)
	g.OnLoseFocus()
	if len(g.SelectedCells()) != 0 {
		t.Errorf("selection = %v", g.SelectedCells())
	}
}

func TestGridContextMenu(t *testing.T) {
	root, g := newTestGrid(t, GridNone)
	x, y := cellPoint(0, 0)
	if g.OnMousePressed(x, y, input.MouseRight) {
		t.Error("right click with an empty selection consumed")
	}
	g.SelectCell(0)
	g.OnKeyEvent(input.KeyRight|input.KeyShift, 0)
	if !g.OnMousePressed(x, y, input.MouseRight) {
		t.Fatal("right click on a multi-cell selection not consumed")
	}
	m := root.shown
	if m == nil || !m.IsOpen() {
		t.Fatal("context menu not shown")
	}
	if root.menuX != x || root.menuY != y {
		t.Errorf("menu shown at %d,%d, want %d,%d", root.menuX, root.menuY, x, y)
	}
	// last item is "Clear selection"
	m.OnKeyEvent(input.KeyEnd)
	m.OnKeyEvent(input.KeyEnter)
	if len(g.SelectedCells()) != 0 {
		t.Errorf("selection after Clear selection = %v", g.SelectedCells())
	}
}

func TestGridHeaders(t *testing.T) {
	_, g := newTestGrid(t, GridNone)
	g.SetHeaders([]string{"A", "B"})
	if got := g.Headers(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Headers() = %v", got)
	}
	if g.SetSeparator("") {
		t.Error("empty separator accepted")
	}
	if g.Separator() != "," {
		t.Errorf("Separator() = %q", g.Separator())
	}
}

func TestGridPaint(t *testing.T) {
	root, g := newTestGrid(t, GridNone)
	g.SetHeaders([]string{"Name"})
	g.UpdateCell(0, CellString, "a", renderer.AlignLeft)
	buf := root.paint()

	if c := buf.GetCell(0, 1); c.Rune != '┌' {
		t.Errorf("top-left corner = %q", c.Rune)
	}
	if c := buf.GetCell(10, 1); c.Rune != '┬' {
		t.Errorf("top junction = %q", c.Rune)
	}
	if c := buf.GetCell(10, 6); c.Rune != '┼' {
		t.Errorf("inner junction = %q", c.Rune)
	}
	if c := buf.GetCell(40, 21); c.Rune != '┘' {
		t.Errorf("bottom-right corner = %q", c.Rune)
	}
	if c := buf.GetCell(1, 2); c.Rune != 'a' {
		t.Errorf("cell 0 content = %q", c.Rune)
	}
	if row := rowText(buf, 0); !containsAt(row, "Name") {
		t.Errorf("header row = %q", row)
	}
}

func containsAt(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
