package backend

import (
	"github.com/dshills/cellkit/internal/renderer/core"
)

// ScreenBuffer is an off-screen cell surface. The application paints a
// frame into one and flushes only changed cells to the backend; canvas
// controls use one as their scrollable drawing area.
type ScreenBuffer struct {
	width, height int
	back          []core.Cell
	front         []core.Cell
	fullRedraw    bool
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{}
	sb.Resize(width, height)
	return sb
}

// Resize resizes the buffer, preserving content where possible.
func (sb *ScreenBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == sb.width && height == sb.height && sb.back != nil {
		return
	}

	back := make([]core.Cell, width*height)
	for i := range back {
		back[i] = core.EmptyCell()
	}
	for y := 0; y < min(height, sb.height); y++ {
		copy(back[y*width:y*width+min(width, sb.width)], sb.back[y*sb.width:])
	}

	sb.width, sb.height = width, height
	sb.back = back
	sb.front = make([]core.Cell, width*height)
	sb.fullRedraw = true
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

func (sb *ScreenBuffer) inside(x, y int) bool {
	return x >= 0 && x < sb.width && y >= 0 && y < sb.height
}

// SetCell sets a cell. Positions outside the buffer are ignored.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if sb.inside(x, y) {
		sb.back[y*sb.width+x] = cell
	}
}

// GetCell returns a cell, or an empty cell outside the buffer.
func (sb *ScreenBuffer) GetCell(x, y int) core.Cell {
	if !sb.inside(x, y) {
		return core.EmptyCell()
	}
	return sb.back[y*sb.width+x]
}

// Fill fills a rectangle with the given cell.
func (sb *ScreenBuffer) Fill(rect core.ScreenRect, cell core.Cell) {
	rect = rect.Intersection(core.RectFromSize(0, 0, sb.width, sb.height))
	for y := rect.Top; y < rect.Bottom; y++ {
		row := sb.back[y*sb.width : (y+1)*sb.width]
		for x := rect.Left; x < rect.Right; x++ {
			row[x] = cell
		}
	}
}

// Clear fills the buffer with empty cells.
func (sb *ScreenBuffer) Clear() {
	for i := range sb.back {
		sb.back[i] = core.EmptyCell()
	}
}

// SetString writes s starting at (x, y) and returns the column after
// the last written rune.
func (sb *ScreenBuffer) SetString(x, y int, s string, colors core.ColorPair) int {
	for _, r := range s {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		sb.SetCell(x, y, core.Cell{Rune: r, Width: w, Colors: colors})
		if w == 2 {
			sb.SetCell(x+1, y, core.ContinuationCell(colors))
		}
		x += w
	}
	return x
}

// DiffChange represents a cell change for synchronization.
type DiffChange struct {
	X, Y int
	Cell core.Cell
}

// ComputeDiff returns the cells that differ from the last synced frame.
func (sb *ScreenBuffer) ComputeDiff() []DiffChange {
	var changes []DiffChange
	for i, c := range sb.back {
		if sb.fullRedraw || c != sb.front[i] {
			changes = append(changes, DiffChange{X: i % sb.width, Y: i / sb.width, Cell: c})
		}
	}
	return changes
}

// Sync marks the current content as displayed.
func (sb *ScreenBuffer) Sync() {
	copy(sb.front, sb.back)
	sb.fullRedraw = false
}

// MarkFullRedraw forces every cell into the next diff.
func (sb *ScreenBuffer) MarkFullRedraw() {
	sb.fullRedraw = true
}

// Flush writes changed cells to b, syncs and shows the frame. It
// returns the number of cells written.
func (sb *ScreenBuffer) Flush(b Backend) int {
	changes := sb.ComputeDiff()
	for _, ch := range changes {
		b.SetCell(ch.X, ch.Y, ch.Cell)
	}
	sb.Sync()
	b.Show()
	return len(changes)
}
