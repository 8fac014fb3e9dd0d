// Package renderer provides the drawing primitives controls paint with.
// All coordinates are control-local; the active Clip translates them to
// the screen and discards anything outside the visible rectangle.
package renderer

import (
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/renderer/core"
)

// Renderer draws into a ScreenBuffer through a clip.
type Renderer struct {
	buf  *backend.ScreenBuffer
	clip Clip

	cursorX, cursorY int
	cursorVisible    bool
}

// New creates a renderer over buf with a clip covering the whole buffer.
func New(buf *backend.ScreenBuffer) *Renderer {
	r := &Renderer{buf: buf}
	r.ResetClip()
	return r
}

// Buffer returns the target buffer.
func (r *Renderer) Buffer() *backend.ScreenBuffer { return r.buf }

// ScreenSize returns the size of the target buffer.
func (r *Renderer) ScreenSize() (int, int) { return r.buf.Size() }

// SetClip makes c the active clip.
func (r *Renderer) SetClip(c Clip) { r.clip = c }

// Clip returns the active clip.
func (r *Renderer) Clip() Clip { return r.clip }

// ResetClip selects the full screen with origin (0,0).
func (r *Renderer) ResetClip() {
	w, h := r.buf.Size()
	r.clip = NewClip(0, 0, w, h)
}

// SetOrigin moves the local origin without changing the clip rectangle.
func (r *Renderer) SetOrigin(x, y int) {
	r.clip.ScreenX, r.clip.ScreenY = x, y
}

// put writes one cell at local coordinates, resolving transparency.
func (r *Renderer) put(x, y int, ch rune, colors core.ColorPair, attrs core.Attribute) bool {
	sx, sy := x+r.clip.ScreenX, y+r.clip.ScreenY
	if !r.clip.Contains(sx, sy) {
		return false
	}
	cell := r.buf.GetCell(sx, sy)
	if cell.IsContinuation() {
		r.buf.SetCell(sx-1, sy, core.Cell{Rune: ' ', Width: 1, Colors: r.buf.GetCell(sx-1, sy).Colors})
	}
	if ch == 0 {
		ch = cell.Rune
	}
	w := core.RuneWidth(ch)
	if w == 0 {
		ch, w = ' ', 1
	}
	pair := colors.Over(cell.Colors)
	if w == 2 && !r.clip.Contains(sx+1, sy) {
		ch, w = ' ', 1
	}
	r.buf.SetCell(sx, sy, core.Cell{Rune: ch, Width: w, Colors: pair, Attributes: attrs})
	switch {
	case w == 2:
		r.buf.SetCell(sx+1, sy, core.ContinuationCell(pair))
	case cell.Width == 2:
		r.buf.SetCell(sx+1, sy, core.Cell{Rune: ' ', Width: 1, Colors: pair})
	}
	return true
}

// Clear fills the whole clip with ch.
func (r *Renderer) Clear(ch rune, colors core.ColorPair) {
	cr := r.clip.ClipRect
	r.FillRect(cr.Left-r.clip.ScreenX, cr.Top-r.clip.ScreenY, cr.Right-1-r.clip.ScreenX, cr.Bottom-1-r.clip.ScreenY, ch, colors)
}

// WriteCharacter writes a single character. A zero rune keeps the
// existing character and only recolors the cell.
func (r *Renderer) WriteCharacter(x, y int, ch rune, colors core.ColorPair) bool {
	return r.put(x, y, ch, colors, core.AttrNone)
}

// WriteSpecialCharacter writes one of the named glyphs.
func (r *Renderer) WriteSpecialCharacter(x, y int, c SpecialChar, colors core.ColorPair) bool {
	return r.put(x, y, c.Rune(), colors, core.AttrNone)
}

// FillRect fills the inclusive rectangle [left,right]x[top,bottom].
func (r *Renderer) FillRect(left, top, right, bottom int, ch rune, colors core.ColorPair) {
	if left > right || top > bottom || !r.clip.Visible {
		return
	}
	// limit the loops to the visible part
	cr := r.clip.ClipRect
	left = max(left, cr.Left-r.clip.ScreenX)
	right = min(right, cr.Right-1-r.clip.ScreenX)
	top = max(top, cr.Top-r.clip.ScreenY)
	bottom = min(bottom, cr.Bottom-1-r.clip.ScreenY)
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			r.put(x, y, ch, colors, core.AttrNone)
		}
	}
}

// FillRectSize fills a width x height rectangle at (x, y).
func (r *Renderer) FillRectSize(x, y, width, height int, ch rune, colors core.ColorPair) {
	r.FillRect(x, y, x+width-1, y+height-1, ch, colors)
}

// FillHorizontalLine fills columns left..right (inclusive) of row y.
func (r *Renderer) FillHorizontalLine(left, y, right int, ch rune, colors core.ColorPair) {
	r.FillRect(left, y, right, y, ch, colors)
}

// FillHorizontalLineSize fills size cells of row y starting at x.
func (r *Renderer) FillHorizontalLineSize(x, y, size int, ch rune, colors core.ColorPair) {
	r.FillRect(x, y, x+size-1, y, ch, colors)
}

// FillVerticalLine fills rows top..bottom (inclusive) of column x.
func (r *Renderer) FillVerticalLine(x, top, bottom int, ch rune, colors core.ColorPair) {
	r.FillRect(x, top, x, bottom, ch, colors)
}

// DrawHorizontalLine draws a box-drawing line.
func (r *Renderer) DrawHorizontalLine(left, y, right int, colors core.ColorPair, t LineType) {
	r.FillHorizontalLine(left, y, right, t.glyphs().horizontal, colors)
}

// DrawVerticalLine draws a box-drawing line.
func (r *Renderer) DrawVerticalLine(x, top, bottom int, colors core.ColorPair, t LineType) {
	r.FillVerticalLine(x, top, bottom, t.glyphs().vertical, colors)
}

// DrawRect draws the border of the inclusive rectangle.
func (r *Renderer) DrawRect(left, top, right, bottom int, colors core.ColorPair, t LineType) {
	if left > right || top > bottom {
		return
	}
	g := t.glyphs()
	r.FillHorizontalLine(left+1, top, right-1, g.horizontal, colors)
	r.FillHorizontalLine(left+1, bottom, right-1, g.horizontal, colors)
	r.FillVerticalLine(left, top+1, bottom-1, g.vertical, colors)
	r.FillVerticalLine(right, top+1, bottom-1, g.vertical, colors)
	r.put(left, top, g.topLeft, colors, core.AttrNone)
	r.put(right, top, g.topRight, colors, core.AttrNone)
	r.put(right, bottom, g.bottomRight, colors, core.AttrNone)
	r.put(left, bottom, g.bottomLeft, colors, core.AttrNone)
}

// DrawRectSize draws the border of a width x height rectangle at (x, y).
func (r *Renderer) DrawRectSize(x, y, width, height int, colors core.ColorPair, t LineType) {
	r.DrawRect(x, y, x+width-1, y+height-1, colors, t)
}

// DrawVerticalScrollBar draws a scroll bar of the given height at column
// x with the thumb positioned for value in [0, maxValue].
func (r *Renderer) DrawVerticalScrollBar(x, y, height int, value, maxValue uint64, bar, arrows core.ColorPair) {
	if height < 3 {
		return
	}
	r.FillVerticalLine(x, y+1, y+height-2, Block25.Rune(), bar)
	r.WriteSpecialCharacter(x, y, TriangleUp, arrows)
	r.WriteSpecialCharacter(x, y+height-1, TriangleDown, arrows)
	if maxValue > 0 && height > 3 {
		pos := int(value * uint64(height-3) / maxValue)
		r.WriteSpecialCharacter(x, y+1+pos, Block100, arrows)
	}
}

// DrawHorizontalScrollBar draws a scroll bar of the given width on row y.
func (r *Renderer) DrawHorizontalScrollBar(x, y, width int, value, maxValue uint64, bar, arrows core.ColorPair) {
	if width < 3 {
		return
	}
	r.FillHorizontalLine(x+1, y, x+width-2, Block25.Rune(), bar)
	r.WriteSpecialCharacter(x, y, TriangleLeft, arrows)
	r.WriteSpecialCharacter(x+width-1, y, TriangleRight, arrows)
	if maxValue > 0 && width > 3 {
		pos := int(value * uint64(width-3) / maxValue)
		r.WriteSpecialCharacter(x+1+pos, y, Block100, arrows)
	}
}

// SetCursor places the terminal cursor at local coordinates. The cursor
// is only shown when the point is inside the clip.
func (r *Renderer) SetCursor(x, y int) bool {
	sx, sy := x+r.clip.ScreenX, y+r.clip.ScreenY
	if !r.clip.Contains(sx, sy) {
		return false
	}
	r.cursorX, r.cursorY, r.cursorVisible = sx, sy, true
	return true
}

// HideCursor hides the terminal cursor.
func (r *Renderer) HideCursor() {
	r.cursorVisible = false
}

// Cursor returns the cursor position in screen coordinates.
func (r *Renderer) Cursor() (x, y int, visible bool) {
	return r.cursorX, r.cursorY, r.cursorVisible
}
