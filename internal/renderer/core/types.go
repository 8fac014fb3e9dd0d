// Package core provides the cell-level types shared by the renderer,
// the backends and the theme.
package core

import (
	runewidth "github.com/mattn/go-runewidth"
)

// Attribute represents text attributes (bold, underline, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Cell is a single character cell.
type Cell struct {
	Rune       rune
	Width      int
	Colors     ColorPair
	Attributes Attribute
}

// EmptyCell returns a blank cell using the terminal default colors.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Colors: DefaultColors}
}

// NewCell creates a cell with the given rune and colors.
func NewCell(r rune, colors ColorPair) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Colors: colors}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c == other
}

// IsContinuation reports whether the cell is the right half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// ContinuationCell returns the filler placed after a wide rune.
func ContinuationCell(colors ColorPair) Cell {
	return Cell{Colors: colors}
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(left, top, width, height int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if (x, y) is within the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return y >= r.Top && y < r.Bottom && x >= r.Left && x < r.Right
}

// Intersection returns the overlapping region of two rectangles.
func (r ScreenRect) Intersection(other ScreenRect) ScreenRect {
	out := ScreenRect{
		Top:    max(r.Top, other.Top),
		Left:   max(r.Left, other.Left),
		Bottom: min(r.Bottom, other.Bottom),
		Right:  min(r.Right, other.Right),
	}
	if out.IsEmpty() {
		return ScreenRect{}
	}
	return out
}
