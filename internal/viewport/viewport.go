// Package viewport tracks the visible part of a scrolling list or text.
package viewport

// maxMarginRatio limits the margin to 1/3 of the window so there is
// always usable space in the middle.
const maxMarginRatio = 3

// Window is the visible range [Top, Top+Size) over Count items.
type Window struct {
	top    int
	size   int
	count  int
	margin int
}

// New creates a window showing size items.
func New(size int) *Window {
	return &Window{size: max(size, 1)}
}

// Top returns the first visible item.
func (w *Window) Top() int { return w.top }

// Size returns the number of visible rows.
func (w *Window) Size() int { return w.size }

// Count returns the number of items.
func (w *Window) Count() int { return w.count }

// Bottom returns the last visible item, or Top-1 when the window is empty.
func (w *Window) Bottom() int {
	return min(w.top+w.size, w.count) - 1
}

// Resize changes the number of visible rows, keeping Top valid.
func (w *Window) Resize(size int) {
	w.size = max(size, 1)
	w.clamp()
}

// SetCount changes the number of items, keeping Top valid.
func (w *Window) SetCount(count int) {
	w.count = max(count, 0)
	w.clamp()
}

// SetMargin sets how many rows to keep visible around a revealed item.
func (w *Window) SetMargin(margin int) {
	w.margin = max(margin, 0)
}

// Margin returns the margin in effect for the current size.
func (w *Window) Margin() int {
	return min(w.margin, w.size/maxMarginRatio)
}

// MaxTop returns the largest valid Top.
func (w *Window) MaxTop() int {
	return max(w.count-w.size, 0)
}

func (w *Window) clamp() {
	w.top = min(max(w.top, 0), w.MaxTop())
}

// ScrollTo makes top the first visible item, clamped to the valid range.
// It reports whether the window moved.
func (w *Window) ScrollTo(top int) bool {
	old := w.top
	w.top = top
	w.clamp()
	return w.top != old
}

// ScrollBy moves the window by delta rows.
func (w *Window) ScrollBy(delta int) bool {
	return w.ScrollTo(w.top + delta)
}

// Visible reports whether item i is on screen.
func (w *Window) Visible(i int) bool {
	return i >= w.top && i < w.top+w.size && i < w.count
}

// Reveal scrolls minimally so item i is visible with the margin kept
// around it. It reports whether the window moved.
func (w *Window) Reveal(i int) bool {
	if i < 0 || i >= w.count {
		return false
	}
	m := w.Margin()
	switch {
	case i < w.top+m:
		return w.ScrollTo(i - m)
	case i > w.top+w.size-1-m:
		return w.ScrollTo(i - w.size + 1 + m)
	}
	return false
}

// RowToIndex converts a visible row to an item index.
func (w *Window) RowToIndex(row int) (int, bool) {
	if row < 0 || row >= w.size {
		return -1, false
	}
	i := w.top + row
	if i >= w.count {
		return -1, false
	}
	return i, true
}

// IndexToRow converts an item index to a visible row, or -1.
func (w *Window) IndexToRow(i int) int {
	if !w.Visible(i) {
		return -1
	}
	return i - w.top
}

// Page returns the distance PageUp and PageDown move.
func (w *Window) Page() int {
	return max(w.size-1, 1)
}

// View combines a vertical and a horizontal window for two-dimensional
// content such as a text area.
type View struct {
	Rows *Window
	Cols *Window
}

// NewView creates a view with the given visible size.
func NewView(width, height int) *View {
	return &View{Rows: New(height), Cols: New(width)}
}

// Resize changes the visible size.
func (v *View) Resize(width, height int) {
	v.Rows.Resize(height)
	v.Cols.Resize(width)
}

// Reveal scrolls minimally so (line, col) is visible.
func (v *View) Reveal(line, col int) bool {
	a := v.Rows.Reveal(line)
	b := v.Cols.Reveal(col)
	return a || b
}

// ToScreen converts content coordinates to visible coordinates. ok is
// false when the position is off screen.
func (v *View) ToScreen(line, col int) (x, y int, ok bool) {
	y = v.Rows.IndexToRow(line)
	x = v.Cols.IndexToRow(col)
	return x, y, x >= 0 && y >= 0
}

// FromScreen converts visible coordinates to content coordinates without
// clamping to the content size.
func (v *View) FromScreen(x, y int) (line, col int) {
	return v.Rows.Top() + y, v.Cols.Top() + x
}
