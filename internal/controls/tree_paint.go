package controls

import (
	"github.com/dshills/cellkit/internal/renderer"
)

// Paint implements Control.
func (tr *Tree) Paint(r *renderer.Renderer) {
	c := tr.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	text := t.Tree.Text.Normal
	if !c.IsEnabled() {
		text = t.Tree.Text.Inactive
	}
	r.Clear(' ', text)

	cols := c.columns
	if len(cols) == 0 {
		cols = []Column{{}}
	}
	xs, widths := columnPositions(cols, c.Width)

	if c.flags&TreeHideColumns == 0 {
		r.FillHorizontalLine(0, 0, c.Width-1, ' ', t.Tree.Column.Header)
		for i, col := range cols {
			r.WriteText(col.Title, renderer.WriteTextParams{
				Flags: renderer.SingleLine | renderer.ClipToWidth,
				X:     xs[i],
				Width: widths[i],
				Color: t.Tree.Column.Header,
				Align: col.Align,
			})
		}
	}
	sep := t.Tree.Separator.Normal
	if c.HasFocus() {
		sep = t.Tree.Separator.Focused
	}
	top := c.firstRow()
	for i := 1; i < len(xs); i++ {
		r.DrawVerticalLine(xs[i]-1, top, top+c.rows()-1, sep, renderer.LineSingle)
	}

	for row := 0; row < c.rows(); row++ {
		i, ok := c.view.RowToIndex(row)
		if !ok {
			break
		}
		tr.paintItem(r, c.itemsToDraw[i], top+row, xs, widths, cols)
	}

	if c.flags&TreeSearchable != 0 {
		tr.paintSearchBar(r)
	}
}

func (tr *Tree) paintItem(r *renderer.Renderer, h ItemHandle, y int, xs, widths []int, cols []Column) {
	c := tr.ctx
	t := c.Theme
	it := c.items[h]
	colors := t.Tree.Text.Normal
	switch {
	case !c.IsEnabled():
		colors = t.Tree.Text.Inactive
	case h == c.current && c.HasFocus():
		colors = t.Cursor.Normal
		r.FillHorizontalLine(0, y, c.Width-1, ' ', colors)
	case h == c.current:
		colors = t.Cursor.Inactive
		r.FillHorizontalLine(0, y, c.Width-1, ' ', colors)
	}
	if it.MarkedAsFound {
		colors = t.Tree.Text.Filter
		if h == c.current {
			colors = t.Tree.Text.SearchActive
		}
	}

	x := (it.Depth - 1) * 2
	switch {
	case !it.Expandable:
		r.WriteSpecialCharacter(x, y, renderer.BoxHorizontalSingleLine, t.Tree.Symbol.SingleElement)
	case it.Expanded:
		r.WriteSpecialCharacter(x, y, renderer.TriangleDown, t.Tree.Symbol.Expanded)
	default:
		r.WriteSpecialCharacter(x, y, renderer.TriangleRight, t.Tree.Symbol.Collapsed)
	}
	for i := range cols {
		if i >= len(it.Values) {
			break
		}
		cx, w := xs[i], widths[i]
		if i == 0 {
			cx, w = x+2, widths[0]-x-2
		}
		if w <= 0 {
			continue
		}
		r.WriteText(it.Values[i], renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     cx,
			Y:     y,
			Width: w,
			Color: colors,
			Align: cols[i].Align,
		})
	}
}

func (tr *Tree) paintSearchBar(r *renderer.Renderer) {
	c := tr.ctx
	t := c.Theme
	y := c.Height - 1
	colors := t.SearchBar.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	r.FillHorizontalLine(0, y, c.Width-1, ' ', colors)
	label := "Search: "
	if c.mode == SearchFilter {
		label = "Filter: "
	}
	n := r.WriteSingleLineText(0, y, label, colors)
	r.WriteText(string(c.query), renderer.WriteTextParams{
		Flags: renderer.SingleLine | renderer.ClipToWidth,
		X:     n,
		Y:     y,
		Width: c.Width - n,
		Color: colors,
	})
	if c.HasFocus() {
		r.SetCursor(min(n+len(c.query), c.Width-1), y)
	}
}
