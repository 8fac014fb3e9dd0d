package controls

import (
	"slices"

	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
)

// Paint implements Control. Layers are drawn header first, then the
// background, the lines, the selection and hover boxes and finally the
// cell contents.
func (g *Grid) Paint(r *renderer.Renderer) {
	c := g.ctx
	if c.Theme == nil {
		return
	}
	c.updateGeometry(true)
	if c.flags&GridHideHeader == 0 {
		g.paintHeader(r)
	}
	if c.flags&GridTransparentBackground == 0 {
		g.paintBackground(r)
	}
	if c.flags&(GridHideHorizontalLines|GridHideVerticalLines) != GridHideHorizontalLines|GridHideVerticalLines {
		g.paintLines(r)
	}
	if c.flags&GridHideBoxes == 0 {
		g.paintBoxes(r)
	}
	g.paintContent(r)
}

func (g *Grid) paintHeader(r *renderer.Renderer) {
	c := g.ctx
	t := c.Theme
	y := c.offsetY - 1
	right := c.offsetX + c.cellWidth*c.columns
	r.FillHorizontalLine(c.offsetX, y, right, ' ', t.Grid.Header)
	for col := 0; col < c.columns; col++ {
		x := c.offsetX + col*c.cellWidth
		if col > 0 {
			r.WriteSpecialCharacter(x, y, renderer.BoxVerticalSingleLine, t.Grid.Header)
		}
		if col >= len(c.headers) {
			continue
		}
		r.WriteText(c.headers[col], renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     x + 1,
			Y:     y,
			Width: c.cellWidth - 1,
			Color: t.Grid.Header,
			Align: renderer.AlignCenter,
		})
	}
}

func (g *Grid) paintBackground(r *renderer.Renderer) {
	c := g.ctx
	t := c.Theme
	r.FillRect(c.offsetX, c.offsetY, c.offsetX+c.cellWidth*c.columns, c.offsetY+c.cellHeight*c.rows, ' ', t.Grid.Background.Grid)
	for _, i := range c.selected {
		g.fillCell(r, i, t.Grid.Background.Cell.Selected)
	}
	if c.flags&GridHideHoveredCell == 0 && c.valid(c.hovered) {
		g.fillCell(r, c.hovered, t.Grid.Background.Cell.Hovered)
	}
}

func (g *Grid) fillCell(r *renderer.Renderer, index int, colors core.ColorPair) {
	c := g.ctx
	x := c.offsetX + (index%c.columns)*c.cellWidth
	y := c.offsetY + (index/c.columns)*c.cellHeight
	r.FillRect(x+1, y+1, x+c.cellWidth-1, y+c.cellHeight-1, ' ', colors)
}

func (g *Grid) paintLines(r *renderer.Renderer) {
	c := g.ctx
	colors := c.Theme.Grid.Lines.Normal
	right := c.offsetX + c.cellWidth*c.columns
	bottom := c.offsetY + c.cellHeight*c.rows
	if c.flags&GridHideHorizontalLines == 0 {
		for row := 0; row <= c.rows; row++ {
			r.DrawHorizontalLine(c.offsetX, c.offsetY+row*c.cellHeight, right, colors, renderer.LineSingle)
		}
	}
	if c.flags&GridHideVerticalLines == 0 {
		for col := 0; col <= c.columns; col++ {
			r.DrawVerticalLine(c.offsetX+col*c.cellWidth, c.offsetY, bottom, colors, renderer.LineSingle)
		}
	}
	if c.flags&(GridHideHorizontalLines|GridHideVerticalLines) != 0 {
		return
	}
	all := func(col, row int) bool {
		return col >= 0 && row >= 0 && col < c.columns && row < c.rows
	}
	g.paintVertices(r, all, true, colors)
}

// paintBoxes frames the selected cells and the hovered one.
func (g *Grid) paintBoxes(r *renderer.Renderer) {
	c := g.ctx
	t := c.Theme
	if c.flags&GridHideSelection == 0 && len(c.selected) > 0 {
		set := make(map[int]bool, len(c.selected))
		for _, i := range c.selected {
			set[i] = true
		}
		in := func(col, row int) bool {
			return col >= 0 && row >= 0 && col < c.columns && row < c.rows && set[row*c.columns+col]
		}
		g.paintEdges(r, in, t.Grid.Lines.Selected)
		g.paintVertices(r, in, false, t.Grid.Lines.Selected)
	}
	if c.flags&GridHideHoveredCell == 0 && c.valid(c.hovered) {
		hc, hr := c.hovered%c.columns, c.hovered/c.columns
		in := func(col, row int) bool { return col == hc && row == hr }
		g.paintEdges(r, in, t.Grid.Lines.Hovered)
		g.paintVertices(r, in, false, t.Grid.Lines.Hovered)
	}
}

// paintEdges draws the border segments between cells inside and outside
// the set.
func (g *Grid) paintEdges(r *renderer.Renderer, in func(col, row int) bool, colors core.ColorPair) {
	c := g.ctx
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.columns; col++ {
			if !in(col, row) {
				continue
			}
			x := c.offsetX + col*c.cellWidth
			y := c.offsetY + row*c.cellHeight
			if !in(col, row-1) {
				r.DrawHorizontalLine(x+1, y, x+c.cellWidth-1, colors, renderer.LineSingle)
			}
			if !in(col, row+1) {
				r.DrawHorizontalLine(x+1, y+c.cellHeight, x+c.cellWidth-1, colors, renderer.LineSingle)
			}
			if !in(col-1, row) {
				r.DrawVerticalLine(x, y+1, y+c.cellHeight-1, colors, renderer.LineSingle)
			}
			if !in(col+1, row) {
				r.DrawVerticalLine(x+c.cellWidth, y+1, y+c.cellHeight-1, colors, renderer.LineSingle)
			}
		}
	}
}

// paintVertices draws the junction glyph at every grid vertex touching
// the set. An arm is drawn where the segment separates a cell of the set
// from a cell outside it; with full every segment inside the set counts.
func (g *Grid) paintVertices(r *renderer.Renderer, in func(col, row int) bool, full bool, colors core.ColorPair) {
	c := g.ctx
	for row := 0; row <= c.rows; row++ {
		for col := 0; col <= c.columns; col++ {
			tl, tr := in(col-1, row-1), in(col, row-1)
			bl, br := in(col-1, row), in(col, row)
			if !tl && !tr && !bl && !br {
				continue
			}
			edge := func(a, b bool) bool { return a != b || (full && (a || b)) }
			up, down := edge(tl, tr), edge(bl, br)
			left, right := edge(tl, bl), edge(tr, br)
			glyph, ok := junction(up, down, left, right)
			if !ok {
				continue
			}
			r.WriteSpecialCharacter(c.offsetX+col*c.cellWidth, c.offsetY+row*c.cellHeight, glyph, colors)
		}
	}
}

func junction(up, down, left, right bool) (renderer.SpecialChar, bool) {
	switch {
	case up && down && left && right:
		return renderer.BoxCrossSingleLine, true
	case down && left && right:
		return renderer.BoxMidleTop, true
	case up && left && right:
		return renderer.BoxMidleBottom, true
	case up && down && right:
		return renderer.BoxMidleLeft, true
	case up && down && left:
		return renderer.BoxMidleRight, true
	case down && right:
		return renderer.BoxTopLeftCornerSingleLine, true
	case down && left:
		return renderer.BoxTopRightCornerSingleLine, true
	case up && right:
		return renderer.BoxBottomLeftCornerSingleLine, true
	case up && left:
		return renderer.BoxBottomRightCornerSingleLine, true
	case left || right:
		return renderer.BoxHorizontalSingleLine, true
	case up || down:
		return renderer.BoxVerticalSingleLine, true
	}
	return 0, false
}

func (g *Grid) paintContent(r *renderer.Renderer) {
	c := g.ctx
	t := c.Theme
	for index, cell := range c.cells {
		if !c.valid(index) {
			continue
		}
		col, row := index%c.columns, index/c.columns
		colors := t.Grid.Text.Normal
		if c.isSelected(index) {
			colors = t.Grid.Text.Selected
		} else if index == c.hovered {
			colors = t.Grid.Text.Hovered
		}
		r.WriteText(cell.String(), renderer.WriteTextParams{
			Flags:  renderer.MultipleLines | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:      c.offsetX + col*c.cellWidth + 1,
			Y:      c.offsetY + row*c.cellHeight + 1,
			Width:  c.cellWidth - 1,
			Height: c.cellHeight - 1,
			Color:  colors,
			Align:  cell.Align,
		})
	}
}

func (c *GridContext) isSelected(index int) bool {
	return slices.Contains(c.selected, index)
}
