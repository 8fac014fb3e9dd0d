package controls

import (
	"slices"
	"strings"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/menu"
	"github.com/dshills/cellkit/internal/renderer"
)

// InvalidCellIndex is returned for points outside the cell matrix.
const InvalidCellIndex = -1

// GridFlags configure a Grid.
type GridFlags uint16

// Grid flags.
const (
	GridNone                  GridFlags = 0
	GridHideHeader            GridFlags = 1 << (iota - 1)
	GridHideHorizontalLines
	GridHideVerticalLines
	GridHideBoxes
	GridHideHoveredCell
	GridHideSelection
	GridTransparentBackground
	GridDisableZoom
	GridDisableCopyPaste
)

// CellType tags the value of a grid cell.
type CellType uint8

// Cell types.
const (
	CellString CellType = iota
	CellBoolean
)

// Cell is the content of one grid cell.
type Cell struct {
	Align renderer.TextAlignment
	Type  CellType
	Bool  bool
	Text  string
}

// String returns the text the cell shows.
func (c Cell) String() string {
	if c.Type == CellBoolean {
		if c.Bool {
			return "True"
		}
		return "False"
	}
	return c.Text
}

const gridHeaderSize = 1

// Grid context menu commands.
const (
	gridCommandCopy = iota + 1
	gridCommandPaste
	gridCommandClear
)

// GridContext is the state of a Grid.
type GridContext struct {
	Context

	columns, rows int
	flags         GridFlags

	hovered  int
	anchor   int
	selected []int

	cellWidth, cellHeight int
	offsetX, offsetY      int

	cells     map[int]Cell
	separator string
	headers   []string

	contextMenu *menu.Menu
}

// Grid is a matrix of text and boolean cells with rectangular
// selection, clipboard support and zoom.
type Grid struct {
	base
	ctx *GridContext
}

// NewGrid creates a grid of columns x rows cells.
func NewGrid(parent Container, format string, columns, rows int, flags GridFlags) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		warn("grid", "new", "invalid grid size %dx%d", columns, rows)
		return nil, ErrInvalidSize
	}
	g := &Grid{ctx: &GridContext{
		Context:   Context{MinWidth: 10, MinHeight: 10},
		columns:   columns,
		rows:      rows,
		flags:     flags,
		hovered:   InvalidCellIndex,
		anchor:    InvalidCellIndex,
		cells:     make(map[int]Cell),
		separator: ",",
	}}
	g.base.ctx = &g.ctx.Context
	if err := g.ctx.init(g, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return g, nil
}

// State returns the typed context.
func (g *Grid) State() *GridContext { return g.ctx }

// CellsCount returns columns*rows.
func (g *Grid) CellsCount() int {
	if g.ctx.dead {
		return 0
	}
	return g.ctx.columns * g.ctx.rows
}

// Size returns the number of columns and rows.
func (g *Grid) Size() (columns, rows int) { return g.ctx.columns, g.ctx.rows }

// CellSize returns the current cell width and height in characters.
func (g *Grid) CellSize() (width, height int) { return g.ctx.cellWidth, g.ctx.cellHeight }

// Offsets returns where the top-left corner of the cell matrix is drawn.
func (g *Grid) Offsets() (x, y int) { return g.ctx.offsetX, g.ctx.offsetY }

func (c *GridContext) valid(index int) bool {
	return index >= 0 && index < c.columns*c.rows
}

// UpdateCell stores a value. value must be a bool for CellBoolean and a
// string for CellString.
func (g *Grid) UpdateCell(index int, t CellType, value any, align renderer.TextAlignment) bool {
	c := g.ctx
	if c.dead {
		return false
	}
	if !c.valid(index) {
		warn("grid", "update-cell", "cell index %d out of range (%d cells)", index, c.columns*c.rows)
		return false
	}
	cell := Cell{Align: align, Type: t}
	switch v := value.(type) {
	case bool:
		if t != CellBoolean {
			warn("grid", "update-cell", "bool value for a string cell %d", index)
			return false
		}
		cell.Bool = v
	case string:
		if t != CellString {
			warn("grid", "update-cell", "string value for a boolean cell %d", index)
			return false
		}
		cell.Text = v
	default:
		warn("grid", "update-cell", "unsupported value type %T for cell %d", value, index)
		return false
	}
	c.cells[index] = cell
	return true
}

// UpdateCellAt is UpdateCell addressed by column and row.
func (g *Grid) UpdateCellAt(column, row int, t CellType, value any, align renderer.TextAlignment) bool {
	c := g.ctx
	if column < 0 || column >= c.columns || row < 0 || row >= c.rows {
		warn("grid", "update-cell", "cell (%d,%d) out of range", column, row)
		return false
	}
	return g.UpdateCell(row*c.columns+column, t, value, align)
}

// Cell returns the content of a cell; ok is false for empty cells.
func (g *Grid) Cell(index int) (Cell, bool) {
	if g.ctx.dead {
		return Cell{}, false
	}
	cell, ok := g.ctx.cells[index]
	return cell, ok
}

// ClearCell empties a cell.
func (g *Grid) ClearCell(index int) bool {
	c := g.ctx
	if c.dead || !c.valid(index) {
		return false
	}
	delete(c.cells, index)
	return true
}

// ClearCells empties every cell.
func (g *Grid) ClearCells() {
	clear(g.ctx.cells)
}

// SetHeaders sets the column titles.
func (g *Grid) SetHeaders(values []string) bool {
	if g.ctx.dead {
		return false
	}
	g.ctx.headers = slices.Clone(values)
	return true
}

// Headers returns the column titles.
func (g *Grid) Headers() []string { return slices.Clone(g.ctx.headers) }

// SetSeparator sets the field separator used by copy and paste.
func (g *Grid) SetSeparator(sep string) bool {
	if g.ctx.dead || sep == "" {
		return false
	}
	g.ctx.separator = sep
	return true
}

// Separator returns the field separator.
func (g *Grid) Separator() string { return g.ctx.separator }

// SelectedCells returns the selection sorted by row then column.
func (g *Grid) SelectedCells() []int { return slices.Clone(g.ctx.selected) }

// AnchorCell returns the fixed corner of the selection.
func (g *Grid) AnchorCell() int { return g.ctx.anchor }

// HoveredCell returns the cell under the pointer.
func (g *Grid) HoveredCell() int { return g.ctx.hovered }

// SelectCell makes index the only selected cell.
func (g *Grid) SelectCell(index int) bool {
	c := g.ctx
	if c.dead || !c.valid(index) {
		return false
	}
	c.anchor = index
	c.selected = append(c.selected[:0], index)
	return true
}

// ClearSelection empties the selection and reports whether it was
// non-empty.
func (g *Grid) ClearSelection() bool {
	if len(g.ctx.selected) == 0 {
		return false
	}
	g.ctx.selected = g.ctx.selected[:0]
	return true
}

// normalize sorts the selection by (row, column) and drops duplicates.
// With a linear row-major index that is a plain numeric sort.
func (c *GridContext) normalize() {
	slices.Sort(c.selected)
	c.selected = slices.Compact(c.selected)
}

func (c *GridContext) selectBox(col1, row1, col2, row2 int) {
	c.selected = c.selected[:0]
	for row := min(row1, row2); row <= max(row1, row2); row++ {
		for col := min(col1, col2); col <= max(col1, col2); col++ {
			c.selected = append(c.selected, row*c.columns+col)
		}
	}
	c.normalize()
}

func (c *GridContext) bounding() (left, top, right, bottom int) {
	left, top = c.columns, c.rows
	right, bottom = -1, -1
	for _, i := range c.selected {
		col, row := i%c.columns, i/c.columns
		left, right = min(left, col), max(right, col)
		top, bottom = min(top, row), max(bottom, row)
	}
	return
}

// updateGeometry recomputes cell size (unless keepSize) and the offsets
// that center the matrix.
func (c *GridContext) updateGeometry(keepSize bool) {
	header := c.headerSize()
	if !keepSize || c.cellWidth == 0 || c.cellHeight == 0 {
		c.cellWidth = max((c.Width-1)/c.columns, 1)
		c.cellHeight = max((c.Height-1-header)/c.rows, 1)
	}
	c.offsetX = max(0, (c.Width-1-c.cellWidth*c.columns)/2)
	c.offsetY = max(0, (c.Height-1-header-c.cellHeight*c.rows)/2) + header
	c.normalize()
}

func (c *GridContext) headerSize() int {
	if c.flags&GridHideHeader != 0 {
		return 0
	}
	return gridHeaderSize
}

// UpdateDimensions grows or shrinks the cells by dw, dh (floor 1) and
// recenters the matrix without recomputing the cell size.
func (g *Grid) UpdateDimensions(dw, dh int) {
	c := g.ctx
	c.cellWidth = max(c.cellWidth+dw, 1)
	c.cellHeight = max(c.cellHeight+dh, 1)
	c.updateGeometry(true)
}

// OnAfterResize implements Control.
func (g *Grid) OnAfterResize(int, int) {
	g.ctx.updateGeometry(false)
}

// ComputeCellNumber maps control coordinates to a cell index. Points on
// or outside the outer border return InvalidCellIndex.
func (g *Grid) ComputeCellNumber(x, y int) int {
	c := g.ctx
	if x <= c.offsetX || x >= c.offsetX+c.columns*c.cellWidth {
		return InvalidCellIndex
	}
	if y <= c.offsetY || y >= c.offsetY+c.rows*c.cellHeight {
		return InvalidCellIndex
	}
	col := (x - c.offsetX) / c.cellWidth
	row := (y - c.offsetY) / c.cellHeight
	return row*c.columns + col
}

// ToggleBooleanCell flips the value of the selected cell when exactly
// one boolean cell is selected.
func (g *Grid) ToggleBooleanCell() bool {
	c := g.ctx
	if len(c.selected) != 1 {
		return false
	}
	return c.toggle(c.selected[0])
}

func (c *GridContext) toggle(index int) bool {
	cell, ok := c.cells[index]
	if !ok || cell.Type != CellBoolean {
		return false
	}
	cell.Bool = !cell.Bool
	c.cells[index] = cell
	c.RaiseEvent(EventValueChanged, c.ID)
	return true
}

// moveSelection handles a plain arrow key: the selection collapses onto
// the neighbour of the anchor.
func (c *GridContext) moveSelection(k input.Key) bool {
	if len(c.selected) == 0 || !c.valid(c.anchor) {
		c.anchor = 0
		c.selected = append(c.selected[:0], 0)
		return true
	}
	col, row := c.anchor%c.columns, c.anchor/c.columns
	switch k {
	case input.KeyLeft:
		col = max(col-1, 0)
	case input.KeyRight:
		col = min(col+1, c.columns-1)
	case input.KeyUp:
		row = max(row-1, 0)
	case input.KeyDown:
		row = min(row+1, c.rows-1)
	}
	index := row*c.columns + col
	if index == c.anchor && len(c.selected) == 1 {
		return false
	}
	c.anchor = index
	c.selected = append(c.selected[:0], index)
	return true
}

// extendSelection handles Shift+arrow. The edge opposite the anchor
// moves; a single cell grows toward the arrow.
func (c *GridContext) extendSelection(k input.Key) bool {
	if len(c.selected) == 0 || !c.valid(c.anchor) {
		c.anchor = 0
		c.selected = append(c.selected[:0], 0)
		return true
	}
	ac, ar := c.anchor%c.columns, c.anchor/c.columns
	left, top, right, bottom := c.bounding()
	left, right = min(left, ac), max(right, ac)
	top, bottom = min(top, ar), max(bottom, ar)

	// the columns and rows that move
	colEdge, rowEdge := &right, &bottom
	if len(c.selected) > 1 {
		if ac == right && ac != left {
			colEdge = &left
		}
		if ar == bottom && ar != top {
			rowEdge = &top
		}
	} else if k == input.KeyLeft {
		colEdge = &left
	}

	switch k {
	case input.KeyLeft:
		if *colEdge > 0 {
			*colEdge--
		}
	case input.KeyRight:
		if *colEdge < c.columns-1 {
			*colEdge++
		}
	case input.KeyUp:
		if *rowEdge > 0 {
			*rowEdge--
		}
	case input.KeyDown:
		if *rowEdge < c.rows-1 {
			*rowEdge++
		}
	default:
		return false
	}
	c.selectBox(left, top, right, bottom)
	return true
}

// CopySelection writes the bounding box of the selection to the
// clipboard, rows separated by newlines and fields by the separator.
func (g *Grid) CopySelection() bool {
	c := g.ctx
	if c.dead || len(c.selected) == 0 {
		return false
	}
	left, top, right, bottom := c.bounding()
	var b strings.Builder
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if cell, ok := c.cells[row*c.columns+col]; ok {
				b.WriteString(cell.String())
			}
			if col < right {
				b.WriteString(c.separator)
			}
		}
		b.WriteByte('\n')
	}
	if !c.board().SetText(b.String()) {
		warn("grid", "copy", "failed to copy %q to the clipboard", b.String())
		return false
	}
	return true
}

// PasteToSelection reads the clipboard and writes one token per selected
// cell in selection order. Extra tokens are joined, without separator,
// into the last selected cell.
func (g *Grid) PasteToSelection() bool {
	c := g.ctx
	if c.dead || len(c.selected) == 0 {
		return false
	}
	text := c.board().GetText()
	lines := strings.Split(text, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	var tokens []string
	for _, ln := range lines {
		tokens = append(tokens, strings.Split(ln, c.separator)...)
	}
	if n := len(c.selected); len(tokens) > n {
		last := strings.Join(tokens[n-1:], "")
		tokens = append(tokens[:n-1], last)
	}
	for i, tok := range tokens {
		index := c.selected[i]
		cell, ok := c.cells[index]
		if !ok {
			cell = Cell{Type: CellString}
		}
		if cell.Type == CellBoolean {
			cell.Bool = tok == "True"
		} else {
			cell.Text = tok
		}
		c.cells[index] = cell
	}
	c.RaiseEvent(EventValueChanged, c.ID)
	return true
}

// OnKeyEvent implements Control.
func (g *Grid) OnKeyEvent(k input.Key, _ rune) bool {
	c := g.ctx
	copyPaste := c.flags&GridDisableCopyPaste == 0
	zoom := c.flags&GridDisableZoom == 0
	switch k {
	case input.KeySpace:
		return g.ToggleBooleanCell()
	case input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown:
		return c.moveSelection(k)
	case input.KeyLeft | input.KeyShift, input.KeyRight | input.KeyShift,
		input.KeyUp | input.KeyShift, input.KeyDown | input.KeyShift:
		return c.extendSelection(k.Code())
	case input.KeyEscape:
		return g.ClearSelection()
	case input.KeyC | input.KeyCtrl, input.KeyInsert | input.KeyCtrl:
		if copyPaste {
			g.CopySelection()
			return true
		}
	case input.KeyV | input.KeyCtrl, input.KeyInsert | input.KeyShift:
		if copyPaste {
			return g.PasteToSelection()
		}
	case input.KeyUp | input.KeyCtrl | input.KeyAlt:
		if zoom {
			g.UpdateDimensions(0, 1)
			return true
		}
	case input.KeyDown | input.KeyCtrl | input.KeyAlt:
		if zoom {
			g.UpdateDimensions(0, -1)
			return true
		}
	case input.KeyLeft | input.KeyCtrl | input.KeyAlt:
		if zoom {
			g.UpdateDimensions(1, 0)
			return true
		}
	case input.KeyRight | input.KeyCtrl | input.KeyAlt:
		if zoom {
			g.UpdateDimensions(-1, 0)
			return true
		}
	}
	return false
}

// OnMousePressed implements Control.
func (g *Grid) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := g.ctx
	switch {
	case button.Has(input.MouseLeft | input.MouseDoubleClicked):
		index := g.ComputeCellNumber(x, y)
		if index == InvalidCellIndex {
			return false
		}
		c.anchor = index
		c.selected = append(c.selected[:0], index)
		return c.toggle(index)
	case button.Has(input.MouseLeft):
		c.hovered = InvalidCellIndex
		c.selected = c.selected[:0]
		if index := g.ComputeCellNumber(x, y); index != InvalidCellIndex {
			c.anchor = index
			c.selected = append(c.selected, index)
		}
		return true
	case button.Has(input.MouseRight):
		if len(c.selected) > 1 && c.flags&GridDisableCopyPaste == 0 {
			return showPopupMenu(g, g.contextMenu(), x, y)
		}
	}
	return false
}

// OnMouseDrag extends the selection from the anchor to the cell under
// the pointer.
func (g *Grid) OnMouseDrag(x, y int, button input.MouseButton) bool {
	c := g.ctx
	if !button.Has(input.MouseLeft) || !c.valid(c.anchor) {
		return false
	}
	c.hovered = InvalidCellIndex
	index := g.ComputeCellNumber(x, y)
	if index == InvalidCellIndex {
		return false
	}
	c.selectBox(c.anchor%c.columns, c.anchor/c.columns, index%c.columns, index/c.columns)
	return true
}

// OnMouseOver tracks the hovered cell.
func (g *Grid) OnMouseOver(x, y int) bool {
	prev := g.ctx.hovered
	g.ctx.hovered = g.ComputeCellNumber(x, y)
	return prev != g.ctx.hovered
}

// OnMouseLeave implements Control.
func (g *Grid) OnMouseLeave() bool {
	prev := g.ctx.hovered
	g.ctx.hovered = InvalidCellIndex
	return prev != InvalidCellIndex
}

// OnLoseFocus drops the selection.
func (g *Grid) OnLoseFocus() {
	g.ctx.selected = g.ctx.selected[:0]
}

func (g *Grid) contextMenu() *menu.Menu {
	c := g.ctx
	if c.contextMenu == nil {
		m := menu.New(c.Theme)
		m.AddCommandItem("&Copy", gridCommandCopy, input.KeyC|input.KeyCtrl)
		m.AddCommandItem("&Paste", gridCommandPaste, input.KeyV|input.KeyCtrl)
		m.AddSeparator()
		m.AddCommandItem("C&lear selection", gridCommandClear, input.KeyEscape)
		m.SetOwner(menu.OwnerFunc(g.onMenuCommand))
		c.contextMenu = m
	}
	c.contextMenu.SetTheme(c.Theme)
	return c.contextMenu
}

func (g *Grid) onMenuCommand(id int) {
	switch id {
	case gridCommandCopy:
		g.CopySelection()
	case gridCommandPaste:
		g.PasteToSelection()
	case gridCommandClear:
		g.ClearSelection()
	}
}
