package controls

import (
	"slices"
	"strings"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/viewport"
)

// MaxListViewColumns is the column limit of a ListView.
const MaxListViewColumns = 64

// ListViewFlags configure a ListView.
type ListViewFlags uint8

// ListView flags.
const (
	ListViewNone       ListViewFlags = 0
	ListViewCheckBoxes ListViewFlags = 1 << (iota - 1)
	ListViewHideColumns
	ListViewSearchBar
	ListViewMultiSelect
	ListViewHideCurrentItemWhenNotFocused
)

type listViewItem struct {
	handle   ItemHandle
	values   []string
	checked  bool
	selected bool
	data     any
}

// ListViewContext is the state of a ListView.
type ListViewContext struct {
	Context

	columns    []Column
	items      []*listViewItem
	nextHandle ItemHandle
	flags      ListViewFlags

	// indexes are the positions in items that pass the filter, in order
	indexes []int
	current int
	view    *viewport.Window

	sortColumn    int
	sortAscending bool
	filter        []rune
	separator     string
}

// ListView is a multi-column list with sorting, filtering, check boxes
// and multiple selection.
type ListView struct {
	base
	ctx *ListViewContext
}

// NewListView creates an empty list view.
func NewListView(parent Container, format string, flags ListViewFlags) (*ListView, error) {
	lv := &ListView{ctx: &ListViewContext{
		Context:       Context{MinWidth: 5, MinHeight: 3},
		nextHandle:    1,
		flags:         flags,
		view:          viewport.New(1),
		sortColumn:    -1,
		sortAscending: true,
		separator:     ",",
	}}
	lv.base.ctx = &lv.ctx.Context
	if err := lv.ctx.init(lv, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return lv, nil
}

// State returns the typed context.
func (lv *ListView) State() *ListViewContext { return lv.ctx }

// AddColumn appends a column.
func (lv *ListView) AddColumn(title string, align renderer.TextAlignment, width int) bool {
	c := lv.ctx
	if c.dead {
		return false
	}
	if len(c.columns) >= MaxListViewColumns {
		warn("listview", "add-column", "a list view holds at most %d columns", MaxListViewColumns)
		return false
	}
	c.columns = append(c.columns, Column{Title: title, Align: align, Width: max(width, 0)})
	for _, it := range c.items {
		it.values = append(it.values, "")
	}
	return true
}

// DeleteColumn removes a column and its values.
func (lv *ListView) DeleteColumn(index int) bool {
	c := lv.ctx
	if c.dead || index < 0 || index >= len(c.columns) {
		warn("listview", "delete-column", "invalid column %d", index)
		return false
	}
	c.columns = slices.Delete(c.columns, index, index+1)
	for _, it := range c.items {
		it.values = slices.Delete(it.values, index, index+1)
	}
	switch {
	case c.sortColumn == index:
		c.sortColumn = -1
	case c.sortColumn > index:
		c.sortColumn--
	}
	return true
}

// ColumnsCount returns the number of columns.
func (lv *ListView) ColumnsCount() int { return len(lv.ctx.columns) }

// AddItem appends an item with one value per column.
func (lv *ListView) AddItem(values ...string) ItemHandle {
	c := lv.ctx
	if c.dead {
		return InvalidItemHandle
	}
	vals := make([]string, len(c.columns))
	copy(vals, values)
	h := c.nextHandle
	c.nextHandle++
	c.items = append(c.items, &listViewItem{handle: h, values: vals})
	c.refresh()
	return h
}

func (c *ListViewContext) find(h ItemHandle) (int, *listViewItem) {
	for i, it := range c.items {
		if it.handle == h {
			return i, it
		}
	}
	return -1, nil
}

func (c *ListViewContext) item(h ItemHandle, op string) *listViewItem {
	if c.dead {
		return nil
	}
	_, it := c.find(h)
	if it == nil {
		warn("listview", op, "unknown item %d", h)
	}
	return it
}

// DeleteItem removes an item.
func (lv *ListView) DeleteItem(h ItemHandle) bool {
	c := lv.ctx
	i, it := c.find(h)
	if c.dead || it == nil {
		return false
	}
	cur := c.currentHandle()
	if cur == h {
		// the row below takes over, or the one above at the end
		cur = InvalidItemHandle
		if p := c.current + 1; p < len(c.indexes) {
			cur = c.items[c.indexes[p]].handle
		} else if p := c.current - 1; p >= 0 {
			cur = c.items[c.indexes[p]].handle
		}
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.refreshKeeping(cur)
	return true
}

// DeleteAllItems removes every item.
func (lv *ListView) DeleteAllItems() {
	lv.ctx.items = nil
	lv.ctx.refresh()
}

// ItemsCount returns the number of items, filtered or not.
func (lv *ListView) ItemsCount() int { return len(lv.ctx.items) }

// VisibleItems returns the items passing the filter in display order.
func (lv *ListView) VisibleItems() []ItemHandle {
	out := make([]ItemHandle, 0, len(lv.ctx.indexes))
	for _, i := range lv.ctx.indexes {
		out = append(out, lv.ctx.items[i].handle)
	}
	return out
}

// SetItemText changes one value of an item.
func (lv *ListView) SetItemText(h ItemHandle, column int, text string) bool {
	it := lv.ctx.item(h, "set-item-text")
	if it == nil || column < 0 || column >= len(it.values) {
		return false
	}
	it.values[column] = text
	lv.ctx.refresh()
	return true
}

// ItemText returns one value of an item.
func (lv *ListView) ItemText(h ItemHandle, column int) (string, bool) {
	_, it := lv.ctx.find(h)
	if it == nil || column < 0 || column >= len(it.values) {
		return "", false
	}
	return it.values[column], true
}

// SetItemCheck sets the check mark of an item.
func (lv *ListView) SetItemCheck(h ItemHandle, checked bool) bool {
	it := lv.ctx.item(h, "set-item-check")
	if it == nil {
		return false
	}
	it.checked = checked
	return true
}

// IsItemChecked reports the check mark of an item.
func (lv *ListView) IsItemChecked(h ItemHandle) bool {
	_, it := lv.ctx.find(h)
	return it != nil && it.checked
}

// CheckedItemsCount returns how many items are checked.
func (lv *ListView) CheckedItemsCount() int {
	n := 0
	for _, it := range lv.ctx.items {
		if it.checked {
			n++
		}
	}
	return n
}

// SetItemSelect selects or unselects an item.
func (lv *ListView) SetItemSelect(h ItemHandle, selected bool) bool {
	it := lv.ctx.item(h, "set-item-select")
	if it == nil {
		return false
	}
	it.selected = selected
	return true
}

// IsItemSelected reports whether an item is selected.
func (lv *ListView) IsItemSelected(h ItemHandle) bool {
	_, it := lv.ctx.find(h)
	return it != nil && it.selected
}

// SelectedItemsCount returns how many items are selected.
func (lv *ListView) SelectedItemsCount() int {
	n := 0
	for _, it := range lv.ctx.items {
		if it.selected {
			n++
		}
	}
	return n
}

// SetItemData attaches user data to an item.
func (lv *ListView) SetItemData(h ItemHandle, data any) bool {
	it := lv.ctx.item(h, "set-item-data")
	if it == nil {
		return false
	}
	it.data = data
	return true
}

// ItemData returns the user data of an item.
func (lv *ListView) ItemData(h ItemHandle) (any, bool) {
	_, it := lv.ctx.find(h)
	if it == nil {
		return nil, false
	}
	return it.data, true
}

// SetCurrentItem highlights a visible item.
func (lv *ListView) SetCurrentItem(h ItemHandle) bool {
	c := lv.ctx
	i, it := c.find(h)
	if c.dead || it == nil {
		return false
	}
	pos := slices.Index(c.indexes, i)
	if pos < 0 {
		warn("listview", "set-current", "item %d is filtered out", h)
		return false
	}
	c.moveTo(pos)
	return true
}

// CurrentItem returns the highlighted item.
func (lv *ListView) CurrentItem() ItemHandle {
	c := lv.ctx
	if c.current < 0 || c.current >= len(c.indexes) {
		return InvalidItemHandle
	}
	return c.items[c.indexes[c.current]].handle
}

// SetClipboardSeparator sets the separator CopySelection puts between
// values.
func (lv *ListView) SetClipboardSeparator(sep string) {
	lv.ctx.separator = sep
}

// Sort orders the items by a column. The order is stable.
func (lv *ListView) Sort(column int, ascending bool) bool {
	c := lv.ctx
	if c.dead || column < 0 || column >= len(c.columns) {
		warn("listview", "sort", "invalid column %d", column)
		return false
	}
	cur := lv.CurrentItem()
	c.sortColumn, c.sortAscending = column, ascending
	slices.SortStableFunc(c.items, func(a, b *listViewItem) int {
		r := compareText(a.values[column], b.values[column])
		if !ascending {
			r = -r
		}
		return r
	})
	c.refresh()
	if cur != InvalidItemHandle {
		lv.SetCurrentItem(cur)
	}
	return true
}

// SortColumn returns the sort column (-1 for none) and direction.
func (lv *ListView) SortColumn() (int, bool) { return lv.ctx.sortColumn, lv.ctx.sortAscending }

// SetFilter keeps only the items where some value contains text,
// ignoring case.
func (lv *ListView) SetFilter(text string) {
	lv.ctx.filter = []rune(text)
	lv.ctx.refresh()
}

// Filter returns the filter text.
func (lv *ListView) Filter() string { return string(lv.ctx.filter) }

// CopySelection copies the selected items, or the current one when none
// is selected, one line per item.
func (lv *ListView) CopySelection() bool {
	c := lv.ctx
	if c.dead {
		return false
	}
	var rows []*listViewItem
	for _, i := range c.indexes {
		if c.items[i].selected {
			rows = append(rows, c.items[i])
		}
	}
	if len(rows) == 0 {
		if c.current < 0 || c.current >= len(c.indexes) {
			return false
		}
		rows = append(rows, c.items[c.indexes[c.current]])
	}
	var b strings.Builder
	for _, it := range rows {
		b.WriteString(strings.Join(it.values, c.separator))
		b.WriteByte('\n')
	}
	if !c.board().SetText(b.String()) {
		warn("listview", "copy", "failed to copy %d items to the clipboard", len(rows))
		return false
	}
	return true
}

func (c *ListViewContext) currentHandle() ItemHandle {
	if c.current >= 0 && c.current < len(c.indexes) && c.indexes[c.current] < len(c.items) {
		return c.items[c.indexes[c.current]].handle
	}
	return InvalidItemHandle
}

func (c *ListViewContext) refresh() {
	c.refreshKeeping(c.currentHandle())
}

// refreshKeeping rebuilds the visible rows and keeps cur as the current
// item when it is still shown.
func (c *ListViewContext) refreshKeeping(cur ItemHandle) {
	m := newMatcher(string(c.filter))
	c.indexes = c.indexes[:0]
	for i, it := range c.items {
		if m.empty() || m.match(it.values) {
			c.indexes = append(c.indexes, i)
		}
	}
	c.view.SetCount(len(c.indexes))
	c.current = 0
	for pos, i := range c.indexes {
		if c.items[i].handle == cur {
			c.current = pos
			break
		}
	}
	if len(c.indexes) == 0 {
		c.current = -1
		return
	}
	c.view.Reveal(c.current)
}

func (c *ListViewContext) moveTo(pos int) bool {
	if len(c.indexes) == 0 {
		return false
	}
	pos = min(max(pos, 0), len(c.indexes)-1)
	c.view.Reveal(pos)
	if pos == c.current {
		return false
	}
	c.current = pos
	c.RaiseEvent(EventCurrentItemChanged, c.ID)
	return true
}

func (c *ListViewContext) currentItem() *listViewItem {
	if c.current < 0 || c.current >= len(c.indexes) {
		return nil
	}
	return c.items[c.indexes[c.current]]
}

func (c *ListViewContext) rows() int {
	h := c.Height
	if c.flags&ListViewHideColumns == 0 {
		h--
	}
	if c.flags&ListViewSearchBar != 0 {
		h--
	}
	return max(h, 1)
}

func (c *ListViewContext) firstRow() int {
	if c.flags&ListViewHideColumns == 0 {
		return 1
	}
	return 0
}

// OnAfterResize implements Control.
func (lv *ListView) OnAfterResize(int, int) {
	lv.ctx.view.Resize(lv.ctx.rows())
	if lv.ctx.current >= 0 {
		lv.ctx.view.Reveal(lv.ctx.current)
	}
}

// extend selects the current item and moves by delta.
func (c *ListViewContext) extend(delta int) bool {
	it := c.currentItem()
	if it == nil || c.flags&ListViewMultiSelect == 0 {
		return false
	}
	it.selected = !it.selected
	c.moveTo(c.current + delta)
	return true
}

// OnKeyEvent implements Control.
func (lv *ListView) OnKeyEvent(k input.Key, ch rune) bool {
	c := lv.ctx
	switch k {
	case input.KeyUp:
		return c.moveTo(c.current - 1)
	case input.KeyDown:
		return c.moveTo(c.current + 1)
	case input.KeyHome:
		return c.moveTo(0)
	case input.KeyEnd:
		return c.moveTo(len(c.indexes) - 1)
	case input.KeyPageUp:
		return c.moveTo(c.current - c.view.Page())
	case input.KeyPageDown:
		return c.moveTo(c.current + c.view.Page())
	case input.KeyUp | input.KeyShift:
		return c.extend(-1)
	case input.KeyDown | input.KeyShift, input.KeyInsert:
		return c.extend(1)
	case input.KeySpace:
		if it := c.currentItem(); it != nil && c.flags&ListViewCheckBoxes != 0 {
			it.checked = !it.checked
			c.RaiseEvent(EventCheckedStatusChanged, c.ID)
			return true
		}
	case input.KeyEnter:
		if c.currentItem() != nil {
			c.RaiseEvent(EventItemActivated, c.ID)
			return true
		}
	case input.KeyLeft | input.KeyCtrl:
		if len(c.columns) > 0 {
			return lv.Sort(max(c.sortColumn-1, 0), c.sortAscending)
		}
	case input.KeyRight | input.KeyCtrl:
		if len(c.columns) > 0 {
			return lv.Sort(min(c.sortColumn+1, len(c.columns)-1), c.sortAscending)
		}
	case input.KeyC | input.KeyCtrl, input.KeyInsert | input.KeyCtrl:
		lv.CopySelection()
		return true
	case input.KeyA | input.KeyCtrl:
		if c.flags&ListViewMultiSelect != 0 {
			for _, i := range c.indexes {
				c.items[i].selected = true
			}
			return true
		}
	case input.KeyEscape:
		if len(c.filter) > 0 {
			lv.SetFilter("")
			return true
		}
	case input.KeyBackspace:
		if c.flags&ListViewSearchBar != 0 && len(c.filter) > 0 {
			lv.SetFilter(string(c.filter[:len(c.filter)-1]))
			return true
		}
	}
	if c.flags&ListViewSearchBar != 0 && ch > ' ' && k.Modifiers()&^input.KeyShift == 0 {
		lv.SetFilter(string(append(c.filter, ch)))
		return true
	}
	return false
}

// OnMousePressed implements Control.
func (lv *ListView) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := lv.ctx
	if !button.Has(input.MouseLeft) {
		return false
	}
	if c.flags&ListViewHideColumns == 0 && y == 0 {
		xs, widths := columnPositions(c.columns, c.Width-c.checkWidth())
		for i := range xs {
			if x-c.checkWidth() >= xs[i] && x-c.checkWidth() < xs[i]+widths[i] {
				asc := true
				if i == c.sortColumn {
					asc = !c.sortAscending
				}
				return lv.Sort(i, asc)
			}
		}
		return false
	}
	row := y - c.firstRow()
	if row < 0 || row >= c.rows() {
		return false
	}
	pos, ok := c.view.RowToIndex(row)
	if !ok {
		return false
	}
	c.moveTo(pos)
	it := c.currentItem()
	switch {
	case button.Has(input.MouseDoubleClicked):
		c.RaiseEvent(EventItemActivated, c.ID)
	case c.flags&ListViewCheckBoxes != 0 && x < 3:
		it.checked = !it.checked
		c.RaiseEvent(EventCheckedStatusChanged, c.ID)
	}
	return true
}

// OnMouseWheel implements Control.
func (lv *ListView) OnMouseWheel(_, _ int, dir input.WheelDirection) bool {
	switch dir {
	case input.WheelUp:
		return lv.ctx.moveTo(lv.ctx.current - 1)
	case input.WheelDown:
		return lv.ctx.moveTo(lv.ctx.current + 1)
	}
	return false
}

func (c *ListViewContext) checkWidth() int {
	if c.flags&ListViewCheckBoxes != 0 {
		return 4
	}
	return 0
}

// Paint implements Control.
func (lv *ListView) Paint(r *renderer.Renderer) {
	c := lv.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	normal := t.Text.Normal
	if !c.IsEnabled() {
		normal = t.Text.Inactive
	}
	r.Clear(' ', normal)
	cw := c.checkWidth()
	xs, widths := columnPositions(c.columns, c.Width-cw)

	if c.flags&ListViewHideColumns == 0 {
		header := t.Header.Text.Get(c.IsEnabled(), c.HasFocus(), false)
		r.FillHorizontalLine(0, 0, c.Width-1, ' ', header)
		for i, col := range c.columns {
			r.WriteText(col.Title, renderer.WriteTextParams{
				Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
				X:     cw + xs[i],
				Width: widths[i],
				Color: header,
				Align: col.Align,
			})
			if i > 0 {
				r.WriteSpecialCharacter(cw+xs[i]-1, 0, renderer.BoxVerticalSingleLine, header)
			}
			if i == c.sortColumn {
				mark := renderer.TriangleUp
				if !c.sortAscending {
					mark = renderer.TriangleDown
				}
				r.WriteSpecialCharacter(cw+xs[i]+widths[i]-1, 0, mark, t.Header.Symbol.Normal)
			}
		}
	}

	top := c.firstRow()
	for row := 0; row < c.rows(); row++ {
		pos, ok := c.view.RowToIndex(row)
		if !ok {
			break
		}
		lv.paintItem(r, c.items[c.indexes[pos]], top+row, pos == c.current, xs, widths)
	}

	if c.flags&ListViewSearchBar != 0 {
		y := c.Height - 1
		colors := t.SearchBar.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
		r.FillHorizontalLine(0, y, c.Width-1, ' ', colors)
		n := r.WriteSingleLineText(0, y, "Filter: ", colors)
		r.WriteSingleLineText(n, y, string(c.filter), colors)
	}
}

func (lv *ListView) paintItem(r *renderer.Renderer, it *listViewItem, y int, current bool, xs, widths []int) {
	c := lv.ctx
	t := c.Theme
	colors := t.Text.Normal
	switch {
	case !c.IsEnabled():
		colors = t.Text.Inactive
	case it.selected:
		colors = t.Selection.Text
	}
	if current && c.IsEnabled() {
		switch {
		case c.HasFocus():
			colors = t.Cursor.Normal
			if it.selected {
				colors = t.Cursor.OverSelection
			}
		case c.flags&ListViewHideCurrentItemWhenNotFocused == 0:
			colors = t.Cursor.Inactive
		}
	}
	r.FillHorizontalLine(0, y, c.Width-1, ' ', colors)
	cw := c.checkWidth()
	if cw > 0 {
		r.WriteSingleLineText(0, y, "[ ]", colors)
		if it.checked {
			r.WriteSpecialCharacter(1, y, renderer.CheckMark, t.Symbol.Checked)
		}
	}
	for i := range c.columns {
		r.WriteText(it.values[i], renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     cw + xs[i],
			Y:     y,
			Width: widths[i],
			Color: colors,
			Align: c.columns[i].Align,
		})
	}
}
