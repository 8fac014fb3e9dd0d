package controls

import (
	"slices"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/viewport"
)

// TreeFlags configure a Tree.
type TreeFlags uint8

// Tree flags.
const (
	TreeNone        TreeFlags = 0
	TreeHideColumns TreeFlags = 1 << (iota - 1)
	TreeSearchable
	TreeFilterMode
	TreeSortable
)

// SearchMode selects what typing a query does.
type SearchMode uint8

// Search modes.
const (
	// SearchHighlight marks matches and moves to the next one.
	SearchHighlight SearchMode = iota
	// SearchFilter hides items that neither match nor lead to a match.
	SearchFilter
)

// TreeItem is a node of a Tree.
type TreeItem struct {
	Parent     ItemHandle
	Children   []ItemHandle
	Values     []string
	Expanded   bool
	Expandable bool
	// Depth is 1 for roots.
	Depth                 int
	MarkedAsFound         bool
	HasMatchingDescendant bool
	Data                  any
}

// TreeContext is the state of a Tree.
type TreeContext struct {
	Context

	items      map[ItemHandle]*TreeItem
	roots      []ItemHandle
	nextHandle ItemHandle
	current    ItemHandle

	// itemsToDraw is the linearized visible list
	itemsToDraw []ItemHandle
	view        *viewport.Window

	columns      []Column
	columnsCount int
	flags        TreeFlags

	mode  SearchMode
	query []rune

	sortColumn    int
	sortAscending bool
}

// Tree shows a hierarchy of multi-column items.
type Tree struct {
	base
	ctx *TreeContext
}

// NewTree creates a tree whose items carry columnsCount values.
func NewTree(parent Container, format string, flags TreeFlags, columnsCount int) (*Tree, error) {
	if columnsCount <= 0 {
		warn("tree", "new", "invalid columns count %d", columnsCount)
		return nil, ErrInvalidSize
	}
	tr := &Tree{ctx: &TreeContext{
		Context:       Context{MinWidth: 10, MinHeight: 3},
		items:         make(map[ItemHandle]*TreeItem),
		nextHandle:    1,
		view:          viewport.New(1),
		columnsCount:  columnsCount,
		flags:         flags,
		sortAscending: true,
	}}
	if flags&TreeFilterMode != 0 {
		tr.ctx.mode = SearchFilter
	}
	tr.base.ctx = &tr.ctx.Context
	if err := tr.ctx.init(tr, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return tr, nil
}

// State returns the typed context.
func (tr *Tree) State() *TreeContext { return tr.ctx }

// AddColumn describes the next column. A tree has at most columnsCount
// columns.
func (tr *Tree) AddColumn(title string, align renderer.TextAlignment, width int) bool {
	c := tr.ctx
	if c.dead {
		return false
	}
	if len(c.columns) >= c.columnsCount {
		warn("tree", "add-column", "tree already has %d columns", c.columnsCount)
		return false
	}
	c.columns = append(c.columns, Column{Title: title, Align: align, Width: max(width, 0)})
	return true
}

// Columns returns the column descriptions.
func (tr *Tree) Columns() []Column { return slices.Clone(tr.ctx.columns) }

// AddItem adds an item under parent, or a root when parent is
// InvalidItemHandle.
func (tr *Tree) AddItem(parent ItemHandle, values []string, expandable bool) ItemHandle {
	c := tr.ctx
	if c.dead {
		return InvalidItemHandle
	}
	depth := 1
	var p *TreeItem
	if parent != InvalidItemHandle {
		var ok bool
		if p, ok = c.items[parent]; !ok {
			warn("tree", "add-item", "unknown parent %d", parent)
			return InvalidItemHandle
		}
		depth = p.Depth + 1
	}
	vals := make([]string, c.columnsCount)
	copy(vals, values)
	h := c.nextHandle
	c.nextHandle++
	c.items[h] = &TreeItem{Parent: parent, Values: vals, Expandable: expandable, Depth: depth}
	if p != nil {
		p.Children = append(p.Children, h)
		p.Expandable = true
	} else {
		c.roots = append(c.roots, h)
	}
	if c.current == InvalidItemHandle {
		c.current = h
	}
	c.refresh()
	return h
}

// RemoveItem deletes an item and its whole subtree.
func (tr *Tree) RemoveItem(h ItemHandle) bool {
	c := tr.ctx
	it, ok := c.items[h]
	if c.dead || !ok {
		return false
	}
	// pick the new current before the list changes
	if c.current != InvalidItemHandle && (c.current == h || c.isDescendant(c.current, h)) {
		c.current = c.neighbourOutside(h)
	}
	if p, ok := c.items[it.Parent]; ok {
		p.Children = slices.DeleteFunc(p.Children, func(x ItemHandle) bool { return x == h })
	} else {
		c.roots = slices.DeleteFunc(c.roots, func(x ItemHandle) bool { return x == h })
	}
	c.deleteSubtree(h)
	c.refresh()
	return true
}

func (c *TreeContext) deleteSubtree(h ItemHandle) {
	for _, ch := range c.items[h].Children {
		c.deleteSubtree(ch)
	}
	delete(c.items, h)
}

func (c *TreeContext) isDescendant(h, ancestor ItemHandle) bool {
	for it, ok := c.items[h]; ok; it, ok = c.items[it.Parent] {
		if it.Parent == ancestor {
			return true
		}
	}
	return false
}

// neighbourOutside returns the visible item that takes the place of h's
// subtree: the next one after it, otherwise the one before it.
func (c *TreeContext) neighbourOutside(h ItemHandle) ItemHandle {
	i := slices.Index(c.itemsToDraw, h)
	if i < 0 {
		return c.items[h].Parent
	}
	for j := i + 1; j < len(c.itemsToDraw); j++ {
		if x := c.itemsToDraw[j]; !c.isDescendant(x, h) {
			return x
		}
	}
	if i > 0 {
		return c.itemsToDraw[i-1]
	}
	return InvalidItemHandle
}

// ClearItems removes every item.
func (tr *Tree) ClearItems() {
	c := tr.ctx
	clear(c.items)
	c.roots = nil
	c.current = InvalidItemHandle
	c.refresh()
}

// ItemsCount returns the number of items, visible or not.
func (tr *Tree) ItemsCount() int { return len(tr.ctx.items) }

// CurrentItem returns the highlighted item.
func (tr *Tree) CurrentItem() ItemHandle { return tr.ctx.current }

// SetCurrentItem highlights h, expanding its ancestors.
func (tr *Tree) SetCurrentItem(h ItemHandle) bool {
	c := tr.ctx
	if c.dead {
		return false
	}
	it, ok := c.items[h]
	if !ok {
		warn("tree", "set-current", "unknown item %d", h)
		return false
	}
	for p, ok := c.items[it.Parent]; ok; p, ok = c.items[p.Parent] {
		p.Expanded = true
	}
	c.refresh()
	c.moveTo(h)
	return true
}

// ItemText returns the value of an item column.
func (tr *Tree) ItemText(h ItemHandle, column int) (string, bool) {
	it, ok := tr.ctx.items[h]
	if !ok || column < 0 || column >= len(it.Values) {
		return "", false
	}
	return it.Values[column], true
}

// SetItemText changes the value of an item column.
func (tr *Tree) SetItemText(h ItemHandle, column int, text string) bool {
	c := tr.ctx
	it, ok := c.items[h]
	if c.dead || !ok || column < 0 || column >= len(it.Values) {
		warn("tree", "set-item-text", "invalid item %d column %d", h, column)
		return false
	}
	it.Values[column] = text
	c.refresh()
	return true
}

// SetItemData attaches user data to an item.
func (tr *Tree) SetItemData(h ItemHandle, data any) bool {
	it, ok := tr.ctx.items[h]
	if !ok {
		return false
	}
	it.Data = data
	return true
}

// ItemData returns the user data of an item.
func (tr *Tree) ItemData(h ItemHandle) (any, bool) {
	it, ok := tr.ctx.items[h]
	if !ok {
		return nil, false
	}
	return it.Data, true
}

// Item returns a copy of an item.
func (tr *Tree) Item(h ItemHandle) (TreeItem, bool) {
	it, ok := tr.ctx.items[h]
	if !ok {
		return TreeItem{}, false
	}
	cp := *it
	cp.Children = slices.Clone(it.Children)
	cp.Values = slices.Clone(it.Values)
	return cp, true
}

// Expand opens an expandable item.
func (tr *Tree) Expand(h ItemHandle) bool { return tr.setExpanded(h, true) }

// Collapse closes an item. A current item inside it moves to h.
func (tr *Tree) Collapse(h ItemHandle) bool { return tr.setExpanded(h, false) }

// ToggleExpand flips the expanded state.
func (tr *Tree) ToggleExpand(h ItemHandle) bool {
	it, ok := tr.ctx.items[h]
	if !ok {
		return false
	}
	return tr.setExpanded(h, !it.Expanded)
}

func (tr *Tree) setExpanded(h ItemHandle, on bool) bool {
	c := tr.ctx
	it, ok := c.items[h]
	if c.dead || !ok || !it.Expandable || it.Expanded == on {
		return false
	}
	it.Expanded = on
	if !on && c.isDescendant(c.current, h) {
		c.current = h
	}
	c.refresh()
	return true
}

// IsExpanded reports whether h is open.
func (tr *Tree) IsExpanded(h ItemHandle) bool {
	it, ok := tr.ctx.items[h]
	return ok && it.Expanded
}

// Children returns the children of h.
func (tr *Tree) Children(h ItemHandle) []ItemHandle {
	if it, ok := tr.ctx.items[h]; ok {
		return slices.Clone(it.Children)
	}
	return nil
}

// Parent returns the parent of h, InvalidItemHandle for roots.
func (tr *Tree) Parent(h ItemHandle) ItemHandle {
	if it, ok := tr.ctx.items[h]; ok {
		return it.Parent
	}
	return InvalidItemHandle
}

// Roots returns the top-level items.
func (tr *Tree) Roots() []ItemHandle { return slices.Clone(tr.ctx.roots) }

// VisibleItems returns the linearized list of drawn items.
func (tr *Tree) VisibleItems() []ItemHandle { return slices.Clone(tr.ctx.itemsToDraw) }

// FirstVisible returns the index in VisibleItems of the top row.
func (tr *Tree) FirstVisible() int { return tr.ctx.view.Top() }

// SetSearchMode selects how the query acts.
func (tr *Tree) SetSearchMode(m SearchMode) {
	tr.ctx.mode = m
	tr.ctx.refresh()
}

// SearchMode returns the current search mode.
func (tr *Tree) SearchMode() SearchMode { return tr.ctx.mode }

// Filter returns the query.
func (tr *Tree) Filter() string { return string(tr.ctx.query) }

// SetFilter sets the query and, in highlight mode, moves to the first
// match at or after the current item.
func (tr *Tree) SetFilter(query string) bool {
	c := tr.ctx
	if c.dead {
		return false
	}
	c.query = []rune(query)
	c.refresh()
	if len(c.query) > 0 {
		if it, ok := c.items[c.current]; !ok || !it.MarkedAsFound {
			tr.FindNext()
		}
	}
	return true
}

// ClearFilter drops the query and reports whether there was one.
func (tr *Tree) ClearFilter() bool {
	if len(tr.ctx.query) == 0 {
		return false
	}
	tr.ctx.query = nil
	tr.ctx.refresh()
	return true
}

// FindNext moves to the next match after the current item, wrapping.
func (tr *Tree) FindNext() bool { return tr.ctx.find(1) }

// FindPrevious moves to the previous match, wrapping.
func (tr *Tree) FindPrevious() bool { return tr.ctx.find(-1) }

func (c *TreeContext) find(dir int) bool {
	n := len(c.itemsToDraw)
	if n == 0 || len(c.query) == 0 {
		return false
	}
	start := slices.Index(c.itemsToDraw, c.current)
	if start < 0 {
		start = n - 1
		if dir < 0 {
			start = 0
		}
	}
	for k := 1; k <= n; k++ {
		i := ((start+dir*k)%n + n) % n
		if c.items[c.itemsToDraw[i]].MarkedAsFound {
			c.moveTo(c.itemsToDraw[i])
			return true
		}
	}
	return false
}

// Sort orders every sibling list by a column.
func (tr *Tree) Sort(column int, ascending bool) bool {
	c := tr.ctx
	if c.dead || c.flags&TreeSortable == 0 {
		warn("tree", "sort", "tree is not sortable")
		return false
	}
	if column < 0 || column >= c.columnsCount {
		warn("tree", "sort", "invalid column %d", column)
		return false
	}
	c.sortColumn, c.sortAscending = column, ascending
	cmpItems := func(a, b ItemHandle) int {
		r := compareText(c.items[a].Values[column], c.items[b].Values[column])
		if !ascending {
			r = -r
		}
		return r
	}
	slices.SortStableFunc(c.roots, cmpItems)
	for _, it := range c.items {
		slices.SortStableFunc(it.Children, cmpItems)
	}
	c.refresh()
	return true
}

// refresh recomputes the search marks and the visible list.
func (c *TreeContext) refresh() {
	m := newMatcher(string(c.query))
	for _, h := range c.roots {
		c.mark(h, m)
	}
	c.itemsToDraw = c.itemsToDraw[:0]
	for _, h := range c.roots {
		c.linearize(h, !m.empty())
	}
	c.view.SetCount(len(c.itemsToDraw))
	if c.current != InvalidItemHandle && !slices.Contains(c.itemsToDraw, c.current) {
		if len(c.itemsToDraw) > 0 {
			c.current = c.itemsToDraw[0]
		} else if _, ok := c.items[c.current]; !ok {
			c.current = InvalidItemHandle
		}
	}
	if i := slices.Index(c.itemsToDraw, c.current); i >= 0 {
		c.view.Reveal(i)
	}
}

// mark sets MarkedAsFound and HasMatchingDescendant for a subtree and
// reports whether it contains a match.
func (c *TreeContext) mark(h ItemHandle, m *matcher) bool {
	it := c.items[h]
	it.MarkedAsFound = m.match(it.Values)
	it.HasMatchingDescendant = false
	for _, ch := range it.Children {
		if c.mark(ch, m) {
			it.HasMatchingDescendant = true
		}
	}
	return it.MarkedAsFound || it.HasMatchingDescendant
}

// linearize appends the visible part of a subtree. With an active query
// the branches leading to matches are shown open; filter mode also
// drops everything unrelated to a match.
func (c *TreeContext) linearize(h ItemHandle, searching bool) {
	it := c.items[h]
	if searching && c.mode == SearchFilter && !it.MarkedAsFound && !it.HasMatchingDescendant {
		return
	}
	c.itemsToDraw = append(c.itemsToDraw, h)
	if it.Expanded || (searching && it.HasMatchingDescendant) {
		for _, ch := range it.Children {
			c.linearize(ch, searching)
		}
	}
}

func (c *TreeContext) moveTo(h ItemHandle) {
	i := slices.Index(c.itemsToDraw, h)
	if i < 0 {
		return
	}
	c.view.Reveal(i)
	if c.current != h {
		c.current = h
		c.RaiseEvent(EventCurrentItemChanged, c.ID)
	}
}

func (c *TreeContext) moveBy(delta int) bool {
	n := len(c.itemsToDraw)
	if n == 0 {
		return false
	}
	i := slices.Index(c.itemsToDraw, c.current)
	i = min(max(i+delta, 0), n-1)
	prev := c.current
	c.moveTo(c.itemsToDraw[i])
	return prev != c.current
}

// rows returns the number of item rows that fit.
func (c *TreeContext) rows() int {
	h := c.Height
	if c.flags&TreeHideColumns == 0 {
		h--
	}
	if c.flags&TreeSearchable != 0 {
		h--
	}
	return max(h, 1)
}

func (c *TreeContext) firstRow() int {
	if c.flags&TreeHideColumns == 0 {
		return 1
	}
	return 0
}

// OnAfterResize implements Control.
func (tr *Tree) OnAfterResize(int, int) {
	c := tr.ctx
	c.view.Resize(c.rows())
	if i := slices.Index(c.itemsToDraw, c.current); i >= 0 {
		c.view.Reveal(i)
	}
}

// OnKeyEvent implements Control.
func (tr *Tree) OnKeyEvent(k input.Key, ch rune) bool {
	c := tr.ctx
	it := c.items[c.current]
	switch k {
	case input.KeyUp:
		return c.moveBy(-1)
	case input.KeyDown:
		return c.moveBy(1)
	case input.KeyHome:
		return c.moveBy(-len(c.itemsToDraw))
	case input.KeyEnd:
		return c.moveBy(len(c.itemsToDraw))
	case input.KeyPageUp:
		return c.moveBy(-c.view.Page())
	case input.KeyPageDown:
		return c.moveBy(c.view.Page())
	case input.KeyUp | input.KeyCtrl:
		return c.view.ScrollBy(-1)
	case input.KeyDown | input.KeyCtrl:
		return c.view.ScrollBy(1)
	case input.KeyLeft:
		if it == nil {
			return false
		}
		if it.Expanded {
			return tr.Collapse(c.current)
		}
		if it.Parent != InvalidItemHandle {
			c.moveTo(it.Parent)
			return true
		}
		return false
	case input.KeyRight:
		if it == nil {
			return false
		}
		if it.Expandable && !it.Expanded {
			return tr.Expand(c.current)
		}
		if len(it.Children) > 0 {
			return c.moveBy(1)
		}
		return false
	case input.KeySpace:
		if c.flags&TreeSearchable != 0 && len(c.query) > 0 {
			break
		}
		return tr.ToggleExpand(c.current)
	case input.KeyEnter:
		if it == nil {
			return false
		}
		tr.ToggleExpand(c.current)
		c.RaiseEvent(EventItemActivated, c.ID)
		return true
	case input.KeyEnter | input.KeyCtrl:
		return tr.FindNext()
	case input.KeyEnter | input.KeyCtrl | input.KeyShift:
		return tr.FindPrevious()
	case input.KeyEscape:
		return tr.ClearFilter()
	case input.KeyBackspace:
		if c.flags&TreeSearchable == 0 || len(c.query) == 0 {
			return false
		}
		return tr.SetFilter(string(c.query[:len(c.query)-1]))
	case input.KeyLeft | input.KeyCtrl:
		return tr.sortBy(c.sortColumn-1, c.sortAscending)
	case input.KeyRight | input.KeyCtrl:
		return tr.sortBy(c.sortColumn+1, c.sortAscending)
	}
	if c.flags&TreeSearchable != 0 && ch >= ' ' && k.Modifiers()&^input.KeyShift == 0 {
		return tr.SetFilter(string(append(c.query, ch)))
	}
	return false
}

func (tr *Tree) sortBy(column int, ascending bool) bool {
	if tr.ctx.flags&TreeSortable == 0 || column < 0 || column >= tr.ctx.columnsCount {
		return false
	}
	return tr.Sort(column, ascending)
}

// itemAt maps a control row to an item.
func (c *TreeContext) itemAt(y int) (ItemHandle, bool) {
	i, ok := c.view.RowToIndex(y - c.firstRow())
	if !ok || y < c.firstRow() || y >= c.firstRow()+c.rows() {
		return InvalidItemHandle, false
	}
	return c.itemsToDraw[i], true
}

// OnMousePressed implements Control.
func (tr *Tree) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := tr.ctx
	if c.flags&(TreeHideColumns|TreeSortable) == TreeSortable && y == 0 {
		xs, widths := columnPositions(c.columns, c.Width)
		for i := range xs {
			if x >= xs[i] && x < xs[i]+widths[i] {
				asc := true
				if i == c.sortColumn {
					asc = !c.sortAscending
				}
				return tr.Sort(i, asc)
			}
		}
		return false
	}
	h, ok := c.itemAt(y)
	if !ok || !button.Has(input.MouseLeft) {
		return false
	}
	c.moveTo(h)
	it := c.items[h]
	symbol := (it.Depth - 1) * 2
	switch {
	case button.Has(input.MouseDoubleClicked):
		c.RaiseEvent(EventItemActivated, c.ID)
	case x == symbol:
		tr.ToggleExpand(h)
	}
	return true
}

// OnMouseWheel scrolls the view.
func (tr *Tree) OnMouseWheel(_, _ int, dir input.WheelDirection) bool {
	switch dir {
	case input.WheelUp:
		return tr.ctx.view.ScrollBy(-1)
	case input.WheelDown:
		return tr.ctx.view.ScrollBy(1)
	}
	return false
}
