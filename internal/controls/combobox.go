package controls

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/layout"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/viewport"
)

const comboMaxVisibleItems = 5

type comboItem struct {
	text      []rune
	data      any
	separator bool
}

// ComboBoxContext is the state of a ComboBox.
type ComboBoxContext struct {
	Context
	items   []comboItem
	current int
	// hovered is the candidate item while the list is open.
	hovered       int
	view          *viewport.Window
	headerOffset  int
	contentOffset int
}

// ComboBox picks one item from a drop-down list. Separators group the
// items and cannot be selected.
type ComboBox struct {
	base
	ctx *ComboBoxContext
}

// NewComboBox creates a combo box holding items.
func NewComboBox(parent Container, format string, items ...string) (*ComboBox, error) {
	cb := &ComboBox{ctx: &ComboBoxContext{
		Context: Context{MinWidth: 7, MinHeight: 1, MaxHeight: 1},
		current:       -1,
		hovered:       -1,
		view:          viewport.New(comboMaxVisibleItems),
		contentOffset: 1,
	}}
	cb.base.ctx = &cb.ctx.Context
	for _, it := range items {
		cb.ctx.items = append(cb.ctx.items, comboItem{text: []rune(it)})
	}
	cb.ctx.view.SetCount(len(items))
	if err := cb.ctx.init(cb, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return cb, nil
}

// State returns the typed context.
func (cb *ComboBox) State() *ComboBoxContext { return cb.ctx }

// AddItem appends a selectable item.
func (cb *ComboBox) AddItem(text string, data any) bool {
	return cb.add(comboItem{text: []rune(text), data: data})
}

// AddSeparator appends a separator with an optional caption.
func (cb *ComboBox) AddSeparator(text string) bool {
	return cb.add(comboItem{text: []rune(text), separator: true})
}

func (cb *ComboBox) add(it comboItem) bool {
	c := cb.ctx
	if c.dead {
		return false
	}
	c.items = append(c.items, it)
	c.view.SetCount(len(c.items))
	return true
}

// DeleteAllItems removes every item and clears the selection.
func (cb *ComboBox) DeleteAllItems() {
	c := cb.ctx
	c.items = nil
	c.current, c.hovered = -1, -1
	c.view.SetCount(0)
	c.PackView()
}

// ItemsCount returns the number of items, separators included.
func (cb *ComboBox) ItemsCount() int { return len(cb.ctx.items) }

// ItemText returns the caption of item i.
func (cb *ComboBox) ItemText(i int) (string, bool) {
	if i < 0 || i >= len(cb.ctx.items) {
		return "", false
	}
	return string(cb.ctx.items[i].text), true
}

// ItemData returns the value stored with item i.
func (cb *ComboBox) ItemData(i int) (any, bool) {
	if i < 0 || i >= len(cb.ctx.items) {
		return nil, false
	}
	return cb.ctx.items[i].data, true
}

// IsSeparator reports whether item i is a separator.
func (cb *ComboBox) IsSeparator(i int) bool {
	return i >= 0 && i < len(cb.ctx.items) && cb.ctx.items[i].separator
}

// CurrentItem returns the selected index, -1 when nothing is selected.
func (cb *ComboBox) CurrentItem() int { return cb.ctx.current }

// CurrentItemText returns the selected caption.
func (cb *ComboBox) CurrentItemText() string {
	s, _ := cb.ItemText(cb.ctx.current)
	return s
}

// SetCurrentItem selects item i. Separators cannot be selected.
func (cb *ComboBox) SetCurrentItem(i int) bool {
	c := cb.ctx
	if c.dead {
		return false
	}
	if i < 0 || i >= len(c.items) || c.items[i].separator {
		warn("combobox", "set-current", "invalid item %d of %d", i, len(c.items))
		return false
	}
	c.setCurrent(i)
	return true
}

func (c *ComboBoxContext) setCurrent(i int) {
	c.hovered = i
	c.view.Reveal(i)
	if i == c.current {
		return
	}
	c.current = i
	c.RaiseEvent(EventCurrentItemChanged, c.ID)
}

// step returns the closest selectable item from i going by dir, or -1.
func (c *ComboBoxContext) step(i, dir int) int {
	for i += dir; i >= 0 && i < len(c.items); i += dir {
		if !c.items[i].separator {
			return i
		}
	}
	return -1
}

// moveBy moves by delta selectable positions, stopping at the ends.
func (c *ComboBoxContext) moveBy(from, delta int) int {
	dir := 1
	if delta < 0 {
		dir, delta = -1, -delta
	}
	pos := from
	if pos < 0 {
		pos = c.step(-1, 1)
		delta--
	}
	for ; delta > 0; delta-- {
		next := c.step(pos, dir)
		if next < 0 {
			break
		}
		pos = next
	}
	return pos
}

func (c *ComboBoxContext) first() int { return c.step(-1, 1) }
func (c *ComboBoxContext) last() int  { return c.step(len(c.items), -1) }

// IsExpanded reports whether the list is open.
func (cb *ComboBox) IsExpanded() bool { return cb.ctx.Flags.Has(FlagExpanded) }

// Open shows the list.
func (cb *ComboBox) Open() bool {
	c := cb.ctx
	if c.dead || !c.IsEnabled() || len(c.items) == 0 {
		return false
	}
	c.hovered = c.current
	if c.hovered < 0 {
		c.hovered = c.first()
	}
	c.view.Reveal(c.hovered)
	return c.ExpandView()
}

// Close hides the list without changing the selection.
func (cb *ComboBox) Close() bool { return cb.ctx.PackView() }

// OnExpandView places the list below the header, or above it near the
// bottom of the screen.
func (cb *ComboBox) OnExpandView(clip *renderer.Clip) {
	c := cb.ctx
	visible := min(len(c.items), comboMaxVisibleItems)
	c.view.Resize(visible)
	_, sh := c.ScreenSize()
	p := layout.ExpandPopup(clip.ScreenY, visible+3, sh)
	c.headerOffset, c.contentOffset = p.HeaderOffset, p.ContentOffset
	*clip = renderer.NewClip(clip.ScreenX, p.Y, c.Width, p.Height)
	if !c.screen.IsEmpty() {
		clip.ClipRect = clip.ClipRect.Intersection(c.screen)
		clip.Visible = !clip.ClipRect.IsEmpty()
	}
}

// OnPackView implements Control.
func (cb *ComboBox) OnPackView() {
	cb.ctx.headerOffset, cb.ctx.contentOffset = 0, 1
}

// OnLoseFocus closes the list.
func (cb *ComboBox) OnLoseFocus() { cb.ctx.PackView() }

// OnHotKey opens the list.
func (cb *ComboBox) OnHotKey() {
	cb.ctx.SetFocus()
	cb.Open()
}

// OnKeyEvent implements Control.
func (cb *ComboBox) OnKeyEvent(k input.Key, _ rune) bool {
	c := cb.ctx
	if c.dead {
		return false
	}
	if cb.IsExpanded() {
		return cb.expandedKey(k)
	}
	switch k {
	case input.KeyUp:
		if i := c.moveBy(c.current, -1); i >= 0 {
			c.setCurrent(i)
		}
		return true
	case input.KeyDown:
		if i := c.moveBy(c.current, 1); i >= 0 {
			c.setCurrent(i)
		}
		return true
	case input.KeyHome:
		if i := c.first(); i >= 0 {
			c.setCurrent(i)
		}
		return true
	case input.KeyEnd:
		if i := c.last(); i >= 0 {
			c.setCurrent(i)
		}
		return true
	case input.KeySpace, input.KeyEnter:
		cb.Open()
		return true
	}
	return false
}

func (cb *ComboBox) expandedKey(k input.Key) bool {
	c := cb.ctx
	move := func(i int) {
		if i >= 0 {
			c.hovered = i
			c.view.Reveal(i)
		}
	}
	switch k {
	case input.KeyUp:
		move(c.moveBy(c.hovered, -1))
	case input.KeyDown:
		move(c.moveBy(c.hovered, 1))
	case input.KeyPageUp:
		move(c.moveBy(c.hovered, -c.view.Size()))
	case input.KeyPageDown:
		move(c.moveBy(c.hovered, c.view.Size()))
	case input.KeyHome:
		move(c.first())
	case input.KeyEnd:
		move(c.last())
	case input.KeyEnter, input.KeySpace:
		if c.hovered >= 0 {
			c.setCurrent(c.hovered)
		}
		c.PackView()
	case input.KeyEscape:
		c.hovered = c.current
		c.PackView()
	default:
		return false
	}
	return true
}

// itemAt maps a local row of the open list to an item index.
func (c *ComboBoxContext) itemAt(y int) (int, bool) {
	return c.view.RowToIndex(y - c.contentOffset - 1)
}

// OnMousePressed opens the list, or picks an item from the open list.
func (cb *ComboBox) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := cb.ctx
	if !button.Has(input.MouseLeft) {
		return false
	}
	if !cb.IsExpanded() {
		cb.ctx.SetFocus()
		return cb.Open()
	}
	if y == c.headerOffset {
		return cb.Close()
	}
	i, ok := c.itemAt(y)
	if ok && x > 0 && x < c.Width-1 && !c.items[i].separator {
		c.setCurrent(i)
		c.PackView()
	}
	return true
}

// OnMouseOver tracks the item under the pointer.
func (cb *ComboBox) OnMouseOver(x, y int) bool {
	c := cb.ctx
	if !cb.IsExpanded() {
		return false
	}
	i, ok := c.itemAt(y)
	if !ok || c.items[i].separator || i == c.hovered {
		return false
	}
	c.hovered = i
	return true
}

// OnMouseWheel scrolls the open list or changes the selection.
func (cb *ComboBox) OnMouseWheel(_, _ int, dir input.WheelDirection) bool {
	k := input.KeyDown
	if dir == input.WheelUp {
		k = input.KeyUp
	}
	return cb.OnKeyEvent(k, 0)
}

// OnMouseEnter implements Control.
func (cb *ComboBox) OnMouseEnter() bool { return true }

// OnMouseLeave implements Control.
func (cb *ComboBox) OnMouseLeave() bool { return true }

// Paint implements Control.
func (cb *ComboBox) Paint(r *renderer.Renderer) {
	c := cb.ctx
	if c.Theme == nil {
		return
	}
	cb.paintHeader(r)
	if cb.IsExpanded() {
		cb.paintList(r)
	}
}

func (cb *ComboBox) paintHeader(r *renderer.Renderer) {
	c := cb.ctx
	t := c.Theme
	text := t.Editor.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	btn := t.Button.Text.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	y := c.headerOffset
	r.FillHorizontalLineSize(0, y, c.Width-3, ' ', text)
	if c.current >= 0 {
		r.WriteText(string(c.items[c.current].text), renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     1,
			Y:     y,
			Width: c.Width - 5,
			Color: text,
		})
	}
	r.FillHorizontalLineSize(c.Width-3, y, 3, ' ', btn)
	r.WriteSpecialCharacter(c.Width-2, y, renderer.TriangleDown, btn)
	if c.HasFocus() && !cb.IsExpanded() {
		r.SetCursor(1, y)
	}
}

func (cb *ComboBox) paintList(r *renderer.Renderer) {
	c := cb.ctx
	t := c.Theme
	top := c.contentOffset
	h := c.view.Size() + 2
	col := t.Menu.Text.Normal
	r.FillRectSize(0, top, c.Width, h, ' ', col)
	r.DrawRectSize(0, top, c.Width, h, col, renderer.LineSingle)
	for row, end := 0, c.view.Size(); row < end; row++ {
		i, ok := c.view.RowToIndex(row)
		if !ok {
			break
		}
		y := top + 1 + row
		it := c.items[i]
		if it.separator {
			r.DrawHorizontalLine(1, y, c.Width-2, t.Menu.Text.Inactive, renderer.LineSingle)
			if len(it.text) > 0 {
				r.WriteText(" "+string(it.text)+" ", renderer.WriteTextParams{
					Flags: renderer.SingleLine | renderer.ClipToWidth,
					X:     1,
					Y:     y,
					Width: c.Width - 2,
					Color: t.Menu.Text.Inactive,
					Align: renderer.AlignCenter,
				})
			}
			continue
		}
		color := col
		if i == c.hovered {
			color = t.Menu.Text.Focused
			r.FillHorizontalLineSize(1, y, c.Width-2, ' ', color)
		}
		r.WriteText(string(it.text), renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     2,
			Y:     y,
			Width: c.Width - 4,
			Color: color,
		})
	}
	if c.view.Count() > c.view.Size() {
		r.DrawVerticalScrollBar(c.Width-1, top+1, c.view.Size(), uint64(c.view.Top()), uint64(c.view.MaxTop()),
			t.ScrollBar.Bar.Normal, t.ScrollBar.Arrows.Normal)
	}
}
