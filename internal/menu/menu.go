// Package menu implements popup menus and the menu bar.
//
// A Menu owns its items; submenus are owned by the item that opens them.
// Items are addressed by ItemHandle, an index that never moves, so
// submenu references stay valid as items are added.
package menu

import (
	"errors"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/layout"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/theme"
)

// MaxItems is the most items a single menu can hold.
const MaxItems = 256

// ErrTooManyItems is logged when a menu is already full.
var ErrTooManyItems = errors.New("too many menu items")

// Owner receives the command of an activated item.
type Owner interface {
	OnCommand(commandID int)
}

// OwnerFunc adapts a function to Owner.
type OwnerFunc func(commandID int)

// OnCommand calls f.
func (f OwnerFunc) OnCommand(commandID int) { f(commandID) }

// ButtonState is the state of a scroll button.
type ButtonState uint8

// Scroll button states.
const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// Context is the state of one menu.
type Context struct {
	items  []*Item
	parent *Menu
	owner  Owner
	bar    *Bar
	theme  *theme.Config

	// screen rectangle, valid while open
	x, y, width, height int
	screenW, screenH    int

	firstVisible  int
	visibleCount  int
	currentItem   int
	textWidth     int
	shortcutWidth int

	open  bool
	child *Menu

	buttonUp, buttonDown ButtonState
}

// Menu is a popup menu.
type Menu struct {
	ctx *Context
}

// New creates an empty menu painted with t.
func New(t *theme.Config) *Menu {
	return &Menu{ctx: &Context{theme: t, currentItem: -1}}
}

// SetOwner sets who receives the commands of this menu and its submenus.
func (m *Menu) SetOwner(o Owner) {
	m.ctx.owner = o
}

// SetTheme replaces the theme of the menu and all its submenus.
func (m *Menu) SetTheme(t *theme.Config) {
	m.ctx.theme = t
	for _, it := range m.ctx.items {
		if it.SubMenu != nil {
			it.SubMenu.SetTheme(t)
		}
	}
}

// Parent returns the menu this one is a submenu of.
func (m *Menu) Parent() *Menu { return m.ctx.parent }

func (m *Menu) root() *Menu {
	r := m
	for r.ctx.parent != nil {
		r = r.ctx.parent
	}
	return r
}

func (m *Menu) ownerOf() Owner {
	return m.root().ctx.owner
}

func (m *Menu) add(it *Item) ItemHandle {
	if len(m.ctx.items) >= MaxItems {
		logging.Component("menu").WithField("op", "add").Warn("%v: a menu holds at most %d items", ErrTooManyItems, MaxItems)
		return InvalidItemHandle
	}
	m.ctx.items = append(m.ctx.items, it)
	return ItemHandle(len(m.ctx.items) - 1)
}

// AddCommandItem adds an item that raises commandID when activated.
func (m *Menu) AddCommandItem(text string, commandID int, shortcut input.Key) ItemHandle {
	return m.add(newItem(ItemCommand, text, commandID, false, shortcut))
}

// AddCheckItem adds an item whose check mark toggles when activated.
func (m *Menu) AddCheckItem(text string, commandID int, checked bool, shortcut input.Key) ItemHandle {
	return m.add(newItem(ItemCheck, text, commandID, checked, shortcut))
}

// AddRadioItem adds an item that is checked exclusively within its group.
// A group is a run of adjacent radio items.
func (m *Menu) AddRadioItem(text string, commandID int, checked bool, shortcut input.Key) ItemHandle {
	h := m.add(newItem(ItemRadio, text, commandID, false, shortcut))
	if h != InvalidItemHandle && checked {
		m.checkRadio(int(h))
	}
	return h
}

// AddSeparator adds a horizontal line.
func (m *Menu) AddSeparator() ItemHandle {
	it := &Item{Type: ItemLine, HotKeyOffset: input.InvalidHotKeyOffset}
	return m.add(it)
}

// AddSubMenu adds an item that opens a new, empty submenu. Use SubMenu to
// fill it.
func (m *Menu) AddSubMenu(text string) ItemHandle {
	it := newItem(ItemSubMenu, text, -1, false, input.KeyNone)
	sub := New(m.ctx.theme)
	sub.ctx.parent = m
	it.SubMenu = sub
	return m.add(it)
}

func (m *Menu) item(h ItemHandle, op string) (*Item, bool) {
	if h < 0 || int(h) >= len(m.ctx.items) {
		logging.Component("menu").WithField("op", op).Warn("invalid item handle %d (menu has %d items)", h, len(m.ctx.items))
		return nil, false
	}
	return m.ctx.items[h], true
}

// SubMenu returns the submenu opened by item h.
func (m *Menu) SubMenu(h ItemHandle) (*Menu, bool) {
	it, ok := m.item(h, "submenu")
	if !ok || it.SubMenu == nil {
		return nil, false
	}
	return it.SubMenu, true
}

// Item returns a copy of item h.
func (m *Menu) Item(h ItemHandle) (Item, bool) {
	it, ok := m.item(h, "item")
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// ItemsCount returns the number of items, separators included.
func (m *Menu) ItemsCount() int { return len(m.ctx.items) }

// SetEnable enables or disables item h.
func (m *Menu) SetEnable(h ItemHandle, enabled bool) bool {
	it, ok := m.item(h, "set-enable")
	if !ok {
		return false
	}
	it.Enabled = enabled
	if !enabled && m.ctx.currentItem == int(h) {
		m.ctx.currentItem = m.firstSelectable()
	}
	return true
}

// IsEnabled reports whether item h is enabled.
func (m *Menu) IsEnabled(h ItemHandle) bool {
	it, ok := m.item(h, "is-enabled")
	return ok && it.Enabled
}

// SetChecked sets the check state of a check or radio item. Checking a
// radio item unchecks the other radios of its group; a radio cannot be
// unchecked directly.
func (m *Menu) SetChecked(h ItemHandle, checked bool) bool {
	it, ok := m.item(h, "set-checked")
	if !ok {
		return false
	}
	switch it.Type {
	case ItemCheck:
		it.Checked = checked
		return true
	case ItemRadio:
		if checked {
			m.checkRadio(int(h))
		}
		return checked
	}
	logging.Component("menu").WithField("op", "set-checked").Warn("item %d is a %s item and cannot be checked", h, it.Type)
	return false
}

// IsChecked reports whether item h carries a check mark.
func (m *Menu) IsChecked(h ItemHandle) bool {
	it, ok := m.item(h, "is-checked")
	return ok && (it.Type == ItemCheck || it.Type == ItemRadio) && it.Checked
}

func (m *Menu) checkRadio(index int) {
	items := m.ctx.items
	start, end := index, index
	for start > 0 && items[start-1].Type == ItemRadio {
		start--
	}
	for end < len(items)-1 && items[end+1].Type == ItemRadio {
		end++
	}
	for i := start; i <= end; i++ {
		items[i].Checked = i == index
	}
}

// IsOpen reports whether the menu is shown.
func (m *Menu) IsOpen() bool { return m.ctx.open }

// Bounds returns the screen rectangle of an open menu.
func (m *Menu) Bounds() layout.Rect {
	return layout.Rect{X: m.ctx.x, Y: m.ctx.y, Width: m.ctx.width, Height: m.ctx.height}
}

// CurrentItem returns the highlighted item, or InvalidItemHandle.
func (m *Menu) CurrentItem() ItemHandle {
	if m.ctx.currentItem < 0 {
		return InvalidItemHandle
	}
	return ItemHandle(m.ctx.currentItem)
}

// FirstVisibleItem returns the item on the first row of the menu.
func (m *Menu) FirstVisibleItem() int { return m.ctx.firstVisible }

// VisibleItemsCount returns how many rows the open menu shows.
func (m *Menu) VisibleItemsCount() int { return m.ctx.visibleCount }

// OpenSubMenu returns the open child menu, or nil.
func (m *Menu) OpenSubMenu() *Menu { return m.ctx.child }

// Innermost returns the deepest open menu of the chain starting at m.
func (m *Menu) Innermost() *Menu {
	cur := m
	for cur.ctx.child != nil {
		cur = cur.ctx.child
	}
	return cur
}

func (m *Menu) measure() {
	c := m.ctx
	c.textWidth, c.shortcutWidth = 0, 0
	for _, it := range c.items {
		c.textWidth = max(c.textWidth, it.textWidth())
		c.shortcutWidth = max(c.shortcutWidth, len(it.shortcutText()))
	}
	// border, space, mark, space, text, [2 spaces, shortcut], space, arrow, space, border
	c.width = 4 + c.textWidth + 4
	if c.shortcutWidth > 0 {
		c.width += c.shortcutWidth + 2
	}
}

func (m *Menu) fit(screenW, screenH int) {
	c := m.ctx
	c.screenW, c.screenH = screenW, screenH
	m.measure()
	c.visibleCount = max(min(len(c.items), screenH-2), 1)
	c.height = c.visibleCount + 2
	c.firstVisible = 0
	c.currentItem = m.firstSelectable()
	c.buttonUp, c.buttonDown = ButtonNormal, ButtonNormal
	c.child = nil
	c.open = true
}

// Show opens the menu with its top-left corner at (x, y), flipping it
// above y when it would run past the bottom of the screen.
func (m *Menu) Show(x, y, screenW, screenH int) {
	if m.ctx.open {
		m.Close()
	}
	m.fit(screenW, screenH)
	c := m.ctx
	c.y, _ = layout.Flip(y, c.height, screenH)
	c.x = layout.Shift(x, c.width, screenW)
}

func (m *Menu) showBeside(parent *Menu, itemRow int) {
	c := m.ctx
	pc := parent.ctx
	m.fit(pc.screenW, pc.screenH)
	c.x, _ = layout.Beside(pc.x, pc.x+pc.width, c.width, pc.screenW)
	// the first item lines up with the parent item; flipped, the last one does
	y, flipped := layout.Flip(itemRow-1, c.height, pc.screenH)
	if flipped {
		y = layout.Shift(itemRow+2-c.height, c.height, pc.screenH)
	}
	c.y = y
}

// Close closes the menu and every open submenu below it.
func (m *Menu) Close() {
	c := m.ctx
	if c.child != nil {
		c.child.Close()
		c.child = nil
	}
	c.open = false
	if c.parent != nil && c.parent.ctx.child == m {
		c.parent.ctx.child = nil
	}
}

// closeChain closes the whole chain from the root menu down.
func (m *Menu) closeChain() {
	r := m.root()
	r.Close()
	if r.ctx.bar != nil {
		r.ctx.bar.onMenuClosed()
	}
}
