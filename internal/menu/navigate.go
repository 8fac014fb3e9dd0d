package menu

import (
	"github.com/dshills/cellkit/internal/input"
)

func (m *Menu) firstSelectable() int {
	for i, it := range m.ctx.items {
		if it.selectable() {
			return i
		}
	}
	return -1
}

func (m *Menu) lastSelectable() int {
	for i := len(m.ctx.items) - 1; i >= 0; i-- {
		if m.ctx.items[i].selectable() {
			return i
		}
	}
	return -1
}

// step moves from index by dir (+1/-1) to the next selectable item,
// wrapping around. It returns index when nothing else is selectable.
func (m *Menu) step(index, dir int) int {
	n := len(m.ctx.items)
	if n == 0 {
		return -1
	}
	i := index
	for k := 0; k < n; k++ {
		i = (i + dir + n) % n
		if m.ctx.items[i].selectable() {
			return i
		}
	}
	return index
}

func (m *Menu) updateFirstVisible() {
	c := m.ctx
	if c.currentItem < 0 {
		return
	}
	if c.currentItem < c.firstVisible {
		c.firstVisible = c.currentItem
	}
	if c.currentItem >= c.firstVisible+c.visibleCount {
		c.firstVisible = c.currentItem - c.visibleCount + 1
	}
	c.firstVisible = max(min(c.firstVisible, len(c.items)-c.visibleCount), 0)
}

func (m *Menu) moveCurrentItemTo(k input.Key) {
	c := m.ctx
	if c.currentItem < 0 {
		c.currentItem = m.firstSelectable()
		m.updateFirstVisible()
		return
	}
	switch k {
	case input.KeyUp:
		c.currentItem = m.step(c.currentItem, -1)
	case input.KeyDown:
		c.currentItem = m.step(c.currentItem, 1)
	case input.KeyHome:
		c.currentItem = m.firstSelectable()
	case input.KeyEnd:
		c.currentItem = m.lastSelectable()
	case input.KeyPageUp:
		target := max(c.currentItem-c.visibleCount, 0)
		for target < c.currentItem && !c.items[target].selectable() {
			target++
		}
		c.currentItem = target
	case input.KeyPageDown:
		target := min(c.currentItem+c.visibleCount, len(c.items)-1)
		for target > c.currentItem && !c.items[target].selectable() {
			target--
		}
		c.currentItem = target
	}
	m.updateFirstVisible()
}

// SetCurrentItem highlights item h when it is selectable.
func (m *Menu) SetCurrentItem(h ItemHandle) bool {
	it, ok := m.item(h, "set-current")
	if !ok || !it.selectable() {
		return false
	}
	m.ctx.currentItem = int(h)
	m.updateFirstVisible()
	return true
}

// runItemAction activates item index: submenus open, everything else
// closes the chain and raises its command.
func (m *Menu) runItemAction(index int) {
	c := m.ctx
	if index < 0 || index >= len(c.items) {
		return
	}
	it := c.items[index]
	if !it.selectable() {
		return
	}
	c.currentItem = index
	m.updateFirstVisible()
	switch it.Type {
	case ItemSubMenu:
		m.openChild(index)
		return
	case ItemCheck:
		it.Checked = !it.Checked
	case ItemRadio:
		m.checkRadio(index)
	}
	owner := m.ownerOf()
	m.closeChain()
	if owner != nil {
		owner.OnCommand(it.CommandID)
	}
}

func (m *Menu) openChild(index int) {
	c := m.ctx
	sub := c.items[index].SubMenu
	if sub == nil {
		return
	}
	if c.child != nil && c.child != sub {
		c.child.Close()
	}
	row := c.y + 1 + index - c.firstVisible
	sub.showBeside(m, row)
	c.child = sub
}

// OnKeyEvent handles a key for the open chain. An open menu is modal, so
// every key is consumed.
func (m *Menu) OnKeyEvent(k input.Key) bool {
	if !m.ctx.open {
		return false
	}
	if m.ctx.child != nil {
		return m.ctx.child.OnKeyEvent(k)
	}
	c := m.ctx
	switch k {
	case input.KeyUp, input.KeyDown, input.KeyHome, input.KeyEnd, input.KeyPageUp, input.KeyPageDown:
		m.moveCurrentItemTo(k)
		return true
	case input.KeyEnter, input.KeySpace:
		m.runItemAction(c.currentItem)
		return true
	case input.KeyRight:
		if c.currentItem >= 0 && c.items[c.currentItem].Type == ItemSubMenu {
			m.runItemAction(c.currentItem)
		}
		return true
	case input.KeyLeft, input.KeyEscape:
		if c.parent == nil && k == input.KeyLeft {
			return true
		}
		if c.parent == nil {
			m.closeChain()
		} else {
			m.Close()
		}
		return true
	}

	// hot keys work with Alt or Shift but not Ctrl
	code := k.Code()
	if !k.Has(input.KeyCtrl) && code != input.KeyNone {
		for i, it := range c.items {
			if it.HotKey == code && it.selectable() {
				m.runItemAction(i)
				return true
			}
		}
	}
	m.root().processShortcut(k)
	return true
}

// ProcessShortcut runs the item whose shortcut is k, searching this menu
// and its submenus. It works whether or not the menu is open.
func (m *Menu) ProcessShortcut(k input.Key) bool {
	return m.processShortcut(k)
}

func (m *Menu) processShortcut(k input.Key) bool {
	if k == input.KeyNone {
		return false
	}
	for i, it := range m.ctx.items {
		if it.Shortcut == k && it.Enabled && it.Type != ItemLine && it.Type != ItemSubMenu {
			m.runItemAction(i)
			return true
		}
		if it.Type == ItemSubMenu && it.Enabled && it.SubMenu != nil && it.SubMenu.processShortcut(k) {
			return true
		}
	}
	return false
}

type mousePosition struct {
	itemIndex    int
	isOnMenu     bool
	isOnUpButton bool
	isOnDown     bool
}

func (m *Menu) mousePosition(x, y int) mousePosition {
	c := m.ctx
	mp := mousePosition{itemIndex: -1}
	if !c.open || x < c.x || x >= c.x+c.width || y < c.y || y >= c.y+c.height {
		return mp
	}
	mp.isOnMenu = true
	scrolls := c.visibleCount < len(c.items)
	arrowX := c.x + c.width - 3
	switch {
	case y == c.y:
		mp.isOnUpButton = scrolls && x == arrowX
	case y == c.y+c.height-1:
		mp.isOnDown = scrolls && x == arrowX
	case x > c.x && x < c.x+c.width-1:
		idx := c.firstVisible + y - c.y - 1
		if idx < len(c.items) {
			mp.itemIndex = idx
		}
	}
	return mp
}

// HitTest reports whether (x, y) is on the menu or an open submenu.
func (m *Menu) HitTest(x, y int) bool {
	for cur := m; cur != nil; cur = cur.ctx.child {
		if cur.mousePosition(x, y).isOnMenu {
			return true
		}
	}
	return false
}

// owning returns the deepest menu of the chain under (x, y).
func (m *Menu) owning(x, y int) *Menu {
	var hit *Menu
	for cur := m; cur != nil; cur = cur.ctx.child {
		if cur.mousePosition(x, y).isOnMenu {
			hit = cur
		}
	}
	return hit
}

// OnMouseMove highlights the item under the pointer and reports whether
// a repaint is needed.
func (m *Menu) OnMouseMove(x, y int) bool {
	target := m.owning(x, y)
	changed := false
	for cur := m; cur != nil; cur = cur.ctx.child {
		up, down := ButtonNormal, ButtonNormal
		if cur == target {
			mp := cur.mousePosition(x, y)
			if mp.isOnUpButton {
				up = ButtonHovered
			}
			if mp.isOnDown {
				down = ButtonHovered
			}
			if mp.itemIndex >= 0 && cur.ctx.items[mp.itemIndex].selectable() && cur.ctx.currentItem != mp.itemIndex {
				cur.ctx.currentItem = mp.itemIndex
				changed = true
			}
		}
		if cur.ctx.buttonUp != up || cur.ctx.buttonDown != down {
			cur.ctx.buttonUp, cur.ctx.buttonDown = up, down
			changed = true
		}
	}
	return changed
}

// PressResult tells the caller what a mouse press did.
type PressResult uint8

// Press results.
const (
	// PressNone: the press was outside the chain, which is now closed.
	PressNone PressResult = iota
	// PressRepaint: the press changed the menu.
	PressRepaint
	// PressActivate: an item was activated.
	PressActivate
)

// OnMousePressed handles a click. A click outside every open menu closes
// the chain.
func (m *Menu) OnMousePressed(x, y int) PressResult {
	target := m.owning(x, y)
	if target == nil {
		m.closeChain()
		return PressNone
	}
	mp := target.mousePosition(x, y)
	switch {
	case mp.isOnUpButton:
		target.ctx.buttonUp = ButtonPressed
		target.scroll(-1)
		return PressRepaint
	case mp.isOnDown:
		target.ctx.buttonDown = ButtonPressed
		target.scroll(1)
		return PressRepaint
	case mp.itemIndex >= 0 && target.ctx.items[mp.itemIndex].selectable():
		target.runItemAction(mp.itemIndex)
		return PressActivate
	}
	return PressRepaint
}

func (m *Menu) scroll(delta int) {
	c := m.ctx
	c.firstVisible = max(min(c.firstVisible+delta, len(c.items)-c.visibleCount), 0)
	if c.currentItem >= 0 && (c.currentItem < c.firstVisible || c.currentItem >= c.firstVisible+c.visibleCount) {
		for i := c.firstVisible; i < c.firstVisible+c.visibleCount; i++ {
			if c.items[i].selectable() {
				c.currentItem = i
				break
			}
		}
	}
}

// OnMouseWheel scrolls the menu under the pointer.
func (m *Menu) OnMouseWheel(x, y int, dir input.WheelDirection) bool {
	target := m.owning(x, y)
	if target == nil {
		target = m.Innermost()
	}
	switch dir {
	case input.WheelUp:
		target.moveCurrentItemTo(input.KeyUp)
	case input.WheelDown:
		target.moveCurrentItemTo(input.KeyDown)
	default:
		return false
	}
	return true
}
