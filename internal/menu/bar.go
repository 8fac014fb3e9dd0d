package menu

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
	"github.com/dshills/cellkit/internal/theme"
)

type barEntry struct {
	name         []rune
	hotKey       input.Key
	hotKeyOffset int
	menu         *Menu
	x            int
}

func (e *barEntry) width() int {
	return core.StringWidth(string(e.name)) + 2
}

// Bar is a horizontal menu bar. Its menus drop down below it.
type Bar struct {
	entries []*barEntry
	theme   *theme.Config
	owner   Owner

	// screen position of the bar row
	x, y, width int
	screenW     int
	screenH     int

	opened  int
	hovered int
}

// NewBar creates an empty menu bar whose menus report to owner.
func NewBar(t *theme.Config, owner Owner) *Bar {
	return &Bar{theme: t, owner: owner, opened: -1, hovered: -1}
}

// AddMenu adds a top-level menu. name may carry an '&' hot key marker
// that opens the menu together with Alt.
func (b *Bar) AddMenu(name string) *Menu {
	display, hk, off := input.ParseHotKey(name)
	m := New(b.theme)
	m.ctx.owner = b.owner
	m.ctx.bar = b
	b.entries = append(b.entries, &barEntry{name: display, hotKey: hk, hotKeyOffset: off, menu: m})
	b.relayout()
	return m
}

// MenusCount returns the number of menus in the bar.
func (b *Bar) MenusCount() int { return len(b.entries) }

// SetTheme replaces the theme of the bar and its menus.
func (b *Bar) SetTheme(t *theme.Config) {
	b.theme = t
	for _, e := range b.entries {
		e.menu.SetTheme(t)
	}
}

// SetPosition places the bar row on screen. screenW and screenH bound the
// drop-down menus.
func (b *Bar) SetPosition(x, y, width, screenW, screenH int) {
	b.x, b.y, b.width = x, y, width
	b.screenW, b.screenH = screenW, screenH
	b.relayout()
}

func (b *Bar) relayout() {
	pos := b.x + 1
	for _, e := range b.entries {
		e.x = pos
		pos += e.width()
	}
}

// IsOpen reports whether one of the bar's menus is open.
func (b *Bar) IsOpen() bool { return b.opened >= 0 }

// Opened returns the open menu, or nil.
func (b *Bar) Opened() *Menu {
	if b.opened < 0 {
		return nil
	}
	return b.entries[b.opened].menu
}

// Open opens menu index.
func (b *Bar) Open(index int) bool {
	if index < 0 || index >= len(b.entries) {
		return false
	}
	if b.opened >= 0 && b.opened != index {
		b.entries[b.opened].menu.Close()
	}
	e := b.entries[index]
	b.opened = index
	e.menu.Show(e.x, b.y+1, b.screenW, b.screenH)
	return true
}

// Close closes the open menu.
func (b *Bar) Close() {
	if b.opened >= 0 {
		m := b.entries[b.opened].menu
		b.opened = -1
		m.Close()
	}
}

func (b *Bar) onMenuClosed() {
	b.opened = -1
}

// OnKeyEvent handles Alt+hot key and F10 while closed, and navigation
// between menus while open.
func (b *Bar) OnKeyEvent(k input.Key) bool {
	if b.opened < 0 {
		if k == input.KeyF10 && len(b.entries) > 0 {
			return b.Open(0)
		}
		if k.Modifiers() == input.KeyAlt {
			for i, e := range b.entries {
				if e.hotKey != input.KeyNone && e.hotKey == k.Code() {
					return b.Open(i)
				}
			}
		}
		return false
	}

	m := b.entries[b.opened].menu
	inner := m.Innermost()
	n := len(b.entries)
	switch {
	case k == input.KeyLeft && inner == m:
		return b.Open((b.opened - 1 + n) % n)
	case k == input.KeyRight && !inner.currentIsSubMenu():
		return b.Open((b.opened + 1) % n)
	case k == input.KeyF10:
		b.Close()
		return true
	}
	if k.Modifiers() == input.KeyAlt {
		for i, e := range b.entries {
			if e.hotKey == k.Code() && e.hotKey != input.KeyNone {
				return b.Open(i)
			}
		}
	}
	return m.OnKeyEvent(k)
}

func (m *Menu) currentIsSubMenu() bool {
	c := m.ctx
	return c.currentItem >= 0 && c.items[c.currentItem].Type == ItemSubMenu
}

// ProcessShortcut runs the item bound to k in any of the bar's menus.
func (b *Bar) ProcessShortcut(k input.Key) bool {
	for _, e := range b.entries {
		if e.menu.ProcessShortcut(k) {
			return true
		}
	}
	return false
}

func (b *Bar) entryAt(x, y int) int {
	if y != b.y {
		return -1
	}
	for i, e := range b.entries {
		if x >= e.x && x < e.x+e.width() {
			return i
		}
	}
	return -1
}

// HitTest reports whether (x, y) is on the bar row or the open menu.
func (b *Bar) HitTest(x, y int) bool {
	if y == b.y && x >= b.x && x < b.x+b.width {
		return true
	}
	return b.opened >= 0 && b.entries[b.opened].menu.HitTest(x, y)
}

// OnMousePressed opens or closes menus from the bar row and forwards
// presses on an open menu. It reports whether the press was used.
func (b *Bar) OnMousePressed(x, y int) bool {
	if i := b.entryAt(x, y); i >= 0 {
		if i == b.opened {
			b.Close()
		} else {
			b.Open(i)
		}
		return true
	}
	if b.opened >= 0 {
		return b.entries[b.opened].menu.OnMousePressed(x, y) != PressNone
	}
	return false
}

// OnMouseMove tracks the hovered entry; while a menu is open, moving over
// another entry opens that one instead.
func (b *Bar) OnMouseMove(x, y int) bool {
	i := b.entryAt(x, y)
	changed := i != b.hovered
	b.hovered = i
	if b.opened >= 0 {
		if i >= 0 && i != b.opened {
			b.Open(i)
			return true
		}
		return b.entries[b.opened].menu.OnMouseMove(x, y) || changed
	}
	return changed
}

// OnMouseWheel scrolls the open menu.
func (b *Bar) OnMouseWheel(x, y int, dir input.WheelDirection) bool {
	if b.opened < 0 {
		return false
	}
	return b.entries[b.opened].menu.OnMouseWheel(x, y, dir)
}

// Paint draws the bar row. Open menus are painted separately with
// PaintMenus so they land on top of everything else.
func (b *Bar) Paint(r *renderer.Renderer, focused bool) {
	sw, sh := r.ScreenSize()
	r.SetClip(renderer.NewClip(0, 0, sw, sh).Child(b.x, b.y, b.width, 1))
	cb := &b.theme.Window.ControlBar.Item
	for i, e := range b.entries {
		colors := cb.Normal
		switch {
		case i == b.opened:
			colors = cb.Pressed
		case i == b.hovered:
			colors = cb.Hover
		case focused:
			colors = cb.Focused
		}
		x := e.x - b.x
		r.FillHorizontalLineSize(x, 0, e.width(), ' ', colors.Text)
		r.WriteText(string(e.name), renderer.WriteTextParams{
			Flags:          renderer.SingleLine | renderer.HighlightHotKey,
			X:              x + 1,
			Color:          colors.Text,
			HotKeyColor:    colors.HotKey,
			HotKeyPosition: e.hotKeyOffset,
		})
	}
	r.ResetClip()
}

// PaintMenus draws the open menu chain.
func (b *Bar) PaintMenus(r *renderer.Renderer) {
	if b.opened >= 0 {
		b.entries[b.opened].menu.Paint(r)
	}
}
