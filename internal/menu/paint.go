package menu

import (
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
	"github.com/dshills/cellkit/internal/theme"
)

func (b ButtonState) color(s theme.State, enabled bool) core.ColorPair {
	switch {
	case !enabled:
		return s.Inactive
	case b == ButtonHovered:
		return s.Hovered
	case b == ButtonPressed:
		return s.PressedOrSelected
	}
	return s.Normal
}

// Paint draws the open chain in screen coordinates. Menus that have an
// open submenu use the parent menu colors.
func (m *Menu) Paint(r *renderer.Renderer) {
	if !m.ctx.open {
		return
	}
	cfg := &m.ctx.theme.Menu
	if m.ctx.child != nil {
		cfg = &m.ctx.theme.ParentMenu
	}
	m.paint(r, cfg)
	if m.ctx.child != nil {
		m.ctx.child.Paint(r)
	}
	r.ResetClip()
}

func (m *Menu) paint(r *renderer.Renderer, cfg *theme.MenuColors) {
	c := m.ctx
	sw, sh := r.ScreenSize()
	r.SetClip(renderer.NewClip(0, 0, sw, sh).Child(c.x, c.y, c.width, c.height))

	r.Clear(' ', cfg.Text.Normal)
	r.DrawRect(0, 0, c.width-1, c.height-1, cfg.Text.Normal, renderer.LineSingle)

	if c.visibleCount < len(c.items) {
		r.WriteSpecialCharacter(c.width-3, 0, renderer.TriangleUp, c.buttonUp.color(cfg.ScrollButtons, c.firstVisible > 0))
		r.WriteSpecialCharacter(c.width-3, c.height-1, renderer.TriangleDown,
			c.buttonDown.color(cfg.ScrollButtons, c.firstVisible+c.visibleCount < len(c.items)))
	}

	for row := 0; row < c.visibleCount; row++ {
		idx := c.firstVisible + row
		if idx >= len(c.items) {
			break
		}
		m.paintItem(r, cfg, c.items[idx], 1+row, idx == c.currentItem)
	}
}

func (m *Menu) paintItem(r *renderer.Renderer, cfg *theme.MenuColors, it *Item, y int, current bool) {
	c := m.ctx
	if it.Type == ItemLine {
		r.WriteSpecialCharacter(0, y, renderer.BoxMidleLeft, cfg.Text.Normal)
		r.DrawHorizontalLine(1, y, c.width-2, cfg.Text.Normal, renderer.LineSingle)
		r.WriteSpecialCharacter(c.width-1, y, renderer.BoxMidleRight, cfg.Text.Normal)
		return
	}

	text, hot, shortcut, symbol := cfg.Text.Normal, cfg.HotKey.Normal, cfg.ShortCut.Normal, cfg.Symbol.Normal
	switch {
	case !it.Enabled:
		text, hot, shortcut, symbol = cfg.Text.Inactive, cfg.HotKey.Inactive, cfg.ShortCut.Inactive, cfg.Symbol.Inactive
	case current:
		text, hot, shortcut, symbol = cfg.Text.Hovered, cfg.HotKey.Hovered, cfg.ShortCut.Hovered, cfg.Symbol.Hovered
		r.FillHorizontalLine(1, y, c.width-2, ' ', text)
	}

	switch it.Type {
	case ItemCheck:
		if it.Checked {
			r.WriteSpecialCharacter(2, y, renderer.CheckMark, symbol)
		}
	case ItemRadio:
		mark := renderer.CircleEmpty
		if it.Checked {
			mark = renderer.CircleFilled
		}
		r.WriteSpecialCharacter(2, y, mark, symbol)
	case ItemSubMenu:
		r.WriteSpecialCharacter(c.width-3, y, renderer.TriangleRight, symbol)
	}

	flags := renderer.SingleLine | renderer.ClipToWidth
	if it.HotKeyOffset >= 0 {
		flags |= renderer.HighlightHotKey
	}
	r.WriteText(string(it.Text), renderer.WriteTextParams{
		Flags:          flags,
		X:              4,
		Y:              y,
		Width:          c.textWidth,
		Color:          text,
		HotKeyColor:    hot,
		HotKeyPosition: it.HotKeyOffset,
	})
	if sc := it.shortcutText(); sc != "" {
		r.WriteSingleLineText(c.width-4-len(sc), y, sc, shortcut)
	}
}
