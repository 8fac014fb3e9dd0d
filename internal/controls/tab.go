package controls

import (
	"slices"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
)

// TabFlags select where the page headers are drawn.
type TabFlags uint8

// Tab header placements.
const (
	TabsOnTop TabFlags = iota
	TabsOnBottom
	TabsOnLeft
	TabsAsList
)

const defaultTabTitleSize = 12

// TabContext is the state of a Tab.
type TabContext struct {
	Context
	flags        TabFlags
	titleSize    int
	hoveredTab   int
	currentIndex int
	pages        []*TabPage
}

// Tab shows one of its pages at a time, with a header per page.
type Tab struct {
	base
	ctx *TabContext
}

// TabPage is a container shown inside a Tab.
type TabPage struct {
	base
	ctx *Context
	tab *Tab
}

// NewTab creates a tab control.
func NewTab(parent Container, format string, flags TabFlags) (*Tab, error) {
	t := &Tab{ctx: &TabContext{
		Context:      Context{MinWidth: 10, MinHeight: 3},
		flags:        flags,
		titleSize:    defaultTabTitleSize,
		hoveredTab:   -1,
		currentIndex: -1,
	}}
	t.base.ctx = &t.ctx.Context
	t.ctx.updateMargins()
	if err := t.ctx.init(t, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTabPage adds a page titled caption to tab. An '&' in the caption
// marks the hot key that selects the page.
func NewTabPage(tab *Tab, caption string) (*TabPage, error) {
	if tab == nil || tab.ctx.dead {
		return nil, ErrDestroyed
	}
	p := &TabPage{ctx: &Context{}, tab: tab}
	p.base.ctx = p.ctx
	tc := tab.ctx
	tc.pages = append(tc.pages, p)
	if err := p.ctx.init(p, tab, "d:c", FlagEnabled); err != nil {
		tc.pages = tc.pages[:len(tc.pages)-1]
		return nil, err
	}
	p.ctx.SetText(caption)
	if tc.currentIndex < 0 {
		tab.SetCurrentTab(0)
	} else {
		tc.updateMargins()
		tc.relayoutChildren()
	}
	return p, nil
}

// State returns the typed context.
func (t *Tab) State() *TabContext { return t.ctx }

// TabsCount returns the number of pages.
func (t *Tab) TabsCount() int { return len(t.ctx.pages) }

// CurrentTab returns the index of the visible page, -1 when empty.
func (t *Tab) CurrentTab() int { return t.ctx.currentIndex }

// CurrentPage returns the visible page.
func (t *Tab) CurrentPage() *TabPage {
	c := t.ctx
	if c.currentIndex < 0 {
		return nil
	}
	return c.pages[c.currentIndex]
}

// Page returns page i.
func (t *Tab) Page(i int) (*TabPage, bool) {
	if i < 0 || i >= len(t.ctx.pages) {
		return nil, false
	}
	return t.ctx.pages[i], true
}

// SetTabWidth sets the header width used by the top, bottom and left
// placements.
func (t *Tab) SetTabWidth(width int) bool {
	c := t.ctx
	if c.dead || width < 3 {
		return false
	}
	c.titleSize = width
	c.updateMargins()
	c.relayoutChildren()
	return true
}

// SetCurrentTab shows page i.
func (t *Tab) SetCurrentTab(i int) bool {
	c := t.ctx
	if c.dead {
		return false
	}
	if i < 0 || i >= len(c.pages) {
		warn("tab", "set-current", "invalid page %d of %d", i, len(c.pages))
		return false
	}
	if i == c.currentIndex {
		return true
	}
	hadFocus := c.focused
	for j, p := range c.pages {
		p.ctx.SetVisible(j == i)
	}
	c.currentIndex = i
	c.updateMargins()
	c.relayoutChildren()
	c.UpdateClip(c.parentClientClip(), c.screen)
	// the tab keeps the focus path pointing at the visible page
	c.current = slices.Index(c.children, Control(c.pages[i]))
	if hadFocus {
		refreshFocus(Root(t))
	}
	c.RaiseEvent(EventTabChanged, c.ID)
	return true
}

func (c *TabContext) updateMargins() {
	n := len(c.pages)
	switch c.flags {
	case TabsOnTop:
		c.Margins = Margins{Top: 1}
	case TabsOnBottom:
		c.Margins = Margins{Bottom: 1}
	case TabsOnLeft:
		c.Margins = Margins{Left: c.titleSize + 1}
	case TabsAsList:
		cur := max(c.currentIndex, 0)
		c.Margins = Margins{Top: min(cur+1, n), Bottom: max(n-cur-1, 0)}
	}
}

// headerAt returns the page whose header is at the local point.
func (c *TabContext) headerAt(x, y int) int {
	n := len(c.pages)
	switch c.flags {
	case TabsOnTop, TabsOnBottom:
		row := 0
		if c.flags == TabsOnBottom {
			row = c.Height - 1
		}
		if y != row || x < 0 {
			return -1
		}
		i := x / (c.titleSize + 1)
		if i < n && x%(c.titleSize+1) < c.titleSize {
			return i
		}
	case TabsOnLeft:
		if x >= 0 && x < c.titleSize && y >= 0 && y < n {
			return y
		}
	case TabsAsList:
		for i := 0; i < n; i++ {
			if c.listRow(i) == y {
				return i
			}
		}
	}
	return -1
}

// listRow is the row of page i's header in list mode.
func (c *TabContext) listRow(i int) int {
	if i <= c.currentIndex {
		return i
	}
	return c.Height - (len(c.pages) - i)
}

// OnKeyEvent switches pages with Ctrl+Tab and Ctrl+Shift+Tab, and with
// the pages' Alt hot keys.
func (t *Tab) OnKeyEvent(k input.Key, _ rune) bool {
	c := t.ctx
	n := len(c.pages)
	if n == 0 {
		return false
	}
	switch k {
	case input.KeyTab | input.KeyCtrl:
		return t.SetCurrentTab((c.currentIndex + 1) % n)
	case input.KeyTab | input.KeyCtrl | input.KeyShift:
		return t.SetCurrentTab((c.currentIndex - 1 + n) % n)
	}
	if k.Modifiers() == input.KeyAlt {
		for i, p := range c.pages {
			if p.ctx.HotKey == k.Code() {
				t.SetCurrentTab(i)
				return true
			}
		}
	}
	return false
}

// OnMousePressed selects a page by its header.
func (t *Tab) OnMousePressed(x, y int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	i := t.ctx.headerAt(x, y)
	if i < 0 {
		return false
	}
	t.SetCurrentTab(i)
	return true
}

// OnMouseOver tracks the hovered header.
func (t *Tab) OnMouseOver(x, y int) bool {
	i := t.ctx.headerAt(x, y)
	if i == t.ctx.hoveredTab {
		return false
	}
	t.ctx.hoveredTab = i
	return true
}

// OnMouseLeave implements Control.
func (t *Tab) OnMouseLeave() bool {
	t.ctx.hoveredTab = -1
	return true
}

// Paint draws the headers; the visible page paints itself.
func (t *Tab) Paint(r *renderer.Renderer) {
	c := t.ctx
	if c.Theme == nil {
		return
	}
	th := c.Theme
	r.Clear(' ', core.Pair(th.Text.Normal.Foreground, th.Background.Tab))
	for i, p := range c.pages {
		st, hot := th.Tab.Text, th.Tab.HotKey
		if c.flags == TabsAsList {
			st, hot = th.Tab.ListText, th.Tab.ListHotKey
		}
		col, hk := st.Normal, hot.Normal
		switch {
		case !c.IsEnabled():
			col, hk = st.Inactive, hot.Inactive
		case i == c.currentIndex:
			col, hk = st.PressedOrSelected, hot.PressedOrSelected
			if c.HasFocus() {
				col, hk = st.Focused, hot.Focused
			}
		case i == c.hoveredTab:
			col, hk = st.Hovered, hot.Hovered
		}
		var x, y, w int
		align := renderer.AlignCenter
		switch c.flags {
		case TabsOnTop, TabsOnBottom:
			x, w = i*(c.titleSize+1), c.titleSize
			if c.flags == TabsOnBottom {
				y = c.Height - 1
			}
		case TabsOnLeft:
			y, w = i, c.titleSize
			align = renderer.AlignLeft
		case TabsAsList:
			y, w = c.listRow(i), c.Width
			align = renderer.AlignLeft
		}
		r.FillHorizontalLineSize(x, y, w, ' ', col)
		params := renderer.WriteTextParams{
			Flags:          renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:              x + 1,
			Y:              y,
			Width:          w - 2,
			Color:          col,
			HotKeyColor:    hk,
			HotKeyPosition: p.ctx.HotKeyOffset,
			Align:          align,
		}
		if p.ctx.HotKeyOffset >= 0 {
			params.Flags |= renderer.HighlightHotKey
		}
		r.WriteText(string(p.ctx.Text), params)
	}
}

// Tab returns the tab the page belongs to.
func (p *TabPage) Tab() *Tab { return p.tab }

// OnHotKey shows the page.
func (p *TabPage) OnHotKey() {
	if i := slices.Index(p.tab.ctx.pages, p); i >= 0 {
		p.tab.SetCurrentTab(i)
	}
}

// Paint fills the page background.
func (p *TabPage) Paint(r *renderer.Renderer) {
	c := p.ctx
	if c.Theme == nil {
		return
	}
	r.Clear(' ', core.Pair(c.Theme.Text.Normal.Foreground, c.Theme.Background.Tab))
}
