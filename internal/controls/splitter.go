package controls

import (
	"fmt"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// SplitterFlags configure a Splitter.
type SplitterFlags uint8

// Splitter flags. The default splitter has a vertical bar with the
// panels left and right of it.
const (
	SplitterVertical   SplitterFlags = 0
	SplitterHorizontal SplitterFlags = 1
)

type splitterMouse uint8

const (
	splitterMouseNone splitterMouse = iota
	splitterOnButton1
	splitterOnButton2
	splitterOnBar
	splitterDrag
)

// SplitterContext is the state of a Splitter.
type SplitterContext struct {
	Context
	flags           SplitterFlags
	secondPanelSize int
	mouse           splitterMouse
	first, second   *Panel
}

// Splitter divides its area between two panels separated by a movable
// bar. The second panel keeps its size when the splitter is resized.
type Splitter struct {
	base
	ctx *SplitterContext
}

// NewSplitter creates a splitter with two empty panels.
func NewSplitter(parent Container, format string, flags SplitterFlags) (*Splitter, error) {
	sp := &Splitter{ctx: &SplitterContext{Context: Context{MinWidth: 3, MinHeight: 3}, flags: flags, secondPanelSize: -1}}
	sp.base.ctx = &sp.ctx.Context
	if err := sp.ctx.init(sp, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	var err error
	if sp.ctx.first, err = NewPanel(sp, "x:0,y:0,w:0,h:0", "", PanelNone); err != nil {
		return nil, fmt.Errorf("splitter first panel: %w", err)
	}
	if sp.ctx.second, err = NewPanel(sp, "x:0,y:0,w:0,h:0", "", PanelNone); err != nil {
		return nil, fmt.Errorf("splitter second panel: %w", err)
	}
	sp.ctx.arrange()
	return sp, nil
}

// State returns the typed context.
func (sp *Splitter) State() *SplitterContext { return sp.ctx }

// FirstPanel returns the left (or top) panel.
func (sp *Splitter) FirstPanel() *Panel { return sp.ctx.first }

// SecondPanel returns the right (or bottom) panel.
func (sp *Splitter) SecondPanel() *Panel { return sp.ctx.second }

func (c *SplitterContext) vertical() bool { return c.flags&SplitterHorizontal == 0 }

// span is the size along the axis the bar moves on.
func (c *SplitterContext) span() int {
	if c.vertical() {
		return c.Width
	}
	return c.Height
}

// Position returns the bar offset, which is also the first panel size.
func (sp *Splitter) Position() int {
	return sp.ctx.span() - sp.ctx.secondPanelSize - 1
}

// SecondPanelSize returns the size of the second panel.
func (sp *Splitter) SecondPanelSize() int { return sp.ctx.secondPanelSize }

// SetSecondPanelSize sets the size of the second panel, clamped to the
// space available.
func (sp *Splitter) SetSecondPanelSize(size int) bool {
	c := sp.ctx
	if c.dead {
		return false
	}
	c.setSecond(size)
	return true
}

// SetPosition moves the bar to pos.
func (sp *Splitter) SetPosition(pos int) bool {
	c := sp.ctx
	if c.dead {
		return false
	}
	c.setSecond(c.span() - pos - 1)
	return true
}

func (c *SplitterContext) setSecond(size int) {
	size = min(max(size, 0), max(c.span()-1, 0))
	if size == c.secondPanelSize {
		return
	}
	c.secondPanelSize = size
	c.arrange()
	c.RaiseEvent(EventSplitterPositionChanged, c.ID)
}

// arrange lays the panels out on both sides of the bar.
func (c *SplitterContext) arrange() {
	if c.first == nil || c.second == nil {
		return
	}
	span := c.span()
	if c.secondPanelSize < 0 {
		c.secondPanelSize = max(span-1, 0) / 2
	}
	c.secondPanelSize = min(c.secondPanelSize, max(span-1, 0))
	pos := max(span-c.secondPanelSize-1, 0)
	var f, s string
	if c.vertical() {
		f = fmt.Sprintf("x:0,y:0,w:%d,h:%d", pos, c.Height)
		s = fmt.Sprintf("x:%d,y:0,w:%d,h:%d", pos+1, c.secondPanelSize, c.Height)
	} else {
		f = fmt.Sprintf("x:0,y:0,w:%d,h:%d", c.Width, pos)
		s = fmt.Sprintf("x:0,y:%d,w:%d,h:%d", pos+1, c.Width, c.secondPanelSize)
	}
	for _, p := range []struct {
		panel  *Panel
		format string
	}{{c.first, f}, {c.second, s}} {
		if err := p.panel.ctx.SetLayout(p.format); err != nil {
			warn("splitter", "arrange", "%v", err)
		}
	}
	c.UpdateClip(c.parentClientClip(), c.screen)
}

// OnAfterResize keeps the second panel size.
func (sp *Splitter) OnAfterResize(int, int) { sp.ctx.arrange() }

// OnKeyEvent moves the bar with Ctrl+arrows.
func (sp *Splitter) OnKeyEvent(k input.Key, _ rune) bool {
	c := sp.ctx
	pos := sp.Position()
	switch {
	case c.vertical() && k == input.KeyLeft|input.KeyCtrl,
		!c.vertical() && k == input.KeyUp|input.KeyCtrl:
		return sp.SetPosition(pos - 1)
	case c.vertical() && k == input.KeyRight|input.KeyCtrl,
		!c.vertical() && k == input.KeyDown|input.KeyCtrl:
		return sp.SetPosition(pos + 1)
	}
	return false
}

// hit classifies a local point on the bar.
func (c *SplitterContext) hit(x, y int) splitterMouse {
	pos := c.span() - c.secondPanelSize - 1
	along, across := y, x
	if !c.vertical() {
		along, across = x, y
	}
	if across != pos {
		return splitterMouseNone
	}
	switch along {
	case 0:
		return splitterOnButton1
	case 1:
		return splitterOnButton2
	}
	return splitterOnBar
}

// OnMousePressed starts a drag on the bar or collapses a panel with the
// bar buttons.
func (sp *Splitter) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := sp.ctx
	if !button.Has(input.MouseLeft) {
		return false
	}
	switch c.hit(x, y) {
	case splitterOnButton1:
		c.mouse = splitterMouseNone
		return sp.SetPosition(0)
	case splitterOnButton2:
		c.mouse = splitterMouseNone
		return sp.SetSecondPanelSize(0)
	case splitterOnBar:
		c.mouse = splitterDrag
		return true
	}
	return false
}

// OnMouseDrag follows the pointer while dragging the bar.
func (sp *Splitter) OnMouseDrag(x, y int, _ input.MouseButton) bool {
	c := sp.ctx
	if c.mouse != splitterDrag {
		return false
	}
	if c.vertical() {
		return sp.SetPosition(x)
	}
	return sp.SetPosition(y)
}

// OnMouseReleased ends a drag.
func (sp *Splitter) OnMouseReleased(int, int, input.MouseButton) bool {
	if sp.ctx.mouse != splitterDrag {
		return false
	}
	sp.ctx.mouse = splitterMouseNone
	return true
}

// OnMouseOver tracks the hovered bar part.
func (sp *Splitter) OnMouseOver(x, y int) bool {
	c := sp.ctx
	if c.mouse == splitterDrag {
		return false
	}
	m := c.hit(x, y)
	if m == c.mouse {
		return false
	}
	c.mouse = m
	return true
}

// OnMouseLeave implements Control.
func (sp *Splitter) OnMouseLeave() bool {
	if sp.ctx.mouse == splitterDrag {
		return false
	}
	sp.ctx.mouse = splitterMouseNone
	return true
}

// Paint draws the bar; the panels paint themselves.
func (sp *Splitter) Paint(r *renderer.Renderer) {
	c := sp.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	col := t.Splitter.Normal
	switch {
	case c.mouse == splitterDrag:
		col = t.Splitter.Clicked
	case c.mouse != splitterMouseNone, c.HasFocus():
		col = t.Splitter.Hover
	}
	pos := sp.Position()
	b1, b2 := renderer.TriangleLeft, renderer.TriangleRight
	if c.vertical() {
		r.DrawVerticalLine(pos, 0, c.Height-1, col, renderer.LineSingle)
	} else {
		r.DrawHorizontalLine(0, pos, c.Width-1, col, renderer.LineSingle)
		b1, b2 = renderer.TriangleUp, renderer.TriangleDown
	}
	btn := func(along int, ch renderer.SpecialChar, on splitterMouse) {
		colors := t.Splitter.Normal
		if c.mouse == on {
			colors = t.Splitter.Hover
		}
		if c.vertical() {
			r.WriteSpecialCharacter(pos, along, ch, colors)
		} else {
			r.WriteSpecialCharacter(along, pos, ch, colors)
		}
	}
	btn(0, b1, splitterOnButton1)
	btn(1, b2, splitterOnButton2)
}
