package controls

import (
	"github.com/dshills/cellkit/internal/renderer"
)

// Label shows static, word-wrapped text.
type Label struct {
	base
	ctx   *Context
	Align renderer.TextAlignment
}

// NewLabel creates a label. An '&' in text marks the hot key, which
// focuses the next control after the label.
func NewLabel(parent Container, format, text string) (*Label, error) {
	l := &Label{ctx: &Context{}}
	l.base.ctx = l.ctx
	l.ctx.SetText(text)
	if err := l.ctx.init(l, parent, format, FlagEnabled|FlagVisible); err != nil {
		return nil, err
	}
	return l, nil
}

// OnHotKey focuses the control that follows the label.
func (l *Label) OnHotKey() {
	p := l.ctx.Parent
	if p == nil {
		return
	}
	siblings := p.Base().children
	for i, ch := range siblings {
		if ch != l {
			continue
		}
		for _, next := range siblings[i+1:] {
			if next.Base().SetFocus() {
				return
			}
		}
	}
}

// Paint implements Control.
func (l *Label) Paint(r *renderer.Renderer) {
	c := l.ctx
	if c.Theme == nil {
		return
	}
	color := c.Theme.Text.Normal
	if !c.IsEnabled() {
		color = c.Theme.Text.Inactive
	}
	p := renderer.WriteTextParams{
		Flags:          renderer.MultipleLines | renderer.WordWrap,
		Width:          c.Width,
		Height:         c.Height,
		Color:          color,
		HotKeyColor:    c.Theme.Text.HotKey,
		HotKeyPosition: c.HotKeyOffset,
		Align:          l.Align,
	}
	if c.Height <= 1 {
		p.Flags = renderer.SingleLine | renderer.ClipToWidth
	}
	if c.HotKeyOffset >= 0 {
		p.Flags |= renderer.HighlightHotKey
	}
	r.WriteText(string(c.Text), p)
}
