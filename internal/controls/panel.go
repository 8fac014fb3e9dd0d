package controls

import (
	"github.com/dshills/cellkit/internal/renderer"
)

// PanelFlags configure a Panel.
type PanelFlags uint8

// Panel flags.
const (
	PanelNone   PanelFlags = 0
	PanelBorder PanelFlags = 1
)

// Panel groups controls, optionally inside a titled border.
type Panel struct {
	base
	ctx   *Context
	flags PanelFlags
}

// NewPanel creates a panel. With PanelBorder the children are laid out
// inside the frame.
func NewPanel(parent Container, format, title string, flags PanelFlags) (*Panel, error) {
	p := &Panel{ctx: &Context{}, flags: flags}
	p.base.ctx = p.ctx
	p.ctx.setPlainText(title)
	if flags&PanelBorder != 0 {
		p.ctx.Margins = Margins{Left: 1, Top: 1, Right: 1, Bottom: 1}
	}
	if err := p.ctx.init(p, parent, format, FlagEnabled|FlagVisible); err != nil {
		return nil, err
	}
	return p, nil
}

// Paint implements Control.
func (p *Panel) Paint(r *renderer.Renderer) {
	c := p.ctx
	cfg := c.Theme
	if cfg == nil {
		return
	}
	r.Clear(' ', cfg.Text.Normal)
	if p.flags&PanelBorder == 0 {
		return
	}
	col := cfg.Border.Get(c.IsEnabled(), false, false)
	r.DrawRectSize(0, 0, c.Width, c.Height, col, renderer.LineSingle)
	if len(c.Text) > 0 && c.Width > 4 {
		r.WriteText(" "+string(c.Text)+" ", renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     1,
			Width: c.Width - 2,
			Color: cfg.Text.Normal,
		})
	}
}
