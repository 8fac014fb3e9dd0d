package controls

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// Button raises EventCommand with its command ID when pressed.
type Button struct {
	base
	ctx       *Context
	CommandID int
	pressed   bool
}

// NewButton creates a push button.
func NewButton(parent Container, format, text string, commandID int) (*Button, error) {
	b := &Button{ctx: &Context{MinHeight: 1, MinWidth: 3}, CommandID: commandID}
	b.base.ctx = b.ctx
	b.ctx.SetText(text)
	if err := b.ctx.init(b, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return b, nil
}

// Press raises the button's command.
func (b *Button) Press() bool {
	if b.ctx.dead || !b.ctx.IsEnabled() {
		return false
	}
	b.ctx.RaiseEvent(EventCommand, b.CommandID)
	return true
}

// OnHotKey presses the button.
func (b *Button) OnHotKey() {
	b.ctx.SetFocus()
	b.Press()
}

// OnKeyEvent implements Control.
func (b *Button) OnKeyEvent(k input.Key, _ rune) bool {
	switch k {
	case input.KeyEnter, input.KeySpace:
		return b.Press()
	}
	return false
}

// OnMousePressed implements Control.
func (b *Button) OnMousePressed(_, _ int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	b.pressed = true
	return true
}

// OnMouseReleased presses the button when released over it.
func (b *Button) OnMouseReleased(x, y int, _ input.MouseButton) bool {
	if !b.pressed {
		return false
	}
	b.pressed = false
	if x >= 0 && y >= 0 && x < b.ctx.Width && y < b.ctx.Height {
		b.Press()
	}
	return true
}

// OnMouseEnter implements Control.
func (b *Button) OnMouseEnter() bool { return true }

// OnMouseLeave implements Control.
func (b *Button) OnMouseLeave() bool { return true }

// Paint implements Control.
func (b *Button) Paint(r *renderer.Renderer) {
	c := b.ctx
	if c.Theme == nil {
		return
	}
	cfg := &c.Theme.Button
	text := cfg.Text.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	hot := cfg.HotKey.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	if b.pressed {
		text, hot = cfg.Text.PressedOrSelected, cfg.HotKey.PressedOrSelected
	}
	r.FillRectSize(0, 0, c.Width, c.Height, ' ', text)
	p := renderer.WriteTextParams{
		Flags:          renderer.SingleLine | renderer.ClipToWidth,
		Y:              c.Height / 2,
		Width:          c.Width,
		Color:          text,
		HotKeyColor:    hot,
		HotKeyPosition: c.HotKeyOffset,
		Align:          renderer.AlignCenter,
	}
	if c.HotKeyOffset >= 0 {
		p.Flags |= renderer.HighlightHotKey
	}
	r.WriteText(string(c.Text), p)
}
