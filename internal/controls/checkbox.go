package controls

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// CheckBox toggles FlagChecked and raises EventCheckedStatusChanged.
type CheckBox struct {
	base
	ctx *Context
}

// NewCheckBox creates a check box.
func NewCheckBox(parent Container, format, text string, id int) (*CheckBox, error) {
	cb := &CheckBox{ctx: &Context{MinHeight: 1, MinWidth: 5, ID: id}}
	cb.base.ctx = cb.ctx
	cb.ctx.SetText(text)
	if err := cb.ctx.init(cb, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return cb, nil
}

// IsChecked reports the check state.
func (cb *CheckBox) IsChecked() bool { return cb.ctx.IsChecked() }

// Toggle flips the check state.
func (cb *CheckBox) Toggle() bool {
	if cb.ctx.dead || !cb.ctx.IsEnabled() {
		return false
	}
	cb.ctx.SetChecked(!cb.ctx.IsChecked())
	cb.ctx.RaiseEvent(EventCheckedStatusChanged, cb.ctx.ID)
	return true
}

// OnHotKey toggles the box.
func (cb *CheckBox) OnHotKey() {
	cb.ctx.SetFocus()
	cb.Toggle()
}

// OnKeyEvent implements Control.
func (cb *CheckBox) OnKeyEvent(k input.Key, _ rune) bool {
	if k == input.KeySpace {
		return cb.Toggle()
	}
	return false
}

// OnMouseReleased implements Control.
func (cb *CheckBox) OnMouseReleased(x, y int, button input.MouseButton) bool {
	if x < 0 || y < 0 || x >= cb.ctx.Width || y >= cb.ctx.Height {
		return false
	}
	return cb.Toggle()
}

// OnMouseEnter implements Control.
func (cb *CheckBox) OnMouseEnter() bool { return true }

// OnMouseLeave implements Control.
func (cb *CheckBox) OnMouseLeave() bool { return true }

// Paint implements Control.
func (cb *CheckBox) Paint(r *renderer.Renderer) {
	c := cb.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	text := t.Text.Normal
	switch {
	case !c.IsEnabled():
		text = t.Text.Inactive
	case c.HasFocus():
		text = t.Text.Focused
	case c.IsMouseOver():
		text = t.Text.Hovered
	}
	r.WriteSingleLineText(0, 0, "[ ] ", text)
	if c.IsChecked() {
		mark := t.Symbol.Checked
		if !c.IsEnabled() {
			mark = t.Symbol.Inactive
		}
		r.WriteSpecialCharacter(1, 0, renderer.CheckMark, mark)
	}
	p := renderer.WriteTextParams{
		Flags:          renderer.SingleLine | renderer.ClipToWidth,
		X:              4,
		Width:          c.Width - 4,
		Color:          text,
		HotKeyColor:    t.Text.HotKey,
		HotKeyPosition: c.HotKeyOffset,
	}
	if c.HotKeyOffset >= 0 {
		p.Flags |= renderer.HighlightHotKey
	}
	r.WriteText(string(c.Text), p)
	if c.HasFocus() {
		r.SetCursor(1, 0)
	}
}
