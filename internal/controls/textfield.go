package controls

import (
	"slices"
	"strings"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// TextFieldContext is the state of a TextField.
type TextFieldContext struct {
	Context
	Cursor      int
	StartOffset int
	// selection is [SelStart, SelEnd); SelOrigin is the fixed end.
	SelStart, SelEnd, SelOrigin int
	Modified                    bool
	ReadOnly                    bool
}

// TextField is a single line editor.
type TextField struct {
	base
	ctx *TextFieldContext
}

// NewTextField creates a text field holding text.
func NewTextField(parent Container, format, text string) (*TextField, error) {
	tf := &TextField{ctx: &TextFieldContext{Context: Context{MinHeight: 1, MinWidth: 3}}}
	tf.base.ctx = &tf.ctx.Context
	tf.ctx.setPlainText(text)
	tf.ctx.clearSelection()
	if err := tf.ctx.init(tf, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return tf, nil
}

// State returns the typed context.
func (tf *TextField) State() *TextFieldContext { return tf.ctx }

// Text returns the content.
func (tf *TextField) Text() string { return string(tf.ctx.Text) }

// SetText replaces the content and moves the cursor to its end.
func (tf *TextField) SetText(text string) bool {
	c := tf.ctx
	if c.dead {
		return false
	}
	c.setPlainText(text)
	c.Cursor = len(c.Text)
	c.clearSelection()
	c.reveal()
	return true
}

// SetReadOnly blocks editing keys.
func (tf *TextField) SetReadOnly(on bool) { tf.ctx.ReadOnly = on }

// Selection returns the selected range, ok false when nothing is
// selected.
func (tf *TextField) Selection() (start, end int, ok bool) {
	c := tf.ctx
	return c.SelStart, c.SelEnd, c.SelStart < c.SelEnd
}

// SelectAll selects the whole text.
func (tf *TextField) SelectAll() {
	c := tf.ctx
	c.SelOrigin, c.SelStart, c.SelEnd = 0, 0, len(c.Text)
	c.Cursor = len(c.Text)
	c.reveal()
}

func (c *TextFieldContext) clearSelection() {
	c.SelStart, c.SelEnd, c.SelOrigin = -1, -1, -1
}

func (c *TextFieldContext) hasSelection() bool { return c.SelStart >= 0 && c.SelStart < c.SelEnd }

func (c *TextFieldContext) reveal() {
	w := max(c.Width, 1)
	if c.Cursor < c.StartOffset {
		c.StartOffset = c.Cursor
	}
	if c.Cursor-c.StartOffset >= w {
		c.StartOffset = c.Cursor - w + 1
	}
}

// moveTo moves the cursor; with extend the selection grows from its
// origin.
func (c *TextFieldContext) moveTo(pos int, extend bool) {
	pos = max(min(pos, len(c.Text)), 0)
	if !extend {
		c.clearSelection()
		c.Cursor = pos
		c.reveal()
		return
	}
	if !c.hasSelection() {
		c.SelOrigin = c.Cursor
	}
	c.Cursor = pos
	c.SelStart, c.SelEnd = min(c.SelOrigin, pos), max(c.SelOrigin, pos)
	c.reveal()
}

func (c *TextFieldContext) deleteSelection() bool {
	if !c.hasSelection() {
		return false
	}
	c.Text = slices.Delete(c.Text, c.SelStart, c.SelEnd)
	c.Cursor = c.SelStart
	c.clearSelection()
	c.changed()
	return true
}

func (c *TextFieldContext) insert(s []rune) {
	c.deleteSelection()
	c.Text = slices.Insert(c.Text, c.Cursor, s...)
	c.Cursor += len(s)
	c.changed()
}

func (c *TextFieldContext) changed() {
	c.Modified = true
	c.reveal()
	c.RaiseEvent(EventTextChanged, c.ID)
}

func (c *TextFieldContext) selectedText() string {
	if !c.hasSelection() {
		return ""
	}
	return string(c.Text[c.SelStart:c.SelEnd])
}

func (c *TextFieldContext) copy() bool {
	if !c.hasSelection() {
		return false
	}
	if !c.board().SetText(c.selectedText()) {
		warn("textfield", "copy", "failed to copy %d characters to the clipboard", c.SelEnd-c.SelStart)
		return false
	}
	return true
}

func (c *TextFieldContext) paste() {
	text := c.board().GetText()
	// single line: keep the first line only
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	if text != "" {
		c.insert([]rune(text))
	}
}

// OnKeyEvent implements Control.
func (tf *TextField) OnKeyEvent(k input.Key, ch rune) bool {
	c := tf.ctx
	if c.dead {
		return false
	}
	extend := k.Has(input.KeyShift)
	switch k.Code() {
	case input.KeyLeft:
		if k.Modifiers()&^input.KeyShift == 0 {
			c.moveTo(c.Cursor-1, extend)
			return true
		}
	case input.KeyRight:
		if k.Modifiers()&^input.KeyShift == 0 {
			c.moveTo(c.Cursor+1, extend)
			return true
		}
	case input.KeyHome:
		c.moveTo(0, extend)
		return true
	case input.KeyEnd:
		c.moveTo(len(c.Text), extend)
		return true
	}

	switch k {
	case input.KeyA | input.KeyCtrl:
		tf.SelectAll()
		return true
	case input.KeyC | input.KeyCtrl, input.KeyInsert | input.KeyCtrl:
		c.copy()
		return true
	}
	if c.ReadOnly {
		return false
	}
	switch k {
	case input.KeyX | input.KeyCtrl, input.KeyDelete | input.KeyShift:
		if c.copy() {
			c.deleteSelection()
		}
		return true
	case input.KeyV | input.KeyCtrl, input.KeyInsert | input.KeyShift:
		c.paste()
		return true
	case input.KeyBackspace:
		if !c.deleteSelection() && c.Cursor > 0 {
			c.Text = slices.Delete(c.Text, c.Cursor-1, c.Cursor)
			c.Cursor--
			c.changed()
		}
		return true
	case input.KeyDelete:
		if !c.deleteSelection() && c.Cursor < len(c.Text) {
			c.Text = slices.Delete(c.Text, c.Cursor, c.Cursor+1)
			c.changed()
		}
		return true
	}
	if ch != 0 && ch >= ' ' {
		c.insert([]rune{ch})
		return true
	}
	return false
}

// OnFocus selects the whole text.
func (tf *TextField) OnFocus() {
	if len(tf.ctx.Text) > 0 {
		tf.SelectAll()
	}
}

// OnMousePressed places the cursor.
func (tf *TextField) OnMousePressed(x, _ int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	tf.ctx.moveTo(tf.ctx.StartOffset+x, false)
	return true
}

// OnMouseDrag extends the selection.
func (tf *TextField) OnMouseDrag(x, _ int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	tf.ctx.moveTo(tf.ctx.StartOffset+x, true)
	return true
}

// Paint implements Control.
func (tf *TextField) Paint(r *renderer.Renderer) {
	c := tf.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	color := t.Editor.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	r.FillHorizontalLineSize(0, 0, c.Width, ' ', color)
	end := min(len(c.Text), c.StartOffset+c.Width)
	for i := c.StartOffset; i < end; i++ {
		col := color
		if c.hasSelection() && i >= c.SelStart && i < c.SelEnd {
			col = t.Selection.Editor
		}
		r.WriteCharacter(i-c.StartOffset, 0, c.Text[i], col)
	}
	if c.HasFocus() {
		r.SetCursor(c.Cursor-c.StartOffset, 0)
	}
}
