package controls

import (
	"errors"
	"strconv"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// ErrInvalidRange is returned for a numeric selector whose minimum is
// above its maximum.
var ErrInvalidRange = errors.New("invalid value range")

const numericButtonWidth = 3

type numericPart uint8

const (
	numericNone numericPart = iota
	numericMinus
	numericText
	numericPlus
)

// NumericSelectorContext is the state of a NumericSelector.
type NumericSelectorContext struct {
	Context
	minValue, maxValue, value int64
	// typed digits not yet committed
	editing   bool
	editText  []rune
	wrong     bool
	mouseOn   numericPart
	pressedOn numericPart
}

// NumericSelector edits an integer between a minimum and a maximum with
// -/+ buttons, arrow keys or typed digits.
type NumericSelector struct {
	base
	ctx *NumericSelectorContext
}

// NewNumericSelector creates a selector for [minValue, maxValue]
// starting at value.
func NewNumericSelector(parent Container, format string, minValue, maxValue, value int64) (*NumericSelector, error) {
	if minValue > maxValue {
		return nil, ErrInvalidRange
	}
	ns := &NumericSelector{ctx: &NumericSelectorContext{
		Context:  Context{MinWidth: 2*numericButtonWidth + 3, MinHeight: 1, MaxHeight: 1},
		minValue: minValue,
		maxValue: maxValue,
		value:    min(max(value, minValue), maxValue),
	}}
	ns.base.ctx = &ns.ctx.Context
	if err := ns.ctx.init(ns, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return ns, nil
}

// State returns the typed context.
func (ns *NumericSelector) State() *NumericSelectorContext { return ns.ctx }

// Value returns the committed value.
func (ns *NumericSelector) Value() int64 { return ns.ctx.value }

// Range returns the limits.
func (ns *NumericSelector) Range() (minValue, maxValue int64) {
	return ns.ctx.minValue, ns.ctx.maxValue
}

// IsEditing reports whether typed digits are pending.
func (ns *NumericSelector) IsEditing() bool { return ns.ctx.editing }

// SetValue sets the value, clamped to the range.
func (ns *NumericSelector) SetValue(v int64) bool {
	c := ns.ctx
	if c.dead {
		return false
	}
	c.setValue(v)
	return true
}

// SetRange changes the limits and clamps the value.
func (ns *NumericSelector) SetRange(minValue, maxValue int64) bool {
	c := ns.ctx
	if c.dead {
		return false
	}
	if minValue > maxValue {
		warn("numericselector", "set-range", "minimum %d above maximum %d", minValue, maxValue)
		return false
	}
	c.minValue, c.maxValue = minValue, maxValue
	c.setValue(c.value)
	return true
}

func (c *NumericSelectorContext) setValue(v int64) {
	v = min(max(v, c.minValue), c.maxValue)
	if v == c.value {
		return
	}
	c.value = v
	c.RaiseEvent(EventValueChanged, c.ID)
}

func (c *NumericSelectorContext) step(delta int64) {
	v := c.value + delta
	// saturate instead of wrapping around
	if delta > 0 && v < c.value {
		v = c.maxValue
	}
	if delta < 0 && v > c.value {
		v = c.minValue
	}
	c.setValue(v)
}

func (c *NumericSelectorContext) cancelEdit() {
	c.editing, c.editText, c.wrong = false, nil, false
}

// commit applies the typed value. Out of range or malformed input keeps
// the edit open and marks it wrong.
func (c *NumericSelectorContext) commit() {
	v, err := strconv.ParseInt(string(c.editText), 10, 64)
	if err != nil || v < c.minValue || v > c.maxValue {
		c.wrong = true
		return
	}
	c.cancelEdit()
	c.setValue(v)
}

func (c *NumericSelectorContext) edit(ch rune) {
	if !c.editing {
		c.editing, c.editText = true, nil
	}
	if ch == '-' {
		if len(c.editText) > 0 && c.editText[0] == '-' {
			c.editText = c.editText[1:]
		} else {
			c.editText = append([]rune{'-'}, c.editText...)
		}
	} else {
		c.editText = append(c.editText, ch)
	}
	c.wrong = false
}

// OnKeyEvent implements Control.
func (ns *NumericSelector) OnKeyEvent(k input.Key, ch rune) bool {
	c := ns.ctx
	if c.dead || !c.IsEnabled() {
		return false
	}
	if c.editing {
		switch k {
		case input.KeyEnter:
			c.commit()
			return true
		case input.KeyEscape:
			c.cancelEdit()
			return true
		case input.KeyBackspace:
			if len(c.editText) > 0 {
				c.editText = c.editText[:len(c.editText)-1]
			}
			c.wrong = false
			return true
		}
	}
	switch k {
	case input.KeyLeft, input.KeyDown:
		c.cancelEdit()
		c.step(-1)
		return true
	case input.KeyRight, input.KeyUp:
		c.cancelEdit()
		c.step(1)
		return true
	case input.KeyHome:
		c.cancelEdit()
		c.setValue(c.minValue)
		return true
	case input.KeyEnd:
		c.cancelEdit()
		c.setValue(c.maxValue)
		return true
	}
	if (ch >= '0' && ch <= '9') || ch == '-' {
		c.edit(ch)
		return true
	}
	return false
}

// OnLoseFocus drops a pending edit.
func (ns *NumericSelector) OnLoseFocus() { ns.ctx.cancelEdit() }

func (c *NumericSelectorContext) partAt(x, y int) numericPart {
	switch {
	case y != 0 || x < 0 || x >= c.Width:
		return numericNone
	case x < numericButtonWidth:
		return numericMinus
	case x >= c.Width-numericButtonWidth:
		return numericPlus
	}
	return numericText
}

// OnMousePressed steps the value with the -/+ buttons.
func (ns *NumericSelector) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := ns.ctx
	if !button.Has(input.MouseLeft) || !c.IsEnabled() {
		return false
	}
	c.pressedOn = c.partAt(x, y)
	switch c.pressedOn {
	case numericMinus:
		c.cancelEdit()
		c.step(-1)
	case numericPlus:
		c.cancelEdit()
		c.step(1)
	case numericText:
		c.SetFocus()
	default:
		return false
	}
	return true
}

// OnMouseReleased implements Control.
func (ns *NumericSelector) OnMouseReleased(int, int, input.MouseButton) bool {
	was := ns.ctx.pressedOn != numericNone
	ns.ctx.pressedOn = numericNone
	return was
}

// OnMouseOver tracks the hovered part.
func (ns *NumericSelector) OnMouseOver(x, y int) bool {
	p := ns.ctx.partAt(x, y)
	if p == ns.ctx.mouseOn {
		return false
	}
	ns.ctx.mouseOn = p
	return true
}

// OnMouseLeave implements Control.
func (ns *NumericSelector) OnMouseLeave() bool {
	ns.ctx.mouseOn = numericNone
	return true
}

// OnMouseWheel steps the value.
func (ns *NumericSelector) OnMouseWheel(_, _ int, dir input.WheelDirection) bool {
	c := ns.ctx
	switch dir {
	case input.WheelUp, input.WheelRight:
		c.step(1)
	case input.WheelDown, input.WheelLeft:
		c.step(-1)
	default:
		return false
	}
	return true
}

// Text returns what the selector shows: the pending edit or the value.
func (ns *NumericSelector) Text() string {
	c := ns.ctx
	if c.editing {
		return string(c.editText)
	}
	return strconv.FormatInt(c.value, 10)
}

// Paint implements Control.
func (ns *NumericSelector) Paint(r *renderer.Renderer) {
	c := ns.ctx
	if c.Theme == nil {
		return
	}
	t := c.Theme
	col := t.NumericSelector.Normal
	switch {
	case !c.IsEnabled():
		col = t.NumericSelector.Inactive
	case c.wrong:
		col = t.NumericSelector.WrongValue
	case c.HasFocus():
		col = t.NumericSelector.Focused
	case c.mouseOn == numericText:
		col = t.NumericSelector.Hover
	}
	button := func(x int, label rune, part numericPart, disabled bool) {
		bc := t.Button.Text.Get(c.IsEnabled() && !disabled, false, c.mouseOn == part)
		if c.pressedOn == part {
			bc = t.Button.Text.PressedOrSelected
		}
		r.FillHorizontalLineSize(x, 0, numericButtonWidth, ' ', bc)
		r.WriteCharacter(x+1, 0, label, bc)
	}
	button(0, '-', numericMinus, c.value <= c.minValue)
	button(c.Width-numericButtonWidth, '+', numericPlus, c.value >= c.maxValue)

	w := c.Width - 2*numericButtonWidth
	r.FillHorizontalLineSize(numericButtonWidth, 0, w, ' ', col)
	r.WriteText(ns.Text(), renderer.WriteTextParams{
		Flags: renderer.SingleLine | renderer.ClipToWidth,
		X:     numericButtonWidth + 1,
		Width: w - 2,
		Color: col,
		Align: renderer.AlignCenter,
	})
	if c.HasFocus() && c.editing {
		tw := min(len(c.editText), w-2)
		r.SetCursor(numericButtonWidth+1+(w-2+tw)/2, 0)
	}
}
