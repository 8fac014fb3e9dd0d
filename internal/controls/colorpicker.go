package controls

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/layout"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
)

const (
	colorPickerHeight  = 7
	colorPickerColumns = 4
	colorSwatchWidth   = 3
)

// ColorPickerContext is the state of a ColorPicker.
type ColorPickerContext struct {
	Context
	color core.Color
	// cursor is the swatch under the keyboard cursor while open.
	cursor        core.Color
	headerOffset  int
	contentOffset int
}

// ColorPicker selects one of the palette colors from a drop-down box.
type ColorPicker struct {
	base
	ctx *ColorPickerContext
}

// NewColorPicker creates a picker showing color.
func NewColorPicker(parent Container, format string, color core.Color) (*ColorPicker, error) {
	if !color.IsPalette() {
		color = core.Black
	}
	cp := &ColorPicker{ctx: &ColorPickerContext{
		Context:       Context{MinWidth: 7, MinHeight: 1, MaxHeight: 1},
		color:         color,
		cursor:        color,
		contentOffset: 1,
	}}
	cp.base.ctx = &cp.ctx.Context
	if err := cp.ctx.init(cp, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return cp, nil
}

// State returns the typed context.
func (cp *ColorPicker) State() *ColorPickerContext { return cp.ctx }

// Color returns the selected color.
func (cp *ColorPicker) Color() core.Color { return cp.ctx.color }

// SetColor selects a palette color.
func (cp *ColorPicker) SetColor(color core.Color) bool {
	c := cp.ctx
	if c.dead {
		return false
	}
	if !color.IsPalette() {
		warn("colorpicker", "set-color", "%v is not a palette color", color)
		return false
	}
	c.cursor = color
	if color != c.color {
		c.color = color
		c.RaiseEvent(EventValueChanged, c.ID)
	}
	return true
}

// IsExpanded reports whether the palette is open.
func (cp *ColorPicker) IsExpanded() bool { return cp.ctx.Flags.Has(FlagExpanded) }

// Open shows the palette.
func (cp *ColorPicker) Open() bool {
	c := cp.ctx
	if c.dead || !c.IsEnabled() {
		return false
	}
	c.cursor = c.color
	return c.ExpandView()
}

// Close hides the palette without changing the color.
func (cp *ColorPicker) Close() bool { return cp.ctx.PackView() }

// OnExpandView implements Control.
func (cp *ColorPicker) OnExpandView(clip *renderer.Clip) {
	c := cp.ctx
	_, sh := c.ScreenSize()
	p := layout.ExpandPopup(clip.ScreenY, colorPickerHeight, sh)
	c.headerOffset, c.contentOffset = p.HeaderOffset, p.ContentOffset
	*clip = renderer.NewClip(clip.ScreenX, p.Y, c.Width, p.Height)
	if !c.screen.IsEmpty() {
		clip.ClipRect = clip.ClipRect.Intersection(c.screen)
		clip.Visible = !clip.ClipRect.IsEmpty()
	}
}

// OnPackView implements Control.
func (cp *ColorPicker) OnPackView() {
	cp.ctx.headerOffset, cp.ctx.contentOffset = 0, 1
}

// OnLoseFocus closes the palette.
func (cp *ColorPicker) OnLoseFocus() { cp.ctx.PackView() }

// OnHotKey toggles the palette.
func (cp *ColorPicker) OnHotKey() {
	cp.ctx.SetFocus()
	if cp.IsExpanded() {
		cp.Close()
	} else {
		cp.Open()
	}
}

// moveCursor moves the palette cursor by dx, dy, wrapping inside the
// 4x4 box.
func (c *ColorPickerContext) moveCursor(dx, dy int) {
	n := colorPickerColumns
	x := (int(c.cursor)%n + dx + n) % n
	y := (int(c.cursor)/n + dy + n) % n
	c.cursor = core.Color(y*n + x)
}

// OnKeyEvent implements Control.
func (cp *ColorPicker) OnKeyEvent(k input.Key, _ rune) bool {
	c := cp.ctx
	if c.dead {
		return false
	}
	if !cp.IsExpanded() {
		switch k {
		case input.KeySpace, input.KeyEnter:
			return cp.Open()
		case input.KeyUp, input.KeyLeft:
			return cp.SetColor((c.color + core.PaletteSize - 1) % core.PaletteSize)
		case input.KeyDown, input.KeyRight:
			return cp.SetColor((c.color + 1) % core.PaletteSize)
		}
		return false
	}
	switch k {
	case input.KeyLeft:
		c.moveCursor(-1, 0)
	case input.KeyRight:
		c.moveCursor(1, 0)
	case input.KeyUp:
		c.moveCursor(0, -1)
	case input.KeyDown:
		c.moveCursor(0, 1)
	case input.KeySpace, input.KeyEnter:
		cp.SetColor(c.cursor)
		cp.Close()
	case input.KeyEscape:
		cp.Close()
	default:
		return false
	}
	return true
}

// colorAt maps a local point of the open palette to a color.
func (c *ColorPickerContext) colorAt(x, y int) (core.Color, bool) {
	row := y - c.contentOffset - 1
	if x < 1 || row < 0 || row >= colorPickerColumns {
		return 0, false
	}
	col := (x - 1) / colorSwatchWidth
	if col >= colorPickerColumns {
		return 0, false
	}
	return core.Color(row*colorPickerColumns + col), true
}

// OnMousePressed opens the palette or picks a swatch.
func (cp *ColorPicker) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := cp.ctx
	if !button.Has(input.MouseLeft) {
		return false
	}
	if !cp.IsExpanded() {
		c.SetFocus()
		return cp.Open()
	}
	if col, ok := c.colorAt(x, y); ok {
		cp.SetColor(col)
	}
	return cp.Close()
}

// OnMouseOver moves the palette cursor under the pointer.
func (cp *ColorPicker) OnMouseOver(x, y int) bool {
	c := cp.ctx
	if !cp.IsExpanded() {
		return false
	}
	col, ok := c.colorAt(x, y)
	if !ok || col == c.cursor {
		return false
	}
	c.cursor = col
	return true
}

// OnMouseEnter implements Control.
func (cp *ColorPicker) OnMouseEnter() bool { return true }

// OnMouseLeave implements Control.
func (cp *ColorPicker) OnMouseLeave() bool { return true }

// Paint implements Control.
func (cp *ColorPicker) Paint(r *renderer.Renderer) {
	c := cp.ctx
	if c.Theme == nil {
		return
	}
	cp.paintHeader(r)
	if cp.IsExpanded() {
		cp.paintPalette(r)
	}
}

func (cp *ColorPicker) paintHeader(r *renderer.Renderer) {
	c := cp.ctx
	t := c.Theme
	text := t.Editor.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	btn := t.Button.Text.Get(c.IsEnabled(), c.HasFocus(), c.IsMouseOver())
	y := c.headerOffset
	if c.Width > 5 {
		r.FillHorizontalLineSize(0, y, c.Width-3, ' ', text)
		r.WriteSpecialCharacter(1, y, renderer.BlockCentered, core.Pair(c.color, core.Transparent))
		r.WriteText(c.color.String(), renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth,
			X:     3,
			Y:     y,
			Width: c.Width - 6,
			Color: text,
		})
	}
	r.FillHorizontalLineSize(c.Width-3, y, 3, ' ', btn)
	r.WriteSpecialCharacter(c.Width-2, y, renderer.TriangleDown, btn)
}

func (cp *ColorPicker) paintPalette(r *renderer.Renderer) {
	c := cp.ctx
	t := c.Theme
	col := t.Menu.Text.Normal
	top := c.contentOffset
	r.FillRectSize(0, top, c.Width, colorPickerHeight-1, ' ', col)
	r.DrawRectSize(0, top, c.Width, colorPickerHeight-1, col, renderer.LineSingle)
	for i := core.Color(0); i < core.Color(core.PaletteSize); i++ {
		x := int(i)%colorPickerColumns*colorSwatchWidth + 1
		y := int(i)/colorPickerColumns + top + 1
		r.FillHorizontalLineSize(x, y, colorSwatchWidth, ' ', core.Pair(core.Black, i))
		fg := core.White
		if i >= core.Silver && i != core.Gray && i != core.Blue && i != core.Red {
			fg = core.Black
		}
		if i == c.color {
			r.WriteSpecialCharacter(x+1, y, renderer.CheckMark, core.Pair(fg, core.Transparent))
		}
		if i == c.cursor {
			r.WriteCharacter(x, y, '[', core.Pair(fg, core.Transparent))
			r.WriteCharacter(x+2, y, ']', core.Pair(fg, core.Transparent))
		}
	}
	// name and hex value of the swatch under the cursor
	x := colorPickerColumns*colorSwatchWidth + 2
	if c.Width-x-1 >= 7 {
		r.WriteText(c.cursor.String(), renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth,
			X:     x, Y: top + 2, Width: c.Width - x - 1, Color: col,
		})
		r.WriteText(c.cursor.Hex(), renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth,
			X:     x, Y: top + 3, Width: c.Width - x - 1, Color: col,
		})
	}
}
