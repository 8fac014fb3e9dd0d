package controls

import (
	"fmt"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/menu"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
	"github.com/dshills/cellkit/internal/theme"
)

// WindowFlags configure a Window.
type WindowFlags uint16

// Window flags. WindowError, WindowNotify and WindowWarning pick the
// dialog color tables.
const (
	WindowNone          WindowFlags = 0
	WindowSizeable      WindowFlags = 0x01
	WindowNoCloseButton WindowFlags = 0x02
	WindowCenter        WindowFlags = 0x04
	WindowMenu          WindowFlags = 0x08
	WindowError         WindowFlags = 0x10
	WindowNotify        WindowFlags = 0x20
	WindowWarning       WindowFlags = 0x40
)

// Dialog results. Windows closed without a result exit with
// ResultCancel; buttons usually pass one of these as command ID.
const (
	ResultNone   = 0
	ResultOk     = 1
	ResultCancel = 2
	ResultYes    = 3
	ResultNo     = 4
)

type windowPart uint8

const (
	windowPartNone windowPart = iota
	windowPartTitle
	windowPartClose
	windowPartMaximize
	windowPartResize
	windowPartMenu
)

// WindowContext is the state of a Window.
type WindowContext struct {
	Context
	flags        WindowFlags
	bar          *menu.Bar
	barTheme     *theme.Config
	dialogResult int
	exited       bool
	modal        bool
	maximized    bool
	// layout to go back to when un-maximizing
	restoreFormat string
	moved         bool
	drag          windowPart
	dragX, dragY  int
	hover         windowPart
	pressed       windowPart
}

// Window is a top-level container with a frame, a title and optional
// close and maximize buttons. Windows live on the application desktop.
type Window struct {
	base
	ctx *WindowContext
}

// NewWindow creates a window. It has no parent until the application
// adds it to the desktop.
func NewWindow(title, format string, flags WindowFlags) (*Window, error) {
	w := &Window{ctx: &WindowContext{
		Context: Context{MinWidth: 12, MinHeight: 3},
		flags:   flags,
	}}
	w.base.ctx = &w.ctx.Context
	w.ctx.Margins = Margins{Left: 1, Top: 1, Right: 1, Bottom: 1}
	if flags&WindowMenu != 0 {
		w.ctx.Margins.Top = 2
		w.ctx.MinHeight = 4
		w.ctx.bar = menu.NewBar(nil, w)
	}
	if err := w.ctx.init(w, nil, format, FlagEnabled|FlagVisible); err != nil {
		return nil, fmt.Errorf("new window %q: %w", title, err)
	}
	w.ctx.setPlainText(title)
	return w, nil
}

// State returns the typed context.
func (w *Window) State() *WindowContext { return w.ctx }

// Flags returns the creation flags.
func (w *Window) Flags() WindowFlags { return w.ctx.flags }

// Kind returns the color table the window paints with.
func (w *Window) Kind() theme.WindowKind {
	switch f := w.ctx.flags; {
	case f&WindowError != 0:
		return theme.KindError
	case f&WindowWarning != 0:
		return theme.KindWarning
	case f&WindowNotify != 0:
		return theme.KindNotify
	}
	return theme.KindWindow
}

// MenuBar returns the menu bar, nil for windows created without
// WindowMenu.
func (w *Window) MenuBar() *menu.Bar { return w.ctx.bar }

// AddMenu adds a menu to the window's menu bar.
func (w *Window) AddMenu(name string) *menu.Menu {
	c := w.ctx
	if c.bar == nil {
		warn("window", "add-menu", "window %q has no menu bar", c.TextString())
		return nil
	}
	c.syncBarTheme()
	return c.bar.AddMenu(name)
}

func (c *WindowContext) syncBarTheme() {
	if c.bar != nil && c.barTheme != c.Theme {
		c.barTheme = c.Theme
		c.bar.SetTheme(c.Theme)
	}
}

// placeBar keeps the menu bar on the window's second row.
func (c *WindowContext) placeBar() {
	if c.bar == nil {
		return
	}
	c.syncBarTheme()
	sw, sh := c.ScreenSize()
	c.bar.SetPosition(c.ScreenClip.ScreenX+1, c.ScreenClip.ScreenY+1, max(c.Width-2, 0), sw, sh)
}

// OnCommand raises menu commands as EventCommand.
func (w *Window) OnCommand(commandID int) {
	w.ctx.RaiseEvent(EventCommand, commandID)
}

// SetTitle changes the title.
func (w *Window) SetTitle(title string) bool {
	if w.ctx.dead {
		return false
	}
	w.ctx.setPlainText(title)
	return true
}

// Exit ends the window with result. A modal loop returns it; a
// non-modal window is removed by the application.
func (w *Window) Exit(result int) bool {
	c := w.ctx
	if c.dead {
		return false
	}
	c.dialogResult, c.exited = result, true
	if c.bar != nil {
		c.bar.Close()
	}
	return true
}

// IsExited reports whether Exit was called.
func (w *Window) IsExited() bool { return w.ctx.exited }

// DialogResult returns the value passed to Exit.
func (w *Window) DialogResult() int { return w.ctx.dialogResult }

// SetModal marks the window as run by a modal loop and clears a
// previous exit.
func (w *Window) SetModal(on bool) {
	c := w.ctx
	c.modal = on
	if on {
		c.exited, c.dialogResult = false, ResultNone
	}
}

// IsModal reports whether a modal loop runs the window.
func (w *Window) IsModal() bool { return w.ctx.modal }

// Close asks the window to close. Handlers of EventWindowClose may
// refuse; otherwise the window exits with ResultCancel.
func (w *Window) Close() bool {
	c := w.ctx
	if c.dead {
		return false
	}
	if c.RaiseEvent(EventWindowClose, c.ID) {
		return true
	}
	return w.Exit(ResultCancel)
}

// IsMaximized reports whether the window fills the desktop.
func (w *Window) IsMaximized() bool { return w.ctx.maximized }

// ToggleMaximize maximizes a sizeable window or restores it.
func (w *Window) ToggleMaximize() bool {
	c := w.ctx
	if c.dead || c.flags&WindowSizeable == 0 {
		return false
	}
	var err error
	if c.maximized {
		err = c.applyLayout(c.restoreFormat)
	} else {
		c.restoreFormat = c.LayoutFormat()
		err = c.applyLayout("x:0,y:0,w:100%,h:100%")
	}
	if err != nil {
		warn("window", "maximize", "%v", err)
		return false
	}
	c.maximized = !c.maximized
	return true
}

// Move places the window at (x, y) of the desktop and keeps the
// position across desktop resizes.
func (w *Window) Move(x, y int) bool {
	c := w.ctx
	if c.dead {
		return false
	}
	return c.place(x, y, c.Width, c.Height)
}

// SetSize resizes a window, keeping its position.
func (w *Window) SetSize(width, height int) bool {
	c := w.ctx
	if c.dead {
		return false
	}
	return c.place(c.X, c.Y, width, height)
}

func (c *WindowContext) place(x, y, width, height int) bool {
	width = clampSize(width, c.MinWidth, c.MaxWidth)
	height = clampSize(height, c.MinHeight, c.MaxHeight)
	c.moved = true
	c.maximized = false
	if err := c.applyLayout(fmt.Sprintf("x:%d,y:%d,w:%d,h:%d", x, y, width, height)); err != nil {
		warn("window", "place", "%v", err)
		return false
	}
	return true
}

// OnAfterResize centers WindowCenter windows that were never moved.
func (w *Window) OnAfterResize(width, height int) {
	c := w.ctx
	if c.flags&WindowCenter == 0 || c.moved || c.Parent == nil {
		return
	}
	pw, ph := c.Parent.Base().ClientSize()
	c.X, c.Y = (pw-width)/2, (ph-height)/2
}

// OnKeyEvent handles the keys no child used: focus cycling, Alt hot
// keys, the menu bar, Escape and Enter.
func (w *Window) OnKeyEvent(k input.Key, _ rune) bool {
	c := w.ctx
	c.placeBar()
	if c.bar != nil && c.bar.IsOpen() {
		return c.bar.OnKeyEvent(k)
	}
	switch k {
	case input.KeyTab:
		return FocusNext(w, true)
	case input.KeyTab | input.KeyShift:
		return FocusNext(w, false)
	case input.KeyEscape:
		return w.Close()
	case input.KeyEnter:
		return c.RaiseEvent(EventWindowAccept, c.ID)
	}
	if c.bar != nil && c.bar.OnKeyEvent(k) {
		return true
	}
	if k.Modifiers() == input.KeyAlt {
		if hk := FindHotKey(w, k.Code()); hk != nil {
			hk.OnHotKey()
			return true
		}
	}
	return c.bar != nil && c.bar.ProcessShortcut(k)
}

func (c *WindowContext) partAt(x, y int) windowPart {
	switch {
	case x < 0 || y < 0 || x >= c.Width || y >= c.Height:
		return windowPartNone
	case y == 0:
		if c.flags&WindowNoCloseButton == 0 && x >= c.Width-4 && x <= c.Width-2 {
			return windowPartClose
		}
		if c.flags&WindowSizeable != 0 && x >= 1 && x <= 3 {
			return windowPartMaximize
		}
		return windowPartTitle
	case c.flags&WindowSizeable != 0 && x == c.Width-1 && y == c.Height-1:
		return windowPartResize
	case c.bar != nil && y == 1 && x > 0 && x < c.Width-1:
		return windowPartMenu
	}
	return windowPartNone
}

func (c *WindowContext) toScreen(x, y int) (int, int) {
	return x + c.ScreenClip.ScreenX, y + c.ScreenClip.ScreenY
}

// OnMousePressed starts moving or resizing, presses the title buttons,
// or forwards the press to the menu bar.
func (w *Window) OnMousePressed(x, y int, button input.MouseButton) bool {
	c := w.ctx
	if !button.Has(input.MouseLeft) {
		return false
	}
	c.placeBar()
	sx, sy := c.toScreen(x, y)
	if c.bar != nil && c.bar.IsOpen() {
		if c.bar.HitTest(sx, sy) {
			return c.bar.OnMousePressed(sx, sy)
		}
		c.bar.Close()
	}
	part := c.partAt(x, y)
	switch part {
	case windowPartClose, windowPartMaximize:
		c.pressed = part
	case windowPartTitle, windowPartResize:
		c.drag, c.dragX, c.dragY = part, x, y
	case windowPartMenu:
		return c.bar.OnMousePressed(sx, sy)
	default:
		return false
	}
	return true
}

// OnMouseDrag moves or resizes the window.
func (w *Window) OnMouseDrag(x, y int, _ input.MouseButton) bool {
	c := w.ctx
	switch c.drag {
	case windowPartTitle:
		if x == c.dragX && y == c.dragY {
			return false
		}
		return c.place(c.X+x-c.dragX, c.Y+y-c.dragY, c.Width, c.Height)
	case windowPartResize:
		return c.place(c.X, c.Y, x+1, y+1)
	}
	return false
}

// OnMouseReleased ends a drag and runs the title button released on.
func (w *Window) OnMouseReleased(x, y int, _ input.MouseButton) bool {
	c := w.ctx
	pressed, dragging := c.pressed, c.drag != windowPartNone
	c.pressed, c.drag = windowPartNone, windowPartNone
	if pressed == windowPartNone || c.partAt(x, y) != pressed {
		return dragging || pressed != windowPartNone
	}
	if pressed == windowPartClose {
		return w.Close()
	}
	return w.ToggleMaximize()
}

// OnMouseOver tracks the hovered title button and menu entry.
func (w *Window) OnMouseOver(x, y int) bool {
	c := w.ctx
	part := c.partAt(x, y)
	changed := part != c.hover
	c.hover = part
	if c.bar != nil {
		c.placeBar()
		sx, sy := c.toScreen(x, y)
		changed = c.bar.OnMouseMove(sx, sy) || changed
	}
	return changed
}

// OnMouseLeave implements Control.
func (w *Window) OnMouseLeave() bool {
	w.ctx.hover = windowPartNone
	return true
}

// OnMouseWheel scrolls an open menu.
func (w *Window) OnMouseWheel(x, y int, dir input.WheelDirection) bool {
	c := w.ctx
	if c.bar == nil || !c.bar.IsOpen() {
		return false
	}
	sx, sy := c.toScreen(x, y)
	return c.bar.OnMouseWheel(sx, sy, dir)
}

// Paint draws the frame, the title, the buttons and the menu bar row.
// Open menus are painted by the application with PaintMenus.
func (w *Window) Paint(r *renderer.Renderer) {
	c := w.ctx
	if c.Theme == nil {
		return
	}
	wc := c.Theme.WindowColors(w.Kind())
	active := c.HasFocus()
	body, title, line := wc.Inactive, wc.TitleInactive, renderer.LineSingle
	if active {
		body, title, line = wc.Active, wc.TitleActive, renderer.LineDouble
	}
	r.Clear(' ', body)
	r.DrawRectSize(0, 0, c.Width, c.Height, body, line)

	left, right := 1, c.Width-1
	button := func(x int, glyph rune, part windowPart, glyphColors core.ColorPair) {
		cols := body
		switch {
		case c.pressed == part:
			cols = wc.ControlBar.Item.Pressed.Text
			glyphColors = cols
		case c.hover == part:
			cols = wc.ControlBar.Item.Hover.Text
			glyphColors = cols
		}
		r.WriteSingleLineText(x, 0, "[ ]", cols)
		r.WriteCharacter(x+1, 0, glyph, glyphColors)
	}
	if c.flags&WindowNoCloseButton == 0 && c.Width >= 8 {
		button(c.Width-4, 'x', windowPartClose, wc.ControlBar.CloseButton)
		right = c.Width - 5
	}
	if c.flags&WindowSizeable != 0 && c.Width >= 12 {
		glyph := renderer.ArrowUp.Rune()
		if c.maximized {
			glyph = renderer.ArrowUpDown.Rune()
		}
		button(1, glyph, windowPartMaximize, wc.ControlBar.Tag)
		left = 5
		if active {
			r.WriteSpecialCharacter(c.Width-1, c.Height-1, renderer.BoxBottomRightCornerSingleLine, wc.ControlBar.Tag)
		}
	}
	if len(c.Text) > 0 && right-left > 2 {
		r.WriteText(" "+c.TextString()+" ", renderer.WriteTextParams{
			Flags: renderer.SingleLine | renderer.ClipToWidth | renderer.FitTextToWidth,
			X:     left,
			Width: right - left,
			Color: title,
			Align: renderer.AlignCenter,
		})
	}
	if c.bar != nil {
		c.placeBar()
		c.bar.Paint(r, active)
	}
}
