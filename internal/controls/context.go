package controls

import (
	"fmt"
	"slices"

	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/layout"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
	"github.com/dshills/cellkit/internal/theme"
)

// Context is the state every control shares. A control owns exactly one
// Context, embedded in its typed context.
type Context struct {
	X, Y                         int
	Width, MinWidth, MaxWidth    int
	Height, MinHeight, MaxHeight int

	// ScreenClip is where the control paints; ExpandedViewClip is used
	// while FlagExpanded is set.
	ScreenClip       renderer.Clip
	ExpandedViewClip renderer.Clip

	ScrollBars ScrollBars
	Margins    Margins
	Flags      Flags

	Parent Control
	Theme  *theme.Config
	// Clipboard is inherited from the parent like Theme.
	Clipboard clipboard.Clipboard

	Text         []rune
	HotKey       input.Key
	HotKeyOffset int
	ID           int

	self     Control
	layout   *layout.Spec
	handlers *Handlers
	children []Control
	// index of the child on the focus path, -1 for none
	current   int
	focused   bool
	mouseOver bool
	dead      bool
	screen    core.ScreenRect
}

// init binds the context to its control, compiles the layout and adds
// the control to parent. Typed state must be ready before init since
// adding resolves the layout and calls OnAfterResize.
func (c *Context) init(self Control, parent Container, format string, flags Flags) error {
	spec, err := layout.Compile(format)
	if err != nil {
		return err
	}
	c.self = self
	c.layout = spec
	c.Flags = flags
	c.current = -1
	if c.HotKey == input.KeyNone {
		c.HotKeyOffset = input.InvalidHotKeyOffset
	}
	if parent == nil {
		return nil
	}
	p := parent.Base()
	if p.dead {
		return ErrDestroyed
	}
	p.AddControl(self)
	return nil
}

// initRoot binds a context that has no layout string, such as the
// desktop; its geometry is set with MoveTo and Resize.
func (c *Context) initRoot(self Control, flags Flags) {
	c.self = self
	c.Flags = flags
	c.current = -1
	c.HotKeyOffset = input.InvalidHotKeyOffset
}

// Self returns the control that owns the context.
func (c *Context) Self() Control { return c.self }

// Handlers returns the handler set, allocating it on first use.
func (c *Context) Handlers() *Handlers {
	if c.handlers == nil {
		c.handlers = &Handlers{}
	}
	return c.handlers
}

// HasHandlers reports whether Handlers was ever called.
func (c *Context) HasHandlers() bool { return c.handlers != nil }

// IsDestroyed reports whether the control was destroyed.
func (c *Context) IsDestroyed() bool { return c.dead }

// IsEnabled reports whether the control is enabled.
func (c *Context) IsEnabled() bool { return c.Flags.Has(FlagEnabled) }

// IsVisible reports whether the control is visible.
func (c *Context) IsVisible() bool { return c.Flags.Has(FlagVisible) }

// IsChecked reports whether the control is checked.
func (c *Context) IsChecked() bool { return c.Flags.Has(FlagChecked) }

// HasFocus reports whether the control is on the focus path of the
// active window.
func (c *Context) HasFocus() bool { return c.focused }

// IsMouseOver reports whether the pointer is over the control.
func (c *Context) IsMouseOver() bool { return c.mouseOver }

// SetEnabled enables or disables the control.
func (c *Context) SetEnabled(on bool) bool {
	if c.dead {
		return false
	}
	c.Flags.Toggle(FlagEnabled, on)
	return true
}

// SetVisible shows or hides the control.
func (c *Context) SetVisible(on bool) bool {
	if c.dead {
		return false
	}
	c.Flags.Toggle(FlagVisible, on)
	return true
}

// SetChecked sets the checked flag.
func (c *Context) SetChecked(on bool) bool {
	if c.dead {
		return false
	}
	c.Flags.Toggle(FlagChecked, on)
	return true
}

// SetText sets the caption. An '&' marks the next character as the hot
// key.
func (c *Context) SetText(text string) bool {
	if c.dead {
		return false
	}
	c.Text, c.HotKey, c.HotKeyOffset = input.ParseHotKey(text)
	return true
}

// setPlainText sets the text without hot key processing.
func (c *Context) setPlainText(text string) {
	c.Text = []rune(text)
	c.HotKey, c.HotKeyOffset = input.KeyNone, input.InvalidHotKeyOffset
}

// TextString returns the caption as a string.
func (c *Context) TextString() string { return string(c.Text) }

// SetTheme replaces the theme of the control and its children.
func (c *Context) SetTheme(t *theme.Config) {
	c.Theme = t
	for _, ch := range c.children {
		ch.Base().SetTheme(t)
	}
}

// SetClipboard replaces the clipboard of the control and its children.
func (c *Context) SetClipboard(cb clipboard.Clipboard) {
	c.Clipboard = cb
	for _, ch := range c.children {
		ch.Base().SetClipboard(cb)
	}
}

var fallbackClipboard = &clipboard.Memory{}

func (c *Context) board() clipboard.Clipboard {
	if c.Clipboard != nil {
		return c.Clipboard
	}
	return fallbackClipboard
}

// LayoutFormat returns the layout string the control was created with.
func (c *Context) LayoutFormat() string {
	if c.layout == nil {
		return ""
	}
	return c.layout.Format()
}

// SetLayout replaces the layout and resolves it against the parent.
func (c *Context) SetLayout(format string) error {
	if c.dead {
		return ErrDestroyed
	}
	spec, err := layout.Compile(format)
	if err != nil {
		return err
	}
	c.layout = spec
	if c.Parent != nil {
		pw, ph := c.Parent.Base().ClientSize()
		return c.RecomputeLayout(pw, ph)
	}
	return nil
}

// ClientSize returns the area available to children.
func (c *Context) ClientSize() (int, int) {
	w := c.Width - c.Margins.Left - c.Margins.Right
	h := c.Height - c.Margins.Top - c.Margins.Bottom
	return max(w, 0), max(h, 0)
}

// ScreenSize returns the size of the screen the control was last laid
// out on.
func (c *Context) ScreenSize() (int, int) {
	return c.screen.Width(), c.screen.Height()
}

func (c *Context) bounds() layout.Bounds {
	return layout.Bounds{MinWidth: c.MinWidth, MaxWidth: c.MaxWidth, MinHeight: c.MinHeight, MaxHeight: c.MaxHeight}
}

// RecomputeLayout resolves the stored layout against a parent client
// area and resizes the control.
func (c *Context) RecomputeLayout(parentWidth, parentHeight int) error {
	if c.dead {
		return ErrDestroyed
	}
	if c.layout == nil {
		return nil
	}
	r, err := c.layout.Resolve(parentWidth, parentHeight, c.bounds())
	if err != nil {
		return fmt.Errorf("recompute layout: %w", err)
	}
	c.X, c.Y = r.X, r.Y
	c.Resize(r.Width, r.Height)
	return nil
}

func clampSize(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	return max(v, lo, 0)
}

// Resize changes the size within the min/max bounds, then lays out the
// children again.
func (c *Context) Resize(width, height int) bool {
	if c.dead {
		return false
	}
	c.Width = clampSize(width, c.MinWidth, c.MaxWidth)
	c.Height = clampSize(height, c.MinHeight, c.MaxHeight)
	if c.self != nil {
		c.self.OnAfterResize(c.Width, c.Height)
	}
	c.relayoutChildren()
	return true
}

func (c *Context) relayoutChildren() {
	cw, ch := c.ClientSize()
	for _, child := range c.children {
		if err := child.Base().RecomputeLayout(cw, ch); err != nil {
			warn("controls", "relayout", "%v", err)
		}
	}
}

// MoveTo places the control inside its parent's client area.
func (c *Context) MoveTo(x, y int) bool {
	if c.dead {
		return false
	}
	c.X, c.Y = x, y
	return true
}

// SetMinSize sets the lower size bound and resizes if needed.
func (c *Context) SetMinSize(width, height int) bool {
	if c.dead {
		return false
	}
	c.MinWidth, c.MinHeight = max(width, 0), max(height, 0)
	return c.Resize(c.Width, c.Height)
}

// SetMaxSize sets the upper size bound; zero means unbounded.
func (c *Context) SetMaxSize(width, height int) bool {
	if c.dead {
		return false
	}
	c.MaxWidth, c.MaxHeight = max(width, 0), max(height, 0)
	return c.Resize(c.Width, c.Height)
}

// UpdateClip recomputes the screen clip from the parent's client clip
// and propagates to the children.
func (c *Context) UpdateClip(parentClient renderer.Clip, screen core.ScreenRect) {
	c.screen = screen
	c.ScreenClip = parentClient.Child(c.X, c.Y, c.Width, c.Height)
	client := c.ClientClip()
	for _, ch := range c.children {
		ch.Base().UpdateClip(client, screen)
	}
}

// parentClientClip returns the clip the control is laid out in.
func (c *Context) parentClientClip() renderer.Clip {
	if c.Parent == nil {
		return renderer.NewClip(c.X, c.Y, c.Width, c.Height)
	}
	return c.Parent.Base().ClientClip()
}

// applyLayout replaces the layout and refreshes the clips of the
// control and its children.
func (c *Context) applyLayout(format string) error {
	if err := c.SetLayout(format); err != nil {
		return err
	}
	c.UpdateClip(c.parentClientClip(), c.screen)
	return nil
}

// ClientClip returns the clip of the client area.
func (c *Context) ClientClip() renderer.Clip {
	w, h := c.ClientSize()
	return c.ScreenClip.Child(c.Margins.Left, c.Margins.Top, w, h)
}

// AddControl adds child to this control. The child inherits the theme
// when it has none and is laid out immediately.
func (c *Context) AddControl(child Control) bool {
	if c.dead || child == nil {
		return false
	}
	cc := child.Base()
	if cc.dead || cc.Parent != nil {
		return false
	}
	cc.Parent = c.self
	if cc.Theme == nil {
		cc.SetTheme(c.Theme)
	}
	if cc.Clipboard == nil {
		cc.SetClipboard(c.Clipboard)
	}
	c.children = append(c.children, child)
	cw, ch := c.ClientSize()
	if err := cc.RecomputeLayout(cw, ch); err != nil {
		warn("controls", "add", "%v", err)
	}
	cc.UpdateClip(c.ClientClip(), c.screen)
	return true
}

// RemoveControl detaches child without destroying it.
func (c *Context) RemoveControl(child Control) bool {
	if c.dead {
		return false
	}
	i := slices.Index(c.children, child)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	switch {
	case i == c.current:
		c.current = -1
	case i < c.current:
		c.current--
	}
	cc := child.Base()
	cc.Parent = nil
	if cc.focused {
		applyFocus(child, false)
	}
	return true
}

// Children returns a copy of the child list.
func (c *Context) Children() []Control {
	return slices.Clone(c.children)
}

// ChildrenCount returns the number of children.
func (c *Context) ChildrenCount() int { return len(c.children) }

// Child returns child i.
func (c *Context) Child(i int) (Control, bool) {
	if i < 0 || i >= len(c.children) {
		return nil, false
	}
	return c.children[i], true
}

// FocusedChild returns the child on the focus path.
func (c *Context) FocusedChild() Control {
	if c.current < 0 || c.current >= len(c.children) {
		return nil
	}
	return c.children[c.current]
}

// RaiseEvent sends an event up the parent chain. It reports whether a
// handler consumed it.
func (c *Context) RaiseEvent(t EventType, id int) bool {
	if c.dead {
		return false
	}
	ev := Event{Type: t, Source: c.self, ID: id}
	for cur := c.self; cur != nil; cur = cur.Base().Parent {
		ctx := cur.Base()
		if h := ctx.handlers; h != nil && h.OnEvent != nil && h.OnEvent(ev) {
			return true
		}
		if cur.OnEvent(ev) {
			return true
		}
	}
	return false
}

// ExpandView turns the control into its popup form. The control adjusts
// the clip in OnExpandView.
func (c *Context) ExpandView() bool {
	if c.dead || c.Flags.Has(FlagExpanded) {
		return false
	}
	c.Flags.Set(FlagExpanded)
	clip := c.ScreenClip
	c.self.OnExpandView(&clip)
	c.ExpandedViewClip = clip
	if t, ok := Root(c.self).(PopupTracker); ok {
		t.TrackExpanded(c.self, true)
	}
	return true
}

// PackView reverts ExpandView.
func (c *Context) PackView() bool {
	if c.dead || !c.Flags.Has(FlagExpanded) {
		return false
	}
	c.Flags.Clear(FlagExpanded)
	c.self.OnPackView()
	if t, ok := Root(c.self).(PopupTracker); ok {
		t.TrackExpanded(c.self, false)
	}
	return true
}

// Destroy removes c from its parent and destroys it with all its
// children. Every method of a destroyed control fails.
func Destroy(c Control) {
	ctx := c.Base()
	if ctx.dead {
		return
	}
	ctx.PackView()
	if ctx.Parent != nil {
		ctx.Parent.Base().RemoveControl(c)
	}
	destroy(c)
}

func destroy(c Control) {
	ctx := c.Base()
	for _, ch := range ctx.children {
		destroy(ch)
	}
	ctx.children = nil
	ctx.handlers = nil
	ctx.Parent = nil
	ctx.current = -1
	ctx.dead = true
}
