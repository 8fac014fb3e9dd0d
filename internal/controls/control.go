// Package controls implements the control tree and the widget library.
//
// Every control owns exactly one context: a typed struct embedding the
// shared Context. Controls expose it through Base() and, for the typed
// part, through StateOf. Containers are controls too; any control can
// hold children laid out inside its client area.
package controls

import (
	"errors"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/menu"
	"github.com/dshills/cellkit/internal/renderer"
)

// ErrDestroyed is returned when a control is created inside a destroyed
// parent.
var ErrDestroyed = errors.New("control destroyed")

// ErrInvalidSize is returned for controls created with impossible
// dimensions, such as a grid without rows.
var ErrInvalidSize = errors.New("invalid control size")

// MenuHost is implemented by the root of a control tree that can show
// popup menus on behalf of its descendants.
type MenuHost interface {
	ShowPopupMenu(m *menu.Menu, screenX, screenY int)
}

// PopupTracker is implemented by a root that paints expanded controls
// on top of everything else and routes input to them first.
type PopupTracker interface {
	TrackExpanded(c Control, expanded bool)
}

// showPopupMenu opens m at control-local (x, y) through the root.
func showPopupMenu(c Control, m *menu.Menu, x, y int) bool {
	host, ok := Root(c).(MenuHost)
	if !ok {
		warn("controls", "popup-menu", "root of %T cannot show menus", c)
		return false
	}
	clip := c.Base().ScreenClip
	host.ShowPopupMenu(m, clip.ScreenX+x, clip.ScreenY+y)
	return true
}

// Container is anything a control can be added to.
type Container interface {
	Base() *Context
}

// Control is implemented by every widget. The hooks are called by the
// application with control-local coordinates; the boolean results tell
// the caller whether the event was used (and a repaint is needed).
type Control interface {
	Container

	Paint(r *renderer.Renderer)
	OnKeyEvent(k input.Key, ch rune) bool
	OnHotKey()

	OnMousePressed(x, y int, button input.MouseButton) bool
	OnMouseReleased(x, y int, button input.MouseButton) bool
	OnMouseDrag(x, y int, button input.MouseButton) bool
	OnMouseOver(x, y int) bool
	OnMouseWheel(x, y int, dir input.WheelDirection) bool
	OnMouseEnter() bool
	OnMouseLeave() bool

	OnFocus()
	OnLoseFocus()
	OnEvent(ev Event) bool

	OnExpandView(clip *renderer.Clip)
	OnPackView()
	OnAfterResize(width, height int)
}

// Stateful is implemented by controls that expose a typed context.
type Stateful[T any] interface {
	State() T
}

// StateOf returns the typed context of c when c carries one of type T.
func StateOf[T any](c Control) (T, bool) {
	s, ok := c.(Stateful[T])
	if !ok {
		var zero T
		return zero, false
	}
	return s.State(), true
}

// base supplies no-op hooks; concrete controls override what they use.
type base struct {
	ctx *Context
}

// Base returns the shared context.
func (b *base) Base() *Context { return b.ctx }

func (b *base) Paint(*renderer.Renderer)                         {}
func (b *base) OnKeyEvent(input.Key, rune) bool                  { return false }
func (b *base) OnHotKey()                                        { b.ctx.SetFocus() }
func (b *base) OnMousePressed(int, int, input.MouseButton) bool  { return false }
func (b *base) OnMouseReleased(int, int, input.MouseButton) bool { return false }
func (b *base) OnMouseDrag(int, int, input.MouseButton) bool     { return false }
func (b *base) OnMouseOver(int, int) bool                        { return false }
func (b *base) OnMouseWheel(int, int, input.WheelDirection) bool { return false }
func (b *base) OnMouseEnter() bool                               { return false }
func (b *base) OnMouseLeave() bool                               { return false }
func (b *base) OnFocus()                                         {}
func (b *base) OnLoseFocus()                                     {}
func (b *base) OnEvent(Event) bool                               { return false }
func (b *base) OnExpandView(*renderer.Clip)                      {}
func (b *base) OnPackView()                                      {}
func (b *base) OnAfterResize(int, int)                           {}

// EventType identifies a control notification.
type EventType uint8

// Control notifications.
const (
	EventCommand EventType = iota
	EventCheckedStatusChanged
	EventCurrentItemChanged
	EventValueChanged
	EventTextChanged
	EventItemActivated
	EventSplitterPositionChanged
	EventTabChanged
	EventWindowClose
	EventWindowAccept
)

var eventNames = [...]string{
	EventCommand:                 "Command",
	EventCheckedStatusChanged:    "CheckedStatusChanged",
	EventCurrentItemChanged:      "CurrentItemChanged",
	EventValueChanged:            "ValueChanged",
	EventTextChanged:             "TextChanged",
	EventItemActivated:           "ItemActivated",
	EventSplitterPositionChanged: "SplitterPositionChanged",
	EventTabChanged:              "TabChanged",
	EventWindowClose:             "WindowClose",
	EventWindowAccept:            "WindowAccept",
}

// String implements fmt.Stringer.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "Unknown"
}

// Event is raised by a control and bubbles up through its ancestors
// until a handler consumes it.
type Event struct {
	Type   EventType
	Source Control
	// ID is the command ID for EventCommand and the source control's ID
	// otherwise.
	ID int
}

// Handlers are optional callbacks installed on a single control. A
// handler returning true replaces the default behaviour.
type Handlers struct {
	OnKeyEvent  func(c Control, k input.Key, ch rune) bool
	OnPaint     func(c Control, r *renderer.Renderer) bool
	OnFocus     func(c Control)
	OnLoseFocus func(c Control)
	OnEvent     func(ev Event) bool
}

func warn(component, op, format string, args ...any) {
	logging.Component(component).WithField("op", op).Warn(format, args...)
}
