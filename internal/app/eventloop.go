package app

import (
	"time"

	"github.com/dshills/cellkit/internal/controls"
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/theme"
)

// themeReload carries a reloaded theme from the watcher goroutine.
type themeReload struct {
	cfg theme.Config
	err error
}

// Post runs fn on the event loop. It may be called from any goroutine;
// without a backend fn runs immediately.
func (a *Application) Post(fn func()) {
	if a.backend == nil {
		fn()
		return
	}
	a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: fn})
}

// ProcessEvent routes one backend event. Windows that exited outside a
// modal loop are removed afterwards.
func (a *Application) ProcessEvent(ev backend.Event) {
	start := time.Now()
	switch ev.Type {
	case backend.EventResize:
		a.resize(ev.Width, ev.Height)
	case backend.EventKey:
		a.handleKey(ev)
	case backend.EventMouse:
		a.handleMouse(ev)
	case backend.EventFocus:
		controls.Activate(a.desktop, ev.Focused)
	case backend.EventInterrupt:
		a.handleInterrupt(ev.Data)
	case backend.EventPaste:
		// pasted text arrives as key events between the markers
	}
	a.removeExited()
	a.metrics.RecordEvent(time.Since(start))
}

func (a *Application) handleInterrupt(data any) {
	switch d := data.(type) {
	case themeReload:
		if d.err != nil {
			a.log.WithField("path", a.themePath).Warn("theme reload failed: %v", d.err)
			return
		}
		a.ApplyTheme(d.cfg)
		a.log.WithField("path", a.themePath).Info("theme reloaded")
	case func():
		d()
	}
}

// handleKey gives the key to the first of: the popup menu, an open
// window menu, the expanded control, the focus path of the desktop.
func (a *Application) handleKey(ev backend.Event) {
	k, ch := input.FromEvent(ev)
	if k == input.KeyNone && ch == 0 {
		return
	}
	if a.popup != nil && a.popup.IsOpen() {
		a.popup.OnKeyEvent(k)
		if !a.popup.IsOpen() {
			a.popup = nil
		}
		return
	}
	if fw := a.FocusedWindow(); fw != nil && fw.MenuBar() != nil && fw.MenuBar().IsOpen() {
		fw.OnKeyEvent(k, ch)
		return
	}
	if ec := a.expanded; ec != nil {
		if !ec.OnKeyEvent(k, ch) && k == input.KeyEscape {
			ec.Base().PackView()
		}
		return
	}
	if !controls.DispatchKey(a.desktop, k, ch) {
		a.metrics.RecordIgnored()
	}
}

// handleMouse turns held-button reports into press, drag, release and
// move calls.
func (a *Application) handleMouse(ev backend.Event) {
	button, wheel := input.MouseFromEvent(ev)
	x, y := ev.MouseX, ev.MouseY
	switch {
	case wheel != input.WheelNone:
		a.mouseWheel(x, y, wheel)
	case button != input.MouseNone && a.buttons == input.MouseNone:
		a.buttons = button
		a.mousePressed(x, y, button)
	case button != input.MouseNone:
		a.mouseDrag(x, y, button)
	case a.buttons != input.MouseNone:
		released := a.buttons
		a.buttons = input.MouseNone
		a.mouseReleased(x, y, released)
	default:
		a.mouseMove(x, y)
	}
}

// windowOf returns the desktop child holding c.
func (a *Application) windowOf(c controls.Control) *controls.Window {
	for ; c != nil; c = c.Base().Parent {
		if c.Base().Parent == controls.Control(a.desktop) {
			w, _ := c.(*controls.Window)
			return w
		}
	}
	return nil
}

// target returns the control under the screen point that may receive
// input, nil for the desktop and for anything outside the modal window.
func (a *Application) target(x, y int) controls.Control {
	if ec := a.expanded; ec != nil && ec.Base().ExpandedViewClip.Contains(x, y) {
		return ec
	}
	hit := controls.HitTest(a.desktop, x, y)
	if hit == nil || hit == controls.Control(a.desktop) {
		return nil
	}
	if m := a.activeModal(); m != nil && a.windowOf(hit) != m {
		return nil
	}
	return hit
}

func (a *Application) openBar() *controls.Window {
	fw := a.FocusedWindow()
	if fw != nil && fw.MenuBar() != nil && fw.MenuBar().IsOpen() {
		return fw
	}
	return nil
}

func (a *Application) mousePressed(x, y int, button input.MouseButton) {
	if a.popup != nil && a.popup.IsOpen() {
		a.popup.OnMousePressed(x, y)
		if !a.popup.IsOpen() {
			a.popup = nil
		}
		return
	}
	if fw := a.openBar(); fw != nil {
		lx, ly := controls.ToLocal(fw, x, y)
		if fw.OnMousePressed(lx, ly, button) {
			a.captured = fw
		}
		return
	}
	if ec := a.expanded; ec != nil && !ec.Base().ExpandedViewClip.Contains(x, y) {
		ec.Base().PackView()
		return
	}

	hit := a.target(x, y)
	if hit == nil {
		a.metrics.RecordIgnored()
		if a.activeModal() != nil && a.backend != nil {
			a.backend.Beep()
		}
		return
	}
	if w := a.windowOf(hit); w != nil && w != a.FocusedWindow() {
		a.desktop.BringToFront(w)
	}
	if hit != a.expanded {
		for c := hit; c != nil && c != controls.Control(a.desktop); c = c.Base().Parent {
			if c.Base().Flags.Has(controls.FlagTabStop) {
				c.Base().SetFocus()
				break
			}
		}
	}
	for c := hit; c != nil && c != controls.Control(a.desktop); c = c.Base().Parent {
		if !c.Base().IsEnabled() {
			continue
		}
		lx, ly := controls.ToLocal(c, x, y)
		if c.OnMousePressed(lx, ly, button) {
			a.captured = c
			return
		}
	}
}

func (a *Application) mouseDrag(x, y int, button input.MouseButton) {
	if c := a.captured; c != nil && !c.Base().IsDestroyed() {
		lx, ly := controls.ToLocal(c, x, y)
		c.OnMouseDrag(lx, ly, button)
		return
	}
	if a.popup != nil && a.popup.IsOpen() {
		a.popup.OnMouseMove(x, y)
	}
}

func (a *Application) mouseReleased(x, y int, button input.MouseButton) {
	c := a.captured
	a.captured = nil
	if c == nil || c.Base().IsDestroyed() {
		return
	}
	lx, ly := controls.ToLocal(c, x, y)
	c.OnMouseReleased(lx, ly, button)
}

func (a *Application) mouseMove(x, y int) {
	if a.popup != nil && a.popup.IsOpen() {
		a.popup.OnMouseMove(x, y)
		return
	}
	if fw := a.openBar(); fw != nil {
		lx, ly := controls.ToLocal(fw, x, y)
		fw.OnMouseOver(lx, ly)
		return
	}
	t := a.target(x, y)
	if t != a.hovered {
		if h := a.hovered; h != nil && !h.Base().IsDestroyed() {
			controls.SetMouseOver(h, false)
		}
		a.hovered = t
		if t != nil {
			controls.SetMouseOver(t, true)
		}
	}
	if t != nil {
		lx, ly := controls.ToLocal(t, x, y)
		t.OnMouseOver(lx, ly)
	}
}

func (a *Application) mouseWheel(x, y int, dir input.WheelDirection) {
	if a.popup != nil && a.popup.IsOpen() {
		a.popup.OnMouseWheel(x, y, dir)
		return
	}
	if fw := a.openBar(); fw != nil {
		lx, ly := controls.ToLocal(fw, x, y)
		fw.OnMouseWheel(lx, ly, dir)
		return
	}
	for c := a.target(x, y); c != nil && c != controls.Control(a.desktop); c = c.Base().Parent {
		lx, ly := controls.ToLocal(c, x, y)
		if c.OnMouseWheel(lx, ly, dir) {
			return
		}
	}
	a.metrics.RecordIgnored()
}
