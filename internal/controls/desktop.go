package controls

import (
	"slices"

	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/menu"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/core"
	"github.com/dshills/cellkit/internal/theme"
)

// DesktopHost receives the popup requests that reach the desktop.
type DesktopHost interface {
	MenuHost
	PopupTracker
}

// DesktopContext is the state of a Desktop.
type DesktopContext struct {
	Context
	fill rune
	host DesktopHost
}

// Desktop is the root of the window tree. It fills the screen and keeps
// the windows in paint order, the last one being on top.
type Desktop struct {
	base
	ctx *DesktopContext
}

// NewDesktop creates a desktop that forwards popup requests to host.
func NewDesktop(host DesktopHost, t *theme.Config, cb clipboard.Clipboard) *Desktop {
	d := &Desktop{ctx: &DesktopContext{fill: ' ', host: host}}
	d.base.ctx = &d.ctx.Context
	d.ctx.initRoot(d, FlagEnabled|FlagVisible)
	d.ctx.Theme = t
	d.ctx.Clipboard = cb
	return d
}

// State returns the typed context.
func (d *Desktop) State() *DesktopContext { return d.ctx }

// SetFill sets the character painted where no window is.
func (d *Desktop) SetFill(ch rune) {
	if ch != 0 {
		d.ctx.fill = ch
	}
}

// SetScreenSize resizes the desktop to the screen, lays out every
// window again and refreshes the clips.
func (d *Desktop) SetScreenSize(width, height int) {
	c := d.ctx
	c.X, c.Y = 0, 0
	c.Resize(width, height)
	c.UpdateClip(renderer.NewClip(0, 0, c.Width, c.Height), core.RectFromSize(0, 0, c.Width, c.Height))
}

// RefreshClips recomputes every clip without a relayout.
func (d *Desktop) RefreshClips() {
	c := d.ctx
	c.UpdateClip(renderer.NewClip(0, 0, c.Width, c.Height), core.RectFromSize(0, 0, c.Width, c.Height))
}

// BringToFront moves w to the top of the paint order and gives it the
// focus.
func (d *Desktop) BringToFront(w Control) bool {
	c := d.ctx
	i := slices.Index(c.children, w)
	if i < 0 {
		return false
	}
	if i != len(c.children)-1 {
		c.children = append(slices.Delete(c.children, i, i+1), w)
		if c.current == i {
			c.current = len(c.children) - 1
		}
	}
	return w.Base().SetFocus()
}

// TopWindow returns the topmost visible child.
func (d *Desktop) TopWindow() Control {
	ch := d.ctx.children
	for i := len(ch) - 1; i >= 0; i-- {
		if usable(ch[i].Base()) {
			return ch[i]
		}
	}
	return nil
}

// ShowPopupMenu implements MenuHost.
func (d *Desktop) ShowPopupMenu(m *menu.Menu, x, y int) {
	if d.ctx.host != nil {
		d.ctx.host.ShowPopupMenu(m, x, y)
	}
}

// TrackExpanded implements PopupTracker.
func (d *Desktop) TrackExpanded(c Control, expanded bool) {
	if d.ctx.host != nil {
		d.ctx.host.TrackExpanded(c, expanded)
	}
}

// Paint implements Control.
func (d *Desktop) Paint(r *renderer.Renderer) {
	if d.ctx.Theme == nil {
		return
	}
	r.Clear(d.ctx.fill, d.ctx.Theme.Desktop)
}
