package renderer

import "github.com/dshills/cellkit/internal/renderer/core"

// Clip describes where a control draws: the absolute position of its
// top-left corner and the absolute rectangle it may touch.
type Clip struct {
	// ClipRect is the visible area in screen coordinates.
	ClipRect core.ScreenRect
	// ScreenX, ScreenY is where control-local (0,0) lands on screen.
	ScreenX, ScreenY int
	// Visible is false when nothing of the control is on screen.
	Visible bool
}

// NewClip returns a clip for an unobstructed area.
func NewClip(x, y, width, height int) Clip {
	r := core.RectFromSize(x, y, width, height)
	return Clip{ClipRect: r, ScreenX: x, ScreenY: y, Visible: !r.IsEmpty()}
}

// Child returns the clip of a child placed at (x, y) with the given size
// relative to this clip's origin, limited by this clip's rectangle.
func (c Clip) Child(x, y, width, height int) Clip {
	sx, sy := c.ScreenX+x, c.ScreenY+y
	out := Clip{ScreenX: sx, ScreenY: sy}
	if !c.Visible {
		return out
	}
	out.ClipRect = c.ClipRect.Intersection(core.RectFromSize(sx, sy, width, height))
	out.Visible = !out.ClipRect.IsEmpty()
	return out
}

// Contains reports whether the screen point is inside the visible area.
func (c Clip) Contains(x, y int) bool {
	return c.Visible && c.ClipRect.Contains(x, y)
}

// Width returns the visible width.
func (c Clip) Width() int { return c.ClipRect.Width() }

// Height returns the visible height.
func (c Clip) Height() int { return c.ClipRect.Height() }
