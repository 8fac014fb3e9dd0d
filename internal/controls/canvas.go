package controls

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/renderer/core"
)

// CanvasContext is the state of a Canvas.
type CanvasContext struct {
	Context
	surface          *backend.ScreenBuffer
	dragX, dragY     int
	dragging         bool
	scrollX, scrollY int
}

// Canvas shows a cell surface that may be larger than the control.
// The visible part scrolls with the arrow keys and by dragging.
type Canvas struct {
	base
	ctx *CanvasContext
}

// NewCanvas creates a canvas with a width x height surface.
func NewCanvas(parent Container, format string, width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	cv := &Canvas{ctx: &CanvasContext{
		Context: Context{MinWidth: 1, MinHeight: 1},
		surface: backend.NewScreenBuffer(width, height),
	}}
	cv.base.ctx = &cv.ctx.Context
	if err := cv.ctx.init(cv, parent, format, FlagEnabled|FlagVisible|FlagTabStop); err != nil {
		return nil, err
	}
	return cv, nil
}

// State returns the typed context.
func (cv *Canvas) State() *CanvasContext { return cv.ctx }

// Surface returns the buffer the canvas shows.
func (cv *Canvas) Surface() *backend.ScreenBuffer { return cv.ctx.surface }

// Renderer returns a renderer drawing onto the surface.
func (cv *Canvas) Renderer() *renderer.Renderer { return renderer.New(cv.ctx.surface) }

// ResizeSurface changes the surface size, keeping the overlapping cells.
func (cv *Canvas) ResizeSurface(width, height int) bool {
	c := cv.ctx
	if c.dead || width <= 0 || height <= 0 {
		return false
	}
	c.surface.Resize(width, height)
	c.scrollTo(c.scrollX, c.scrollY)
	return true
}

// Scroll returns the surface point shown at the top-left corner.
func (cv *Canvas) Scroll() (x, y int) { return cv.ctx.scrollX, cv.ctx.scrollY }

// ScrollTo moves the view so (x, y) of the surface is at the top-left
// corner, clamped to the surface.
func (cv *Canvas) ScrollTo(x, y int) bool {
	if cv.ctx.dead {
		return false
	}
	return cv.ctx.scrollTo(x, y)
}

func (c *CanvasContext) scrollTo(x, y int) bool {
	sw, sh := c.surface.Size()
	maxX, maxY := max(sw-c.Width, 0), max(sh-c.Height, 0)
	x, y = min(max(x, 0), maxX), min(max(y, 0), maxY)
	c.ScrollBars.SetMaxHorizontal(uint64(maxX))
	c.ScrollBars.SetMaxVertical(uint64(maxY))
	c.ScrollBars.SetHorizontal(uint64(x))
	c.ScrollBars.SetVertical(uint64(y))
	moved := x != c.scrollX || y != c.scrollY
	c.scrollX, c.scrollY = x, y
	return moved
}

// OnAfterResize keeps the view inside the surface.
func (cv *Canvas) OnAfterResize(int, int) { cv.ctx.scrollTo(cv.ctx.scrollX, cv.ctx.scrollY) }

// OnKeyEvent implements Control.
func (cv *Canvas) OnKeyEvent(k input.Key, _ rune) bool {
	c := cv.ctx
	sw, sh := c.surface.Size()
	x, y := c.scrollX, c.scrollY
	switch k {
	case input.KeyLeft:
		x--
	case input.KeyRight:
		x++
	case input.KeyUp:
		y--
	case input.KeyDown:
		y++
	case input.KeyPageUp:
		y -= max(c.Height, 1)
	case input.KeyPageDown:
		y += max(c.Height, 1)
	case input.KeyHome:
		x, y = 0, 0
	case input.KeyEnd:
		x, y = sw, sh
	default:
		return false
	}
	c.scrollTo(x, y)
	return true
}

// OnMousePressed starts a drag.
func (cv *Canvas) OnMousePressed(x, y int, button input.MouseButton) bool {
	if !button.Has(input.MouseLeft) {
		return false
	}
	c := cv.ctx
	c.dragging, c.dragX, c.dragY = true, x, y
	return true
}

// OnMouseDrag scrolls the surface with the pointer.
func (cv *Canvas) OnMouseDrag(x, y int, _ input.MouseButton) bool {
	c := cv.ctx
	if !c.dragging {
		return false
	}
	moved := c.scrollTo(c.scrollX-(x-c.dragX), c.scrollY-(y-c.dragY))
	c.dragX, c.dragY = x, y
	return moved
}

// OnMouseReleased ends a drag.
func (cv *Canvas) OnMouseReleased(int, int, input.MouseButton) bool {
	c := cv.ctx
	was := c.dragging
	c.dragging = false
	return was
}

// OnMouseWheel scrolls by one row or column.
func (cv *Canvas) OnMouseWheel(_, _ int, dir input.WheelDirection) bool {
	c := cv.ctx
	switch dir {
	case input.WheelUp:
		return c.scrollTo(c.scrollX, c.scrollY-1)
	case input.WheelDown:
		return c.scrollTo(c.scrollX, c.scrollY+1)
	case input.WheelLeft:
		return c.scrollTo(c.scrollX-1, c.scrollY)
	case input.WheelRight:
		return c.scrollTo(c.scrollX+1, c.scrollY)
	}
	return false
}

// Paint copies the visible part of the surface.
func (cv *Canvas) Paint(r *renderer.Renderer) {
	c := cv.ctx
	if c.Theme == nil {
		return
	}
	r.Clear(' ', core.Pair(c.Theme.Text.Normal.Foreground, c.Theme.Background.Regular))
	sw, sh := c.surface.Size()
	for y := 0; y < c.Height && c.scrollY+y < sh; y++ {
		for x := 0; x < c.Width && c.scrollX+x < sw; x++ {
			cell := c.surface.GetCell(c.scrollX+x, c.scrollY+y)
			if cell.IsContinuation() {
				continue
			}
			r.WriteCharacter(x, y, cell.Rune, cell.Colors)
		}
	}
}
