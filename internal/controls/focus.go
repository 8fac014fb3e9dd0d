package controls

import (
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer"
)

// Root returns the topmost ancestor of c.
func Root(c Control) Control {
	for c.Base().Parent != nil {
		c = c.Base().Parent
	}
	return c
}

func usable(c *Context) bool {
	return !c.dead && c.Flags.Has(FlagEnabled|FlagVisible)
}

// SetFocus moves the focus path of the control's root to this control.
// The control and all its ancestors must be enabled and visible.
func (c *Context) SetFocus() bool {
	if !usable(c) {
		return false
	}
	for cur := c.self; cur.Base().Parent != nil; cur = cur.Base().Parent {
		p := cur.Base().Parent.Base()
		if !usable(p) {
			return false
		}
	}
	for cur := c.self; cur.Base().Parent != nil; cur = cur.Base().Parent {
		p := cur.Base().Parent.Base()
		for i, ch := range p.children {
			if ch == cur {
				p.current = i
				break
			}
		}
	}
	refreshFocus(Root(c.self))
	return true
}

// Activate marks root as the active window (or not) and refreshes the
// focus flags of its focus path.
func Activate(root Control, active bool) {
	if !active {
		applyFocus(root, false)
		return
	}
	if !root.Base().focused {
		setFocused(root, true)
	}
	refreshFocus(root)
}

func refreshFocus(root Control) {
	if !root.Base().focused {
		return
	}
	walkFocus(root, true, false)
	walkFocus(root, true, true)
}

// walkFocus applies one phase of a focus change: first all losses, then
// all gains, so OnLoseFocus always runs before OnFocus.
func walkFocus(c Control, on, gaining bool) {
	ctx := c.Base()
	if ctx.focused != on && on == gaining {
		setFocused(c, on)
	}
	for i, ch := range ctx.children {
		walkFocus(ch, on && i == ctx.current && usable(ch.Base()), gaining)
	}
}

func applyFocus(c Control, on bool) {
	walkFocus(c, on, false)
	if on {
		walkFocus(c, on, true)
	}
}

func setFocused(c Control, on bool) {
	ctx := c.Base()
	ctx.focused = on
	h := ctx.handlers
	if on {
		c.OnFocus()
		if h != nil && h.OnFocus != nil {
			h.OnFocus(c)
		}
		return
	}
	c.OnLoseFocus()
	if h != nil && h.OnLoseFocus != nil {
		h.OnLoseFocus(c)
	}
}

// FocusedLeaf follows the focus path from c down to the deepest usable
// control.
func FocusedLeaf(c Control) Control {
	for {
		next := c.Base().FocusedChild()
		if next == nil || !usable(next.Base()) {
			return c
		}
		c = next
	}
}

func tabStops(c Control, out []Control) []Control {
	for _, ch := range c.Base().children {
		cc := ch.Base()
		if !usable(cc) {
			continue
		}
		if cc.Flags.Has(FlagTabStop) {
			out = append(out, ch)
		}
		out = tabStops(ch, out)
	}
	return out
}

// FocusNext moves the focus to the next (or previous) tab stop below
// root, wrapping around.
func FocusNext(root Control, forward bool) bool {
	stops := tabStops(root, nil)
	if len(stops) == 0 {
		return false
	}
	leaf := FocusedLeaf(root)
	pos := -1
	for i, s := range stops {
		if s == leaf {
			pos = i
			break
		}
	}
	// a focused container sits just before its first descendant stop
	inside := false
	if pos < 0 {
		for i, s := range stops {
			if isAncestor(leaf, s) {
				pos, inside = i, true
				break
			}
		}
	}
	n := len(stops)
	var next int
	switch {
	case pos < 0 && forward:
		next = 0
	case pos < 0:
		next = n - 1
	case forward && inside:
		next = pos
	case forward:
		next = (pos + 1) % n
	default:
		next = (pos - 1 + n) % n
	}
	return stops[next].Base().SetFocus()
}

func isAncestor(a, c Control) bool {
	for cur := c.Base().Parent; cur != nil; cur = cur.Base().Parent {
		if cur == a {
			return true
		}
	}
	return false
}

// FindHotKey returns the first usable control below root whose hot key
// is k.
func FindHotKey(root Control, k input.Key) Control {
	if k == input.KeyNone {
		return nil
	}
	for _, ch := range root.Base().children {
		cc := ch.Base()
		if !usable(cc) {
			continue
		}
		if cc.HotKey == k {
			return ch
		}
		if found := FindHotKey(ch, k); found != nil {
			return found
		}
	}
	return nil
}

// DispatchKey delivers a key to the focused leaf below root and bubbles
// it up to root until a control uses it.
func DispatchKey(root Control, k input.Key, ch rune) bool {
	stop := root.Base().Parent
	for cur := FocusedLeaf(root); cur != nil && cur != stop; cur = cur.Base().Parent {
		ctx := cur.Base()
		if !usable(ctx) {
			continue
		}
		if h := ctx.handlers; h != nil && h.OnKeyEvent != nil && h.OnKeyEvent(cur, k, ch) {
			return true
		}
		if cur.OnKeyEvent(k, ch) {
			return true
		}
	}
	return false
}

// HitTest returns the deepest visible control under the screen point.
func HitTest(c Control, x, y int) Control {
	ctx := c.Base()
	if ctx.dead || !ctx.Flags.Has(FlagVisible) || !ctx.ScreenClip.Contains(x, y) {
		return nil
	}
	for i := len(ctx.children) - 1; i >= 0; i-- {
		if hit := HitTest(ctx.children[i], x, y); hit != nil {
			return hit
		}
	}
	return c
}

// ToLocal converts screen coordinates to the control's own.
func ToLocal(c Control, x, y int) (int, int) {
	clip := c.Base().ScreenClip
	if c.Base().Flags.Has(FlagExpanded) {
		clip = c.Base().ExpandedViewClip
	}
	return x - clip.ScreenX, y - clip.ScreenY
}

// SetMouseOver updates the hover flag and calls the enter/leave hooks.
func SetMouseOver(c Control, over bool) bool {
	ctx := c.Base()
	if ctx.mouseOver == over {
		return false
	}
	ctx.mouseOver = over
	if over {
		c.OnMouseEnter()
	} else {
		c.OnMouseLeave()
	}
	return true
}

// PaintTree paints c and its children. Expanded controls are skipped;
// the application paints them on top with PaintExpanded.
func PaintTree(r *renderer.Renderer, c Control) {
	ctx := c.Base()
	if ctx.dead || !ctx.Flags.Has(FlagVisible) || !ctx.ScreenClip.Visible {
		return
	}
	if !ctx.Flags.Has(FlagExpanded) {
		paintOne(r, c, ctx.ScreenClip)
	}
	for _, ch := range ctx.children {
		PaintTree(r, ch)
	}
}

// PaintExpanded paints an expanded control through its popup clip.
func PaintExpanded(r *renderer.Renderer, c Control) {
	ctx := c.Base()
	if ctx.dead || !ctx.Flags.Has(FlagExpanded) {
		return
	}
	paintOne(r, c, ctx.ExpandedViewClip)
}

func paintOne(r *renderer.Renderer, c Control, clip renderer.Clip) {
	r.SetClip(clip)
	if h := c.Base().handlers; h != nil && h.OnPaint != nil && h.OnPaint(c, r) {
		return
	}
	c.Paint(r)
}
