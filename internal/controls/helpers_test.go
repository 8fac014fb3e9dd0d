package controls

import (
	"strings"

	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/menu"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/renderer/core"
	"github.com/dshills/cellkit/internal/theme"
)

// testRoot is a minimal desktop: it owns the theme and clipboard and
// shows popup menus.
type testRoot struct {
	base
	ctx   *Context
	board *clipboard.Memory

	shown        *menu.Menu
	menuX, menuY int
	expanded     Control
}

func newTestRoot(width, height int) *testRoot {
	r := &testRoot{ctx: &Context{}, board: &clipboard.Memory{}}
	r.base.ctx = r.ctx
	r.ctx.initRoot(r, FlagEnabled|FlagVisible)
	th := theme.Dark()
	r.ctx.Theme = &th
	r.ctx.Clipboard = r.board
	r.ctx.Resize(width, height)
	r.relayout()
	return r
}

func (r *testRoot) relayout() {
	r.ctx.UpdateClip(renderer.NewClip(0, 0, r.ctx.Width, r.ctx.Height), core.RectFromSize(0, 0, r.ctx.Width, r.ctx.Height))
}

func (r *testRoot) ShowPopupMenu(m *menu.Menu, x, y int) {
	r.shown, r.menuX, r.menuY = m, x, y
	m.Show(x, y, r.ctx.Width, r.ctx.Height)
}

func (r *testRoot) TrackExpanded(c Control, on bool) {
	switch {
	case on:
		r.expanded = c
	case r.expanded == c:
		r.expanded = nil
	}
}

// paint renders the whole tree, then the expanded control, and returns
// the buffer.
func (r *testRoot) paint() *backend.ScreenBuffer {
	r.relayout()
	buf := backend.NewScreenBuffer(r.ctx.Width, r.ctx.Height)
	rd := renderer.New(buf)
	PaintTree(rd, r)
	if r.expanded != nil {
		PaintExpanded(rd, r.expanded)
	}
	return buf
}

func rowText(buf *backend.ScreenBuffer, y int) string {
	w, _ := buf.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := buf.GetCell(x, y)
		if c.IsContinuation() {
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}
