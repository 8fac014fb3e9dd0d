package app

import (
	"strings"
	"time"

	"github.com/dshills/cellkit/internal/controls"
	"github.com/dshills/cellkit/internal/renderer"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/theme"
)

// Paint draws the desktop, the windows bottom to top, the expanded
// control and the open menus, then flushes the changed cells to the
// backend.
func (a *Application) Paint() {
	start := time.Now()
	r := renderer.New(a.buf)
	a.desktop.RefreshClips()
	controls.PaintTree(r, a.desktop)
	if a.expanded != nil {
		controls.PaintExpanded(r, a.expanded)
	}
	if fw := a.FocusedWindow(); fw != nil && fw.MenuBar() != nil {
		fw.MenuBar().PaintMenus(r)
	}
	if a.popup != nil && a.popup.IsOpen() {
		a.popup.Paint(r)
	}

	cells := 0
	if a.backend != nil {
		if x, y, ok := r.Cursor(); ok {
			a.backend.ShowCursor(x, y)
		} else {
			a.backend.HideCursor()
		}
		cells = a.buf.Flush(a.backend)
	}
	a.metrics.RecordFrame(time.Since(start), cells)
}

// ScreenLines returns the painted screen, one string per row. Wide
// rune continuation cells are skipped.
func (a *Application) ScreenLines() []string {
	w, h := a.buf.Size()
	lines := make([]string, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			c := a.buf.GetCell(x, y)
			switch {
			case c.IsContinuation():
			case c.Rune == 0:
				b.WriteRune(' ')
			default:
				b.WriteRune(c.Rune)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// ScreenText returns the painted screen as text, rows separated by
// newlines.
func (a *Application) ScreenText() string {
	return strings.Join(a.ScreenLines(), "\n")
}

func (a *Application) startThemeWatcher() {
	w, err := theme.NewWatcher(a.themePath, func(cfg theme.Config, err error) {
		a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: themeReload{cfg: cfg, err: err}})
	})
	if err != nil {
		a.log.WithField("path", a.themePath).Warn("theme watcher: %v", err)
		return
	}
	a.watcher = w
}

func (a *Application) stopThemeWatcher() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Close(); err != nil {
		a.log.Warn("closing theme watcher: %v", err)
	}
	a.watcher = nil
}
