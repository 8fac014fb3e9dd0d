// Package app runs the window desktop: it owns the backend, the screen
// buffer and the theme, routes input events to the windows and paints
// them. All control mutation happens on the goroutine calling Run,
// RunModal or ProcessEvent.
package app

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/controls"
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/menu"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/theme"
)

// Screen size used until a backend reports one.
const (
	defaultWidth  = 80
	defaultHeight = 25
)

// Application is the desktop with its windows.
type Application struct {
	backend   backend.Backend
	buf       *backend.ScreenBuffer
	theme     *theme.Config
	themePath string
	watcher   *theme.Watcher
	clipboard clipboard.Clipboard
	log       *logging.Logger
	metrics   *Metrics

	desktop     *controls.Desktop
	desktopChar rune

	// popups painted above every window
	expanded controls.Control
	popup    *menu.Menu

	// innermost modal window last
	modal []*controls.Window

	// mouse state: the control that took the press, the held buttons
	// and the control under the pointer
	captured controls.Control
	buttons  input.MouseButton
	hovered  controls.Control

	running atomic.Bool
	closing atomic.Bool
}

// New creates an application. The theme file, when given, must load.
func New(opts ...Option) (*Application, error) {
	a := &Application{
		log:         logging.Component("app"),
		metrics:     NewMetrics(),
		desktopChar: ' ',
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.theme == nil {
		t := theme.Dark()
		a.theme = &t
	}
	if a.themePath != "" {
		t, err := theme.LoadFile(a.themePath)
		if err != nil {
			return nil, NewOperationError("load-theme", a.themePath, err)
		}
		a.theme = &t
	}
	if a.clipboard == nil {
		a.clipboard = clipboard.NewSystem()
	}

	a.desktop = controls.NewDesktop(a, a.theme, a.clipboard)
	a.desktop.SetFill(a.desktopChar)
	a.buf = backend.NewScreenBuffer(defaultWidth, defaultHeight)
	w, h := defaultWidth, defaultHeight
	if a.backend != nil {
		if bw, bh := a.backend.Size(); bw > 0 && bh > 0 {
			w, h = bw, bh
		}
	}
	a.resize(w, h)
	controls.Activate(a.desktop, true)
	return a, nil
}

// Desktop returns the root control. Handlers installed on it see every
// key and event no window used.
func (a *Application) Desktop() *controls.Desktop { return a.desktop }

// Theme returns the active theme.
func (a *Application) Theme() *theme.Config { return a.theme }

// Clipboard returns the shared clipboard.
func (a *Application) Clipboard() clipboard.Clipboard { return a.clipboard }

// Logger returns the application logger.
func (a *Application) Logger() *logging.Logger { return a.log }

// Size returns the screen size.
func (a *Application) Size() (int, int) { return a.buf.Size() }

// IsRunning reports whether Run is active.
func (a *Application) IsRunning() bool { return a.running.Load() }

// Run initializes the backend and processes events until ctx is done
// or Close is called. It returns ctx's error or ErrClosed.
func (a *Application) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)
	a.closing.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()
	a.resize(a.backend.Size())

	stop := context.AfterFunc(ctx, a.wake)
	defer stop()

	if a.themePath != "" {
		a.startThemeWatcher()
		defer a.stopThemeWatcher()
	}

	a.log.Info("event loop started (%d windows)", a.desktop.Base().ChildrenCount())
	err := a.loop(ctx, nil)
	if err == nil {
		err = ErrClosed
	}
	s := a.metrics.Snapshot()
	a.log.Debug("frames=%d fps=%.1f cells/frame=%.1f events=%d ignored=%d",
		s.FrameCount, s.AvgFPS(), s.CellsPerFrame(), s.EventCount, s.EventsIgnored)
	a.log.Info("event loop stopped: %v", err)
	return err
}

// loop paints and processes events until done reports true, the
// context ends or the application closes.
func (a *Application) loop(ctx context.Context, done func() bool) error {
	for {
		a.Paint()
		if done != nil && done() {
			return nil
		}
		if a.closing.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		a.ProcessEvent(a.backend.PollEvent())
	}
}

// wake unblocks PollEvent so the loop notices a state change made from
// another goroutine.
func (a *Application) wake() {
	if a.backend != nil {
		a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Close ends Run and every modal loop. It may be called from any
// goroutine.
func (a *Application) Close() {
	if a.closing.CompareAndSwap(false, true) {
		a.wake()
	}
}

// resize adapts the buffer and the desktop to a new screen size.
func (a *Application) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.buf.Resize(width, height)
	a.buf.MarkFullRedraw()
	a.closePopups()
	a.desktop.SetScreenSize(width, height)
}

// ApplyTheme replaces the theme of the desktop, every window and the
// open popup menu.
func (a *Application) ApplyTheme(t theme.Config) {
	a.theme = &t
	a.desktop.Base().SetTheme(a.theme)
	if a.popup != nil {
		a.popup.SetTheme(a.theme)
	}
	a.buf.MarkFullRedraw()
}

// AddWindow puts w on top of the desktop and focuses it. A window
// without a focused control focuses its first tab stop.
func (a *Application) AddWindow(w *controls.Window) error {
	if w == nil || w.Base().IsDestroyed() {
		return NewOperationError("add-window", "", controls.ErrDestroyed)
	}
	title := w.Base().TextString()
	if w.Base().Parent != nil {
		return NewOperationError("add-window", title, ErrWindowAttached)
	}
	if !a.desktop.Base().AddControl(w) {
		return NewOperationError("add-window", title, ErrWindowAttached).WithContext("desktop refused")
	}
	a.desktop.BringToFront(w)
	if controls.FocusedLeaf(w) == controls.Control(w) {
		controls.FocusNext(w, true)
	}
	a.log.WithField("window", title).Debug("window added")
	return nil
}

// RemoveWindow takes w off the desktop and destroys it.
func (a *Application) RemoveWindow(w *controls.Window) error {
	if w == nil || w.Base().Parent != controls.Control(a.desktop) {
		return ErrWindowNotFound
	}
	a.forget(w)
	controls.Destroy(w)
	if top := a.desktop.TopWindow(); top != nil {
		a.desktop.BringToFront(top)
	}
	return nil
}

// forget drops the mouse and popup state that points into w.
func (a *Application) forget(w controls.Control) {
	inside := func(c controls.Control) bool {
		for ; c != nil; c = c.Base().Parent {
			if c == w {
				return true
			}
		}
		return false
	}
	if a.captured != nil && inside(a.captured) {
		a.captured, a.buttons = nil, input.MouseNone
	}
	if a.hovered != nil && inside(a.hovered) {
		a.hovered = nil
	}
	if a.expanded != nil && inside(a.expanded) {
		a.expanded.Base().PackView()
		a.expanded = nil
	}
}

// Windows returns the windows in paint order, the topmost last.
func (a *Application) Windows() []*controls.Window {
	var out []*controls.Window
	for _, c := range a.desktop.Base().Children() {
		if w, ok := c.(*controls.Window); ok {
			out = append(out, w)
		}
	}
	return out
}

// FocusedWindow returns the window with the focus, nil when the desktop
// is empty.
func (a *Application) FocusedWindow() *controls.Window {
	w, _ := a.desktop.Base().FocusedChild().(*controls.Window)
	return w
}

// removeExited destroys the non-modal windows that called Exit.
func (a *Application) removeExited() {
	for _, w := range a.Windows() {
		if w.IsExited() && !slices.Contains(a.modal, w) {
			a.RemoveWindow(w)
		}
	}
}

// RunModal shows w above every other window and processes events until
// w exits. Input outside w is ignored. It returns the window's result;
// the window is destroyed afterwards.
func (a *Application) RunModal(w *controls.Window) int {
	if w.Base().Parent == nil {
		if err := a.AddWindow(w); err != nil {
			a.log.Warn("modal window: %v", err)
			return controls.ResultNone
		}
	}
	w.SetModal(true)
	a.modal = append(a.modal, w)
	a.desktop.BringToFront(w)

	if a.backend != nil {
		if err := a.loop(context.Background(), w.IsExited); err != nil {
			a.log.Warn("modal loop: %v", err)
		}
	}
	if !w.IsExited() {
		w.Exit(controls.ResultCancel)
	}

	a.modal = a.modal[:len(a.modal)-1]
	result := w.DialogResult()
	a.RemoveWindow(w)
	a.log.WithField("window", w.Base().TextString()).Debug("modal result %d", result)
	return result
}

// activeModal returns the innermost modal window.
func (a *Application) activeModal() *controls.Window {
	if len(a.modal) == 0 {
		return nil
	}
	return a.modal[len(a.modal)-1]
}

// ShowPopupMenu opens m at screen (x, y) above every window.
func (a *Application) ShowPopupMenu(m *menu.Menu, x, y int) {
	if a.popup != nil && a.popup != m {
		a.popup.Close()
	}
	a.popup = m
	m.SetTheme(a.theme)
	w, h := a.buf.Size()
	m.Show(x, y, w, h)
}

// TrackExpanded records the control currently in its popup form.
func (a *Application) TrackExpanded(c controls.Control, expanded bool) {
	switch {
	case expanded:
		if a.expanded != nil && a.expanded != c {
			a.expanded.Base().PackView()
		}
		a.expanded = c
	case a.expanded == c:
		a.expanded = nil
	}
}

func (a *Application) closePopups() {
	if a.popup != nil {
		a.popup.Close()
		a.popup = nil
	}
	if a.expanded != nil {
		a.expanded.Base().PackView()
	}
}
