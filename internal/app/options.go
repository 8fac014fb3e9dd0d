package app

import (
	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/theme"
)

// Option configures an Application.
type Option func(*Application)

// WithBackend sets the terminal backend. Without one the application
// can be built and driven with ProcessEvent but Run fails.
func WithBackend(b backend.Backend) Option {
	return func(a *Application) {
		a.backend = b
	}
}

// WithTheme replaces the built-in dark theme.
func WithTheme(t theme.Config) Option {
	return func(a *Application) {
		a.theme = &t
	}
}

// WithThemeFile loads a theme file on top of the dark theme and reloads
// it whenever it changes while Run is active.
func WithThemeFile(path string) Option {
	return func(a *Application) {
		a.themePath = path
	}
}

// WithClipboard sets the clipboard shared by every control.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(a *Application) {
		if cb != nil {
			a.clipboard = cb
		}
	}
}

// WithLogger sets the application logger.
func WithLogger(l *logging.Logger) Option {
	return func(a *Application) {
		if l != nil {
			a.log = l
		}
	}
}

// WithDesktopChar sets the character painted on the empty desktop.
func WithDesktopChar(ch rune) Option {
	return func(a *Application) {
		a.desktopChar = ch
	}
}
