package dialogs

import (
	"strings"
	"testing"

	"github.com/dshills/cellkit/internal/app"
	"github.com/dshills/cellkit/internal/clipboard"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/renderer/backend"
)

func newTestApp(t *testing.T) (*app.Application, *backend.NullBackend) {
	t.Helper()
	nb := backend.NewNullBackend(60, 20)
	a, err := app.New(
		app.WithBackend(nb),
		app.WithClipboard(&clipboard.Memory{}),
		app.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("app.New() failed: %v", err)
	}
	return a, nb
}

func key(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func char(r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r, Mod: mod}
}

func TestShowErrorPaintsAndReturnsOk(t *testing.T) {
	a, nb := newTestApp(t)
	var screen string
	a.Post(func() { screen = a.ScreenText() })
	nb.PostEvent(key(backend.KeyEnter))

	if got := ShowError(a, "Failure", "Disk is full"); got != ResultOk {
		t.Errorf("ShowError = %v, want Ok", got)
	}
	for _, want := range []string{"Failure", "Disk is full", "Ok"} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen while shown lacks %q:\n%s", want, screen)
		}
	}
	if len(a.Windows()) != 0 {
		t.Errorf("%d windows left after the box closed", len(a.Windows()))
	}
}

func TestMessageBoxResults(t *testing.T) {
	tests := []struct {
		name   string
		show   func(a *app.Application, title, msg string) Result
		events []backend.Event
		want   Result
	}{
		{"notification ok", ShowNotification, []backend.Event{char(' ', 0)}, ResultOk},
		{"warning escape", ShowWarning, []backend.Event{key(backend.KeyEscape)}, ResultCancel},
		{"ok cancel first button", ShowOkCancel, []backend.Event{char(' ', 0)}, ResultOk},
		{"ok cancel tab", ShowOkCancel, []backend.Event{key(backend.KeyTab), char(' ', 0)}, ResultCancel},
		{"yes no cancel tab", ShowYesNoCancel, []backend.Event{key(backend.KeyTab), char(' ', 0)}, ResultNo},
		{"yes no cancel hot key", ShowYesNoCancel, []backend.Event{char('y', backend.ModAlt)}, ResultYes},
		{"yes no cancel escape", ShowYesNoCancel, []backend.Event{key(backend.KeyEscape)}, ResultCancel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, nb := newTestApp(t)
			for _, ev := range tt.events {
				nb.PostEvent(ev)
			}
			if got := tt.show(a, "Title", "Message"); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessageBoxWithoutBackend(t *testing.T) {
	a, err := app.New(app.WithClipboard(&clipboard.Memory{}), app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("app.New() failed: %v", err)
	}
	if got := ShowOkCancel(a, "Title", "Nobody answers"); got != ResultCancel {
		t.Errorf("ShowOkCancel = %v, want Cancel", got)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{ResultOk, "Ok"},
		{ResultCancel, "Cancel"},
		{ResultYes, "Yes"},
		{ResultNo, "No"},
		{ResultNone, "None"},
		{Result(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}
