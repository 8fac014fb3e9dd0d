// Package script drives an application with Lua test scripts. Scripts
// press keys, move the mouse and inspect the painted screen through the
// Key, Mouse and Screen globals.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cellkit/internal/app"
	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/logging"
)

// DefaultTimeout bounds a single Run.
const DefaultTimeout = 10 * time.Second

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("script runner closed")

// FailureError is returned when a script calls Error.
type FailureError struct {
	RunID   string
	Message string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("script %s failed: %s", e.RunID, e.Message)
}

// Runner executes scripts against one application. It must be used from
// the goroutine that owns the application.
type Runner struct {
	app     *app.Application
	L       *lua.LState
	id      string
	out     io.Writer
	log     *logging.Logger
	timeout time.Duration

	// modifiers added to every Key.Press until Key.Release
	held    input.Key
	failure string
	frames  int
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where Screen.Print and print write. The default is
// standard output.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger sets the runner logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTimeout bounds every Run. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner creates a runner for a. Each runner gets a fresh run ID that
// tags its log lines.
func NewRunner(a *app.Application, opts ...Option) *Runner {
	r := &Runner{
		app:     a,
		id:      uuid.NewString(),
		out:     os.Stdout,
		log:     logging.Component("script"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithField("run", r.id)
	r.L = newState()
	installPrint(r.L, r.out)
	r.register()
	return r
}

// ID returns the run ID.
func (r *Runner) ID() string { return r.id }

// Run executes code. A script that calls Error returns *FailureError.
func (r *Runner) Run(ctx context.Context, code string) error {
	return r.exec(ctx, "string", func() error { return r.L.DoString(code) })
}

// RunFile executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	return r.exec(ctx, path, func() error { return r.L.DoFile(path) })
}

func (r *Runner) exec(ctx context.Context, source string, do func() error) (err error) {
	if r.closed {
		return ErrClosed
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()
	r.failure = ""

	start := time.Now()
	r.log.Info("running %s", source)
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script %s: lua panic: %v", r.id, p)
		}
		if err != nil {
			r.log.Error("%s: %v", source, err)
			return
		}
		r.log.Info("%s passed in %s", source, time.Since(start))
	}()

	if err := do(); err != nil {
		if r.failure != "" {
			return &FailureError{RunID: r.id, Message: r.failure}
		}
		return fmt.Errorf("script %s: %w", r.id, err)
	}
	return nil
}

// Close releases the Lua state.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
