// Package main is the cellkit demo and script runner.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/cellkit/internal/app"
	"github.com/dshills/cellkit/internal/logging"
	"github.com/dshills/cellkit/internal/renderer/backend"
	"github.com/dshills/cellkit/internal/script"
	"github.com/dshills/cellkit/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	themePath   string
	exportTheme string
	scriptPath  string
	size        string
	logLevel    string
	logFile     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logOut, closeLog, err := openLog(opts.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(opts.logLevel)
	cfg.Output = logOut
	logging.SetDefault(logging.New(cfg))

	if opts.exportTheme != "" {
		return exportTheme(opts)
	}
	if opts.scriptPath != "" {
		return runScript(opts)
	}
	return runInteractive(opts)
}

// openLog picks the log destination. The interactive demo owns the
// terminal, so without -log-file logs are dropped.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func appOptions(opts options, b backend.Backend) []app.Option {
	out := []app.Option{app.WithBackend(b)}
	if opts.themePath != "" {
		out = append(out, app.WithThemeFile(opts.themePath))
	}
	return out
}

func runInteractive(opts options) int {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: cellkit needs an interactive terminal (use -script for headless runs)")
		return 1
	}

	t, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application, err := app.New(appOptions(opts, t)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if err := buildDemo(application); err != nil {
		fmt.Fprintf(os.Stderr, "Error: building the demo: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runScript(opts options) int {
	w, h, err := parseSize(opts.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	application, err := app.New(appOptions(opts, backend.NewNullBackend(w, h))...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if err := buildDemo(application); err != nil {
		fmt.Fprintf(os.Stderr, "Error: building the demo: %v\n", err)
		return 1
	}

	r := script.NewRunner(application, script.WithOutput(os.Stdout))
	defer r.Close()
	if err := r.RunFile(context.Background(), opts.scriptPath); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", opts.scriptPath, err)
		return 1
	}
	fmt.Printf("PASS %s (run %s)\n", opts.scriptPath, r.ID())
	return 0
}

func exportTheme(opts options) int {
	t := theme.Dark()
	if opts.themePath != "" {
		var err error
		if t, err = theme.LoadFile(opts.themePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if err := t.Save(opts.exportTheme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: exporting theme: %v\n", err)
		return 1
	}
	return 0
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.themePath, "theme", "", "Theme file (.toml, .yaml or .json), reloaded on change")
	flag.StringVar(&opts.themePath, "t", "", "Theme file (shorthand)")
	flag.StringVar(&opts.exportTheme, "export-theme", "", "Write the active theme to this file and exit")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a Lua test script headless and exit")
	flag.StringVar(&opts.scriptPath, "s", "", "Run a Lua test script (shorthand)")
	flag.StringVar(&opts.size, "size", "80x25", "Screen size for -script runs")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cellkit - terminal widget toolkit demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cellkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cellkit                              Run the demo\n")
		fmt.Fprintf(os.Stderr, "  cellkit -t light.toml                Run with a theme file\n")
		fmt.Fprintf(os.Stderr, "  cellkit -s grid.lua -size 100x30     Run a test script\n")
		fmt.Fprintf(os.Stderr, "  cellkit -export-theme dark.yaml      Write the built-in theme\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("cellkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
