package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cellkit/internal/input"
	"github.com/dshills/cellkit/internal/renderer/backend"
)

func (r *Runner) register() {
	L := r.L
	L.SetGlobal("Key", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"Press":   r.keyPress,
		"Type":    r.keyType,
		"Hold":    r.keyHold,
		"Release": r.keyRelease,
	}))
	L.SetGlobal("Mouse", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"Click": r.mouseClick,
		"Move":  r.mouseMove,
		"Drag":  r.mouseDrag,
		"Wheel": r.mouseWheel,
	}))
	L.SetGlobal("Screen", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"Print":    r.screenPrint,
		"Contains": r.screenContains,
		"Resize":   r.screenResize,
		"Size":     r.screenSize,
	}))
	L.SetGlobal("Error", L.NewFunction(r.fail))
}

func (r *Runner) send(ev backend.Event) {
	r.app.ProcessEvent(ev)
}

// Key.Press(name, [count])
func (r *Runner) keyPress(L *lua.LState) int {
	name := L.CheckString(1)
	count := L.OptInt(2, 1)
	k, err := input.Parse(name)
	if err != nil {
		L.ArgError(1, err.Error())
	}
	k = k.With(r.held)
	ev, ok := input.ToEvent(k)
	if !ok {
		L.ArgError(1, "key "+name+" cannot be sent")
	}
	r.log.Debug("key %s x%d", k, count)
	for k := 0; k < count; k++ {
		r.send(ev)
	}
	return 0
}

// Key.Type(text)
func (r *Runner) keyType(L *lua.LState) int {
	text := L.CheckString(1)
	for _, ch := range text {
		r.send(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: ch})
	}
	return 0
}

// Key.Hold("Shift" | "Ctrl" | "Alt" | "Ctrl+Shift" ...)
func (r *Runner) keyHold(L *lua.LState) int {
	spec := L.CheckString(1)
	for _, p := range strings.Split(spec, "+") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "shift":
			r.held |= input.KeyShift
		case "ctrl", "control":
			r.held |= input.KeyCtrl
		case "alt":
			r.held |= input.KeyAlt
		default:
			L.ArgError(1, "unknown modifier "+p)
		}
	}
	return 0
}

// Key.Release() drops every held modifier.
func (r *Runner) keyRelease(*lua.LState) int {
	r.held = 0
	return 0
}

func checkButton(L *lua.LState, n int) input.MouseButton {
	name := L.OptString(n, "Left")
	b, ok := input.ParseMouseButton(name)
	if !ok {
		L.ArgError(n, "unknown mouse button "+name)
	}
	return b
}

// Mouse.Click(x, y, [button])
func (r *Runner) mouseClick(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	b := checkButton(L, 3)
	r.send(input.MouseToEvent(x, y, b))
	r.send(input.MouseToEvent(x, y, input.MouseNone))
	return 0
}

// Mouse.Move(x, y)
func (r *Runner) mouseMove(L *lua.LState) int {
	r.send(input.MouseToEvent(L.CheckInt(1), L.CheckInt(2), input.MouseNone))
	return 0
}

// Mouse.Drag(x1, y1, x2, y2, [button]) presses at the first point, moves
// to the second one cell at a time and releases there.
func (r *Runner) mouseDrag(L *lua.LState) int {
	x1, y1 := L.CheckInt(1), L.CheckInt(2)
	x2, y2 := L.CheckInt(3), L.CheckInt(4)
	b := checkButton(L, 5)
	r.send(input.MouseToEvent(x1, y1, b))
	x, y := x1, y1
	for x != x2 || y != y2 {
		x += sign(x2 - x)
		y += sign(y2 - y)
		r.send(input.MouseToEvent(x, y, b))
	}
	r.send(input.MouseToEvent(x2, y2, input.MouseNone))
	return 0
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Mouse.Wheel(x, y, direction, [count])
func (r *Runner) mouseWheel(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	name := L.CheckString(3)
	count := L.OptInt(4, 1)
	dir, ok := input.ParseWheel(name)
	if !ok {
		L.ArgError(3, "unknown wheel direction "+name)
	}
	for k := 0; k < count; k++ {
		r.send(input.WheelToEvent(x, y, dir))
	}
	return 0
}

// Screen.Print([title]) paints and writes the screen with a frame
// header.
func (r *Runner) screenPrint(L *lua.LState) int {
	title := L.OptString(1, "")
	r.app.Paint()
	r.frames++
	w, h := r.app.Size()
	var b strings.Builder
	fmt.Fprintf(&b, "--- frame %d (%dx%d)", r.frames, w, h)
	if title != "" {
		b.WriteString(" " + title)
	}
	b.WriteString(" ---\n")
	for _, line := range r.app.ScreenLines() {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	if _, err := r.out.Write([]byte(b.String())); err != nil {
		r.log.Warn("print screen: %v", err)
	}
	return 0
}

// Screen.Contains(text) reports whether text appears on the painted
// screen.
func (r *Runner) screenContains(L *lua.LState) int {
	text := L.CheckString(1)
	r.app.Paint()
	L.Push(lua.LBool(strings.Contains(r.app.ScreenText(), text)))
	return 1
}

// Screen.Resize(w, h)
func (r *Runner) screenResize(L *lua.LState) int {
	w, h := L.CheckInt(1), L.CheckInt(2)
	if w <= 0 || h <= 0 {
		L.ArgError(1, "screen size must be positive")
	}
	r.send(backend.Event{Type: backend.EventResize, Width: w, Height: h})
	return 0
}

// Screen.Size() returns width, height.
func (r *Runner) screenSize(L *lua.LState) int {
	w, h := r.app.Size()
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

// Error(msg) fails the run.
func (r *Runner) fail(L *lua.LState) int {
	msg := L.OptString(1, "error")
	r.failure = msg
	L.RaiseError("%s", msg)
	return 0
}
