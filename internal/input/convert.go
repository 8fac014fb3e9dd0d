package input

import "github.com/dshills/cellkit/internal/renderer/backend"

var backendKeys = map[backend.Key]Key{
	backend.KeyEscape:    KeyEscape,
	backend.KeyEnter:     KeyEnter,
	backend.KeyTab:       KeyTab,
	backend.KeyBackspace: KeyBackspace,
	backend.KeyDelete:    KeyDelete,
	backend.KeyInsert:    KeyInsert,
	backend.KeyHome:      KeyHome,
	backend.KeyEnd:       KeyEnd,
	backend.KeyPageUp:    KeyPageUp,
	backend.KeyPageDown:  KeyPageDown,
	backend.KeyUp:        KeyUp,
	backend.KeyDown:      KeyDown,
	backend.KeyLeft:      KeyLeft,
	backend.KeyRight:     KeyRight,
	backend.KeyF1:        KeyF1,
	backend.KeyF2:        KeyF2,
	backend.KeyF3:        KeyF3,
	backend.KeyF4:        KeyF4,
	backend.KeyF5:        KeyF5,
	backend.KeyF6:        KeyF6,
	backend.KeyF7:        KeyF7,
	backend.KeyF8:        KeyF8,
	backend.KeyF9:        KeyF9,
	backend.KeyF10:       KeyF10,
	backend.KeyF11:       KeyF11,
	backend.KeyF12:       KeyF12,
}

// FromEvent converts a backend key event into the key and character
// delivered to controls. The character is zero for keys that do not
// produce text, including Ctrl and Alt combinations.
func FromEvent(ev backend.Event) (Key, rune) {
	var mods Key
	if ev.Mod.Has(backend.ModCtrl) {
		mods |= KeyCtrl
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods |= KeyAlt
	}
	if ev.Mod.Has(backend.ModShift) {
		mods |= KeyShift
	}

	if ev.Key != backend.KeyRune {
		k, ok := backendKeys[ev.Key]
		if !ok {
			return KeyNone, 0
		}
		return k | mods, 0
	}

	k, ch := ForRune(ev.Rune)
	k |= mods
	if mods&(KeyCtrl|KeyAlt) != 0 {
		ch = 0
	}
	return k, ch
}

// MouseFromEvent splits a backend mouse event into the held button and
// the wheel direction, at most one of which is set.
func MouseFromEvent(ev backend.Event) (MouseButton, WheelDirection) {
	switch ev.MouseButton {
	case backend.MouseLeft:
		return MouseLeft, WheelNone
	case backend.MouseRight:
		return MouseRight, WheelNone
	case backend.MouseMiddle:
		return MouseCenter, WheelNone
	case backend.MouseWheelUp:
		return MouseNone, WheelUp
	case backend.MouseWheelDown:
		return MouseNone, WheelDown
	case backend.MouseWheelLeft:
		return MouseNone, WheelLeft
	case backend.MouseWheelRight:
		return MouseNone, WheelRight
	}
	return MouseNone, WheelNone
}

var eventKeys = func() map[Key]backend.Key {
	m := make(map[Key]backend.Key, len(backendKeys))
	for bk, k := range backendKeys {
		m[k] = bk
	}
	return m
}()

// ToEvent builds the backend key event a terminal would report for k.
// Letters, digits and Space become rune events; Shift on a letter
// selects the upper case. It reports false for keys without a code.
func ToEvent(k Key) (backend.Event, bool) {
	ev := backend.Event{Type: backend.EventKey}
	if k.Has(KeyCtrl) {
		ev.Mod |= backend.ModCtrl
	}
	if k.Has(KeyAlt) {
		ev.Mod |= backend.ModAlt
	}
	if k.Has(KeyShift) {
		ev.Mod |= backend.ModShift
	}

	c := k.Code()
	switch {
	case c == KeySpace:
		ev.Key, ev.Rune = backend.KeyRune, ' '
	case c >= KeyA && c <= KeyZ:
		ev.Key, ev.Rune = backend.KeyRune, 'a'+rune(c-KeyA)
		if k.Has(KeyShift) && !k.Has(KeyCtrl) && !k.Has(KeyAlt) {
			ev.Rune = 'A' + rune(c-KeyA)
		}
	case c >= KeyN0 && c <= KeyN9:
		ev.Key, ev.Rune = backend.KeyRune, '0'+rune(c-KeyN0)
	default:
		bk, ok := eventKeys[c]
		if !ok {
			return backend.Event{}, false
		}
		ev.Key = bk
	}
	return ev, true
}

// MouseToEvent builds a backend mouse report with button held at (x, y).
// MouseNone reports a release or a plain move.
func MouseToEvent(x, y int, button MouseButton) backend.Event {
	ev := backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y}
	switch {
	case button.Has(MouseLeft):
		ev.MouseButton = backend.MouseLeft
	case button.Has(MouseRight):
		ev.MouseButton = backend.MouseRight
	case button.Has(MouseCenter):
		ev.MouseButton = backend.MouseMiddle
	}
	return ev
}

// WheelToEvent builds a backend wheel report at (x, y).
func WheelToEvent(x, y int, dir WheelDirection) backend.Event {
	ev := backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y}
	switch dir {
	case WheelUp:
		ev.MouseButton = backend.MouseWheelUp
	case WheelDown:
		ev.MouseButton = backend.MouseWheelDown
	case WheelLeft:
		ev.MouseButton = backend.MouseWheelLeft
	case WheelRight:
		ev.MouseButton = backend.MouseWheelRight
	}
	return ev
}
