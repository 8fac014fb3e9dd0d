package input

import (
	"errors"
	"testing"

	"github.com/dshills/cellkit/internal/renderer/backend"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"Enter", KeyEnter},
		{"enter", KeyEnter},
		{"Esc", KeyEscape},
		{"Space", KeySpace},
		{"PageDown", KeyPageDown},
		{"F1", KeyF1},
		{"f12", KeyF12},
		{"Q", KeyQ},
		{"q", KeyQ},
		{"7", KeyN7},
		{"Ctrl+S", KeyS | KeyCtrl},
		{"ctrl+alt+up", KeyUp | KeyCtrl | KeyAlt},
		{"Shift+Tab", KeyTab | KeyShift},
		{"C+A+S+F5", KeyF5 | KeyCtrl | KeyAlt | KeyShift},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseKeyErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptyKey},
		{"   ", ErrEmptyKey},
		{"Hyper+A", ErrInvalidKey},
		{"Ctrl+", ErrInvalidKey},
		{"F13", ErrInvalidKey},
		{"F01", ErrInvalidKey},
		{"@", ErrInvalidKey},
		{"Enterr", ErrInvalidKey},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "Enter"},
		{KeyA | KeyCtrl, "Ctrl+A"},
		{KeyF2 | KeyShift | KeyAlt | KeyCtrl, "Ctrl+Alt+Shift+F2"},
		{KeyN0, "0"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyParts(t *testing.T) {
	k := KeyLeft | KeyShift
	if k.Code() != KeyLeft {
		t.Errorf("Code() = %v, want Left", k.Code())
	}
	if k.Modifiers() != KeyShift {
		t.Errorf("Modifiers() = %v, want Shift", k.Modifiers())
	}
	if !k.Has(KeyShift) || k.Has(KeyCtrl) {
		t.Error("Has() reported wrong modifiers")
	}
	if !k.Valid() || Key(keyCount).Valid() || KeyNone.Valid() {
		t.Error("Valid() reported wrong result")
	}
	if got := KeyA.With(KeyCtrl | 0x01); got != KeyA|KeyCtrl {
		t.Errorf("With() = %v, want Ctrl+A", got)
	}
}

func TestForRune(t *testing.T) {
	tests := []struct {
		r        rune
		wantKey  Key
		wantRune rune
	}{
		{'a', KeyA, 'a'},
		{'Z', KeyZ | KeyShift, 'Z'},
		{'5', KeyN5, '5'},
		{' ', KeySpace, ' '},
		{'\n', KeyEnter, 0},
		{'\t', KeyTab, 0},
		{'#', KeyNone, '#'},
		{'é', KeyNone, 'é'},
	}
	for _, tt := range tests {
		k, r := ForRune(tt.r)
		if k != tt.wantKey || r != tt.wantRune {
			t.Errorf("ForRune(%q) = %v,%q, want %v,%q", tt.r, k, r, tt.wantKey, tt.wantRune)
		}
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       backend.Event
		wantKey  Key
		wantRune rune
	}{
		{"letter", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'}, KeyX, 'x'},
		{"upper", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'X', Mod: backend.ModShift}, KeyX | KeyShift, 'X'},
		{"ctrl letter", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'c', Mod: backend.ModCtrl}, KeyC | KeyCtrl, 0},
		{"alt letter", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'f', Mod: backend.ModAlt}, KeyF | KeyAlt, 0},
		{"symbol", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: '%'}, KeyNone, '%'},
		{"arrow", backend.Event{Type: backend.EventKey, Key: backend.KeyLeft, Mod: backend.ModShift}, KeyLeft | KeyShift, 0},
		{"function", backend.Event{Type: backend.EventKey, Key: backend.KeyF10}, KeyF10, 0},
		{"escape", backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}, KeyEscape, 0},
		{"unknown", backend.Event{Type: backend.EventKey, Key: backend.KeyNone}, KeyNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, r := FromEvent(tt.ev)
			if k != tt.wantKey || r != tt.wantRune {
				t.Errorf("FromEvent() = %v,%q, want %v,%q", k, r, tt.wantKey, tt.wantRune)
			}
		})
	}
}

func TestMouseFromEvent(t *testing.T) {
	tests := []struct {
		in        backend.MouseButton
		wantBtn   MouseButton
		wantWheel WheelDirection
	}{
		{backend.MouseLeft, MouseLeft, WheelNone},
		{backend.MouseMiddle, MouseCenter, WheelNone},
		{backend.MouseWheelDown, MouseNone, WheelDown},
		{backend.MouseNone, MouseNone, WheelNone},
	}
	for _, tt := range tests {
		b, w := MouseFromEvent(backend.Event{Type: backend.EventMouse, MouseButton: tt.in})
		if b != tt.wantBtn || w != tt.wantWheel {
			t.Errorf("MouseFromEvent(%v) = %v,%v, want %v,%v", tt.in, b, w, tt.wantBtn, tt.wantWheel)
		}
	}
}

func TestToEventRoundTrip(t *testing.T) {
	for _, name := range []string{"a", "Shift+A", "Ctrl+A", "Alt+Shift+X", "Space", "7", "F5", "Shift+Tab", "Ctrl+Left", "Escape"} {
		k := MustParse(name)
		ev, ok := ToEvent(k)
		if !ok {
			t.Errorf("ToEvent(%s) failed", name)
			continue
		}
		if got, _ := FromEvent(ev); got != k {
			t.Errorf("FromEvent(ToEvent(%s)) = %s", name, got)
		}
	}
	if _, ok := ToEvent(KeyNone); ok {
		t.Errorf("ToEvent(KeyNone) succeeded")
	}
	if ev, _ := ToEvent(MustParse("Shift+Q")); ev.Rune != 'Q' {
		t.Errorf("Shift+Q rune = %q", ev.Rune)
	}
}

func TestMouseToEvent(t *testing.T) {
	b, w := MouseFromEvent(MouseToEvent(3, 4, MouseRight))
	if b != MouseRight || w != WheelNone {
		t.Errorf("right press = %v,%v", b, w)
	}
	b, w = MouseFromEvent(WheelToEvent(3, 4, WheelUp))
	if b != MouseNone || w != WheelUp {
		t.Errorf("wheel up = %v,%v", b, w)
	}
	if ev := MouseToEvent(3, 4, MouseNone); ev.MouseButton != backend.MouseNone || ev.MouseX != 3 || ev.MouseY != 4 {
		t.Errorf("release = %+v", ev)
	}
}

func TestParseMouse(t *testing.T) {
	if b, ok := ParseMouseButton("middle"); !ok || b != MouseCenter {
		t.Errorf("ParseMouseButton(middle) = %v,%v", b, ok)
	}
	if _, ok := ParseMouseButton("fourth"); ok {
		t.Error("ParseMouseButton(fourth) succeeded")
	}
	if w, ok := ParseWheel("up"); !ok || w != WheelUp {
		t.Errorf("ParseWheel(up) = %v,%v", w, ok)
	}
	if got := (MouseLeft | MouseDoubleClicked).String(); got != "Left" {
		t.Errorf("String() = %q, want Left", got)
	}
}

func TestParseHotKey(t *testing.T) {
	tests := []struct {
		text       string
		wantText   string
		wantKey    Key
		wantOffset int
	}{
		{"&Save", "Save", KeyS, 0},
		{"Save &As", "Save As", KeyA, 5},
		{"e&xit", "exit", KeyX, 1},
		{"Item &2", "Item 2", KeyN2, 5},
		{"No hot key", "No hot key", KeyNone, InvalidHotKeyOffset},
		{"Bad &!", "Bad !", KeyNone, InvalidHotKeyOffset},
		{"Trailing&", "Trailing&", KeyNone, InvalidHotKeyOffset},
		{"", "", KeyNone, InvalidHotKeyOffset},
	}
	for _, tt := range tests {
		text, k, off := ParseHotKey(tt.text)
		if string(text) != tt.wantText || k != tt.wantKey || off != tt.wantOffset {
			t.Errorf("ParseHotKey(%q) = %q,%v,%d, want %q,%v,%d",
				tt.text, string(text), k, off, tt.wantText, tt.wantKey, tt.wantOffset)
		}
	}
}
