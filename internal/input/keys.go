// Package input defines the key and mouse vocabulary delivered to
// controls, and converts backend events into it.
package input

import "strings"

// Key is a key code combined with modifier bits. Printable characters
// arrive with the rune alongside the key; letters and digits also carry
// their own code so hot keys and shortcuts can match them.
type Key uint32

// Key codes.
const (
	KeyNone Key = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyEnter
	KeyEscape
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyLeft
	KeyUp
	KeyDown
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyN0
	KeyN1
	KeyN2
	KeyN3
	KeyN4
	KeyN5
	KeyN6
	KeyN7
	KeyN8
	KeyN9
	keyCount
)

// Modifier bits.
const (
	KeyAlt   Key = 0x1000
	KeyCtrl  Key = 0x2000
	KeyShift Key = 0x4000

	modifierMask = KeyAlt | KeyCtrl | KeyShift
)

var keyNames = [...]string{
	KeyNone: "", KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11",
	KeyF12: "F12", KeyEnter: "Enter", KeyEscape: "Escape", KeyInsert: "Insert",
	KeyDelete: "Delete", KeyBackspace: "Backspace", KeyTab: "Tab", KeyLeft: "Left",
	KeyUp: "Up", KeyDown: "Down", KeyRight: "Right", KeyPageUp: "PageUp",
	KeyPageDown: "PageDown", KeyHome: "Home", KeyEnd: "End", KeySpace: "Space",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	KeyN0: "0", KeyN1: "1", KeyN2: "2", KeyN3: "3", KeyN4: "4", KeyN5: "5",
	KeyN6: "6", KeyN7: "7", KeyN8: "8", KeyN9: "9",
}

// Code returns the key without its modifiers.
func (k Key) Code() Key {
	return k &^ modifierMask
}

// Modifiers returns only the modifier bits.
func (k Key) Modifiers() Key {
	return k & modifierMask
}

// Has reports whether all modifier bits in m are set.
func (k Key) Has(m Key) bool {
	return k&m == m
}

// With returns k with the modifier bits in m added.
func (k Key) With(m Key) Key {
	return k | (m & modifierMask)
}

// Valid reports whether the code part is a known key.
func (k Key) Valid() bool {
	c := k.Code()
	return c > KeyNone && c < keyCount
}

// String returns the key in "Ctrl+Alt+Shift+Name" form.
func (k Key) String() string {
	var b strings.Builder
	if k.Has(KeyCtrl) {
		b.WriteString("Ctrl+")
	}
	if k.Has(KeyAlt) {
		b.WriteString("Alt+")
	}
	if k.Has(KeyShift) {
		b.WriteString("Shift+")
	}
	c := k.Code()
	if c < keyCount {
		b.WriteString(keyNames[c])
	} else {
		b.WriteString("?")
	}
	return b.String()
}

// LetterOrDigit returns the key code for an ASCII letter (either case)
// or digit.
func LetterOrDigit(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return KeyN0 + Key(r-'0'), true
	}
	return KeyNone, false
}

// ForRune returns the key and character a terminal would report for
// typing r.
func ForRune(r rune) (Key, rune) {
	switch r {
	case ' ':
		return KeySpace, ' '
	case '\t':
		return KeyTab, 0
	case '\n', '\r':
		return KeyEnter, 0
	}
	k, ok := LetterOrDigit(r)
	if !ok {
		return KeyNone, r
	}
	if r >= 'A' && r <= 'Z' {
		k |= KeyShift
	}
	return k, r
}
