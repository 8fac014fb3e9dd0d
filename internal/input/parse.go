package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors.
var (
	ErrEmptyKey   = errors.New("empty key name")
	ErrInvalidKey = errors.New("invalid key name")
)

var namedKeys = map[string]Key{
	"enter": KeyEnter, "return": KeyEnter, "cr": KeyEnter,
	"escape": KeyEscape, "esc": KeyEscape,
	"insert": KeyInsert, "ins": KeyInsert,
	"delete": KeyDelete, "del": KeyDelete,
	"backspace": KeyBackspace, "bs": KeyBackspace,
	"tab": KeyTab,
	"left": KeyLeft, "up": KeyUp, "down": KeyDown, "right": KeyRight,
	"pageup": KeyPageUp, "pgup": KeyPageUp,
	"pagedown": KeyPageDown, "pgdn": KeyPageDown,
	"home": KeyHome, "end": KeyEnd,
	"space": KeySpace,
}

// Parse parses a key name such as "Ctrl+Alt+Up", "F2", "Shift+Tab" or
// "Q". Names and modifiers are case-insensitive.
func Parse(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return KeyNone, ErrEmptyKey
	}

	parts := strings.Split(spec, "+")
	var mods Key
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control", "c":
			mods |= KeyCtrl
		case "alt", "a", "meta":
			mods |= KeyAlt
		case "shift", "s":
			mods |= KeyShift
		default:
			return KeyNone, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidKey, p, spec)
		}
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if name == "" {
		return KeyNone, fmt.Errorf("%w: %q", ErrInvalidKey, spec)
	}
	lower := strings.ToLower(name)
	if k, ok := namedKeys[lower]; ok {
		return k | mods, nil
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 && lower[1] != '0' {
			return (KeyF1 + Key(n-1)) | mods, nil
		}
	}
	if r := []rune(name); len(r) == 1 {
		if k, ok := LetterOrDigit(r[0]); ok {
			return k | mods, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrInvalidKey, spec)
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return k
}
