package theme

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/dshills/cellkit/internal/renderer/core"
)

// ErrUnknownKey is returned for a key that names no color of the theme.
var ErrUnknownKey = errors.New("unknown theme key")

var (
	pairType  = reflect.TypeOf(core.ColorPair{})
	colorType = reflect.TypeOf(core.Color(0))
)

// entry is one addressable color of a Config.
type entry struct {
	pair  *core.ColorPair
	color *core.Color
}

func (e entry) String() string {
	if e.pair != nil {
		return e.pair.String()
	}
	return e.color.String()
}

func (e entry) set(value string) error {
	if e.pair != nil {
		cp, err := core.ParseColorPair(value)
		if err != nil {
			return err
		}
		*e.pair = cp
		return nil
	}
	c, err := core.ParseColor(value)
	if err != nil {
		return err
	}
	*e.color = c
	return nil
}

// entries maps every dotted key to the color it addresses in c.
func (c *Config) entries() map[string]entry {
	out := make(map[string]entry)
	walk(reflect.ValueOf(c).Elem(), "", out)
	return out
}

func walk(v reflect.Value, prefix string, out map[string]entry) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := strings.ToLower(f.Name)
		if prefix != "" {
			key = prefix + "." + key
		}
		fv := v.Field(i)
		switch {
		case f.Type == pairType:
			out[key] = entry{pair: fv.Addr().Interface().(*core.ColorPair)}
		case f.Type == colorType:
			out[key] = entry{color: fv.Addr().Interface().(*core.Color)}
		case f.Type.Kind() == reflect.Struct:
			walk(fv, key, out)
		}
	}
}

// Keys returns every key of the theme, sorted.
func (c *Config) Keys() []string {
	e := c.entries()
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key formatted as "Foreground,Background" for
// pairs or a single color name.
func (c *Config) Get(key string) (string, error) {
	e, ok := c.entries()[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return e.String(), nil
}

// Set parses value and stores it under key.
func (c *Config) Set(key, value string) error {
	e, ok := c.entries()[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := e.set(value); err != nil {
		return fmt.Errorf("theme key %q: %w", key, err)
	}
	return nil
}

// Values returns every key with its formatted value.
func (c *Config) Values() map[string]string {
	e := c.entries()
	out := make(map[string]string, len(e))
	for k, v := range e {
		out[k] = v.String()
	}
	return out
}

// Apply sets every value. It stops at the first failure and reports it
// as a *ParseError naming the key; values before it stay applied.
func (c *Config) Apply(source string, values map[string]string) error {
	e := c.entries()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		en, ok := e[strings.ToLower(k)]
		if !ok {
			return &ParseError{Source: source, Key: k, Err: ErrUnknownKey}
		}
		if err := en.set(values[k]); err != nil {
			return &ParseError{Source: source, Key: k, Err: err}
		}
	}
	return nil
}
