package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Format is a theme file encoding.
type Format uint8

// Supported formats.
const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

// String returns the usual file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return "toml"
}

// ErrUnsupportedFormat is returned for a file extension that is not
// .toml, .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported theme format")

// FormatOf picks the format from a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// ParseError reports a theme file that could not be decoded, or a key
// in it that could not be applied.
type ParseError struct {
	Source string
	Key    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("theme %s: key %q: %v", e.Source, e.Key, e.Err)
	}
	return fmt.Sprintf("theme %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadFile reads a theme file and layers it onto the dark theme.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading theme %s: %w", path, err)
	}
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	return Load(path, data, format)
}

// Load decodes data and layers it onto the dark theme. source names the
// data in errors.
func Load(source string, data []byte, format Format) (Config, error) {
	c := Dark()
	if err := c.Merge(source, data, format); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Merge decodes data and applies its values on top of c.
func (c *Config) Merge(source string, data []byte, format Format) error {
	values, err := decode(source, data, format)
	if err != nil {
		return err
	}
	return c.Apply(source, values)
}

func decode(source string, data []byte, format Format) (map[string]string, error) {
	values := make(map[string]string)
	switch format {
	case FormatJSON:
		if !gjson.ValidBytes(data) {
			return nil, &ParseError{Source: source, Err: errors.New("invalid JSON")}
		}
		if err := flattenJSON(gjson.ParseBytes(data), "", values); err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		return values, nil
	case FormatYAML:
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		if err := flatten(tree, "", values); err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		return values, nil
	default:
		var tree map[string]any
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		if err := flatten(tree, "", values); err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		return values, nil
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func flatten(tree map[string]any, prefix string, out map[string]string) error {
	for k, v := range tree {
		key := join(prefix, k)
		switch v := v.(type) {
		case map[string]any:
			if err := flatten(v, key, out); err != nil {
				return err
			}
		case string:
			out[key] = v
		default:
			return fmt.Errorf("key %q: expected a color string, got %T", key, v)
		}
	}
	return nil
}

func flattenJSON(r gjson.Result, prefix string, out map[string]string) error {
	if !r.IsObject() {
		return errors.New("expected a JSON object")
	}
	var err error
	r.ForEach(func(k, v gjson.Result) bool {
		key := join(prefix, k.String())
		switch {
		case v.IsObject():
			err = flattenJSON(v, key, out)
		case v.Type == gjson.String:
			out[key] = v.String()
		default:
			err = fmt.Errorf("key %q: expected a color string, got %s", key, v.Type)
		}
		return err == nil
	})
	return err
}

// Marshal encodes every color of c in the given format as nested tables.
func (c *Config) Marshal(format Format) ([]byte, error) {
	values := c.Values()
	if format == FormatJSON {
		return marshalJSON(values)
	}
	tree := make(map[string]any)
	for k, v := range values {
		node := tree
		parts := strings.Split(k, ".")
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = v
	}
	if format == FormatYAML {
		return yaml.Marshal(tree)
	}
	return toml.Marshal(tree)
}

func marshalJSON(values map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	doc := []byte("{}")
	var err error
	for _, k := range keys {
		if doc, err = sjson.SetBytes(doc, k, values[k]); err != nil {
			return nil, fmt.Errorf("encoding theme key %q: %w", k, err)
		}
	}
	return pretty.Pretty(doc), nil
}

// Save writes c to path in the format implied by its extension.
func (c *Config) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
