package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned when a color name or value cannot be parsed.
var ErrUnknownColor = errors.New("unknown color")

// Color is an entry of the 16-color console palette, or one of the
// special values Transparent and NoColor.
type Color uint8

// Palette colors.
const (
	Black Color = iota
	DarkBlue
	DarkGreen
	Teal
	DarkRed
	Magenta
	Olive
	Silver
	Gray
	Blue
	Green
	Aqua
	Red
	Pink
	Yellow
	White

	// Transparent keeps whatever color is already in the cell.
	Transparent
	// NoColor is the terminal default color.
	NoColor
)

// PaletteSize is the number of real palette entries.
const PaletteSize = 16

var colorNames = [...]string{
	Black: "Black", DarkBlue: "DarkBlue", DarkGreen: "DarkGreen", Teal: "Teal",
	DarkRed: "DarkRed", Magenta: "Magenta", Olive: "Olive", Silver: "Silver",
	Gray: "Gray", Blue: "Blue", Green: "Green", Aqua: "Aqua", Red: "Red",
	Pink: "Pink", Yellow: "Yellow", White: "White",
	Transparent: "Transparent", NoColor: "Default",
}

// rgb values of the palette, as rendered by the classic Windows console.
var paletteRGB = [PaletteSize]colorful.Color{
	hex(0x000000), hex(0x000080), hex(0x008000), hex(0x008080),
	hex(0x800000), hex(0x800080), hex(0x808000), hex(0xC0C0C0),
	hex(0x808080), hex(0x0000FF), hex(0x00FF00), hex(0x00FFFF),
	hex(0xFF0000), hex(0xFF00FF), hex(0xFFFF00), hex(0xFFFFFF),
}

// ansiIndex maps palette entries to the ANSI 16-color indexes.
var ansiIndex = [PaletteSize]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

func hex(v uint32) colorful.Color {
	return colorful.Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// IsPalette reports whether c is one of the 16 real colors.
func (c Color) IsPalette() bool {
	return c < PaletteSize
}

// RGB returns the 8-bit components of a palette color.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsPalette() {
		return 0, 0, 0
	}
	return paletteRGB[c].RGB255()
}

// Hex returns "#RRGGBB" for palette colors and the name otherwise.
func (c Color) Hex() string {
	if !c.IsPalette() {
		return c.String()
	}
	return strings.ToUpper(paletteRGB[c].Hex())
}

// ANSI returns the ANSI 16-color index of a palette color, or -1.
func (c Color) ANSI() int {
	if !c.IsPalette() {
		return -1
	}
	return ansiIndex[c]
}

// Nearest returns the palette color closest to the given RGB value,
// measured in CIE L*a*b* space.
func Nearest(r, g, b uint8) Color {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := Black, math.MaxFloat64
	for i, p := range paletteRGB {
		if d := target.DistanceLab(p); d < bestDist {
			best, bestDist = Color(i), d
		}
	}
	return best
}

var colorAliases = map[string]Color{
	"":          NoColor,
	"none":      NoColor,
	"cyan":      Aqua,
	"darkcyan":  Teal,
	"purple":    Magenta,
	"lightgray": Silver,
	"grey":      Gray,
}

// ParseColor parses a palette name (case-insensitive), "Transparent",
// "Default" or a "#RRGGBB"/"#RGB" hex value mapped to the nearest
// palette entry.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return NoColor, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return Nearest(r, g, b), nil
	}
	for i, name := range colorNames {
		if strings.EqualFold(name, s) {
			return Color(i), nil
		}
	}
	if c, ok := colorAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ColorPair is a foreground/background combination.
type ColorPair struct {
	Foreground Color
	Background Color
}

// Pair is shorthand for ColorPair{fg, bg}.
func Pair(fg, bg Color) ColorPair {
	return ColorPair{Foreground: fg, Background: bg}
}

// DefaultColors uses the terminal defaults for both planes.
var DefaultColors = ColorPair{Foreground: NoColor, Background: NoColor}

// String formats the pair as "Foreground,Background".
func (p ColorPair) String() string {
	return p.Foreground.String() + "," + p.Background.String()
}

// Over resolves transparent planes of p against the colors already
// present in a cell.
func (p ColorPair) Over(existing ColorPair) ColorPair {
	if p.Foreground == Transparent {
		p.Foreground = existing.Foreground
	}
	if p.Background == Transparent {
		p.Background = existing.Background
	}
	return p
}

// ParseColorPair parses "Foreground,Background". A single color sets
// the foreground and leaves the background transparent.
func ParseColorPair(s string) (ColorPair, error) {
	fgName, bgName, hasBg := strings.Cut(s, ",")
	fg, err := ParseColor(fgName)
	if err != nil {
		return ColorPair{}, err
	}
	if !hasBg {
		return ColorPair{Foreground: fg, Background: Transparent}, nil
	}
	bg, err := ParseColor(bgName)
	if err != nil {
		return ColorPair{}, err
	}
	return ColorPair{Foreground: fg, Background: bg}, nil
}
