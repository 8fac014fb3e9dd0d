package layout

import (
	"strconv"
	"strings"
)

// Field is a bitmask recording which keys a layout string supplied.
type Field uint16

// Layout fields.
const (
	FieldX Field = 1 << iota
	FieldY
	FieldWidth
	FieldHeight
	FieldLeft
	FieldTop
	FieldRight
	FieldBottom
	FieldAlign
	FieldDock
)

var fieldNames = []struct {
	f    Field
	name string
}{
	{FieldX, "x"}, {FieldY, "y"}, {FieldWidth, "w"}, {FieldHeight, "h"},
	{FieldLeft, "l"}, {FieldTop, "t"}, {FieldRight, "r"}, {FieldBottom, "b"},
	{FieldAlign, "a"}, {FieldDock, "d"},
}

// Has reports whether every field in mask is set.
func (f Field) Has(mask Field) bool {
	return f&mask == mask
}

// Any reports whether at least one field in mask is set.
func (f Field) Any(mask Field) bool {
	return f&mask != 0
}

// String lists the set fields by their short key.
func (f Field) String() string {
	var parts []string
	for _, fn := range fieldNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, ",")
}

// Alignment names a reference point of a rectangle. It is used both for
// the align key (which point of the control x/y designate) and for the
// dock key (which point of the parent the control sticks to).
type Alignment uint8

// Alignments.
const (
	AlignTopLeft Alignment = iota
	AlignTop
	AlignTopRight
	AlignRight
	AlignBottomRight
	AlignBottom
	AlignBottomLeft
	AlignLeft
	AlignCenter
)

var alignmentNames = map[string]Alignment{
	"tl": AlignTopLeft, "lt": AlignTopLeft, "topleft": AlignTopLeft, "lefttop": AlignTopLeft,
	"t": AlignTop, "top": AlignTop,
	"tr": AlignTopRight, "rt": AlignTopRight, "topright": AlignTopRight, "righttop": AlignTopRight,
	"r": AlignRight, "right": AlignRight,
	"br": AlignBottomRight, "rb": AlignBottomRight, "bottomright": AlignBottomRight, "rightbottom": AlignBottomRight,
	"b": AlignBottom, "bottom": AlignBottom,
	"bl": AlignBottomLeft, "lb": AlignBottomLeft, "bottomleft": AlignBottomLeft, "leftbottom": AlignBottomLeft,
	"l": AlignLeft, "left": AlignLeft,
	"c": AlignCenter, "center": AlignCenter,
}

// String returns the long name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignTopLeft:
		return "topleft"
	case AlignTop:
		return "top"
	case AlignTopRight:
		return "topright"
	case AlignRight:
		return "right"
	case AlignBottomRight:
		return "bottomright"
	case AlignBottom:
		return "bottom"
	case AlignBottomLeft:
		return "bottomleft"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// axisPoint is the position of a reference point along one axis.
type axisPoint uint8

const (
	pointStart axisPoint = iota
	pointMiddle
	pointEnd
)

func (a Alignment) horizontal() axisPoint {
	switch a {
	case AlignTopLeft, AlignLeft, AlignBottomLeft:
		return pointStart
	case AlignTopRight, AlignRight, AlignBottomRight:
		return pointEnd
	default:
		return pointMiddle
	}
}

func (a Alignment) vertical() axisPoint {
	switch a {
	case AlignTopLeft, AlignTop, AlignTopRight:
		return pointStart
	case AlignBottomLeft, AlignBottom, AlignBottomRight:
		return pointEnd
	default:
		return pointMiddle
	}
}

// Information is the parsed form of a layout string.
type Information struct {
	X, Y          Value
	Width, Height Value

	AnchorLeft, AnchorTop, AnchorRight, AnchorBottom Value

	Align Alignment
	Dock  Alignment

	// Flags records which fields were supplied.
	Flags Field
}

// maxMagnitude bounds offsets and percentages (in hundredths).
const maxMagnitude = 1 << 20

// Parse parses a layout string such as "x:1,y:3,w:30,h:2" or
// "l:0,t:0,r:0,b:3". Keys are case-insensitive and may be separated from
// their value by ':' or '='. Percentages carry a trailing '%' and at
// most two decimals.
func Parse(format string) (Information, error) {
	var info Information
	s := strings.TrimSpace(format)
	if s == "" {
		return info, nil
	}

	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return Information{}, &ParseError{Format: format, Reason: "empty entry"}
		}
		sep := strings.IndexAny(item, ":=")
		if sep < 0 {
			return Information{}, &ParseError{Format: format, Key: item, Reason: "missing value"}
		}
		key := strings.ToLower(strings.TrimSpace(item[:sep]))
		raw := strings.TrimSpace(item[sep+1:])
		if raw == "" {
			return Information{}, &ParseError{Format: format, Key: key, Reason: "missing value"}
		}

		field, target, ok := info.lookup(key)
		if !ok {
			return Information{}, &ParseError{Format: format, Key: key, Reason: "unknown key"}
		}
		if info.Flags&field != 0 {
			return Information{}, &ParseError{Format: format, Key: key, Reason: "duplicate key"}
		}

		switch field {
		case FieldAlign, FieldDock:
			a, ok := alignmentNames[strings.ToLower(raw)]
			if !ok {
				return Information{}, &ParseError{Format: format, Key: key, Reason: "unknown alignment " + strconv.Quote(raw)}
			}
			if field == FieldAlign {
				info.Align = a
			} else {
				info.Dock = a
			}
		default:
			v, reason := parseValue(raw)
			if reason != "" {
				return Information{}, &ParseError{Format: format, Key: key, Reason: reason}
			}
			*target = v
		}
		info.Flags |= field
	}
	return info, nil
}

func (info *Information) lookup(key string) (Field, *Value, bool) {
	switch key {
	case "x":
		return FieldX, &info.X, true
	case "y":
		return FieldY, &info.Y, true
	case "w", "width":
		return FieldWidth, &info.Width, true
	case "h", "height":
		return FieldHeight, &info.Height, true
	case "l", "left":
		return FieldLeft, &info.AnchorLeft, true
	case "t", "top":
		return FieldTop, &info.AnchorTop, true
	case "r", "right":
		return FieldRight, &info.AnchorRight, true
	case "b", "bottom":
		return FieldBottom, &info.AnchorBottom, true
	case "a", "align":
		return FieldAlign, nil, true
	case "d", "dock":
		return FieldDock, nil, true
	}
	return 0, nil, false
}

// parseValue returns a non-empty reason when raw is malformed.
func parseValue(raw string) (Value, string) {
	percent := strings.HasSuffix(raw, "%")
	if percent {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	}

	neg := false
	switch {
	case strings.HasPrefix(raw, "-"):
		neg = true
		raw = raw[1:]
	case strings.HasPrefix(raw, "+"):
		raw = raw[1:]
	}

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" || !isDigits(whole) {
		return Value{}, "not a number"
	}
	if hasFrac && !percent {
		return Value{}, "fractional values need a '%' suffix"
	}
	if hasFrac && (frac == "" || len(frac) > 2 || !isDigits(frac)) {
		return Value{}, "percentages allow at most two decimals"
	}

	n, err := strconv.Atoi(whole)
	if err != nil || n > maxMagnitude {
		return Value{}, "value out of range"
	}
	if percent {
		n *= 100
		if hasFrac {
			f, _ := strconv.Atoi(frac)
			if len(frac) == 1 {
				f *= 10
			}
			n += f
		}
	}
	if n > maxMagnitude {
		return Value{}, "value out of range"
	}
	if neg {
		n = -n
	}
	if percent {
		return Percent(n), ""
	}
	return Cells(n), ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
