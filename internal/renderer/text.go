package renderer

import (
	"strings"

	"github.com/dshills/cellkit/internal/renderer/core"
)

// TextFlags control how WriteText lays text out.
type TextFlags uint16

// Text flags.
const (
	SingleLine TextFlags = 1 << iota
	MultipleLines
	ClipToWidth
	FitTextToWidth
	WrapToWidth
	WordWrap
	HighlightHotKey
	OverwriteColors
)

// Has reports whether all bits of f are set.
func (t TextFlags) Has(f TextFlags) bool { return t&f == f }

// TextAlignment positions each line inside the text width.
type TextAlignment uint8

// Text alignments.
const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// WriteTextParams describes one WriteText call.
type WriteTextParams struct {
	Flags TextFlags
	X, Y  int
	// Width limits each line when ClipToWidth, FitTextToWidth, WrapToWidth
	// or WordWrap is set. Height limits the number of lines; 0 means no
	// limit.
	Width, Height  int
	Color          core.ColorPair
	HotKeyColor    core.ColorPair
	HotKeyPosition int
	Align          TextAlignment
}

// WriteSingleLineText writes text on row y starting at column x and
// returns the number of columns used.
func (r *Renderer) WriteSingleLineText(x, y int, text string, colors core.ColorPair) int {
	return r.WriteText(text, WriteTextParams{Flags: SingleLine, X: x, Y: y, Color: colors})
}

// WriteText writes text according to p and returns the widest line in
// columns.
func (r *Renderer) WriteText(text string, p WriteTextParams) int {
	lines := r.layoutText([]rune(text), p)
	widest := 0
	for i, ln := range lines {
		if p.Height > 0 && i >= p.Height {
			break
		}
		w := runesWidth(ln.runes)
		x := p.X
		if p.Width > 0 && w < p.Width {
			switch p.Align {
			case AlignCenter:
				x += (p.Width - w) / 2
			case AlignRight:
				x += p.Width - w
			}
		}
		col := x
		for j, ch := range ln.runes {
			colors := p.Color
			if p.Flags.Has(HighlightHotKey) && ln.start+j == p.HotKeyPosition && !ln.ellipsis(j) {
				colors = p.HotKeyColor
			}
			if p.Flags.Has(OverwriteColors) {
				r.put(col, p.Y+i, 0, colors, core.AttrNone)
			} else {
				r.put(col, p.Y+i, ch, colors, core.AttrNone)
			}
			col += max(core.RuneWidth(ch), 1)
		}
		widest = max(widest, col-x)
	}
	return widest
}

type textLine struct {
	runes []rune
	// start is the index in the source text of runes[0].
	start int
	// fitted is true when the last rune was replaced by an ellipsis.
	fitted bool
}

func (l textLine) ellipsis(j int) bool {
	return l.fitted && j == len(l.runes)-1
}

func (r *Renderer) layoutText(text []rune, p WriteTextParams) []textLine {
	var raw []textLine
	if p.Flags.Has(MultipleLines) {
		start := 0
		for i, ch := range text {
			if ch == '\n' {
				raw = append(raw, textLine{runes: trimCR(text[start:i]), start: start})
				start = i + 1
			}
		}
		raw = append(raw, textLine{runes: text[start:], start: start})
	} else {
		line := make([]rune, len(text))
		for i, ch := range text {
			if ch == '\n' || ch == '\r' || ch == '\t' {
				ch = ' '
			}
			line[i] = ch
		}
		raw = []textLine{{runes: line}}
	}

	if p.Width <= 0 {
		return raw
	}
	var out []textLine
	for _, ln := range raw {
		switch {
		case p.Flags.Has(WordWrap):
			out = append(out, wordWrap(ln, p.Width)...)
		case p.Flags.Has(WrapToWidth):
			out = append(out, hardWrap(ln, p.Width)...)
		case p.Flags.Has(FitTextToWidth):
			out = append(out, fit(ln, p.Width))
		case p.Flags.Has(ClipToWidth):
			out = append(out, clip(ln, p.Width))
		default:
			out = append(out, ln)
		}
	}
	return out
}

func trimCR(r []rune) []rune {
	if n := len(r); n > 0 && r[n-1] == '\r' {
		return r[:n-1]
	}
	return r
}

func runesWidth(r []rune) int {
	w := 0
	for _, ch := range r {
		w += max(core.RuneWidth(ch), 1)
	}
	return w
}

// prefix returns how many runes of r fit in width columns.
func prefix(r []rune, width int) int {
	w := 0
	for i, ch := range r {
		cw := max(core.RuneWidth(ch), 1)
		if w+cw > width {
			return i
		}
		w += cw
	}
	return len(r)
}

func clip(ln textLine, width int) textLine {
	ln.runes = ln.runes[:prefix(ln.runes, width)]
	return ln
}

func fit(ln textLine, width int) textLine {
	n := prefix(ln.runes, width)
	if n == len(ln.runes) {
		return ln
	}
	if n == 0 {
		ln.runes = nil
		return ln
	}
	out := make([]rune, n)
	copy(out, ln.runes[:n-1])
	out[n-1] = ThreePointsHorizontal.Rune()
	return textLine{runes: out, start: ln.start, fitted: true}
}

func hardWrap(ln textLine, width int) []textLine {
	var out []textLine
	r := ln.runes
	start := ln.start
	for len(r) > 0 {
		n := max(prefix(r, width), 1)
		out = append(out, textLine{runes: r[:n], start: start})
		r = r[n:]
		start += n
	}
	if len(out) == 0 {
		out = append(out, ln)
	}
	return out
}

func wordWrap(ln textLine, width int) []textLine {
	var out []textLine
	r := ln.runes
	start := ln.start
	for len(r) > 0 {
		n := max(prefix(r, width), 1)
		if n < len(r) {
			// break after the last space inside the fitting prefix
			if sp := lastSpace(r[:n+1]); sp > 0 {
				n = sp
			}
		}
		out = append(out, textLine{runes: trimRightSpace(r[:n]), start: start})
		skip := n
		for skip < len(r) && r[skip] == ' ' {
			skip++
		}
		r = r[skip:]
		start += skip
	}
	if len(out) == 0 {
		out = append(out, ln)
	}
	return out
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}

func trimRightSpace(r []rune) []rune {
	return []rune(strings.TrimRight(string(r), " "))
}
