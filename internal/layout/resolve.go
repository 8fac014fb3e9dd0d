package layout

import "fmt"

// Rect is a resolved rectangle relative to the parent's client area.
type Rect struct {
	X, Y          int
	Width, Height int
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Bounds are the size limits of a control. A max of zero or less means
// unbounded.
type Bounds struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

func (b Bounds) clampWidth(w int) int {
	return clamp(w, b.MinWidth, b.MaxWidth)
}

func (b Bounds) clampHeight(h int) int {
	return clamp(h, b.MinHeight, b.MaxHeight)
}

func clamp(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Spec is a parsed and validated layout, ready to be resolved against
// any parent size.
type Spec struct {
	format string
	info   Information
	mode   FormatMode
}

// Compile parses and validates a layout string.
func Compile(format string) (*Spec, error) {
	info, err := Parse(format)
	if err != nil {
		return nil, err
	}
	mode, err := DetectMode(info)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", format, err)
	}
	return &Spec{format: format, info: info, mode: mode}, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// layout literals known to be valid.
func MustCompile(format string) *Spec {
	s, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return s
}

// Format returns the source string.
func (s *Spec) Format() string { return s.format }

// Info returns the parsed fields.
func (s *Spec) Info() Information { return s.info }

// Mode returns the resolution mode.
func (s *Spec) Mode() FormatMode { return s.mode }

// Resolve computes the rectangle for a parent of the given size.
func (s *Spec) Resolve(parentWidth, parentHeight int, b Bounds) (Rect, error) {
	r, err := Resolve(s.info, s.mode, parentWidth, parentHeight, b)
	if err != nil {
		return r, fmt.Errorf("layout %q: %w", s.format, err)
	}
	return r, nil
}

// Resolve computes the rectangle described by info for a parent of the
// given size. Width and height are clamped to b. Missing sizes resolve to
// zero before clamping, so a control without size fields takes its
// minimum size; ModeNone places it at the parent origin.
func Resolve(info Information, mode FormatMode, pw, ph int, b Bounds) (Rect, error) {
	switch mode {
	case ModeNone:
		return Rect{Width: b.clampWidth(0), Height: b.clampHeight(0)}, nil
	case ModePointAndSize:
		if info.Flags.Has(FieldDock) {
			return resolveDock(info, pw, ph, b), nil
		}
		return resolvePointAndSize(info, pw, ph, b), nil
	case ModeLeftRightAnchorsAndHeight:
		x, w := stretch(info.AnchorLeft, info.AnchorRight, pw, b.clampWidth)
		h := b.clampHeight(sizeOf(info, FieldHeight, info.Height, ph))
		y := place(info.Y.ToInt(ph), info.Align.vertical(), h)
		return Rect{X: x, Y: y, Width: w, Height: h}, nil
	case ModeTopBottomAnchorsAndWidth:
		y, h := stretch(info.AnchorTop, info.AnchorBottom, ph, b.clampHeight)
		w := b.clampWidth(sizeOf(info, FieldWidth, info.Width, pw))
		x := place(info.X.ToInt(pw), info.Align.horizontal(), w)
		return Rect{X: x, Y: y, Width: w, Height: h}, nil
	case ModeLeftTopRightAnchorsAndHeight:
		x, w := stretch(info.AnchorLeft, info.AnchorRight, pw, b.clampWidth)
		h := b.clampHeight(sizeOf(info, FieldHeight, info.Height, ph))
		return Rect{X: x, Y: info.AnchorTop.ToInt(ph), Width: w, Height: h}, nil
	case ModeLeftBottomRightAnchorsAndHeight:
		x, w := stretch(info.AnchorLeft, info.AnchorRight, pw, b.clampWidth)
		h := b.clampHeight(sizeOf(info, FieldHeight, info.Height, ph))
		return Rect{X: x, Y: ph - info.AnchorBottom.ToInt(ph) - h, Width: w, Height: h}, nil
	case ModeTopLeftBottomAnchorsAndWidth:
		y, h := stretch(info.AnchorTop, info.AnchorBottom, ph, b.clampHeight)
		w := b.clampWidth(sizeOf(info, FieldWidth, info.Width, pw))
		return Rect{X: info.AnchorLeft.ToInt(pw), Y: y, Width: w, Height: h}, nil
	case ModeTopRightBottomAnchorsAndWidth:
		y, h := stretch(info.AnchorTop, info.AnchorBottom, ph, b.clampHeight)
		w := b.clampWidth(sizeOf(info, FieldWidth, info.Width, pw))
		return Rect{X: pw - info.AnchorRight.ToInt(pw) - w, Y: y, Width: w, Height: h}, nil
	case ModeLeftTopRightBottomAnchors:
		x, w := stretch(info.AnchorLeft, info.AnchorRight, pw, b.clampWidth)
		y, h := stretch(info.AnchorTop, info.AnchorBottom, ph, b.clampHeight)
		if info.Flags.Has(FieldWidth) && b.clampWidth(info.Width.ToInt(pw)) != w {
			return Rect{}, &ConflictError{Fields: FieldLeft | FieldRight | FieldWidth, Reason: fmt.Sprintf("width %d disagrees with anchored width %d", info.Width.ToInt(pw), w)}
		}
		if info.Flags.Has(FieldHeight) && b.clampHeight(info.Height.ToInt(ph)) != h {
			return Rect{}, &ConflictError{Fields: FieldTop | FieldBottom | FieldHeight, Reason: fmt.Sprintf("height %d disagrees with anchored height %d", info.Height.ToInt(ph), h)}
		}
		return Rect{X: x, Y: y, Width: w, Height: h}, nil
	}
	return Rect{}, &ConflictError{Reason: fmt.Sprintf("unknown mode %d", mode)}
}

// stretch resolves a pair of anchors on one axis into a start and a size.
func stretch(start, end Value, parent int, clampSize func(int) int) (int, int) {
	s := start.ToInt(parent)
	return s, clampSize(parent - s - end.ToInt(parent))
}

func sizeOf(info Information, f Field, v Value, parent int) int {
	if !info.Flags.Has(f) {
		return 0
	}
	return v.ToInt(parent)
}

// place converts the coordinate of a reference point into the coordinate
// of the start edge.
func place(pos int, p axisPoint, size int) int {
	switch p {
	case pointMiddle:
		return pos - size/2
	case pointEnd:
		return pos - size
	}
	return pos
}

func resolvePointAndSize(info Information, pw, ph int, b Bounds) Rect {
	w := b.clampWidth(sizeOf(info, FieldWidth, info.Width, pw))
	h := b.clampHeight(sizeOf(info, FieldHeight, info.Height, ph))

	var x int
	switch {
	case info.Flags.Has(FieldLeft):
		x = info.AnchorLeft.ToInt(pw)
	case info.Flags.Has(FieldRight):
		x = pw - info.AnchorRight.ToInt(pw) - w
	default:
		x = place(info.X.ToInt(pw), info.Align.horizontal(), w)
	}

	var y int
	switch {
	case info.Flags.Has(FieldTop):
		y = info.AnchorTop.ToInt(ph)
	case info.Flags.Has(FieldBottom):
		y = ph - info.AnchorBottom.ToInt(ph) - h
	default:
		y = place(info.Y.ToInt(ph), info.Align.vertical(), h)
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

var full = Percent(10000)

func resolveDock(info Information, pw, ph int, b Bounds) Rect {
	width, height := full, full
	if info.Flags.Has(FieldWidth) {
		width = info.Width
	}
	if info.Flags.Has(FieldHeight) {
		height = info.Height
	}
	switch info.Dock {
	case AlignLeft, AlignRight:
		height = full
	case AlignTop, AlignBottom:
		width = full
	}

	w := b.clampWidth(width.ToInt(pw))
	h := b.clampHeight(height.ToInt(ph))

	var x, y int
	switch info.Dock.horizontal() {
	case pointMiddle:
		x = (pw - w) / 2
	case pointEnd:
		x = pw - w
	}
	switch info.Dock.vertical() {
	case pointMiddle:
		y = (ph - h) / 2
	case pointEnd:
		y = ph - h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}
