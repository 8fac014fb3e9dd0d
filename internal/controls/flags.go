package controls

// Flags is the attribute bitset shared by every control.
type Flags uint32

// Attribute flags.
const (
	FlagEnabled  Flags = 0x01
	FlagVisible  Flags = 0x02
	FlagChecked  Flags = 0x04
	FlagTabStop  Flags = 0x08
	FlagVScroll  Flags = 0x10
	FlagHScroll  Flags = 0x20
	FlagExpanded Flags = 0x40
)

// Has reports whether all bits of m are set.
func (f Flags) Has(m Flags) bool { return f&m == m }

// Set turns the bits of m on.
func (f *Flags) Set(m Flags) { *f |= m }

// Clear turns the bits of m off.
func (f *Flags) Clear(m Flags) { *f &^= m }

// Toggle sets or clears m depending on on.
func (f *Flags) Toggle(m Flags, on bool) {
	if on {
		f.Set(m)
	} else {
		f.Clear(m)
	}
}

// ScrollBars tracks the scroll offsets of a control. The offsets are
// always within [0, max].
type ScrollBars struct {
	horizontal, vertical       uint64
	maxHorizontal, maxVertical uint64
}

// Horizontal returns the horizontal offset.
func (s *ScrollBars) Horizontal() uint64 { return s.horizontal }

// Vertical returns the vertical offset.
func (s *ScrollBars) Vertical() uint64 { return s.vertical }

// MaxHorizontal returns the largest horizontal offset.
func (s *ScrollBars) MaxHorizontal() uint64 { return s.maxHorizontal }

// MaxVertical returns the largest vertical offset.
func (s *ScrollBars) MaxVertical() uint64 { return s.maxVertical }

// SetMaxHorizontal changes the horizontal range and re-clamps the offset.
func (s *ScrollBars) SetMaxHorizontal(v uint64) {
	s.maxHorizontal = v
	s.horizontal = min(s.horizontal, v)
}

// SetMaxVertical changes the vertical range and re-clamps the offset.
func (s *ScrollBars) SetMaxVertical(v uint64) {
	s.maxVertical = v
	s.vertical = min(s.vertical, v)
}

// SetHorizontal moves the horizontal offset, clamped to the range.
func (s *ScrollBars) SetHorizontal(v uint64) { s.horizontal = min(v, s.maxHorizontal) }

// SetVertical moves the vertical offset, clamped to the range.
func (s *ScrollBars) SetVertical(v uint64) { s.vertical = min(v, s.maxVertical) }

// Margins reserve space inside a control that children do not use.
type Margins struct {
	Left, Top, Right, Bottom int
}
