package renderer

// SpecialChar names the glyphs controls draw for frames, arrows,
// scroll bars and check marks.
type SpecialChar uint8

// Special characters.
const (
	BoxTopLeftCornerDoubleLine SpecialChar = iota
	BoxTopRightCornerDoubleLine
	BoxBottomRightCornerDoubleLine
	BoxBottomLeftCornerDoubleLine
	BoxHorizontalDoubleLine
	BoxVerticalDoubleLine
	BoxCrossDoubleLine

	BoxTopLeftCornerSingleLine
	BoxTopRightCornerSingleLine
	BoxBottomRightCornerSingleLine
	BoxBottomLeftCornerSingleLine
	BoxHorizontalSingleLine
	BoxVerticalSingleLine
	BoxCrossSingleLine
	BoxMidleTop
	BoxMidleBottom
	BoxMidleLeft
	BoxMidleRight

	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUpDown
	ArrowLeftRight

	TriangleUp
	TriangleDown
	TriangleLeft
	TriangleRight

	Block0
	Block25
	Block50
	Block75
	Block100
	BlockUpperHalf
	BlockLowerHalf
	BlockLeftHalf
	BlockRightHalf
	BlockCentered

	CircleFilled
	CircleEmpty
	CheckMark
	MenuSign
	FourPoints
	ThreePointsHorizontal

	specialCharCount
)

var specialGlyphs = [specialCharCount]rune{
	BoxTopLeftCornerDoubleLine:     '╔',
	BoxTopRightCornerDoubleLine:    '╗',
	BoxBottomRightCornerDoubleLine: '╝',
	BoxBottomLeftCornerDoubleLine:  '╚',
	BoxHorizontalDoubleLine:        '═',
	BoxVerticalDoubleLine:          '║',
	BoxCrossDoubleLine:             '╬',

	BoxTopLeftCornerSingleLine:     '┌',
	BoxTopRightCornerSingleLine:    '┐',
	BoxBottomRightCornerSingleLine: '┘',
	BoxBottomLeftCornerSingleLine:  '└',
	BoxHorizontalSingleLine:        '─',
	BoxVerticalSingleLine:          '│',
	BoxCrossSingleLine:             '┼',
	BoxMidleTop:                    '┬',
	BoxMidleBottom:                 '┴',
	BoxMidleLeft:                   '├',
	BoxMidleRight:                  '┤',

	ArrowUp:        '↑',
	ArrowDown:      '↓',
	ArrowLeft:      '←',
	ArrowRight:     '→',
	ArrowUpDown:    '↕',
	ArrowLeftRight: '↔',

	TriangleUp:    '▲',
	TriangleDown:  '▼',
	TriangleLeft:  '◄',
	TriangleRight: '►',

	Block0:         ' ',
	Block25:        '░',
	Block50:        '▒',
	Block75:        '▓',
	Block100:       '█',
	BlockUpperHalf: '▀',
	BlockLowerHalf: '▄',
	BlockLeftHalf:  '▌',
	BlockRightHalf: '▐',
	BlockCentered:  '■',

	CircleFilled:          '●',
	CircleEmpty:           '○',
	CheckMark:             '√',
	MenuSign:              '≡',
	FourPoints:            '∷',
	ThreePointsHorizontal: '…',
}

// Rune returns the glyph for c.
func (c SpecialChar) Rune() rune {
	if c >= specialCharCount {
		return '?'
	}
	return specialGlyphs[c]
}

// LineType selects the glyph set used by DrawRect and the line helpers.
type LineType uint8

// Line types.
const (
	LineSingle LineType = iota
	LineDouble
	LineBlock
)

type boxGlyphs struct {
	topLeft, topRight, bottomRight, bottomLeft, horizontal, vertical rune
}

func (t LineType) glyphs() boxGlyphs {
	switch t {
	case LineDouble:
		return boxGlyphs{'╔', '╗', '╝', '╚', '═', '║'}
	case LineBlock:
		return boxGlyphs{'█', '█', '█', '█', '█', '█'}
	}
	return boxGlyphs{'┌', '┐', '┘', '└', '─', '│'}
}
