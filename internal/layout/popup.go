package layout

// Popup is the vertical placement of an expanded popup relative to the
// control (or menu item) it is anchored to.
type Popup struct {
	// Y is the screen row of the popup's first line.
	Y int
	// Height is the total popup height including the anchor row.
	Height int
	// HeaderOffset is the row, relative to Y, where the anchor (the
	// control's collapsed header line) is drawn.
	HeaderOffset int
	// ContentOffset is the row, relative to Y, where the popup body starts.
	ContentOffset int
	// Above is set when the popup was flipped to open upward.
	Above bool
}

// Flip places a run of size cells that should start at anchor within
// [0, limit). When it would extend past limit, it is flipped so that it
// ends at anchor instead. The returned start never goes below zero.
func Flip(anchor, size, limit int) (start int, flipped bool) {
	if anchor+size <= limit {
		return anchor, false
	}
	start = anchor - size + 1
	if start < 0 {
		start = 0
	}
	return start, true
}

// ExpandPopup places a popup of the given total height whose first row
// is the anchor control itself. Normally the header stays on the anchor
// row and the body follows below it; if that would run past the bottom of
// the screen the popup opens above the anchor, the header moves to the
// last row and the body starts at row 0.
func ExpandPopup(anchorY, height, screenHeight int) Popup {
	y, flipped := Flip(anchorY, height, screenHeight)
	if !flipped {
		return Popup{Y: y, Height: height, HeaderOffset: 0, ContentOffset: 1}
	}
	return Popup{Y: y, Height: height, HeaderOffset: anchorY - y, ContentOffset: 0, Above: true}
}

// Beside places a popup of the given width next to a parent occupying
// columns [parentLeft, parentRight). It opens to the right unless that
// overflows the screen, in which case it opens to the left.
func Beside(parentLeft, parentRight, width, screenWidth int) (x int, flipped bool) {
	if parentRight+width <= screenWidth {
		return parentRight, false
	}
	x = parentLeft - width
	if x < 0 {
		x = screenWidth - width
		if x < 0 {
			x = 0
		}
	}
	return x, true
}

// Shift keeps a run of size cells starting at pos inside [0, limit) by
// moving it back when it overflows.
func Shift(pos, size, limit int) int {
	if pos+size > limit {
		pos = limit - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
