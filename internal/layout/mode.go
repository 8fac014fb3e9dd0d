package layout

// FormatMode selects the resolution algorithm for a layout. It is
// derived from the supplied fields, never chosen directly.
type FormatMode uint8

// Format modes.
const (
	ModeNone FormatMode = iota
	ModePointAndSize
	ModeLeftRightAnchorsAndHeight
	ModeTopBottomAnchorsAndWidth
	ModeLeftTopRightAnchorsAndHeight
	ModeLeftBottomRightAnchorsAndHeight
	ModeTopLeftBottomAnchorsAndWidth
	ModeTopRightBottomAnchorsAndWidth
	ModeLeftTopRightBottomAnchors
)

// String returns the name of the mode.
func (m FormatMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModePointAndSize:
		return "point-and-size"
	case ModeLeftRightAnchorsAndHeight:
		return "left-right-anchors-and-height"
	case ModeTopBottomAnchorsAndWidth:
		return "top-bottom-anchors-and-width"
	case ModeLeftTopRightAnchorsAndHeight:
		return "left-top-right-anchors-and-height"
	case ModeLeftBottomRightAnchorsAndHeight:
		return "left-bottom-right-anchors-and-height"
	case ModeTopLeftBottomAnchorsAndWidth:
		return "top-left-bottom-anchors-and-width"
	case ModeTopRightBottomAnchorsAndWidth:
		return "top-right-bottom-anchors-and-width"
	case ModeLeftTopRightBottomAnchors:
		return "left-top-right-bottom-anchors"
	default:
		return "unknown"
	}
}

const anchors = FieldLeft | FieldTop | FieldRight | FieldBottom

// DetectMode validates the combination of supplied fields and returns the
// resolution mode.
func DetectMode(info Information) (FormatMode, error) {
	f := info.Flags
	if f == 0 {
		return ModeNone, nil
	}

	if f.Has(FieldDock) {
		if bad := f & (FieldX | FieldY | FieldAlign | anchors); bad != 0 {
			return ModeNone, &ConflictError{Fields: bad | FieldDock, Reason: "dock cannot be combined with positions, anchors or align"}
		}
		return ModePointAndSize, nil
	}

	if f.Has(FieldX) && f.Any(FieldLeft|FieldRight) {
		return ModeNone, &ConflictError{Fields: f & (FieldX | FieldLeft | FieldRight), Reason: "x cannot be combined with a horizontal anchor"}
	}
	if f.Has(FieldY) && f.Any(FieldTop|FieldBottom) {
		return ModeNone, &ConflictError{Fields: f & (FieldY | FieldTop | FieldBottom), Reason: "y cannot be combined with a vertical anchor"}
	}

	if f.Has(anchors) {
		return ModeLeftTopRightBottomAnchors, nil
	}

	if f.Has(FieldLeft|FieldRight|FieldWidth) {
		return ModeNone, &ConflictError{Fields: FieldLeft | FieldRight | FieldWidth, Reason: "width is ambiguous when left and right are anchored"}
	}
	if f.Has(FieldTop|FieldBottom|FieldHeight) {
		return ModeNone, &ConflictError{Fields: FieldTop | FieldBottom | FieldHeight, Reason: "height is ambiguous when top and bottom are anchored"}
	}

	switch f & anchors {
	case FieldLeft | FieldTop | FieldRight:
		return ModeLeftTopRightAnchorsAndHeight, nil
	case FieldLeft | FieldBottom | FieldRight:
		return ModeLeftBottomRightAnchorsAndHeight, nil
	case FieldTop | FieldLeft | FieldBottom:
		return ModeTopLeftBottomAnchorsAndWidth, nil
	case FieldTop | FieldRight | FieldBottom:
		return ModeTopRightBottomAnchorsAndWidth, nil
	case FieldLeft | FieldRight:
		return ModeLeftRightAnchorsAndHeight, nil
	case FieldTop | FieldBottom:
		return ModeTopBottomAnchorsAndWidth, nil
	}
	return ModePointAndSize, nil
}
