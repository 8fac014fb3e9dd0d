package input

// MouseButton is a bitmask of pressed mouse buttons.
type MouseButton uint8

// Mouse buttons.
const (
	MouseNone   MouseButton = 0
	MouseLeft   MouseButton = 0x01
	MouseRight  MouseButton = 0x02
	MouseCenter MouseButton = 0x04
	// MouseDoubleClicked is set on the second press of a double click.
	MouseDoubleClicked MouseButton = 0x08
)

// Has reports whether all bits in b are set.
func (m MouseButton) Has(b MouseButton) bool {
	return m&b == b
}

// String returns the primary button name.
func (m MouseButton) String() string {
	switch {
	case m.Has(MouseLeft):
		return "Left"
	case m.Has(MouseRight):
		return "Right"
	case m.Has(MouseCenter):
		return "Center"
	}
	return "None"
}

// ParseMouseButton maps "left", "right", "center"/"middle" to a button.
func ParseMouseButton(name string) (MouseButton, bool) {
	switch name {
	case "Left", "left", "l":
		return MouseLeft, true
	case "Right", "right", "r":
		return MouseRight, true
	case "Center", "center", "Middle", "middle", "c":
		return MouseCenter, true
	}
	return MouseNone, false
}

// WheelDirection is the direction of a mouse wheel event.
type WheelDirection uint8

// Wheel directions.
const (
	WheelNone WheelDirection = iota
	WheelUp
	WheelDown
	WheelLeft
	WheelRight
)

// ParseWheel maps "up", "down", "left", "right" to a direction.
func ParseWheel(name string) (WheelDirection, bool) {
	switch name {
	case "up", "Up":
		return WheelUp, true
	case "down", "Down":
		return WheelDown, true
	case "left", "Left":
		return WheelLeft, true
	case "right", "Right":
		return WheelRight, true
	}
	return WheelNone, false
}
