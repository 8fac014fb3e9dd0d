// Package layout resolves compact anchor/percentage layout strings into
// absolute character-cell rectangles relative to a parent.
package layout

import "fmt"

// ValueType tags the unit of a Value.
type ValueType uint8

const (
	// CharacterOffset is a plain cell count.
	CharacterOffset ValueType = iota
	// Percentage is a fraction of the parent size scaled by 100,
	// so 5000 means 50.00%.
	Percentage
)

// Value is a signed layout magnitude with its unit.
type Value struct {
	Amount int32
	Type   ValueType
}

// Cells returns a character offset value.
func Cells(n int) Value {
	return Value{Amount: int32(n), Type: CharacterOffset}
}

// Percent returns a percentage value. hundredths is the percentage
// multiplied by 100 (Percent(5000) is 50%).
func Percent(hundredths int) Value {
	return Value{Amount: int32(hundredths), Type: Percentage}
}

// ToInt resolves the value against the size of the parent.
func (v Value) ToInt(parentSize int) int {
	if v.Type == Percentage {
		return int(int64(v.Amount) * int64(parentSize) / 10000)
	}
	return int(v.Amount)
}

// String formats the value the way it is written in a layout string.
func (v Value) String() string {
	if v.Type != Percentage {
		return fmt.Sprintf("%d", v.Amount)
	}
	whole := v.Amount / 100
	frac := v.Amount % 100
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return fmt.Sprintf("%d%%", whole)
	}
	sign := ""
	if v.Amount < 0 && whole == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d%%", sign, whole, frac)
}
