package input

// InvalidHotKeyOffset marks text without a usable hot key.
const InvalidHotKeyOffset = -1

// ParseHotKey strips the first '&' marker from text and returns the
// display text, the key of the marked character and its offset in the
// display text. A marker in front of anything but an ASCII letter or
// digit is removed but yields no hot key. A trailing '&' is kept.
func ParseHotKey(text string) (display []rune, key Key, offset int) {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != '&' {
			continue
		}
		display = make([]rune, 0, len(runes)-1)
		display = append(display, runes[:i]...)
		display = append(display, runes[i+1:]...)
		if k, ok := LetterOrDigit(display[i]); ok {
			return display, k, i
		}
		return display, KeyNone, InvalidHotKeyOffset
	}
	return runes, KeyNone, InvalidHotKeyOffset
}
