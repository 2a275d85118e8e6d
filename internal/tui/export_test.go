package tui

// KeyAt exports keyAt for testing.
func KeyAt(x, y int) (string, bool) { return keyAt(x, y) }

// KeyCell returns a screen cell inside the on-screen key labelled label.
func KeyCell(label string) (x, y int, ok bool) {
	for _, k := range keyboardLayout(keyboardTop) {
		if k.label == label {
			return k.x0 + 1, k.line, true
		}
	}
	return 0, 0, false
}

// KeyboardTop exports the first screen line of the keyboard.
const KeyboardTop = keyboardTop

// KeyboardWidth exports keyboardWidth for testing.
func KeyboardWidth() int { return keyboardWidth() }
