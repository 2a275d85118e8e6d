package tui

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-tui/internal/input"
)

// keySpan is one on-screen key: its label and the screen cells it covers.
type keySpan struct {
	label  string
	line   int // screen line
	x0, x1 int // columns [x0, x1)
}

// rowIndent offsets each keyboard row so the middle row sits staggered.
var rowIndent = []int{1, 3, 0}

// keyGap is the number of blank columns between keys.
const keyGap = 1

// keyWidth is the rendered width of a key: its label plus one cell of
// padding either side.
func keyWidth(label string) int { return len(label) + 2 }

// keyboardLayout computes where every key of input.KeyboardRows is drawn
// when the keyboard starts at screen line top. Rendering and hit-testing both
// use it, so they cannot drift apart.
func keyboardLayout(top int) []keySpan {
	var spans []keySpan
	for r, row := range input.KeyboardRows {
		x := rowIndent[r]
		for _, label := range row {
			w := keyWidth(label)
			spans = append(spans, keySpan{label: label, line: top + r, x0: x, x1: x + w})
			x += w + keyGap
		}
	}
	return spans
}

// keyAt returns the label of the key drawn at (x, y), if any.
func keyAt(x, y int) (string, bool) {
	for _, k := range keyboardLayout(keyboardTop) {
		if y == k.line && x >= k.x0 && x < k.x1 {
			return k.label, true
		}
	}
	return "", false
}

// keyboardWidth is the width of the widest keyboard row.
func keyboardWidth() int {
	w := 0
	for _, k := range keyboardLayout(0) {
		w = max(w, k.x1)
	}
	return w
}

// padTo returns n spaces, or "" when n <= 0.
func padTo(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
