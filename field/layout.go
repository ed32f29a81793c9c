package field

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cursorWidth is the cell width reserved for the cursor at the right
// edge of the viewport.
const cursorWidth = 1

// Bounds is the field's painted region in terminal cells.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Line is the shaped-line contract the engine renders and hit-tests
// against. Offsets are byte offsets into Text; x positions are cells.
//
// The engine caches the last shaped Line and Bounds between layout
// passes; a custom implementation can be substituted for proportional
// rendering targets.
type Line interface {
	Text() string
	Width() int

	// XForIndex returns the x position of the grapheme containing the
	// given byte offset, or the total width for end-of-text.
	XForIndex(offset int) int

	// IndexForX returns the byte offset of the grapheme covering x, or
	// false when x is outside the shaped text.
	IndexForX(x int) (int, bool)

	// ClosestIndexForX returns the boundary offset nearest to x,
	// clamped into [0, len(Text)].
	ClosestIndexForX(x int) int
}

// monoLine shapes text for a monospace grid using grapheme cell
// widths.
type monoLine struct {
	text    string
	offsets []int // byte offset of each grapheme
	xs      []int // x position of each grapheme
	width   int
}

// ShapeLine measures text into a Line for terminal rendering.
func ShapeLine(text string) Line {
	l := &monoLine{text: text}
	g := uniseg.NewGraphemes(text)
	x := 0
	for g.Next() {
		start, _ := g.Positions()
		l.offsets = append(l.offsets, start)
		l.xs = append(l.xs, x)
		x += runewidth.StringWidth(g.Str())
	}
	l.width = x
	return l
}

func (l *monoLine) Text() string { return l.text }

func (l *monoLine) Width() int { return l.width }

func (l *monoLine) XForIndex(offset int) int {
	if offset >= len(l.text) {
		return l.width
	}
	x := 0
	for i, o := range l.offsets {
		if o > offset {
			break
		}
		x = l.xs[i]
	}
	return x
}

func (l *monoLine) IndexForX(x int) (int, bool) {
	if x < 0 || x >= l.width {
		return 0, false
	}
	for i := len(l.xs) - 1; i >= 0; i-- {
		if l.xs[i] <= x {
			return l.offsets[i], true
		}
	}
	return 0, false
}

func (l *monoLine) ClosestIndexForX(x int) int {
	best := 0
	bestDist := absInt(x - 0)
	for i := range l.xs {
		if d := absInt(x - l.xs[i]); d < bestDist {
			best = l.offsets[i]
			bestDist = d
		}
	}
	if d := absInt(x - l.width); d < bestDist {
		best = len(l.text)
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
