package text

import (
	"sync"

	"github.com/gogpu/tsplot/geom"
)

// DefaultStep is the gap between glyphs of the built-in font.
const DefaultStep = 0.35

var defaultFont = sync.OnceValue(newDefaultFont)

// Default returns the built-in font: digits, '.', '-', ' ' and A-Z. The
// font is built on first use and shared.
func Default() *Font {
	return defaultFont()
}

func newDefaultFont() *Font {
	pt := geom.Pt

	six := Begin(pt(1, 1), pt(0, 0.6)).
		To(pt(0, 0)).
		To(pt(1, 0)).
		To(pt(1, 0.6)).
		ToStart(1).
		Build()

	// '9' is '6' turned half a revolution.
	nine := make([]Stroke, len(six))
	for i, s := range six {
		nine[i] = Stroke{Start: flip(s.Start), End: flip(s.End)}
	}

	table := map[rune]struct {
		strokes []Stroke
		width   float64
	}{
		'0': {Begin(pt(0, 1), pt(1, 1)).To(pt(1, 0)).To(pt(0, 0)).ToStart(0).Jump(pt(0, 1), pt(1, 0)).Build(), 0.6},
		'1': {Begin(pt(1, 0), pt(1, 1)).Build(), 0.1},
		'2': {Begin(pt(0, 0.8), pt(0.2, 1)).To(pt(0.9, 1)).To(pt(1, 0.8)).To(pt(0, 0)).To(pt(1, 0)).Build(), 0.8},
		'3': {Begin(pt(0, 1), pt(1, 1)).To(pt(1, 1)).To(pt(0.2, 0.6)).To(pt(1, 0)).To(pt(0, 0)).Build(), 0.8},
		'4': {Begin(pt(0.8, 0), pt(0.8, 1)).To(pt(0, 0.3)).To(pt(1, 0.3)).Build(), 0.8},
		'5': {Begin(pt(1, 1), pt(0, 1)).To(pt(0, 0.6)).To(pt(1, 0.6)).To(pt(1, 0)).To(pt(0, 0)).Build(), 0.8},
		'6': {six, 0.6},
		'7': {Begin(pt(0, 1), pt(1, 1)).To(pt(0.1, 0)).Build(), 0.7},
		'8': {Begin(pt(0, 1), pt(1, 1)).To(pt(0, 0)).To(pt(1, 0)).ToStart(0).Build(), 0.6},
		'9': {nine, 0.6},
		'.': {Begin(pt(0.4, 0), pt(0.4, 0)).Build(), 0.1},
		'-': {Begin(pt(0, 0.5), pt(1, 0.5)).Build(), 0.5},
		' ': {nil, 0.3},

		'A': {Begin(pt(0, 0), pt(0.5, 1)).To(pt(1, 0)).Jump(pt(0.15, 0.3), pt(0.85, 0.3)).Build(), 0.8},
		'B': {Begin(pt(0, 0), pt(0, 1)).To(pt(0.8, 1)).To(pt(1, 0.8)).To(pt(0.8, 0.5)).To(pt(0, 0.5)).
			From(4, pt(1, 0.2)).To(pt(1, 0)).ToStart(0).Build(), 0.7},
		'C': {Begin(pt(1, 1), pt(0, 1)).To(pt(0, 0)).To(pt(1, 0)).Build(), 0.5},
		'D': {Begin(pt(0.7, 1), pt(0, 1)).To(pt(0, 0)).To(pt(0.7, 0)).To(pt(1, 0.5)).ToStart(0).Build(), 0.7},
		'E': {Begin(pt(1, 1), pt(0, 1)).To(pt(0, 0)).To(pt(1, 0)).Jump(pt(0, 0.5), pt(1, 0.5)).Build(), 0.7},
		'F': {Begin(pt(1, 1), pt(0, 1)).To(pt(0, 0)).Jump(pt(0, 0.5), pt(0.9, 0.5)).Build(), 0.7},
		'G': {Begin(pt(1, 1), pt(0, 1)).To(pt(0, 0)).To(pt(1, 0)).To(pt(1, 0.5)).To(pt(0.5, 0.5)).Build(), 0.8},
		'H': {Begin(pt(0, 1), pt(0, 0)).Jump(pt(1, 1), pt(1, 0)).Jump(pt(0, 0.5), pt(1, 0.5)).Build(), 0.6},
		'I': {Begin(pt(1, 1), pt(0, 1)).Jump(pt(1, 0), pt(0, 0)).Jump(pt(0.5, 0), pt(0.5, 1)).Build(), 0.4},
		'J': {Begin(pt(0.3, 1), pt(1, 1)).To(pt(1, 0)).To(pt(0, 0)).To(pt(0, 0.2)).Build(), 0.6},
		'K': {Begin(pt(0, 1), pt(0, 0)).Jump(pt(0.8, 1), pt(0, 0.5)).To(pt(1, 0)).Build(), 0.7},
		'L': {Begin(pt(0, 1), pt(0, 0)).To(pt(1, 0)).Build(), 0.6},
		'M': {Begin(pt(0, 0), pt(0, 1)).To(pt(0.5, 0.4)).To(pt(1, 1)).To(pt(1, 0)).Build(), 0.7},
		'N': {Begin(pt(0, 0), pt(0, 1)).To(pt(1, 0)).To(pt(1, 1)).Build(), 0.6},
		'O': {Begin(pt(0, 1), pt(1, 1)).To(pt(1, 0)).To(pt(0, 0)).ToStart(0).Build(), 0.6},
		'P': {Begin(pt(0, 0.5), pt(1, 0.5)).To(pt(1, 1)).To(pt(0, 1)).To(pt(0, 0)).Build(), 0.6},
		'Q': {Begin(pt(0, 1), pt(0.9, 1)).To(pt(0.9, 0.05)).To(pt(0, 0.05)).ToStart(0).Jump(pt(0.5, 0.2), pt(1, 0)).Build(), 0.6},
		'R': {Begin(pt(1, 0), pt(0, 0.5)).To(pt(0.9, 0.5)).To(pt(0.9, 1)).To(pt(0, 1)).To(pt(0, 0)).Build(), 0.7},
		'S': {Begin(pt(1, 1), pt(0, 1)).To(pt(0, 0.6)).To(pt(1, 0.4)).To(pt(1, 0)).To(pt(0, 0)).Build(), 0.5},
		'T': {Begin(pt(1, 1), pt(0, 1)).Jump(pt(0.5, 1), pt(0.5, 0)).Build(), 0.7},
		'U': {Begin(pt(0, 1), pt(0, 0)).To(pt(1, 0)).To(pt(1, 1)).Build(), 0.6},
		'V': {Begin(pt(0, 1), pt(0.5, 0)).To(pt(1, 1)).Build(), 0.5},
		'W': {Begin(pt(0, 1), pt(0.2, 0)).To(pt(0.5, 0.6)).To(pt(0.8, 0)).To(pt(1, 1)).Build(), 0.9},
		'X': {Begin(pt(0, 1), pt(1, 0)).Jump(pt(0, 0), pt(1, 1)).Build(), 0.7},
		'Y': {Begin(pt(0, 1), pt(0.5, 0.6)).To(pt(0.5, 0)).From(0, pt(1, 1)).Build(), 0.7},
		'Z': {Begin(pt(0, 1), pt(1, 1)).To(pt(0, 0)).To(pt(1, 0)).Build(), 0.7},
	}

	glyphs := make(map[rune]*Glyph, len(table))
	for r, e := range table {
		glyphs[r] = NewGlyph(e.strokes, e.width, DefaultStep)
	}
	return NewFont(glyphs)
}

func flip(p geom.Point) geom.Point {
	return geom.Pt(1-p.X, 1-p.Y)
}
