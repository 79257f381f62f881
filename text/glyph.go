package text

// Glyph is the stroke outline of one character.
//
// Stroke x coordinates are in [0, 1] and get multiplied by Width when
// drawn, so a glyph with Width 0.5 is half as wide as it is tall.
type Glyph struct {
	strokes []Stroke
	width   float64
	step    float64
}

// NewGlyph creates a glyph from its strokes, advance width and the gap that
// follows it.
func NewGlyph(strokes []Stroke, width, step float64) *Glyph {
	return &Glyph{strokes: strokes, width: width, step: step}
}

// Strokes returns the glyph outline. The slice must not be modified.
func (g *Glyph) Strokes() []Stroke {
	return g.strokes
}

// Width returns the horizontal extent of the glyph relative to its height.
func (g *Glyph) Width() float64 {
	return g.width
}

// Step returns the gap after the glyph.
func (g *Glyph) Step() float64 {
	return g.step
}

// TotalStep returns how far the pen moves past this glyph.
func (g *Glyph) TotalStep() float64 {
	return g.width + g.step
}

// Font maps characters to glyphs. A Font is immutable and safe for
// concurrent use.
type Font struct {
	glyphs map[rune]*Glyph
}

// NewFont creates a font from a glyph table.
func NewFont(glyphs map[rune]*Glyph) *Font {
	m := make(map[rune]*Glyph, len(glyphs))
	for r, g := range glyphs {
		m[r] = g
	}
	return &Font{glyphs: m}
}

// Glyph returns the glyph for r.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Len returns the number of glyphs in the font.
func (f *Font) Len() int {
	return len(f.glyphs)
}
