package text

import "github.com/gogpu/tsplot/geom"

// Stroke is one straight segment of a glyph in unit space.
type Stroke struct {
	Start geom.Point
	End   geom.Point
}

// Builder assembles the strokes of a glyph as a mostly connected path.
//
// Index arguments refer to strokes already added; an out of range index
// panics, since glyph tables are static.
type Builder struct {
	strokes []Stroke
}

// Begin starts a path with a single stroke.
func Begin(start, end geom.Point) *Builder {
	return &Builder{strokes: []Stroke{{Start: start, End: end}}}
}

// Jump adds a stroke that is not connected to the previous one.
func (b *Builder) Jump(start, end geom.Point) *Builder {
	b.strokes = append(b.strokes, Stroke{Start: start, End: end})
	return b
}

// To continues the path from the end of the last stroke to p.
func (b *Builder) To(p geom.Point) *Builder {
	return b.Jump(b.last().End, p)
}

// From adds a stroke from the end of stroke index to p.
func (b *Builder) From(index int, p geom.Point) *Builder {
	return b.Jump(b.strokes[index].End, p)
}

// ToStart closes back onto the start of stroke index.
func (b *Builder) ToStart(index int) *Builder {
	return b.Jump(b.last().End, b.strokes[index].Start)
}

// Build returns the strokes added so far.
func (b *Builder) Build() []Stroke {
	out := make([]Stroke, len(b.strokes))
	copy(out, b.strokes)
	return out
}

func (b *Builder) last() Stroke {
	return b.strokes[len(b.strokes)-1]
}
