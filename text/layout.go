package text

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/tsplot/geom"
	"github.com/gogpu/tsplot/raster"
)

const unknownStr = "Unknown"

// strokeRatio is the stroke thickness relative to the glyph size.
const strokeRatio = 0.05

// HAlign is the horizontal placement of text inside a box.
type HAlign int

const (
	// HAlignLeft puts the text against the left edge (default).
	HAlignLeft HAlign = iota
	// HAlignMiddle centers the text horizontally.
	HAlignMiddle
	// HAlignRight puts the text against the right edge.
	HAlignRight
)

// String returns the string representation of the alignment.
func (a HAlign) String() string {
	switch a {
	case HAlignLeft:
		return "Left"
	case HAlignMiddle:
		return "Middle"
	case HAlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VAlign is the vertical placement of text inside a box.
type VAlign int

const (
	// VAlignBottom puts the text against the bottom edge (default).
	VAlignBottom VAlign = iota
	// VAlignMiddle centers the text vertically.
	VAlignMiddle
	// VAlignTop puts the text against the top edge.
	VAlignTop
)

// String returns the string representation of the alignment.
func (a VAlign) String() string {
	switch a {
	case VAlignBottom:
		return "Bottom"
	case VAlignMiddle:
		return "Middle"
	case VAlignTop:
		return "Top"
	default:
		return unknownStr
	}
}

// placed is a glyph with its pen position and aspect-corrected size.
type placed struct {
	glyph *Glyph
	pos   geom.Point
	size  geom.Point
}

// layout positions the glyphs of s with the pen starting at pos. The pen
// advances by the previous glyph's TotalStep, so there is no trailing gap.
func layout(img *raster.Image, f *Font, pos, size geom.Point, s string) []placed {
	size = img.WithoutAspect(size)

	var out []placed
	advance := 0.0
	for _, r := range cases.Upper(language.Und).String(s) {
		g, ok := f.Glyph(r)
		if !ok {
			continue
		}

		pos.X += advance
		advance = g.TotalStep() * size.X

		out = append(out, placed{glyph: g, pos: pos, size: size})
	}
	return out
}

// bounds returns the box covered by glyphs laid out from origin.
func bounds(origin geom.Point, glyphs []placed) geom.BoundingBox {
	bb := geom.BoundingBox{BottomLeft: origin, TopRight: origin}
	for _, p := range glyphs {
		bb.TopRight = geom.Point{
			X: p.pos.X + p.glyph.width*p.size.X,
			Y: math.Max(bb.TopRight.Y, bb.BottomLeft.Y+p.size.Y),
		}
	}
	return bb
}

// Measure returns the footprint of s drawn at the given glyph size, in
// normalized image units. Nothing is drawn. The result is zero when no
// character of s is in the font.
func Measure(img *raster.Image, f *Font, size geom.Point, s string) geom.Point {
	return bounds(geom.Point{}, layout(img, f, geom.Point{}, size, s)).TopRight
}

// Draw stamps s with its bottom-left corner at pos. size is the height of
// one glyph on both axes; the horizontal component is aspect corrected so
// glyphs keep their shape on non-square images. It returns the box the text
// covers.
func Draw(img *raster.Image, f *Font, p raster.Policy, pos, size geom.Point, s string) geom.BoundingBox {
	thickness := math.Min(size.X, size.Y) * strokeRatio
	glyphs := layout(img, f, pos, size, s)

	for _, pl := range glyphs {
		pixels := make(raster.PixelSet)
		for _, st := range pl.glyph.strokes {
			img.AddThickLine(pixels, pl.local(st.Start), pl.local(st.End), thickness)
		}
		img.Paint(pixels, p)
	}

	return bounds(pos, glyphs)
}

// local maps a unit-space stroke point into image space.
func (p placed) local(u geom.Point) geom.Point {
	u.X *= p.glyph.width
	return p.pos.Add(u.Mul(p.size))
}

// DrawBetween scales s uniformly to the largest size that fits bb and
// places it according to h and v. Text with nothing drawable is ignored.
func DrawBetween(img *raster.Image, f *Font, p raster.Policy, bb geom.BoundingBox, h HAlign, v VAlign, s string) {
	textSize := Measure(img, f, geom.Splat(1), s)
	if textSize.X <= 0 || textSize.Y <= 0 {
		return
	}

	goal := bb.Size()
	ratio := goal.Div(textSize)
	scale := math.Min(ratio.X, ratio.Y)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return
	}
	fit := textSize.Scale(scale)

	pos := bb.BottomLeft
	switch h {
	case HAlignMiddle:
		pos.X = (bb.BottomLeft.X + bb.TopRight.X - fit.X) * 0.5
	case HAlignRight:
		pos.X = bb.TopRight.X - fit.X
	}
	switch v {
	case VAlignMiddle:
		pos.Y = (bb.BottomLeft.Y + bb.TopRight.Y - fit.Y) * 0.5
	case VAlignTop:
		pos.Y = bb.TopRight.Y - fit.Y
	}

	Draw(img, f, p, pos, geom.Splat(scale), s)
}
