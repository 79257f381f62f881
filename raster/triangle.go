package raster

import (
	"image"
	"math"
)

// span is the horizontal extent an edge walk touched on one scanline.
type span struct {
	lo, hi int
}

// TrianglePixels returns every pixel of the triangle p0 p1 p2. The three
// edges are walked with Bresenham and each scanline is filled between the
// smallest and largest x touched on it, so zero-area triangles still
// produce their edge pixels.
func TrianglePixels(p0, p1, p2 image.Point) []image.Point {
	yLow := min(p0.Y, p1.Y, p2.Y)
	yHigh := max(p0.Y, p1.Y, p2.Y)

	rows := make([]span, yHigh-yLow+1)
	for i := range rows {
		rows[i] = span{lo: math.MaxInt, hi: math.MinInt}
	}

	for _, edge := range [3][2]image.Point{{p0, p1}, {p1, p2}, {p2, p0}} {
		for _, px := range LinePixels(edge[0], edge[1]) {
			row := &rows[px.Y-yLow]
			row.lo = min(row.lo, px.X)
			row.hi = max(row.hi, px.X)
		}
	}

	var pixels []image.Point
	for i, row := range rows {
		for x := row.lo; x <= row.hi; x++ {
			pixels = append(pixels, image.Point{X: x, Y: yLow + i})
		}
	}
	return pixels
}

// trianglePixels maps a normalized triangle into pixel space and fills it.
func (img *Image) trianglePixels(p0, p1, p2 Point) []image.Point {
	return TrianglePixels(img.ToPixel(p0), img.ToPixel(p1), img.ToPixel(p2))
}

// Triangle fills the normalized triangle p0 p1 p2.
func (img *Image) Triangle(p0, p1, p2 Point, p Policy) {
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
		return
	}
	img.paint(img.trianglePixels(p0, p1, p2), p)
}
