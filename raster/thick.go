package raster

import (
	"image"
	"math"
)

const (
	// capSegments is the number of fan triangles per round line cap.
	capSegments = 3

	// circleLOD is the number of sides of the polygon approximating a circle.
	circleLOD = 9
)

// PixelSet collects the pixels of a shape built from several triangles so
// that each pixel is painted exactly once.
type PixelSet map[image.Point]struct{}

// Add inserts pixels into the set.
func (s PixelSet) Add(pixels ...image.Point) {
	for _, px := range pixels {
		s[px] = struct{}{}
	}
}

// Paint applies p once to every pixel of s.
func (img *Image) Paint(s PixelSet, p Policy) {
	for px := range s {
		img.SetPixel(px.X, px.Y, p)
	}
}

// AddThickLine adds the pixels of a line of the given thickness with round
// caps to s. The body is two triangles; each cap is a small triangle fan.
// Lines with non-finite endpoints add nothing.
func (img *Image) AddThickLine(s PixelSet, p0, p1 Point, thickness float64) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return
	}

	diff := p1.Sub(p0)
	angle := math.Atan2(diff.Y, diff.X)

	// direction maps a vector in the line's local frame (x along the line)
	// into aspect-corrected normalized space.
	direction := func(local Point) Point {
		return img.WithoutAspect(local.Rotate(angle)).Scale(thickness)
	}

	up := direction(Point{X: 0, Y: 1})

	capPoint := func(i int, outward float64) Point {
		t := float64(i) / float64(capSegments+1)
		return direction(Point{
			X: math.Sin(t*math.Pi) * outward,
			Y: t*2 - 1,
		})
	}

	for i := 0; i < capSegments; i++ {
		s.Add(img.trianglePixels(p0.Sub(up), p0.Add(capPoint(i+1, -1)), p0.Add(capPoint(i+2, -1)))...)
		s.Add(img.trianglePixels(p1.Sub(up), p1.Add(capPoint(i+1, 1)), p1.Add(capPoint(i+2, 1)))...)
	}

	s.Add(img.trianglePixels(p0.Add(up), p1.Add(up), p0.Sub(up))...)
	s.Add(img.trianglePixels(p0.Sub(up), p1.Add(up), p1.Sub(up))...)
}

// LineThick draws a line of the given thickness with round caps.
func (img *Image) LineThick(p0, p1 Point, thickness float64, p Policy) {
	s := make(PixelSet)
	img.AddThickLine(s, p0, p1, thickness)
	img.Paint(s, p)
}

// Circle fills a circle of radius size around pos, approximated by a
// circleLOD-sided polygon fan.
func (img *Image) Circle(pos Point, size float64, p Policy) {
	if !pos.IsFinite() {
		return
	}

	radius := img.WithoutAspect(Point{X: size, Y: size})
	pointAt := func(i int) Point {
		sin, cos := math.Sincos(float64(i) / circleLOD * 2 * math.Pi)
		return Point{X: sin, Y: cos}.Mul(radius).Add(pos)
	}

	s := make(PixelSet)
	for i := 1; i <= circleLOD; i++ {
		s.Add(img.trianglePixels(pointAt(i-1), pos, pointAt(i))...)
	}
	img.Paint(s, p)
}
