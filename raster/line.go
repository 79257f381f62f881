package raster

import (
	"image"
	"math"
)

// LinePixels returns the Bresenham pixel sequence from p0 to p1, both
// endpoints included.
func LinePixels(p0, p1 image.Point) []image.Point {
	dx := absInt(p1.X - p0.X)
	sx := -1
	if p0.X < p1.X {
		sx = 1
	}

	dy := -absInt(p1.Y - p0.Y)
	sy := -1
	if p0.Y < p1.Y {
		sy = 1
	}

	err := dx + dy
	pixels := make([]image.Point, 0, max(dx, -dy)+1)
	for {
		pixels = append(pixels, p0)
		if p0 == p1 {
			break
		}

		e2 := err * 2
		if e2 >= dy {
			if p0.X == p1.X {
				break
			}
			err += dy
			p0.X += sx
		}
		if e2 <= dx {
			if p0.Y == p1.Y {
				break
			}
			err += dx
			p0.Y += sy
		}
	}

	return pixels
}

// Line draws a one-pixel Bresenham line between two normalized points.
func (img *Image) Line(p0, p1 Point, p Policy) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return
	}
	img.paint(LinePixels(img.ToPixel(p0), img.ToPixel(p1)), p)
}

// LineAA draws an anti-aliased hairline using Xiaolin Wu's algorithm. Each
// touched pixel is lerped toward c by its coverage.
func (img *Image) LineAA(p0, p1 Point, c Color) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return
	}

	a := img.ToPixelF(p0)
	b := img.ToPixelF(p1)

	// Steep lines step along y: transpose here, transpose back in plot.
	steep := math.Abs(b.Y-a.Y) > math.Abs(b.X-a.X)
	if steep {
		a.X, a.Y = a.Y, a.X
		b.X, b.Y = b.Y, b.X
	}
	if a.X > b.X {
		a, b = b, a
	}

	d := b.Sub(a)
	gradient := 1.0
	if d.X != 0 {
		gradient = d.Y / d.X
	}

	plot := func(x, y, coverage float64) {
		if steep {
			x, y = y, x
		}
		img.blend(int(x), int(y), c, coverage)
	}

	endpoint := func(p Point, first bool) (yEnd, xPixel float64) {
		xEnd := math.Round(p.X)
		yEnd = p.Y + gradient*(xEnd-p.X)

		xGap := fract(p.X + 0.5)
		if first {
			xGap = rfract(p.X + 0.5)
		}

		yPixel := math.Floor(yEnd)
		plot(xEnd, yPixel, rfract(yEnd)*xGap)
		plot(xEnd, yPixel+1, fract(yEnd)*xGap)

		return yEnd, xEnd
	}

	yEnd, x1 := endpoint(a, true)
	_, x2 := endpoint(b, false)

	intery := yEnd + gradient
	for x := int(x1 + 1); x <= int(x2-1); x++ {
		fx := float64(x)
		plot(fx, math.Floor(intery), rfract(intery))
		plot(fx, math.Floor(intery)+1, fract(intery))
		intery += gradient
	}
}

// fract returns the fractional part of v, keeping its sign.
func fract(v float64) float64 {
	return v - math.Trunc(v)
}

// rfract returns 1 - fract(v).
func rfract(v float64) float64 {
	return 1 - fract(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
