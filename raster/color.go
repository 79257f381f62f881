package raster

import "image/color"

// Policy decides the color a pixel ends up with when a primitive covers it.
// Every primitive routes its pixel writes through Apply, so overwrite and
// blend semantics share one write path.
type Policy interface {
	Apply(existing Color) Color
}

// Color is an opaque 8-bit RGB color. As a Policy it replaces the
// existing pixel.
type Color struct {
	R, G, B uint8
}

// Apply implements Policy by ignoring existing.
func (c Color) Apply(Color) Color {
	return c
}

// Gray returns an opaque gray of lightness l.
func Gray(l uint8) Color {
	return Color{R: l, G: l, B: l}
}

// Lerp performs linear interpolation between two colors.
// t=0 returns c, t=1 returns other. Channels are truncated.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(clamp255(float64(a)*(1-t) + float64(b)*t))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Alpha is a color with an opacity. As a Policy it blends over the existing
// pixel with weight A/255; A=255 behaves exactly like an opaque Color.
type Alpha struct {
	Color
	A uint8
}

// Apply implements Policy.
func (a Alpha) Apply(existing Color) Color {
	if a.A == 0xff {
		return a.Color
	}
	return a.Color.Lerp(existing, 1-float64(a.A)/0xff)
}

// NoOp is a Policy that leaves pixels untouched.
type NoOp struct{}

// Apply implements Policy.
func (NoOp) Apply(existing Color) Color {
	return existing
}

// Common colors
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)
