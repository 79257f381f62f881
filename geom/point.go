// Package geom provides the 2D value types shared by the rasterizer, the
// glyph renderer and the chart layout.
package geom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Splat returns a point with both components set to v.
func Splat(v float64) Point {
	return Point{X: v, Y: v}
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the componentwise product of two points.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the componentwise quotient of two points.
// Division by a zero component yields ±Inf or NaN, never a panic.
func (p Point) Div(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// AddScalar adds s to both components.
func (p Point) AddScalar(s float64) Point {
	return Point{X: p.X + s, Y: p.Y + s}
}

// SubScalar subtracts s from both components.
func (p Point) SubScalar(s float64) Point {
	return Point{X: p.X - s, Y: p.Y - s}
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Shrink returns the point divided by a scalar.
func (p Point) Shrink(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Abs returns the point with the absolute value of each component.
func (p Point) Abs() Point {
	return Point{X: math.Abs(p.X), Y: math.Abs(p.Y)}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Rotate returns the point rotated counter-clockwise by angle radians
// around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// BoundingBox is an axis-aligned rectangle given by two corners.
// In normalized drawing space Y grows upwards, so BottomLeft holds the
// smaller coordinates.
type BoundingBox struct {
	BottomLeft Point
	TopRight   Point
}

// Size returns the extent of the box along each axis.
func (b BoundingBox) Size() Point {
	return b.TopRight.Sub(b.BottomLeft)
}

// Map applies f to both corners.
func (b BoundingBox) Map(f func(Point) Point) BoundingBox {
	return BoundingBox{BottomLeft: f(b.BottomLeft), TopRight: f(b.TopRight)}
}
