// Package stats fits lines to series and measures their correlation.
package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/gogpu/tsplot/geom"
)

// Line is y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At returns the y value of the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Solve returns the x at which the line reaches y.
func (l Line) Solve(y float64) float64 {
	return (y - l.Intercept) / l.Slope
}

// Clip returns the part of the line inside the unit square, evaluated at
// x = 0 and x = 1. An end whose y leaves [0, 1] is clamped to the edge it
// crossed and its x solved from the line. ok is false when the line misses
// the square or is not finite.
func (l Line) Clip() (p0, p1 geom.Point, ok bool) {
	p0 = l.clipAt(0)
	p1 = l.clipAt(1)
	return p0, p1, inUnit(p0) && inUnit(p1)
}

func (l Line) clipAt(x float64) geom.Point {
	y := l.At(x)
	switch {
	case y < 0:
		return geom.Point{X: l.Solve(0), Y: 0}
	case y > 1:
		return geom.Point{X: l.Solve(1), Y: 1}
	default:
		return geom.Point{X: x, Y: y}
	}
}

func inUnit(p geom.Point) bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

func split(points []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// LinearFit returns the least-squares line through points. When every x is
// equal the slope is NaN; an empty input gives NaN for both terms.
func LinearFit(points []geom.Point) Line {
	xs, ys := split(points)
	meanX := mstats.Mean(xs)
	meanY := mstats.Mean(ys)

	var num, den float64
	for i := range xs {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		den += dx * dx
	}

	slope := num / den
	if den == 0 {
		slope = math.NaN()
	}

	return Line{Slope: slope, Intercept: meanY - slope*meanX}
}

// Correlation is the Pearson correlation of a series with its t statistic.
type Correlation struct {
	// R is the Pearson coefficient in [-1, 1].
	R float64
	// T is R/√(1−R²)·√(n−2).
	T float64
	// DF is the degrees of freedom, n−2.
	DF float64
	// P is the Student's t density at T. It is not a p-value.
	P float64
}

// Pearson correlates the x and y coordinates of points. Both coordinates
// are standardized with the sample standard deviation and the products are
// averaged over n−1. Fewer than three points or a constant coordinate give
// non-finite results.
func Pearson(points []geom.Point) Correlation {
	xs, ys := split(points)
	n := float64(len(points))

	meanX, sdX := mstats.Mean(xs), mstats.StdDev(xs)
	meanY, sdY := mstats.Mean(ys), mstats.StdDev(ys)

	sum := 0.0
	for i := range xs {
		sum += (xs[i] - meanX) / sdX * ((ys[i] - meanY) / sdY)
	}

	r := sum / (n - 1)
	df := n - 2
	t := r / math.Sqrt(1-r*r) * math.Sqrt(df)

	return Correlation{R: r, T: t, DF: df, P: TDensity(t, df)}
}
