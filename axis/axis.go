// Package axis folds series into a shared data frame and maps samples into
// the normalized drawing space.
//
// Normalized space runs from (0, 0) at the bottom-left to (1, 1) at the
// top-right of the plot area; a Padding then places it inside the image.
package axis

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/gogpu/tsplot"
	"github.com/gogpu/tsplot/geom"
	"github.com/gogpu/tsplot/series"
)

// Config holds the optional axis overrides. Nil fields are unset.
type Config struct {
	// LogScale is the exponent applied to normalized y.
	LogScale *float64
	// MinAvg pushes the bottom below the lowest sample by
	// MinAvg·|mean − lowest|.
	MinAvg *float64
	// MinHeight fixes the bottom of the frame.
	MinHeight *float64
	// MaxHeight fixes the top of the frame.
	MaxHeight *float64
}

// Frame is the data-space rectangle all series share.
//
// A zero-height or zero-width frame is valid; positions computed from it
// are NaN or infinite.
type Frame struct {
	Top, Bottom float64
	Left, Right float64

	cfg Config
}

// NewFrame returns an empty frame. Bottom starts at +Inf so the first
// series always lowers it.
func NewFrame(cfg Config) *Frame {
	return &Frame{Bottom: math.Inf(1), cfg: cfg}
}

// Config returns the overrides the frame was created with.
func (f *Frame) Config() Config {
	return f.cfg
}

// Fit widens the frame to include s.
func (f *Frame) Fit(s *series.Series) {
	if last, ok := s.Last(); ok {
		f.Right = math.Max(f.Right, last.X)
	}

	points := s.Points()
	lowest := math.Inf(1)
	for _, p := range points {
		if f.cfg.MaxHeight != nil {
			f.Top = *f.cfg.MaxHeight
		} else {
			f.Top = math.Max(f.Top, p.Y)
		}
		lowest = math.Min(lowest, p.Y)
	}

	switch {
	case f.cfg.MinHeight != nil:
		f.Bottom = *f.cfg.MinHeight
	case f.Bottom > lowest:
		if f.cfg.MinAvg != nil {
			ys := make([]float64, len(points))
			for i, p := range points {
				ys[i] = p.Y
			}
			diff := math.Abs(mstats.Mean(ys) - lowest)
			f.Bottom = lowest - diff*(*f.cfg.MinAvg)
		} else {
			f.Bottom = lowest
		}
	}

	tsplot.Logger().Debug("axis: fitted series",
		"series", s.Name(),
		"right", f.Right,
		"lowest", lowest,
		"bottom", f.Bottom,
		"top", f.Top)
}

// FitAll fits every series in order.
func (f *Frame) FitAll(all []*series.Series) {
	for _, s := range all {
		f.Fit(s)
	}
}

// Position maps a data point into normalized space.
func (f *Frame) Position(p geom.Point) geom.Point {
	x := (p.X - f.Left) / (f.Right - f.Left)
	y := (p.Y - f.Bottom) / (f.Top - f.Bottom)
	if f.cfg.LogScale != nil {
		y = math.Pow(y, *f.cfg.LogScale)
	}
	return geom.Point{X: x, Y: y}
}

// Unposition is the inverse of Position.
func (f *Frame) Unposition(p geom.Point) geom.Point {
	y := p.Y
	if f.cfg.LogScale != nil {
		y = math.Pow(y, 1 / *f.cfg.LogScale)
	}
	return geom.Point{
		X: p.X*(f.Right-f.Left) + f.Left,
		Y: y*(f.Top-f.Bottom) + f.Bottom,
	}
}

// Local maps a data point straight into image space inside pad.
func (f *Frame) Local(p geom.Point, pad Padding) geom.Point {
	return pad.Fit(f.Position(p))
}

// Padding is the inset rectangle of the image the plot is drawn in.
type Padding geom.BoundingBox

// Fit maps a normalized point into the padded rectangle.
func (pad Padding) Fit(p geom.Point) geom.Point {
	return p.Mul(pad.TopRight.Sub(pad.BottomLeft)).Add(pad.BottomLeft)
}

// Box returns the padding as a bounding box.
func (pad Padding) Box() geom.BoundingBox {
	return geom.BoundingBox(pad)
}
