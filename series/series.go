// Package series loads numeric time series and prepares them for plotting.
//
// A series source is line oriented: each line is either a sample value or a
// step directive that changes the x distance between later samples.
//
//	step 0.5
//	1.25
//	1.5
//	step 2
//	0.75
//
// Samples are placed at x = step, 2*step and so on, with x starting at 0
// before the first sample. Workbook sources (.xlsx, .xlsm) use the first
// cell of every non-empty row of the first sheet as a line.
package series

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/tsplot/geom"
)

// Series is a completed, x-sorted sequence of samples.
type Series struct {
	name     string
	points   []geom.Point
	averages []float64

	lowest, highest float64
}

// Name returns the source the series was read from, or "" when unknown.
func (s *Series) Name() string {
	return s.name
}

// Points returns the samples ordered by x. The slice must not be modified.
func (s *Series) Points() []geom.Point {
	return s.points
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.points)
}

// Averages returns the running average for every sample, or nil when no
// window was configured. Averages()[i] is the mean y of the window of
// samples strictly before i, so the first value is NaN.
func (s *Series) Averages() []float64 {
	return s.averages
}

// Lowest returns the smallest y value.
func (s *Series) Lowest() (float64, bool) {
	return s.lowest, len(s.points) > 0
}

// Highest returns the largest y value.
func (s *Series) Highest() (float64, bool) {
	return s.highest, len(s.points) > 0
}

// First returns the sample with the smallest x.
func (s *Series) First() (geom.Point, bool) {
	if len(s.points) == 0 {
		return geom.Point{}, false
	}
	return s.points[0], true
}

// Last returns the sample with the largest x.
func (s *Series) Last() (geom.Point, bool) {
	if len(s.points) == 0 {
		return geom.Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Builder accumulates samples for a Series.
type Builder struct {
	name   string
	window int
	points []geom.Point

	lowest, highest float64
}

// NewBuilder returns a builder whose series will carry a running average
// over the given window. A window of zero or less disables it.
func NewBuilder(window int) *Builder {
	return &Builder{
		window:  window,
		lowest:  math.Inf(1),
		highest: math.Inf(-1),
	}
}

// SetName records the source name reported by Series.Name.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// Push appends a sample. Samples may arrive in any x order.
func (b *Builder) Push(p geom.Point) {
	b.points = append(b.points, p)
	b.lowest = math.Min(b.lowest, p.Y)
	b.highest = math.Max(b.highest, p.Y)
}

// Len returns the number of samples pushed so far.
func (b *Builder) Len() int {
	return len(b.points)
}

// Complete sorts the samples by x, keeping the push order of equal x
// values, computes the running average and returns the series. The builder
// must not be used afterwards.
func (b *Builder) Complete() *Series {
	points := b.points
	b.points = nil

	slices.SortStableFunc(points, func(a, c geom.Point) int {
		return cmp.Compare(a.X, c.X)
	})

	s := &Series{
		name:    b.name,
		points:  points,
		lowest:  b.lowest,
		highest: b.highest,
	}
	if len(points) == 0 {
		s.lowest, s.highest = 0, 0
	}
	if b.window > 0 {
		s.averages = RunningAverage(points, b.window)
	}
	return s
}

// RunningAverage returns, for every index i, the mean y of
// points[max(0, i-window):i]. Index 0 averages an empty window and is NaN.
//
// The window slides in a single pass. Finite samples go into a compensated
// sum and non-finite ones are counted, so a huge or infinite sample stops
// affecting the average once it has left the window.
func RunningAverage(points []geom.Point, window int) []float64 {
	out := make([]float64, len(points))
	if window <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	var w windowSum
	for i := range points {
		out[i] = w.mean(min(i, window))

		w.add(points[i].Y, 1)
		if i >= window {
			w.add(points[i-window].Y, -1)
		}
	}
	return out
}

// windowSum is a Neumaier-compensated running sum with separate counts
// for the non-finite values it holds.
type windowSum struct {
	sum, comp       float64
	nan, pInf, nInf int
}

// add adds v to the window when sign is 1 and removes it when sign is -1.
func (w *windowSum) add(v float64, sign int) {
	switch {
	case math.IsNaN(v):
		w.nan += sign
		return
	case math.IsInf(v, 1):
		w.pInf += sign
		return
	case math.IsInf(v, -1):
		w.nInf += sign
		return
	}

	v *= float64(sign)
	t := w.sum + v
	if math.Abs(w.sum) >= math.Abs(v) {
		w.comp += (w.sum - t) + v
	} else {
		w.comp += (v - t) + w.sum
	}
	w.sum = t
}

// mean returns the average of the n values in the window.
func (w *windowSum) mean(n int) float64 {
	switch {
	case n == 0, w.nan > 0, w.pInf > 0 && w.nInf > 0:
		return math.NaN()
	case w.pInf > 0:
		return math.Inf(1)
	case w.nInf > 0:
		return math.Inf(-1)
	}
	return (w.sum + w.comp) / float64(n)
}
