package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/tsplot"
	"github.com/gogpu/tsplot/axis"
	"github.com/gogpu/tsplot/geom"
	"github.com/gogpu/tsplot/raster"
	"github.com/gogpu/tsplot/series"
	"github.com/gogpu/tsplot/stats"
	"github.com/gogpu/tsplot/text"
)

// Layout constants, in normalized image units.
const (
	lineThickness = 0.005
	edgePad       = 0.025
	leftPad       = 0.2
	guideSize     = 0.01
	guideSteps    = 10
	labelHeight   = 0.05
	labelMargin   = 0.02

	annotationHeight = 0.03
	annotationStep   = 0.035
	annotationMargin = 0.01
)

var (
	guideColor  = raster.Gray(235)
	lowestColor = raster.Gray(210)
	borderColor = raster.Black
	labelColor  = raster.Black
)

// unitFormat prints axis label values.
const unitFormat = "%.4f"

// canvas draws one chart into one image.
type canvas struct {
	img    *raster.Image
	frame  *axis.Frame
	font   *text.Font
	pad    axis.Padding
	aspect float64
}

// fitNote is the correlation label of one series.
type fitNote struct {
	color raster.Color
	label string
}

func newCanvas(img *raster.Image, frame *axis.Frame, font *text.Font) *canvas {
	aspect := float64(img.Width()) / float64(img.Height())
	return &canvas{
		img:   img,
		frame: frame,
		font:  font,
		pad: axis.Padding{
			BottomLeft: geom.Pt(leftPad/aspect, edgePad),
			TopRight:   geom.Pt(1-edgePad/aspect, 1-edgePad),
		},
		aspect: aspect,
	}
}

// draw renders everything in back to front order.
func (c *canvas) draw(all []*series.Series, plotLine bool) {
	c.guides(lineThickness * 0.75)
	c.lowestMarkers(all)
	c.borders()

	colors := NewColors()
	var notes []fitNote
	for _, s := range all {
		col := colors.Next()
		if plotLine {
			if note, ok := c.bestFit(s, col); ok {
				notes = append(notes, note)
			}
		}
		c.plotSeries(s, col)
	}

	c.units()
	c.annotations(notes)
}

// local maps a data point into the image.
func (c *canvas) local(p geom.Point) geom.Point {
	return c.frame.Local(p, c.pad)
}

// guides draws the faint horizontal grid with its ticks on the left border.
// The lines at 0.5 and 1 are heavier than the subdivisions.
func (c *canvas) guides(thickness float64) {
	bl, tr := c.pad.BottomLeft, c.pad.TopRight
	height := func(t float64) float64 {
		return bl.Y*(1-t) + tr.Y*t
	}

	tick := func(t, th float64) {
		y := height(t)
		w := guideSize * math.Sqrt(th/thickness)
		c.img.LineThick(geom.Pt(bl.X-w, y), geom.Pt(bl.X+w, y), th, borderColor)
	}
	line := func(t, th float64) {
		y := height(t)
		c.img.LineThick(geom.Pt(bl.X, y), geom.Pt(tr.X, y), th, guideColor)
		tick(t, th)
	}

	line(0.5, thickness)
	line(1, thickness)

	thin := thickness * 0.55
	step := 0.5 / guideSteps
	for i := 1; i < guideSteps; i++ {
		line(float64(i)*step, thin)
		line(0.5+float64(i)*step, thin)
	}

	tick(0, thickness)
	tick(1, thickness)
}

// lowestMarkers draws a line across the plot at each series' minimum.
func (c *canvas) lowestMarkers(all []*series.Series) {
	for _, s := range all {
		lowest, ok := s.Lowest()
		if !ok {
			continue
		}
		y := c.frame.Position(geom.Pt(0, lowest)).Y
		c.img.LineThick(c.pad.Fit(geom.Pt(0, y)), c.pad.Fit(geom.Pt(1, y)), lineThickness, lowestColor)
	}
}

// borders draws the left and bottom axis lines.
func (c *canvas) borders() {
	bl, tr := c.pad.BottomLeft, c.pad.TopRight
	c.img.LineThick(bl, geom.Pt(bl.X, tr.Y), lineThickness, borderColor)
	c.img.LineThick(bl, geom.Pt(tr.X, bl.Y), lineThickness, borderColor)
}

// bestFit draws the least-squares line of s through the SDF drawer and
// returns its correlation label.
func (c *canvas) bestFit(s *series.Series, col raster.Color) (fitNote, bool) {
	points := s.Points()
	if len(points) == 0 {
		return fitNote{}, false
	}

	normalized := make([]geom.Point, len(points))
	for i, p := range points {
		normalized[i] = c.frame.Position(p)
	}

	line := stats.LinearFit(normalized)
	if p0, p1, ok := line.Clip(); ok {
		d := c.img.SDFDrawer()
		d.Line(c.pad.Fit(p0), c.pad.Fit(p1), lineThickness*0.6, raster.Alpha{
			Color: col.Lerp(raster.Black, 0.3),
			A:     160,
		})
		d.Submit()
	}

	corr := stats.Pearson(points)
	tsplot.Logger().Info("best fit",
		"series", s.Name(),
		"slope", line.Slope,
		"intercept", line.Intercept,
		"r", corr.R,
		"t", corr.T,
		"p", corr.P)

	return fitNote{color: col, label: fmt.Sprintf("R %.4f P %.4f", corr.R, corr.P)}, true
}

// plotSeries draws the polyline, the sample dots and the running average.
func (c *canvas) plotSeries(s *series.Series, col raster.Color) {
	points := s.Points()

	for i := 1; i < len(points); i++ {
		c.img.LineThick(c.local(points[i-1]), c.local(points[i]), lineThickness, col)
	}

	dot := raster.Alpha{
		Color: raster.Alpha{Color: raster.Black, A: 90}.Apply(col),
		A:     200,
	}
	for _, p := range points {
		c.img.Circle(c.local(p), lineThickness*1.5, dot)
	}

	avg := s.Averages()
	if avg == nil {
		return
	}
	avgColor := raster.White.Lerp(col, 0.6)
	for i := 1; i < len(points); i++ {
		c.img.LineThick(
			c.local(geom.Pt(points[i-1].X, avg[i-1])),
			c.local(geom.Pt(points[i].X, avg[i])),
			lineThickness,
			avgColor,
		)
	}
}

// units prints the y values at the bottom, top and quarter heights of the
// frame, right aligned against the tick marks.
func (c *canvas) units() {
	left := labelMargin / c.aspect
	right := c.pad.BottomLeft.X - left - guideSize
	bottom, top := c.pad.BottomLeft.Y, c.pad.TopRight.Y

	c.label(geom.BoundingBox{
		BottomLeft: geom.Pt(left, bottom),
		TopRight:   geom.Pt(right, labelHeight),
	}, text.VAlignBottom, c.frame.Bottom)

	c.label(geom.BoundingBox{
		BottomLeft: geom.Pt(left, top-labelHeight),
		TopRight:   geom.Pt(right, top),
	}, text.VAlignTop, c.frame.Top)

	for _, t := range []float64{0.25, 0.5, 0.75} {
		value := c.frame.Unposition(geom.Pt(0, t)).Y
		y := c.pad.Fit(geom.Pt(0, t)).Y
		c.label(geom.BoundingBox{
			BottomLeft: geom.Pt(left, y-labelHeight/2),
			TopRight:   geom.Pt(right, y+labelHeight/2),
		}, text.VAlignMiddle, value)
	}
}

func (c *canvas) label(bb geom.BoundingBox, v text.VAlign, value float64) {
	text.DrawBetween(c.img, c.font, labelColor, bb, text.HAlignRight, v, fmt.Sprintf(unitFormat, value))
}

// annotations stacks the correlation labels in the top-left of the plot.
func (c *canvas) annotations(notes []fitNote) {
	left := c.pad.BottomLeft.X + annotationMargin/c.aspect
	for i, n := range notes {
		top := c.pad.TopRight.Y - annotationMargin - float64(i)*annotationStep
		text.DrawBetween(c.img, c.font, n.color, geom.BoundingBox{
			BottomLeft: geom.Pt(left, top-annotationHeight),
			TopRight:   geom.Pt(c.pad.TopRight.X, top),
		}, text.HAlignLeft, text.VAlignTop, n.label)
	}
}
