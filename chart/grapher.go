// Package chart lays out and draws time series charts.
//
// A Grapher collects series, fits them into one shared axis frame and draws
// guides, the series themselves and axis labels into a raster image:
//
//	g, err := chart.New(chart.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if err := g.Load("cpu.txt", "mem.txt"); err != nil {
//	    return err
//	}
//	return g.Save("graph.ppm")
package chart

import (
	"fmt"

	"github.com/gogpu/tsplot"
	"github.com/gogpu/tsplot/axis"
	"github.com/gogpu/tsplot/raster"
	"github.com/gogpu/tsplot/series"
	"github.com/gogpu/tsplot/text"
)

// Grapher accumulates series and renders them. It is not safe for
// concurrent use.
type Grapher struct {
	cfg    Config
	font   *text.Font
	frame  *axis.Frame
	series []*series.Series
}

// New validates cfg and returns an empty grapher.
func New(cfg Config) (*Grapher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Grapher{
		cfg:   cfg,
		font:  text.Default(),
		frame: axis.NewFrame(cfg.Axis()),
	}, nil
}

// SetFont replaces the label font. Nil restores the built-in font.
func (g *Grapher) SetFont(f *text.Font) {
	if f == nil {
		f = text.Default()
	}
	g.font = f
}

// Config returns the configuration g was created with.
func (g *Grapher) Config() Config {
	return g.cfg
}

// Add fits s into the frame and queues it for drawing.
func (g *Grapher) Add(s *series.Series) {
	g.frame.Fit(s)
	g.series = append(g.series, s)
}

// Load reads every path as a series and adds it, stopping at the first
// error.
func (g *Grapher) Load(paths ...string) error {
	for _, path := range paths {
		s, err := series.ReadFile(path, g.cfg.RunningAvg)
		if err != nil {
			return fmt.Errorf("chart: load %s: %w", path, err)
		}
		tsplot.Logger().Info("loaded series", "path", path, "samples", s.Len())
		g.Add(s)
	}
	return nil
}

// Series returns the added series in drawing order.
func (g *Grapher) Series() []*series.Series {
	return g.series
}

// Frame returns a copy of the current axis frame.
func (g *Grapher) Frame() axis.Frame {
	return *g.frame
}

// Render draws the chart at the configured size.
func (g *Grapher) Render() *raster.Image {
	n := g.cfg.supersample()
	if n == 1 {
		return g.RenderSize(g.cfg.Width, g.cfg.Height)
	}

	big := g.RenderSize(g.cfg.Width*n, g.cfg.Height*n)
	if g.cfg.Width == 0 || g.cfg.Height == 0 {
		return big
	}
	tsplot.Logger().Debug("downscaling", "from", big.Bounds().Size(), "factor", n)
	return big.Downscale(g.cfg.Width, g.cfg.Height)
}

// RenderSize draws the chart onto a new width x height image. A zero-sized
// image is returned blank.
func (g *Grapher) RenderSize(width, height int) *raster.Image {
	img := raster.New(width, height, raster.White)
	if width == 0 || height == 0 {
		return img
	}

	newCanvas(img, g.frame, g.font).draw(g.series, g.cfg.PlotLine)

	tsplot.Logger().Info("rendered chart", "width", width, "height", height, "series", len(g.series))
	return img
}

// Save renders the chart and writes it to path. The format follows the
// file extension; see raster.FormatForPath.
func (g *Grapher) Save(path string) error {
	img := g.Render()
	if err := img.Save(path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	tsplot.Logger().Info("saved chart", "path", path)
	return nil
}
