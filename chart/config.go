package chart

import (
	"fmt"

	"github.com/gogpu/tsplot/axis"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 4000
	DefaultHeight = 2000
)

// Config is the resolved chart configuration. Nil pointers are unset
// options.
type Config struct {
	// LogScale is the exponent applied to normalized y.
	LogScale *float64
	// MinAvg extends the bottom below the lowest sample. It cannot be
	// combined with MinHeight.
	MinAvg *float64
	// MinHeight fixes the bottom of the y axis.
	MinHeight *float64
	// MaxHeight fixes the top of the y axis.
	MaxHeight *float64

	// RunningAvg is the running average window; 0 disables it.
	RunningAvg int
	// PlotLine draws a least-squares line under every series and
	// annotates its correlation.
	PlotLine bool

	// Width and Height are the output size in pixels.
	Width, Height int
	// Supersample renders at this multiple of the output size and
	// downscales. Values below 2 render directly.
	Supersample int
}

// DefaultConfig returns a configuration with the default canvas size and
// every option unset.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Supersample: 1,
	}
}

// Validate checks option combinations. It runs before any series is read.
func (c Config) Validate() error {
	if c.MinAvg != nil && c.MinHeight != nil {
		return &ExclusiveOptionsError{First: "--min-avg", Second: "--min"}
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeSize, c.Width, c.Height)
	}
	return nil
}

// Axis returns the axis overrides of c.
func (c Config) Axis() axis.Config {
	return axis.Config{
		LogScale:  c.LogScale,
		MinAvg:    c.MinAvg,
		MinHeight: c.MinHeight,
		MaxHeight: c.MaxHeight,
	}
}

// supersample returns the effective render multiple.
func (c Config) supersample() int {
	return max(c.Supersample, 1)
}
