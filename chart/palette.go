package chart

import "github.com/gogpu/tsplot/raster"

// paletteSeed seeds the generator used once the palette runs out.
const paletteSeed = 54321

// palette holds the colors of the first series, in order.
var palette = [...]raster.Color{
	{R: 255, G: 120, B: 120},
	{R: 120, G: 255, B: 120},
	{R: 120, G: 120, B: 255},
	{R: 255, G: 120, B: 220},
	{R: 255, G: 220, B: 120},
}

// xorshift32 is Marsaglia's 32-bit xorshift generator.
type xorshift32 uint32

func (s *xorshift32) next() uint32 {
	x := uint32(*s)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*s = xorshift32(x)
	return x
}

// Colors hands out series colors: the fixed palette first, then colors
// built from the low three bytes of an xorshift32 sequence. Every Colors
// starts from the same seed, so a run is reproducible.
type Colors struct {
	used  int
	state xorshift32
}

// NewColors returns a color sequence at its start.
func NewColors() *Colors {
	return &Colors{state: paletteSeed}
}

// Next returns the color for the next series.
func (c *Colors) Next() raster.Color {
	if c.used < len(palette) {
		col := palette[c.used]
		c.used++
		return col
	}

	v := c.state.next()
	return raster.Color{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}
