// Package raster provides the software rasterizer: an RGB pixel buffer and
// the primitives that draw continuous geometry into it.
//
// Geometry is given in normalized coordinates, (0,0) at the bottom-left
// corner and (1,1) at the top-right. The longer axis of a non-square image
// is stretched by an aspect factor so that a circle stays round.
package raster

import (
	"image"
	"image/color"
	"math"
)

// Image is a row-major RGB pixel buffer, top row first.
type Image struct {
	width       int
	height      int
	data        []Color
	widthBigger bool
	aspect      float64
}

// New creates an image filled with background.
func New(width, height int, background Color) *Image {
	widthBigger := width >= height
	aspect := float64(width) / float64(height)
	if !widthBigger {
		aspect = 2 - aspect
	}

	data := make([]Color, width*height)
	for i := range data {
		data[i] = background
	}

	return &Image{
		width:       width,
		height:      height,
		data:        data,
		widthBigger: widthBigger,
		aspect:      aspect,
	}
}

// FromImage creates an image from any image.Image, dropping alpha.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := New(bounds.Dx(), bounds.Dy(), Black)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.data[y*img.width+x] = Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
	}
	return img
}

// Width returns the width of the image.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image.
func (img *Image) Height() int {
	return img.height
}

// Aspect returns the aspect correction factor applied to the longer axis.
func (img *Image) Aspect() float64 {
	return img.aspect
}

// Pixel returns the color at (x, y). Out-of-range coordinates return Black.
func (img *Image) Pixel(x, y int) Color {
	if !img.inBounds(x, y) {
		return Black
	}
	return img.data[y*img.width+x]
}

// SetPixel applies p to the pixel at (x, y). Out-of-range coordinates are
// silently ignored.
func (img *Image) SetPixel(x, y int, p Policy) {
	if !img.inBounds(x, y) {
		return
	}
	i := y*img.width + x
	img.data[i] = p.Apply(img.data[i])
}

// blend lerps the pixel at (x, y) toward c by t.
func (img *Image) blend(x, y int, c Color, t float64) {
	if !img.inBounds(x, y) {
		return
	}
	i := y*img.width + x
	img.data[i] = img.data[i].Lerp(c, t)
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// WithAspect stretches p along the longer image axis.
func (img *Image) WithAspect(p Point) Point {
	if img.widthBigger {
		return Point{X: p.X * img.aspect, Y: p.Y}
	}
	return Point{X: p.X, Y: p.Y * img.aspect}
}

// WithoutAspect undoes WithAspect.
func (img *Image) WithoutAspect(p Point) Point {
	if img.widthBigger {
		return Point{X: p.X / img.aspect, Y: p.Y}
	}
	return Point{X: p.X, Y: p.Y / img.aspect}
}

// ToPixelF converts a normalized point into continuous pixel coordinates
// with Y pointing down.
func (img *Image) ToPixelF(p Point) Point {
	return Point{
		X: p.X * float64(img.width),
		Y: (1 - p.Y) * float64(img.height),
	}
}

// ToPixel converts a normalized point into the pixel containing it, clamped
// to the image.
func (img *Image) ToPixel(p Point) image.Point {
	f := img.ToPixelF(p)
	return image.Point{
		X: clampIndex(f.X, img.width),
		Y: clampIndex(f.Y, img.height),
	}
}

// clampIndex truncates v into [0, n-1]. NaN maps to 0.
func clampIndex(v float64, n int) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(n-1):
		return n - 1
	default:
		return int(v)
	}
}

// Fill applies p to every pixel inside bb.
func (img *Image) Fill(bb BoundingBox, p Policy) {
	bl := img.ToPixel(bb.BottomLeft)
	tr := img.ToPixel(bb.TopRight)
	for y := tr.Y; y < bl.Y; y++ {
		for x := bl.X; x < tr.X; x++ {
			img.SetPixel(x, y, p)
		}
	}
}

// Blit copies other into img with its top-left corner at at. Pixels that
// fall outside img are dropped.
func (img *Image) Blit(other *Image, at image.Point) {
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			tx, ty := at.X+x, at.Y+y
			if img.inBounds(tx, ty) {
				img.data[ty*img.width+tx] = other.data[y*other.width+x]
			}
		}
	}
}

// paint applies p once to every pixel in pixels.
func (img *Image) paint(pixels []image.Point, p Policy) {
	for _, px := range pixels {
		img.SetPixel(px.X, px.Y, p)
	}
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// ToRGBA converts the image to an opaque image.RGBA.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i, c := range img.data {
		out.Pix[i*4+0] = c.R
		out.Pix[i*4+1] = c.G
		out.Pix[i*4+2] = c.B
		out.Pix[i*4+3] = 0xff
	}
	return out
}
