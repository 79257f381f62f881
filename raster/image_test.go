package raster

import (
	"image"
	"math"
	"testing"
)

var _ image.Image = (*Image)(nil)

func TestNewImage(t *testing.T) {
	img := New(4, 3, Gray(7))
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", img.Width(), img.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.Pixel(x, y); got != Gray(7) {
				t.Fatalf("Pixel(%d, %d) = %v, want background", x, y, got)
			}
		}
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestAspect(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		aspect     float64
		withAspect Point
	}{
		{"square", 10, 10, 1, Point{X: 1, Y: 1}},
		{"wide", 200, 100, 2, Point{X: 2, Y: 1}},
		{"tall", 100, 200, 1.5, Point{X: 1, Y: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(tt.w, tt.h, White)
			if img.Aspect() != tt.aspect {
				t.Errorf("Aspect() = %v, want %v", img.Aspect(), tt.aspect)
			}
			got := img.WithAspect(Point{X: 1, Y: 1})
			if got != tt.withAspect {
				t.Errorf("WithAspect = %v, want %v", got, tt.withAspect)
			}
			back := img.WithoutAspect(got)
			if math.Abs(back.X-1) > 1e-12 || math.Abs(back.Y-1) > 1e-12 {
				t.Errorf("WithoutAspect(WithAspect(1,1)) = %v", back)
			}
		})
	}
}

func TestToPixel(t *testing.T) {
	img := New(10, 10, White)
	tests := []struct {
		name string
		p    Point
		want image.Point
	}{
		{"top left", Point{X: 0, Y: 1}, image.Point{X: 0, Y: 0}},
		{"bottom left clamps", Point{X: 0, Y: 0}, image.Point{X: 0, Y: 9}},
		{"top right clamps", Point{X: 1, Y: 1}, image.Point{X: 9, Y: 0}},
		{"middle truncates", Point{X: 0.55, Y: 0.55}, image.Point{X: 5, Y: 4}},
		{"negative clamps", Point{X: -1, Y: 2}, image.Point{X: 0, Y: 0}},
		{"nan maps to zero", Point{X: math.NaN(), Y: math.NaN()}, image.Point{X: 0, Y: 0}},
		{"inf clamps", Point{X: math.Inf(1), Y: math.Inf(-1)}, image.Point{X: 9, Y: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.ToPixel(tt.p); got != tt.want {
				t.Errorf("ToPixel(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	img := New(3, 3, White)
	for _, c := range []struct{ x, y int }{{-1, 0}, {3, 0}, {0, -1}, {0, 3}, {100, 100}} {
		img.SetPixel(c.x, c.y, Black)
	}
	if n := countColor(img, Black); n != 0 {
		t.Errorf("out-of-bounds writes changed %d pixels", n)
	}
	if got := img.Pixel(-1, -1); got != Black {
		t.Errorf("Pixel out of bounds = %v, want Black", got)
	}
}

func TestFill(t *testing.T) {
	img := New(10, 10, White)
	img.Fill(BoundingBox{BottomLeft: Point{X: 0.2, Y: 0.2}, TopRight: Point{X: 0.5, Y: 0.5}}, Black)

	// Columns 2..4, rows 5..7.
	if n := countColor(img, Black); n != 9 {
		t.Errorf("filled %d pixels, want 9", n)
	}
	if img.Pixel(2, 5) != Black || img.Pixel(4, 7) != Black {
		t.Error("fill corners not painted")
	}
	if img.Pixel(5, 5) != White || img.Pixel(2, 8) != White {
		t.Error("fill leaked past its exclusive edges")
	}
}

func TestBlit(t *testing.T) {
	dst := New(4, 4, White)
	src := New(2, 2, Black)
	dst.Blit(src, image.Point{X: 3, Y: 1})

	if dst.Pixel(3, 1) != Black || dst.Pixel(3, 2) != Black {
		t.Error("blit did not copy in-bounds pixels")
	}
	if n := countColor(dst, Black); n != 2 {
		t.Errorf("blit painted %d pixels, want 2", n)
	}
}

func TestToRGBAAndFromImage(t *testing.T) {
	img := New(2, 1, White)
	img.SetPixel(1, 0, Color{R: 1, G: 2, B: 3})

	rgba := img.ToRGBA()
	if rgba.Pix[4] != 1 || rgba.Pix[5] != 2 || rgba.Pix[6] != 3 || rgba.Pix[7] != 255 {
		t.Errorf("ToRGBA pixel = %v", rgba.Pix[4:8])
	}

	back := FromImage(rgba)
	if back.Pixel(0, 0) != White || back.Pixel(1, 0) != (Color{R: 1, G: 2, B: 3}) {
		t.Errorf("FromImage round trip = %v %v", back.Pixel(0, 0), back.Pixel(1, 0))
	}
}

func countColor(img *Image, c Color) int {
	n := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func snapshot(img *Image) []Color {
	out := make([]Color, 0, img.Width()*img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out = append(out, img.Pixel(x, y))
		}
	}
	return out
}

func unchanged(t *testing.T, img *Image, before []Color) {
	t.Helper()
	for i, c := range snapshot(img) {
		if c != before[i] {
			t.Fatalf("pixel %d changed from %v to %v", i, before[i], c)
		}
	}
}
