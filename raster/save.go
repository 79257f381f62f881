package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	// FormatPPM is binary PPM (P6).
	FormatPPM Format = iota
	// FormatPNG is PNG.
	FormatPNG
	// FormatBMP is Windows bitmap.
	FormatBMP
	// FormatTIFF is uncompressed TIFF.
	FormatTIFF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatForPath picks the encoding from the file extension. Paths without
// an extension are written as PPM.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".ppm", ".pnm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w in format f.
func (img *Image) Encode(w io.Writer, f Format) error {
	if img.width == 0 || img.height == 0 {
		return ErrEmptyImage
	}

	switch f {
	case FormatPPM:
		return EncodePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Save writes img to path, choosing the format from the extension. The
// zero-size check happens before the file is created.
func (img *Image) Save(path string) (err error) {
	if img.width == 0 || img.height == 0 {
		return ErrEmptyImage
	}

	f, err := FormatForPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return img.Encode(out, f)
}

// Downscale returns a copy of img resampled to width x height with a
// Catmull-Rom filter. Rendering at a multiple of the target size and
// downscaling smooths the hard edges of the triangle and SDF primitives.
func (img *Image) Downscale(width, height int) *Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img.ToRGBA(), img.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
