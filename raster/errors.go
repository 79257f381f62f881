package raster

import "errors"

// Sentinel errors for raster package.
var (
	// ErrEmptyImage is returned when saving or encoding an image with zero
	// width or height.
	ErrEmptyImage = errors.New("raster: cannot encode a zero-sized image")

	// ErrInvalidPPM is returned when PPM data is malformed.
	ErrInvalidPPM = errors.New("raster: invalid PPM data")

	// ErrUnsupportedFormat is returned when the output extension is unknown.
	ErrUnsupportedFormat = errors.New("raster: unsupported image format")
)
