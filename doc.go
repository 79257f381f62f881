// Package tsplot renders plain numeric time-series files into a single
// raster line chart.
//
// # Overview
//
// tsplot is a small batch plotter built on its own software rasterizer. It
// reads one or more sample files, folds them into a shared axis frame and
// draws guides, borders, series polylines, optional running averages and
// least-squares overlays, and printed axis labels into an RGB pixel buffer
// that is saved as a binary PPM (or PNG, BMP, TIFF).
//
// # Architecture
//
// The library is organized into:
//   - geom: Point and BoundingBox value types
//   - raster: pixel buffer, color policies, Bresenham, Wu, triangle fill,
//     thick lines, circles and the deferred SDF line drawer
//   - text: stroke font and text layout on top of raster
//   - series: sample file ingestion and running averages
//   - stats: regression, Pearson correlation, Student's-t density
//   - axis: axis frame fitting and normalized position mapping
//   - chart: drawing orchestration
//
// # Coordinate System
//
// Drawing uses normalized coordinates:
//   - Origin (0,0) at bottom-left, (1,1) at top-right
//   - X increases right
//   - Y increases up
//   - The longer image axis is stretched by the aspect factor so circles
//     stay round on non-square buffers
//
// # Logging
//
// Nothing is logged unless [SetLogger] installs a logger.
package tsplot

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
