package raster

import "github.com/gogpu/tsplot/geom"

// Point and BoundingBox are the normalized-space geometry types.
type (
	Point       = geom.Point
	BoundingBox = geom.BoundingBox
)
