// Package text draws labels with a small built-in stroke font.
//
// Each glyph is a handful of straight strokes in unit space. Drawing a
// string scales the strokes, stamps them with the thick-line primitive of
// package raster and advances the pen by the glyph width plus its step.
// There is no font file, no shaping and no kerning.
//
// # Example usage
//
//	img := raster.New(400, 100, raster.White)
//	bb := geom.BoundingBox{
//	    BottomLeft: geom.Pt(0.1, 0.1),
//	    TopRight:   geom.Pt(0.9, 0.9),
//	}
//	text.DrawBetween(img, text.Default(), raster.Black, bb,
//	    text.HAlignMiddle, text.VAlignMiddle, "12.5000")
//
// Input is upper-cased before lookup; characters missing from the font are
// skipped without advancing the pen.
package text
