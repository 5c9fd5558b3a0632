// Package pixdraw provides primitive software 2D drawing operations:
// solid rectangle fills and line rasterization onto an in-memory pixel
// surface, plus color-format conversion for that surface.
//
// # Overview
//
// pixdraw is a pure Go library for direct pixel-buffer drawing. It
// works on surfaces with an explicit pixel format (1, 2, 3, or 4 bytes
// per pixel, arbitrary channel masks), a pitch, and a clip rectangle.
// All drawing is an opaque in-place overwrite; there is no blending and
// no anti-aliasing.
//
// # Quick Start
//
//	import (
//		"github.com/gopix/pixdraw"
//		"github.com/gopix/pixdraw/surface"
//	)
//
//	s := surface.New(320, 240, surface.ABGR8888)
//	t := pixdraw.FromSurface(s)
//
//	c, _ := pixdraw.ParseColor("cornflowerblue")
//	_ = pixdraw.Fill(t, c)
//	_ = pixdraw.Line(t, c, []int{10, 10, 300, 200}, 1)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Fill, Line, PrepareColor, Target, ParseColor
//   - surface: pixel buffer, pixel formats, clip rectangle, fill engine
//   - raster: Liang-Barsky segment clipping and Bresenham stepping
//
// # Concurrency
//
// All operations are synchronous in-memory mutation of a caller-owned
// surface. The library performs no locking; callers must serialize
// access to a given surface. A multi-segment Line call is best-effort:
// a failure partway through leaves earlier segments drawn.
package pixdraw

// Version is the current version of the library.
const Version = "0.1.0"
