package pixdraw

import "errors"

// Errors reported by the drawing operations. Pixel-depth failures are
// reported as surface.ErrUnsupportedDepth.
var (
	// ErrUnsupportedTarget is returned when a Target carries neither a
	// drawable surface nor a pixel-format descriptor.
	ErrUnsupportedTarget = errors.New("pixdraw: unsupported target type")

	// ErrInvalidColor is returned for color strings that are neither a
	// recognized name nor a valid hex encoding, and for nil colors.
	ErrInvalidColor = errors.New("pixdraw: invalid color")

	// ErrInvalidArea is returned for malformed fill-area specifications.
	ErrInvalidArea = errors.New("pixdraw: invalid fill area")

	// ErrInvalidPoints is returned when a line's point list is empty or
	// its length is not a multiple of four.
	ErrInvalidPoints = errors.New("pixdraw: line does not contain a valid set of points")

	// ErrInvalidWidth is returned for line widths below one.
	ErrInvalidWidth = errors.New("pixdraw: width must be greater than 0")

	// ErrUnsupported is returned for drawing requests outside the
	// rasterizer's scope, such as diagonal lines wider than one pixel.
	ErrUnsupported = errors.New("pixdraw: operation not supported")
)
