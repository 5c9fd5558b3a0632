package pixdraw

import (
	"fmt"
	"image/color"

	"github.com/gopix/pixdraw/raster"
	"github.com/gopix/pixdraw/surface"
)

// Line draws one or more line segments on the target.
//
// points holds consecutive (x1, y1, x2, y2) quadruples, one per
// segment; its length must be a positive multiple of four. All
// segments draw with the same color and width onto the same surface.
//
// Vertical and horizontal segments are drawn as filled rectangles
// width pixels across, offset by floor(width/2) toward the origin; for
// even widths this leaves the extra pixel on the far side. Diagonal
// segments support width 1 only. They are clipped against the
// surface's clip rectangle and rasterized with integer Bresenham
// stepping; a segment entirely outside the clip rectangle is skipped
// silently.
//
// Surfaces with 3-byte pixels are rejected with
// surface.ErrUnsupportedDepth before anything is written. A
// multi-segment call is otherwise best-effort, not transactional: a
// failure on segment N leaves segments 1..N-1 drawn.
func Line(target Target, c color.Color, points []int, width int) error {
	if width < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if len(points) == 0 || len(points)%4 != 0 {
		return fmt.Errorf("%w: got %d coordinates", ErrInvalidPoints, len(points))
	}

	// Resolve color, surface, and buffer view once, shared by all
	// segments.
	packed, err := PrepareColor(c, target)
	if err != nil {
		return err
	}
	s, err := target.Surface()
	if err != nil {
		return err
	}
	pw, err := s.Writer()
	if err != nil {
		return err
	}

	pitch := s.Pitch
	bpp := s.Format.BytesPerPixel
	clip := s.Clip()
	left, top := clip.X, clip.Y
	right, bottom := clip.X+clip.W-1, clip.Y+clip.H-1

	for i := 0; i+3 < len(points); i += 4 {
		x1, y1 := points[i], points[i+1]
		x2, y2 := points[i+2], points[i+3]

		switch {
		case x1 == x2:
			y, h := y1, y2-y1
			if y2 < y1 {
				y, h = y2, y1-y2
			}
			s.FillRect(surface.Rect{X: x1 - width/2, Y: y, W: width, H: h}, packed)

		case y1 == y2:
			x, w := x1, x2-x1
			if x2 < x1 {
				x, w = x2, x1-x2
			}
			s.FillRect(surface.Rect{X: x, Y: y1 - width/2, W: w, H: width}, packed)

		default:
			if width != 1 {
				return fmt.Errorf("%w: width %d for diagonal lines", ErrUnsupported, width)
			}
			cx1, cy1, cx2, cy2, ok := raster.ClipLine(left, top, right, bottom, x1, y1, x2, y2)
			if !ok {
				Logger().Debug("segment outside clip rectangle",
					"x1", x1, "y1", y1, "x2", x2, "y2", y2)
				continue
			}
			raster.Line(cx1, cy1, cx2, cy2, func(x, y int) {
				pw.Put(y*pitch/bpp+x, packed)
			})
		}
	}
	return nil
}
