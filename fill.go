package pixdraw

import (
	"fmt"
	"image/color"

	"github.com/gopix/pixdraw/surface"
)

// Fill fills rectangular areas of the target with a color.
//
// With no areas the whole clip region is filled. A single area goes
// through the single-rectangle path; more than one is issued as one
// batched multi-rectangle fill. Every area is canonicalized and
// intersected with the target's clip rectangle, and pixels are
// overwritten opaquely.
func Fill(target Target, c color.Color, areas ...surface.Rect) error {
	packed, err := PrepareColor(c, target)
	if err != nil {
		return err
	}
	s, err := target.Surface()
	if err != nil {
		return err
	}
	fillAreas(s, packed, areas)
	return nil
}

// rectFiller is the subset of surface operations the fill dispatcher
// drives.
type rectFiller interface {
	Fill(c uint32)
	FillRect(r surface.Rect, c uint32)
	FillRects(rs []surface.Rect, c uint32)
}

func fillAreas(f rectFiller, packed uint32, areas []surface.Rect) {
	switch len(areas) {
	case 0:
		f.Fill(packed)
	case 1:
		f.FillRect(areas[0], packed)
	default:
		Logger().Debug("batched fill", "areas", len(areas))
		f.FillRects(areas, packed)
	}
}

// ParseArea coerces a flat (x, y, w, h) integer quadruple into a Rect,
// failing with ErrInvalidArea for any other shape.
func ParseArea(vals []int) (surface.Rect, error) {
	if len(vals) != 4 {
		return surface.Rect{}, fmt.Errorf("%w: %v (want 4 values, got %d)", ErrInvalidArea, vals, len(vals))
	}
	return surface.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// ParseAreas splits a flat integer list into (x, y, w, h) rectangles.
// The length must be a multiple of four.
func ParseAreas(vals []int) ([]surface.Rect, error) {
	if len(vals)%4 != 0 {
		return nil, fmt.Errorf("%w: %d values is not a multiple of 4", ErrInvalidArea, len(vals))
	}
	rs := make([]surface.Rect, 0, len(vals)/4)
	for i := 0; i+3 < len(vals); i += 4 {
		rs = append(rs, surface.Rect{X: vals[i], Y: vals[i+1], W: vals[i+2], H: vals[i+3]})
	}
	return rs, nil
}
