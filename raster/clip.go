// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// ClipLine clips the segment (x1, y1)-(x2, y2) against the rectangle
// with inclusive bounds [left, right] x [top, bottom] using the
// Liang-Barsky parametric algorithm. It returns the endpoints of the
// portion inside the rectangle, truncated to integers.
//
// ok is false when the segment lies entirely outside the rectangle.
// That is a normal outcome, not an error; callers skip the segment.
func ClipLine(left, top, right, bottom, x1, y1, x2, y2 int) (cx1, cy1, cx2, cy2 int, ok bool) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)

	// One entry per edge: p is the direction component against the
	// edge, q the distance from the first endpoint to the edge.
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		float64(x1 - left),
		float64(right - x1),
		float64(y1 - top),
		float64(bottom - y1),
	}

	u1, u2 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			// Parallel to this edge; outside means invisible.
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}
	if u1 > u2 {
		return 0, 0, 0, 0, false
	}

	cx1 = int(float64(x1) + u1*dx)
	cy1 = int(float64(y1) + u1*dy)
	cx2 = int(float64(x1) + u2*dx)
	cy2 = int(float64(y1) + u2*dy)
	return cx1, cy1, cx2, cy2, true
}
