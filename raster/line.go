// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Line rasterizes the segment (x1, y1)-(x2, y2) with integer Bresenham
// stepping, calling plot once for every pixel on the line. Both
// endpoints are included. The caller is responsible for clipping; every
// plotted coordinate lies on the segment's bounding box.
func Line(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 > dy {
			e += dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
