// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Rect is an axis-aligned rectangle in surface pixel coordinates.
// It covers the half-open spans [X, X+W) horizontally and [Y, Y+H)
// vertically.
type Rect struct {
	X, Y, W, H int
}

// Canon returns the canonical version of r: a negative width or height
// is flipped across its origin so that W and H come out non-negative
// and the rectangle covers the same span.
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the largest rectangle contained by both r and s.
// If the two rectangles do not overlap, the result is empty.
func (r Rect) Intersect(s Rect) Rect {
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.W, s.X+s.W)
	y2 := min(r.Y+r.H, s.Y+s.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
