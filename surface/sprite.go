// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Sprite is a positioned software sprite backed by its own surface.
// Drawing operations accept sprites as targets and draw onto the
// wrapped surface; the position and depth are used by renderers, not
// by the drawing primitives themselves.
type Sprite struct {
	Surface *Surface

	// X, Y is the sprite's position on its destination.
	X, Y int

	// Depth orders sprites during rendering; higher is drawn later.
	Depth int
}

// NewSprite allocates a sprite with a fresh surface of the given size.
func NewSprite(w, h int, f *PixelFormat) *Sprite {
	return &Sprite{Surface: New(w, h, f)}
}

// Size returns the dimensions of the sprite's surface.
func (sp *Sprite) Size() (w, h int) {
	return sp.Surface.W, sp.Surface.H
}

// Area returns the rectangle the sprite occupies at its current
// position.
func (sp *Sprite) Area() Rect {
	return Rect{X: sp.X, Y: sp.Y, W: sp.Surface.W, H: sp.Surface.H}
}
