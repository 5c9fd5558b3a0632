// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "testing"

func TestNewSprite(t *testing.T) {
	sp := NewSprite(8, 4, ABGR8888)
	if sp.Surface == nil {
		t.Fatal("sprite has no surface")
	}
	w, h := sp.Size()
	if w != 8 || h != 4 {
		t.Errorf("Size() = %dx%d, want 8x4", w, h)
	}
}

func TestSpriteArea(t *testing.T) {
	sp := NewSprite(8, 4, ABGR8888)
	sp.X, sp.Y = 10, 20
	if got := sp.Area(); got != (Rect{10, 20, 8, 4}) {
		t.Errorf("Area() = %v, want (10, 20, 8, 4)", got)
	}
}
