// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "testing"

// The clip rectangle in these tests is the inclusive box [0, 9] x [0, 9].
const (
	left, top     = 0, 0
	right, bottom = 9, 9
)

func TestClipLineInside(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"diagonal", 1, 1, 8, 8},
		{"horizontal", 0, 5, 9, 5},
		{"vertical", 4, 0, 4, 9},
		{"single point", 3, 3, 3, 3},
		{"corner to corner", 0, 0, 9, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx1, cy1, cx2, cy2, ok := ClipLine(left, top, right, bottom, tt.x1, tt.y1, tt.x2, tt.y2)
			if !ok {
				t.Fatal("fully visible segment reported outside")
			}
			if cx1 != tt.x1 || cy1 != tt.y1 || cx2 != tt.x2 || cy2 != tt.y2 {
				t.Errorf("got (%d, %d)-(%d, %d), want unchanged (%d, %d)-(%d, %d)",
					cx1, cy1, cx2, cy2, tt.x1, tt.y1, tt.x2, tt.y2)
			}
		})
	}
}

func TestClipLineOutside(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"right of box", 20, 0, 30, 5},
		{"left of box", -10, 2, -2, 8},
		{"above box", 2, -8, 7, -1},
		{"below box", 0, 15, 9, 20},
		{"vertical left of box", -3, 0, -3, 9},
		{"horizontal below box", 0, 12, 9, 12},
		{"diagonal missing corner", 8, -4, 14, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, ok := ClipLine(left, top, right, bottom, tt.x1, tt.y1, tt.x2, tt.y2)
			if ok {
				t.Error("segment outside the box reported visible")
			}
		})
	}
}

func TestClipLineCrossing(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           [4]int
	}{
		{"enters top-left", -5, -5, 5, 5, [4]int{0, 0, 5, 5}},
		{"exits right", 5, 5, 15, 5, [4]int{5, 5, 9, 5}},
		{"crosses fully", -5, 5, 15, 5, [4]int{0, 5, 9, 5}},
		{"exits bottom", 5, 5, 5, 15, [4]int{5, 5, 5, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx1, cy1, cx2, cy2, ok := ClipLine(left, top, right, bottom, tt.x1, tt.y1, tt.x2, tt.y2)
			if !ok {
				t.Fatal("crossing segment reported outside")
			}
			got := [4]int{cx1, cy1, cx2, cy2}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// Clipped endpoints always satisfy the inclusive bounds.
func TestClipLineStaysInBounds(t *testing.T) {
	for x1 := -12; x1 <= 21; x1 += 3 {
		for y1 := -12; y1 <= 21; y1 += 3 {
			for x2 := -12; x2 <= 21; x2 += 5 {
				for y2 := -12; y2 <= 21; y2 += 5 {
					cx1, cy1, cx2, cy2, ok := ClipLine(left, top, right, bottom, x1, y1, x2, y2)
					if !ok {
						continue
					}
					for _, p := range [][2]int{{cx1, cy1}, {cx2, cy2}} {
						if p[0] < left || p[0] > right || p[1] < top || p[1] > bottom {
							t.Fatalf("segment (%d, %d)-(%d, %d) clipped to out-of-bounds point (%d, %d)",
								x1, y1, x2, y2, p[0], p[1])
						}
					}
				}
			}
		}
	}
}
