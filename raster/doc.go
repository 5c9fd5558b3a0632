// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the integer line rasterization core:
// parametric clipping of a segment against a rectangle and Bresenham
// pixel stepping. It knows nothing about pixel buffers; callers supply
// a plot callback.
package raster
