// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the in-memory pixel surface the drawing
// primitives operate on: a raw byte buffer addressed through a pitch
// and a pixel format, constrained by a clip rectangle.
//
// Surfaces are plain mutable state. They perform no locking; callers
// must serialize access to a given surface.
package surface
