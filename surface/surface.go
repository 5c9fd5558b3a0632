// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

// ErrUnsupportedDepth is returned for pixel depths the element-wise
// buffer view cannot address, currently 3 bytes per pixel.
var ErrUnsupportedDepth = errors.New("surface: unsupported pixel depth")

// ErrFormatMismatch is returned when an operation requires two surfaces
// to share a pixel format and they do not.
var ErrFormatMismatch = errors.New("surface: pixel formats do not match")

// Surface is an in-memory pixel buffer with an explicit pixel format,
// pitch, and clip rectangle. All drawing operations mutate the buffer
// in place and never write outside the clip rectangle.
//
// A Surface is not safe for concurrent use. Callers must serialize
// access to a given surface.
type Surface struct {
	// W and H are the surface dimensions in pixels.
	W, H int

	// Pitch is the number of bytes per scanline. It may exceed
	// W*BytesPerPixel when rows are padded.
	Pitch int

	// Format describes the pixel layout of the buffer.
	Format *PixelFormat

	// Pix holds the pixel data. The surface borrows rather than owns
	// it when constructed around an existing buffer.
	Pix []byte

	clip Rect
}

// New allocates a surface of the given size. Dimensions below 1 are
// clamped to 1. The clip rectangle starts out covering the whole
// surface.
func New(w, h int, f *PixelFormat) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	pitch := w * f.BytesPerPixel
	return &Surface{
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: f,
		Pix:    make([]byte, h*pitch),
		clip:   Rect{W: w, H: h},
	}
}

// NewWithPitch wraps a caller-owned buffer with an explicit pitch,
// which may exceed w*BytesPerPixel when scanlines are padded. The
// surface borrows pix for its lifetime; it never frees or reallocates
// it. pix must hold at least h*pitch bytes.
func NewWithPitch(pix []byte, w, h, pitch int, f *PixelFormat) *Surface {
	return &Surface{
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: f,
		Pix:    pix,
		clip:   Rect{W: w, H: h},
	}
}

// NewFromRGBA wraps an existing image.RGBA without copying. Drawing on
// the surface mutates the image's pixels directly. The image's stride
// becomes the surface pitch and the format is ABGR8888, whose memory
// layout matches image.RGBA.
func NewFromRGBA(img *image.RGBA) *Surface {
	b := img.Bounds()
	return &Surface{
		W:      b.Dx(),
		H:      b.Dy(),
		Pitch:  img.Stride,
		Format: ABGR8888,
		Pix:    img.Pix,
		clip:   Rect{W: b.Dx(), H: b.Dy()},
	}
}

// Bounds returns the full surface rectangle.
func (s *Surface) Bounds() Rect {
	return Rect{W: s.W, H: s.H}
}

// Clip returns the current clip rectangle.
func (s *Surface) Clip() Rect {
	return s.clip
}

// SetClip restricts drawing to r, intersected with the surface bounds.
func (s *Surface) SetClip(r Rect) {
	s.clip = r.Canon().Intersect(s.Bounds())
}

// ResetClip restores the clip rectangle to the full surface.
func (s *Surface) ResetClip() {
	s.clip = s.Bounds()
}

// Fill overwrites every pixel of the clip region with the packed color.
func (s *Surface) Fill(c uint32) {
	s.fillClipped(s.clip, c)
}

// FillRect overwrites every pixel of r, intersected with the clip
// rectangle, with the packed color. Negative sizes are canonicalized
// first, so a rectangle specified backwards covers the same pixels.
func (s *Surface) FillRect(r Rect, c uint32) {
	s.fillClipped(r.Canon().Intersect(s.clip), c)
}

// FillRects fills every rectangle in rs with the packed color. It is
// the batched counterpart of FillRect.
func (s *Surface) FillRects(rs []Rect, c uint32) {
	for _, r := range rs {
		s.fillClipped(r.Canon().Intersect(s.clip), c)
	}
}

// fillClipped writes c into a rectangle already known to lie inside
// the buffer.
func (s *Surface) fillClipped(r Rect, c uint32) {
	if r.Empty() {
		return
	}
	bpp := s.Format.BytesPerPixel
	for y := r.Y; y < r.Y+r.H; y++ {
		off := y*s.Pitch + r.X*bpp
		row := s.Pix[off : off+r.W*bpp]
		switch bpp {
		case 1:
			for i := range row {
				row[i] = uint8(c)
			}
		case 2:
			for i := 0; i < len(row); i += 2 {
				binary.LittleEndian.PutUint16(row[i:], uint16(c))
			}
		case 3:
			for i := 0; i < len(row); i += 3 {
				row[i] = uint8(c)
				row[i+1] = uint8(c >> 8)
				row[i+2] = uint8(c >> 16)
			}
		case 4:
			for i := 0; i < len(row); i += 4 {
				binary.LittleEndian.PutUint32(row[i:], c)
			}
		}
	}
}

// PixelAt returns the packed value of the pixel at (x, y). The
// coordinates must lie inside the surface bounds.
func (s *Surface) PixelAt(x, y int) uint32 {
	bpp := s.Format.BytesPerPixel
	i := y*s.Pitch + x*bpp
	switch bpp {
	case 1:
		return uint32(s.Pix[i])
	case 2:
		return uint32(binary.LittleEndian.Uint16(s.Pix[i:]))
	case 3:
		return uint32(s.Pix[i]) | uint32(s.Pix[i+1])<<8 | uint32(s.Pix[i+2])<<16
	default:
		return binary.LittleEndian.Uint32(s.Pix[i:])
	}
}

// Writer returns an element-wise view of the pixel buffer for direct
// rasterization. The element size is the format's BytesPerPixel;
// 3-byte pixels have no natural element type and yield
// ErrUnsupportedDepth before anything is written.
func (s *Surface) Writer() (PixelWriter, error) {
	switch s.Format.BytesPerPixel {
	case 1, 2, 4:
		return PixelWriter{pix: s.Pix, size: s.Format.BytesPerPixel}, nil
	}
	return PixelWriter{}, fmt.Errorf("%w: %d bytes per pixel", ErrUnsupportedDepth, s.Format.BytesPerPixel)
}

// Blit copies src onto s with its top-left corner at (x, y), clipped to
// s's clip rectangle. The two surfaces must share a pixel format; no
// conversion or blending is performed.
func (s *Surface) Blit(src *Surface, x, y int) error {
	sf, df := src.Format, s.Format
	if sf.BitsPerPixel != df.BitsPerPixel ||
		sf.Rmask != df.Rmask || sf.Gmask != df.Gmask ||
		sf.Bmask != df.Bmask || sf.Amask != df.Amask {
		return ErrFormatMismatch
	}
	d := Rect{X: x, Y: y, W: src.W, H: src.H}.Intersect(s.clip)
	if d.Empty() {
		return nil
	}
	bpp := df.BytesPerPixel
	for row := 0; row < d.H; row++ {
		so := (d.Y-y+row)*src.Pitch + (d.X-x)*bpp
		do := (d.Y+row)*s.Pitch + d.X*bpp
		copy(s.Pix[do:do+d.W*bpp], src.Pix[so:so+d.W*bpp])
	}
	return nil
}

// Snapshot returns the surface contents as an RGBA image. The returned
// image is a copy; modifying it does not affect the surface.
func (s *Surface) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			r, g, b, a := s.Format.RGBA(s.PixelAt(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}

// PixelWriter writes packed pixel values at element offsets into a
// surface's buffer. Offset n addresses byte n*elemSize; the line
// rasterizer computes offsets as y*pitch/bpp + x. Writes outside the
// buffer panic via Go's bounds checking, which indicates a clipping
// bug rather than a recoverable condition.
type PixelWriter struct {
	pix  []byte
	size int
}

// Put writes the packed color at the given element offset.
func (w PixelWriter) Put(off int, c uint32) {
	i := off * w.size
	switch w.size {
	case 1:
		w.pix[i] = uint8(c)
	case 2:
		binary.LittleEndian.PutUint16(w.pix[i:], uint16(c))
	case 4:
		binary.LittleEndian.PutUint32(w.pix[i:], c)
	}
}
