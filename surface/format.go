// Copyright 2026 The pixdraw Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "math/bits"

// PixelFormat describes the memory layout of a single pixel: its total
// size and the bit mask occupied by each channel within the packed
// value. A zero Amask means the format carries no alpha channel.
type PixelFormat struct {
	BitsPerPixel  int
	BytesPerPixel int

	Rmask, Gmask, Bmask, Amask uint32

	rshift, gshift, bshift, ashift uint
	rloss, gloss, bloss, aloss     uint
}

// Predefined pixel formats. Packed values are stored little-endian, so
// ABGR8888 lays out bytes as R, G, B, A in memory and matches the pixel
// layout of image.RGBA.
var (
	ABGR8888 = NewPixelFormat(32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
	RGBA8888 = NewPixelFormat(32, 0xff000000, 0x00ff0000, 0x0000ff00, 0x000000ff)
	XRGB8888 = NewPixelFormat(32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0)
	RGB565   = NewPixelFormat(16, 0xf800, 0x07e0, 0x001f, 0)
	RGB332   = NewPixelFormat(8, 0xe0, 0x1c, 0x03, 0)

	// RGB24 is a 3-byte format. Rectangle fills support it; line
	// drawing does not and rejects it up front.
	RGB24 = NewPixelFormat(24, 0xff0000, 0x00ff00, 0x0000ff, 0)
)

// NewPixelFormat builds a format from a pixel size in bits and one mask
// per channel. Shifts and losses are derived from the masks.
func NewPixelFormat(bitsPerPixel int, rmask, gmask, bmask, amask uint32) *PixelFormat {
	f := &PixelFormat{
		BitsPerPixel:  bitsPerPixel,
		BytesPerPixel: (bitsPerPixel + 7) / 8,
		Rmask:         rmask,
		Gmask:         gmask,
		Bmask:         bmask,
		Amask:         amask,
	}
	f.rshift, f.rloss = maskLayout(rmask)
	f.gshift, f.gloss = maskLayout(gmask)
	f.bshift, f.bloss = maskLayout(bmask)
	f.ashift, f.aloss = maskLayout(amask)
	return f
}

// maskLayout derives the bit shift and the precision loss (8 minus the
// channel's bit count) for a contiguous channel mask.
func maskLayout(mask uint32) (shift, loss uint) {
	if mask == 0 {
		return 0, 8
	}
	return uint(bits.TrailingZeros32(mask)), uint(8 - bits.OnesCount32(mask))
}

// HasAlpha reports whether the format carries an alpha channel.
func (f *PixelFormat) HasAlpha() bool {
	return f.Amask != 0
}

// MapRGB packs an opaque color into the format's bit layout. If the
// format has an alpha channel, it is set to fully opaque.
func (f *PixelFormat) MapRGB(r, g, b uint8) uint32 {
	p := uint32(r)>>f.rloss<<f.rshift |
		uint32(g)>>f.gloss<<f.gshift |
		uint32(b)>>f.bloss<<f.bshift
	return p | f.Amask
}

// MapRGBA packs a color with alpha into the format's bit layout. For
// formats without an alpha channel the alpha component is ignored.
func (f *PixelFormat) MapRGBA(r, g, b, a uint8) uint32 {
	p := uint32(r)>>f.rloss<<f.rshift |
		uint32(g)>>f.gloss<<f.gshift |
		uint32(b)>>f.bloss<<f.bshift
	if f.Amask != 0 {
		p |= uint32(a) >> f.aloss << f.ashift & f.Amask
	}
	return p
}

// RGBA unpacks a packed value into its color components, expanding
// narrow channels to full 8-bit precision. Formats without an alpha
// channel report full opacity.
func (f *PixelFormat) RGBA(p uint32) (r, g, b, a uint8) {
	r = expandChannel(p, f.Rmask, f.rshift, f.rloss)
	g = expandChannel(p, f.Gmask, f.gshift, f.gloss)
	b = expandChannel(p, f.Bmask, f.bshift, f.bloss)
	if f.Amask == 0 {
		return r, g, b, 0xff
	}
	return r, g, b, expandChannel(p, f.Amask, f.ashift, f.aloss)
}

// expandChannel extracts one channel and scales it to [0, 255] so that
// the channel's maximum raw value maps to exactly 255.
func expandChannel(p, mask uint32, shift, loss uint) uint8 {
	if mask == 0 {
		return 0
	}
	raw := (p & mask) >> shift
	full := uint32(1)<<(8-loss) - 1
	return uint8(raw * 255 / full)
}
