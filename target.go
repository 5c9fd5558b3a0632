package pixdraw

import (
	"fmt"
	"image/color"

	"github.com/gopix/pixdraw/surface"
)

// Target identifies where a drawing operation writes. It is a closed
// set of variants built with FromSurface, FromSprite, FromOpaqueHandle,
// or FromFormat; the zero Target resolves to nothing and every
// operation on it fails with ErrUnsupportedTarget.
type Target struct {
	surf   *surface.Surface
	format *surface.PixelFormat
}

// Surfacer is implemented by opaque handles that wrap a drawable
// surface.
type Surfacer interface {
	Surface() *surface.Surface
}

// FromSurface targets a surface directly.
func FromSurface(s *surface.Surface) Target {
	if s == nil {
		return Target{}
	}
	return Target{surf: s, format: s.Format}
}

// FromSprite targets the surface owned by a sprite.
func FromSprite(sp *surface.Sprite) Target {
	if sp == nil || sp.Surface == nil {
		return Target{}
	}
	return Target{surf: sp.Surface, format: sp.Surface.Format}
}

// FromOpaqueHandle accepts any value structurally identifiable as a
// surface carrier: a *surface.Surface, a *surface.Sprite, or a value
// implementing Surfacer. This is the single gate for foreign handles;
// anything else yields a Target whose operations fail with
// ErrUnsupportedTarget.
func FromOpaqueHandle(h any) Target {
	switch v := h.(type) {
	case *surface.Surface:
		return FromSurface(v)
	case *surface.Sprite:
		return FromSprite(v)
	case Surfacer:
		return FromSurface(v.Surface())
	}
	return Target{}
}

// FromFormat targets a bare pixel-format descriptor. The result can
// prepare colors with PrepareColor but is not drawable.
func FromFormat(f *surface.PixelFormat) Target {
	return Target{format: f}
}

// Surface resolves the concrete surface behind the target.
func (t Target) Surface() (*surface.Surface, error) {
	if t.surf == nil {
		return nil, ErrUnsupportedTarget
	}
	return t.surf, nil
}

// Format resolves the target's pixel-format descriptor.
func (t Target) Format() (*surface.PixelFormat, error) {
	if t.format == nil {
		return nil, ErrUnsupportedTarget
	}
	return t.format, nil
}

// PrepareColor packs c into the pixel layout of the target's format.
// Formats with an alpha mask pack all four channels; formats without
// one ignore alpha. PrepareColor is pure: it inspects the target but
// mutates nothing.
func PrepareColor(c color.Color, target Target) (uint32, error) {
	f, err := target.Format()
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, fmt.Errorf("%w: nil color", ErrInvalidColor)
	}
	r, g, b, a := c.RGBA()
	if f.HasAlpha() {
		return f.MapRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)), nil
	}
	return f.MapRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)), nil
}
