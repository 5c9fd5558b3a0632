package pixdraw

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gopix/pixdraw/surface"
)

// fbHandle is an opaque handle exposing its surface structurally.
type fbHandle struct {
	s *surface.Surface
}

func (h *fbHandle) Surface() *surface.Surface { return h.s }

func TestFromSurface(t *testing.T) {
	s := surface.New(4, 4, surface.ABGR8888)
	target := FromSurface(s)

	got, err := target.Surface()
	if err != nil || got != s {
		t.Errorf("Surface() = (%v, %v), want the original surface", got, err)
	}
	f, err := target.Format()
	if err != nil || f != surface.ABGR8888 {
		t.Errorf("Format() = (%v, %v), want ABGR8888", f, err)
	}
}

func TestFromSprite(t *testing.T) {
	sp := surface.NewSprite(4, 4, surface.RGB565)
	target := FromSprite(sp)

	got, err := target.Surface()
	if err != nil || got != sp.Surface {
		t.Errorf("Surface() = (%v, %v), want the sprite's surface", got, err)
	}
}

func TestFromOpaqueHandle(t *testing.T) {
	s := surface.New(4, 4, surface.ABGR8888)
	sp := surface.NewSprite(4, 4, surface.ABGR8888)

	for _, h := range []any{s, sp, &fbHandle{s: s}} {
		target := FromOpaqueHandle(h)
		if _, err := target.Surface(); err != nil {
			t.Errorf("FromOpaqueHandle(%T).Surface() error: %v", h, err)
		}
	}
}

func TestUnsupportedTargets(t *testing.T) {
	targets := map[string]Target{
		"zero target":    {},
		"int handle":     FromOpaqueHandle(42),
		"string handle":  FromOpaqueHandle("surface"),
		"nil surface":    FromSurface(nil),
		"nil sprite":     FromSprite(nil),
		"format only":    FromFormat(surface.ABGR8888),
		"nil fromformat": FromFormat(nil),
	}
	for name, target := range targets {
		_, err := target.Surface()
		if name == "format only" {
			// A bare format can prepare colors but is not drawable.
			if !errors.Is(err, ErrUnsupportedTarget) {
				t.Errorf("%s: Surface() error = %v, want ErrUnsupportedTarget", name, err)
			}
			if _, ferr := target.Format(); ferr != nil {
				t.Errorf("%s: Format() error = %v, want nil", name, ferr)
			}
			continue
		}
		if !errors.Is(err, ErrUnsupportedTarget) {
			t.Errorf("%s: Surface() error = %v, want ErrUnsupportedTarget", name, err)
		}
	}
}

func TestPrepareColorRGB(t *testing.T) {
	// Alpha-less format: alpha is ignored.
	target := FromFormat(surface.XRGB8888)
	p, err := PrepareColor(color.RGBA{0x12, 0x34, 0x56, 0xff}, target)
	if err != nil {
		t.Fatalf("PrepareColor error: %v", err)
	}
	if p != 0x123456 {
		t.Errorf("packed = %#x, want 0x123456", p)
	}
}

func TestPrepareColorRGBA(t *testing.T) {
	target := FromFormat(surface.RGBA8888)
	p, err := PrepareColor(color.RGBA{0x12, 0x34, 0x56, 0xff}, target)
	if err != nil {
		t.Fatalf("PrepareColor error: %v", err)
	}
	if p != 0x123456ff {
		t.Errorf("packed = %#x, want 0x123456ff", p)
	}
}

// Packed colors decode back to the channels they were built from.
func TestPrepareColorRoundTrip(t *testing.T) {
	cases := []color.RGBA{
		{0, 0, 0, 255}, {255, 255, 255, 255}, {10, 20, 30, 255},
	}
	for _, f := range []*surface.PixelFormat{surface.XRGB8888, surface.ABGR8888, surface.RGBA8888} {
		target := FromFormat(f)
		for _, c := range cases {
			p, err := PrepareColor(c, target)
			if err != nil {
				t.Fatalf("PrepareColor error: %v", err)
			}
			r, g, b, a := f.RGBA(p)
			if r != c.R || g != c.G || b != c.B || a != c.A {
				t.Errorf("format %#x: %v decoded to (%d, %d, %d, %d)", f.Rmask, c, r, g, b, a)
			}
		}
	}
}

func TestPrepareColorErrors(t *testing.T) {
	if _, err := PrepareColor(color.RGBA{}, Target{}); !errors.Is(err, ErrUnsupportedTarget) {
		t.Errorf("zero target: error = %v, want ErrUnsupportedTarget", err)
	}
	if _, err := PrepareColor(nil, FromFormat(surface.ABGR8888)); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("nil color: error = %v, want ErrInvalidColor", err)
	}
}
