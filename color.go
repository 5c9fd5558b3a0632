package pixdraw

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor interprets s as an SVG 1.1 color name ("red",
// "cornflowerblue", case-insensitive) or a hex string. Supported hex
// forms are "RGB", "RGBA", "RRGGBB", and "RRGGBBAA", with an optional
// leading '#'. Unrecognized strings fail with ErrInvalidColor.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s[0] != '#' {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
	}
	return parseHexColor(s)
}

// parseHexColor parses a hex color string, with or without a leading
// '#'. Single-digit channels are expanded by repetition ("f" -> 0xff).
func parseHexColor(s string) (color.RGBA, error) {
	hex := s
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	take := func(sub string) uint32 {
		v, valid := hexVal(sub)
		ok = ok && valid
		return v
	}

	switch len(hex) {
	case 3: // RGB
		r, g, b = take(hex[0:1])*17, take(hex[1:2])*17, take(hex[2:3])*17
	case 4: // RGBA
		r, g, b = take(hex[0:1])*17, take(hex[1:2])*17, take(hex[2:3])*17
		a = take(hex[3:4]) * 17
	case 6: // RRGGBB
		r, g, b = take(hex[0:2]), take(hex[2:4]), take(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b = take(hex[0:2]), take(hex[2:4]), take(hex[4:6])
		a = take(hex[6:8])
	default:
		ok = false
	}
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// hexVal parses an unsigned hexadecimal string.
func hexVal(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c-'a') + 10
		case 'A' <= c && c <= 'F':
			v += uint32(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
