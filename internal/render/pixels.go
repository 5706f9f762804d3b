package render

import "image/color"

const (
	// LeftShade darkens the left side faces of the first column.
	LeftShade = 0.8
	// TopShade lightens the top faces of the last row.
	TopShade = 1.1
)

// Shade scales every color channel of c by factor, saturating at full
// intensity. Alpha is preserved.
func Shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := int(float64(uint32(v)*0x101) * factor)
		if s > 0xffff {
			s = 0xffff
		}
		if s < 0 {
			s = 0
		}
		return uint8(s >> 8)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// ColorFor returns the palette entry for a display value, clamping values
// past the end of the palette to its last entry.
func ColorFor(palette []color.RGBA, v uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := int(v)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}
