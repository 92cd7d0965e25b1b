package render

import "image/color"

// Palette shared by the icon and the fanart.
var (
	CiscoBlue        = color.RGBA{R: 0x00, G: 0x93, B: 0xCA, A: 0xFF} // #0093CA
	CiscoTeal        = color.RGBA{R: 0x00, G: 0xBC, B: 0xD4, A: 0xFF} // #00BCD4
	DarkBackground   = color.RGBA{R: 0x12, G: 0x12, B: 0x18, A: 0xFF} // #121218
	DarkerBackground = color.RGBA{R: 0x0C, G: 0x0C, B: 0x10, A: 0xFF} // #0C0C10
	AccentLight      = color.RGBA{R: 0x64, G: 0xDC, B: 0xFF, A: 0xFF} // #64DCFF
	TextWhite        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Fixed output sizes.
const (
	IconSize = 256

	FanartWidth  = 1920
	FanartHeight = 1080
)

// WithAlpha returns c with its alpha replaced, as a non-premultiplied color.
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Opacity converts a 0..1 opacity to an 8-bit alpha, truncating like
// int(255 * opacity).
func Opacity(o float64) uint8 {
	if o <= 0 {
		return 0
	}
	if o >= 1 {
		return 0xFF
	}
	return uint8(255 * o)
}
