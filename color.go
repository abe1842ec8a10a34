package pix2svg

import (
	"fmt"
	"image/color"
)

// Color represents an exact pixel color with 8-bit RGBA channels, where
// each channel ranges from 0 to 255. Alpha is straight (non-premultiplied).
// Two colors are equal only when all four channels match exactly; covering
// never blends, averages, or quantizes.
type Color struct {
	R, G, B, A uint8
}

// Hex returns the color as an uppercase RRGGBB string without a leading
// '#'. The alpha channel is not part of the hex encoding; partial alpha is
// carried separately as an opacity value.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Opacity returns the alpha channel as a ratio in the range [0, 1].
func (c Color) Opacity() float64 {
	return float64(c.A) / 255.0
}

// Opaque reports whether the color has a full alpha channel.
func (c Color) Opaque() bool {
	return c.A == 255
}

// NRGBA converts the color to the standard library straight-alpha type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// colorFromNRGBA converts a straight-alpha standard library color.
func colorFromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
