package imageutil

import (
	"image"
	"image/color"
)

// CreateSpriteImage builds a straight-alpha image from an ASCII rune map.
// Each byte of a row indexes the palette; bytes missing from the palette
// become fully transparent pixels. All rows must share one width.
//
// The rune map form keeps test fixtures readable:
//
//	img := CreateSpriteImage([]string{
//		"RR.",
//		".RR",
//	}, map[byte]color.NRGBA{'R': {R: 255, A: 255}})
func CreateSpriteImage(rows []string, palette map[byte]color.NRGBA) *image.NRGBA {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if px, ok := palette[row[x]]; ok {
				img.SetNRGBA(x, y, px)
			}
		}
	}
	return img
}

// CreateSolidImage creates an image filled with a single color.
func CreateSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// CreateCheckerboardImage creates a two-color checkerboard pattern. Every
// square is squareSize pixels on a side, so covers of it are easy to reason
// about cell by cell.
func CreateCheckerboardImage(width, height, squareSize int, light, dark color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

// CreateAlphaGradientImage creates an image of one RGB color whose alpha
// ramps from 0 at the left edge to 255 at the right edge. Columns therefore
// straddle any alpha threshold, which exercises visibility rules.
func CreateAlphaGradientImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(255 * x / (width - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: a})
		}
	}
	return img
}

// CreateTransparentImage creates an image of fully transparent pixels.
func CreateTransparentImage(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}
