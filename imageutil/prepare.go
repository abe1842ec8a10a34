package imageutil

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"
)

// Downscale shrinks an image by an integer factor using nearest-neighbor
// sampling. Pixel art exported at an integer upscale (every logical pixel
// drawn as a factor×factor block) comes back at its logical resolution with
// the block colors intact; no interpolation ever mixes channel values.
//
// Both dimensions must be divisible by factor. A factor of 1 returns the
// image unchanged.
func Downscale(img image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, fmt.Errorf("downscale factor %d below 1", factor)
	}
	if factor == 1 {
		return img, nil
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width%factor != 0 || height%factor != 0 {
		return nil, fmt.Errorf("image %dx%d not divisible by downscale factor %d",
			width, height, factor)
	}

	return resize.Resize(uint(width/factor), uint(height/factor), img, resize.NearestNeighbor), nil
}

// Upscale grows an image by an integer factor, replicating every pixel into
// a factor×factor block. It is the inverse of Downscale for block-uniform
// art and backs the sample generator and tests.
func Upscale(img image.Image, factor int) (*image.NRGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("upscale factor %d below 1", factor)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width*factor, height*factor))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := nrgbaAt(img, bounds.Min.X+x, bounds.Min.Y+y)
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					out.SetNRGBA(x*factor+dx, y*factor+dy, px)
				}
			}
		}
	}

	return out, nil
}

// nrgbaAt reads one pixel as straight-alpha NRGBA regardless of the
// underlying representation.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		return src.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
