package pix2svg

import (
	"fmt"
	"image"
	"image/color"
)

// PixelGrid is an immutable row-major grid of optional colors built from a
// decoded image. A cell is foreground when its source pixel passed the
// visibility rule; background cells hold no color and are never covered.
//
// Alpha handling is exact: straight (non-premultiplied) channel values are
// preserved so that covering and emission reproduce the source byte for
// byte. Decoders that hand back premultiplied data are converted through
// color.NRGBAModel.
type PixelGrid struct {
	width  int
	height int

	// Flat row-major cell state, indexed y*width+x.
	colors     []Color
	visible    []bool
	foreground int
}

// NewPixelGrid builds a grid from a decoded image.
//
// Visibility of each pixel is alpha >= alphaThreshold; when skipTransparent
// is false every pixel is visible and its full alpha channel is carried
// through to emission. The grid always has the unscaled source dimensions;
// output scaling multiplies emitted geometry, never the grid.
func NewPixelGrid(img image.Image, alphaThreshold int, skipTransparent bool) (*PixelGrid, error) {
	if alphaThreshold < 0 || alphaThreshold > 255 {
		return nil, fmt.Errorf("%w: alpha threshold %d outside [0,255]", ErrInvalidConfig, alphaThreshold)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if width > MaxGridDimension || height > MaxGridDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d per axis",
			ErrDimensionOverflow, width, height, MaxGridDimension)
	}

	g := &PixelGrid{
		width:   width,
		height:  height,
		colors:  make([]Color, width*height),
		visible: make([]bool, width*height),
	}

	switch src := img.(type) {
	case *image.NRGBA:
		g.fillFromNRGBA(src, alphaThreshold, skipTransparent)
	case *image.RGBA:
		g.fillFromRGBA(src, alphaThreshold, skipTransparent)
	default:
		g.fillFromImage(img, alphaThreshold, skipTransparent)
	}

	return g, nil
}

// Width returns the grid width in cells.
func (g *PixelGrid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *PixelGrid) Height() int {
	return g.height
}

// ForegroundCount returns the number of visible cells.
func (g *PixelGrid) ForegroundCount() int {
	return g.foreground
}

// At returns the color at (x, y) and whether the cell is foreground.
// Background cells return the zero Color and false.
func (g *PixelGrid) At(x, y int) (Color, bool) {
	i := y*g.width + x
	return g.colors[i], g.visible[i]
}

// setCell applies the visibility rule and stores one cell.
func (g *PixelGrid) setCell(i int, px Color, alphaThreshold int, skipTransparent bool) {
	if skipTransparent && int(px.A) < alphaThreshold {
		return
	}
	g.colors[i] = px
	g.visible[i] = true
	g.foreground++
}

// fillFromNRGBA reads straight-alpha pixel data directly from the decoded
// buffer. PNG with transparency decodes to this representation, so the
// common pixel-art path never touches the color model.
func (g *PixelGrid) fillFromNRGBA(src *image.NRGBA, alphaThreshold int, skipTransparent bool) {
	bounds := src.Bounds()
	i := 0
	for y := 0; y < g.height; y++ {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < g.width; x++ {
			px := Color{
				R: src.Pix[off],
				G: src.Pix[off+1],
				B: src.Pix[off+2],
				A: src.Pix[off+3],
			}
			g.setCell(i, px, alphaThreshold, skipTransparent)
			off += 4
			i++
		}
	}
}

// fillFromRGBA reads premultiplied pixel data. Opaque pixels are exact as
// stored; partial alpha is unpremultiplied through the color model.
func (g *PixelGrid) fillFromRGBA(src *image.RGBA, alphaThreshold int, skipTransparent bool) {
	bounds := src.Bounds()
	i := 0
	for y := 0; y < g.height; y++ {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < g.width; x++ {
			a := src.Pix[off+3]
			var px Color
			if a == 255 {
				px = Color{R: src.Pix[off], G: src.Pix[off+1], B: src.Pix[off+2], A: 255}
			} else {
				n := color.NRGBAModel.Convert(color.RGBA{
					R: src.Pix[off],
					G: src.Pix[off+1],
					B: src.Pix[off+2],
					A: a,
				}).(color.NRGBA)
				px = colorFromNRGBA(n)
			}
			g.setCell(i, px, alphaThreshold, skipTransparent)
			off += 4
			i++
		}
	}
}

// fillFromImage handles every other decoded representation (paletted GIF,
// JPEG YCbCr, grayscale, BMP/TIFF/WebP buffers) through the generic
// accessor.
func (g *PixelGrid) fillFromImage(src image.Image, alphaThreshold int, skipTransparent bool) {
	bounds := src.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			g.setCell(i, colorFromNRGBA(n), alphaThreshold, skipTransparent)
			i++
		}
	}
}
