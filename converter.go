// Package pix2svg converts raster pixel art into compact SVG documents
// built from axis-aligned single-color rectangles.
//
// The core is a greedy rectangle covering: foreground pixels are
// partitioned into maximal same-color rectangles, scanned and emitted in a
// deterministic row-major order, so the same input always produces the same
// bytes. Everything around the core (decoding, scaling, matte compositing,
// serialization) preserves exact channel values; the output reproduces the
// input pixel for pixel.
//
// Typical use:
//
//	conv := pix2svg.NewConverter(pix2svg.WithScale(8))
//	result, err := conv.ConvertFile("sprite.png")
//	if err != nil {
//		return err
//	}
//	err = pix2svg.SaveSVG(result.SVG, "sprite.svg")
package pix2svg

import (
	"fmt"
	"image"
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"

	"github.com/LeSnow-Ye/pix2svg/imageutil"
)

// Converter holds the conversion configuration. Fields may be set directly
// or through functional options; Validate (called by Convert) checks the
// documented bounds before any pixel is examined.
//
// A Converter carries no per-conversion state and is safe for concurrent
// use by independent conversions.
type Converter struct {
	// Scale multiplies output geometry, 1 to MaxScale. The covering
	// always runs at unit scale.
	Scale int

	// AlphaThreshold is the minimum alpha for a visible pixel, 0 to 255.
	AlphaThreshold int

	// SkipTransparent drops below-threshold pixels entirely. When false,
	// every pixel is kept and partial alpha is emitted as opacity.
	SkipTransparent bool

	// CrispEdges emits the shape-rendering="crispEdges" hint on the root
	// element so renderers do not smooth rectangle boundaries.
	CrispEdges bool

	// Downscale shrinks the input by an integer factor before covering,
	// for art exported at an integer upscale. 1 disables it.
	Downscale int

	// Background, when set, is an opaque matte composited under the art
	// before covering; composited pixels are fully opaque.
	Background *Color
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: Scale=1, AlphaThreshold=1, SkipTransparent=true,
// CrispEdges=true, Downscale=1, no Background.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		Scale:           1,
		AlphaThreshold:  1,
		SkipTransparent: true,
		CrispEdges:      true,
		Downscale:       1,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithScale sets the output geometry multiplier.
func WithScale(scale int) Option {
	return func(c *Converter) {
		c.Scale = scale
	}
}

// WithAlphaThreshold sets the minimum alpha for a visible pixel.
func WithAlphaThreshold(threshold int) Option {
	return func(c *Converter) {
		c.AlphaThreshold = threshold
	}
}

// WithSkipTransparent controls whether below-threshold pixels are dropped.
func WithSkipTransparent(skip bool) Option {
	return func(c *Converter) {
		c.SkipTransparent = skip
	}
}

// WithCrispEdges controls the shape-rendering hint on the root element.
func WithCrispEdges(crisp bool) Option {
	return func(c *Converter) {
		c.CrispEdges = crisp
	}
}

// WithDownscale sets the integer pre-shrink factor for upscaled exports.
func WithDownscale(factor int) Option {
	return func(c *Converter) {
		c.Downscale = factor
	}
}

// WithBackground sets the matte color composited under the art.
func WithBackground(matte Color) Option {
	return func(c *Converter) {
		c.Background = &matte
	}
}

// Validate checks the configuration against its documented bounds. Convert
// calls it before any work; it is exported so callers can fail fast when
// assembling options from user input.
func (c *Converter) Validate() error {
	if c.Scale < 1 || c.Scale > MaxScale {
		return fmt.Errorf("%w: scale %d outside [1,%d]", ErrInvalidConfig, c.Scale, MaxScale)
	}
	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		return fmt.Errorf("%w: alpha threshold %d outside [0,255]", ErrInvalidConfig, c.AlphaThreshold)
	}
	if c.Downscale < 1 {
		return fmt.Errorf("%w: downscale factor %d below 1", ErrInvalidConfig, c.Downscale)
	}
	return nil
}

// Result carries the output of one conversion.
type Result struct {
	// SVG is the full document text.
	SVG string

	// Rects are the covering rectangles in emission order, unit scale.
	Rects []Rect

	// Width and Height are the covered grid dimensions: after any
	// downscale, before the output scale.
	Width  int
	Height int
}

// RectangleCount returns the number of emitted rectangles.
func (r *Result) RectangleCount() int {
	return len(r.Rects)
}

// SVGSize returns the document size in bytes.
func (r *Result) SVGSize() int {
	return len(r.SVG)
}

// Convert runs the full pipeline on a decoded image: validation and
// dimension checks, the optional downscale and matte pre-steps, grid
// construction, rectangle covering, and emission. Any failure surfaces
// before the emitter runs, so no partial output is ever produced.
func (c *Converter) Convert(img image.Image) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}

	if c.Downscale > 1 {
		if width%c.Downscale != 0 || height%c.Downscale != 0 {
			return nil, fmt.Errorf("%w: image %dx%d not divisible by downscale factor %d",
				ErrInvalidConfig, width, height, c.Downscale)
		}
		shrunk, err := imageutil.Downscale(img, c.Downscale)
		if err != nil {
			return nil, err
		}
		img = shrunk
		width /= c.Downscale
		height /= c.Downscale
	}

	if width > MaxGridDimension || height > MaxGridDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d per axis",
			ErrDimensionOverflow, width, height, MaxGridDimension)
	}
	if int64(width)*int64(c.Scale) > MaxCanvasDimension ||
		int64(height)*int64(c.Scale) > MaxCanvasDimension {
		return nil, fmt.Errorf("%w: %dx%d at scale %d exceeds canvas bounds",
			ErrDimensionOverflow, width, height, c.Scale)
	}

	if c.Background != nil {
		img = FlattenBackground(img, *c.Background)
	}

	start := time.Now()
	grid, err := NewPixelGrid(img, c.AlphaThreshold, c.SkipTransparent)
	if err != nil {
		return nil, err
	}
	rects := Cover(grid)
	svg := EmitSVG(rects, grid.Width(), grid.Height(), c.Scale, c.CrispEdges)

	log.Debugf("covered %dx%d grid (%d foreground cells) with %d rectangles in %v",
		grid.Width(), grid.Height(), grid.ForegroundCount(), len(rects), time.Since(start))

	return &Result{
		SVG:    svg,
		Rects:  rects,
		Width:  grid.Width(),
		Height: grid.Height(),
	}, nil
}

// ConvertFile loads the image at the specified path and converts it.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(img)
}

// FlattenBackground composites an image over an opaque matte color and
// returns the straight-alpha result. Opaque pixels pass through exactly;
// partial alpha blends linearly in RGB with round-half-up channel
// quantization, and the output pixel is fully opaque.
func FlattenBackground(img image.Image, matte Color) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	m := colorful.Color{
		R: float64(matte.R) / 255.0,
		G: float64(matte.G) / 255.0,
		B: float64(matte.B) / 255.0,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 255 {
				out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, n)
				continue
			}

			s := colorful.Color{
				R: float64(n.R) / 255.0,
				G: float64(n.G) / 255.0,
				B: float64(n.B) / 255.0,
			}
			blended := m.BlendRgb(s, float64(n.A)/255.0)
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{
				R: uint8(blended.R*255.0 + 0.5),
				G: uint8(blended.G*255.0 + 0.5),
				B: uint8(blended.B*255.0 + 0.5),
				A: 255,
			})
		}
	}

	return out
}
