package pix2svg

import "errors"

// Sentinel errors returned by configuration validation and the conversion
// pipeline. Every one of them fires before any covering work begins, so a
// failed conversion never produces partial output. Wrapped variants carry
// detail; test with errors.Is.
var (
	// ErrInvalidConfig indicates an option outside its documented bounds.
	ErrInvalidConfig = errors.New("pix2svg: invalid configuration")

	// ErrEmptyImage indicates an input with zero width or height.
	ErrEmptyImage = errors.New("pix2svg: empty image")

	// ErrDimensionOverflow indicates grid or scaled output dimensions
	// beyond the representable bounds.
	ErrDimensionOverflow = errors.New("pix2svg: dimension overflow")
)

// Geometry bounds enforced before any pixel is examined.
const (
	// MaxScale is the largest accepted output geometry multiplier.
	MaxScale = 1000

	// MaxGridDimension caps each grid axis. Larger inputs would overflow
	// flat mask indexing on 32-bit platforms long after exhausting memory.
	MaxGridDimension = 100000

	// MaxCanvasDimension caps scaled output geometry to the int32 range
	// so emitted coordinates stay representable everywhere.
	MaxCanvasDimension = 1<<31 - 1
)
