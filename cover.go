package pix2svg

// Rect is one axis-aligned block of a single exact color, in unit-grid
// coordinates. Rectangles are created by Cover, never mutated afterwards,
// and consumed by the emitter in the order they were produced.
type Rect struct {
	X, Y          int
	Width, Height int
	Color         Color
}

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Scaled returns the rectangle with all geometry multiplied by s. The color
// is unchanged. Scaling happens at emission time only; the grid is never
// rescanned at scaled resolution.
func (r Rect) Scaled(s int) Rect {
	return Rect{
		X:      r.X * s,
		Y:      r.Y * s,
		Width:  r.Width * s,
		Height: r.Height * s,
		Color:  r.Color,
	}
}

// Cover partitions the foreground cells of a grid into maximal same-color
// rectangles and returns them in row-major order of their top-left corners.
// It is a deterministic, pure function of the grid contents: the same grid
// always yields the same ordered sequence.
//
// The strategy is greedy largest-rectangle-first. Scanning row-major, each
// uncovered foreground cell seeds a candidate: the maximal horizontal run of
// its color at that row fixes the width, then the rectangle grows downward
// one full row at a time while every cell in the span stays uncovered and
// exactly the same color. Width is never re-optimized once vertical growth
// begins, and a single mismatching cell in a row halts growth for good. Each
// rectangle is therefore locally maximal, but the total count is not
// guaranteed minimal (exact minimum rectangle decomposition is NP-hard).
//
// Work is O(width*height) amortized for ordinary pixel art: each cell is
// covered once, and the at most one failing probe row per rectangle is
// bounded by its width. Adversarial patterns that repeatedly probe and fail
// a wide span on every row can degrade beyond that; no probe cap is applied.
func Cover(grid *PixelGrid) []Rect {
	covered := make([]bool, grid.width*grid.height)

	var rects []Rect
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			i := y*grid.width + x
			if covered[i] || !grid.visible[i] {
				continue
			}
			r := growRect(grid, covered, x, y, grid.colors[i])
			markCovered(covered, grid.width, r)
			rects = append(rects, r)
		}
	}
	return rects
}

// growRect expands a candidate rectangle from its top-left seed cell. The
// returned rectangle always covers at least the seed itself.
func growRect(g *PixelGrid, covered []bool, x0, y0 int, c Color) Rect {
	// Horizontal extent: maximal run of c at the seed row.
	x1 := x0 + 1
	for x1 < g.width {
		i := y0*g.width + x1
		if covered[i] || !g.visible[i] || g.colors[i] != c {
			break
		}
		x1++
	}
	runWidth := x1 - x0

	// Vertical extent: whole rows at the fixed width, stopping at the
	// first row where any span cell mismatches.
	y1 := y0 + 1
	for y1 < g.height && spanMatches(g, covered, x0, runWidth, y1, c) {
		y1++
	}

	return Rect{X: x0, Y: y0, Width: runWidth, Height: y1 - y0, Color: c}
}

// spanMatches reports whether every cell of [x0, x0+width) in row y is an
// uncovered foreground cell of color c.
func spanMatches(g *PixelGrid, covered []bool, x0, width, y int, c Color) bool {
	base := y * g.width
	for x := x0; x < x0+width; x++ {
		i := base + x
		if covered[i] || !g.visible[i] || g.colors[i] != c {
			return false
		}
	}
	return true
}

// markCovered flags every cell of r in the mask. Cells are covered exactly
// once: growth never enters covered territory, so no cell is flagged twice.
func markCovered(covered []bool, gridWidth int, r Rect) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		base := y * gridWidth
		for x := r.X; x < r.X+r.Width; x++ {
			covered[base+x] = true
		}
	}
}
