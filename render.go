package pix2svg

import (
	"image"
	"image/draw"
)

// RenderRects rasterizes a rectangle sequence at unit scale into a
// straight-alpha image. Covered cells receive their exact rectangle color;
// untouched cells stay fully transparent. Rendering a cover over its source
// grid dimensions reproduces every foreground pixel, which makes this the
// verification counterpart of EmitSVG and the source of the CLI preview.
func RenderRects(rects []Rect, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for _, r := range rects {
		draw.Draw(out,
			image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height),
			image.NewUniform(r.Color.NRGBA()),
			image.Point{},
			draw.Src)
	}
	return out
}
