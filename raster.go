package pixel2svg

import (
	"image"

	"github.com/fogleman/gg"
)

// Image renders a mapped rectangle list back to a raster image, scaled up
// by the square size. Useful to export pixel art as a large PNG without
// resampling blur. Raster output is dimensionless, so it requires the px
// unit.
type Image struct{}

// Draw paints every rectangle onto a fresh canvas and returns the result.
// Overlap margins are clamped to the canvas so trailing edges never spill
// past the document bounds.
func (im *Image) Draw(grid *Grid, rects []OutputRect, squareSize int) image.Image {
	width := grid.Width() * squareSize
	height := grid.Height() * squareSize

	ctx := gg.NewContext(width, height)
	for _, r := range rects {
		w := Min(r.W, width-r.X)
		h := Min(r.H, height-r.Y)

		ctx.Push()
		ctx.DrawRectangle(float64(r.X), float64(r.Y), float64(w), float64(h))
		ctx.SetFillStyle(gg.NewSolidPattern(r.Color))
		ctx.Fill()
		ctx.Pop()
	}
	return ctx.Image()
}
