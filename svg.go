package pixel2svg

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVG writes a mapped rectangle list as an SVG document, one <rect> element
// per rectangle. The document viewport spans the whole grid at square size
// scale and carries the conversion unit on its width and height attributes.
type SVG struct {
	Title       string
	Description string
}

// Draw emits the document to w. The canvas dimensions are derived from the
// grid size, not from the rectangle list, so transparent margins keep their
// place in the output.
func (s *SVG) Draw(w io.Writer, grid *Grid, rects []OutputRect, squareSize int, unit Unit) error {
	bw := bufio.NewWriter(w)
	width := grid.Width() * squareSize
	height := grid.Height() * squareSize

	canvas := svg.New(bw)
	canvas.StartviewUnit(width, height, string(unit), 0, 0, width, height)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	if s.Description != "" {
		canvas.Desc(s.Description)
	}
	for _, r := range rects {
		canvas.Rect(r.X, r.Y, r.W, r.H, fillStyle(r))
	}
	canvas.End()

	return bw.Flush()
}

// fillStyle renders the rectangle color as an inline style. Partially
// transparent source pixels keep their opacity through fill-opacity.
func fillStyle(r OutputRect) string {
	style := fmt.Sprintf("fill:#%02x%02x%02x", r.Color.R, r.Color.G, r.Color.B)
	if r.Color.A < 255 {
		style += fmt.Sprintf(";fill-opacity:%.3f", float64(r.Color.A)/255.0)
	}
	return style
}
