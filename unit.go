package pixel2svg

import (
	"fmt"
	"image/color"
)

// Unit is an SVG length unit applied to the document coordinates.
type Unit string

const (
	UnitPx Unit = "px"
	UnitMm Unit = "mm"
	UnitCm Unit = "cm"
	UnitIn Unit = "in"
	UnitPt Unit = "pt"
)

// ParseUnit converts a unit name to a Unit value.
func ParseUnit(name string) (Unit, error) {
	switch u := Unit(name); u {
	case UnitPx, UnitMm, UnitCm, UnitIn, UnitPt:
		return u, nil
	}
	return "", fmt.Errorf("unsupported unit of measure: %q", name)
}

// OutputRect is a rectangle mapped into the output coordinate space,
// expressed in the conversion unit.
type OutputRect struct {
	X, Y  int
	W, H  int
	Unit  Unit
	Color color.NRGBA
}

// MapRect places a grid rectangle into the output space. Each grid cell
// becomes a squareSize x squareSize area. With overlap enabled the width
// and height grow by exactly one output unit on the trailing edges while
// the position stays put, hiding hairline seams between adjacent
// rectangles in renderers that anti-alias edges.
func MapRect(r Rect, squareSize int, unit Unit, overlap bool) OutputRect {
	out := OutputRect{
		X:     r.X0 * squareSize,
		Y:     r.Y0 * squareSize,
		W:     (r.X1 - r.X0 + 1) * squareSize,
		H:     (r.Y1 - r.Y0 + 1) * squareSize,
		Unit:  unit,
		Color: r.Color,
	}
	if overlap {
		out.W++
		out.H++
	}
	return out
}

// MapRects maps a whole rectangle list with conversion-wide settings.
func MapRects(rects []Rect, squareSize int, unit Unit, overlap bool) []OutputRect {
	out := make([]OutputRect, len(rects))
	for i, r := range rects {
		out[i] = MapRect(r, squareSize, unit, overlap)
	}
	return out
}
