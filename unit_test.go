package pixel2svg

import (
	"image/color"
	"testing"
)

func TestParseUnit(t *testing.T) {
	for _, name := range []string{"px", "mm", "cm", "in", "pt"} {
		u, err := ParseUnit(name)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", name, err)
		}
		if string(u) != name {
			t.Fatalf("ParseUnit(%q) = %q", name, u)
		}
	}
	for _, name := range []string{"", "furlong", "PX", "em"} {
		if _, err := ParseUnit(name); err == nil {
			t.Fatalf("ParseUnit(%q) accepted an unsupported unit", name)
		}
	}
}

func TestMapRect(t *testing.T) {
	c := color.NRGBA{G: 128, A: 255}
	r := Rect{X0: 1, Y0: 2, X1: 3, Y1: 2, Color: c}

	out := MapRect(r, 10, UnitMm, false)
	want := OutputRect{X: 10, Y: 20, W: 30, H: 10, Unit: UnitMm, Color: c}
	if out != want {
		t.Fatalf("got %+v, want %+v", out, want)
	}

	// Mapping has no hidden state.
	if again := MapRect(r, 10, UnitMm, false); again != out {
		t.Fatalf("repeated mapping disagrees: %+v vs %+v", again, out)
	}
}

func TestMapRectOverlap(t *testing.T) {
	r := Rect{X0: 2, Y0: 1, X1: 2, Y1: 4, Color: color.NRGBA{R: 9, A: 255}}

	plain := MapRect(r, 40, UnitPx, false)
	grown := MapRect(r, 40, UnitPx, true)

	if grown.X != plain.X || grown.Y != plain.Y {
		t.Fatalf("overlap moved the rectangle: %+v vs %+v", grown, plain)
	}
	// The margin is one output unit, independent of the square size.
	if grown.W != plain.W+1 || grown.H != plain.H+1 {
		t.Fatalf("overlap margin is not one unit: %+v vs %+v", grown, plain)
	}
}

func TestMapRects(t *testing.T) {
	rects := []Rect{
		{X0: 0, Y0: 0, X1: 0, Y1: 0, Color: red},
		{X0: 1, Y0: 0, X1: 1, Y1: 0, Color: blue},
	}
	out := MapRects(rects, 5, UnitCm, false)
	if len(out) != len(rects) {
		t.Fatalf("mapped %d rectangles out of %d", len(out), len(rects))
	}
	if out[1].X != 5 || out[1].Unit != UnitCm {
		t.Fatalf("unexpected mapping: %+v", out[1])
	}
}
