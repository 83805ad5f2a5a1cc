package pixel2svg

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessorValidate(t *testing.T) {
	cases := []struct {
		desc string
		p    Processor
	}{
		{"zero square size", Processor{SquareSize: 0}},
		{"negative square size", Processor{SquareSize: -3}},
		{"negative tolerance", Processor{SquareSize: 40, Tolerance: -1}},
		{"unknown unit", Processor{SquareSize: 40, Unit: "parsec"}},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	for _, c := range cases {
		if _, _, err := c.p.Convert(img); err == nil {
			t.Fatalf("%s: configuration accepted", c.desc)
		}
	}
}

func TestProcessorEncodeSVG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, red)

	p := &Processor{
		SquareSize: 40,
		Unit:       UnitPx,
		Combine:    true,
		Title:      "sprite",
	}
	grid, rects, err := p.Convert(img)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(rects) != 1 {
		t.Fatalf("expected one rectangle, got %d", len(rects))
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf, grid, rects, "svg"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc := buf.String()

	for _, want := range []string{
		`width="80px"`,
		`height="40px"`,
		`<title>sprite</title>`,
		`style="fill:#ff0000"`,
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document misses %q:\n%s", want, doc)
		}
	}
}

func TestProcessorEncodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, blue)

	p := &Processor{SquareSize: 4, Unit: UnitPx}
	grid, rects, err := p.Convert(img)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf, grid, rects, "png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding the raster output: %v", err)
	}
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 4 {
		t.Fatalf("raster output is %v, want 4x4", out.Bounds())
	}

	// Physical units make no sense for raster output.
	p.Unit = UnitMm
	if err := p.Encode(&buf, grid, rects, "png"); err == nil {
		t.Fatal("raster output accepted a physical unit")
	}
}

func TestProcessEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sprite.png")
	out := filepath.Join(dir, "sprite.svg")

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, red)
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 1, blue)

	fq, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fq, img); err != nil {
		t.Fatal(err)
	}
	fq.Close()

	file, err := os.Open(in)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	p := &Processor{SquareSize: 10, Unit: UnitPx, Combine: true}
	rects, err := p.Process(file, out)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(rects) != 2 {
		t.Fatalf("expected two rectangles, got %d", len(rects))
	}

	doc, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading the output document: %v", err)
	}
	if !strings.Contains(string(doc), "<svg") || !strings.Contains(string(doc), "</svg>") {
		t.Fatalf("incomplete document:\n%s", doc)
	}
}

func TestProcessDecodeFailure(t *testing.T) {
	p := &Processor{SquareSize: 10}
	r := strings.NewReader("this is not an image")
	if _, err := p.Process(r, filepath.Join(t.TempDir(), "out.svg")); err == nil {
		t.Fatal("corrupt input accepted")
	}
}

func TestOutputFormat(t *testing.T) {
	for out, want := range map[string]string{
		"sprite.svg": "svg",
		"sprite.png": "png",
		"sprite.PNG": "png",
		"sprite":     "svg",
	} {
		if got := outputFormat(out); got != want {
			t.Fatalf("outputFormat(%q) = %q, want %q", out, got, want)
		}
	}
}
