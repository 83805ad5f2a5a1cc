package pixel2svg

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Defaults applied by the command line tool.
const (
	DefaultSquareSize = 40
	DefaultTolerance  = 8.0
)

// Processor : type with the conversion options. The options are constant
// for a whole conversion and threaded explicitly through the pipeline, so
// one Processor can convert any number of images.
type Processor struct {
	SquareSize  int
	Unit        Unit
	Overlap     bool
	Combine     bool
	Tolerance   float64
	Metric      Metric
	Title       string
	Description string
}

// validate rejects a bad configuration before any decode work starts.
func (p *Processor) validate() error {
	if p.SquareSize <= 0 {
		return fmt.Errorf("square size must be positive, got %d", p.SquareSize)
	}
	if p.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", p.Tolerance)
	}
	if p.Unit != "" {
		if _, err := ParseUnit(string(p.Unit)); err != nil {
			return err
		}
	}
	return nil
}

// unit returns the configured unit, defaulting to px.
func (p *Processor) unit() Unit {
	if p.Unit == "" {
		return UnitPx
	}
	return p.Unit
}

// Convert runs the geometry reduction on a decoded image: grid, merge, map.
// It returns the grid together with the mapped rectangle list.
func (p *Processor) Convert(src image.Image) (*Grid, []OutputRect, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	grid := NewGrid(src)
	rects := Merge(grid, p.Combine, p.Tolerance, p.Metric)

	return grid, MapRects(rects, p.SquareSize, p.unit(), p.Overlap), nil
}

// Encode writes the rectangle list to w in the requested format, "svg" or
// "png". Raster output has no physical dimensions, so png requires the px
// unit.
func (p *Processor) Encode(w io.Writer, grid *Grid, rects []OutputRect, format string) error {
	switch format {
	case "png":
		if p.unit() != UnitPx {
			return fmt.Errorf("raster output supports the px unit only, got %s", p.unit())
		}
		img := &Image{}
		return png.Encode(w, img.Draw(grid, rects, p.SquareSize))
	case "svg":
		doc := &SVG{Title: p.Title, Description: p.Description}
		return doc.Draw(w, grid, rects, p.SquareSize, p.unit())
	}
	return fmt.Errorf("unsupported output format: %q", format)
}

// Process : convert the source image and write the destination file. The
// output format follows the destination extension, svg unless the path
// ends in .png. On error no complete output is guaranteed and any partial
// file should be discarded.
func (p *Processor) Process(file io.Reader, output string) ([]OutputRect, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	format := outputFormat(output)
	if format == "png" && p.unit() != UnitPx {
		return nil, fmt.Errorf("raster output supports the px unit only, got %s", p.unit())
	}

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode the source image: %w", err)
	}

	grid, rects, err := p.Convert(src)
	if err != nil {
		return nil, err
	}

	fq, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := p.Encode(fq, grid, rects, format); err != nil {
		fq.Close()
		return nil, fmt.Errorf("unable to write %s: %w", output, err)
	}
	if err := fq.Close(); err != nil {
		return nil, fmt.Errorf("unable to write %s: %w", output, err)
	}
	return rects, nil
}

// outputFormat derives the document format from the destination extension.
func outputFormat(output string) string {
	if strings.EqualFold(filepath.Ext(output), ".png") {
		return "png"
	}
	return "svg"
}
