/*
Package pixel2svg converts pixel art images to vector graphics, drawing every
pixel, or every group of similarly colored pixels, as an axis-aligned
rectangle. The result scales to any size without blur, which makes it suited
for print production from small bitmap sources.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ pixel2svg --help

The conversion pipeline is exposed through the Processor type. Example to
convert an image file to an SVG document:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/pixel2svg"
	)

	func main() {
		p := &pixel2svg.Processor{
			SquareSize: 40,
			Unit:       pixel2svg.UnitPx,
			Combine:    true,
			Tolerance:  8,
		}

		file, err := os.Open("sprite.png")
		if err != nil {
			fmt.Printf("Error opening the source image: %s", err.Error())
			return
		}
		defer file.Close()

		_, err = p.Process(file, "sprite.svg")
		if err != nil {
			fmt.Printf("Error on the conversion process: %s", err.Error())
		}
	}

The geometry reduction can also be run directly on a decoded image, leaving
the document output to the caller:

	grid, rects, err := p.Convert(img)
	if err != nil {
		// ...
	}
	err = p.Encode(os.Stdout, grid, rects, "svg")
*/
package pixel2svg
