package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	pix "github.com/esimov/pixel2svg"
	"github.com/esimov/pixel2svg/utils"
	"golang.org/x/term"
)

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL ('-' reads the image from stdin)")
	destination = flag.String("out", "", "Destination file or directory (defaults to the source with a .svg extension)")
	squareSize  = flag.Int("squaresize", pix.DefaultSquareSize, "Width and height of a vector square in output units")
	unit        = flag.String("unit", "px", "Unit of measure: px, mm, cm, in, pt")
	overlap     = flag.Bool("overlap", false, "Overlap the vector squares by one output unit")
	combine     = flag.Bool("combine", false, "Combine similar pixels into larger rectangles")
	tolerance   = flag.Float64("tolerance", pix.DefaultTolerance, "Color similarity tolerance, used together with -combine")
	metric      = flag.String("metric", "rgb", "Color distance metric: rgb, lab")
	title       = flag.String("title", "", "Document title")
	desc        = flag.String("desc", "", "Document description")
)

// Supported image files.
var extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func main() {
	flag.Parse()

	u, err := pix.ParseUnit(*unit)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	m, err := pix.ParseMetric(*metric)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	p := &pix.Processor{
		SquareSize:  *squareSize,
		Unit:        u,
		Overlap:     *overlap,
		Combine:     *combine,
		Tolerance:   *tolerance,
		Metric:      m,
		Title:       *title,
		Description: *desc,
	}

	// Read the image from stdin and write the document to stdout when the
	// tool is part of a shell pipeline.
	if *source == "-" || (*source == "" && !term.IsTerminal(int(os.Stdin.Fd()))) {
		if err := pipe(p); err != nil {
			log.Fatalf("Unable to convert the piped image: %v", err)
		}
		return
	}

	if len(*source) == 0 {
		log.Fatal("Usage: pixel2svg -in input.png [-out output.svg]")
	}

	toProcess := make(map[string]string)

	if url := *source; strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		tmp, err := utils.DownloadImage(url)
		if err != nil {
			log.Fatalf("Unable to download the source image: %v", err)
		}
		defer os.Remove(tmp.Name())
		defer tmp.Close()

		out := *destination
		if out == "" {
			name := path.Base(url)
			out = strings.TrimSuffix(name, path.Ext(name)) + ".svg"
		}
		toProcess[tmp.Name()] = out
	} else {
		fs, err := os.Stat(*source)
		if err != nil {
			log.Fatalf("Unable to open source: %v", err)
		}

		switch mode := fs.Mode(); {
		case mode.IsDir():
			// Read source directory.
			files, err := os.ReadDir(*source)
			if err != nil {
				log.Fatalf("Unable to read dir: %v", err)
			}

			output := strings.TrimRight(*source, "/")
			if len(*destination) > 0 {
				dst, err := os.Stat(*destination)
				if err != nil {
					log.Fatalf("Unable to get dir stats: %v", err)
				}
				if dst.Mode().IsRegular() {
					log.Fatal("Please specify a directory as destination!")
				}
				output = strings.TrimRight(*destination, "/")
			}

			// Range over all the image files and save them into the process queue.
			for _, f := range files {
				ext := strings.ToLower(filepath.Ext(f.Name()))
				for _, iex := range extensions {
					if ext == iex {
						name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
						in := strings.TrimRight(*source, "/") + "/" + f.Name()
						toProcess[in] = output + "/" + name + ".svg"
					}
				}
			}

		case mode.IsRegular():
			out := *destination
			if out == "" {
				out = strings.TrimSuffix(*source, filepath.Ext(*source)) + ".svg"
			}
			toProcess[*source] = out
		}
	}

	for in, out := range toProcess {
		convert(p, in, out)
	}
}

// convert runs one conversion and reports the outcome on the terminal.
func convert(p *pix.Processor, in, out string) {
	file, err := os.Open(in)
	if err != nil {
		log.Fatalf("Unable to open source file: %v", err)
	}
	defer file.Close()

	s := utils.NewSpinner()
	s.Start("Generating the vector document...")
	start := time.Now()
	rects, err := p.Process(file, out)
	s.Stop()

	if err != nil {
		fmt.Printf("\n%sError converting image: %s: %s%s\n", utils.ErrorColor, in, err, utils.DefaultColor)
		os.Exit(1)
	}
	fmt.Printf("\nGenerated in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
	fmt.Printf("Total number of %s%d%s rectangles generated\n", utils.SuccessColor, len(rects), utils.DefaultColor)
	fmt.Printf("Saved as: %s %s✓%s\n\n", path.Base(out), utils.SuccessColor, utils.DefaultColor)
}

// pipe converts stdin without any terminal decoration, writing to the
// destination file when one is given and to stdout otherwise.
func pipe(p *pix.Processor) error {
	if len(*destination) > 0 && *destination != "-" {
		_, err := p.Process(os.Stdin, *destination)
		return err
	}
	src, _, err := image.Decode(os.Stdin)
	if err != nil {
		return fmt.Errorf("unable to decode the source image: %w", err)
	}
	grid, rects, err := p.Convert(src)
	if err != nil {
		return err
	}
	return p.Encode(os.Stdout, grid, rects, "svg")
}
