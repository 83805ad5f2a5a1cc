package pixel2svg

import "image/color"

// Rect is a merged pixel region in grid coordinates. The bounds are
// inclusive, so a single pixel has X0 == X1 and Y0 == Y1. Color holds the
// representative color of the region: the anchor color of its first run.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
	Color  color.NRGBA
}

// Merge reduces the grid to an ordered list of non overlapping rectangles
// covering every non transparent pixel exactly once. With combine disabled
// each pixel becomes its own 1x1 rectangle. With combine enabled, pixels
// within the tolerance are first merged into horizontal runs, then runs
// stacked over an identical column span are fused vertically. The output
// follows row-major discovery order and is deterministic for a given input.
func Merge(grid *Grid, combine bool, tolerance float64, metric Metric) []Rect {
	if !combine {
		return singles(grid)
	}

	rows := make([][]Rect, grid.Height())
	for y := 0; y < grid.Height(); y++ {
		rows[y] = scanRuns(grid, y, tolerance, metric)
	}
	return fuseRuns(rows, tolerance, metric)
}

// singles emits one unit rectangle per non transparent pixel.
func singles(grid *Grid) []Rect {
	var rects []Rect
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.Transparent(x, y) {
				continue
			}
			rects = append(rects, Rect{
				X0: x, Y0: y,
				X1: x, Y1: y,
				Color: grid.ColorAt(x, y),
			})
		}
	}
	return rects
}

// scanRuns splits one row into maximal runs of similar pixels. Every pixel
// of a run is compared against the run's anchor color, the color of the
// pixel which opened the run. The anchor never slides: similarity is not
// transitive and a moving anchor would make the run boundaries depend on
// chains of pairwise matches instead of a single representative.
func scanRuns(grid *Grid, y int, tolerance float64, metric Metric) []Rect {
	var (
		runs   []Rect
		active bool
		anchor color.NRGBA
		start  int
	)

	for x := 0; x < grid.Width(); x++ {
		if grid.Transparent(x, y) {
			if active {
				runs = append(runs, Rect{X0: start, Y0: y, X1: x - 1, Y1: y, Color: anchor})
				active = false
			}
			continue
		}

		c := grid.ColorAt(x, y)
		if !active {
			active = true
			anchor = c
			start = x
			continue
		}
		if !Similar(anchor, c, tolerance, metric) {
			runs = append(runs, Rect{X0: start, Y0: y, X1: x - 1, Y1: y, Color: anchor})
			anchor = c
			start = x
		}
	}
	if active {
		runs = append(runs, Rect{X0: start, Y0: y, X1: grid.Width() - 1, Y1: y, Color: anchor})
	}
	return runs
}

type span struct {
	x0, x1 int
}

// fuseRuns stacks runs of consecutive rows vertically. A run is absorbed
// into the rectangle which ended on the row directly above when both cover
// the same column span and their representative colors are similar. Fusion
// never splits a run, so partial or staggered overlaps stay separate.
func fuseRuns(rows [][]Rect, tolerance float64, metric Metric) []Rect {
	var (
		rects []Rect
		prev  map[span]int
	)

	for y, runs := range rows {
		cur := make(map[span]int, len(runs))
		for _, run := range runs {
			s := span{run.X0, run.X1}
			if i, ok := prev[s]; ok && rects[i].Y1 == y-1 && Similar(rects[i].Color, run.Color, tolerance, metric) {
				rects[i].Y1 = y
				cur[s] = i
				continue
			}
			rects = append(rects, run)
			cur[s] = len(rects) - 1
		}
		prev = cur
	}
	return rects
}
