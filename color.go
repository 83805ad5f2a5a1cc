package pixel2svg

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric selects the color distance formula used by the similarity predicate.
type Metric int

const (
	// MetricRgb measures the euclidean distance over the R, G, B channels.
	MetricRgb Metric = iota
	// MetricLab measures the distance in the perceptually uniform CIE-Lab space.
	MetricLab
)

// ParseMetric converts a metric name to a Metric value.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "rgb":
		return MetricRgb, nil
	case "lab":
		return MetricLab, nil
	}
	return 0, fmt.Errorf("unsupported color metric: %q", name)
}

func (m Metric) String() string {
	if m == MetricLab {
		return "lab"
	}
	return "rgb"
}

// Similar reports whether the distance between two colors does not exceed
// the tolerance. The distance is expressed on the 0-255 channel scale, so a
// tolerance of 0 accepts identical colors only. Alpha is not part of the
// distance; fully transparent pixels never reach the comparator.
// The predicate is reflexive and symmetric but not transitive.
func Similar(a, b color.NRGBA, tolerance float64, metric Metric) bool {
	if a.R == b.R && a.G == b.G && a.B == b.B {
		return true
	}
	ca, cb := toColorful(a), toColorful(b)

	var dist float64
	switch metric {
	case MetricLab:
		dist = ca.DistanceLab(cb)
	default:
		dist = ca.DistanceRgb(cb)
	}
	return dist*255.0 <= tolerance
}

// toColorful widens the 8 bit channels to the unit range, dropping alpha.
func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
