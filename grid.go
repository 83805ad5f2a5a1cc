package pixel2svg

import (
	"image"
	"image/color"

	"golang.org/x/exp/constraints"
)

// Grid is an immutable view over the decoded pixel data of a source image.
// Coordinates are 0-indexed, x increasing rightward and y increasing downward.
type Grid struct {
	img    *image.NRGBA
	width  int
	height int
}

// NewGrid normalizes the source image to NRGBA and wraps it into a Grid.
func NewGrid(src image.Image) *Grid {
	img := ImgToNRGBA(src)
	return &Grid{
		img:    img,
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
	}
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *Grid) Height() int {
	return g.height
}

// ColorAt returns the non-premultiplied color of the pixel at (x, y).
func (g *Grid) ColorAt(x, y int) color.NRGBA {
	i := g.img.PixOffset(x, y)
	return color.NRGBA{
		R: g.img.Pix[i+0],
		G: g.img.Pix[i+1],
		B: g.img.Pix[i+2],
		A: g.img.Pix[i+3],
	}
}

// Transparent reports whether the pixel at (x, y) is fully transparent.
func (g *Grid) Transparent(x, y int) bool {
	return g.img.Pix[g.img.PixOffset(x, y)+3] == 0
}

// ImgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func ImgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	case *image.Gray:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := src.Pix[si]
				dst.Pix[di+0] = c
				dst.Pix[di+1] = c
				dst.Pix[di+2] = c
				dst.Pix[di+3] = 0xff
				di += 4
				si++
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// Min returns the smallest value between two numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}
