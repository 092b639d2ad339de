package wallpaper

import (
	"image/color"
	"math"

	"github.com/32bitkid/chrome/raster"
)

// GroupFunc maps a point in the destination image, with both
// coordinates in [0,1], to a point in the source rectangle, also in
// [0,1] per axis. The wallpaper-group functions below implement the
// symmetry groups Pmm, P4m, P3m1, and P6m, the four groups that yield
// seamless tiles from source areas with arbitrary content.
type GroupFunc func(x, y float64) (float64, float64)

// Pmm reflects the upper-left quarter of the image across both axes.
func Pmm(x, y float64) (float64, float64) {
	if x > 0.5 {
		x = 0.5 - (x - 0.5)
	}
	if y > 0.5 {
		y = 0.5 - (y - 0.5)
	}
	return x * 2, y * 2
}

// P4m adds a diagonal reflection to Pmm. The source triangle has its
// right angle at the lower-left corner of the quarter rectangle.
func P4m(x, y float64) (float64, float64) {
	rx, ry := Pmm(x, y)
	if rx+(1-ry) > 1 {
		return ry, rx
	}
	return rx, ry
}

// P4mAlt is P4m with the source triangle's right angle at the
// upper-right corner instead.
func P4mAlt(x, y float64) (float64, float64) {
	rx, ry := Pmm(x, y)
	if ry+(1-rx) < 1 {
		return ry, rx
	}
	return rx, ry
}

type cell struct {
	xarea, yarea int
	left         bool
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func diagFalling(xp, yp float64) (float64, float64) {
	return clamp01(-xp/2 - 3*yp/4 + 1), clamp01(-xp + yp/2 + 1)
}

func diagRising(xp, yp float64) (float64, float64) {
	return clamp01(-xp/2 + 3*yp/4 + 0.5), clamp01(xp + yp/2)
}

// P3m1 tiles a 30-60-90 subdivision of a hexagonal lattice. The source
// triangle is isosceles: its base is the bottom edge of the source
// rectangle and its apex the rectangle's upper midpoint.
func P3m1(x, y float64) (float64, float64) {
	xx := x * 6
	xarea := int(math.Min(5, math.Floor(xx)))
	xpos := xx - float64(xarea)

	yarea := 0
	ypos := y * 2
	if y >= 0.5 {
		yarea = 1
		ypos = (y - 0.5) * 2
	}

	var left bool
	if (xarea+yarea)%2 == 0 {
		left = xpos+ypos < 1
	} else {
		left = xpos+(1-ypos) < 1
	}

	switch (cell{xarea, yarea, left}) {
	case cell{1, 1, false}, cell{4, 0, false}:
		return xpos / 2, ypos
	case cell{2, 1, true}, cell{5, 0, true}:
		return xpos/2 + 0.5, ypos
	case cell{1, 0, false}, cell{4, 1, false}:
		return xpos / 2, 1 - ypos
	case cell{2, 0, true}, cell{5, 1, true}:
		return xpos/2 + 0.5, 1 - ypos
	case cell{0, 1, false}, cell{3, 0, false}:
		return diagFalling(xpos/2, ypos)
	case cell{1, 1, true}, cell{4, 0, true}:
		return diagFalling(xpos/2+0.5, ypos)
	case cell{0, 0, false}, cell{3, 1, false}:
		return diagFalling(xpos/2, 1-ypos)
	case cell{1, 0, true}, cell{4, 1, true}:
		return diagFalling(xpos/2+0.5, 1-ypos)
	case cell{2, 1, false}, cell{5, 0, false}:
		return diagRising(xpos/2, ypos)
	case cell{3, 1, true}, cell{0, 0, true}:
		return diagRising(xpos/2+0.5, ypos)
	case cell{2, 0, false}, cell{5, 1, false}:
		return diagRising(xpos/2, 1-ypos)
	case cell{3, 0, true}, cell{0, 1, true}:
		return diagRising(xpos/2+0.5, 1-ypos)
	}
	return 0, 0
}

// P6m is P3m1 restricted to the left half of its source triangle.
func P6m(x, y float64) (float64, float64) {
	rx, ry := P3m1(x, y)
	if rx > 0.5 {
		return 1 - rx, ry
	}
	return rx, ry
}

// P6mAlt is P3m1 restricted to the right half of its source triangle.
func P6mAlt(x, y float64) (float64, float64) {
	rx, ry := P3m1(x, y)
	if rx < 0.5 {
		return 1 - rx, ry
	}
	return rx, ry
}

// P3m1Alt1 rotates the P3m1 source triangle so its base is the left
// edge of the source rectangle.
func P3m1Alt1(x, y float64) (float64, float64) {
	rx, ry := P3m1(y, 1-x)
	return 1 - ry, rx
}

// P3m1Alt2 rotates the P3m1 source triangle so its base is the right
// edge of the source rectangle.
func P3m1Alt2(x, y float64) (float64, float64) {
	rx, ry := P3m1(y, x)
	return ry, rx
}

// P6mAlt1a is P3m1Alt1 restricted to the upper half of its triangle.
func P6mAlt1a(x, y float64) (float64, float64) {
	rx, ry := P3m1Alt1(x, y)
	if ry > 0.5 {
		return rx, 1 - ry
	}
	return rx, ry
}

// P6mAlt1b is P3m1Alt1 restricted to the lower half of its triangle.
func P6mAlt1b(x, y float64) (float64, float64) {
	rx, ry := P3m1Alt1(x, y)
	if ry < 0.5 {
		return rx, 1 - ry
	}
	return rx, ry
}

// P6mAlt2a is P3m1Alt2 restricted to the upper half of its triangle.
func P6mAlt2a(x, y float64) (float64, float64) {
	rx, ry := P3m1Alt2(x, y)
	if ry > 0.5 {
		return rx, 1 - ry
	}
	return rx, ry
}

// P6mAlt2b is P3m1Alt2 restricted to the lower half of its triangle.
func P6mAlt2b(x, y float64) (float64, float64) {
	rx, ry := P3m1Alt2(x, y)
	if ry < 0.5 {
		return rx, 1 - ry
	}
	return rx, ry
}

// SampleAt returns the bilinear interpolation of src at a fractional
// point, wrapping out-of-bounds coordinates around as though src tiled
// the plane.
func SampleAt(src *raster.Buffer, x, y float64) (r, g, b uint8) {
	w := float64(src.Rect.Dx())
	h := float64(src.Rect.Dy())
	x = math.Mod(x, w)
	if x < 0 {
		x += w
	}
	y = math.Mod(y, h)
	if y < 0 {
		y += h
	}

	xf := math.Floor(x)
	yf := math.Floor(y)
	xi := src.Rect.Min.X + int(xf)
	yi := src.Rect.Min.Y + int(yf)
	xi1 := src.Rect.Min.X + (int(xf)+1)%src.Rect.Dx()
	yi1 := src.Rect.Min.Y + (int(yf)+1)%src.Rect.Dy()

	c00 := src.NRGBAAt(xi, yi)
	c01 := src.NRGBAAt(xi, yi1)
	c10 := src.NRGBAAt(xi1, yi)
	c11 := src.NRGBAAt(xi1, yi1)

	tx := x - xf
	ty := y - yf
	bilerp := func(a, b, c, d uint8) uint8 {
		top := float64(a) + (float64(c)-float64(a))*tx
		bot := float64(b) + (float64(d)-float64(b))*tx
		return uint8(math.Max(0, math.Min(255, math.Floor(top+(bot-top)*ty))))
	}
	return bilerp(c00.R, c01.R, c10.R, c11.R),
		bilerp(c00.G, c01.G, c10.G, c11.G),
		bilerp(c00.B, c01.B, c10.B, c11.B)
}

// SourceRect is a fractional-coordinate rectangle into a source image,
// allowed to wrap around its edges.
type SourceRect struct {
	X0, Y0, X1, Y1 float64
}

// FromGroup builds a w×h image by mapping every destination point
// through group into the source rectangle and sampling src bilinearly
// with wraparound. With any of the group functions in this package the
// result tiles seamlessly regardless of the source content.
func FromGroup(w, h int, src *raster.Buffer, rect SourceRect, group GroupFunc) *raster.Buffer {
	dst := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := group(float64(x)/float64(w), float64(y)/float64(h))
			sx := rect.X0 + (rect.X1-rect.X0)*px
			sy := rect.Y0 + (rect.Y1-rect.Y0)*py
			r, g, b := SampleAt(src, sx, sy)
			dst.SetNRGBA(x, y, color.NRGBA{r, g, b, 0xff})
		}
	}
	return dst
}
