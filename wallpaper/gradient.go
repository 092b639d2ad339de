package wallpaper

import (
	"image/color"

	"github.com/32bitkid/chrome/raster"
)

// DiagGradient returns a size×size gray ramp running along the
// diagonal, darkest in the top-left corner. Tiled as-is it produces a
// sawtooth; it is meant as input for dithering or colorization.
func DiagGradient(size int) *raster.Buffer {
	b := raster.New(size, size)
	span := 2 * (size - 1)
	if span == 0 {
		span = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8((x + y) * 255 / span)
			b.SetNRGBA(x, y, color.NRGBA{v, v, v, 0xff})
		}
	}
	return b
}

// ColorizeGray maps a grayscale buffer onto the ramp between c0 (at
// black) and c1 (at white), interpolating each channel linearly.
// Transparent cells stay transparent; alpha passes through.
func ColorizeGray(src *raster.Buffer, c0, c1 color.Color) *raster.Buffer {
	n0 := color.NRGBAModel.Convert(c0).(color.NRGBA)
	n1 := color.NRGBAModel.Convert(c1).(color.NRGBA)
	dst := raster.NewRect(src.Rect)
	r := src.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := src.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			t := uint32(299*uint32(px.R)+587*uint32(px.G)+114*uint32(px.B)) / 1000
			lerp := func(a, b uint8) uint8 {
				return uint8((uint32(a)*(255-t) + uint32(b)*t) / 255)
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: lerp(n0.R, n1.R),
				G: lerp(n0.G, n1.G),
				B: lerp(n0.B, n1.B),
				A: px.A,
			})
		}
	}
	return dst
}
