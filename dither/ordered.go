package dither

import (
	"image/color"

	"github.com/32bitkid/chrome/palette"
	"github.com/32bitkid/chrome/raster"
)

// bayer8 is the 8×8 Bayer ordered dither matrix, thresholds 0..63.
var bayer8 = [64]uint8{
	0, 32, 8, 40, 2, 34, 10, 42,
	48, 16, 56, 24, 50, 18, 58, 26,
	12, 44, 4, 36, 14, 46, 6, 38,
	60, 28, 52, 20, 62, 30, 54, 22,
	3, 35, 11, 43, 1, 33, 9, 41,
	51, 19, 59, 27, 49, 17, 57, 25,
	15, 47, 7, 39, 13, 45, 5, 37,
	63, 31, 55, 23, 61, 29, 53, 21,
}

// Bayer selects between a and b at pixel position (x, y) using the 8×8
// ordered matrix. t in [0,1] is the desired proportion of b: 0 always
// yields a, 1 always yields b, and values in between yield b for t of
// the pixel positions on average.
func Bayer(a, b color.Color, t float64, x, y int) color.Color {
	if float64(bayer8[(y&7)*8+(x&7)]) < t*64 {
		return b
	}
	return a
}

// Checkerboard quantizes src against the half-tone extension of a base
// palette. Each pixel resolves to its nearest extended entry; pixels
// landing on a mixture alternate between the mixture's two base colors
// by (x+y) parity, so neighboring pixels average out to the mixture.
// Every output pixel is a base palette color.
func Checkerboard(src *raster.Buffer, ht *palette.HalfTones, opts ...Options) (*raster.Buffer, error) {
	o := getOptions(opts)
	if err := checkAlpha(src, o); err != nil {
		return nil, err
	}

	dst := raster.NewRect(src.Rect)
	r := src.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := src.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			idx, err := palette.Nearest(ht.Palette, color.NRGBA{px.R, px.G, px.B, 0xff}, o.Metric)
			if err != nil {
				return nil, err
			}
			c1, c2 := ht.Components(idx)
			pick := c1
			if (x+y)&1 != 0 {
				pick = c2
			}
			out := color.NRGBAModel.Convert(ht.Palette[pick]).(color.NRGBA)
			out.A = px.A
			dst.SetNRGBA(x, y, out)
		}
	}
	return dst, nil
}

// WebSafe does an ordered dither of src onto the 216-color "safety
// palette" of colors uniformly spaced in the RGB cube. keepVGA leaves
// untouched the eight VGA palette colors that fall outside the safety
// palette, which matters when the output is shown alongside classic
// widget chrome.
func WebSafe(src *raster.Buffer, keepVGA bool, opts ...Options) (*raster.Buffer, error) {
	o := getOptions(opts)
	if err := checkAlpha(src, o); err != nil {
		return nil, err
	}

	dst := raster.NewRect(src.Rect)
	r := src.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := src.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			if keepVGA && isVGAOnly(px.R, px.G, px.B) {
				dst.SetNRGBA(x, y, px)
				continue
			}
			threshold := uint32(bayer8[(y&7)*8+(x&7)])
			dst.SetNRGBA(x, y, color.NRGBA{
				R: safeChannel(px.R, threshold),
				G: safeChannel(px.G, threshold),
				B: safeChannel(px.B, threshold),
				A: px.A,
			})
		}
	}
	return dst, nil
}

func safeChannel(c uint8, threshold uint32) uint8 {
	v := uint32(c)
	rem := v % 51
	if threshold < rem*64/51 {
		return uint8(v - rem + 51)
	}
	return uint8(v - rem)
}

// isVGAOnly reports colors in the 16-color VGA palette that the safety
// palette does not contain.
func isVGAOnly(r, g, b uint8) bool {
	if r == 0xc0 && g == 0xc0 && b == 0xc0 {
		return true
	}
	if (r == 0x80 || r == 0) && (g == 0x80 || g == 0) && (b == 0x80 || b == 0) {
		// Black and the dark primaries; black is also web-safe but
		// maps to itself, so leaving it alone is harmless.
		return r == 0x80 || g == 0x80 || b == 0x80
	}
	return false
}

// ToGrays dithers src onto a linear ramp of the given number of gray
// levels (at least 2), using per-pixel luma and the ordered matrix.
func ToGrays(src *raster.Buffer, levels int, opts ...Options) (*raster.Buffer, error) {
	o := getOptions(opts)
	if err := checkAlpha(src, o); err != nil {
		return nil, err
	}
	if levels < 2 {
		levels = 2
	}

	dst := raster.NewRect(src.Rect)
	r := src.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := src.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			luma := (299*uint32(px.R) + 587*uint32(px.G) + 114*uint32(px.B)) / 1000
			v := luma * uint32(levels-1)
			step := v / 255
			rem := v % 255
			if uint32(bayer8[(y&7)*8+(x&7)]) < rem*64/255 {
				step++
			}
			g := uint8(step * 255 / uint32(levels-1))
			dst.SetNRGBA(x, y, color.NRGBA{g, g, g, px.A})
		}
	}
	return dst, nil
}
