package widget

import (
	"image"
	"image/color"

	"github.com/32bitkid/chrome/palette"
	"github.com/32bitkid/chrome/raster"
)

// FaceStyle selects how a mixed-value face is rendered.
type FaceStyle uint8

const (
	// FaceChecker alternates face and highlight one pixel at a time,
	// keyed by (x+y) parity.
	FaceChecker FaceStyle = iota
	// FaceMix fills with the solid half-and-half mixture of face and
	// highlight, for displays with enough colors to show it directly.
	FaceMix
)

// UnavailableStyle selects how an unavailable (grayed) label is rendered.
type UnavailableStyle uint8

const (
	UnavailableEmbossed UnavailableStyle = iota
	UnavailableFaded
	UnavailableChecker
)

// Monochrome recolors every non-transparent label pixel to c,
// preserving per-pixel alpha.
func Monochrome(label *raster.Buffer, c color.Color) *raster.Buffer {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	dst := raster.NewRect(label.Rect)
	r := label.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := label.NRGBAAt(x, y).A
			if a == 0 {
				continue
			}
			dst.SetNRGBA(x, y, color.NRGBA{nc.R, nc.G, nc.B, a})
		}
	}
	return dst
}

// Embossed renders the label twice, once entirely in the highlight
// color in place and once entirely in the shadow color offset one pixel
// up and left, compositing the shadow layer over the highlight layer.
// Each layer keeps its own alpha, so both show through the other's
// transparent regions. The result covers the union of the two layers,
// extending the label bounds by one pixel toward the top-left.
func Embossed(label *raster.Buffer, highlight, shadow color.Color) *raster.Buffer {
	hiLayer := Monochrome(label, highlight)
	shLayer := Monochrome(label, shadow).Translate(-1, -1)

	dst := raster.NewRect(hiLayer.Rect.Union(shLayer.Rect))
	dst.DrawOver(hiLayer)
	dst.DrawOver(shLayer)
	return dst
}

// Faded halves the opacity of every label pixel. The result is only
// valid for 8-bit-per-channel targets.
func Faded(label *raster.Buffer) *raster.Buffer {
	dst := raster.NewRect(label.Rect)
	r := label.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := label.NRGBAAt(x, y)
			px.A /= 2
			dst.SetNRGBA(x, y, px)
		}
	}
	return dst
}

// CheckerMasked forces every other label pixel, by (x+y) parity, to
// fully transparent, thinning the label without introducing new colors.
func CheckerMasked(label *raster.Buffer) *raster.Buffer {
	dst := raster.NewRect(label.Rect)
	r := label.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x+y)&1 != 0 {
				continue
			}
			dst.SetNRGBA(x, y, label.NRGBAAt(x, y))
		}
	}
	return dst
}

// MixedFill paints the mixed-value face appearance over r: either a
// one-pixel checkerboard of face and highlight keyed by (x+y) parity,
// or the solid half-and-half mixture of the two.
func MixedFill(dst *raster.Buffer, r image.Rectangle, face, highlight color.Color, style FaceStyle) {
	if style == FaceMix {
		dst.Fill(r, palette.Mix(face, highlight))
		return
	}
	r = r.Intersect(dst.Rect)
	fc := color.NRGBAModel.Convert(face).(color.NRGBA)
	hc := color.NRGBAModel.Convert(highlight).(color.NRGBA)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x+y)&1 == 0 {
				dst.SetNRGBA(x, y, fc)
			} else {
				dst.SetNRGBA(x, y, hc)
			}
		}
	}
}
