// Package mask encodes and decodes the two-plane AND/XOR bitmap
// representation used by classic icons and cursors, which admits
// opaque, transparent, and screen-inverting pixels but no translucency.
//
// Composing a mask onto a destination is two bitwise passes:
//
//	output = output AND andPlane
//	output = output XOR xorPlane
//
// The AND plane zeroes the destination wherever it is clear (the opaque
// interior) and preserves it wherever it is set. The XOR plane then
// copies color into the zeroed regions, inverts the destination where
// it is white under a set AND bit, and leaves alone the transparent
// regions, where it is black under a set AND bit.
package mask

import (
	"image"
	"image/color"

	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/raster"
)

// Mask is the two-plane representation. And is a packed 1-bpp bitmap
// (set = preserve destination); Xor carries color for opaque pixels,
// black for transparent ones, and white for inverting ones.
type Mask struct {
	Rect image.Rectangle
	And  []byte
	Xor  *raster.Buffer
}

// Encode builds a Mask from a buffer of opaque and transparent pixels.
// inverted, if non-nil, marks pixels (by nonzero alpha) that should
// invert the destination instead of painting; such pixels take
// precedence over the buffer content. Any translucent buffer pixel is a
// FormatUnsupportedError: only 8-bit-per-channel formats carry partial
// alpha, and this is not one of them.
func Encode(src *raster.Buffer, inverted *image.Alpha) (*Mask, error) {
	r := src.Rect
	m := &Mask{
		Rect: r,
		And:  newPlane(r.Dx(), r.Dy()),
		Xor:  raster.NewRect(r),
	}
	stride := planeStride(r.Dx())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px, py := x-r.Min.X, y-r.Min.Y
			if inverted != nil && image.Pt(x, y).In(inverted.Rect) && inverted.AlphaAt(x, y).A != 0 {
				planeSet(m.And, stride, px, py, true)
				m.Xor.SetNRGBA(x, y, color.NRGBA{0xff, 0xff, 0xff, 0xff})
				continue
			}
			c := src.NRGBAAt(x, y)
			switch c.A {
			case 0:
				planeSet(m.And, stride, px, py, true)
				m.Xor.SetNRGBA(x, y, color.NRGBA{0x00, 0x00, 0x00, 0xff})
			case 0xff:
				planeSet(m.And, stride, px, py, false)
				m.Xor.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 0xff})
			default:
				return nil, chrome.FormatUnsupportedError{
					Reason: "translucent pixel in an AND/XOR mask",
				}
			}
		}
	}
	return m, nil
}

// Decode reconstructs the pixel buffer and the inverted-pixel bitmap
// from the two planes. Pixels under a set AND bit must be black
// (transparent) or white (inverted) in the XOR plane; anything else
// violates the encoding invariant.
func (m *Mask) Decode() (*raster.Buffer, *image.Alpha, error) {
	r := m.Rect
	and, err := parsePlane(m.And, r.Dx(), r.Dy())
	if err != nil {
		return nil, nil, err
	}

	out := raster.NewRect(r)
	inv := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := m.Xor.NRGBAAt(x, y)
			if !and[y-r.Min.Y][x-r.Min.X] {
				out.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 0xff})
				continue
			}
			switch {
			case c.R == 0 && c.G == 0 && c.B == 0:
				// transparent; out stays zero
			case c.R == 0xff && c.G == 0xff && c.B == 0xff:
				inv.SetAlpha(x, y, color.Alpha{A: 0xff})
			default:
				return nil, nil, chrome.FormatUnsupportedError{
					Reason: "color data in a transparent mask region",
				}
			}
		}
	}
	return out, inv, nil
}

// Validate checks the encoding invariant without fully decoding: the
// XOR plane must be black or white everywhere the AND plane is set.
func (m *Mask) Validate() error {
	_, _, err := m.Decode()
	return err
}

// Apply composes the mask onto dst with the two bitwise passes,
// offsetting the mask so its top-left corner lands at (at.X, at.Y).
// Opaque mask pixels become opaque in dst; transparent regions leave
// dst untouched; inverting regions flip dst's color channels.
func (m *Mask) Apply(dst *raster.Buffer, at image.Point) error {
	r := m.Rect
	and, err := parsePlane(m.And, r.Dx(), r.Dy())
	if err != nil {
		return err
	}

	offset := at.Sub(r.Min)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx, dy := x+offset.X, y+offset.Y
			if !image.Pt(dx, dy).In(dst.Rect) {
				continue
			}
			d := dst.NRGBAAt(dx, dy)
			if !and[y-r.Min.Y][x-r.Min.X] {
				d = color.NRGBA{A: 0xff}
			}
			c := m.Xor.NRGBAAt(x, y)
			d.R ^= c.R
			d.G ^= c.G
			d.B ^= c.B
			dst.SetNRGBA(dx, dy, d)
		}
	}
	return nil
}
