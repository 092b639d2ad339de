package raster

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Magnify returns b scaled up by the integer factor n with
// nearest-neighbor sampling. Assets in this package are drawn at native
// desktop resolutions of a handful of pixels; magnification is how they
// are inspected. Transparency is preserved cell for cell.
func Magnify(b *Buffer, n int) *Buffer {
	if n < 1 {
		panic("raster: magnification factor must be positive")
	}
	dst := New(b.Rect.Dx()*n, b.Rect.Dy()*n)
	for sy, dy := b.Rect.Min.Y, 0; sy < b.Rect.Max.Y; sy, dy = sy+1, dy+n {
		for sx, dx := b.Rect.Min.X, 0; sx < b.Rect.Max.X; sx, dx = sx+1, dx+n {
			c := b.NRGBAAt(sx, sy)
			for i := 0; i < n*n; i++ {
				dst.SetNRGBA(dx+i%n, dy+i/n, c)
			}
		}
	}
	return dst
}

var (
	maskRed   = color.NRGBA{R: 0xff, G: 0x99, B: 0x99, A: 0xff}
	maskGreen = color.NRGBA{R: 0x99, G: 0xff, B: 0x99, A: 0xff}
	maskBlue  = color.NRGBA{R: 0x99, G: 0x99, B: 0xff, A: 0xff}
)

// CRT returns a six-times magnified preview of b with horizontal
// phosphor bleed, scan lines, and an aperture-grille shadow mask,
// approximating the tube displays these assets were drawn for.
// Transparent cells render as black.
func CRT(b *Buffer) *Buffer {
	dst := New(b.Rect.Dx()*6, b.Rect.Dy()*6)
	for sy, dy := b.Rect.Min.Y, 0; sy < b.Rect.Max.Y; sy, dy = sy+1, dy+6 {
		for sx, dx := b.Rect.Min.X, 0; sx < b.Rect.Max.X; sx, dx = sx+1, dx+6 {
			lc := opaqueAt(b, sx-1, sy)
			c := opaqueAt(b, sx, sy)
			rc := opaqueAt(b, sx+1, sy)
			for i := 0; i < 36; i++ {
				ix, iy := i%6, i/6
				co := c

				// bleed from the neighboring cell
				switch ix {
				case 0:
					co = crtMix(lc, c, 3.0/6.0)
				case 1:
					co = crtMix(lc, c, 4.0/6.0)
				case 2:
					co = crtMix(lc, c, 5.0/6.0)
				case 4:
					co = crtMix(c, rc, 1.0/6.0)
				case 5:
					co = crtMix(c, rc, 2.0/6.0)
				}

				// scan lines
				switch iy {
				case 0:
					co = crtDarken(co, 0.7)
				case 1:
					co = crtDarken(co, 0.2)
				case 4:
					co = crtDarken(co, 0.1)
				case 5:
					co = crtDarken(co, 0.4)
				}

				// shadow mask, offset every other line
				switch iy % 2 {
				case 0:
					switch ix {
					case 0, 1:
						co = crtMul(co, maskRed)
					case 2, 3:
						co = crtMul(co, maskGreen)
					case 4, 5:
						co = crtMul(co, maskBlue)
					}
				case 1:
					switch ix {
					case 3, 4:
						co = crtMul(co, maskRed)
					case 0, 5:
						co = crtMul(co, maskGreen)
					case 1, 2:
						co = crtMul(co, maskBlue)
					}
				}

				dst.SetNRGBA(dx+ix, dy+iy, co)
			}
		}
	}
	return dst
}

// opaqueAt reads the cell at (x, y) flattened against black. Reads past
// the edge clamp to the nearest cell.
func opaqueAt(b *Buffer, x, y int) color.NRGBA {
	if x < b.Rect.Min.X {
		x = b.Rect.Min.X
	}
	if x >= b.Rect.Max.X {
		x = b.Rect.Max.X - 1
	}
	if y < b.Rect.Min.Y {
		y = b.Rect.Min.Y
	}
	if y >= b.Rect.Max.Y {
		y = b.Rect.Max.Y - 1
	}
	c := b.NRGBAAt(x, y)
	if c.A == 0 {
		return color.NRGBA{A: 0xff}
	}
	c.A = 0xff
	return c
}

func crtMix(c1, c2 color.NRGBA, t float64) color.NRGBA {
	a, _ := clr.MakeColor(c1)
	b, _ := clr.MakeColor(c2)
	m := a.BlendRgb(b, t).Clamped()
	r, g, bl := m.RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 0xff}
}

func crtDarken(c color.NRGBA, p float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * (1 - p)),
		G: uint8(float64(c.G) * (1 - p)),
		B: uint8(float64(c.B) * (1 - p)),
		A: 0xff,
	}
}

func crtMul(a, b color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint32(a.R) * uint32(b.R) / 0xff),
		G: uint8(uint32(a.G) * uint32(b.G) / 0xff),
		B: uint8(uint32(a.B) * uint32(b.B) / 0xff),
		A: 0xff,
	}
}
