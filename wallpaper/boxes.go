package wallpaper

import (
	"image"
	"image/color"

	"github.com/32bitkid/chrome/raster"
)

// Checkerboard returns a w×h buffer of alternating dark and light
// pixels keyed by (x+y) parity. hatch, if non-nil, overprints the
// diagonal hatch pattern in that color, giving the classic "50% gray
// plus hatch" desktop background.
func Checkerboard(w, h int, dark, light, hatch color.Color) *raster.Buffer {
	b := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)&1 == 0 {
				b.Set(x, y, dark)
			} else {
				b.Set(x, y, light)
			}
		}
	}
	if hatch != nil {
		DefaultPatterns.DiagBack.Draw(b.WrapDraw(), b.Rect, hatch, nil, 0, 0)
	}
	return b
}

// BorderedBox draws a box filled with a one-pixel checkerboard of two
// colors inside an optional one-pixel border. The box may extend
// outside the buffer; it wraps around, so boxes crossing an edge keep
// the result tileable.
func BorderedBox(b *raster.Buffer, r image.Rectangle, border, color1, color2 color.Color) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	d := b.WrapDraw()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			onEdge := y == r.Min.Y || y == r.Max.Y-1 || x == r.Min.X || x == r.Max.X-1
			switch {
			case border != nil && onEdge:
				d.Rect(x, y, x+1, y+1, border)
			case mod(x, 2) == mod(y, 2):
				d.Rect(x, y, x+1, y+1, color1)
			default:
				d.Rect(x, y, x+1, y+1, color2)
			}
		}
	}
}

// VertHatch fills the buffer with bg and draws vertical fg lines of the
// given thickness every dist pixels.
func VertHatch(b *raster.Buffer, dist, thick int, fg, bg color.Color) {
	d := b.WrapDraw()
	r := b.Rect
	if bg != nil {
		d.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, bg)
	}
	for x := r.Min.X; x < r.Max.X; x += dist {
		d.Rect(x, r.Min.Y, x+thick, r.Max.Y, fg)
	}
}

// HorizHatch fills the buffer with bg and draws horizontal fg lines of
// the given thickness every dist pixels.
func HorizHatch(b *raster.Buffer, dist, thick int, fg, bg color.Color) {
	d := b.WrapDraw()
	r := b.Rect
	if bg != nil {
		d.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, bg)
	}
	for y := r.Min.Y; y < r.Max.Y; y += dist {
		d.Rect(r.Min.X, y, r.Max.X, y+thick, fg)
	}
}

// CrossHatch combines VertHatch and HorizHatch.
func CrossHatch(b *raster.Buffer, dist, thick int, fg, bg color.Color) {
	VertHatch(b, dist, thick, fg, bg)
	HorizHatch(b, dist, thick, fg, nil)
}

// DiagStripe draws one wrapped diagonal stripe of the given thickness
// across the whole buffer. reverse flips the diagonal direction; offset
// shifts the stripe's phase along x.
func DiagStripe(b *raster.Buffer, thick int, reverse bool, fg color.Color, offset int) {
	d := b.WrapDraw()
	r := b.Rect
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		x := offset + (y - r.Min.Y)
		if reverse {
			x = offset + w - (y - r.Min.Y)
		}
		d.Rect(r.Min.X+x, y, r.Min.X+x+thick, y+1, fg)
	}
}

// DiagHatch fills the buffer with bg and draws wrapped diagonal fg
// stripes every dist pixels.
func DiagHatch(b *raster.Buffer, dist, thick int, reverse bool, fg, bg color.Color) {
	r := b.Rect
	if bg != nil {
		b.Fill(r, bg)
	}
	for offset := 0; offset < r.Dx(); offset += dist {
		DiagStripe(b, thick, reverse, fg, offset)
	}
}

// Diamond returns a w×h buffer of a diamond (argyle) tiling: a
// checkerboard rotated 45 degrees with cells of the given size.
func Diamond(w, h, size int, dark, light color.Color) *raster.Buffer {
	b := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (mod(x+y, 2*size)/size+mod(x-y, 2*size)/size)&1 == 0 {
				b.Set(x, y, dark)
			} else {
				b.Set(x, y, light)
			}
		}
	}
	return b
}
