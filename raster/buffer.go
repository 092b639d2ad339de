// Package raster provides the pixel-buffer model shared by the dithering,
// compositing, and mask-codec packages: a 2-D grid of cells that are
// either fully transparent or hold one concrete color.
package raster

import (
	"bytes"
	"image"
	"image/color"
)

// Buffer is a width×height grid of color-or-transparent cells, row-major
// with a top-left origin. A cell with alpha zero is transparent;
// intermediate alphas are permitted only where an 8-bit-per-channel
// output format is in play, and are rejected by the palette-constrained
// and mask codecs.
type Buffer struct {
	*image.NRGBA
}

// New returns a transparent buffer of the given size. Width and height
// must be positive.
func New(w, h int) *Buffer {
	return NewRect(image.Rect(0, 0, w, h))
}

// NewRect returns a transparent buffer covering r, which may have a
// negative origin.
func NewRect(r image.Rectangle) *Buffer {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		panic("raster: buffer must have positive width and height")
	}
	return &Buffer{image.NewNRGBA(r)}
}

// FromImage copies src into a new buffer with the same bounds.
func FromImage(src image.Image) *Buffer {
	b := NewRect(src.Bounds())
	r := src.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Set(x, y, src.At(x, y))
		}
	}
	return b
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	dup := NewRect(b.Rect)
	copy(dup.Pix, b.Pix)
	return dup
}

// Translate returns a view of the same pixels with bounds shifted by
// (dx, dy). The pixel data is copied, not shared.
func (b *Buffer) Translate(dx, dy int) *Buffer {
	dup := b.Clone()
	dup.Rect = dup.Rect.Add(image.Pt(dx, dy))
	return dup
}

// Transparent reports whether the cell at (x, y) is fully transparent.
// Out-of-bounds cells are transparent.
func (b *Buffer) Transparent(x, y int) bool {
	if !image.Pt(x, y).In(b.Rect) {
		return true
	}
	return b.NRGBAAt(x, y).A == 0
}

// Translucent reports whether any cell has an alpha that is neither
// fully opaque nor fully transparent.
func (b *Buffer) Translucent() bool {
	r := b.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := b.PixOffset(r.Min.X, y) + 3
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			if a := b.Pix[i]; a != 0 && a != 0xff {
				return true
			}
		}
	}
	return false
}

// Fill sets every cell inside r (clipped to the buffer) to c.
func (b *Buffer) Fill(r image.Rectangle, c color.Color) {
	r = r.Intersect(b.Rect)
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.SetNRGBA(x, y, nc)
		}
	}
}

// DrawOver composites src over b using the source-over rule for fully
// opaque and fully transparent pixels, and straight alpha otherwise.
func (b *Buffer) DrawOver(src *Buffer) {
	r := src.Rect.Intersect(b.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			switch s.A {
			case 0:
				// leave destination
			case 0xff:
				b.SetNRGBA(x, y, s)
			default:
				d := b.NRGBAAt(x, y)
				b.SetNRGBA(x, y, blendOver(s, d))
			}
		}
	}
}

func blendOver(s, d color.NRGBA) color.NRGBA {
	sa := uint32(s.A)
	da := uint32(d.A)
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		return color.NRGBA{}
	}
	blend := func(sc, dc uint8) uint8 {
		v := (uint32(sc)*sa + uint32(dc)*da*(255-sa)/255) / outA
		return uint8(v)
	}
	return color.NRGBA{
		R: blend(s.R, d.R),
		G: blend(s.G, d.G),
		B: blend(s.B, d.B),
		A: uint8(outA),
	}
}

// Equal reports whether two buffers have identical bounds and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.Rect == other.Rect && bytes.Equal(b.Pix, other.Pix)
}
