package raster

import (
	"image"
	"image/color"
)

// RectDrawer is the drawing surface the border and pattern primitives
// paint through. Rect fills the half-open span [x0,x1)×[y0,y1) with c.
type RectDrawer interface {
	Rect(x0, y0, x1, y1 int, c color.Color)
}

// Draw returns a RectDrawer that clips to the buffer bounds.
func (b *Buffer) Draw() RectDrawer {
	return clippedRect{b}
}

// WrapDraw returns a RectDrawer that wraps out-of-bounds coordinates
// around the buffer, so that drawing across an edge continues on the
// opposite side. Buffers drawn this way tile seamlessly.
func (b *Buffer) WrapDraw() RectDrawer {
	return wrappedRect{b}
}

type clippedRect struct {
	b *Buffer
}

func (d clippedRect) Rect(x0, y0, x1, y1 int, c color.Color) {
	if c == nil {
		return
	}
	d.b.Fill(image.Rect(x0, y0, x1, y1), c)
}

type wrappedRect struct {
	b *Buffer
}

func (d wrappedRect) Rect(x0, y0, x1, y1 int, c color.Color) {
	if c == nil || x1 <= x0 || y1 <= y0 {
		return
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	r := d.b.Rect
	w, h := r.Dx(), r.Dy()
	for y := y0; y < y1; y++ {
		yp := r.Min.Y + mod(y-r.Min.Y, h)
		for x := x0; x < x1; x++ {
			xp := r.Min.X + mod(x-r.Min.X, w)
			d.b.SetNRGBA(xp, yp, nc)
		}
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
