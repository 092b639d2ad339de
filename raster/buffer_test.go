package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(0, 4)
}

func TestTranslate(t *testing.T) {
	b := New(2, 2)
	b.SetNRGBA(1, 1, color.NRGBA{0xaa, 0xbb, 0xcc, 0xff})

	moved := b.Translate(3, -1)
	if want := image.Rect(3, -1, 5, 1); moved.Rect != want {
		t.Fatalf("rect = %v, want %v", moved.Rect, want)
	}
	if got := moved.NRGBAAt(4, 0); got != (color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}) {
		t.Errorf("pixel did not move with the buffer: %v", got)
	}

	// The source is unchanged.
	if b.Rect != image.Rect(0, 0, 2, 2) {
		t.Errorf("source rect mutated: %v", b.Rect)
	}
}

func TestDrawOverSkipsTransparent(t *testing.T) {
	dst := New(1, 1)
	dst.SetNRGBA(0, 0, color.NRGBA{0x10, 0x20, 0x30, 0xff})

	src := New(1, 1)
	dst.DrawOver(src)

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("transparent source overwrote destination: %v", got)
	}
}

func TestDrawOverReplacesOpaque(t *testing.T) {
	dst := New(1, 1)
	dst.SetNRGBA(0, 0, color.NRGBA{0x10, 0x20, 0x30, 0xff})

	src := New(1, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	dst.DrawOver(src)

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{0xff, 0x00, 0x00, 0xff}) {
		t.Errorf("got %v", got)
	}
}

func TestTranslucent(t *testing.T) {
	b := New(2, 1)
	b.SetNRGBA(0, 0, color.NRGBA{0xff, 0xff, 0xff, 0xff})
	if b.Translucent() {
		t.Error("opaque and transparent pixels flagged as translucent")
	}
	b.SetNRGBA(1, 0, color.NRGBA{0xff, 0xff, 0xff, 0x80})
	if !b.Translucent() {
		t.Error("partial alpha not detected")
	}
}

func TestEqual(t *testing.T) {
	a := New(2, 2)
	b := New(2, 2)
	a.Fill(a.Rect, color.NRGBA{0x01, 0x02, 0x03, 0xff})
	b.Fill(b.Rect, color.NRGBA{0x01, 0x02, 0x03, 0xff})
	if !a.Equal(b) {
		t.Error("identical buffers compare unequal")
	}
	b.SetNRGBA(1, 1, color.NRGBA{0xff, 0x02, 0x03, 0xff})
	if a.Equal(b) {
		t.Error("differing buffers compare equal")
	}
	if a.Equal(New(3, 2)) {
		t.Error("buffers of different sizes compare equal")
	}
}

func TestClippedDraw(t *testing.T) {
	b := New(4, 4)
	b.Draw().Rect(-2, -2, 2, 2, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	if b.Transparent(0, 0) || b.Transparent(1, 1) {
		t.Error("in-bounds region not painted")
	}
	if !b.Transparent(2, 2) {
		t.Error("painted outside the half-open rectangle")
	}
}

func TestWrapDraw(t *testing.T) {
	b := New(4, 4)
	b.WrapDraw().Rect(3, 3, 5, 5, color.NRGBA{0x00, 0xff, 0x00, 0xff})

	for _, p := range []image.Point{{3, 3}, {0, 0}, {3, 0}, {0, 3}} {
		if b.Transparent(p.X, p.Y) {
			t.Errorf("wraparound missed %v", p)
		}
	}
	if !b.Transparent(1, 1) {
		t.Error("painted outside the wrapped corners")
	}
}
