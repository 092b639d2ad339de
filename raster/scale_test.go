package raster

import (
	"image/color"
	"testing"
)

func TestMagnify(t *testing.T) {
	b := New(2, 1)
	b.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	// cell (1, 0) stays transparent

	big := Magnify(b, 3)
	if big.Rect.Dx() != 6 || big.Rect.Dy() != 3 {
		t.Fatalf("unexpected bounds: %v", big.Rect)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := big.NRGBAAt(x, y); got != (color.NRGBA{0xff, 0x00, 0x00, 0xff}) {
				t.Fatalf("cell (%d, %d) = %v", x, y, got)
			}
			if !big.Transparent(x+3, y) {
				t.Fatalf("cell (%d, %d) should be transparent", x+3, y)
			}
		}
	}
}

func TestMagnifyPanicsOnBadFactor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Magnify(New(1, 1), 0)
}

func TestCRTBounds(t *testing.T) {
	b := New(3, 2)
	b.Fill(b.Rect, color.NRGBA{0x80, 0x80, 0x80, 0xff})

	crt := CRT(b)
	if crt.Rect.Dx() != 18 || crt.Rect.Dy() != 12 {
		t.Fatalf("unexpected bounds: %v", crt.Rect)
	}
	if crt.Translucent() {
		t.Error("preview should be fully opaque")
	}
}

func TestCRTScanlinesDarken(t *testing.T) {
	b := New(1, 1)
	b.SetNRGBA(0, 0, color.NRGBA{0xff, 0xff, 0xff, 0xff})

	crt := CRT(b)
	// Row 0 carries the heaviest scan-line falloff, rows 2 and 3 none.
	top := crt.NRGBAAt(0, 0)
	mid := crt.NRGBAAt(0, 2)
	if top.G >= mid.G {
		t.Errorf("scan line did not darken: top %v, middle %v", top, mid)
	}
}

func TestCRTTransparentRendersBlack(t *testing.T) {
	crt := CRT(New(1, 1))
	if got := crt.NRGBAAt(2, 2); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 0xff {
		t.Errorf("transparent cell rendered as %v, want opaque black", got)
	}
}
