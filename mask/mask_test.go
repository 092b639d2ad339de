package mask

import (
	"image"
	"image/color"
	"testing"

	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/raster"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := raster.New(3, 2)
	src.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	src.SetNRGBA(2, 1, color.NRGBA{0x00, 0x00, 0xff, 0xff})

	m, err := Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, inv, err := m.Decode()
	if err != nil {
		t.Fatal(err)
	}

	if !got.Equal(src) {
		t.Error("decode did not reproduce the source buffer")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if inv.AlphaAt(x, y).A != 0 {
				t.Errorf("spurious inverted pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestEncodeInverted(t *testing.T) {
	src := raster.New(2, 1)
	inverted := image.NewAlpha(src.Rect)
	inverted.SetAlpha(1, 0, color.Alpha{A: 0xff})

	m, err := Encode(src, inverted)
	if err != nil {
		t.Fatal(err)
	}

	// Inverting pixels carry a set AND bit and a white XOR pixel.
	if m.Xor.NRGBAAt(1, 0) != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("XOR pixel = %v, want white", m.Xor.NRGBAAt(1, 0))
	}

	_, inv, err := m.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if inv.AlphaAt(1, 0).A == 0 {
		t.Error("inverted pixel lost in round trip")
	}
	if inv.AlphaAt(0, 0).A != 0 {
		t.Error("transparent pixel decoded as inverted")
	}
}

func TestEncodeRejectsTranslucency(t *testing.T) {
	src := raster.New(1, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0xff, 0xff, 0xff, 0x80})

	_, err := Encode(src, nil)
	if _, ok := err.(chrome.FormatUnsupportedError); !ok {
		t.Errorf("expected FormatUnsupportedError, got %v", err)
	}
}

func TestValidateCatchesCorruptXor(t *testing.T) {
	src := raster.New(2, 1)
	m, err := Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Color under a set AND bit violates the encoding.
	m.Xor.SetNRGBA(0, 0, color.NRGBA{0x12, 0x34, 0x56, 0xff})
	if m.Validate() == nil {
		t.Error("corrupt mask validated")
	}
}

func TestApplyComposites(t *testing.T) {
	src := raster.New(2, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0x12, 0x34, 0x56, 0xff})
	inverted := image.NewAlpha(src.Rect)
	inverted.SetAlpha(1, 0, color.Alpha{A: 0xff})

	m, err := Encode(src, inverted)
	if err != nil {
		t.Fatal(err)
	}

	dst := raster.New(2, 1)
	dst.Fill(dst.Rect, color.NRGBA{0xf0, 0x0f, 0xff, 0xff})
	if err := m.Apply(dst, image.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}

	// Opaque mask pixel replaces the destination.
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{0x12, 0x34, 0x56, 0xff}) {
		t.Errorf("opaque pixel = %v", got)
	}
	// Inverting mask pixel flips the destination channels.
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{0x0f, 0xf0, 0x00, 0xff}) {
		t.Errorf("inverted pixel = %v", got)
	}
}

func TestApplyTransparentLeavesDestination(t *testing.T) {
	src := raster.New(1, 1)
	m, err := Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	dst := raster.New(1, 1)
	dst.Fill(dst.Rect, color.NRGBA{0xaa, 0xbb, 0xcc, 0xff})
	if err := m.Apply(dst, image.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}) {
		t.Errorf("transparent mask region changed the destination: %v", got)
	}
}

func TestApplyOffset(t *testing.T) {
	src := raster.New(1, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	m, err := Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	dst := raster.New(4, 4)
	if err := m.Apply(dst, image.Pt(2, 3)); err != nil {
		t.Fatal(err)
	}
	if got := dst.NRGBAAt(2, 3); got != (color.NRGBA{0xff, 0x00, 0x00, 0xff}) {
		t.Errorf("offset pixel = %v", got)
	}
	if !dst.Transparent(0, 0) {
		t.Error("untouched region painted")
	}
}

func TestNewCursorClampsHotspot(t *testing.T) {
	src := raster.New(4, 4)
	m, err := Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	c := NewCursor(m, -3, 9)
	if c.X != 0 || c.Y != 3 {
		t.Errorf("hot spot = (%d,%d), want (0,3)", c.X, c.Y)
	}
	if got := c.Hotspot(); got != image.Pt(0, 3) {
		t.Errorf("Hotspot() = %v", got)
	}
}

func TestCursorString(t *testing.T) {
	src := raster.New(2, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0x00, 0x00, 0x00, 0xff})
	inverted := image.NewAlpha(src.Rect)
	inverted.SetAlpha(1, 0, color.Alpha{A: 0xff})

	m, err := Encode(src, inverted)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := NewCursor(m, 0, 0).String(), "█▒\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPlaneRowPadding(t *testing.T) {
	// A 33-pixel-wide mask needs two 32-bit words per row.
	src := raster.New(33, 2)
	src.Fill(src.Rect, color.NRGBA{0xff, 0xff, 0xff, 0xff})

	m, err := Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.And) != 8*2 {
		t.Fatalf("AND plane is %d bytes, want 16", len(m.And))
	}

	got, _, err := m.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(src) {
		t.Error("padded plane did not round trip")
	}
}
