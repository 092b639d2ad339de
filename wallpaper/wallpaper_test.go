package wallpaper

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/32bitkid/chrome/raster"
)

var (
	testDark  = color.NRGBA{0x55, 0x55, 0x55, 0xff}
	testLight = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
)

func TestPatternFromTemplate(t *testing.T) {
	p := PatternFromTemplate(`
X_______
________
________
________
________
________
________
_______X
`)
	if !p.At(0, 0) || !p.At(7, 7) {
		t.Error("set bits missing")
	}
	if p.At(1, 0) || p.At(7, 0) {
		t.Error("clear bits set")
	}
	// Tiling in both directions, including negatives.
	if !p.At(8, 8) || !p.At(-8, -8) || !p.At(-1, -1) {
		t.Error("pattern does not tile")
	}
}

func TestPatternFromTemplatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	PatternFromTemplate("X_X_\n_X_X\n")
}

func TestPatternDraw(t *testing.T) {
	b := raster.New(8, 8)
	DefaultPatterns.Checker.Draw(b.Draw(), b.Rect, testDark, testLight, 0, 0)

	if b.NRGBAAt(0, 0) != testDark {
		t.Errorf("(0,0) = %v", b.NRGBAAt(0, 0))
	}
	if b.NRGBAAt(1, 0) != testLight {
		t.Errorf("(1,0) = %v", b.NRGBAAt(1, 0))
	}

	// A nil background leaves pixels untouched.
	c := raster.New(8, 8)
	DefaultPatterns.Checker.Draw(c.Draw(), c.Rect, testDark, nil, 0, 0)
	if !c.Transparent(1, 0) {
		t.Error("nil background painted")
	}
}

func TestCheckerboardParity(t *testing.T) {
	b := Checkerboard(4, 4, testDark, testLight, nil)
	if b.NRGBAAt(0, 0) != testDark || b.NRGBAAt(1, 1) != testDark {
		t.Error("even parity should be dark")
	}
	if b.NRGBAAt(1, 0) != testLight || b.NRGBAAt(0, 1) != testLight {
		t.Error("odd parity should be light")
	}
}

func TestBorderedBoxWraps(t *testing.T) {
	b := raster.New(8, 8)
	border := color.NRGBA{0x00, 0x00, 0x00, 0xff}
	// The box crosses the right edge; its far border lands at x=1.
	BorderedBox(b, image.Rect(6, 2, 10, 6), border, testDark, testLight)

	if b.NRGBAAt(6, 2) != border {
		t.Errorf("near border corner = %v", b.NRGBAAt(6, 2))
	}
	if b.NRGBAAt(1, 2) != border {
		t.Errorf("wrapped border corner = %v", b.NRGBAAt(1, 2))
	}
	// Interior cells checker by absolute parity.
	if got := b.NRGBAAt(7, 3); got != testDark {
		t.Errorf("interior (7,3) = %v", got)
	}
	if got := b.NRGBAAt(0, 3); got != testLight {
		t.Errorf("wrapped interior (0,3) = %v", got)
	}
}

func TestCrossHatch(t *testing.T) {
	b := raster.New(8, 8)
	fg := color.NRGBA{0x00, 0x00, 0x00, 0xff}
	CrossHatch(b, 4, 1, fg, testLight)

	if b.NRGBAAt(0, 2) != fg || b.NRGBAAt(2, 0) != fg {
		t.Error("hatch lines missing")
	}
	if b.NRGBAAt(2, 2) != testLight {
		t.Errorf("background = %v", b.NRGBAAt(2, 2))
	}
}

func TestDiamondCellSize(t *testing.T) {
	b := Diamond(8, 8, 2, testDark, testLight)
	if b.NRGBAAt(0, 0) == b.NRGBAAt(1, 1) {
		t.Error("diagonal neighbors across a cell edge share a color")
	}
	// The tiling repeats with period 2*size along each axis.
	if b.NRGBAAt(0, 0) != b.NRGBAAt(4, 4) {
		t.Error("diamond tiling does not repeat")
	}
}

func TestDiagGradientRange(t *testing.T) {
	b := DiagGradient(16)
	if b.NRGBAAt(0, 0) != (color.NRGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("top-left = %v", b.NRGBAAt(0, 0))
	}
	if b.NRGBAAt(15, 15) != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("bottom-right = %v", b.NRGBAAt(15, 15))
	}
}

func TestColorizeGrayEndpoints(t *testing.T) {
	src := raster.New(2, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0x00, 0x00, 0x00, 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{0xff, 0xff, 0xff, 0xff})

	c0 := color.NRGBA{0x20, 0x00, 0x40, 0xff}
	c1 := color.NRGBA{0xff, 0xc0, 0x00, 0xff}
	got := ColorizeGray(src, c0, c1)

	if got.NRGBAAt(0, 0) != c0 {
		t.Errorf("black mapped to %v, want %v", got.NRGBAAt(0, 0), c0)
	}
	if got.NRGBAAt(1, 0) != c1 {
		t.Errorf("white mapped to %v, want %v", got.NRGBAAt(1, 0), c1)
	}
}

func TestPmmMapsIntoQuarter(t *testing.T) {
	for _, p := range [][2]float64{{0.1, 0.2}, {0.9, 0.2}, {0.1, 0.8}, {0.9, 0.8}} {
		x, y := Pmm(p[0], p[1])
		if x < 0 || x > 1 || y < 0 || y > 1 {
			t.Fatalf("Pmm(%v) = (%v,%v) outside [0,1]", p, x, y)
		}
	}
	// Mirrored inputs map to the same source point.
	x0, y0 := Pmm(0.25, 0.375)
	x1, y1 := Pmm(0.75, 0.375)
	x2, y2 := Pmm(0.25, 0.625)
	if x0 != x1 || y0 != y1 || x0 != x2 || y0 != y2 {
		t.Error("mirror images of a point map to different source points")
	}
}

func TestP4mFoldsDiagonal(t *testing.T) {
	// Within the quarter, points across the rising diagonal swap
	// coordinates.
	ax, ay := P4m(0.1, 0.2)
	bx, by := P4m(0.2, 0.1)
	if math.Abs(ax-bx) > 1e-12 || math.Abs(ay-by) > 1e-12 {
		t.Errorf("diagonal mirror pair maps to (%v,%v) and (%v,%v)", ax, ay, bx, by)
	}
}

func TestGroupsStayInUnitSquare(t *testing.T) {
	groups := map[string]GroupFunc{
		"Pmm":      Pmm,
		"P4m":      P4m,
		"P4mAlt":   P4mAlt,
		"P3m1":     P3m1,
		"P3m1Alt1": P3m1Alt1,
		"P3m1Alt2": P3m1Alt2,
		"P6m":      P6m,
		"P6mAlt":   P6mAlt,
		"P6mAlt1a": P6mAlt1a,
		"P6mAlt1b": P6mAlt1b,
		"P6mAlt2a": P6mAlt2a,
		"P6mAlt2b": P6mAlt2b,
	}
	for name, g := range groups {
		for i := 0; i < 32; i++ {
			for j := 0; j < 32; j++ {
				x, y := g(float64(i)/32, float64(j)/32)
				if x < 0 || x > 1 || y < 0 || y > 1 {
					t.Fatalf("%s(%d/32,%d/32) = (%v,%v) outside [0,1]", name, i, j, x, y)
				}
			}
		}
	}
}

func TestFromGroupSolidSource(t *testing.T) {
	src := raster.New(8, 8)
	src.Fill(src.Rect, testDark)

	got := FromGroup(16, 12, src, SourceRect{0, 0, 8, 8}, Pmm)
	if got.Rect != image.Rect(0, 0, 16, 12) {
		t.Fatalf("bounds = %v", got.Rect)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if got.NRGBAAt(x, y) != testDark {
				t.Fatalf("(%d,%d) = %v", x, y, got.NRGBAAt(x, y))
			}
		}
	}
}

func TestFromGroupMirrorSymmetry(t *testing.T) {
	src := raster.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x * 31), uint8(y * 31), 0x00, 0xff})
		}
	}

	w, h := 16, 16
	got := FromGroup(w, h, src, SourceRect{0, 0, 8, 8}, Pmm)
	for y := 0; y < h; y++ {
		for x := w/2 + 1; x < w; x++ {
			if got.NRGBAAt(x, y) != got.NRGBAAt(w-x, y) {
				t.Fatalf("no horizontal mirror at (%d,%d)", x, y)
			}
		}
	}
	for x := 0; x < w; x++ {
		for y := h/2 + 1; y < h; y++ {
			if got.NRGBAAt(x, y) != got.NRGBAAt(x, h-y) {
				t.Fatalf("no vertical mirror at (%d,%d)", x, y)
			}
		}
	}
}

func TestSampleAtWrapsAround(t *testing.T) {
	src := raster.New(4, 4)
	src.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	r, g, b := SampleAt(src, 4, 4)
	if r != 0xff || g != 0 || b != 0 {
		t.Errorf("wrapped sample = (%d,%d,%d)", r, g, b)
	}
	r, g, b = SampleAt(src, -4, -4)
	if r != 0xff || g != 0 || b != 0 {
		t.Errorf("negative wrapped sample = (%d,%d,%d)", r, g, b)
	}
}

func TestSampleAtInterpolates(t *testing.T) {
	src := raster.New(2, 1)
	src.SetNRGBA(0, 0, color.NRGBA{0x00, 0x00, 0x00, 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	r, _, _ := SampleAt(src, 0.5, 0)
	if r != 0x7f {
		t.Errorf("midpoint sample = %#02x, want 0x7f", r)
	}
}
