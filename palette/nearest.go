package palette

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/chrome"
)

// Metric selects the distance function used by Nearest.
type Metric uint8

const (
	// Luma weights the squared channel differences by the classic
	// 299/587/114 brightness coefficients. This is the default.
	Luma Metric = iota
	// RGB is the unweighted Euclidean distance in RGB space.
	RGB
	// Lab is the Euclidean distance in CIE-Lab space.
	Lab
)

func (m Metric) String() string {
	switch m {
	case Luma:
		return "Metric(Luma)"
	case RGB:
		return "Metric(RGB)"
	case Lab:
		return "Metric(Lab)"
	}
	return "Metric(UNKNOWN)"
}

// Nearest returns the index of the palette entry closest to c under the
// given metric. Exact matches win outright; ties resolve to the lowest
// palette index. An empty palette is an InvalidPaletteError.
func Nearest(p color.Palette, c color.Color, metric Metric) (int, error) {
	if len(p) == 0 {
		return 0, chrome.InvalidPaletteError{Reason: "empty"}
	}

	dist := rgbDistance
	switch metric {
	case Luma:
		dist = lumaDistance
	case Lab:
		dist = labDistance
	}

	best, bestDist := 0, dist(p[0], c)
	for i := 1; i < len(p) && bestDist > 0; i++ {
		if d := dist(p[i], c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

func rgbDistance(a, b color.Color) float64 {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	dr := float64(int64(ar) - int64(br))
	dg := float64(int64(ag) - int64(bg))
	db := float64(int64(ab) - int64(bb))
	return dr*dr + dg*dg + db*db
}

func lumaDistance(a, b color.Color) float64 {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	dr := float64(int64(ar) - int64(br))
	dg := float64(int64(ag) - int64(bg))
	db := float64(int64(ab) - int64(bb))
	return (299*dr*dr + 587*dg*dg + 114*db*db) / 1000
}

func labDistance(a, b color.Color) float64 {
	ca, _ := clr.MakeColor(a)
	cb, _ := clr.MakeColor(b)
	d := ca.DistanceLab(cb)
	return d * d
}
