package wallpaper

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/32bitkid/chrome/dither"
	"github.com/32bitkid/chrome/raster"
)

// RandomBoxes scatters thirty black-bordered boxes with random fill
// colors across b, wrapping at the edges so the result still tiles
// seamlessly. The same *rand.Rand seed always produces the same image.
func RandomBoxes(b *raster.Buffer, rng *rand.Rand) *raster.Buffer {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	black := color.NRGBA{A: 0xff}
	for i := 0; i < 30; i++ {
		x0 := b.Rect.Min.X + rng.Intn(w)
		y0 := b.Rect.Min.Y + rng.Intn(h)
		x1 := x0 + span(rng, w)
		y1 := y0 + span(rng, h)
		fill := color.NRGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 0xff,
		}
		BorderedBox(b, image.Rect(x0, y0, x1, y1), black, fill, fill)
	}
	return b
}

// span picks a box side length in [3, extent*3/4].
func span(rng *rand.Rand, extent int) int {
	hi := extent * 3 / 4
	if hi < 3 {
		hi = 3
	}
	return 3 + rng.Intn(hi-3+1)
}

var randomGroups = []GroupFunc{
	P4m, P4mAlt, P3m1, P6m, P6mAlt,
	P3m1Alt1, P3m1Alt2,
	P6mAlt1a, P6mAlt1b, P6mAlt2a, P6mAlt2b,
	P4m, P4mAlt, Pmm,
}

// RandomWallpaper generates a seamless wallpaper by scattering random
// boxes over a black background, optionally symmetrizing the result
// through a randomly chosen wallpaper group, and reducing it to the
// web-safe palette while keeping the VGA colors intact.
func RandomWallpaper(rng *rand.Rand) (*raster.Buffer, error) {
	w := (128 + rng.Intn(129)) &^ 7
	h := (128 + rng.Intn(129)) &^ 7

	b := raster.New(w, h)
	b.Fill(b.Rect, color.NRGBA{A: 0xff})
	RandomBoxes(b, rng)

	if rng.Intn(2) == 0 {
		w2 := (128 + rng.Intn(129)) &^ 7
		h2 := (128 + rng.Intn(129)) &^ 7
		group := randomGroups[rng.Intn(len(randomGroups))]
		b = FromGroup(w2, h2, b, SourceRect{0, 0, float64(w), float64(h)}, group)
	}

	return dither.WebSafe(b, true)
}
