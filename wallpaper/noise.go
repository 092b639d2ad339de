package wallpaper

import (
	"image/color"
	"math/rand"

	"github.com/32bitkid/chrome/raster"
)

// noiseLevels is the gray ramp sampled per cell: mostly light gray
// with occasional black, white, and medium gray speckles.
var noiseLevels = [...]uint8{0, 255, 192, 192, 192, 192, 192, 192, 128}

// Noise fills a w×h buffer with speckled gray noise, one level from a
// fixed nine-entry ramp per cell. The same *rand.Rand seed always
// produces the same texture.
func Noise(w, h int, rng *rand.Rand) *raster.Buffer {
	b := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := noiseLevels[rng.Intn(len(noiseLevels))]
			b.SetNRGBA(x, y, color.NRGBA{v, v, v, 0xff})
		}
	}
	return b
}

// WhiteNoise fills a w×h buffer with uniform gray noise, every level
// equally likely.
func WhiteNoise(w, h int, rng *rand.Rand) *raster.Buffer {
	b := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(rng.Intn(256))
			b.SetNRGBA(x, y, color.NRGBA{v, v, v, 0xff})
		}
	}
	return b
}

// brushTaps is the length of the horizontal box blur that streaks the
// noise into brush strokes.
const brushTaps = 50

// BrushedMetal renders a w×h brushed-metal texture: speckled gray
// noise smeared horizontally by a wraparound box blur, so the result
// tiles seamlessly along the x axis.
func BrushedMetal(w, h int, rng *rand.Rand) *raster.Buffer {
	b := raster.New(w, h)
	row := make([]int, w)
	for y := 0; y < h; y++ {
		for x := range row {
			row[x] = int(noiseLevels[rng.Intn(len(noiseLevels))])
		}
		for x := 0; x < w; x++ {
			sum := 0
			for k := 0; k < brushTaps; k++ {
				i := (x - k) % w
				if i < 0 {
					i += w
				}
				sum += row[i]
			}
			v := uint8(sum / brushTaps)
			b.SetNRGBA(x, y, color.NRGBA{v, v, v, 0xff})
		}
	}
	return b
}
