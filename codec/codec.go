// Package codec writes pixel buffers in the container formats classic
// desktop assets shipped in: PPM, PNG, BMP, animated GIF, ICO and CUR
// icon files, and uncompressed AVI frame sequences.
package codec

import (
	"image"
	"image/color"

	"github.com/32bitkid/chrome/palette"
	"github.com/32bitkid/chrome/raster"
)

// paletted maps every opaque pixel of b to its nearest entry in pal.
// Transparent pixels take index 0.
func paletted(b *raster.Buffer, pal color.Palette, metric palette.Metric) (*image.Paletted, *image.Alpha, error) {
	dst := image.NewPaletted(b.Rect, pal)
	mask := image.NewAlpha(b.Rect)
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if b.Transparent(x, y) {
				continue
			}
			i, err := palette.Nearest(pal, b.NRGBAAt(x, y), metric)
			if err != nil {
				return nil, nil, err
			}
			dst.SetColorIndex(x, y, uint8(i))
			mask.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return dst, mask, nil
}
