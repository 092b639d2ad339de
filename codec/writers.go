package codec

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/32bitkid/chrome/palette"
	"github.com/32bitkid/chrome/raster"
)

// WritePNG writes img as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteBMP writes img as a Windows bitmap.
func WriteBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// GIF assembles frames into an animated GIF, reducing each frame to
// pal. The frame delay is derived from fps in the GIF's native
// hundredths of a second; transparent source pixels keep the previous
// frame's content.
func GIF(frames []*raster.Buffer, pal color.Palette, fps int) (*gif.GIF, error) {
	if fps <= 0 {
		fps = 20
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}

	var images []*image.Paletted
	var delays []int
	var dispose []byte

	rect := image.Rectangle{}
	for _, f := range frames {
		rect = rect.Union(f.Rect)
	}
	offset := rect.Min
	rect = rect.Sub(rect.Min)

	for _, f := range frames {
		source, mask, err := paletted(f, pal, palette.RGB)
		if err != nil {
			return nil, err
		}

		img := image.NewPaletted(rect, pal)
		draw.DrawMask(
			img,
			f.Rect.Sub(offset),
			source,
			f.Rect.Min,
			mask,
			f.Rect.Min,
			draw.Src,
		)

		images = append(images, img)
		delays = append(delays, delay)
		dispose = append(dispose, gif.DisposalPrevious)
	}

	return &gif.GIF{
		Image:    images,
		Delay:    delays,
		Disposal: dispose,
	}, nil
}

// WriteGIF writes frames as an animated GIF.
func WriteGIF(w io.Writer, frames []*raster.Buffer, pal color.Palette, fps int) error {
	g, err := GIF(frames, pal, fps)
	if err != nil {
		return err
	}
	return gif.EncodeAll(w, g)
}
