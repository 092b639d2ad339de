package dither

import (
	"image/color"

	"github.com/32bitkid/chrome/palette"
	"github.com/32bitkid/chrome/raster"
)

type channelError struct {
	r, g, b int32
}

// FloydSteinberg quantizes src against pal with error diffusion in
// raster order, propagating 7/16 of each pixel's quantization error to
// the right neighbor and 3/16, 5/16, 1/16 to the row below. The palette
// must pass palette.Validate. Quantization error is not diffused across
// transparent cells; they stay transparent and drop any error that
// accumulated on them.
func FloydSteinberg(src *raster.Buffer, pal color.Palette, opts ...Options) (*raster.Buffer, error) {
	o := getOptions(opts)
	if err := checkAlpha(src, o); err != nil {
		return nil, err
	}
	if err := palette.Validate(pal); err != nil {
		return nil, err
	}

	r := src.Rect
	w := r.Dx()
	dst := raster.NewRect(r)

	// One slot of padding on each side keeps the diffusion in bounds.
	cur := make([]channelError, w+2)
	next := make([]channelError, w+2)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := x - r.Min.X + 1
			px := src.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}

			cr := clamp255(int32(px.R) + cur[i].r)
			cg := clamp255(int32(px.G) + cur[i].g)
			cb := clamp255(int32(px.B) + cur[i].b)

			idx, err := palette.Nearest(pal, color.NRGBA{uint8(cr), uint8(cg), uint8(cb), 0xff}, o.Metric)
			if err != nil {
				return nil, err
			}
			out := color.NRGBAModel.Convert(pal[idx]).(color.NRGBA)
			out.A = px.A
			dst.SetNRGBA(x, y, out)

			e := channelError{
				r: cr - int32(out.R),
				g: cg - int32(out.G),
				b: cb - int32(out.B),
			}
			diffuse(cur, i+1, e, 7)
			diffuse(next, i-1, e, 3)
			diffuse(next, i, e, 5)
			diffuse(next, i+1, e, 1)
		}
		cur, next = next, cur
		for i := range next {
			next[i] = channelError{}
		}
	}
	return dst, nil
}

func diffuse(row []channelError, i int, e channelError, weight int32) {
	row[i].r += e.r * weight / 16
	row[i].g += e.g * weight / 16
	row[i].b += e.b * weight / 16
}

func clamp255(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
