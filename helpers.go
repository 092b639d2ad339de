package chrome

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

func rgbMix(c1, c2 color.Color, t float64) color.RGBA {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	var mixed clr.Color
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		mixed = clr1.BlendRgb(clr2, t).Clamped()
	} else {
		mixed = clr1.BlendLab(clr2, t).Clamped()
	}
	r, g, b := mixed.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

func lighten(src color.Color, p float64) color.RGBA {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	r, g, b := clr.Hcl(h, c, l+p).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

func darken(src color.Color, p float64) color.RGBA {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	r, g, b := clr.Hcl(h, c, l-p).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Luma returns the perceived brightness of c in [0,1], using the same
// 299/587/114 weighting that drives palette distance and color derivation.
func Luma(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return float64(299*r+587*g+114*b) / (1000 * 0xffff)
}
