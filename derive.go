package chrome

import (
	"image/color"
)

// DeriveThresholds configures DeriveSystemColors. Backgrounds with a luma
// below Dark or above Light cannot be shaded in the usual direction and
// get their shadows and highlights folded back toward the representable
// range instead.
type DeriveThresholds struct {
	Dark  float64
	Light float64
}

// DefaultThresholds matches the classic Motif select_color breakpoints.
var DefaultThresholds = DeriveThresholds{Dark: 0.20, Light: 0.93}

// DeriveSystemColors computes a full SystemColorSet from a single
// background color, the way Motif derived its three-dimensional shadow
// colors from the form background. The derivation is a pure function of
// its inputs; alternative strategies can be substituted wholesale by
// constructing a SystemColorSet directly.
func DeriveSystemColors(background color.Color, thresholds DeriveThresholds) SystemColorSet {
	l := Luma(background)

	var face color.RGBA
	{
		r, g, b, _ := background.RGBA()
		face = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	}

	var hilt, sh color.RGBA
	switch {
	case l > thresholds.Light:
		// Too light to brighten further; both shadows go darker.
		hilt = darken(face, 0.10)
		sh = darken(face, 0.35)
	case l < thresholds.Dark:
		// Too dark to darken further; both shadows go lighter.
		hilt = lighten(face, 0.50)
		sh = lighten(face, 0.25)
	default:
		hilt = lighten(face, 0.40)
		sh = darken(face, 0.35)
	}

	frame := color.RGBA{0x00, 0x00, 0x00, 0xff}
	if l < thresholds.Dark {
		frame = color.RGBA{0xff, 0xff, 0xff, 0xff}
	}

	return SystemColorSet{
		Face:           face,
		Highlight:      hilt,
		LightHighlight: rgbMix(face, hilt, 0.5),
		Shadow:         sh,
		DarkShadow:     rgbMix(sh, frame, 0.5),
		WindowFrame:    frame,
		WindowText:     frame,
	}
}
