// Package chrome renders the widget chrome of traditional (pre-2003)
// desktop environments: beveled buttons and borders, checkerboard-dithered
// faces, AND/XOR-masked icons and cursors, and tileable wallpaper images,
// all constrained to the small fixed color palettes of the era.
//
// Every rendering operation is a pure transformation over in-memory pixel
// buffers. There is no process-wide theme state: the system colors that
// parameterize widget rendering are carried by a SystemColorSet value that
// callers pass into each call.
package chrome

import (
	"image/color"
)

// SystemColorSet holds the named colors that parameterize widget
// rendering, in the manner of a desktop theme. A SystemColorSet is
// configured once per rendering session and read-only thereafter.
type SystemColorSet struct {
	// Face is the button face ("3-D objects") color.
	Face color.RGBA
	// Highlight is the color of edges facing the light source.
	Highlight color.RGBA
	// LightHighlight is the secondary, less intense highlight.
	LightHighlight color.RGBA
	// Shadow is the color of edges facing away from the light source.
	Shadow color.RGBA
	// DarkShadow is the secondary, more intense shadow.
	DarkShadow color.RGBA
	// WindowFrame outlines windows and default buttons.
	WindowFrame color.RGBA
	// WindowText draws text and well borders inside client areas.
	WindowText color.RGBA
}

// Windows95 is the stock color set of 1995-era desktops.
var Windows95 = SystemColorSet{
	Face:           color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
	Highlight:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	LightHighlight: color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
	Shadow:         color.RGBA{0x80, 0x80, 0x80, 0xff},
	DarkShadow:     color.RGBA{0x00, 0x00, 0x00, 0xff},
	WindowFrame:    color.RGBA{0x00, 0x00, 0x00, 0xff},
	WindowText:     color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// Monochrome is a two-color set for displays without grays; beveled
// edges collapse to flat black-on-white outlines.
var Monochrome = SystemColorSet{
	Face:           color.RGBA{0xff, 0xff, 0xff, 0xff},
	Highlight:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	LightHighlight: color.RGBA{0xff, 0xff, 0xff, 0xff},
	Shadow:         color.RGBA{0x00, 0x00, 0x00, 0xff},
	DarkShadow:     color.RGBA{0x00, 0x00, 0x00, 0xff},
	WindowFrame:    color.RGBA{0x00, 0x00, 0x00, 0xff},
	WindowText:     color.RGBA{0x00, 0x00, 0x00, 0xff},
}
