// Package palette defines the fixed color palettes of classic desktop
// graphics hardware and the quantization primitives that map arbitrary
// colors onto them.
package palette

import (
	"image/color"

	"github.com/32bitkid/chrome"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

// Default holds the enumerable fixed palettes. VGA16 is the 16-color
// palette of classic Windows desktops; CGA16 the canonical RGBI palette
// (with the brown variant of color 6); EGA64 the full EGA gamut;
// WebSafe216 the 6-level "safety palette"; Gray16 and Gray256 linear
// gray ramps; Mono2 black and white.
var Default = struct {
	VGA16      color.Palette
	CGA16      color.Palette
	EGA64      color.Palette
	WebSafe216 color.Palette
	Gray16     color.Palette
	Gray256    color.Palette
	Mono2      color.Palette
}{
	VGA16: color.Palette{
		rgb(0x00, 0x00, 0x00),
		rgb(0x80, 0x80, 0x80),
		rgb(0xc0, 0xc0, 0xc0),
		rgb(0xff, 0x00, 0x00),
		rgb(0x80, 0x00, 0x00),
		rgb(0x00, 0xff, 0x00),
		rgb(0x00, 0x80, 0x00),
		rgb(0x00, 0x00, 0xff),
		rgb(0x00, 0x00, 0x80),
		rgb(0xff, 0x00, 0xff),
		rgb(0x80, 0x00, 0x80),
		rgb(0x00, 0xff, 0xff),
		rgb(0x00, 0x80, 0x80),
		rgb(0xff, 0xff, 0x00),
		rgb(0x80, 0x80, 0x00),
		rgb(0xff, 0xff, 0xff),
	},
	CGA16: color.Palette{
		rgb(0x00, 0x00, 0x00),
		rgb(0x00, 0x00, 0xaa),
		rgb(0x00, 0xaa, 0x00),
		rgb(0x00, 0xaa, 0xaa),
		rgb(0xaa, 0x00, 0x00),
		rgb(0xaa, 0x00, 0xaa),
		rgb(0xaa, 0x55, 0x00),
		rgb(0xaa, 0xaa, 0xaa),
		rgb(0x55, 0x55, 0x55),
		rgb(0x55, 0x55, 0xff),
		rgb(0x55, 0xff, 0x55),
		rgb(0x55, 0xff, 0xff),
		rgb(0xff, 0x55, 0x55),
		rgb(0xff, 0x55, 0xff),
		rgb(0xff, 0xff, 0x55),
		rgb(0xff, 0xff, 0xff),
	},
	EGA64:      levels(4, 85),
	WebSafe216: levels(6, 51),
	Gray16:     grays(16),
	Gray256:    grays(256),
	Mono2: color.Palette{
		rgb(0x00, 0x00, 0x00),
		rgb(0xff, 0xff, 0xff),
	},
}

func levels(n int, step uint8) color.Palette {
	pal := make(color.Palette, 0, n*n*n)
	for r := 0; r < n; r++ {
		for g := 0; g < n; g++ {
			for b := 0; b < n; b++ {
				pal = append(pal, rgb(uint8(r)*step, uint8(g)*step, uint8(b)*step))
			}
		}
	}
	return pal
}

func grays(n int) color.Palette {
	pal := make(color.Palette, n)
	for i := range pal {
		y := uint8(i * 255 / (n - 1))
		pal[i] = color.Gray{Y: y}
	}
	return pal
}

// Validate reports an InvalidPaletteError if p is empty or contains
// duplicate (identical RGB) entries.
func Validate(p color.Palette) error {
	if len(p) == 0 {
		return chrome.InvalidPaletteError{Reason: "empty"}
	}
	seen := make(map[uint32]struct{}, len(p))
	for _, c := range p {
		k := pack(c)
		if _, dup := seen[k]; dup {
			return chrome.InvalidPaletteError{Reason: "duplicate entries"}
		}
		seen[k] = struct{}{}
	}
	return nil
}

func pack(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | (b >> 8)
}

// Mix returns the half-and-half mixture of two colors: the
// component-wise average, rounding half up. Mix is commutative.
func Mix(a, b color.Color) color.RGBA {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	avg := func(x, y uint32) uint8 {
		return uint8(((x >> 8) + (y >> 8) + 1) / 2)
	}
	return color.RGBA{avg(ar, br), avg(ag, bg), avg(ab, bb), 0xff}
}
