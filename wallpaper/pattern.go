// Package wallpaper assembles tileable desktop background images:
// checkerboards, hatches, two-color patterns, color ramps, wallpaper
// group tilings, and stochastic Wang-tile arrangements. Drawing goes
// through raster.RectDrawer, so every generator can paint with
// wraparound and produce seamless tiles.
package wallpaper

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/32bitkid/chrome/raster"
)

// Pattern is an 8×8 monochrome tile, one byte per row, most significant
// bit leftmost (the Windows desktop-pattern convention).
type Pattern [8]uint8

// PatternFromTemplate parses an 8-line, 8-rune-per-line template into a
// Pattern. Runes '_', '-', and '0' are clear; anything else is set.
// Invalid templates panic; patterns are authored as literals.
func PatternFromTemplate(s string) (p Pattern) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	if len(lines) != 8 {
		panic(fmt.Errorf("invalid pattern template height: %d", len(lines)))
	}
	for y, l := range lines {
		runes := []rune(strings.TrimSpace(l))
		if len(runes) != 8 {
			panic(fmt.Errorf("invalid pattern template width: %d", len(runes)))
		}
		for x, tr := range runes {
			if tr != '_' && tr != '-' && tr != '0' {
				p[y] |= 0x80 >> x
			}
		}
	}
	return p
}

// At reports the pattern bit at (x, y), tiling in both directions.
func (p Pattern) At(x, y int) bool {
	return p[mod(y, 8)]&(0x80>>mod(x, 8)) != 0
}

// Draw tiles the pattern over r, painting set bits with fg and clear
// bits with bg. Either color may be nil to leave those pixels alone.
// originX and originY shift the pattern's phase.
func (p Pattern) Draw(d raster.RectDrawer, r image.Rectangle, fg, bg color.Color, originX, originY int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := bg
			if p.At(x-originX, y-originY) {
				c = fg
			}
			if c == nil {
				continue
			}
			d.Rect(x, y, x+1, y+1, c)
		}
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// DefaultPatterns are the stock 8×8 desktop patterns.
var DefaultPatterns = struct {
	Checker    Pattern
	Vertical   Pattern
	Horizontal Pattern
	Cross      Pattern
	DiagFwd    Pattern
	DiagBack   Pattern
	Scale      Pattern
}{
	Checker: PatternFromTemplate(`
X_X_X_X_
_X_X_X_X
X_X_X_X_
_X_X_X_X
X_X_X_X_
_X_X_X_X
X_X_X_X_
_X_X_X_X
`),

	Vertical: PatternFromTemplate(`
X___X___
X___X___
X___X___
X___X___
X___X___
X___X___
X___X___
X___X___
`),

	Horizontal: PatternFromTemplate(`
XXXXXXXX
________
________
________
XXXXXXXX
________
________
________
`),

	Cross: PatternFromTemplate(`
XXXXXXXX
X___X___
X___X___
X___X___
XXXXXXXX
X___X___
X___X___
X___X___
`),

	DiagFwd: PatternFromTemplate(`
_______X
______X_
_____X__
____X___
___X____
__X_____
_X______
X_______
`),

	DiagBack: PatternFromTemplate(`
X_______
_X______
__X_____
___X____
____X___
_____X__
______X_
_______X
`),

	Scale: PatternFromTemplate(`
X___X___
_X_X_X_X
__X___X_
________
X___X___
_X_X_X_X
__X___X_
________
`),
}
