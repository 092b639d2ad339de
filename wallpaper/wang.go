package wallpaper

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/32bitkid/chrome/raster"
)

// Edge identifies one of a tile set's edge colors. Two tiles may sit
// next to each other only when their shared edges carry the same value.
type Edge uint8

// A Tile is one square of a Wang tile set: an image plus the edge
// colors on its four sides.
type Tile struct {
	Top, Right, Bottom, Left Edge
	Image                    *raster.Buffer
}

// A TileSet holds Wang tiles of uniform size.
type TileSet struct {
	tiles []Tile
	w, h  int
}

// NewTileSet validates that the set is non-empty and that every tile
// image has the same positive dimensions.
func NewTileSet(tiles []Tile) (*TileSet, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("wallpaper: tile set is empty")
	}
	w := tiles[0].Image.Rect.Dx()
	h := tiles[0].Image.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("wallpaper: tile images must have positive dimensions")
	}
	for _, t := range tiles[1:] {
		if t.Image.Rect.Dx() != w || t.Image.Rect.Dy() != h {
			return nil, fmt.Errorf("wallpaper: tile images must share one size")
		}
	}
	return &TileSet{tiles: tiles, w: w, h: h}, nil
}

// matching returns the tiles whose constrained edges equal the wanted
// values. A nil constraint leaves that edge free.
func (ts *TileSet) matching(top, right, bottom, left *Edge) []Tile {
	var out []Tile
	for _, t := range ts.tiles {
		if top != nil && t.Top != *top {
			continue
		}
		if right != nil && t.Right != *right {
			continue
		}
		if bottom != nil && t.Bottom != *bottom {
			continue
		}
		if left != nil && t.Left != *left {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Assemble lays out cols×rows tiles scanline by scanline, picking each
// tile uniformly at random among those whose left and top edges match
// the neighbors already placed. Edge constraints wrap around, so the
// assembled image tiles seamlessly. The same *rand.Rand seed always
// produces the same arrangement.
//
// An incomplete tile set can paint the assembler into a corner; in that
// case Assemble reports which cell had no matching tile.
func (ts *TileSet) Assemble(cols, rows int, rng *rand.Rand) (*raster.Buffer, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("wallpaper: arrangement must have positive dimensions")
	}

	placed := make([]Tile, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var top, right, bottom, left *Edge
			var selfWrapX, selfWrapY bool
			if row > 0 {
				top = &placed[(row-1)*cols+col].Bottom
			}
			if col > 0 {
				left = &placed[row*cols+col-1].Right
			}
			// With a single column or row the wrap neighbor is the
			// cell being placed, so the tile must agree with itself.
			if col == cols-1 {
				if cols == 1 {
					selfWrapX = true
				} else {
					right = &placed[row*cols].Left
				}
			}
			if row == rows-1 {
				if rows == 1 {
					selfWrapY = true
				} else {
					bottom = &placed[col].Top
				}
			}
			candidates := ts.matching(top, right, bottom, left)
			if selfWrapX || selfWrapY {
				n := 0
				for _, t := range candidates {
					if selfWrapX && t.Right != t.Left {
						continue
					}
					if selfWrapY && t.Bottom != t.Top {
						continue
					}
					candidates[n] = t
					n++
				}
				candidates = candidates[:n]
			}
			if len(candidates) == 0 {
				return nil, fmt.Errorf("wallpaper: no tile fits at column %d, row %d", col, row)
			}
			placed[row*cols+col] = candidates[rng.Intn(len(candidates))]
		}
	}

	dst := raster.New(cols*ts.w, rows*ts.h)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t := placed[row*cols+col]
			src := t.Image.Clone()
			src.Rect = src.Rect.Sub(src.Rect.Min).Add(image.Pt(col*ts.w, row*ts.h))
			dst.DrawOver(src)
		}
	}
	return dst, nil
}
