package mask

import (
	"image"
	"strings"
)

// Point is a cursor hot spot, the pixel that tracks the pointer
// position.
type Point struct {
	X int16
	Y int16
}

// Cursor is a mask-coded pointer image with its hot spot.
type Cursor struct {
	Point
	Mask
}

// NewCursor wraps a mask with a hot spot. The hot spot is clamped into
// the mask bounds.
func NewCursor(m *Mask, hotX, hotY int) Cursor {
	r := m.Rect
	if hotX < 0 {
		hotX = 0
	} else if hotX >= r.Dx() {
		hotX = r.Dx() - 1
	}
	if hotY < 0 {
		hotY = 0
	} else if hotY >= r.Dy() {
		hotY = r.Dy() - 1
	}
	return Cursor{
		Point: Point{X: int16(hotX), Y: int16(hotY)},
		Mask:  *m,
	}
}

// String renders the cursor as text, one rune per pixel: space for
// transparent, full block for opaque, medium shade for inverting.
func (c Cursor) String() string {
	out, inv, err := c.Decode()
	if err != nil {
		return "Cursor(invalid)"
	}

	var str strings.Builder
	r := c.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			switch {
			case inv.AlphaAt(x, y).A != 0:
				str.WriteRune('▒')
			case out.Transparent(x, y):
				str.WriteRune(' ')
			default:
				str.WriteRune('█')
			}
		}
		str.WriteRune('\n')
	}
	return str.String()
}

// Hotspot returns the hot spot as an image.Point relative to the mask
// origin.
func (c Cursor) Hotspot() image.Point {
	return image.Pt(int(c.X), int(c.Y)).Add(c.Rect.Min)
}
