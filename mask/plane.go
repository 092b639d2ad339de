package mask

import (
	"bytes"
	"fmt"

	"github.com/32bitkid/bitreader"
)

// A plane is a 1-bit-per-pixel bitmap packed MSB-first, each row padded
// to a 32-bit boundary, the layout icon and cursor files use for their
// AND masks.

func planeStride(w int) int {
	return ((w + 31) / 32) * 4
}

func newPlane(w, h int) []byte {
	return make([]byte, planeStride(w)*h)
}

func planeSet(p []byte, stride, x, y int, bit bool) {
	i := y*stride + x/8
	m := byte(0x80) >> (x % 8)
	if bit {
		p[i] |= m
	} else {
		p[i] &^= m
	}
}

// parsePlane unpacks a packed plane into row-major bools.
func parsePlane(p []byte, w, h int) ([][]bool, error) {
	stride := planeStride(w)
	if len(p) < stride*h {
		return nil, fmt.Errorf("mask: plane is %d bytes, need %d", len(p), stride*h)
	}

	bits := bitreader.NewReader(bytes.NewReader(p))
	rows := make([][]bool, h)
	pad := uint(stride*8 - w)
	for y := range rows {
		row := make([]bool, w)
		for x := range row {
			b, err := bits.Read1()
			if err != nil {
				return nil, err
			}
			row[x] = b
		}
		if err := bits.Skip(pad); err != nil {
			return nil, err
		}
		rows[y] = row
	}
	return rows, nil
}
