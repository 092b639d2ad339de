package palette

import (
	"image/color"
)

// HalfTones is a palette extended with the half-and-half mixtures of
// every pair of its base entries, plus the mapping from each extended
// entry back to the pair of base colors that produced it. Checkerboard
// dithering resolves a pixel to an extended entry and then alternates
// between the two parents.
type HalfTones struct {
	color.Palette

	base    int
	parents map[int][2]int
}

// WithHalfTones builds the half-tone extension of base. The base
// palette must pass Validate. Mixtures that collide with an existing
// entry are not added twice; their parent pair is the first pair
// encountered, scanning in index order.
func WithHalfTones(base color.Palette) (*HalfTones, error) {
	if err := Validate(base); err != nil {
		return nil, err
	}

	ht := &HalfTones{
		Palette: make(color.Palette, len(base), len(base)*len(base)),
		base:    len(base),
		parents: make(map[int][2]int),
	}
	copy(ht.Palette, base)

	index := make(map[uint32]int, len(base))
	for i, c := range base {
		index[pack(c)] = i
		ht.parents[i] = [2]int{i, i}
	}

	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			mixed := Mix(base[i], base[j])
			if _, exists := index[pack(mixed)]; exists {
				continue
			}
			idx := len(ht.Palette)
			ht.Palette = append(ht.Palette, mixed)
			index[pack(mixed)] = idx
			ht.parents[idx] = [2]int{i, j}
		}
	}

	return ht, nil
}

// BaseLen returns the number of entries in the base palette.
func (ht *HalfTones) BaseLen() int { return ht.base }

// Components returns the two base-palette indices whose half-and-half
// mixture is entry i. Base entries return themselves twice.
func (ht *HalfTones) Components(i int) (int, int) {
	p := ht.parents[i]
	return p[0], p[1]
}
