package hex

import (
	"iter"
	"slices"
)

// lineNudge shifts interpolation off the lattice edges so that points lying
// exactly between two hexagons round consistently.
var lineNudge = FractionalHex{Q: 1e-6, R: 2e-6}

// LineTo returns the straight lattice path from a to b, both included. The
// sequence has exactly a.Distance(b)+1 elements and can be ranged over any
// number of times.
func LineTo(a, b Hex) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		n := a.Distance(b)
		if n == 0 {
			yield(a)
			return
		}
		fa := a.Fractional().Add(lineNudge)
		fb := b.Fractional().Add(lineNudge)
		step := 1 / float64(n)
		for i := 0; i <= n; i++ {
			if !yield(fa.Lerp(fb, float64(i)*step).Round()) {
				return
			}
		}
	}
}

// Line collects LineTo into a slice.
func Line(a, b Hex) []Hex {
	return slices.Collect(LineTo(a, b))
}

// LineTo returns the straight lattice path from h to o.
func (h Hex) LineTo(o Hex) iter.Seq[Hex] {
	return LineTo(h, o)
}
