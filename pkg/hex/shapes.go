package hex

import "iter"

// Hexagon yields every coordinate of the hexagonal shape of the given radius
// around center, in spiral order.
func Hexagon(center Hex, radius int) iter.Seq[Hex] {
	return SpiralRange(center, 0, radius)
}

// Parallelogram yields every coordinate with lo.Q <= q <= hi.Q and
// lo.R <= r <= hi.R.
func Parallelogram(lo, hi Hex) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for q := lo.Q; q <= hi.Q; q++ {
			for r := lo.R; r <= hi.R; r++ {
				if !yield(Hex{q, r}) {
					return
				}
			}
		}
	}
}

// Triangle yields the triangle of the given size with its corner on the
// origin.
func Triangle(size int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for q := 0; q <= size; q++ {
			for r := 0; r <= size-q; r++ {
				if !yield(Hex{q, r}) {
					return
				}
			}
		}
	}
}

// PointyRectangle yields a rectangle of rows and columns for pointy layouts.
// The bounds are inclusive offset coordinates: columns [left, right] and rows
// [top, bottom], where a row is a horizontal line of constant q+r and odd
// rows are shifted half a hexagon to the right.
func PointyRectangle(left, right, top, bottom int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for row := top; row <= bottom; row++ {
			shift := (row + row&1) / 2
			for col := left; col <= right; col++ {
				q := col + shift
				if !yield(Hex{q, row - q}) {
					return
				}
			}
		}
	}
}

// FlatRectangle yields a rectangle of rows and columns for flat layouts.
// The bounds are inclusive offset coordinates: columns [left, right] of
// constant q and rows [top, bottom], with odd columns shifted half a hexagon
// down.
func FlatRectangle(left, right, top, bottom int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for q := left; q <= right; q++ {
			shift := (q - q&1) / 2
			for row := top; row <= bottom; row++ {
				if !yield(Hex{q, row - shift}) {
					return
				}
			}
		}
	}
}
