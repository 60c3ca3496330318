package hex

import "iter"

// RotateCWAround yields every coordinate of coords rotated clockwise around
// pivot by k sixths of a turn, in input order.
func RotateCWAround(coords iter.Seq[Hex], pivot Hex, k int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for h := range coords {
			if !yield(h.RotateCWAround(pivot, k)) {
				return
			}
		}
	}
}

// RotateCCWAround is RotateCWAround in the counter clockwise direction.
func RotateCCWAround(coords iter.Seq[Hex], pivot Hex, k int) iter.Seq[Hex] {
	return RotateCWAround(coords, pivot, -k)
}

// RotateSlice rotates every coordinate of coords clockwise around pivot by
// k sixths of a turn and returns a new slice.
func RotateSlice(coords []Hex, pivot Hex, k int) []Hex {
	out := make([]Hex, len(coords))
	for i, h := range coords {
		out[i] = h.RotateCWAround(pivot, k)
	}
	return out
}
