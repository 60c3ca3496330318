package hex

import (
	"iter"
	"slices"
)

// RingStart is the direction of the first coordinate yielded by Ring.
const RingStart = Top

// Ring yields the coordinates at exactly radius from center. Radius 0 yields
// only center; otherwise 6*radius coordinates are yielded clockwise starting
// at center + RingStart*radius. Negative radii yield nothing.
func Ring(center Hex, radius int) iter.Seq[Hex] {
	return RingFrom(center, radius, RingStart, true)
}

// RingFrom is Ring with a custom start direction and winding.
func RingFrom(center Hex, radius int, start Direction, clockwise bool) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		if radius < 0 {
			return
		}
		if radius == 0 {
			yield(center)
			return
		}
		h := center.Add(start.Scale(radius))
		// The first leg runs perpendicular to the start offset.
		dir := start.RotateCCW(2)
		if clockwise {
			dir = start.RotateCW(2)
		}
		for range 6 {
			for range radius {
				if !yield(h) {
					return
				}
				h = h.Neighbor(dir)
			}
			if clockwise {
				dir = dir.Clockwise()
			} else {
				dir = dir.CounterClockwise()
			}
		}
	}
}

// RingSlice collects Ring into a slice.
func RingSlice(center Hex, radius int) []Hex {
	return slices.Collect(Ring(center, radius))
}

// SpiralRange yields the rings of radius minRadius through maxRadius
// inclusive, innermost first. An empty range yields nothing.
func SpiralRange(center Hex, minRadius, maxRadius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for r := max(minRadius, 0); r <= maxRadius; r++ {
			for h := range Ring(center, r) {
				if !yield(h) {
					return
				}
			}
		}
	}
}

// Spiral collects SpiralRange(center, 0, radius) into a slice.
func Spiral(center Hex, radius int) []Hex {
	out := make([]Hex, 0, RangeCount(radius))
	for h := range SpiralRange(center, 0, radius) {
		out = append(out, h)
	}
	return out
}

// Rings returns every ring from minRadius to maxRadius as its own slice.
func Rings(center Hex, minRadius, maxRadius int) [][]Hex {
	var out [][]Hex
	for r := max(minRadius, 0); r <= maxRadius; r++ {
		out = append(out, RingSlice(center, r))
	}
	return out
}

// Range yields every coordinate within radius of center, in row order. It
// covers the same set as SpiralRange(center, 0, radius).
func Range(center Hex, radius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for q := -radius; q <= radius; q++ {
			for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
				if !yield(center.Add(Hex{q, r})) {
					return
				}
			}
		}
	}
}

// RangeCount returns the number of coordinates within radius of a center:
// 1 + 3*radius*(radius+1).
func RangeCount(radius int) int {
	if radius < 0 {
		return 0
	}
	return 1 + 3*radius*(radius+1)
}

// Ring yields the coordinates at exactly radius from h.
func (h Hex) Ring(radius int) iter.Seq[Hex] {
	return Ring(h, radius)
}

// SpiralRange yields the rings around h from minRadius to maxRadius.
func (h Hex) SpiralRange(minRadius, maxRadius int) iter.Seq[Hex] {
	return SpiralRange(h, minRadius, maxRadius)
}

// Range yields every coordinate within radius of h.
func (h Hex) Range(radius int) iter.Seq[Hex] {
	return Range(h, radius)
}
