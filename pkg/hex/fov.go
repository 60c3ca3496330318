package hex

import "math"

// BlockedFunc reports whether a coordinate blocks line of sight.
type BlockedFunc func(Hex) bool

// FOV returns the set of coordinates visible from center within radius.
//
// Every candidate within radius is tested by tracing LineTo(center,
// candidate): the candidate is visible when no coordinate strictly between
// center and candidate is blocked. A blocked candidate is itself visible
// (walls are seen, not seen through), and center is always visible.
//
// The cost is O(RangeCount(radius) * radius) because each candidate traces
// its own ray. This is the most expensive query in the package.
func FOV(center Hex, radius int, blocked BlockedFunc) map[Hex]struct{} {
	out := make(map[Hex]struct{}, RangeCount(radius))
	for candidate := range SpiralRange(center, 0, radius) {
		if visible(center, candidate, blocked) {
			out[candidate] = struct{}{}
		}
	}
	return out
}

// DirectionalFOV is FOV restricted to the 120 degree cone centered on dir.
// Center is always included.
func DirectionalFOV(center Hex, radius int, dir Direction, blocked BlockedFunc) map[Hex]struct{} {
	out := make(map[Hex]struct{})
	axis := dir.PointyAngle()
	for candidate := range SpiralRange(center, 0, radius) {
		if candidate != center && !inCone(center, candidate, axis) {
			continue
		}
		if visible(center, candidate, blocked) {
			out[candidate] = struct{}{}
		}
	}
	return out
}

func visible(center, candidate Hex, blocked BlockedFunc) bool {
	if blocked == nil {
		return true
	}
	for h := range LineTo(center, candidate) {
		if h == candidate {
			return true
		}
		if h != center && blocked(h) {
			return false
		}
	}
	return true
}

// inCone reports whether candidate lies within 60 degrees of the pointy
// angle axis as seen from center.
func inCone(center, candidate Hex, axis float64) bool {
	p := Pointy.forward(candidate.Sub(center))
	diff := math.Abs(math.Remainder(math.Atan2(p.Y, p.X)-axis, 2*math.Pi))
	return diff <= sectorRad+1e-9
}
