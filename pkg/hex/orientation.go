package hex

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Orientation selects how hexagons are drawn.
type Orientation int

const (
	// Pointy hexagons have a vertex at the top. Neighbor directions lie at
	// multiples of 60 degrees.
	Pointy Orientation = iota
	// Flat hexagons have an edge at the top. Neighbor directions are offset
	// by 30 degrees from the pointy ones.
	Flat
)

const (
	sqrt3 = 1.7320508075688772

	sectorDegrees = 60.0
	sectorRad     = math.Pi / 3

	flatOffsetDegrees = 30.0
	flatOffsetRad     = math.Pi / 6
)

// orientationMatrices holds the forward (axial -> pixel) and inverse
// (pixel -> axial) 2x2 matrices, row major. Pixel space is y-up.
type orientationMatrices struct {
	forward [4]float64
	inverse [4]float64
}

var matrices = [2]orientationMatrices{
	Pointy: {
		forward: [4]float64{sqrt3 / 2, -sqrt3 / 2, -1.5, -1.5},
		inverse: [4]float64{1 / sqrt3, -1.0 / 3, -1 / sqrt3, -1.0 / 3},
	},
	Flat: {
		forward: [4]float64{1.5, 0, -sqrt3 / 2, -sqrt3},
		inverse: [4]float64{2.0 / 3, 0, -1.0 / 3, -1 / sqrt3},
	},
}

func (o Orientation) String() string {
	switch o {
	case Pointy:
		return "pointy"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts "pointy" or "flat" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "pointy":
		return Pointy, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("hex: invalid orientation %q, expected pointy or flat", s)
}

// AngleOffset returns the angle in radians added to every pointy direction
// angle to obtain this orientation's angle: 0 for Pointy, pi/6 for Flat.
func (o Orientation) AngleOffset() float64 {
	if o == Flat {
		return flatOffsetRad
	}
	return 0
}

// AngleOffsetDegrees is AngleOffset in degrees.
func (o Orientation) AngleOffsetDegrees() float64 {
	if o == Flat {
		return flatOffsetDegrees
	}
	return 0
}

func (o Orientation) mats() orientationMatrices {
	if o == Flat {
		return matrices[Flat]
	}
	return matrices[Pointy]
}

// forward maps an axial coordinate to unit pixel space.
func (o Orientation) forward(h Hex) v2.Vec {
	m := o.mats().forward
	q, r := float64(h.Q), float64(h.R)
	return v2.Vec{X: m[0]*q + m[1]*r, Y: m[2]*q + m[3]*r}
}

// inverse maps a unit pixel space point to a fractional axial coordinate.
func (o Orientation) inverse(p v2.Vec) FractionalHex {
	m := o.mats().inverse
	return FractionalHex{Q: m[0]*p.X + m[1]*p.Y, R: m[2]*p.X + m[3]*p.Y}
}
