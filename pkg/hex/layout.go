package hex

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Layout is the affine mapping between hex coordinates and 2D world space.
//
//	world = Origin + Size * M(Orientation) * (q, r)
//
// World space is y-up. Use a negative Size.Y for y-down screen space.
type Layout struct {
	Orientation Orientation `json:"orientation"`
	// Size is the hexagon circumradius along each axis.
	Size v2.Vec `json:"size"`
	// Origin is the world position of the Zero coordinate.
	Origin v2.Vec `json:"origin"`
}

// DefaultLayout returns a pointy layout of unit size centered on the world
// origin.
func DefaultLayout() Layout {
	return Layout{
		Orientation: Pointy,
		Size:        v2.Vec{X: 1, Y: 1},
	}
}

// NewLayout returns a layout with the given orientation and uniform size.
func NewLayout(o Orientation, size float64) Layout {
	return Layout{Orientation: o, Size: v2.Vec{X: size, Y: size}}
}

// WithOrigin returns a copy of l with origin set to p.
func (l Layout) WithOrigin(p v2.Vec) Layout {
	l.Origin = p
	return l
}

// HexToWorldPos returns the world position of the center of h.
func (l Layout) HexToWorldPos(h Hex) v2.Vec {
	return l.HexToCenterAlignedWorldPos(h).Add(l.Origin)
}

// HexToCenterAlignedWorldPos returns the center of h ignoring Origin.
func (l Layout) HexToCenterAlignedWorldPos(h Hex) v2.Vec {
	p := l.Orientation.forward(h)
	return v2.Vec{X: p.X * l.Size.X, Y: p.Y * l.Size.Y}
}

// FractionalHexAt returns the fractional coordinate under world point p.
func (l Layout) FractionalHexAt(p v2.Vec) FractionalHex {
	return l.centerAlignedFractional(p.Sub(l.Origin))
}

func (l Layout) centerAlignedFractional(p v2.Vec) FractionalHex {
	return l.Orientation.inverse(v2.Vec{X: p.X / l.Size.X, Y: p.Y / l.Size.Y})
}

// WorldPosToHex returns the coordinate of the hexagon containing world point
// p. WorldPosToHex(HexToWorldPos(h)) == h for every h.
func (l Layout) WorldPosToHex(p v2.Vec) Hex {
	return l.FractionalHexAt(p).Round()
}

// CenterAlignedWorldPosToHex is WorldPosToHex ignoring Origin.
func (l Layout) CenterAlignedWorldPosToHex(p v2.Vec) Hex {
	return l.centerAlignedFractional(p).Round()
}

// cornerAngle returns the angle of corner i in radians. Corners are laid out
// counter clockwise; the first one sits half a sector past the first
// direction.
func (l Layout) cornerAngle(i int) float64 {
	return math.Pi/6 - l.Orientation.AngleOffset() + float64(i)*sectorRad
}

// CenterAlignedHexCorners returns the 6 corners of a hexagon centered on the
// world origin, in counter clockwise order.
func (l Layout) CenterAlignedHexCorners() [6]v2.Vec {
	var out [6]v2.Vec
	for i := range out {
		a := l.cornerAngle(i)
		out[i] = v2.Vec{X: math.Cos(a) * l.Size.X, Y: math.Sin(a) * l.Size.Y}
	}
	return out
}

// HexCorners returns the 6 world space corners of h in counter clockwise
// order.
func (l Layout) HexCorners(h Hex) [6]v2.Vec {
	center := l.HexToWorldPos(h)
	corners := l.CenterAlignedHexCorners()
	for i := range corners {
		corners[i] = corners[i].Add(center)
	}
	return corners
}

// RectSize returns the width and height of the axis aligned box enclosing a
// single hexagon, suitable as a sprite size.
func (l Layout) RectSize() v2.Vec {
	if l.Orientation == Flat {
		return v2.Vec{X: 2 * math.Abs(l.Size.X), Y: sqrt3 * math.Abs(l.Size.Y)}
	}
	return v2.Vec{X: sqrt3 * math.Abs(l.Size.X), Y: 2 * math.Abs(l.Size.Y)}
}
