package hex

import (
	"fmt"
	"iter"
	"math"
)

// Direction is one of the 6 edge neighbor directions. The values index the
// neighbor offset table and are laid out counter clockwise:
//
//	      ___
//	     / 1 \
//	 +--+     +--+
//	/ 2  \___/  0 \
//	\    /   \    /
//	 +--+     +--+
//	/ 3  \___/  5 \
//	\    / 4 \    /
//	 +--+     +--+
type Direction uint8

const (
	TopRight    Direction = iota // (1, -1)
	Top                          // (0, -1)
	TopLeft                      // (-1, 0)
	BottomLeft                   // (-1, 1)
	Bottom                       // (0, 1)
	BottomRight                  // (1, 0)
)

// Axis aliases.
const (
	DirX     = BottomRight
	DirY     = Bottom
	DirNegX  = TopLeft
	DirNegY  = Top
	DirNegXY = BottomLeft
	DirXNegY = TopRight
)

var neighborOffsets = [6]Hex{
	TopRight:    {1, -1},
	Top:         {0, -1},
	TopLeft:     {-1, 0},
	BottomLeft:  {-1, 1},
	Bottom:      {0, 1},
	BottomRight: {1, 0},
}

// NeighborOffsets returns the unit offsets indexed by Direction.
func NeighborOffsets() [6]Hex {
	return neighborOffsets
}

var directionNames = [6]string{
	"TopRight", "Top", "TopLeft", "BottomLeft", "Bottom", "BottomRight",
}

// Directions lists every direction in table order.
var Directions = [6]Direction{TopRight, Top, TopLeft, BottomLeft, Bottom, BottomRight}

// AllDirections iterates the 6 directions in table order.
func AllDirections() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range Directions {
			if !yield(d) {
				return
			}
		}
	}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) index() int {
	return int(d) % 6
}

// Offset returns the unit coordinate offset of d.
func (d Direction) Offset() Hex {
	return neighborOffsets[d.index()]
}

// Scale returns the offset of d multiplied by k.
func (d Direction) Scale(k int) Hex {
	return d.Offset().Scale(k)
}

// Clockwise returns the next direction in clockwise order.
func (d Direction) Clockwise() Direction {
	return Direction((d.index() + 5) % 6)
}

// CounterClockwise returns the next direction in counter clockwise order.
func (d Direction) CounterClockwise() Direction {
	return Direction((d.index() + 1) % 6)
}

// RotateCW rotates d clockwise n times.
func (d Direction) RotateCW(n int) Direction {
	return Direction(mod6(d.index() - n))
}

// RotateCCW rotates d counter clockwise n times.
func (d Direction) RotateCCW(n int) Direction {
	return Direction(mod6(d.index() + n))
}

// Neg returns the opposite direction, 3 steps away.
func (d Direction) Neg() Direction {
	return Direction((d.index() + 3) % 6)
}

// PointyAngle returns the angle of d in radians for pointy hexagons.
func (d Direction) PointyAngle() float64 {
	return float64(d.index()) * sectorRad
}

// FlatAngle returns the angle of d in radians for flat hexagons.
func (d Direction) FlatAngle() float64 {
	return d.PointyAngle() + flatOffsetRad
}

// Angle returns the angle of d in radians for orientation o.
func (d Direction) Angle(o Orientation) float64 {
	return d.PointyAngle() + o.AngleOffset()
}

// PointyAngleDegrees returns the angle of d in degrees for pointy hexagons.
func (d Direction) PointyAngleDegrees() float64 {
	return float64(d.index()) * sectorDegrees
}

// FlatAngleDegrees returns the angle of d in degrees for flat hexagons.
func (d Direction) FlatAngleDegrees() float64 {
	return d.PointyAngleDegrees() + flatOffsetDegrees
}

// AngleDegrees returns the angle of d in degrees for orientation o.
func (d Direction) AngleDegrees(o Orientation) float64 {
	return d.PointyAngleDegrees() + o.AngleOffsetDegrees()
}

// FromAngle returns the direction whose 60 degree sector contains angle
// (radians) for orientation o.
func FromAngle(angle float64, o Orientation) Direction {
	return Direction(sector(angle+flatOffsetRad-o.AngleOffset(), 2*math.Pi, sectorRad))
}

// FromAngleDegrees is FromAngle for an angle in degrees.
func FromAngleDegrees(angle float64, o Orientation) Direction {
	return Direction(sector(angle+flatOffsetDegrees-o.AngleOffsetDegrees(), 360, sectorDegrees))
}

// DiagonalCW returns the diagonal one step clockwise of d.
func (d Direction) DiagonalCW() DiagonalDirection {
	return DiagonalDirection(d.index())
}

// DiagonalCCW returns the diagonal one step counter clockwise of d.
func (d Direction) DiagonalCCW() DiagonalDirection {
	return DiagonalDirection((d.index() + 1) % 6)
}

// sector normalizes angle into [0, full) and returns the index of the
// width sized sector containing it, clamped to 0..5.
func sector(angle, full, width float64) int {
	a := math.Mod(angle, full)
	if a < 0 {
		a += full
	}
	i := int(a / width)
	if i > 5 {
		i = 5
	}
	if i < 0 {
		i = 0
	}
	return i
}
