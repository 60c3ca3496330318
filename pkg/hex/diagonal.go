package hex

import (
	"fmt"
	"iter"
	"math"
)

// DiagonalDirection is one of the 6 diagonal directions, pointing at the
// second ring coordinates that share a vertex with the origin hexagon.
// Diagonal i lies between Direction i-1 (clockwise side) and Direction i
// (counter clockwise side).
type DiagonalDirection uint8

const (
	Right           DiagonalDirection = iota // (2, -1)
	DiagTopRight                             // (1, -2)
	DiagTopLeft                              // (-1, -1)
	Left                                     // (-2, 1)
	DiagBottomLeft                           // (-1, 2)
	DiagBottomRight                          // (1, 1)
)

var diagonalOffsets = [6]Hex{
	Right:           {2, -1},
	DiagTopRight:    {1, -2},
	DiagTopLeft:     {-1, -1},
	Left:            {-2, 1},
	DiagBottomLeft:  {-1, 2},
	DiagBottomRight: {1, 1},
}

// DiagonalOffsets returns the diagonal offsets indexed by DiagonalDirection.
func DiagonalOffsets() [6]Hex {
	return diagonalOffsets
}

var diagonalNames = [6]string{
	"Right", "TopRight", "TopLeft", "Left", "BottomLeft", "BottomRight",
}

// Diagonals lists every diagonal direction in table order.
var Diagonals = [6]DiagonalDirection{Right, DiagTopRight, DiagTopLeft, Left, DiagBottomLeft, DiagBottomRight}

// AllDiagonals iterates the 6 diagonal directions in table order.
func AllDiagonals() iter.Seq[DiagonalDirection] {
	return func(yield func(DiagonalDirection) bool) {
		for _, d := range Diagonals {
			if !yield(d) {
				return
			}
		}
	}
}

func (d DiagonalDirection) String() string {
	if int(d) < len(diagonalNames) {
		return "Diagonal" + diagonalNames[d]
	}
	return fmt.Sprintf("DiagonalDirection(%d)", int(d))
}

func (d DiagonalDirection) index() int {
	return int(d) % 6
}

// Offset returns the coordinate offset of d.
func (d DiagonalDirection) Offset() Hex {
	return diagonalOffsets[d.index()]
}

// Scale returns the offset of d multiplied by k.
func (d DiagonalDirection) Scale(k int) Hex {
	return d.Offset().Scale(k)
}

// Clockwise returns the next diagonal in clockwise order.
func (d DiagonalDirection) Clockwise() DiagonalDirection {
	return DiagonalDirection((d.index() + 5) % 6)
}

// CounterClockwise returns the next diagonal in counter clockwise order.
func (d DiagonalDirection) CounterClockwise() DiagonalDirection {
	return DiagonalDirection((d.index() + 1) % 6)
}

// RotateCW rotates d clockwise n times.
func (d DiagonalDirection) RotateCW(n int) DiagonalDirection {
	return DiagonalDirection(mod6(d.index() - n))
}

// RotateCCW rotates d counter clockwise n times.
func (d DiagonalDirection) RotateCCW(n int) DiagonalDirection {
	return DiagonalDirection(mod6(d.index() + n))
}

// Neg returns the opposite diagonal.
func (d DiagonalDirection) Neg() DiagonalDirection {
	return DiagonalDirection((d.index() + 3) % 6)
}

// DirectionCW returns the edge direction on the clockwise side of d.
func (d DiagonalDirection) DirectionCW() Direction {
	return Direction((d.index() + 5) % 6)
}

// DirectionCCW returns the edge direction on the counter clockwise side of d.
func (d DiagonalDirection) DirectionCCW() Direction {
	return Direction(d.index())
}

// PointyAngleDegrees returns the angle of d in degrees for pointy hexagons,
// in [0, 360).
func (d DiagonalDirection) PointyAngleDegrees() float64 {
	return float64(mod6(d.index()-1))*sectorDegrees + flatOffsetDegrees
}

// AngleDegrees returns the angle of d in degrees for orientation o.
func (d DiagonalDirection) AngleDegrees(o Orientation) float64 {
	return math.Mod(d.PointyAngleDegrees()+o.AngleOffsetDegrees(), 360)
}

// Angle returns the angle of d in radians for orientation o.
func (d DiagonalDirection) Angle(o Orientation) float64 {
	return d.AngleDegrees(o) * math.Pi / 180
}

// DiagonalFromAngle returns the diagonal whose sector contains angle
// (radians) for orientation o.
func DiagonalFromAngle(angle float64, o Orientation) DiagonalDirection {
	return DiagonalDirection(sector(angle+sectorRad-o.AngleOffset(), 2*math.Pi, sectorRad))
}

// DiagonalFromAngleDegrees is DiagonalFromAngle for an angle in degrees.
func DiagonalFromAngleDegrees(angle float64, o Orientation) DiagonalDirection {
	return DiagonalDirection(sector(angle+sectorDegrees-o.AngleOffsetDegrees(), 360, sectorDegrees))
}
