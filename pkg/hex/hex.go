// Package hex implements an axial hexagonal coordinate system: coordinate
// arithmetic, directions, pixel layouts and lattice algorithms (lines, rings,
// spirals, rotations, field of view).
//
// Coordinates are stored in axial form (Q, R). The third cube coordinate S is
// always derived as -Q-R, so the cube invariant Q+R+S == 0 cannot be broken
// by any operation in this package.
package hex

import "math"

// Hex is an axial hexagonal coordinate. It is a comparable value type and can
// be used as a map key.
type Hex struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

var (
	// Zero is the origin coordinate.
	Zero = Hex{0, 0}
	// One is the (1, 1) coordinate.
	One = Hex{1, 1}
)

// New returns the axial coordinate (q, r).
func New(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// FromCube returns the coordinate for cube components q and r. The s
// component is implied.
func FromCube(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Cube returns the cube triple (q, r, s).
func (h Hex) Cube() [3]int {
	return [3]int{h.Q, h.R, h.S()}
}

// Add returns h + o.
func (h Hex) Add(o Hex) Hex {
	return Hex{h.Q + o.Q, h.R + o.R}
}

// Sub returns h - o.
func (h Hex) Sub(o Hex) Hex {
	return Hex{h.Q - o.Q, h.R - o.R}
}

// Scale multiplies both components by k.
func (h Hex) Scale(k int) Hex {
	return Hex{h.Q * k, h.R * k}
}

// Neg returns the coordinate mirrored through the origin, which is the same
// as a half turn rotation.
func (h Hex) Neg() Hex {
	return Hex{-h.Q, -h.R}
}

// Length returns the lattice distance from the origin.
func (h Hex) Length() int {
	return (abs(h.Q) + abs(h.R) + abs(h.Q+h.R)) / 2
}

// Distance returns the lattice distance between h and o.
func (h Hex) Distance(o Hex) int {
	return h.Sub(o).Length()
}

// Distance returns the lattice distance between a and b.
func Distance(a, b Hex) int {
	return a.Distance(b)
}

// Neighbor returns the adjacent coordinate in direction d.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(d.Offset())
}

// Neighbors returns the 6 adjacent coordinates in Direction order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, off := range neighborOffsets {
		out[i] = h.Add(off)
	}
	return out
}

// DiagonalNeighbor returns the second ring coordinate in diagonal d.
func (h Hex) DiagonalNeighbor(d DiagonalDirection) Hex {
	return h.Add(d.Offset())
}

// DiagonalNeighbors returns the 6 diagonal coordinates in DiagonalDirection
// order.
func (h Hex) DiagonalNeighbors() [6]Hex {
	var out [6]Hex
	for i, off := range diagonalOffsets {
		out[i] = h.Add(off)
	}
	return out
}

// IsNeighbor reports whether o is adjacent to h.
func (h Hex) IsNeighbor(o Hex) bool {
	return h.Distance(o) == 1
}

// NeighborDirection returns the direction from h to o when they are
// adjacent.
func (h Hex) NeighborDirection(o Hex) (Direction, bool) {
	delta := o.Sub(h)
	for i, off := range neighborOffsets {
		if off == delta {
			return Direction(i), true
		}
	}
	return 0, false
}

// MainDirectionTo returns the direction whose angular sector contains o as
// seen from h. For h == o it returns the default direction.
func (h Hex) MainDirectionTo(o Hex) Direction {
	if h == o {
		return TopRight
	}
	p := Pointy.forward(o.Sub(h))
	return FromAngle(math.Atan2(p.Y, p.X), Pointy)
}

// RotateCW rotates h clockwise around the origin by one sixth of a turn.
func (h Hex) RotateCW() Hex {
	// (q, r, s) -> (-r, -s, -q)
	return Hex{-h.R, h.Q + h.R}
}

// RotateCCW rotates h counter clockwise around the origin by one sixth of a
// turn.
func (h Hex) RotateCCW() Hex {
	// (q, r, s) -> (-s, -q, -r)
	return Hex{h.Q + h.R, -h.Q}
}

// RotateCWBy rotates h clockwise around the origin by k sixths of a turn.
// Negative k rotates counter clockwise.
func (h Hex) RotateCWBy(k int) Hex {
	switch mod6(k) {
	case 1:
		return h.RotateCW()
	case 2:
		return h.RotateCW().RotateCW()
	case 3:
		return h.Neg()
	case 4:
		return h.RotateCCW().RotateCCW()
	case 5:
		return h.RotateCCW()
	default:
		return h
	}
}

// RotateCCWBy rotates h counter clockwise around the origin by k sixths of a
// turn.
func (h Hex) RotateCCWBy(k int) Hex {
	return h.RotateCWBy(-k)
}

// RotateCWAround rotates h clockwise around pivot by k sixths of a turn.
func (h Hex) RotateCWAround(pivot Hex, k int) Hex {
	return h.Sub(pivot).RotateCWBy(k).Add(pivot)
}

// RotateCCWAround rotates h counter clockwise around pivot by k sixths of a
// turn.
func (h Hex) RotateCCWAround(pivot Hex, k int) Hex {
	return h.Sub(pivot).RotateCCWBy(k).Add(pivot)
}

// Lerp linearly interpolates between the cube representations of h and o and
// rounds the result back onto the lattice.
func (h Hex) Lerp(o Hex, t float64) Hex {
	return h.Fractional().Lerp(o.Fractional(), t).Round()
}

// Fractional returns h as a fractional coordinate.
func (h Hex) Fractional() FractionalHex {
	return FractionalHex{Q: float64(h.Q), R: float64(h.R)}
}

// FractionalHex is a coordinate with real valued axial components, produced
// by pixel conversion and interpolation. S is derived, like for Hex.
type FractionalHex struct {
	Q, R float64
}

// S returns the implicit third cube coordinate.
func (f FractionalHex) S() float64 {
	return -f.Q - f.R
}

// Add returns f + o.
func (f FractionalHex) Add(o FractionalHex) FractionalHex {
	return FractionalHex{f.Q + o.Q, f.R + o.R}
}

// Lerp interpolates between f and o at t.
func (f FractionalHex) Lerp(o FractionalHex, t float64) FractionalHex {
	return FractionalHex{
		Q: f.Q + (o.Q-f.Q)*t,
		R: f.R + (o.R-f.R)*t,
	}
}

// Round returns the lattice coordinate nearest to f.
//
// Each cube component is rounded independently, then the component with the
// largest rounding error is recomputed from the other two so the result lies
// exactly on the lattice.
func (f FractionalHex) Round() Hex {
	fq, fr, fs := f.Q, f.R, f.S()
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Hex{int(q), int(r)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// mod6 maps any integer into 0..5.
func mod6(k int) int {
	m := k % 6
	if m < 0 {
		m += 6
	}
	return m
}
