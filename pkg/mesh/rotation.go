package mesh

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const facingEpsilon = 1e-12

// Rotation is a 3D rotation backed by an sdfx transform matrix. The zero
// value is not a valid rotation; start from Identity.
type Rotation struct {
	m sdf.M44
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rotation {
	return Rotation{m: sdf.Identity3d()}
}

// AxisAngle returns the right handed rotation of angle radians around axis.
func AxisAngle(axis v3.Vec, angle float64) Rotation {
	return Rotation{m: sdf.Rotate3d(axis.Normalize(), angle)}
}

// RotationX returns a rotation of angle radians around the X axis.
func RotationX(angle float64) Rotation {
	return Rotation{m: sdf.RotateX(angle)}
}

// RotationY returns a rotation of angle radians around the Y axis.
func RotationY(angle float64) Rotation {
	return Rotation{m: sdf.RotateY(angle)}
}

// RotationZ returns a rotation of angle radians around the Z axis.
func RotationZ(angle float64) Rotation {
	return Rotation{m: sdf.RotateZ(angle)}
}

// FacingRotation returns the shortest rotation taking BaseFacing onto dir.
// A zero length dir has no facing and yields ErrZeroFacing.
func FacingRotation(dir v3.Vec) (Rotation, error) {
	return rotationArc(BaseFacing, dir)
}

// rotationArc returns the shortest rotation taking from onto to.
func rotationArc(from, to v3.Vec) (Rotation, error) {
	if to.Length() < facingEpsilon || from.Length() < facingEpsilon {
		return Rotation{}, fmt.Errorf("%w: %v", ErrZeroFacing, to)
	}
	a, b := from.Normalize(), to.Normalize()
	dot := math.Max(-1, math.Min(1, a.Dot(b)))
	axis := a.Cross(b)
	if axis.Length() < facingEpsilon {
		if dot > 0 {
			return Identity(), nil
		}
		// Opposite vectors: any axis orthogonal to from works.
		return AxisAngle(orthogonal(a), math.Pi), nil
	}
	return AxisAngle(axis, math.Acos(dot)), nil
}

// orthogonal returns a unit vector orthogonal to v.
func orthogonal(v v3.Vec) v3.Vec {
	x := v3.Vec{X: 1}
	if math.Abs(v.X) > 0.9 {
		x = v3.Vec{Z: 1}
	}
	return v.Cross(x).Normalize()
}

// Apply rotates v.
func (r Rotation) Apply(v v3.Vec) v3.Vec {
	return r.m.MulPosition(v)
}

// Then returns the rotation applying r first, then next.
func (r Rotation) Then(next Rotation) Rotation {
	return Rotation{m: next.m.Mul(r.m)}
}

// Matrix returns the underlying transform.
func (r Rotation) Matrix() sdf.M44 {
	return r.m
}
