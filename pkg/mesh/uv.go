package mesh

import v2 "github.com/deadsy/sdfx/vec/v2"

// Rect is an axis aligned UV rectangle.
type Rect struct {
	Min v2.Vec `json:"min" yaml:"min"`
	Max v2.Vec `json:"max" yaml:"max"`
}

// UnitRect covers the whole texture.
var UnitRect = Rect{Max: v2.Vec{X: 1, Y: 1}}

// UVOptions customizes generated texture coordinates. Options are applied
// in order: flip, scale, offset, then the result is remapped into Rect.
type UVOptions struct {
	Scale  v2.Vec `json:"scale" yaml:"scale"`
	Offset v2.Vec `json:"offset" yaml:"offset"`
	FlipU  bool   `json:"flip_u" yaml:"flip_u"`
	FlipV  bool   `json:"flip_v" yaml:"flip_v"`
	Rect   Rect   `json:"rect" yaml:"rect"`
}

// DefaultUVOptions returns options that leave UVs unchanged.
func DefaultUVOptions() UVOptions {
	return UVOptions{Scale: v2.Vec{X: 1, Y: 1}, Rect: UnitRect}
}

// AlterUV returns uv with the options applied.
func (o UVOptions) AlterUV(uv v2.Vec) v2.Vec {
	if o.FlipU {
		uv.X = 1 - uv.X
	}
	if o.FlipV {
		uv.Y = 1 - uv.Y
	}
	uv = v2.Vec{X: uv.X*o.Scale.X + o.Offset.X, Y: uv.Y*o.Scale.Y + o.Offset.Y}
	size := o.Rect.Max.Sub(o.Rect.Min)
	return v2.Vec{X: o.Rect.Min.X + uv.X*size.X, Y: o.Rect.Min.Y + uv.Y*size.Y}
}

// AlterUVs applies the options to every element of uvs in place.
func (o UVOptions) AlterUVs(uvs []v2.Vec) {
	for i := range uvs {
		uvs[i] = o.AlterUV(uvs[i])
	}
}

// WrapUV maps a point of the unit circle onto the unit UV square, so that
// the corners of a unit hexagon span the texture.
func WrapUV(p v2.Vec) v2.Vec {
	return v2.Vec{X: (p.X + 1) / 2, Y: (p.Y + 1) / 2}
}
