package mesh

import (
	"github.com/chazu/hexgrid/pkg/hex"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// capIndices triangulates 6 counter clockwise corners into a cap facing +Y:
// two end triangles and a middle quad.
var capIndices = []uint16{
	0, 2, 1, // top tri
	3, 5, 4, // bottom tri
	0, 5, 3, // mid quad
	3, 2, 0, // mid quad
}

// centerAlignedPlane returns a cap facing +Y centered on the origin, with
// UVs wrapped from the unit hexagon.
func centerAlignedPlane(layout hex.Layout) MeshInfo {
	corners := layout.CenterAlignedHexCorners()
	unit := hex.NewLayout(layout.Orientation, 1).CenterAlignedHexCorners()
	m := MeshInfo{
		Vertices: make([]v3.Vec, 6),
		Normals:  make([]v3.Vec, 6),
		UVs:      make([]v2.Vec, 6),
		Indices:  append([]uint16(nil), capIndices...),
	}
	for i := range corners {
		m.Vertices[i] = to3D(corners[i], 0)
		m.Normals[i] = BaseFacing
		m.UVs[i] = WrapUV(unit[i])
	}
	return m
}

// transform holds the scale, rotation and translation shared by the
// builders. They are applied in that order.
type transform struct {
	layout        hex.Layout
	pos           hex.Hex
	offset        v3.Vec
	scale         v3.Vec
	rotation      Rotation
	centerAligned bool
	err           error
}

func newTransform(layout hex.Layout) transform {
	return transform{
		layout:   layout,
		scale:    v3.Vec{X: 1, Y: 1, Z: 1},
		rotation: Identity(),
	}
}

func (t *transform) facing(dir v3.Vec) {
	r, err := FacingRotation(dir)
	if err != nil {
		if t.err == nil {
			t.err = err
		}
		return
	}
	t.rotation = r
}

// apply scales, rotates then translates m in place. Normals are only
// rotated.
func (t *transform) apply(m *MeshInfo) {
	var pos v2.Vec
	if t.centerAligned {
		pos = t.layout.HexToCenterAlignedWorldPos(t.pos)
	} else {
		pos = t.layout.HexToWorldPos(t.pos)
	}
	translate := sdf.Translate3d(to3D(pos, 0).Add(t.offset))
	srt := translate.Mul(t.rotation.m).Mul(sdf.Scale3d(t.scale))
	for i, v := range m.Vertices {
		m.Vertices[i] = srt.MulPosition(v)
	}
	for i, n := range m.Normals {
		m.Normals[i] = t.rotation.Apply(n)
	}
}

// PlaneBuilder builds a single hexagonal cap of 6 vertices and 4 triangles.
//
// Scale, rotation and translation (At, WithOffset) are applied in that
// order.
type PlaneBuilder struct {
	t  transform
	uv UVOptions
}

// NewPlaneBuilder returns a builder for a cap at hex.Zero facing +Y.
func NewPlaneBuilder(layout hex.Layout) *PlaneBuilder {
	return &PlaneBuilder{t: newTransform(layout), uv: DefaultUVOptions()}
}

// At places the cap on h.
func (b *PlaneBuilder) At(h hex.Hex) *PlaneBuilder {
	b.t.pos = h
	return b
}

// Facing rotates the cap so that its normal points along dir. A zero dir
// makes Build fail with ErrZeroFacing.
func (b *PlaneBuilder) Facing(dir v3.Vec) *PlaneBuilder {
	b.t.facing(dir)
	return b
}

// WithRotation sets a custom rotation, replacing any facing.
func (b *PlaneBuilder) WithRotation(r Rotation) *PlaneBuilder {
	b.t.rotation = r
	return b
}

// WithScale sets a per axis scale factor.
func (b *PlaneBuilder) WithScale(s v3.Vec) *PlaneBuilder {
	b.t.scale = s
	return b
}

// WithOffset sets an extra translation applied after At.
func (b *PlaneBuilder) WithOffset(o v3.Vec) *PlaneBuilder {
	b.t.offset = o
	return b
}

// WithUVOptions sets the UV mapping options.
func (b *PlaneBuilder) WithUVOptions(o UVOptions) *PlaneBuilder {
	b.uv = o
	return b
}

// CenterAligned ignores the layout origin.
func (b *PlaneBuilder) CenterAligned() *PlaneBuilder {
	b.t.centerAligned = true
	return b
}

// Build returns the cap mesh, or the first configuration error.
func (b *PlaneBuilder) Build() (MeshInfo, error) {
	if b.t.err != nil {
		return MeshInfo{}, b.t.err
	}
	m := centerAlignedPlane(b.t.layout)
	b.uv.AlterUVs(m.UVs)
	b.t.apply(&m)
	return m, nil
}
