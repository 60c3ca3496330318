package mesh

import (
	"math"

	"github.com/chazu/hexgrid/pkg/hex"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ColumnBuilder builds an extruded hexagonal column anchored at the center
// of its bottom face. By default the column has both caps and one quad per
// side.
//
// Scale (WithScale), rotation (WithRotation, Facing) and translation (At,
// WithOffset) are applied in that order. To pivot around the column center,
// offset by half the height before anything else sees the mesh:
//
//	NewColumnBuilder(layout, h).WithOffset(v3.Vec{Y: -h / 2})
type ColumnBuilder struct {
	t            transform
	height       float64
	subdivisions int
	topFace      bool
	bottomFace   bool
	sidesUV      [6]UVOptions
	capsUV       UVOptions
}

// NewColumnBuilder returns a builder for a column of the given height at
// hex.Zero.
func NewColumnBuilder(layout hex.Layout, height float64) *ColumnBuilder {
	b := &ColumnBuilder{
		t:          newTransform(layout),
		height:     height,
		topFace:    true,
		bottomFace: true,
		capsUV:     DefaultUVOptions(),
	}
	for i := range b.sidesUV {
		b.sidesUV[i] = DefaultUVOptions()
	}
	return b
}

// At places the column on h.
func (b *ColumnBuilder) At(h hex.Hex) *ColumnBuilder {
	b.t.pos = h
	return b
}

// Facing rotates the column so that its axis points along dir. A zero dir
// makes Build fail with ErrZeroFacing.
func (b *ColumnBuilder) Facing(dir v3.Vec) *ColumnBuilder {
	b.t.facing(dir)
	return b
}

// WithRotation sets a custom rotation, replacing any facing.
func (b *ColumnBuilder) WithRotation(r Rotation) *ColumnBuilder {
	b.t.rotation = r
	return b
}

// WithScale sets a per axis scale factor.
func (b *ColumnBuilder) WithScale(s v3.Vec) *ColumnBuilder {
	b.t.scale = s
	return b
}

// WithOffset sets an extra translation applied after At.
func (b *ColumnBuilder) WithOffset(o v3.Vec) *ColumnBuilder {
	b.t.offset = o
	return b
}

// WithSubdivisions sets the number of stacked quads on each side. Values
// below 1 mean 1.
func (b *ColumnBuilder) WithSubdivisions(n int) *ColumnBuilder {
	b.subdivisions = n
	return b
}

// WithoutTopFace drops the top cap.
func (b *ColumnBuilder) WithoutTopFace() *ColumnBuilder {
	b.topFace = false
	return b
}

// WithoutBottomFace drops the bottom cap.
func (b *ColumnBuilder) WithoutBottomFace() *ColumnBuilder {
	b.bottomFace = false
	return b
}

// WithCapsUVOptions sets the UV options of both caps.
func (b *ColumnBuilder) WithCapsUVOptions(o UVOptions) *ColumnBuilder {
	b.capsUV = o
	return b
}

// WithSidesUVOptions sets the same UV options on every side.
func (b *ColumnBuilder) WithSidesUVOptions(o UVOptions) *ColumnBuilder {
	for i := range b.sidesUV {
		b.sidesUV[i] = o
	}
	return b
}

// WithMultiSidesUVOptions sets the UV options of each side. Side i runs from
// corner i to corner i+1.
func (b *ColumnBuilder) WithMultiSidesUVOptions(o [6]UVOptions) *ColumnBuilder {
	b.sidesUV = o
	return b
}

// CenterAligned ignores the layout origin.
func (b *ColumnBuilder) CenterAligned() *ColumnBuilder {
	b.t.centerAligned = true
	return b
}

// VertexCount returns the number of vertices Build will produce.
func (b *ColumnBuilder) VertexCount() int {
	n := 6 * 4 * max(b.subdivisions, 1)
	if b.topFace {
		n += 6
	}
	if b.bottomFace {
		n += 6
	}
	return n
}

// Build returns the column mesh, or the first configuration error.
func (b *ColumnBuilder) Build() (MeshInfo, error) {
	if b.t.err != nil {
		return MeshInfo{}, b.t.err
	}
	if b.VertexCount() > MaxVertices {
		return MeshInfo{}, ErrTooManyVertices
	}

	capMesh := centerAlignedPlane(b.t.layout)
	b.capsUV.AlterUVs(capMesh.UVs)

	var m MeshInfo
	subdivisions := max(b.subdivisions, 1)
	delta := b.height / float64(subdivisions)
	corners := b.t.layout.CenterAlignedHexCorners()
	for side := range 6 {
		left, right := corners[side], corners[(side+1)%6]
		normal := to3D(left.Add(right), 0).Normalize()
		for div := range subdivisions {
			y := delta * float64(div)
			q := quad(to3D(left, y), to3D(right, y), normal, delta)
			b.sidesUV[side].AlterUVs(q.UVs)
			if err := m.MergeWith(q); err != nil {
				return MeshInfo{}, err
			}
		}
	}
	if b.topFace {
		if err := m.MergeWith(capMesh.WithOffset(BaseFacing.MulScalar(b.height))); err != nil {
			return MeshInfo{}, err
		}
	}
	if b.bottomFace {
		if err := m.MergeWith(capMesh.Rotated(RotationX(math.Pi))); err != nil {
			return MeshInfo{}, err
		}
	}
	b.t.apply(&m)
	return m, nil
}

// CheapColumn returns a 12 vertex column on h without a bottom face. No
// vertex is duplicated, so normals point out of the corners and side UVs
// are stretched. It suits collision shapes rather than rendering.
func CheapColumn(layout hex.Layout, h hex.Hex, height float64) MeshInfo {
	corners := layout.HexCorners(h)
	center := layout.HexToWorldPos(h)
	unit := hex.NewLayout(layout.Orientation, 1).CenterAlignedHexCorners()

	m := MeshInfo{
		Vertices: make([]v3.Vec, 12),
		Normals:  make([]v3.Vec, 12),
		UVs:      make([]v2.Vec, 12),
	}
	for i, c := range corners {
		n := to3D(c.Sub(center), 0).Normalize()
		m.Vertices[i] = to3D(c, height)
		m.Vertices[i+6] = to3D(c, 0)
		m.Normals[i], m.Normals[i+6] = n, n
		m.UVs[i], m.UVs[i+6] = WrapUV(unit[i]), WrapUV(unit[i])
	}
	m.Indices = append(m.Indices, capIndices...)
	for i := range uint16(6) {
		top, next := i, (i+1)%6
		m.Indices = append(m.Indices,
			top, next, next+6,
			next+6, top+6, top,
		)
	}
	return m
}
