// Package mesh builds hexagonal triangle meshes: flat hexagon caps and
// extruded columns, as plain vertex/normal/UV/index buffers ready to be
// handed to a renderer.
//
// Meshes face +Y by default. A 2D layout point (x, y) maps to the 3D point
// (x, 0, y).
package mesh

import (
	"errors"
	"fmt"
	"slices"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// MaxVertices is the largest vertex count addressable by 16 bit indices.
const MaxVertices = 1 << 16

var (
	// ErrTooManyVertices is returned when a merge would produce a mesh whose
	// vertices cannot all be addressed by 16 bit indices.
	ErrTooManyVertices = errors.New("mesh: too many vertices for 16 bit indices")
	// ErrZeroFacing is returned when a facing direction has zero length.
	ErrZeroFacing = errors.New("mesh: facing direction has zero length")
	// ErrInvalidMesh is returned by Validate.
	ErrInvalidMesh = errors.New("mesh: invalid mesh")
)

// BaseFacing is the direction every generated mesh faces before rotation.
var BaseFacing = v3.Vec{X: 0, Y: 1, Z: 0}

// MeshInfo is a triangle list mesh. Vertices, Normals and UVs are index
// parallel and every index addresses Vertices.
type MeshInfo struct {
	Vertices []v3.Vec
	Normals  []v3.Vec
	UVs      []v2.Vec
	Indices  []uint16
}

// VertexCount returns the number of vertices.
func (m *MeshInfo) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *MeshInfo) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *MeshInfo) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Rotated returns a copy of m with vertex positions and normals rotated.
// The copy shares no buffer with m.
func (m *MeshInfo) Rotated(r Rotation) MeshInfo {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = r.Apply(v)
	}
	for i, n := range out.Normals {
		out.Normals[i] = r.Apply(n)
	}
	return out
}

// WithOffset returns a copy of m with offset added to every vertex position.
// The copy shares no buffer with m.
func (m *MeshInfo) WithOffset(offset v3.Vec) MeshInfo {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = v.Add(offset)
	}
	return out
}

// MergeWith appends every buffer of other to m. The indices of other are
// rebased by the vertex count of m so both topologies survive. No vertex is
// deduplicated.
//
// If the merged mesh would hold more than MaxVertices vertices, m is left
// untouched and ErrTooManyVertices is returned.
func (m *MeshInfo) MergeWith(other MeshInfo) error {
	base := len(m.Vertices)
	if base+len(other.Vertices) > MaxVertices {
		return fmt.Errorf("%w: %d + %d > %d", ErrTooManyVertices, base, len(other.Vertices), MaxVertices)
	}
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, uint16(base+int(i)))
	}
	return nil
}

// CanMerge reports whether other can be merged into m without overflowing
// the index range.
func (m *MeshInfo) CanMerge(other MeshInfo) bool {
	return len(m.Vertices)+len(other.Vertices) <= MaxVertices
}

// Clone returns a deep copy of m.
func (m *MeshInfo) Clone() MeshInfo {
	return MeshInfo{
		Vertices: slices.Clone(m.Vertices),
		Normals:  slices.Clone(m.Normals),
		UVs:      slices.Clone(m.UVs),
		Indices:  slices.Clone(m.Indices),
	}
}

// Validate checks the buffer invariants: parallel attribute arrays, whole
// triangles and in-range indices.
func (m *MeshInfo) Validate() error {
	n := len(m.Vertices)
	if n > MaxVertices {
		return fmt.Errorf("%w: %d vertices", ErrTooManyVertices, n)
	}
	if n > 0 && (len(m.Normals) != n || len(m.UVs) != n) {
		return fmt.Errorf("%w: %d vertices, %d normals, %d uvs", ErrInvalidMesh, n, len(m.Normals), len(m.UVs))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidMesh, len(m.Indices))
	}
	for pos, i := range m.Indices {
		if int(i) >= n {
			return fmt.Errorf("%w: index %d at %d out of range", ErrInvalidMesh, i, pos)
		}
	}
	return nil
}

// Buffers is a flattened mesh suitable for GPU upload or JSON transport.
// Vertices and Normals hold 3 floats per vertex, UVs 2 floats per vertex and
// Indices 3 entries per triangle.
type Buffers struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	UVs      []float32 `json:"uvs"`      // [u0,v0, u1,v1, ...]
	Indices  []uint16  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name,omitempty"`
}

// Buffers flattens m.
func (m *MeshInfo) Buffers() Buffers {
	b := Buffers{
		Vertices: make([]float32, 0, len(m.Vertices)*3),
		Normals:  make([]float32, 0, len(m.Normals)*3),
		UVs:      make([]float32, 0, len(m.UVs)*2),
		Indices:  append([]uint16(nil), m.Indices...),
	}
	for _, v := range m.Vertices {
		b.Vertices = append(b.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
	}
	for _, n := range m.Normals {
		b.Normals = append(b.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	for _, uv := range m.UVs {
		b.UVs = append(b.UVs, float32(uv.X), float32(uv.Y))
	}
	return b
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int {
	return len(b.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// quad returns a side quad rising height above the edge left -> right.
func quad(left, right, normal v3.Vec, height float64) MeshInfo {
	up := BaseFacing.MulScalar(height)
	return MeshInfo{
		Vertices: []v3.Vec{left, left.Add(up), right.Add(up), right},
		Normals:  []v3.Vec{normal, normal, normal, normal},
		UVs:      []v2.Vec{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		Indices: []uint16{
			1, 2, 3,
			3, 0, 1,
		},
	}
}

// to3D lifts a layout point onto the XZ plane at height y.
func to3D(p v2.Vec, y float64) v3.Vec {
	return v3.Vec{X: p.X, Y: y, Z: p.Y}
}
