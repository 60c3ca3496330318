// Package solid bridges hex scenes to the sdfx solid modeling library.
// Columns become extruded hexagonal prisms that can be combined with sdfx
// boolean operations, meshed by marching cubes or written to STL.
//
// Solids use the CAD convention: the layout plane is XY and columns rise
// along +Z.
package solid

import (
	"errors"
	"fmt"

	"github.com/chazu/hexgrid/pkg/hex"
	"github.com/chazu/hexgrid/pkg/mesh"
	"github.com/chazu/hexgrid/pkg/scene"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultMeshCells controls marching cubes resolution along the longest
// bounding box axis.
const DefaultMeshCells = 200

// ErrEmptyScene is returned when a solid is requested for a scene without
// cells.
var ErrEmptyScene = errors.New("solid: scene has no cells")

// HexPrism returns the column of the given height standing on h, with its
// base on z = 0.
func HexPrism(layout hex.Layout, h hex.Hex, height float64) (sdf.SDF3, error) {
	if height <= 0 {
		return nil, fmt.Errorf("solid: prism height %v must be positive", height)
	}
	corners := layout.HexCorners(h)
	poly, err := sdf.Polygon2D(corners[:])
	if err != nil {
		return nil, fmt.Errorf("solid: hexagon outline: %w", err)
	}
	// Extrude3D centers the prism on z = 0.
	prism := sdf.Extrude3D(poly, height)
	return sdf.Transform3D(prism, sdf.Translate3d(v3.Vec{Z: height / 2})), nil
}

// Scene returns the union of the prisms of every cell of s.
func Scene(s *scene.Scene) (sdf.SDF3, error) {
	if s == nil || s.CellCount() == 0 {
		return nil, ErrEmptyScene
	}
	prisms := make([]sdf.SDF3, 0, s.CellCount())
	for _, c := range s.Cells {
		p, err := HexPrism(s.Layout, c.Hex, c.Height)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", c.Hex, err)
		}
		prisms = append(prisms, p)
	}
	if len(prisms) == 1 {
		return prisms[0], nil
	}
	return sdf.Union3D(prisms...), nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes. Every
// triangle gets its own three vertices with the face normal; UVs are zero.
func ToMesh(s sdf.SDF3, cells int) (mesh.MeshInfo, error) {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	numVerts := len(triangles) * 3
	if numVerts > mesh.MaxVertices {
		return mesh.MeshInfo{}, fmt.Errorf("%w: marching cubes produced %d vertices",
			mesh.ErrTooManyVertices, numVerts)
	}

	m := mesh.MeshInfo{
		Vertices: make([]v3.Vec, 0, numVerts),
		Normals:  make([]v3.Vec, 0, numVerts),
		UVs:      make([]v2.Vec, numVerts),
		Indices:  make([]uint16, 0, numVerts),
	}
	for i, tri := range triangles {
		n := tri.Normal()
		for j := range 3 {
			m.Vertices = append(m.Vertices, tri[j])
			m.Normals = append(m.Normals, n)
			m.Indices = append(m.Indices, uint16(i*3+j))
		}
	}
	return m, nil
}

// WriteSTL renders a solid with marching cubes and writes it to path.
func WriteSTL(path string, s sdf.SDF3, cells int) error {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("solid: write %s: %w", path, err)
	}
	return nil
}

// WriteMeshSTL writes the exact triangles of meshes to path, keeping mesh
// coordinates as they are.
func WriteMeshSTL(path string, meshes ...mesh.MeshInfo) error {
	var triangles []*sdf.Triangle3
	for _, m := range meshes {
		for t := 0; t+2 < len(m.Indices); t += 3 {
			triangles = append(triangles, &sdf.Triangle3{
				m.Vertices[m.Indices[t]],
				m.Vertices[m.Indices[t+1]],
				m.Vertices[m.Indices[t+2]],
			})
		}
	}
	if len(triangles) == 0 {
		return fmt.Errorf("solid: write %s: no triangles", path)
	}
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("solid: write %s: %w", path, err)
	}
	return nil
}
