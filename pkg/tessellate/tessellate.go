// Package tessellate turns a hex scene into triangle meshes. Every cell
// becomes one column; columns are merged into chunks whose vertex count
// stays addressable by 16-bit indices.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/chazu/hexgrid/pkg/hex"
	"github.com/chazu/hexgrid/pkg/mesh"
	"github.com/chazu/hexgrid/pkg/scene"
)

// Options controls column generation.
type Options struct {
	// Subdivisions is the number of stacked quads per column side.
	Subdivisions int
	// WithoutBottomFace drops the bottom cap of every column.
	WithoutBottomFace bool
	// Cheap builds 12 vertex columns with mesh.CheapColumn. Subdivisions
	// and WithoutBottomFace are ignored.
	Cheap bool
	// ChunkVertices caps the vertex count of a chunk. Zero or values above
	// mesh.MaxVertices mean mesh.MaxVertices.
	ChunkVertices int
}

func (o Options) chunkLimit() int {
	if o.ChunkVertices <= 0 || o.ChunkVertices > mesh.MaxVertices {
		return mesh.MaxVertices
	}
	return o.ChunkVertices
}

// Chunk is one renderable mesh and the cells it was built from.
type Chunk struct {
	// Name is "open-N" or "blocked-N", so renderers can style walls.
	Name  string
	Mesh  mesh.MeshInfo
	Cells []hex.Hex
}

// Tessellate builds the chunks of s. Open and blocked cells never share a
// chunk. Chunks are filled in cell order, so the output is deterministic.
// The scene is never mutated.
func Tessellate(s *scene.Scene, opts Options) ([]Chunk, error) {
	if s == nil {
		return nil, nil
	}
	if result := scene.ValidateAll(s); !result.OK() {
		errs := make([]error, len(result.Errors))
		for i, e := range result.Errors {
			errs[i] = e
		}
		return nil, fmt.Errorf("tessellate: invalid scene: %w", errors.Join(errs...))
	}

	open := &chunker{prefix: "open", limit: opts.chunkLimit()}
	blocked := &chunker{prefix: "blocked", limit: opts.chunkLimit()}
	for _, c := range s.Cells {
		col, err := Column(s.Layout, c, opts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: cell %v: %w", c.Hex, err)
		}
		target := open
		if c.Blocked {
			target = blocked
		}
		if err := target.add(c.Hex, col); err != nil {
			return nil, fmt.Errorf("tessellate: cell %v: %w", c.Hex, err)
		}
	}
	return append(open.finish(), blocked.finish()...), nil
}

// Column builds the mesh of a single cell.
func Column(layout hex.Layout, c *scene.Cell, opts Options) (mesh.MeshInfo, error) {
	if opts.Cheap {
		return mesh.CheapColumn(layout, c.Hex, c.Height), nil
	}
	b := mesh.NewColumnBuilder(layout, c.Height).
		At(c.Hex).
		WithSubdivisions(opts.Subdivisions)
	if opts.WithoutBottomFace {
		b = b.WithoutBottomFace()
	}
	return b.Build()
}

// chunker accumulates columns into chunks of at most limit vertices.
type chunker struct {
	prefix string
	limit  int
	done   []Chunk
	cur    Chunk
}

func (ck *chunker) add(h hex.Hex, m mesh.MeshInfo) error {
	if m.VertexCount() > ck.limit {
		return fmt.Errorf("%w: column has %d vertices, chunk limit is %d",
			mesh.ErrTooManyVertices, m.VertexCount(), ck.limit)
	}
	if !ck.cur.Mesh.CanMerge(m) || ck.cur.Mesh.VertexCount()+m.VertexCount() > ck.limit {
		ck.flush()
	}
	if err := ck.cur.Mesh.MergeWith(m); err != nil {
		return err
	}
	ck.cur.Cells = append(ck.cur.Cells, h)
	return nil
}

func (ck *chunker) flush() {
	if ck.cur.Mesh.IsEmpty() {
		return
	}
	ck.cur.Name = fmt.Sprintf("%s-%d", ck.prefix, len(ck.done))
	ck.done = append(ck.done, ck.cur)
	ck.cur = Chunk{}
}

func (ck *chunker) finish() []Chunk {
	ck.flush()
	return ck.done
}
