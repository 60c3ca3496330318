// Package scene defines the hex scene produced by script evaluation: a
// layout and an ordered set of cells, each extruded into a column of a given
// height. A scene is a plain value; each evaluation produces a new one.
package scene

import (
	"errors"
	"fmt"

	"github.com/chazu/hexgrid/pkg/hex"
)

// DefaultHeight is the column height of cells added without one.
const DefaultHeight = 1.0

// ErrUnknownCell is returned when an operation names a coordinate that has
// no cell.
var ErrUnknownCell = errors.New("scene: unknown cell")

// Defaults contains scene-wide settings.
type Defaults struct {
	Height float64 `json:"height"` // column height for cells without one
	// MapRadius bounds the playable area around hex.Zero. Zero means
	// unbounded.
	MapRadius int `json:"map_radius"`
}

// Cell is one hexagon of the scene.
type Cell struct {
	Hex     hex.Hex `json:"hex"`
	Height  float64 `json:"height"`
	Blocked bool    `json:"blocked"`
	Name    string  `json:"name,omitempty"`
}

// Scene is the top-level data structure produced by script evaluation.
// Cells keep their insertion order so that generated meshes are
// deterministic.
type Scene struct {
	Layout    hex.Layout         `json:"layout"`
	Cells     []*Cell            `json:"cells"`
	NameIndex map[string]hex.Hex `json:"name_index"`
	Defaults  Defaults           `json:"defaults"`

	index map[hex.Hex]int
}

// New creates an empty scene with default settings.
func New(layout hex.Layout) *Scene {
	return &Scene{
		Layout:    layout,
		NameIndex: make(map[string]hex.Hex),
		Defaults:  Defaults{Height: DefaultHeight},
		index:     make(map[hex.Hex]int),
	}
}

// Add inserts c, replacing any cell already on c.Hex in place. A zero
// height takes the scene default.
func (s *Scene) Add(c Cell) *Cell {
	s.ensureIndex()
	if c.Height == 0 {
		c.Height = s.Defaults.Height
	}
	cell := &c
	if i, ok := s.index[c.Hex]; ok {
		if old := s.Cells[i]; old.Name != "" && s.NameIndex[old.Name] == old.Hex {
			delete(s.NameIndex, old.Name)
		}
		s.Cells[i] = cell
	} else {
		s.index[c.Hex] = len(s.Cells)
		s.Cells = append(s.Cells, cell)
	}
	if c.Name != "" {
		s.NameIndex[c.Name] = c.Hex
	}
	return cell
}

// Remove deletes the cell on h.
func (s *Scene) Remove(h hex.Hex) error {
	s.ensureIndex()
	i, ok := s.index[h]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCell, h)
	}
	if name := s.Cells[i].Name; name != "" && s.NameIndex[name] == h {
		delete(s.NameIndex, name)
	}
	s.Cells = append(s.Cells[:i], s.Cells[i+1:]...)
	delete(s.index, h)
	for j := i; j < len(s.Cells); j++ {
		s.index[s.Cells[j].Hex] = j
	}
	return nil
}

// Get returns the cell on h, or nil.
func (s *Scene) Get(h hex.Hex) *Cell {
	s.ensureIndex()
	i, ok := s.index[h]
	if !ok {
		return nil
	}
	return s.Cells[i]
}

// Lookup returns the cell with the given user-assigned name, or nil.
func (s *Scene) Lookup(name string) *Cell {
	h, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Get(h)
}

// MustLookup returns the cell with the given name, or panics.
func (s *Scene) MustLookup(name string) *Cell {
	c := s.Lookup(name)
	if c == nil {
		panic(fmt.Sprintf("scene: no cell named %q", name))
	}
	return c
}

// SetHeight changes the column height of the cell on h.
func (s *Scene) SetHeight(h hex.Hex, height float64) error {
	c := s.Get(h)
	if c == nil {
		return fmt.Errorf("%w: %v", ErrUnknownCell, h)
	}
	c.Height = height
	return nil
}

// SetBlocked changes whether the cell on h blocks sight and movement.
func (s *Scene) SetBlocked(h hex.Hex, blocked bool) error {
	c := s.Get(h)
	if c == nil {
		return fmt.Errorf("%w: %v", ErrUnknownCell, h)
	}
	c.Blocked = blocked
	return nil
}

// CellCount returns the number of cells.
func (s *Scene) CellCount() int {
	return len(s.Cells)
}

// Blocked reports whether h blocks line of sight. Coordinates without a
// cell do not block.
func (s *Scene) Blocked(h hex.Hex) bool {
	c := s.Get(h)
	return c != nil && c.Blocked
}

// Visible returns the coordinates visible from h within radius, using the
// blocked cells as obstacles.
func (s *Scene) Visible(from hex.Hex, radius int) map[hex.Hex]struct{} {
	return hex.FOV(from, radius, s.Blocked)
}

// moveCost charges one per step onto an open cell. Missing and blocked
// cells are impassable, which keeps searches inside the scene.
func (s *Scene) moveCost(h hex.Hex) (int, bool) {
	c := s.Get(h)
	if c == nil || c.Blocked {
		return 0, false
	}
	return 1, true
}

// Path returns the shortest walk between two cells over open cells, or nil
// when there is none.
func (s *Scene) Path(from, to hex.Hex) []hex.Hex {
	return hex.AStar(from, to, s.moveCost)
}

// Reachable returns the open cells reachable from h in at most steps
// moves, with their distance in moves.
func (s *Scene) Reachable(from hex.Hex, steps int) map[hex.Hex]int {
	return hex.FieldOfMovement(from, steps, s.moveCost)
}

// Clone returns a deep copy of s.
func (s *Scene) Clone() *Scene {
	out := New(s.Layout)
	out.Defaults = s.Defaults
	for _, c := range s.Cells {
		cell := *c
		out.index[cell.Hex] = len(out.Cells)
		out.Cells = append(out.Cells, &cell)
	}
	for name, h := range s.NameIndex {
		out.NameIndex[name] = h
	}
	return out
}

// ensureIndex rebuilds the coordinate index of a scene that was decoded
// rather than built with New.
func (s *Scene) ensureIndex() {
	if s.NameIndex == nil {
		s.NameIndex = make(map[string]hex.Hex)
	}
	if s.index != nil && len(s.index) == len(s.Cells) {
		return
	}
	s.index = make(map[hex.Hex]int, len(s.Cells))
	for i, c := range s.Cells {
		s.index[c.Hex] = i
	}
}
