// Package config loads the hexmesh YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chazu/hexgrid/pkg/hex"
	"github.com/chazu/hexgrid/pkg/scene"
	"github.com/chazu/hexgrid/pkg/tessellate"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Output formats.
const (
	FormatJSON     = "json"      // chunk buffers as JSON
	FormatSTL      = "stl"       // exact column triangles
	FormatSolidSTL = "solid-stl" // marching cubes over the prism union
)

// Config is the full hexmesh configuration, one section per pipeline
// stage.
type Config struct {
	Layout     LayoutConfig     `yaml:"layout"`
	Column     ColumnConfig     `yaml:"column"`
	Tessellate TessellateConfig `yaml:"tessellate"`
	Output     OutputConfig     `yaml:"output"`
}

// LayoutConfig describes the hex.Layout scripts start from.
type LayoutConfig struct {
	Orientation string `yaml:"orientation"`
	// Size sets both axes. SizeX and SizeY override it per axis; a negative
	// SizeY gives y-down world space.
	Size    float64 `yaml:"size"`
	SizeX   float64 `yaml:"size_x,omitempty"`
	SizeY   float64 `yaml:"size_y,omitempty"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

// ColumnConfig holds the scene defaults: the height of cells added without
// one and the map radius checked by validation (0 disables the check).
type ColumnConfig struct {
	Height    float64 `yaml:"height"`
	MapRadius int     `yaml:"map_radius"`
}

// TessellateConfig mirrors tessellate.Options.
type TessellateConfig struct {
	Subdivisions      int  `yaml:"subdivisions"`
	WithoutBottomFace bool `yaml:"without_bottom_face"`
	Cheap             bool `yaml:"cheap"`
	ChunkVertices     int  `yaml:"chunk_vertices"`
}

// OutputConfig selects what the command writes and where.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
	// MeshCells is the marching cubes resolution of solid-stl output.
	MeshCells int `yaml:"mesh_cells"`
}

// Load reads the configuration at path. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("hexmesh.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("hexmesh.yaml: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Layout: LayoutConfig{
			Orientation: "pointy",
			Size:        1,
		},
		Column: ColumnConfig{
			Height: scene.DefaultHeight,
		},
		Tessellate: TessellateConfig{
			Subdivisions: 1,
		},
		Output: OutputConfig{
			Format:    FormatJSON,
			MeshCells: 200,
		},
	}
}

// Normalize fills derived fields and canonicalizes names.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Layout.Orientation = strings.ToLower(strings.TrimSpace(c.Layout.Orientation))
	if c.Layout.Orientation == "" {
		c.Layout.Orientation = "pointy"
	}
	if c.Layout.SizeX == 0 {
		c.Layout.SizeX = c.Layout.Size
	}
	if c.Layout.SizeY == 0 {
		c.Layout.SizeY = c.Layout.Size
	}
	if c.Tessellate.Subdivisions < 1 {
		c.Tessellate.Subdivisions = 1
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = FormatJSON
	}
}

// Validate checks a normalized copy of c and returns the first problem
// found.
func (c Config) Validate() error {
	c.Normalize()
	if _, err := hex.ParseOrientation(c.Layout.Orientation); err != nil {
		return fmt.Errorf("layout orientation: %w", err)
	}
	if c.Layout.SizeX == 0 || c.Layout.SizeY == 0 {
		return fmt.Errorf("layout size must be non-zero on both axes")
	}
	if c.Column.Height <= 0 {
		return fmt.Errorf("column height must be > 0")
	}
	if c.Column.MapRadius < 0 {
		return fmt.Errorf("column map_radius must be >= 0")
	}
	if c.Tessellate.ChunkVertices < 0 {
		return fmt.Errorf("tessellate chunk_vertices must be >= 0")
	}
	switch c.Output.Format {
	case FormatJSON, FormatSTL, FormatSolidSTL:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.MeshCells < 0 {
		return fmt.Errorf("output mesh_cells must be >= 0")
	}
	return nil
}

// HexLayout returns the configured layout.
func (c Config) HexLayout() (hex.Layout, error) {
	c.Normalize()
	o, err := hex.ParseOrientation(c.Layout.Orientation)
	if err != nil {
		return hex.Layout{}, err
	}
	return hex.Layout{
		Orientation: o,
		Size:        v2.Vec{X: c.Layout.SizeX, Y: c.Layout.SizeY},
		Origin:      v2.Vec{X: c.Layout.OriginX, Y: c.Layout.OriginY},
	}, nil
}

// SceneDefaults returns the defaults applied to evaluated scenes.
func (c Config) SceneDefaults() scene.Defaults {
	return scene.Defaults{Height: c.Column.Height, MapRadius: c.Column.MapRadius}
}

// TessellateOptions returns the options passed to tessellate.Tessellate.
func (c Config) TessellateOptions() tessellate.Options {
	return tessellate.Options{
		Subdivisions:      c.Tessellate.Subdivisions,
		WithoutBottomFace: c.Tessellate.WithoutBottomFace,
		Cheap:             c.Tessellate.Cheap,
		ChunkVertices:     c.Tessellate.ChunkVertices,
	}
}
