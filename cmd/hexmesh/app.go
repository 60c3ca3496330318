package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chazu/hexgrid/pkg/config"
	"github.com/chazu/hexgrid/pkg/engine"
	"github.com/chazu/hexgrid/pkg/mesh"
	"github.com/chazu/hexgrid/pkg/scene"
	"github.com/chazu/hexgrid/pkg/solid"
	"github.com/chazu/hexgrid/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to open
// chunks. Blocked chunks always use blockedColor.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#1ABC9C", "#F39C12", "#3498DB",
}

const blockedColor = "#E74C3C"

// App runs the script to mesh pipeline for the command.
type App struct {
	engine *engine.Engine
	cfg    config.Config
	logger *log.Logger
}

// MeshData is the JSON-serializable mesh format handed to renderers.
type MeshData struct {
	mesh.Buffers
	Color string `json:"color"`
	Cells int    `json:"cells"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`

	Scene  *scene.Scene       `json:"-"`
	Chunks []tessellate.Chunk `json:"-"`
}

// NewApp creates an App whose engine is seeded from cfg.
func NewApp(cfg config.Config, logger *log.Logger) (*App, error) {
	layout, err := cfg.HexLayout()
	if err != nil {
		return nil, err
	}
	eng := engine.NewEngine()
	eng.Layout = layout
	eng.Defaults = cfg.SceneDefaults()
	return &App{engine: eng, cfg: cfg, logger: logger}, nil
}

// Evaluate takes Lisp source and returns mesh data + errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene.
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		a.logger.Printf("evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	result.Scene = s

	// Step 2: Validation warnings travel with the result; errors stop here.
	validation := scene.ValidateAll(s)
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.Error()})
	}
	if !validation.OK() {
		for _, e := range validation.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Message: e.Error()})
		}
		return result
	}

	// Step 3: Tessellate the scene into chunked column meshes.
	chunks, err := tessellate.Tessellate(s, a.cfg.TessellateOptions())
	if err != nil {
		a.logger.Printf("tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}
	result.Chunks = chunks

	// Step 4: Flatten chunks into renderer buffers.
	open := 0
	for _, c := range chunks {
		b := c.Mesh.Buffers()
		b.Name = c.Name
		color := blockedColor
		if strings.HasPrefix(c.Name, "open") {
			color = colorPalette[open%len(colorPalette)]
			open++
		}
		result.Meshes = append(result.Meshes, MeshData{
			Buffers: b,
			Color:   color,
			Cells:   len(c.Cells),
		})
	}

	return result
}

// Write stores a successful result at path in the given format.
func (a *App) Write(result EvalResult, format, path string) error {
	switch format {
	case config.FormatJSON:
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return os.WriteFile(path, b, 0o644)

	case config.FormatSTL:
		meshes := make([]mesh.MeshInfo, len(result.Chunks))
		for i, c := range result.Chunks {
			meshes[i] = c.Mesh
		}
		return solid.WriteMeshSTL(path, meshes...)

	case config.FormatSolidSTL:
		body, err := solid.Scene(result.Scene)
		if err != nil {
			return err
		}
		return solid.WriteSTL(path, body, a.cfg.Output.MeshCells)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
