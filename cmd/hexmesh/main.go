// Command hexmesh evaluates a hex scene script and writes the resulting
// column meshes as JSON buffers or STL.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/chazu/hexgrid/pkg/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to hexmesh.yaml (defaults when empty)")
		scriptPath = flag.String("script", "", "scene script to evaluate (- for stdin)")
		outPath    = flag.String("out", "", "output file (overrides output.path)")
		format     = flag.String("format", "", "output format: json, stl or solid-stl (overrides output.format)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[hexmesh] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}
	if cfg.Output.Path == "" {
		logger.Fatalf("no output path: set -out or output.path")
	}
	if *scriptPath == "" {
		logger.Fatalf("no script: set -script")
	}

	source, err := readScript(*scriptPath)
	if err != nil {
		logger.Fatalf("read script: %v", err)
	}

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Fatalf("init: %v", err)
	}

	result := app.Evaluate(string(source))
	for _, w := range result.Warnings {
		logger.Printf("warning: %s", w.Message)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			if e.Line > 0 {
				logger.Printf("error: line %d: %s", e.Line, e.Message)
			} else {
				logger.Printf("error: %s", e.Message)
			}
		}
		os.Exit(1)
	}

	if err := app.Write(result, cfg.Output.Format, cfg.Output.Path); err != nil {
		logger.Fatalf("write %s: %v", cfg.Output.Path, err)
	}
	logger.Printf("wrote %d cells in %d chunks to %s (%s)",
		result.Scene.CellCount(), len(result.Chunks), cfg.Output.Path, cfg.Output.Format)
}

func readScript(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
