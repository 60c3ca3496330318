package engine

import (
	"strings"
	"testing"

	"github.com/chazu/hexgrid/pkg/hex"
	"github.com/chazu/hexgrid/pkg/scene"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(column c :name "tower")`,
			expect: `(column c "__kw_name" "tower")`,
		},
		{
			name:   "multiple keywords",
			input:  `(layout :orientation :flat :size 2)`,
			expect: `(layout "__kw_orientation" "__kw_flat" "__kw_size" 2)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(ring-of c 2)`,
			expect: `(ring_of c 2)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `(hex 1 -2)`,
			expect: `(hex 1 -2)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:origin-x`,
			expect: `"__kw_origin-x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// evalScene evaluates source and fails the test on any error.
func evalScene(t *testing.T, source string) *scene.Scene {
	t.Helper()
	s, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s == nil {
		t.Fatal("expected non-nil scene")
	}
	return s
}

// evalFails evaluates source and returns the eval errors, failing the test
// when there are none.
func evalFails(t *testing.T, source string) []EvalError {
	t.Helper()
	s, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil scene on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
	return evalErrs
}

// ---------------------------------------------------------------------------
// Column tests
// ---------------------------------------------------------------------------

func TestSingleColumn(t *testing.T) {
	s := evalScene(t, `(column (hex 1 -2) :height 3 :blocked true :name "tower")`)

	if s.CellCount() != 1 {
		t.Fatalf("expected 1 cell, got %d", s.CellCount())
	}
	tower := s.Lookup("tower")
	if tower == nil {
		t.Fatal("expected cell named 'tower'")
	}
	if tower.Hex != hex.New(1, -2) {
		t.Errorf("expected hex (1, -2), got %v", tower.Hex)
	}
	if tower.Height != 3 {
		t.Errorf("expected height=3, got %f", tower.Height)
	}
	if !tower.Blocked {
		t.Error("expected blocked cell")
	}
}

func TestColumnDefaultHeight(t *testing.T) {
	s := evalScene(t, `
(defaults :height 2.5 :map-radius 4)
(column (hex 0 0))
`)
	if c := s.Get(hex.Zero); c == nil || c.Height != 2.5 {
		t.Fatalf("expected default height 2.5, got %+v", c)
	}
	if s.Defaults.MapRadius != 4 {
		t.Errorf("expected map radius 4, got %d", s.Defaults.MapRadius)
	}
}

func TestVariableReference(t *testing.T) {
	s := evalScene(t, `
(def h 4)
(def c (hex 2 0))
(column c :height h)
(column (neighbor c :top) :name "north")
`)
	if s.CellCount() != 2 {
		t.Fatalf("expected 2 cells, got %d", s.CellCount())
	}
	if c := s.Get(hex.New(2, 0)); c == nil || c.Height != 4 {
		t.Errorf("expected cell (2, 0) with height 4, got %+v", c)
	}
	north := s.Lookup("north")
	if north == nil || north.Hex != hex.New(2, -1) {
		t.Errorf("expected north at (2, -1), got %+v", north)
	}
}

func TestCellLookup(t *testing.T) {
	s := evalScene(t, `
(column (hex 3 1) :name "gate")
(column (neighbor (cell "gate") :bottom-right))
`)
	if s.Get(hex.New(4, 1)) == nil {
		t.Error("expected a column next to the gate")
	}

	errs := evalFails(t, `(cell "missing")`)
	if !strings.Contains(errs[0].Message, "missing") {
		t.Errorf("expected error mentioning the name, got %q", errs[0].Message)
	}
}

// ---------------------------------------------------------------------------
// Shape forms
// ---------------------------------------------------------------------------

func TestRingOf(t *testing.T) {
	s := evalScene(t, `(ring-of (hex 1 1) 2 :height 2 :blocked true)`)
	if s.CellCount() != 12 {
		t.Fatalf("expected 12 cells, got %d", s.CellCount())
	}
	for i, c := range s.Cells {
		if hex.Distance(c.Hex, hex.New(1, 1)) != 2 {
			t.Errorf("cell %d at %v is not on the ring", i, c.Hex)
		}
		if c.Height != 2 || !c.Blocked {
			t.Errorf("cell %d = %+v, want height 2 and blocked", i, c)
		}
	}
}

func TestSpiralOf(t *testing.T) {
	s := evalScene(t, `(spiral-of (hex 0 0) 0 2)`)
	if s.CellCount() != hex.RangeCount(2) {
		t.Fatalf("expected %d cells, got %d", hex.RangeCount(2), s.CellCount())
	}
	if s.Cells[0].Hex != hex.Zero {
		t.Errorf("expected the spiral to start at the center, got %v", s.Cells[0].Hex)
	}

	s = evalScene(t, `(spiral-of (hex 0 0) 1 2)`)
	if s.CellCount() != hex.RangeCount(2)-1 {
		t.Errorf("expected %d cells without the center, got %d", hex.RangeCount(2)-1, s.CellCount())
	}

	evalFails(t, `(spiral-of (hex 0 0) 3 1)`)
}

func TestLineOf(t *testing.T) {
	s := evalScene(t, `(line-of (hex 0 0) (hex 4 -2) :blocked true)`)
	want := hex.Line(hex.Zero, hex.New(4, -2))
	if s.CellCount() != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), s.CellCount())
	}
	for i, h := range want {
		if s.Cells[i].Hex != h {
			t.Errorf("cell %d = %v, want %v", i, s.Cells[i].Hex, h)
		}
	}
}

func TestColumnsFromList(t *testing.T) {
	s := evalScene(t, `(columns (list (hex 0 0) (hex 1 0) (hex 2 0)) :height 5)`)
	if s.CellCount() != 3 {
		t.Fatalf("expected 3 cells, got %d", s.CellCount())
	}
	for _, c := range s.Cells {
		if c.Height != 5 {
			t.Errorf("cell %v height = %v, want 5", c.Hex, c.Height)
		}
	}
}

func TestShapeResultsCompose(t *testing.T) {
	// The list returned by ring-of feeds columns, which overwrites the
	// ring in place with taller columns.
	s := evalScene(t, `
(def r (ring-of (hex 0 0) 1))
(columns r :height 9)
`)
	if s.CellCount() != 6 {
		t.Fatalf("expected 6 cells, got %d", s.CellCount())
	}
	for _, c := range s.Cells {
		if c.Height != 9 {
			t.Errorf("cell %v height = %v, want 9", c.Hex, c.Height)
		}
	}
}

func TestDistance(t *testing.T) {
	// The distance result is used as a coordinate to observe its value.
	s := evalScene(t, `(column (hex (distance (hex 0 0) (hex 2 1)) 0))`)
	if s.Get(hex.New(3, 0)) == nil {
		t.Errorf("expected a column at (3, 0), got %v", s.Cells)
	}
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func TestLayout(t *testing.T) {
	s := evalScene(t, `(layout :orientation :flat :size 2 :origin-x 5 :origin-y -1)`)
	l := s.Layout
	if l.Orientation != hex.Flat {
		t.Errorf("expected flat orientation, got %v", l.Orientation)
	}
	if l.Size.X != 2 || l.Size.Y != 2 {
		t.Errorf("expected size 2, got %v", l.Size)
	}
	if l.Origin.X != 5 || l.Origin.Y != -1 {
		t.Errorf("expected origin (5, -1), got %v", l.Origin)
	}

	s = evalScene(t, `(layout :size-x 3 :size-y -3)`)
	if s.Layout.Size.X != 3 || s.Layout.Size.Y != -3 {
		t.Errorf("expected size (3, -3), got %v", s.Layout.Size)
	}
}

func TestEngineLayoutSeedsScene(t *testing.T) {
	eng := NewEngine()
	eng.Layout = hex.NewLayout(hex.Flat, 4)

	s, evalErrs, err := eng.Evaluate(`(column (hex 0 0))`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("evaluate: %v %v", err, evalErrs)
	}
	if s.Layout != eng.Layout {
		t.Errorf("scene layout = %+v, want %+v", s.Layout, eng.Layout)
	}
}

// ---------------------------------------------------------------------------
// Error reporting
// ---------------------------------------------------------------------------

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		substr string
	}{
		{"hex arity", `(hex 1)`, "exactly 2 arguments"},
		{"hex fractional", `(hex 1.5 0)`, "expected integer"},
		{"column without hex", `(column 3)`, "expected hex"},
		{"negative height", `(column (hex 0 0) :height -1)`, "height must be positive"},
		{"bad orientation", `(layout :orientation :round)`, "orientation"},
		{"zero size", `(layout :size 0)`, "must be non-zero"},
		{"bad direction", `(neighbor (hex 0 0) :up)`, "invalid direction"},
		{"columns entry", `(columns (list (hex 0 0) 4))`, "entry 1"},
		{"ring name", `(ring-of (hex 0 0) 1 :name "rim")`, "ring-of: :name only applies to a single column"},
		{"spiral name", `(spiral-of (hex 0 0) 0 1 :name "floor")`, "spiral-of: :name"},
		{"line name", `(line-of (hex 0 0) (hex 2 0) :name "wall")`, "line-of: :name"},
		{"columns name", `(columns (list (hex 0 0)) :name "x")`, "columns: :name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := evalFails(t, tt.source)
			if !strings.Contains(errs[0].Message, tt.substr) {
				t.Errorf("expected error containing %q, got %q", tt.substr, errs[0].Message)
			}
		})
	}
}

func TestArithmeticStillWorks(t *testing.T) {
	s := evalScene(t, `(column (hex (+ 1 2) (* -1 2)) :height (/ 3.0 2))`)
	c := s.Get(hex.New(3, -2))
	if c == nil {
		t.Fatal("expected a column at (3, -2)")
	}
	if c.Height != 1.5 {
		t.Errorf("expected height 1.5, got %v", c.Height)
	}
}
