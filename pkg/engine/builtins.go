package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/hexgrid/pkg/hex"
	"github.com/chazu/hexgrid/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms scene script source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: ring-of -> ring_of
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpHex wraps a hex.Hex so it can be passed between builtins.
type sexpHex struct {
	h hex.Hex
}

func (s *sexpHex) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(hex %d %d)", s.h.Q, s.h.R)
}
func (s *sexpHex) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			// Trailing keyword with no value is a flag.
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a SexpInt, or from a SexpFloat holding a whole
// number.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == float64(int(v.Val)) {
			return int(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a SexpBool. A trailing keyword flag
// (SexpNull) counts as true.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return true, nil
		}
	}
	return false, fmt.Errorf("expected boolean, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_flat) and plain strings ("flat").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toHex extracts a coordinate from a sexpHex.
func toHex(s zygo.Sexp) (hex.Hex, error) {
	if v, ok := s.(*sexpHex); ok {
		return v.h, nil
	}
	return hex.Hex{}, fmt.Errorf("expected hex, got %T (%s)", s, s.SexpString(nil))
}

// toOrientation converts :pointy or :flat.
func toOrientation(s zygo.Sexp) (hex.Orientation, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	return hex.ParseOrientation(name)
}

var directionKeywords = map[string]hex.Direction{
	"top-right":    hex.TopRight,
	"top":          hex.Top,
	"top-left":     hex.TopLeft,
	"bottom-left":  hex.BottomLeft,
	"bottom":       hex.Bottom,
	"bottom-right": hex.BottomRight,
}

// toDirection converts a direction keyword such as :top-right.
func toDirection(s zygo.Sexp) (hex.Direction, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	d, ok := directionKeywords[name]
	if !ok {
		return 0, fmt.Errorf("invalid direction %q, expected top-right/top/top-left/bottom-left/bottom/bottom-right", name)
	}
	return d, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// hexList returns hs as a Lisp list of sexpHex values.
func hexList(hs []hex.Hex) zygo.Sexp {
	items := make([]zygo.Sexp, len(hs))
	for i, h := range hs {
		items[i] = &sexpHex{h: h}
	}
	return zygo.MakeList(items)
}

// cellOptions are the keyword arguments shared by every form that adds
// cells.
type cellOptions struct {
	height  float64
	blocked bool
	name    string
}

// parseCellOptions reads :height, :blocked and, when named is set, :name.
// Forms that add several cells pass named false and reject :name.
func parseCellOptions(form string, pa kwArgs, named bool) (cellOptions, error) {
	var o cellOptions
	if v, ok := pa.kw["height"]; ok {
		f, err := toFloat64(v)
		if err != nil {
			return o, fmt.Errorf("%s: height: %w", form, err)
		}
		if f <= 0 {
			return o, fmt.Errorf("%s: height must be positive, got %v", form, f)
		}
		o.height = f
	}
	if v, ok := pa.kw["blocked"]; ok {
		b, err := toBool(v)
		if err != nil {
			return o, fmt.Errorf("%s: blocked: %w", form, err)
		}
		o.blocked = b
	}
	if v, ok := pa.kw["name"]; ok {
		if !named {
			return o, fmt.Errorf("%s: :name only applies to a single column", form)
		}
		n, err := toString(v)
		if err != nil {
			return o, fmt.Errorf("%s: name: %w", form, err)
		}
		o.name = n
	}
	return o, nil
}

// addCells adds one unnamed cell per coordinate.
func addCells(s *scene.Scene, hs []hex.Hex, o cellOptions) {
	for _, h := range hs {
		s.Add(scene.Cell{Hex: h, Height: o.height, Blocked: o.blocked})
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// builtinFunc is the signature zygomys expects from Go builtins.
type builtinFunc = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// builtinFailure keeps the first error returned by a builtin so it can be
// reported verbatim rather than through the interpreter's formatting.
type builtinFailure struct {
	err error
}

func (f *builtinFailure) wrap(fn builtinFunc) builtinFunc {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		out, err := fn(env, name, args)
		if err != nil && f.err == nil {
			f.err = err
		}
		return out, err
	}
}

// registerBuiltins installs the scene DSL builtins into a zygomys environment.
// The builtins operate on the provided Scene, populating it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) *builtinFailure {
	failure := &builtinFailure{}
	add := func(name string, fn builtinFunc) {
		env.AddFunction(name, failure.wrap(fn))
	}

	// -----------------------------------------------------------------------
	// (layout :orientation :flat :size 2 :origin-x 0 :origin-y 0)
	// -----------------------------------------------------------------------
	add("layout", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		l := s.Layout

		if v, ok := pa.kw["orientation"]; ok {
			o, err := toOrientation(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layout: orientation: %w", err)
			}
			l.Orientation = o
		}
		for _, k := range []string{"size", "size-x", "size-y"} {
			v, ok := pa.kw[k]
			if !ok {
				continue
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layout: %s: %w", k, err)
			}
			if f == 0 {
				return zygo.SexpNull, fmt.Errorf("layout: %s must be non-zero", k)
			}
			switch k {
			case "size":
				l.Size.X, l.Size.Y = f, f
			case "size-x":
				l.Size.X = f
			case "size-y":
				l.Size.Y = f
			}
		}
		if v, ok := pa.kw["origin-x"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layout: origin-x: %w", err)
			}
			l.Origin.X = f
		}
		if v, ok := pa.kw["origin-y"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layout: origin-y: %w", err)
			}
			l.Origin.Y = f
		}

		s.Layout = l
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (defaults :height 2 :map-radius 10)
	// -----------------------------------------------------------------------
	add("defaults", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if v, ok := pa.kw["height"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defaults: height: %w", err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("defaults: height must be positive, got %v", f)
			}
			s.Defaults.Height = f
		}
		if v, ok := pa.kw["map-radius"]; ok {
			r, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defaults: map-radius: %w", err)
			}
			s.Defaults.MapRadius = r
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (hex 1 -2)
	// -----------------------------------------------------------------------
	add("hex", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("hex requires exactly 2 arguments, got %d", len(args))
		}
		q, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hex: q: %w", err)
		}
		r, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hex: r: %w", err)
		}
		return &sexpHex{h: hex.New(q, r)}, nil
	})

	// -----------------------------------------------------------------------
	// (neighbor (hex 0 0) :top-right)
	// -----------------------------------------------------------------------
	add("neighbor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("neighbor requires a hex and a direction")
		}
		h, err := toHex(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("neighbor: %w", err)
		}
		d, err := toDirection(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("neighbor: %w", err)
		}
		return &sexpHex{h: h.Neighbor(d)}, nil
	})

	// -----------------------------------------------------------------------
	// (distance (hex 0 0) (hex 2 1))
	// -----------------------------------------------------------------------
	add("distance", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("distance requires exactly 2 arguments, got %d", len(args))
		}
		a, err := toHex(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		b, err := toHex(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		return &zygo.SexpInt{Val: int64(hex.Distance(a, b))}, nil
	})

	// -----------------------------------------------------------------------
	// (column (hex 0 0) :height 2 :blocked true :name "tower")
	// -----------------------------------------------------------------------
	add("column", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("column requires a hex as first argument")
		}
		h, err := toHex(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("column: %w", err)
		}
		o, err := parseCellOptions("column", pa, true)
		if err != nil {
			return zygo.SexpNull, err
		}
		s.Add(scene.Cell{Hex: h, Height: o.height, Blocked: o.blocked, Name: o.name})
		return &sexpHex{h: h}, nil
	})

	// -----------------------------------------------------------------------
	// (cell "tower") returns the coordinate of a named column.
	// -----------------------------------------------------------------------
	add("cell", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("cell requires a name argument")
		}
		cellName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cell: name: %w", err)
		}
		c := s.Lookup(cellName)
		if c == nil {
			return zygo.SexpNull, fmt.Errorf("cell: no cell named %q", cellName)
		}
		return &sexpHex{h: c.Hex}, nil
	})

	// -----------------------------------------------------------------------
	// (ring-of (hex 0 0) 2 :height 1)
	// -----------------------------------------------------------------------
	add("ring_of", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("ring-of requires a center hex and a radius")
		}
		center, err := toHex(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ring-of: center: %w", err)
		}
		radius, err := toInt(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ring-of: radius: %w", err)
		}
		o, err := parseCellOptions("ring-of", pa, false)
		if err != nil {
			return zygo.SexpNull, err
		}
		hs := hex.RingSlice(center, radius)
		addCells(s, hs, o)
		return hexList(hs), nil
	})

	// -----------------------------------------------------------------------
	// (spiral-of (hex 0 0) 0 3 :height 1)
	// -----------------------------------------------------------------------
	add("spiral_of", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 3 {
			return zygo.SexpNull, fmt.Errorf("spiral-of requires a center hex, a min and a max radius")
		}
		center, err := toHex(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("spiral-of: center: %w", err)
		}
		lo, err := toInt(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("spiral-of: min: %w", err)
		}
		hi, err := toInt(pa.positional[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("spiral-of: max: %w", err)
		}
		if lo < 0 || hi < lo {
			return zygo.SexpNull, fmt.Errorf("spiral-of: invalid radius range %d..%d", lo, hi)
		}
		o, err := parseCellOptions("spiral-of", pa, false)
		if err != nil {
			return zygo.SexpNull, err
		}
		var hs []hex.Hex
		for h := range hex.SpiralRange(center, lo, hi) {
			hs = append(hs, h)
		}
		addCells(s, hs, o)
		return hexList(hs), nil
	})

	// -----------------------------------------------------------------------
	// (line-of (hex 0 0) (hex 4 -2) :blocked true)
	// -----------------------------------------------------------------------
	add("line_of", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("line-of requires two hex endpoints")
		}
		a, err := toHex(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line-of: from: %w", err)
		}
		b, err := toHex(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line-of: to: %w", err)
		}
		o, err := parseCellOptions("line-of", pa, false)
		if err != nil {
			return zygo.SexpNull, err
		}
		hs := hex.Line(a, b)
		addCells(s, hs, o)
		return hexList(hs), nil
	})

	// -----------------------------------------------------------------------
	// (columns (list (hex 0 0) (hex 1 0)) :height 3)
	// -----------------------------------------------------------------------
	add("columns", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("columns requires a list of hexes")
		}
		items, err := sexpListToSlice(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("columns: %w", err)
		}
		hs := make([]hex.Hex, 0, len(items))
		for i, item := range items {
			h, err := toHex(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("columns: entry %d: %w", i, err)
			}
			hs = append(hs, h)
		}
		o, err := parseCellOptions("columns", pa, false)
		if err != nil {
			return zygo.SexpNull, err
		}
		addCells(s, hs, o)
		return hexList(hs), nil
	})

	return failure
}
