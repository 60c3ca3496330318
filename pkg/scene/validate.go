package scene

import (
	"fmt"
	"math"

	"github.com/chazu/hexgrid/pkg/hex"
)

// ValidationSeverity indicates whether a validation finding blocks mesh
// generation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks generation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Hex      *hex.Hex           // which cell has the problem (nil if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Hex == nil {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] cell %v: %s", e.Severity, *e.Hex, e.Message)
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// OK reports whether the result holds no blocking error.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs every check on s and returns all findings. An empty slice
// means the scene is valid. It never mutates the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateLayout(s)...)
	errs = append(errs, validateHeights(s)...)
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateBounds(s)...)
	return errs
}

// ValidateAll runs Validate and separates errors from warnings.
func ValidateAll(s *Scene) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(s) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, e)
		} else {
			result.Errors = append(result.Errors, e)
		}
	}
	return result
}

func sceneError(msg string, args ...any) ValidationError {
	return ValidationError{Message: fmt.Sprintf(msg, args...), Severity: SeverityError}
}

func cellError(h hex.Hex, sev ValidationSeverity, msg string, args ...any) ValidationError {
	return ValidationError{Hex: &h, Message: fmt.Sprintf(msg, args...), Severity: sev}
}

// validateLayout rejects layouts that cannot be inverted.
func validateLayout(s *Scene) []ValidationError {
	var errs []ValidationError
	size := s.Layout.Size
	if size.X == 0 || size.Y == 0 || math.IsNaN(size.X) || math.IsNaN(size.Y) {
		errs = append(errs, sceneError("layout size %v must be non-zero on both axes", size))
	}
	if o := s.Layout.Orientation; o != hex.Pointy && o != hex.Flat {
		errs = append(errs, sceneError("unknown orientation %v", o))
	}
	return errs
}

func validateHeights(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, c := range s.Cells {
		switch {
		case math.IsNaN(c.Height) || math.IsInf(c.Height, 0):
			errs = append(errs, cellError(c.Hex, SeverityError, "height %v is not finite", c.Height))
		case c.Height <= 0:
			errs = append(errs, cellError(c.Hex, SeverityError, "height %v must be positive", c.Height))
		}
	}
	return errs
}

// validateNames reports names shared by several cells. Only the last one
// is reachable through Lookup.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]hex.Hex)
	for _, c := range s.Cells {
		if c.Name == "" {
			continue
		}
		if first, dup := seen[c.Name]; dup {
			errs = append(errs, cellError(c.Hex, SeverityError, "name %q already used by cell %v", c.Name, first))
			continue
		}
		seen[c.Name] = c.Hex
	}
	return errs
}

func validateBounds(s *Scene) []ValidationError {
	if s.Defaults.MapRadius <= 0 {
		return nil
	}
	var errs []ValidationError
	for _, c := range s.Cells {
		if d := c.Hex.Length(); d > s.Defaults.MapRadius {
			errs = append(errs, cellError(c.Hex, SeverityWarning,
				"outside map radius %d (distance %d)", s.Defaults.MapRadius, d))
		}
	}
	return errs
}
