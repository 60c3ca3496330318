package hex_test

import (
	"math"
	"testing"

	"github.com/chazu/hexgrid/pkg/hex"
)

func TestDirectionTableIsExhaustive(t *testing.T) {
	seen := make(map[hex.Hex]bool)
	for _, d := range hex.Directions {
		off := d.Offset()
		if off.Length() != 1 {
			t.Errorf("%v offset %v is not a unit step", d, off)
		}
		if seen[off] {
			t.Errorf("%v offset %v is duplicated", d, off)
		}
		seen[off] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct offsets, got %d", len(seen))
	}
	n := 0
	for d := range hex.AllDirections() {
		if d != hex.Directions[n] {
			t.Errorf("AllDirections()[%d] = %v, want %v", n, d, hex.Directions[n])
		}
		n++
	}
	if n != 6 {
		t.Errorf("AllDirections yielded %d directions, want 6", n)
	}
}

func TestDirectionClockwise(t *testing.T) {
	want := map[hex.Direction]hex.Direction{
		hex.Top:         hex.TopRight,
		hex.TopRight:    hex.BottomRight,
		hex.BottomRight: hex.Bottom,
		hex.Bottom:      hex.BottomLeft,
		hex.BottomLeft:  hex.TopLeft,
		hex.TopLeft:     hex.Top,
	}
	for d, next := range want {
		if got := d.Clockwise(); got != next {
			t.Errorf("%v.Clockwise() = %v, want %v", d, got, next)
		}
		if got := next.CounterClockwise(); got != d {
			t.Errorf("%v.CounterClockwise() = %v, want %v", next, got, d)
		}
	}
	for _, d := range hex.Directions {
		cur := d
		for range 6 {
			cur = cur.Clockwise()
		}
		if cur != d {
			t.Errorf("6 clockwise steps from %v ended at %v", d, cur)
		}
	}
}

func TestDirectionRotate(t *testing.T) {
	for _, d := range hex.Directions {
		if got := d.RotateCW(6); got != d {
			t.Errorf("%v.RotateCW(6) = %v", d, got)
		}
		if got := d.RotateCCW(6); got != d {
			t.Errorf("%v.RotateCCW(6) = %v", d, got)
		}
		for n := -13; n <= 13; n++ {
			if got := d.RotateCW(n).RotateCCW(n); got != d {
				t.Errorf("%v.RotateCW(%d).RotateCCW(%d) = %v", d, n, n, got)
			}
			step := d
			for range ((n % 6) + 6) % 6 {
				step = step.Clockwise()
			}
			if got := d.RotateCW(n); got != step {
				t.Errorf("%v.RotateCW(%d) = %v, want %v", d, n, got, step)
			}
		}
		if got := d.RotateCW(3); got != d.Neg() {
			t.Errorf("%v.RotateCW(3) = %v, want %v", d, got, d.Neg())
		}
	}
}

func TestDirectionNeg(t *testing.T) {
	for _, d := range hex.Directions {
		if got := d.Neg().Neg(); got != d {
			t.Errorf("-(-%v) = %v", d, got)
		}
		if d.Neg().Offset() != d.Offset().Neg() {
			t.Errorf("-%v offset mismatch", d)
		}
	}
	if hex.Top.Neg() != hex.Bottom {
		t.Error("Top should be opposite to Bottom")
	}
}

func TestDirectionAngles(t *testing.T) {
	for i, d := range hex.Directions {
		wantPointy := float64(i) * 60
		if got := d.AngleDegrees(hex.Pointy); got != wantPointy {
			t.Errorf("%v pointy angle = %v, want %v", d, got, wantPointy)
		}
		if got := d.AngleDegrees(hex.Flat); got != wantPointy+30 {
			t.Errorf("%v flat angle = %v, want %v", d, got, wantPointy+30)
		}
		if got := d.FlatAngle() - d.PointyAngle(); math.Abs(got-math.Pi/6) > 1e-12 {
			t.Errorf("%v flat/pointy radians offset = %v", d, got)
		}
		for _, o := range []hex.Orientation{hex.Pointy, hex.Flat} {
			if got := hex.FromAngleDegrees(d.AngleDegrees(o), o); got != d {
				t.Errorf("FromAngleDegrees(%v angle, %v) = %v", d, o, got)
			}
			if got := hex.FromAngle(d.Angle(o), o); got != d {
				t.Errorf("FromAngle(%v angle, %v) = %v", d, o, got)
			}
		}
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		o     hex.Orientation
		want  hex.Direction
	}{
		{"pointy 35", 35, hex.Pointy, hex.Top},
		{"flat 35", 35, hex.Flat, hex.TopRight},
		{"flat 0", 0, hex.Flat, hex.TopRight},
		{"flat just below 360", 359.9999, hex.Flat, hex.BottomRight},
		{"pointy 360 wraps", 360, hex.Pointy, hex.TopRight},
		{"flat negative", -10, hex.Flat, hex.BottomRight},
		{"pointy negative", -40, hex.Pointy, hex.BottomRight},
		{"pointy large", 720 + 125, hex.Pointy, hex.TopLeft},
		{"flat past sector boundary", 61, hex.Flat, hex.Top},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hex.FromAngleDegrees(tt.angle, tt.o); got != tt.want {
				t.Errorf("FromAngleDegrees(%v, %v) = %v, want %v", tt.angle, tt.o, got, tt.want)
			}
			rad := tt.angle * math.Pi / 180
			if got := hex.FromAngle(rad, tt.o); got != tt.want {
				t.Errorf("FromAngle(%v, %v) = %v, want %v", rad, tt.o, got, tt.want)
			}
		})
	}
}

func TestFromAngleNeverOutOfRange(t *testing.T) {
	for _, a := range []float64{-1e-15, 2*math.Pi - 1e-15, -2 * math.Pi, 1e9, -1e9} {
		for _, o := range []hex.Orientation{hex.Pointy, hex.Flat} {
			if d := hex.FromAngle(a, o); d > hex.BottomRight {
				t.Errorf("FromAngle(%v, %v) = %d out of range", a, o, d)
			}
		}
	}
}

func TestDiagonalTables(t *testing.T) {
	if got := hex.Top.DiagonalCW(); got != hex.DiagTopRight {
		t.Errorf("Top.DiagonalCW() = %v, want DiagonalTopRight", got)
	}
	if got := hex.Top.DiagonalCCW(); got != hex.DiagTopLeft {
		t.Errorf("Top.DiagonalCCW() = %v, want DiagonalTopLeft", got)
	}
	for _, d := range hex.Directions {
		cw, ccw := d.DiagonalCW(), d.DiagonalCCW()
		// A diagonal is the sum of the two directions around it.
		if cw.Offset() != d.Offset().Add(d.Clockwise().Offset()) {
			t.Errorf("%v.DiagonalCW() = %v does not sit between %v and %v", d, cw, d, d.Clockwise())
		}
		if ccw.Offset() != d.Offset().Add(d.CounterClockwise().Offset()) {
			t.Errorf("%v.DiagonalCCW() = %v does not sit between %v and %v", d, ccw, d, d.CounterClockwise())
		}
		if cw.DirectionCCW() != d || ccw.DirectionCW() != d {
			t.Errorf("%v diagonal/direction tables are not inverse", d)
		}
	}
}

func TestDiagonalDirection(t *testing.T) {
	for _, d := range hex.Diagonals {
		if d.Neg().Neg() != d {
			t.Errorf("-(-%v) != %v", d, d)
		}
		if d.Neg().Offset() != d.Offset().Neg() {
			t.Errorf("-%v offset mismatch", d)
		}
		if d.Clockwise().CounterClockwise() != d {
			t.Errorf("%v cw/ccw not inverse", d)
		}
		if d.RotateCW(6) != d || d.RotateCCW(6) != d {
			t.Errorf("%v six rotations not identity", d)
		}
		for _, o := range []hex.Orientation{hex.Pointy, hex.Flat} {
			if got := hex.DiagonalFromAngleDegrees(d.AngleDegrees(o), o); got != d {
				t.Errorf("DiagonalFromAngleDegrees(%v angle, %v) = %v", d, o, got)
			}
			if got := hex.DiagonalFromAngle(d.Angle(o), o); got != d {
				t.Errorf("DiagonalFromAngle(%v angle, %v) = %v", d, o, got)
			}
		}
	}
	if got := hex.Right.AngleDegrees(hex.Flat); got != 0 {
		t.Errorf("flat Right angle = %v, want 0", got)
	}
	if got := hex.Right.AngleDegrees(hex.Pointy); got != 330 {
		t.Errorf("pointy Right angle = %v, want 330", got)
	}
}

func TestDirectionStrings(t *testing.T) {
	if hex.TopLeft.String() != "TopLeft" {
		t.Errorf("TopLeft.String() = %q", hex.TopLeft.String())
	}
	if hex.Left.String() != "DiagonalLeft" {
		t.Errorf("Left.String() = %q", hex.Left.String())
	}
	if hex.Direction(9).String() != "Direction(9)" {
		t.Errorf("invalid direction string = %q", hex.Direction(9).String())
	}
}
