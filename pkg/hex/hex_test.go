package hex_test

import (
	"testing"

	"github.com/chazu/hexgrid/pkg/hex"
)

func TestArithmetic(t *testing.T) {
	a := hex.New(2, -3)
	b := hex.New(-1, 4)

	if got := a.Add(b); got != hex.New(1, 1) {
		t.Errorf("Add = %v, want (1,1)", got)
	}
	if got := a.Sub(b); got != hex.New(3, -7) {
		t.Errorf("Sub = %v, want (3,-7)", got)
	}
	if got := a.Scale(-2); got != hex.New(-4, 6) {
		t.Errorf("Scale = %v, want (-4,6)", got)
	}
	if got := a.Neg(); got != hex.New(-2, 3) {
		t.Errorf("Neg = %v, want (-2,3)", got)
	}
	if got := a.S(); got != 1 {
		t.Errorf("S = %d, want 1", got)
	}
	c := a.Cube()
	if c[0]+c[1]+c[2] != 0 {
		t.Errorf("cube %v does not sum to zero", c)
	}
}

func TestHexAsMapKey(t *testing.T) {
	m := map[hex.Hex]string{hex.New(1, 2): "a"}
	if m[hex.New(1, 2)] != "a" {
		t.Error("equal coordinates must hash equally")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b hex.Hex
		want int
	}{
		{"same", hex.New(3, 4), hex.New(3, 4), 0},
		{"neighbor", hex.Zero, hex.New(1, -1), 1},
		{"axis", hex.Zero, hex.New(5, 0), 5},
		{"diagonal", hex.Zero, hex.New(2, -1), 2},
		{"mixed", hex.New(-2, 3), hex.New(4, -1), 6},
		{"one", hex.Zero, hex.One, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hex.Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Distance(tt.a); got != tt.want {
				t.Errorf("distance is not symmetric: %d != %d", got, tt.want)
			}
		})
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	pts := hex.Spiral(hex.Zero, 3)
	for _, a := range pts {
		for _, b := range pts {
			for _, c := range []hex.Hex{hex.Zero, hex.New(2, -3), hex.New(-1, 2)} {
				if a.Distance(b) > a.Distance(c)+c.Distance(b) {
					t.Fatalf("triangle inequality broken for %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestNeighbors(t *testing.T) {
	h := hex.New(3, -2)
	for i, n := range h.Neighbors() {
		d := hex.Direction(i)
		if n != h.Neighbor(d) {
			t.Errorf("Neighbors()[%d] = %v, want %v", i, n, h.Neighbor(d))
		}
		if !h.IsNeighbor(n) {
			t.Errorf("%v should be a neighbor of %v", n, h)
		}
		got, ok := h.NeighborDirection(n)
		if !ok || got != d {
			t.Errorf("NeighborDirection(%v) = %v, %v; want %v", n, got, ok, d)
		}
	}
	if _, ok := h.NeighborDirection(h.Add(hex.New(2, 0))); ok {
		t.Error("NeighborDirection should fail for a non adjacent coordinate")
	}
}

func TestDiagonalNeighbors(t *testing.T) {
	h := hex.New(-1, 1)
	for i, n := range h.DiagonalNeighbors() {
		if got := h.Distance(n); got != 2 {
			t.Errorf("diagonal %d at distance %d, want 2", i, got)
		}
		if n != h.DiagonalNeighbor(hex.DiagonalDirection(i)) {
			t.Errorf("DiagonalNeighbors()[%d] mismatch", i)
		}
	}
}

func TestRotate(t *testing.T) {
	h := hex.New(2, -1)

	if got := hex.Top.Offset().RotateCW(); got != hex.TopRight.Offset() {
		t.Errorf("Top rotated cw = %v, want TopRight offset", got)
	}
	if got := h.RotateCWBy(6); got != h {
		t.Errorf("six cw rotations = %v, want %v", got, h)
	}
	if got := h.RotateCWBy(3); got != h.Neg() {
		t.Errorf("half turn = %v, want %v", got, h.Neg())
	}
	for k := -7; k <= 7; k++ {
		if got := h.RotateCWBy(k).RotateCCWBy(k); got != h {
			t.Errorf("k=%d: cw then ccw = %v, want %v", k, got, h)
		}
		if got := h.RotateCWBy(k).Length(); got != h.Length() {
			t.Errorf("k=%d: rotation changed length %d -> %d", k, h.Length(), got)
		}
	}
	// Rotating every neighbor offset once matches Direction.Clockwise.
	for _, d := range hex.Directions {
		if got := d.Offset().RotateCW(); got != d.Clockwise().Offset() {
			t.Errorf("%v offset rotated cw = %v, want %v", d, got, d.Clockwise().Offset())
		}
		if got := d.Offset().RotateCCW(); got != d.CounterClockwise().Offset() {
			t.Errorf("%v offset rotated ccw = %v, want %v", d, got, d.CounterClockwise().Offset())
		}
	}
}

func TestRotateAroundPivot(t *testing.T) {
	pivot := hex.New(5, -3)
	h := pivot.Add(hex.New(1, 0))
	if got := h.RotateCWAround(pivot, 1); got != pivot.Add(hex.New(1, 0).RotateCW()) {
		t.Errorf("RotateCWAround = %v", got)
	}
	if got := h.RotateCCWAround(pivot, 2).RotateCWAround(pivot, 2); got != h {
		t.Errorf("ccw then cw around pivot = %v, want %v", got, h)
	}
	if got := pivot.RotateCWAround(pivot, 4); got != pivot {
		t.Errorf("pivot moved to %v", got)
	}
}

func TestRoundLargestErrorAxis(t *testing.T) {
	tests := []struct {
		name string
		in   hex.FractionalHex
		want hex.Hex
	}{
		{"exact", hex.FractionalHex{Q: 2, R: -1}, hex.New(2, -1)},
		{"near q", hex.FractionalHex{Q: 0.9, R: 0.05}, hex.New(1, 0)},
		// Naive rounding gives (0, 0, -1), which is off the lattice; s
		// carries the largest error and is recomputed.
		{"fix s", hex.FractionalHex{Q: 0.3, R: 0.3}, hex.New(0, 0)},
		{"q largest error", hex.FractionalHex{Q: 0.6, R: 0.3}, hex.New(1, 0)},
		// Naive rounding gives (0, -1, 0); r is recomputed.
		{"fix r", hex.FractionalHex{Q: 0.3, R: -0.6}, hex.New(0, 0)},
		{"half away from zero", hex.FractionalHex{Q: -0.2, R: 0.7}, hex.New(0, 1)},
		{"negative", hex.FractionalHex{Q: -2.1, R: 1.2}, hex.New(-2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Round()
			if got != tt.want {
				t.Errorf("Round(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundAlwaysOnLattice(t *testing.T) {
	for qi := -20; qi <= 20; qi++ {
		for ri := -20; ri <= 20; ri++ {
			f := hex.FractionalHex{Q: float64(qi) * 0.137, R: float64(ri) * 0.211}
			h := f.Round()
			c := h.Cube()
			if c[0]+c[1]+c[2] != 0 {
				t.Fatalf("Round(%+v) = %v breaks the cube invariant", f, h)
			}
			// The rounded hexagon is the one containing the point, so
			// it is never further than one step from the naive rounding.
			if d := h.Fractional(); abs(d.Q-f.Q)+abs(d.R-f.R)+abs(d.S()-f.S()) > 2 {
				t.Fatalf("Round(%+v) = %v is too far", f, h)
			}
		}
	}
}

func TestLerp(t *testing.T) {
	a, b := hex.New(0, 0), hex.New(4, -2)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != hex.New(2, -1) {
		t.Errorf("Lerp(0.5) = %v, want (2,-1)", got)
	}
}

func TestMainDirectionTo(t *testing.T) {
	c := hex.New(1, 1)
	for _, d := range hex.Directions {
		for k := 1; k <= 3; k++ {
			if got := c.MainDirectionTo(c.Add(d.Scale(k))); got != d {
				t.Errorf("MainDirectionTo(%v*%d) = %v, want %v", d, k, got, d)
			}
		}
	}
	if got := c.MainDirectionTo(c); got != hex.TopRight {
		t.Errorf("MainDirectionTo(self) = %v, want TopRight", got)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
