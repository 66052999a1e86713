package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// arch is a symmetric cubic from (0,0) to (100,0) peaking at (50,75).
var arch = Cubic{Vec(0, 0), Vec(0, 100), Vec(100, 100), Vec(100, 0)}

func TestCubicPointAtTime(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 0), arch.PointAtTime(0))
	diff(t, Vec(100, 0), arch.PointAtTime(1))
	diff(t, Vec(50, 75), arch.PointAtTime(0.5), approx)
}

func TestCubicDerivativeAtTime(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 300), arch.DerivativeAtTime(0), approx)
	diff(t, Vec(0, -300), arch.DerivativeAtTime(1), approx)
	// The peak of the arch is horizontal.
	diff(t, Vec(150, 0), arch.DerivativeAtTime(0.5), approx)
}

func TestCubicSplit(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, ts := range []float64{0.2, 0.5, 0.8} {
		left, right := arch.Split(ts)
		if left.P3 != right.P0 {
			t.Errorf("split at %v: halves do not share the split point", ts)
		}
		diff(t, arch.PointAtTime(ts), left.P3, approx)
		diff(t, arch.P0, left.P0)
		diff(t, arch.P3, right.P3)
		// The halves trace the same curve.
		diff(t, arch.PointAtTime(ts/2), left.PointAtTime(0.5), approx)
		diff(t, arch.PointAtTime(ts+(1-ts)/2), right.PointAtTime(0.5), approx)
	}
}

func TestCubicTrim(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	diff(t, arch, arch.Trim(0, 1), approx)

	mid := arch.Trim(0.25, 0.75)
	diff(t, arch.PointAtTime(0.25), mid.P0, approx)
	diff(t, arch.PointAtTime(0.75), mid.P3, approx)
	diff(t, arch.PointAtTime(0.5), mid.PointAtTime(0.5), approx)

	// Reversed bounds trim the reversed curve.
	rev := arch.Trim(0.75, 0.25)
	diff(t, arch.PointAtTime(0.75), rev.P0, approx)
	diff(t, arch.PointAtTime(0.25), rev.P3, approx)
}

func TestSplitBezier(t *testing.T) {
	left, right := SplitBezier([]Vector2{Vec(0, 0), Vec(10, 0)}, 0.4)
	diff(t, []Vector2{Vec(0, 0), Vec(4, 0)}, left)
	diff(t, []Vector2{Vec(4, 0), Vec(10, 0)}, right)

	// Degree is preserved.
	l3, r3 := SplitBezier([]Vector2{Vec(0, 0), Vec(0, 1), Vec(1, 1)}, 0.5)
	if len(l3) != 3 || len(r3) != 3 {
		t.Fatalf("quadratic split returned lengths %d, %d", len(l3), len(r3))
	}
	if l3[2] != r3[0] {
		t.Error("halves do not share the split point")
	}
}

func TestCubicBounds(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	diff(t, BoundingBox{Min: Vec(0, 0), Max: Vec(100, 100)}, arch.ControlBounds())
	// The tight box stops at the curve's actual peak.
	diff(t, BoundingBox{Min: Vec(0, 0), Max: Vec(100, 75)}, arch.Bounds(), approx)

	// A straight cubic has a degenerate-height box.
	straight := Cubic{Vec(0, 0), Vec(30, 0), Vec(60, 0), Vec(90, 0)}
	diff(t, BoundingBox{Min: Vec(0, 0), Max: Vec(90, 0)}, straight.Bounds(), approx)
}

func TestCubicReverseTransform(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	r := arch.Reverse()
	diff(t, arch.P0, r.P3)
	diff(t, arch.P1, r.P2)
	diff(t, arch.PointAtTime(0.3), r.PointAtTime(0.7), approx)

	moved := arch.Transform(TranslationMatrix(Vec(10, 20)))
	diff(t, Vec(10, 20), moved.P0)
	diff(t, Vec(110, 20), moved.P3)
}

func TestFindRoots(t *testing.T) {
	// A linear control polygon crossing zero halfway has one root at 0.5.
	polygon := make([]Vector2, 6)
	for i := range polygon {
		x := float64(i) / 5
		polygon[i] = Vec(x, Lerp(-1, 1, x))
	}
	roots := FindRoots(polygon)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if !EqualWithinTolerance(roots[0], 0.5, 1e-9) {
		t.Errorf("root = %v, want 0.5", roots[0])
	}

	// No sign change, no roots.
	for i := range polygon {
		polygon[i].Y = 1 + polygon[i].X
	}
	if roots := FindRoots(polygon); len(roots) != 0 {
		t.Errorf("got roots %v for a positive polygon", roots)
	}
}

func TestCubicClosestPoint(t *testing.T) {
	straight := Cubic{Vec(0, 0), Vec(30, 0), Vec(60, 0), Vec(90, 0)}
	pos, ts, dist := straight.ClosestPoint(Vec(45, 10))
	diff(t, Vec(45, 0), pos, cmpopts.EquateApprox(0, 1e-6))
	if !EqualWithinTolerance(ts, 0.5, 1e-6) {
		t.Errorf("t = %v, want 0.5", ts)
	}
	if !EqualWithinTolerance(dist, 10, 1e-6) {
		t.Errorf("distance = %v, want 10", dist)
	}

	// A point beyond the curve's end maps to the endpoint.
	pos, ts, dist = straight.ClosestPoint(Vec(200, 0))
	diff(t, Vec(90, 0), pos)
	if ts != 1 {
		t.Errorf("t = %v, want 1", ts)
	}
	if dist != 110 {
		t.Errorf("distance = %v, want 110", dist)
	}

	// The arch's peak is the closest point to a point high above it.
	pos, _, _ = arch.ClosestPoint(Vec(50, 300))
	diff(t, Vec(50, 75), pos, cmpopts.EquateApprox(0, 1e-6))
}
