package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func lineSegment(a, b Vector2) Segment {
	return Segment{A1: *NewAnchor(a), A2: *NewAnchor(b)}
}

// straightCubicSegment builds a curved-kind segment that traces the
// straight line a–b with uniform parametrization.
func straightCubicSegment(a, b Vector2) Segment {
	third := b.Sub(a).Div(3)
	return Segment{
		A1: *NewAnchorWithHandles(a, Vector2{}, third),
		A2: *NewAnchorWithHandles(b, third.Negate(), Vector2{}),
	}
}

func TestSegmentKind(t *testing.T) {
	if !lineSegment(Vec(0, 0), Vec(10, 0)).IsLinear() {
		t.Error("handle-less segment not linear")
	}
	if straightCubicSegment(Vec(0, 0), Vec(10, 0)).IsLinear() {
		t.Error("handled segment reported linear")
	}
}

func TestSegmentPointAtTime(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	l := lineSegment(Vec(0, 0), Vec(100, 0))
	diff(t, Vec(25, 0), l.PointAtTime(0.25))

	c := straightCubicSegment(Vec(0, 0), Vec(100, 0))
	diff(t, Vec(50, 0), c.PointAtTime(0.5), approx)
}

func TestSegmentLength(t *testing.T) {
	if got := lineSegment(Vec(0, 0), Vec(30, 40)).Length(); got != 50 {
		t.Errorf("linear length = %v, want 50", got)
	}

	// A straight cubic's sampled length matches the chord exactly.
	c := straightCubicSegment(Vec(0, 0), Vec(100, 0))
	if got := c.Length(); !EqualWithinTolerance(got, 100, 1e-9) {
		t.Errorf("straight cubic length = %v, want 100", got)
	}

	// A genuinely curved segment is longer than its chord.
	curved := Segment{
		A1: *NewAnchorWithHandles(Vec(0, 0), Vector2{}, Vec(0, 100)),
		A2: *NewAnchorWithHandles(Vec(100, 0), Vec(0, 100), Vector2{}),
	}
	if got := curved.Length(); got <= 100 {
		t.Errorf("curved length = %v, want > 100", got)
	}
}

func TestSegmentIntersectionsLineLine(t *testing.T) {
	s1 := lineSegment(Vec(0, 0), Vec(100, 100))
	s2 := lineSegment(Vec(0, 100), Vec(100, 0))
	ixs := SegmentIntersections(s1, s2)
	if len(ixs) != 1 {
		t.Fatalf("got %d intersections, want 1", len(ixs))
	}
	if !EqualWithinTolerance(ixs[0].Time1, 0.5, 1e-9) || !EqualWithinTolerance(ixs[0].Time2, 0.5, 1e-9) {
		t.Errorf("times = (%v, %v), want (0.5, 0.5)", ixs[0].Time1, ixs[0].Time2)
	}

	if ixs := SegmentIntersections(s1, lineSegment(Vec(200, 0), Vec(300, 0))); len(ixs) != 0 {
		t.Errorf("disjoint segments intersect: %v", ixs)
	}
}

func TestSegmentIntersectionsLineCubic(t *testing.T) {
	horizontal := lineSegment(Vec(0, 0), Vec(100, 0))
	vertical := straightCubicSegment(Vec(50, -50), Vec(50, 50))

	ixs := SegmentIntersections(horizontal, vertical)
	if len(ixs) != 1 {
		t.Fatalf("got %d intersections, want 1", len(ixs))
	}
	if !EqualWithinTolerance(ixs[0].Time1, 0.5, 1e-6) {
		t.Errorf("line time = %v, want 0.5", ixs[0].Time1)
	}
	if !EqualWithinTolerance(ixs[0].Time2, 0.5, 1e-6) {
		t.Errorf("cubic time = %v, want 0.5", ixs[0].Time2)
	}

	// With the operands swapped, Time1 belongs to the cubic.
	ixs = SegmentIntersections(vertical, horizontal)
	if len(ixs) != 1 {
		t.Fatalf("swapped: got %d intersections, want 1", len(ixs))
	}
	if !EqualWithinTolerance(ixs[0].Time1, 0.5, 1e-6) || !EqualWithinTolerance(ixs[0].Time2, 0.5, 1e-6) {
		t.Errorf("swapped times = (%v, %v)", ixs[0].Time1, ixs[0].Time2)
	}
}

func TestSegmentIntersectionsCubicCubic(t *testing.T) {
	a := straightCubicSegment(Vec(0, 0), Vec(100, 0)).Cubic()
	b := straightCubicSegment(Vec(50, -50), Vec(50, 50)).Cubic()

	ixs := CubicCubicIntersections(a, b)
	if len(ixs) != 1 {
		t.Fatalf("got %d intersections, want 1", len(ixs))
	}
	if !EqualWithinTolerance(ixs[0].Time1, 0.5, 1e-4) {
		t.Errorf("Time1 = %v, want 0.5", ixs[0].Time1)
	}
	if !EqualWithinTolerance(ixs[0].Time2, 0.5, 1e-4) {
		t.Errorf("Time2 = %v, want 0.5", ixs[0].Time2)
	}

	// An arch and its horizontal mirror cross twice.
	up := Cubic{Vec(0, 0), Vec(0, 100), Vec(100, 100), Vec(100, 0)}
	down := Cubic{Vec(0, 50), Vec(0, -50), Vec(100, -50), Vec(100, 50)}
	if ixs := CubicCubicIntersections(up, down); len(ixs) != 2 {
		t.Errorf("got %d intersections, want 2", len(ixs))
	}

	// Coincident curves report no discrete intersections.
	if ixs := CubicCubicIntersections(up, up); len(ixs) != 0 {
		t.Errorf("coincident curves: %v", ixs)
	}
	if ixs := CubicCubicIntersections(up, up.Reverse()); len(ixs) != 0 {
		t.Errorf("reversed coincident curves: %v", ixs)
	}
}

func TestSegmentControlBounds(t *testing.T) {
	s := Segment{
		A1: *NewAnchorWithHandles(Vec(0, 0), Vector2{}, Vec(0, 100)),
		A2: *NewAnchorWithHandles(Vec(100, 0), Vec(0, 100), Vector2{}),
	}
	diff(t, BoundingBox{Min: Vec(0, 0), Max: Vec(100, 100)}, s.ControlBounds())
}
