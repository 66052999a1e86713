package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVector2Arithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(-1, 2)
	diff(t, Vec(2, 6), a.Add(b))
	diff(t, Vec(4, 2), a.Sub(b))
	diff(t, Vec(6, 8), a.Mul(2))
	diff(t, Vec(1.5, 2), a.Div(2))
	diff(t, Vec(-3, 8), a.MulVec(b))
	diff(t, Vec(-3, -4), a.Negate())
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := a.Cross(b); got != 10 {
		t.Errorf("Cross = %v, want 10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.DistanceSquared(b); got != 20 {
		t.Errorf("DistanceSquared = %v, want 20", got)
	}
}

func TestVector2Normalize(t *testing.T) {
	diff(t, Vec(0.6, 0.8), Vec(3, 4).Normalize())
	// A zero vector stays zero rather than producing NaNs.
	diff(t, Vec(0, 0), Vec(0, 0).Normalize())
}

func TestVector2Rotate(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 1), Vec(1, 0).Rotate90())
	diff(t, Vec(1, 0), Vec(0, 1).RotateNeg90())
	diff(t, Vec(0, 1), Vec(1, 0).Rotate(90), approx)
	diff(t, Vec(-1, 0), Vec(1, 0).Rotate(180), approx)
	diff(t, Vec(1, 0), Vec(1, 0).Rotate(360), approx)
}

func TestVector2Angle(t *testing.T) {
	if got := Vec(0, 1).AngleDegrees(); !EqualWithinTolerance(got, 90, 1e-12) {
		t.Errorf("AngleDegrees = %v, want 90", got)
	}
	if got := Vec(1, 1).Angle(); !EqualWithinTolerance(got, math.Pi/4, 1e-12) {
		t.Errorf("Angle = %v, want pi/4", got)
	}
}

func TestVector2Projection(t *testing.T) {
	a := Vec(0, 0)
	b := Vec(100, 0)
	diff(t, Vec(50, 0), Vec(50, 30).ProjectionOntoLine(a, b))
	// The unclamped projection extends past the endpoints.
	diff(t, Vec(150, 0), Vec(150, 30).ProjectionOntoLine(a, b))
	// The clamped one does not.
	diff(t, Vec(100, 0), Vec(150, 30).ProjectionOntoSegment(a, b))
	if got := Vec(50, 10).DistanceToSegment(a, b); got != 10 {
		t.Errorf("DistanceToSegment = %v, want 10", got)
	}
	if got := Vec(130, 40).DistanceToSegment(a, b); got != 50 {
		t.Errorf("DistanceToSegment past end = %v, want 50", got)
	}
}

func TestVector2Lerp(t *testing.T) {
	diff(t, Vec(25, 50), Vec(0, 0).Lerp(Vec(100, 200), 0.25))
	diff(t, Vec(50, 100), Vec(0, 0).Midpoint(Vec(100, 200)))
}

func TestVector2IsValid(t *testing.T) {
	if !Vec(1, 2).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if Vec(math.NaN(), 0).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if Vec(0, math.Inf(1)).IsValid() {
		t.Error("infinite vector reported valid")
	}
}
