package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAxisProject(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	a := NewAxis(Vec(0, 0), Vec(1, 1))
	diff(t, Vec(5, 5), a.Project(Vec(10, 0)), approx)
	// Projection is onto the infinite line, not a segment.
	diff(t, Vec(-5, -5), a.Project(Vec(0, -10)), approx)
	// Direction length does not matter.
	diff(t, a.Project(Vec(10, 0)), NewAxis(Vec(0, 0), Vec(7, 7)).Project(Vec(10, 0)), approx)
}

func TestAxisClosestPoint(t *testing.T) {
	a := NewAxis(Vec(0, 0), Vec(1, 0))
	hit, ok := a.ClosestPointWithinDistance(Vec(30, 4), 10)
	if !ok {
		t.Fatal("no hit")
	}
	diff(t, Vec(30, 0), hit.Position)
	if hit.Distance != 4 {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
	if _, ok := a.ClosestPointWithinDistance(Vec(30, 40), 10); ok {
		t.Error("hit outside the search radius")
	}
}

func TestAxisNoBoundsNoStyle(t *testing.T) {
	a := NewAxis(Vec(0, 0), Vec(1, 0))
	if _, ok := a.Bounds(); ok {
		t.Error("axis has bounds")
	}
	if _, ok := a.LooseBounds(); ok {
		t.Error("axis has loose bounds")
	}
	if a.AllPaths() != nil {
		t.Error("axis has paths")
	}

	defer func() {
		if recover() == nil {
			t.Error("SetFill on an axis did not panic")
		}
	}()
	a.SetFill(&Fill{})
}

func TestAxisValidity(t *testing.T) {
	if NewAxis(Vec(0, 0), Vec(0, 0)).IsValid() {
		t.Error("zero-direction axis reported valid")
	}
	if !NewAxis(Vec(1, 2), Vec(0, 1)).IsValid() {
		t.Error("well-formed axis reported invalid")
	}
}
