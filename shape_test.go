package geom

import (
	"testing"
)

func TestShapeBounds(t *testing.T) {
	s := NewShape(
		PathFromBoundingBox(BoundingBox{Min: Vec(0, 0), Max: Vec(10, 10)}),
		PathFromBoundingBox(BoundingBox{Min: Vec(20, 0), Max: Vec(30, 5)}),
	)
	b, ok := s.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	diff(t, BoundingBox{Min: Vec(0, 0), Max: Vec(30, 10)}, b)

	if _, ok := NewShape().Bounds(); ok {
		t.Error("empty shape has bounds")
	}
}

func TestShapeClosestPoint(t *testing.T) {
	s := NewShape(
		PathFromBoundingBox(BoundingBox{Min: Vec(0, 0), Max: Vec(10, 10)}),
		PathFromBoundingBox(BoundingBox{Min: Vec(20, 0), Max: Vec(30, 5)}),
	)
	hit, ok := s.ClosestPointWithinDistance(Vec(19, 2), 100)
	if !ok {
		t.Fatal("no hit")
	}
	diff(t, Vec(20, 2), hit.Position)
	if hit.Distance != 1 {
		t.Errorf("distance = %v, want 1", hit.Distance)
	}
}

func TestShapeStyleForwarding(t *testing.T) {
	p1 := PathFromBoundingBox(BoundingBox{Min: Vec(0, 0), Max: Vec(1, 1)})
	p2 := PathFromBoundingBox(BoundingBox{Min: Vec(2, 2), Max: Vec(3, 3)})
	s := NewShape(p1, p2)
	stroke := &Stroke{Width: 3}
	s.SetStroke(stroke)
	if s.Stroke != stroke {
		t.Error("stroke not recorded on the shape")
	}
	if p1.Stroke.Width != 3 || p2.Stroke.Width != 3 {
		t.Error("stroke did not reach every path")
	}
	// Each path owns its own record.
	if p1.Stroke == stroke || p1.Stroke == p2.Stroke {
		t.Error("paths share a stroke record")
	}
}

func TestShapeAffine(t *testing.T) {
	s := NewShape(PathFromBoundingBox(BoundingBox{Min: Vec(0, 0), Max: Vec(1, 1)}))
	s.SetStroke(&Stroke{Width: 2})
	s.Affine(ScalingMatrix(3, 3))
	b, _ := s.Bounds()
	diff(t, BoundingBox{Min: Vec(0, 0), Max: Vec(3, 3)}, b)
	if s.Stroke.Width != 6 {
		t.Errorf("stroke width = %v, want 6", s.Stroke.Width)
	}
}

func TestShapeClone(t *testing.T) {
	s := NewShape(PathFromBoundingBox(BoundingBox{Min: Vec(0, 0), Max: Vec(1, 1)}))
	s.Fill = &Fill{Color: Color{G: 1, A: 1}}
	c := s.Clone()
	c.Paths[0].Anchors[0].Position = Vec(-5, -5)
	c.Fill.Color.G = 0
	diff(t, Vec(0, 0), s.Paths[0].Anchors[0].Position)
	if s.Fill.Color.G != 1 {
		t.Error("clone shares the fill")
	}
}
