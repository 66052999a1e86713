package geom

import (
	"github.com/ctessum/polyclip-go"
)

// Boolean operations on shapes are delegated to a polygon clipping
// engine. Curved segments are flattened to polylines within a caller
// supplied tolerance before clipping, and the resulting contours come
// back as closed polyline paths. Curvature is not reconstructed; a
// caller wanting smooth results should pick a tolerance below its
// display or manufacturing resolution.

// DefaultFlattenTolerance is the maximum distance between a curve and
// its polyline approximation used by the boolean operations when the
// caller passes a non-positive tolerance.
const DefaultFlattenTolerance = 0.1

// Unite returns the union of the two shapes' filled regions.
func Unite(a, b *Shape, tolerance float64) *Shape {
	return construct(a, b, polyclip.UNION, tolerance)
}

// Intersect returns the intersection of the two shapes' filled regions.
func Intersect(a, b *Shape, tolerance float64) *Shape {
	return construct(a, b, polyclip.INTERSECTION, tolerance)
}

// Subtract returns a's filled region minus b's.
func Subtract(a, b *Shape, tolerance float64) *Shape {
	return construct(a, b, polyclip.DIFFERENCE, tolerance)
}

// ExclusiveOr returns the symmetric difference of the two shapes'
// filled regions.
func ExclusiveOr(a, b *Shape, tolerance float64) *Shape {
	return construct(a, b, polyclip.XOR, tolerance)
}

func construct(a, b *Shape, op polyclip.Op, tolerance float64) *Shape {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}
	subject := shapePolygon(a, tolerance)
	clip := shapePolygon(b, tolerance)
	result := subject.Construct(op, clip)

	out := NewShape()
	out.Fill = a.Fill.Clone()
	out.Stroke = a.Stroke.Clone()
	for _, contour := range result {
		if len(contour) < 3 {
			continue
		}
		anchors := make([]*Anchor, len(contour))
		for i, pt := range contour {
			anchors[i] = NewAnchor(Vector2{X: pt.X, Y: pt.Y})
		}
		p := NewPath(anchors...)
		p.Closed = true
		p.Fill = out.Fill.Clone()
		p.Stroke = out.Stroke.Clone()
		out.Paths = append(out.Paths, p)
	}
	return out
}

// shapePolygon flattens every path of s into a clipping contour. Open
// paths are treated as if closed by a straight segment; degenerate
// contours with fewer than three vertices are dropped.
func shapePolygon(s *Shape, tolerance float64) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, p := range s.Paths {
		contour := pathContour(p, tolerance)
		if len(contour) >= 3 {
			poly.Add(contour)
		}
	}
	return poly
}

func pathContour(p *Path, tolerance float64) polyclip.Contour {
	pts := FlattenPath(p, tolerance)
	contour := make(polyclip.Contour, len(pts))
	for i, pt := range pts {
		contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
	}
	// The clipping engine closes contours implicitly; drop a vertex
	// that duplicates the start.
	if n := len(contour); n > 1 && contour[0] == contour[n-1] {
		contour = contour[:n-1]
	}
	return contour
}

// FlattenPath returns a polyline approximation of p whose maximum
// deviation from the true curve stays within tolerance. The polyline
// starts at the first anchor and visits every segment in order; for a
// closed path the starting point is not repeated at the end.
func FlattenPath(p *Path, tolerance float64) []Vector2 {
	if len(p.Anchors) == 0 {
		return nil
	}
	out := []Vector2{p.Anchors[0].Position}
	for i := 0; i < p.SegmentCount(); i++ {
		s := p.Segment(i)
		if s.IsLinear() {
			out = append(out, s.A2.Position)
		} else {
			out = flattenCubic(out, s.Cubic(), tolerance, 0)
		}
	}
	if p.Closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// maxFlattenDepth bounds the adaptive subdivision; 2^16 segments per
// cubic is far below any practical tolerance.
const maxFlattenDepth = 16

// flattenCubic appends a polyline for c (excluding c.P0, which the
// caller has already emitted) to dst, subdividing until the control
// polygon deviates from the chord by at most tolerance.
func flattenCubic(dst []Vector2, c Cubic, tolerance float64, depth int) []Vector2 {
	if depth >= maxFlattenDepth || cubicFlatWithin(c, tolerance) {
		return append(dst, c.P3)
	}
	left, right := c.Split(0.5)
	dst = flattenCubic(dst, left, tolerance, depth+1)
	return flattenCubic(dst, right, tolerance, depth+1)
}

// cubicFlatWithin reports whether the control points of c stay within
// tolerance of the chord P0–P3. The control polygon encloses the curve,
// so this bounds the true deviation as well.
func cubicFlatWithin(c Cubic, tolerance float64) bool {
	if c.P1.DistanceToSegment(c.P0, c.P3) > tolerance {
		return false
	}
	return c.P2.DistanceToSegment(c.P0, c.P3) <= tolerance
}
