package geom

import "math"

// Line is a line segment between two points.
type Line struct {
	P0 Vector2
	P1 Vector2
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Length()
}

// PointAtTime evaluates the line at t, with t in [0, 1] mapping to
// [P0, P1].
func (l Line) PointAtTime(t float64) Vector2 {
	return l.P0.Lerp(l.P1, t)
}

// Reverse returns the line traversed in the opposite direction.
func (l Line) Reverse() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// CrossingPoint computes the point where two lines, extended to
// infinity, would cross. ok is false for parallel lines.
func (l Line) CrossingPoint(o Line) (Vector2, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Vector2{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Add(cd.Mul(h)), true
}

// Nearest returns the squared distance to, and the clamped parameter of,
// the point on the segment closest to pt.
func (l Line) Nearest(pt Vector2) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0 {
		return pt.DistanceSquared(l.P0), 0
	} else if dotp >= dSquared {
		return pt.DistanceSquared(l.P1), 1
	}
	t = dotp / dSquared
	return pt.DistanceSquared(l.PointAtTime(t)), t
}

// Bounds returns the bounding box of the segment.
func (l Line) Bounds() BoundingBox {
	return BoundingBox{Min: l.P0, Max: l.P1}.Canonicalize()
}

// Transform applies m to both endpoints.
func (l Line) Transform(m AffineMatrix) Line {
	return Line{P0: m.Apply(l.P0), P1: m.Apply(l.P1)}
}

// IntersectLine intersects two line segments via the classic 2×2 linear
// system. It returns zero or one intersection; parallel (or nearly
// parallel) lines yield none, as do crossings whose parameter lies
// outside [0, 1] on either line. The returned times are the parameters
// on l and on o respectively.
func (l Line) IntersectLine(o Line) (SegmentIntersection, bool) {
	const epsilon = 1e-9
	dx := o.P1.X - o.P0.X
	dy := o.P1.Y - o.P0.Y

	denom := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(denom) < epsilon {
		// Parallel or coincident.
		return SegmentIntersection{}, false
	}
	t := (dx*(o.P0.Y-l.P0.Y) - dy*(o.P0.X-l.P0.X)) / denom
	if t < -epsilon || t > 1+epsilon {
		return SegmentIntersection{}, false
	}
	u := ((l.P0.X-o.P0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-o.P0.Y)*(l.P1.X-l.P0.X)) / denom
	if u < 0 || u > 1 {
		return SegmentIntersection{}, false
	}
	return SegmentIntersection{Time1: Clamp(t, 0, 1), Time2: u}, true
}

// IsValid reports whether both endpoints are finite.
func (l Line) IsValid() bool {
	return l.P0.IsValid() && l.P1.IsValid()
}
