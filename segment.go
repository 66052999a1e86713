package geom

import (
	"math"
	"slices"
)

// Segment is the curve between two adjacent path anchors. It is
// classified linear if both adjoining handles (HandleOut of the first
// anchor, HandleIn of the second) are zero; otherwise it is a cubic
// whose interior control points are the anchors' absolute handle
// positions.
//
// A segment holds snapshots of its two anchors; it does not alias the
// owning path.
type Segment struct {
	A1 Anchor
	A2 Anchor
}

// cubicLengthSamples is the number of polyline samples used to
// approximate the arc length of a cubic segment. A deliberate
// accuracy/cost tradeoff; the length is not analytically integrated.
const cubicLengthSamples = 16

// IsLinear reports whether the segment is a straight line.
func (s Segment) IsLinear() bool {
	return s.A1.HandleOut.IsZero() && s.A2.HandleIn.IsZero()
}

// Line returns the segment as a line. Meaningful only for linear
// segments.
func (s Segment) Line() Line {
	return Line{P0: s.A1.Position, P1: s.A2.Position}
}

// Cubic returns the segment's four effective control points.
func (s Segment) Cubic() Cubic {
	return Cubic{
		P0: s.A1.Position,
		P1: s.A1.absoluteHandleOut(),
		P2: s.A2.absoluteHandleIn(),
		P3: s.A2.Position,
	}
}

// PointAtTime evaluates the segment at t in [0, 1].
func (s Segment) PointAtTime(t float64) Vector2 {
	if s.IsLinear() {
		return s.Line().PointAtTime(t)
	}
	return s.Cubic().PointAtTime(t)
}

// Length returns the segment's arc length: exact for linear segments,
// a 16-sample polyline approximation for cubic ones.
func (s Segment) Length() float64 {
	if s.IsLinear() {
		return s.Line().Length()
	}
	return polylineLength(s.Cubic())
}

// lengthUpTo returns the arc length of the segment portion [0, t].
func (s Segment) lengthUpTo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if s.IsLinear() {
		return s.Line().Length() * min(t, 1)
	}
	return polylineLength(s.Cubic().Trim(0, min(t, 1)))
}

func polylineLength(c Cubic) float64 {
	var sum float64
	prev := c.P0
	for i := 1; i <= cubicLengthSamples; i++ {
		p := c.PointAtTime(float64(i) / cubicLengthSamples)
		sum += prev.Distance(p)
		prev = p
	}
	return sum
}

// ControlBounds returns a cheap conservative bounding box: the control
// polygon bound for cubic segments, the endpoint bound for linear ones.
func (s Segment) ControlBounds() BoundingBox {
	if s.IsLinear() {
		return s.Line().Bounds()
	}
	return s.Cubic().ControlBounds()
}

// SegmentIntersection is one crossing of two segments, as parameters on
// each.
type SegmentIntersection struct {
	Time1 float64
	Time2 float64
}

// SegmentIntersections computes the crossings of two segments,
// dispatching on their linear/cubic classification. Identical or
// overlapping curves produce zero crossings, since "intersection" is
// not well-defined for a continuum of shared points.
func SegmentIntersections(s1, s2 Segment) []SegmentIntersection {
	switch {
	case s1.IsLinear() && s2.IsLinear():
		if ix, ok := s1.Line().IntersectLine(s2.Line()); ok {
			return []SegmentIntersection{ix}
		}
		return nil
	case s1.IsLinear():
		return LineCubicIntersections(s1.Line(), s2.Cubic())
	case s2.IsLinear():
		return swapIntersectionTimes(LineCubicIntersections(s2.Line(), s1.Cubic()))
	default:
		return CubicCubicIntersections(s1.Cubic(), s2.Cubic())
	}
}

func swapIntersectionTimes(ixs []SegmentIntersection) []SegmentIntersection {
	for i := range ixs {
		ixs[i].Time1, ixs[i].Time2 = ixs[i].Time2, ixs[i].Time1
	}
	return ixs
}

// LineCubicIntersections computes the crossings of a line segment and a
// cubic. The cubic's control points are projected onto the line's
// perpendicular to obtain a signed distance, which is a degree-3
// polynomial in the cubic's parameter; its roots in [0, 1] whose
// corresponding points also lie within the line's own [0, 1] range are
// the crossings. Time1 is the parameter on the line, Time2 on the
// cubic.
func LineCubicIntersections(l Line, c Cubic) []SegmentIntersection {
	const epsilon = 1e-9
	dx := l.P1.X - l.P0.X
	dy := l.P1.Y - l.P0.Y

	px0, px1, px2, px3 := cubicPolynomialCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicPolynomialCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	c0 := dy*(px0-l.P0.X) - dx*(py0-l.P0.Y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	c3 := dy*px3 - dx*py3
	invLen2 := 1 / (dx*dx + dy*dy)

	ts, n := SolveCubic(c0, c1, c2, c3)
	var out []SegmentIntersection
	for _, t := range ts[:n] {
		if t < -epsilon || t > 1+epsilon {
			continue
		}
		x := px0 + t*(px1+t*(px2+t*px3))
		y := py0 + t*(py1+t*(py2+t*py3))
		u := ((x-l.P0.X)*dx + (y-l.P0.Y)*dy) * invLen2
		if u >= 0 && u <= 1 {
			out = append(out, SegmentIntersection{Time1: u, Time2: Clamp(t, 0, 1)})
		}
	}
	return out
}

// cubicPolynomialCoefficients returns monomial coefficients for one
// coordinate of a cubic Bézier.
func cubicPolynomialCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3*x1 - 3*x0
	p2 := 3*x2 - 6*x1 + 3*x0
	p3 := x3 - 3*x2 + 3*x1 - x0
	return p0, p1, p2, p3
}

// Cubic-cubic intersection is recursive subdivision with two pruning
// regimes. For the first cubicBoxPruneDepth levels candidate pairs are
// pruned by control-polygon bounding boxes (cheap, catches far-apart
// regions). For the next levels, up to cubicChordResolveDepth, pruning
// switches to chord fat-line separation, which distinguishes "possible
// overlap" from "definite candidate" and saves work on curves whose
// boxes keep overlapping. Surviving pairs are split at t = 0.5 into
// four sub-pairs. After cubicChordResolveDepth levels the remaining
// candidate regions are resolved by intersecting the endpoint chords.
// The depth bound is part of the contract.
const (
	cubicBoxPruneDepth     = 10
	cubicChordResolveDepth = 20
)

// intersectionMergeTolerance merges near-identical parameter pairs
// reported by adjacent candidate cells around the same crossing.
const intersectionMergeTolerance = 1e-5

// CubicCubicIntersections computes the crossings of two cubics.
func CubicCubicIntersections(a, b Cubic) []SegmentIntersection {
	if cubicsCoincide(a, b) {
		return nil
	}
	var out []SegmentIntersection
	cubicCubicRecurse(a, b, 0, 1, 0, 1, 0, &out)
	return mergeIntersections(out)
}

// cubicsCoincide reports whether the curves are identical or
// near-identical in either direction.
func cubicsCoincide(a, b Cubic) bool {
	const eps2 = 1e-18
	same := a.P0.DistanceSquared(b.P0) <= eps2 &&
		a.P1.DistanceSquared(b.P1) <= eps2 &&
		a.P2.DistanceSquared(b.P2) <= eps2 &&
		a.P3.DistanceSquared(b.P3) <= eps2
	if same {
		return true
	}
	r := b.Reverse()
	return a.P0.DistanceSquared(r.P0) <= eps2 &&
		a.P1.DistanceSquared(r.P1) <= eps2 &&
		a.P2.DistanceSquared(r.P2) <= eps2 &&
		a.P3.DistanceSquared(r.P3) <= eps2
}

func cubicCubicRecurse(a, b Cubic, a0, a1, b0, b1 float64, depth int, out *[]SegmentIntersection) {
	switch {
	case depth < cubicBoxPruneDepth:
		if !a.ControlBounds().OverlapsBox(b.ControlBounds()) {
			return
		}
	case depth < cubicChordResolveDepth:
		if chordSeparates(a, b) || chordSeparates(b, a) {
			return
		}
	default:
		ix, ok := (Line{P0: a.P0, P1: a.P3}).IntersectLine(Line{P0: b.P0, P1: b.P3})
		if ok {
			*out = append(*out, SegmentIntersection{
				Time1: Lerp(a0, a1, ix.Time1),
				Time2: Lerp(b0, b1, ix.Time2),
			})
		}
		return
	}

	am := 0.5 * (a0 + a1)
	bm := 0.5 * (b0 + b1)
	aL, aR := a.Split(0.5)
	bL, bR := b.Split(0.5)
	cubicCubicRecurse(aL, bL, a0, am, b0, bm, depth+1, out)
	cubicCubicRecurse(aL, bR, a0, am, bm, b1, depth+1, out)
	cubicCubicRecurse(aR, bL, am, a1, b0, bm, depth+1, out)
	cubicCubicRecurse(aR, bR, am, a1, bm, b1, depth+1, out)
}

// chordSeparates reports whether the fat line around a's endpoint chord
// (thick enough to contain a's own control polygon) has all of b on one
// side, proving the curves disjoint in this region.
func chordSeparates(a, b Cubic) bool {
	d := a.P3.Sub(a.P0)
	if d.IsZero() {
		return false
	}
	n := d.Rotate90()
	dist := func(p Vector2) float64 {
		return n.Dot(p.Sub(a.P0))
	}
	d1 := dist(a.P1)
	d2 := dist(a.P2)
	lo := min(0, d1, d2)
	hi := max(0, d1, d2)

	allAbove, allBelow := true, true
	for _, p := range [4]Vector2{b.P0, b.P1, b.P2, b.P3} {
		v := dist(p)
		if v <= hi {
			allAbove = false
		}
		if v >= lo {
			allBelow = false
		}
	}
	return allAbove || allBelow
}

func mergeIntersections(ixs []SegmentIntersection) []SegmentIntersection {
	if len(ixs) < 2 {
		return ixs
	}
	slices.SortFunc(ixs, func(x, y SegmentIntersection) int {
		if x.Time1 != y.Time1 {
			if x.Time1 < y.Time1 {
				return -1
			}
			return 1
		}
		return 0
	})
	out := ixs[:1]
	for _, ix := range ixs[1:] {
		last := out[len(out)-1]
		if math.Abs(ix.Time1-last.Time1) <= intersectionMergeTolerance &&
			math.Abs(ix.Time2-last.Time2) <= intersectionMergeTolerance {
			continue
		}
		out = append(out, ix)
	}
	return out
}
