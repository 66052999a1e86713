package geom

import (
	"math"
	"slices"
	"sort"
)

// Cubic is a cubic Bézier curve given by four absolute control points.
type Cubic struct {
	P0 Vector2
	P1 Vector2
	P2 Vector2
	P3 Vector2
}

// PointAtTime evaluates the curve at t using the Bernstein form. The
// endpoints are returned exactly at t = 0 and t = 1, avoiding floating
// round-off.
func (c Cubic) PointAtTime(t float64) Vector2 {
	if t == 0 {
		return c.P0
	}
	if t == 1 {
		return c.P3
	}
	mt := 1 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(3 * mt * mt * t)
	d := c.P2.Mul(3 * mt * t * t)
	e := c.P3.Mul(t * t * t)
	return a.Add(b).Add(d).Add(e)
}

// DerivativeAtTime evaluates the curve's first derivative at t.
func (c Cubic) DerivativeAtTime(t float64) Vector2 {
	mt := 1 - t
	a := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	b := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d := c.P3.Sub(c.P2).Mul(3 * t * t)
	return a.Add(b).Add(d)
}

// Reverse returns the curve traversed in the opposite direction.
func (c Cubic) Reverse() Cubic {
	return Cubic{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// Transform applies m to all four control points.
func (c Cubic) Transform(m AffineMatrix) Cubic {
	return Cubic{
		P0: m.Apply(c.P0),
		P1: m.Apply(c.P1),
		P2: m.Apply(c.P2),
		P3: m.Apply(c.P3),
	}
}

// ControlBounds returns the bounding box of the control polygon. It is
// cheap and conservative: the curve is contained in it, but the curve's
// true bound can be smaller.
func (c Cubic) ControlBounds() BoundingBox {
	out, _ := BoundingBoxFromPoints(c.P0, c.P1, c.P2, c.P3)
	return out
}

// Extrema computes the curve's interior extrema: parameters in (0, 1) at
// which the derivative of one coordinate is zero. Up to four parameters
// are returned, in increasing order.
func (c Cubic) Extrema() ([4]float64, int) {
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := SolveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// Bounds returns the tight bounding box of the curve, evaluating it at
// the endpoints and all interior extrema.
func (c Cubic) Bounds() BoundingBox {
	b := BoundingBox{Min: c.P0, Max: c.P0}.ExpandToIncludePoint(c.P3).Canonicalize()
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		b = b.ExpandToIncludePoint(c.PointAtTime(t))
	}
	return b
}

// IsValid reports whether all control points are finite.
func (c Cubic) IsValid() bool {
	return c.P0.IsValid() && c.P1.IsValid() && c.P2.IsValid() && c.P3.IsValid()
}

// SplitBezier splits a Bézier curve of arbitrary degree at t using the
// de Casteljau triangle. The returned control-point sets describe the
// curve over [0, t] and [t, 1] and share the split point exactly.
func SplitBezier(points []Vector2, t float64) (left, right []Vector2) {
	n := len(points)
	left = make([]Vector2, n)
	right = make([]Vector2, n)
	tmp := slices.Clone(points)
	for i := 0; i < n; i++ {
		left[i] = tmp[0]
		right[n-1-i] = tmp[n-1-i]
		for j := 0; j < n-1-i; j++ {
			tmp[j] = tmp[j].Lerp(tmp[j+1], t)
		}
	}
	return left, right
}

// Split subdivides the cubic at t into two cubics that share the split
// point.
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	left, right := SplitBezier([]Vector2{c.P0, c.P1, c.P2, c.P3}, t)
	return Cubic{left[0], left[1], left[2], left[3]},
		Cubic{right[0], right[1], right[2], right[3]}
}

// Trim returns the sub-curve over [start, end], as two sequential de
// Casteljau splits. Trimming is direction-agnostic: if start > end, the
// curve is reversed first, so the result runs from start toward end.
// Trim(0, 1) returns the curve unchanged.
func (c Cubic) Trim(start, end float64) Cubic {
	if start > end {
		c = c.Reverse()
		start, end = 1-start, 1-end
	}
	_, right := c.Split(start)
	if start == 1 {
		// The remaining interval is empty; Split has collapsed the
		// curve to its endpoint.
		return right
	}
	u := (end - start) / (1 - start)
	left, _ := right.Split(u)
	return left
}

// Bezier-clipping root-finder bounds. The depth bound is part of the
// contract: it guarantees termination on adversarial input.
const (
	maxRootDepth = 64
)

// rootFlatness is the normalized deviation below which a control polygon
// is treated as a straight line by the root-finder.
var rootFlatness = math.Ldexp(1, -65)

// FindRoots finds parameters in [0, 1] at which a polynomial in
// Bernstein-Bézier form crosses zero. The polynomial is given as its 2D
// control polygon: x coordinates are the abscissae i/n, y coordinates
// the Bernstein coefficients.
//
// The algorithm is recursive Bézier clipping: a subinterval whose
// control polygon has no sign change is pruned; one with exactly one
// sign change and a flat-enough polygon yields a root by chord
// interpolation; anything else is bisected at t = 0.5. Recursion is
// bounded at depth 64, after which the interval midpoint is accepted as
// an approximation.
func FindRoots(polygon []Vector2) []float64 {
	var out []float64
	findRoots(polygon, 0, &out)
	return out
}

func findRoots(w []Vector2, depth int, out *[]float64) {
	crossings := crossingCount(w)
	if crossings == 0 {
		return
	}
	if depth >= maxRootDepth {
		*out = append(*out, 0.5*(w[0].X+w[len(w)-1].X))
		return
	}
	if crossings == 1 && controlPolygonFlatEnough(w) {
		*out = append(*out, chordXIntercept(w))
		return
	}
	left, right := SplitBezier(w, 0.5)
	findRoots(left, depth+1, out)
	findRoots(right, depth+1, out)
}

// crossingCount counts sign changes in the control polygon's ordinates,
// an upper bound on the number of roots in the subinterval.
func crossingCount(w []Vector2) int {
	var n int
	sign := math.Signbit(w[0].Y)
	for _, p := range w[1:] {
		if s := math.Signbit(p.Y); s != sign {
			n++
			sign = s
		}
	}
	return n
}

// controlPolygonFlatEnough reports whether the control polygon deviates
// from the chord through its first and last point by so little that the
// root can be read off the chord.
func controlPolygonFlatEnough(w []Vector2) bool {
	n := len(w) - 1
	// Implicit line a·x + b·y + c = 0 through the first and last point.
	a := w[0].Y - w[n].Y
	b := w[n].X - w[0].X
	c := w[0].X*w[n].Y - w[n].X*w[0].Y

	var maxAbove, maxBelow float64
	for _, p := range w[1:n] {
		d := a*p.X + b*p.Y + c
		if d > maxAbove {
			maxAbove = d
		} else if d < maxBelow {
			maxBelow = d
		}
	}

	// Intersect the two offset lines with the t axis and measure the
	// width of the resulting intercept interval.
	intercept1 := -(c + maxAbove) / a
	intercept2 := -(c + maxBelow) / a
	err := 0.5 * math.Abs(intercept2-intercept1)
	return err < rootFlatness
}

// chordXIntercept interpolates the root linearly from the chord through
// the polygon's first and last point.
func chordXIntercept(w []Vector2) float64 {
	n := len(w) - 1
	dx := w[n].X - w[0].X
	dy := w[n].Y - w[0].Y
	return w[0].X - w[0].Y*dx/dy
}

// closestPointZ is the table of precomputed binomial "Z coefficients"
// used to express d/dt |B(t) − p|² directly in Bernstein form without
// ever forming the expanded degree-5 polynomial.
var closestPointZ = [3][4]float64{
	{1.0, 0.6, 0.3, 0.1},
	{0.4, 0.6, 0.6, 0.4},
	{0.1, 0.3, 0.6, 1.0},
}

// distancePolynomial converts the closest-point problem for pt into the
// degree-5 Bernstein control polygon of d/dt |B(t) − pt|².
func (c Cubic) distancePolynomial(pt Vector2) []Vector2 {
	pts := [4]Vector2{c.P0, c.P1, c.P2, c.P3}

	// Vectors from pt to each control point.
	var cv [4]Vector2
	for i, p := range pts {
		cv[i] = p.Sub(pt)
	}
	// The derivative's control vectors, scaled by 3.
	var dv [3]Vector2
	for i := range dv {
		dv[i] = pts[i+1].Sub(pts[i]).Mul(3)
	}

	var cd [3][4]float64
	for j, d := range dv {
		for i, cc := range cv {
			cd[j][i] = d.Dot(cc)
		}
	}

	w := make([]Vector2, 6)
	for i := range w {
		w[i].X = float64(i) / 5
	}
	for j := 0; j < 3; j++ {
		for k := 0; k < 4; k++ {
			w[j+k].Y += cd[j][k] * closestPointZ[j][k]
		}
	}
	return w
}

// ClosestTime returns the parameter of the point on the curve closest to
// pt. Roots of the derivative polynomial locate interior stationary
// points only, so both endpoints are always part of the candidate set.
func (c Cubic) ClosestTime(pt Vector2) float64 {
	bestT := 0.0
	bestD := pt.DistanceSquared(c.P0)
	if d := pt.DistanceSquared(c.P3); d < bestD {
		bestT, bestD = 1, d
	}
	for _, t := range FindRoots(c.distancePolynomial(pt)) {
		if d := pt.DistanceSquared(c.PointAtTime(t)); d < bestD {
			bestT, bestD = t, d
		}
	}
	return bestT
}

// ClosestPoint returns the point on the curve closest to pt, its
// parameter, and its distance from pt.
func (c Cubic) ClosestPoint(pt Vector2) (position Vector2, t, distance float64) {
	t = c.ClosestTime(pt)
	position = c.PointAtTime(t)
	return position, t, pt.Distance(position)
}
