package geom

import (
	"math"
	"slices"
)

// Path is an ordered sequence of anchors, open or closed. Segment i runs
// from anchor i to anchor i+1; a closed path has an additional
// wrap-around segment from the last anchor to the first. A path with
// zero or one anchor has no segments.
//
// Time parametrization: the integer part of a time value indexes an
// anchor, the fractional part is the parameter within the following
// segment. Closed paths wrap time modulo the anchor count; open paths
// clamp it to [0, n−1].
//
// A path exclusively owns its anchors; no anchor is shared between
// paths.
type Path struct {
	Anchors []*Anchor
	Closed  bool
	Fill    *Fill
	Stroke  *Stroke
}

// NewPath returns an open path over the given anchors. The path takes
// ownership of them.
func NewPath(anchors ...*Anchor) *Path {
	return &Path{Anchors: anchors}
}

// PathFromPoints returns a path of corner anchors (zero handles) at the
// given points.
func PathFromPoints(points []Vector2, closed bool) *Path {
	anchors := make([]*Anchor, len(points))
	for i, pt := range points {
		anchors[i] = NewAnchor(pt)
	}
	return &Path{Anchors: anchors, Closed: closed}
}

// PathFromBoundingBox returns a closed rectangular path over the box's
// corners.
func PathFromBoundingBox(b BoundingBox) *Path {
	return PathFromPoints([]Vector2{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}, true)
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	anchors := make([]*Anchor, len(p.Anchors))
	for i, a := range p.Anchors {
		anchors[i] = a.Clone()
	}
	return &Path{
		Anchors: anchors,
		Closed:  p.Closed,
		Fill:    p.Fill.Clone(),
		Stroke:  p.Stroke.Clone(),
	}
}

// CloneElement implements [Element].
func (p *Path) CloneElement() Element { return p.Clone() }

// SegmentCount returns the number of segments.
func (p *Path) SegmentCount() int {
	n := len(p.Anchors)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// Segment returns segment i. For a closed path the final segment wraps
// from the last anchor back to the first.
func (p *Path) Segment(i int) Segment {
	return Segment{
		A1: *p.Anchors[i],
		A2: *p.Anchors[(i+1)%len(p.Anchors)],
	}
}

// Segments returns all segments of the path.
func (p *Path) Segments() []Segment {
	out := make([]Segment, p.SegmentCount())
	for i := range out {
		out[i] = p.Segment(i)
	}
	return out
}

// segmentTime normalizes a time value to a segment index and a local
// parameter in [0, 1], wrapping for closed paths and clamping for open
// ones.
func (p *Path) segmentTime(t float64) (int, float64) {
	segs := p.SegmentCount()
	if segs == 0 {
		return 0, 0
	}
	if p.Closed {
		t = Mod(t, float64(len(p.Anchors)))
	} else {
		t = Clamp(t, 0, float64(len(p.Anchors)-1))
	}
	i := int(t)
	if i >= segs {
		// Open-path end time, or a wrap that rounded up.
		i = segs - 1
	}
	return i, t - float64(i)
}

// PositionAtTime evaluates the path at time t.
func (p *Path) PositionAtTime(t float64) Vector2 {
	if len(p.Anchors) == 0 {
		return Vector2{}
	}
	if p.SegmentCount() == 0 {
		return p.Anchors[0].Position
	}
	i, frac := p.segmentTime(t)
	return p.Segment(i).PointAtTime(frac)
}

// DerivativeAtTime returns the path's (unnormalized) tangent at time t.
// At an exact anchor time whose adjoining handle is zero, the analytic
// derivative of the cubic vanishes; the direction toward or from the
// neighboring anchor's handle point is used instead.
func (p *Path) DerivativeAtTime(t float64) Vector2 {
	if p.SegmentCount() == 0 {
		return Vector2{}
	}
	i, frac := p.segmentTime(t)
	s := p.Segment(i)
	if s.IsLinear() {
		return s.A2.Position.Sub(s.A1.Position)
	}
	c := s.Cubic()
	if frac == 0 && s.A1.HandleOut.IsZero() {
		return c.P2.Sub(c.P0)
	}
	if frac == 1 && s.A2.HandleIn.IsZero() {
		return c.P3.Sub(c.P1)
	}
	return c.DerivativeAtTime(frac)
}

// Length returns the path's arc length, the sum of its segments'
// lengths.
func (p *Path) Length() float64 {
	var sum float64
	for i := 0; i < p.SegmentCount(); i++ {
		sum += p.Segment(i).Length()
	}
	return sum
}

// DistanceAtTime returns the arc length of the path portion before time
// t. The scan is linear in the number of segments.
func (p *Path) DistanceAtTime(t float64) float64 {
	segs := p.SegmentCount()
	if segs == 0 {
		return 0
	}
	i, frac := p.segmentTime(t)
	var sum float64
	for j := 0; j < i; j++ {
		sum += p.Segment(j).Length()
	}
	return sum + p.Segment(i).lengthUpTo(frac)
}

// TimeAtDistance returns the time at the given arc-length distance from
// the path's start. Closed paths wrap the distance modulo the total
// length; open paths clamp it. The scan is linear in the number of
// segments.
func (p *Path) TimeAtDistance(distance float64) float64 {
	segs := p.SegmentCount()
	if segs == 0 {
		return 0
	}
	total := p.Length()
	if total == 0 {
		return 0
	}
	if p.Closed {
		distance = Mod(distance, total)
	} else {
		distance = Clamp(distance, 0, total)
	}
	var acc float64
	for i := 0; i < segs; i++ {
		l := p.Segment(i).Length()
		if acc+l >= distance {
			if l == 0 {
				return float64(i)
			}
			return float64(i) + (distance-acc)/l
		}
		acc += l
	}
	return float64(segs)
}

// InsertAnchorAtTime inserts an anchor at time t and returns it. For a
// cubic segment the curve is split with de Casteljau and the
// neighboring anchors' handles are rewritten, so the path's shape is
// preserved exactly. For a linear segment the position is interpolated.
// If t falls on an existing anchor, that anchor is returned and the
// path is unchanged.
func (p *Path) InsertAnchorAtTime(t float64) *Anchor {
	if p.SegmentCount() == 0 {
		if len(p.Anchors) == 1 {
			return p.Anchors[0]
		}
		return nil
	}
	i, frac := p.segmentTime(t)
	a1 := p.Anchors[i]
	a2 := p.Anchors[(i+1)%len(p.Anchors)]
	if frac == 0 {
		return a1
	}
	if frac == 1 {
		return a2
	}
	s := Segment{A1: *a1, A2: *a2}
	var anchor *Anchor
	if s.IsLinear() {
		anchor = NewAnchor(a1.Position.Lerp(a2.Position, frac))
	} else {
		left, right := s.Cubic().Split(frac)
		anchor = &Anchor{
			Position:  left.P3,
			HandleIn:  left.P2.Sub(left.P3),
			HandleOut: right.P1.Sub(right.P0),
		}
		a1.HandleOut = left.P1.Sub(left.P0)
		a2.HandleIn = right.P2.Sub(right.P3)
	}
	p.Anchors = slices.Insert(p.Anchors, i+1, anchor)
	return anchor
}

// SplitAtAnchor splits the path at the anchor with the given index. A
// closed path is rotated so that the split anchor becomes anchor 0, the
// anchor is duplicated at the end, and the path is opened; the mutated
// receiver is the single result. An open path is split into two paths
// sharing a duplicated junction anchor; the receiver becomes the first
// part. Splitting an open path at an endpoint is a no-op.
func (p *Path) SplitAtAnchor(index int) []*Path {
	n := len(p.Anchors)
	if n == 0 {
		return []*Path{p}
	}
	index = ((index % n) + n) % n
	if p.Closed {
		rotated := make([]*Anchor, 0, n+1)
		rotated = append(rotated, p.Anchors[index:]...)
		rotated = append(rotated, p.Anchors[:index]...)
		rotated = append(rotated, rotated[0].Clone())
		p.Anchors = rotated
		p.Closed = false
		return []*Path{p}
	}
	if index == 0 || index == n-1 {
		return []*Path{p}
	}
	junction := p.Anchors[index].Clone()
	second := &Path{
		Anchors: append([]*Anchor{junction}, p.Anchors[index+1:]...),
		Fill:    p.Fill.Clone(),
		Stroke:  p.Stroke.Clone(),
	}
	p.Anchors = slices.Clip(p.Anchors[:index+1])
	return []*Path{p, second}
}

// Reverse reverses the path's direction in place: the anchor order is
// reversed and each anchor's handles are swapped. It returns the
// receiver.
func (p *Path) Reverse() *Path {
	slices.Reverse(p.Anchors)
	for _, a := range p.Anchors {
		a.Reverse()
	}
	return p
}

// StartAnchor returns the first anchor, or nil for an empty path.
func (p *Path) StartAnchor() *Anchor {
	if len(p.Anchors) == 0 {
		return nil
	}
	return p.Anchors[0]
}

// EndAnchor returns the last anchor, or nil for an empty path.
func (p *Path) EndAnchor() *Anchor {
	if len(p.Anchors) == 0 {
		return nil
	}
	return p.Anchors[len(p.Anchors)-1]
}

// ClosestPoint returns the closest point on the path to pt, or ok false
// for an empty path.
func (p *Path) ClosestPoint(pt Vector2) (PathHit, bool) {
	return p.ClosestPointWithinDistance(pt, math.Inf(1))
}

// ClosestPointWithinDistance implements [Element]. Each segment is
// early-rejected via its loose bounding box expanded by the current
// search radius before the expensive per-segment closest-point routine
// runs; this pruning is what makes the query affordable on paths with
// many segments.
func (p *Path) ClosestPointWithinDistance(pt Vector2, maxDistance float64) (PathHit, bool) {
	best := PathHit{Distance: math.Inf(1)}
	found := false
	limit := maxDistance

	segs := p.SegmentCount()
	if segs == 0 {
		if len(p.Anchors) == 1 {
			pos := p.Anchors[0].Position
			if d := pt.Distance(pos); d <= maxDistance {
				return PathHit{Position: pos, Time: 0, Distance: d}, true
			}
		}
		return best, false
	}

	for i := 0; i < segs; i++ {
		s := p.Segment(i)
		if !math.IsInf(limit, 0) && !s.ControlBounds().ExpandScalar(limit).ContainsPoint(pt) {
			continue
		}
		var pos Vector2
		var t, d float64
		if s.IsLinear() {
			var distSq float64
			distSq, t = s.Line().Nearest(pt)
			d = math.Sqrt(distSq)
			pos = s.Line().PointAtTime(t)
		} else {
			pos, t, d = s.Cubic().ClosestPoint(pt)
		}
		if d <= limit {
			best = PathHit{Position: pos, Time: float64(i) + t, Distance: d}
			found = true
			limit = d
		}
	}
	return best, found
}

// LooseBounds implements [Element]: the bounding box of all anchor
// positions and the handle endpoints of cubic segments. Cheap and
// conservative; the path's true extent can be smaller.
func (p *Path) LooseBounds() (BoundingBox, bool) {
	if len(p.Anchors) == 0 {
		return BoundingBox{}, false
	}
	first := p.Anchors[0].Position
	b := BoundingBox{Min: first, Max: first}
	for _, a := range p.Anchors[1:] {
		b = b.ExpandToIncludePoint(a.Position)
	}
	for i := 0; i < p.SegmentCount(); i++ {
		s := p.Segment(i)
		if !s.IsLinear() {
			b = b.ExpandToIncludePoint(s.A1.absoluteHandleOut())
			b = b.ExpandToIncludePoint(s.A2.absoluteHandleIn())
		}
	}
	return b, true
}

// Bounds implements [Element]: the tight bounding box, from per-segment
// curve extrema.
func (p *Path) Bounds() (BoundingBox, bool) {
	if len(p.Anchors) == 0 {
		return BoundingBox{}, false
	}
	segs := p.SegmentCount()
	if segs == 0 {
		pos := p.Anchors[0].Position
		return BoundingBox{Min: pos, Max: pos}, true
	}
	var b BoundingBox
	for i := 0; i < segs; i++ {
		s := p.Segment(i)
		var sb BoundingBox
		if s.IsLinear() {
			sb = s.Line().Bounds()
		} else {
			sb = s.Cubic().Bounds()
		}
		if i == 0 {
			b = sb
		} else {
			b = b.ExpandToIncludeBox(sb)
		}
	}
	return b, true
}

// IsIntersectedByBoundingBox reports whether the box overlaps the
// path's loose bounds. This is an approximation, not true segment vs.
// box intersection: a box overlapping only the handle hull reports
// true. Callers needing exactness should test against [Path.Bounds] or
// per-segment geometry.
func (p *Path) IsIntersectedByBoundingBox(b BoundingBox) bool {
	loose, ok := p.LooseBounds()
	return ok && loose.OverlapsBox(b)
}

// Affine implements [Element]. Stroke widths are scaled when the matrix
// scales uniformly.
func (p *Path) Affine(m AffineMatrix) Element {
	for _, a := range p.Anchors {
		a.Affine(m)
	}
	p.Stroke.ScaleWidth(m)
	return p
}

// AffineWithoutTranslation implements [Element].
func (p *Path) AffineWithoutTranslation(m AffineMatrix) Element {
	return p.Affine(m.WithoutTranslation())
}

// Translate moves the path by v and returns the receiver.
func (p *Path) Translate(v Vector2) *Path {
	p.Affine(TranslationMatrix(v))
	return p
}

// SetFill implements [Element].
func (p *Path) SetFill(f *Fill) Element {
	p.Fill = f
	return p
}

// SetStroke implements [Element].
func (p *Path) SetStroke(s *Stroke) Element {
	p.Stroke = s
	return p
}

// AllPaths implements [Element].
func (p *Path) AllPaths() []*Path {
	return []*Path{p}
}

// IsValid implements [Element].
func (p *Path) IsValid() bool {
	for _, a := range p.Anchors {
		if a == nil || !a.IsValid() {
			return false
		}
	}
	return true
}
