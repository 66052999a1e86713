package geom

import "math"

// Shape is an ordered collection of paths sharing one style,
// representing compound outlines such as shapes with holes. The kernel
// ties no winding convention to hole semantics; interpretation (an
// even-odd fill rule) belongs to the rendering and boolean-ops
// collaborators.
type Shape struct {
	Paths  []*Path
	Fill   *Fill
	Stroke *Stroke
}

// NewShape returns a shape over the given paths. The shape takes
// ownership of them.
func NewShape(paths ...*Path) *Shape {
	return &Shape{Paths: paths}
}

// Clone returns a deep copy of the shape.
func (s *Shape) Clone() *Shape {
	paths := make([]*Path, len(s.Paths))
	for i, p := range s.Paths {
		paths[i] = p.Clone()
	}
	return &Shape{Paths: paths, Fill: s.Fill.Clone(), Stroke: s.Stroke.Clone()}
}

// CloneElement implements [Element].
func (s *Shape) CloneElement() Element { return s.Clone() }

// IsValid implements [Element].
func (s *Shape) IsValid() bool {
	for _, p := range s.Paths {
		if p == nil || !p.IsValid() {
			return false
		}
	}
	return true
}

// Affine implements [Element].
func (s *Shape) Affine(m AffineMatrix) Element {
	for _, p := range s.Paths {
		p.Affine(m)
	}
	s.Stroke.ScaleWidth(m)
	return s
}

// AffineWithoutTranslation implements [Element].
func (s *Shape) AffineWithoutTranslation(m AffineMatrix) Element {
	return s.Affine(m.WithoutTranslation())
}

// LooseBounds implements [Element], aggregating per-path boxes.
func (s *Shape) LooseBounds() (BoundingBox, bool) {
	return aggregateBounds(s.Paths, (*Path).LooseBounds)
}

// Bounds implements [Element], aggregating per-path boxes.
func (s *Shape) Bounds() (BoundingBox, bool) {
	return aggregateBounds(s.Paths, (*Path).Bounds)
}

func aggregateBounds(paths []*Path, bounds func(*Path) (BoundingBox, bool)) (BoundingBox, bool) {
	var out BoundingBox
	found := false
	for _, p := range paths {
		b, ok := bounds(p)
		if !ok {
			continue
		}
		if !found {
			out = b
			found = true
		} else {
			out = out.ExpandToIncludeBox(b)
		}
	}
	return out, found
}

// ClosestPointWithinDistance implements [Element], returning the
// minimum-distance result over all paths.
func (s *Shape) ClosestPointWithinDistance(pt Vector2, maxDistance float64) (PathHit, bool) {
	best := PathHit{Distance: math.Inf(1)}
	found := false
	limit := maxDistance
	for _, p := range s.Paths {
		if hit, ok := p.ClosestPointWithinDistance(pt, limit); ok {
			best = hit
			found = true
			limit = hit.Distance
		}
	}
	return best, found
}

// SetFill implements [Element]; each path receives its own copy so
// that later transforms touch every style record exactly once.
func (s *Shape) SetFill(f *Fill) Element {
	s.Fill = f
	for _, p := range s.Paths {
		p.SetFill(f.Clone())
	}
	return s
}

// SetStroke implements [Element]; each path receives its own copy so
// that later transforms touch every style record exactly once.
func (s *Shape) SetStroke(st *Stroke) Element {
	s.Stroke = st
	for _, p := range s.Paths {
		p.SetStroke(st.Clone())
	}
	return s
}

// AllPaths implements [Element].
func (s *Shape) AllPaths() []*Path {
	return s.Paths
}

// Walk drives w over every path in the shape.
func (s *Shape) Walk(w PathWalker) {
	for _, p := range s.Paths {
		p.Walk(w)
	}
}

// Commands returns the concatenated command sequences of the shape's
// paths.
func (s *Shape) Commands() []PathCommand {
	var out []PathCommand
	for _, p := range s.Paths {
		out = append(out, p.Commands()...)
	}
	return out
}
