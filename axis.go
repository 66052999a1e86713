package geom

// Axis is an infinite line through Origin along Direction, used for
// snapping and mirroring. Direction need not be unit length; all
// formulas normalize internally via dot-product ratios. An axis has no
// bounding box.
type Axis struct {
	Origin    Vector2
	Direction Vector2
}

// NewAxis returns an axis through origin along direction.
func NewAxis(origin, direction Vector2) *Axis {
	return &Axis{Origin: origin, Direction: direction}
}

// Clone returns a copy of the axis.
func (a *Axis) Clone() *Axis {
	out := *a
	return &out
}

// CloneElement implements [Element].
func (a *Axis) CloneElement() Element { return a.Clone() }

// IsValid implements [Element]. A valid axis has finite geometry and a
// nonzero direction.
func (a *Axis) IsValid() bool {
	return a.Origin.IsValid() && a.Direction.IsValid() && !a.Direction.IsZero()
}

// Project returns the closest point to pt on the axis's infinite line.
func (a *Axis) Project(pt Vector2) Vector2 {
	return pt.ProjectionOntoLine(a.Origin, a.Origin.Add(a.Direction))
}

// Affine implements [Element]: the origin transforms as a point, the
// direction as a vector.
func (a *Axis) Affine(m AffineMatrix) Element {
	a.Origin = m.Apply(a.Origin)
	a.Direction = m.ApplyVector(a.Direction)
	return a
}

// AffineWithoutTranslation implements [Element].
func (a *Axis) AffineWithoutTranslation(m AffineMatrix) Element {
	return a.Affine(m.WithoutTranslation())
}

// LooseBounds implements [Element]. An infinite line has no bounding
// box.
func (a *Axis) LooseBounds() (BoundingBox, bool) {
	return BoundingBox{}, false
}

// Bounds implements [Element].
func (a *Axis) Bounds() (BoundingBox, bool) {
	return BoundingBox{}, false
}

// ClosestPointWithinDistance implements [Element].
func (a *Axis) ClosestPointWithinDistance(pt Vector2, maxDistance float64) (PathHit, bool) {
	pos := a.Project(pt)
	d := pt.Distance(pos)
	if d > maxDistance {
		return PathHit{}, false
	}
	return PathHit{Position: pos, Distance: d}, true
}

// SetFill implements [Element]. An axis carries no style; calling this
// is a programming error.
func (a *Axis) SetFill(f *Fill) Element {
	panic("geom: Axis does not support fill assignment")
}

// SetStroke implements [Element]. An axis carries no style; calling
// this is a programming error.
func (a *Axis) SetStroke(s *Stroke) Element {
	panic("geom: Axis does not support stroke assignment")
}

// AllPaths implements [Element]. An axis contains no paths.
func (a *Axis) AllPaths() []*Path {
	return nil
}
