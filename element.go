package geom

// PathHit is the result of a closest-point query: the closest position
// on the geometry, its time parameter (meaningful for paths), and its
// distance from the query point.
type PathHit struct {
	Position Vector2
	Time     float64
	Distance float64
}

// Element is the capability surface shared by all geometry entities:
// [Path], [Shape], [Group], and [Axis]. Each entity is a distinct
// implementation; there is no shared base state.
//
// Mutating methods mutate the receiver and return it as an Element so
// that calls can be chained. Use the concrete types' Clone methods to
// copy before mutating when the original must be preserved.
//
// Entities that do not support a capability fail loudly: [Axis] panics
// on style assignment. Such a call is a programming error, not a
// recoverable condition.
type Element interface {
	// CloneElement returns a deep copy of the entity.
	CloneElement() Element

	// IsValid reports whether the entity's geometry is finite and
	// structurally well-formed. Entities do not self-validate on every
	// operation; callers opt in, e.g. after deserialization.
	IsValid() bool

	// Affine transforms the entity in place by m.
	Affine(m AffineMatrix) Element

	// AffineWithoutTranslation transforms the entity in place by m's
	// linear part only.
	AffineWithoutTranslation(m AffineMatrix) Element

	// LooseBounds returns a cheap conservative bounding box that
	// includes Bézier handle endpoints. ok is false for empty or
	// unbounded geometry.
	LooseBounds() (BoundingBox, bool)

	// Bounds returns the tight bounding box, computed from curve
	// extrema. ok is false for empty or unbounded geometry.
	Bounds() (BoundingBox, bool)

	// ClosestPointWithinDistance returns the closest point on the
	// entity to pt, provided it is within maxDistance. ok is false when
	// no candidate is in range.
	ClosestPointWithinDistance(pt Vector2, maxDistance float64) (PathHit, bool)

	// SetFill assigns a fill style to the entity and its descendants.
	SetFill(f *Fill) Element

	// SetStroke assigns a stroke style to the entity and its
	// descendants.
	SetStroke(s *Stroke) Element

	// AllPaths enumerates every path in the entity's subtree, in
	// drawing order. The returned paths are the entity's own children,
	// not copies.
	AllPaths() []*Path
}

var (
	_ Element = (*Path)(nil)
	_ Element = (*Shape)(nil)
	_ Element = (*Group)(nil)
	_ Element = (*Axis)(nil)
)
