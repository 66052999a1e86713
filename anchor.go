package geom

// Anchor is a path vertex: a position and two Bézier handles. Handles
// are offsets relative to the position, not absolute points; a handle of
// (0, 0) means no curvature on that side, and the adjoining segment is
// evaluated as a straight line.
//
// An anchor is owned exclusively by the path that contains it.
type Anchor struct {
	Position  Vector2
	HandleIn  Vector2
	HandleOut Vector2
}

// NewAnchor returns an anchor at the given position with zero handles.
func NewAnchor(position Vector2) *Anchor {
	return &Anchor{Position: position}
}

// NewAnchorWithHandles returns an anchor with the given relative
// handles.
func NewAnchorWithHandles(position, handleIn, handleOut Vector2) *Anchor {
	return &Anchor{Position: position, HandleIn: handleIn, HandleOut: handleOut}
}

// Clone returns a copy of the anchor.
func (a *Anchor) Clone() *Anchor {
	out := *a
	return &out
}

// Reverse swaps the handles, reversing the anchor's direction without
// moving it. It returns the receiver.
func (a *Anchor) Reverse() *Anchor {
	a.HandleIn, a.HandleOut = a.HandleOut, a.HandleIn
	return a
}

// HasZeroHandles reports whether both handles are zero, i.e. the anchor
// is a corner between straight segments.
func (a *Anchor) HasZeroHandles() bool {
	return a.HandleIn.IsZero() && a.HandleOut.IsZero()
}

// HasTangentHandles reports whether the two handles point in opposite
// directions within the given tolerance, i.e. the curve passes smoothly
// through the anchor. Anchors with a zero handle are not tangent.
func (a *Anchor) HasTangentHandles(tolerance float64) bool {
	if a.HandleIn.IsZero() || a.HandleOut.IsZero() {
		return false
	}
	dot := a.HandleIn.Normalize().Dot(a.HandleOut.Normalize())
	return dot <= tolerance-1
}

// Affine transforms the anchor in place: the position by the full
// matrix, the handles (being relative offsets) by the linear part only.
// It returns the receiver.
func (a *Anchor) Affine(m AffineMatrix) *Anchor {
	a.Position = m.Apply(a.Position)
	a.HandleIn = m.ApplyVector(a.HandleIn)
	a.HandleOut = m.ApplyVector(a.HandleOut)
	return a
}

// IsValid reports whether position and handles are finite.
func (a *Anchor) IsValid() bool {
	return a.Position.IsValid() && a.HandleIn.IsValid() && a.HandleOut.IsValid()
}

// absoluteHandleIn returns position + handleIn.
func (a *Anchor) absoluteHandleIn() Vector2 {
	return a.Position.Add(a.HandleIn)
}

// absoluteHandleOut returns position + handleOut.
func (a *Anchor) absoluteHandleOut() Vector2 {
	return a.Position.Add(a.HandleOut)
}
