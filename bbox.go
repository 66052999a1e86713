package geom

// BoundingBox is an axis-aligned box described by two corners. In
// canonical form Min.X ≤ Max.X and Min.Y ≤ Max.Y; boxes constructed from
// unsorted points may be temporarily non-canonical until
// [BoundingBox.Canonicalize] is called.
//
// The empty bounding box (of an empty path, for instance) is represented
// by the absence of a box — constructors return an ok bool — never by a
// zero-size box.
type BoundingBox struct {
	Min Vector2
	Max Vector2
}

// BoundingBoxFromPoints returns the smallest box containing all the
// given points. ok is false if points is empty; a single point yields
// the degenerate box (p, p).
func BoundingBoxFromPoints(points ...Vector2) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExpandToIncludePoint(p)
	}
	return b, true
}

// Canonicalize swaps the per-axis extents so that Min ≤ Max on each
// axis. The axes are handled independently, so a box inverted on only
// one axis is repaired.
func (b BoundingBox) Canonicalize() BoundingBox {
	if b.Min.X > b.Max.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Min.Y > b.Max.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Width returns the extent of the box along x.
func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the extent of the box along y.
func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center of the box.
func (b BoundingBox) Center() Vector2 {
	return b.Min.Midpoint(b.Max)
}

// ExpandToIncludePoint returns the smallest box containing b and p.
func (b BoundingBox) ExpandToIncludePoint(p Vector2) BoundingBox {
	return BoundingBox{
		Min: Vector2{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
		Max: Vector2{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
	}
}

// ExpandToIncludeBox returns the smallest box containing b and o.
func (b BoundingBox) ExpandToIncludeBox(o BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Vector2{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Vector2{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// ExpandScalar pads the box outward by d on all sides.
func (b BoundingBox) ExpandScalar(d float64) BoundingBox {
	return BoundingBox{
		Min: Vector2{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Vector2{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// ContainsPoint reports whether p is inside the box. Points on the
// boundary are inside.
func (b BoundingBox) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ContainsBox reports whether o is entirely inside b.
func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	return o.Min.X >= b.Min.X && o.Max.X <= b.Max.X &&
		o.Min.Y >= b.Min.Y && o.Max.Y <= b.Max.Y
}

// OverlapsBox reports whether b and o share any point. Boxes that touch
// only at an edge or corner overlap.
func (b BoundingBox) OverlapsBox(o BoundingBox) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Transform returns the bounding box of the four transformed corners of
// b. If the transform is axis-aligned the result is tight.
func (b BoundingBox) Transform(m AffineMatrix) BoundingBox {
	p00 := m.Apply(b.Min)
	p10 := m.Apply(Vector2{X: b.Max.X, Y: b.Min.Y})
	p01 := m.Apply(Vector2{X: b.Min.X, Y: b.Max.Y})
	p11 := m.Apply(b.Max)
	out, _ := BoundingBoxFromPoints(p00, p10, p01, p11)
	return out
}

// IsValid reports whether both corners are finite.
func (b BoundingBox) IsValid() bool {
	return b.Min.IsValid() && b.Max.IsValid()
}
