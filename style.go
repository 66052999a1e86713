package geom

// Style records are opaque data attached to entities. The kernel assigns
// no rendering semantics to them; it only carries them through
// transforms and clones, and scales stroke widths under uniform-scale
// transforms.

// Color is an RGBA value with components in the unit range.
type Color struct {
	R, G, B, A float64
}

// IsValid reports whether all components are within [0, 1].
func (c Color) IsValid() bool {
	ok := func(v float64) bool { return v >= 0 && v <= 1 }
	return ok(c.R) && ok(c.G) && ok(c.B) && ok(c.A)
}

// Fill is a solid fill.
type Fill struct {
	Color Color
}

// Clone returns a copy of the fill, or nil for a nil fill.
func (f *Fill) Clone() *Fill {
	if f == nil {
		return nil
	}
	out := *f
	return &out
}

type StrokeCap uint8

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

type StrokeJoin uint8

const (
	JoinMiter StrokeJoin = iota
	JoinRound
	JoinBevel
)

// StrokeAlignment positions the stroke relative to the outline.
type StrokeAlignment uint8

const (
	AlignCentered StrokeAlignment = iota
	AlignInner
	AlignOuter
)

// Stroke is an outline style.
type Stroke struct {
	Color      Color
	Width      float64
	Alignment  StrokeAlignment
	Cap        StrokeCap
	Join       StrokeJoin
	MiterLimit float64
}

// Clone returns a copy of the stroke, or nil for a nil stroke.
func (s *Stroke) Clone() *Stroke {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// ScaleWidth scales the stroke width by m's uniform scale factor. If m
// does not scale uniformly the width is left unchanged, since no single
// factor applies.
func (s *Stroke) ScaleWidth(m AffineMatrix) *Stroke {
	if s == nil {
		return nil
	}
	if f, ok := m.uniformScale(); ok {
		s.Width *= f
	}
	return s
}
