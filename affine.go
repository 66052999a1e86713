package geom

import (
	"math"
)

// AffineMatrix is a 2×3 affine transform with coefficients
// (a, b, c, d, tx, ty), representing the augmented matrix
//
//	| a c tx |
//	| b d ty |
//	| 0 0  1 |
//
// so that a transformed point is (a·x + c·y + tx, b·x + d·y + ty). The
// columns (a, b) and (c, d) are the images of the x and y basis vectors.
type AffineMatrix struct {
	A, B, C, D, Tx, Ty float64
}

// IdentityMatrix is the identity transform.
var IdentityMatrix = AffineMatrix{1, 0, 0, 1, 0, 0}

// TranslationMatrix returns a transform that translates by v.
func TranslationMatrix(v Vector2) AffineMatrix {
	return AffineMatrix{1, 0, 0, 1, v.X, v.Y}
}

// ScalingMatrix returns a transform that scales by (x, y) about the
// origin.
func ScalingMatrix(x, y float64) AffineMatrix {
	return AffineMatrix{x, 0, 0, y, 0, 0}
}

// RotationMatrix returns a transform that rotates by the given angle in
// degrees about the origin. A positive angle rotates the positive x
// direction toward positive y.
func RotationMatrix(degrees float64) AffineMatrix {
	return rotationMatrixRadians(Radians(degrees))
}

func rotationMatrixRadians(th float64) AffineMatrix {
	sin, cos := math.Sincos(th)
	return AffineMatrix{cos, sin, -sin, cos, 0, 0}
}

// SkewMatrix returns a transform that skews by the given angles in
// degrees along the x and y directions.
func SkewMatrix(xDegrees, yDegrees float64) AffineMatrix {
	return AffineMatrix{1, TanDegrees(yDegrees), TanDegrees(xDegrees), 1, 0, 0}
}

// Mul post-multiplies: the result applies o first, then m, in the sense
// of point transformation (m.Mul(o).Apply(p) == m.Apply(o.Apply(p))).
func (m AffineMatrix) Mul(o AffineMatrix) AffineMatrix {
	return AffineMatrix{
		m.A*o.A + m.C*o.B,
		m.B*o.A + m.D*o.B,
		m.A*o.C + m.C*o.D,
		m.B*o.C + m.D*o.D,
		m.A*o.Tx + m.C*o.Ty + m.Tx,
		m.B*o.Tx + m.D*o.Ty + m.Ty,
	}
}

// PreMul pre-multiplies: the result applies m first, then o.
func (m AffineMatrix) PreMul(o AffineMatrix) AffineMatrix {
	return o.Mul(m)
}

// Translate composes a translation "before" m in the current basis.
func (m AffineMatrix) Translate(v Vector2) AffineMatrix {
	return m.Mul(TranslationMatrix(v))
}

// Scale composes a scale "before" m in the current basis.
func (m AffineMatrix) Scale(x, y float64) AffineMatrix {
	return m.Mul(ScalingMatrix(x, y))
}

// Rotate composes a rotation by the given angle in degrees "before" m in
// the current basis.
func (m AffineMatrix) Rotate(degrees float64) AffineMatrix {
	return m.Mul(RotationMatrix(degrees))
}

// Skew composes a skew "before" m in the current basis.
func (m AffineMatrix) Skew(xDegrees, yDegrees float64) AffineMatrix {
	return m.Mul(SkewMatrix(xDegrees, yDegrees))
}

// Apply transforms the point p.
func (m AffineMatrix) Apply(p Vector2) Vector2 {
	return Vector2{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// ApplyVector transforms the direction v, ignoring translation.
func (m AffineMatrix) ApplyVector(v Vector2) Vector2 {
	return Vector2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// WithoutTranslation returns m with its translation component zeroed.
func (m AffineMatrix) WithoutTranslation() AffineMatrix {
	m.Tx = 0
	m.Ty = 0
	return m
}

// BasisX returns the image of the x basis vector.
func (m AffineMatrix) BasisX() Vector2 {
	return Vector2{X: m.A, Y: m.B}
}

// BasisY returns the image of the y basis vector.
func (m AffineMatrix) BasisY() Vector2 {
	return Vector2{X: m.C, Y: m.D}
}

// Translation returns the translation component.
func (m AffineMatrix) Translation() Vector2 {
	return Vector2{X: m.Tx, Y: m.Ty}
}

// Determinant computes the determinant of the linear part.
func (m AffineMatrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether the matrix has an inverse with finite
// coefficients.
func (m AffineMatrix) IsInvertible() bool {
	det := m.Determinant()
	return det != 0 && !math.IsInf(det, 0) && !math.IsNaN(det)
}

// Invert computes the inverse transform using the closed-form 2×2
// adjugate formula.
//
// Produces non-finite coefficients when the determinant is zero. This is
// deliberately unguarded; callers that need safety check
// [AffineMatrix.IsInvertible] first.
func (m AffineMatrix) Invert() AffineMatrix {
	invDet := 1 / m.Determinant()
	return AffineMatrix{
		+invDet * m.D,
		-invDet * m.B,
		-invDet * m.C,
		+invDet * m.A,
		+invDet * (m.C*m.Ty - m.D*m.Tx),
		+invDet * (m.B*m.Tx - m.A*m.Ty),
	}
}

// ChangeBasis computes basis⁻¹ · m · basis, i.e. m expressed in the
// coordinate system described by basis.
func (m AffineMatrix) ChangeBasis(basis AffineMatrix) AffineMatrix {
	return m.ChangeBasisWithInverse(basis, basis.Invert())
}

// ChangeBasisWithInverse is [AffineMatrix.ChangeBasis] with a
// caller-provided inverse, for callers that already have it.
func (m AffineMatrix) ChangeBasisWithInverse(basis, basisInv AffineMatrix) AffineMatrix {
	return basisInv.Mul(m).Mul(basis)
}

// EnsureMinimumBasisLength returns m with basis vectors no shorter than
// minLength. If both basis vectors are too short they are replaced with
// an identity-scaled pair of length minLength. If only one is too short
// it is reconstructed as a 90°-rotated, rescaled copy of the other,
// preserving orthogonality when the other basis was already valid.
func (m AffineMatrix) EnsureMinimumBasisLength(minLength float64) AffineMatrix {
	bx := m.BasisX()
	by := m.BasisY()
	xOK := bx.Length() >= minLength
	yOK := by.Length() >= minLength
	switch {
	case xOK && yOK:
		return m
	case !xOK && !yOK:
		m.A, m.B = minLength, 0
		m.C, m.D = 0, minLength
	case !xOK:
		bx = by.RotateNeg90().Normalize().Mul(minLength)
		m.A, m.B = bx.X, bx.Y
	default:
		by = bx.Rotate90().Normalize().Mul(minLength)
		m.C, m.D = by.X, by.Y
	}
	return m
}

// IsValid reports whether all coefficients are finite.
func (m AffineMatrix) IsValid() bool {
	return m.BasisX().IsValid() && m.BasisY().IsValid() && m.Translation().IsValid()
}

// EqualWithinTolerance reports whether all coefficients of m and o are
// within the absolute tolerance tol of each other.
func (m AffineMatrix) EqualWithinTolerance(o AffineMatrix, tol float64) bool {
	return EqualWithinTolerance(m.A, o.A, tol) &&
		EqualWithinTolerance(m.B, o.B, tol) &&
		EqualWithinTolerance(m.C, o.C, tol) &&
		EqualWithinTolerance(m.D, o.D, tol) &&
		EqualWithinTolerance(m.Tx, o.Tx, tol) &&
		EqualWithinTolerance(m.Ty, o.Ty, tol)
}

// uniformScale returns the scale factor of m if its linear part is a
// similarity (rotation plus uniform scale, possibly mirrored).
func (m AffineMatrix) uniformScale() (float64, bool) {
	bx := m.BasisX()
	by := m.BasisY()
	lx := bx.Length()
	ly := by.Length()
	const eps = 1e-9
	if !EqualWithinEpsilon(lx, ly, eps) {
		return 0, false
	}
	if lx != 0 && math.Abs(bx.Dot(by))/(lx*ly) > eps {
		return 0, false
	}
	return lx, true
}

// Transform is a human-editable decomposition of an [AffineMatrix]:
// translation, rotation, per-axis scale, skew, and a local origin that
// the rotation, scale, and skew are relative to. Round-tripping through
// [AffineMatrix.ToTransform] and [MatrixFromTransform] is exact for
// non-degenerate matrices and lossy for degenerate ones.
type Transform struct {
	Position Vector2
	// Rotation in degrees, in [0, 360).
	Rotation float64
	Scale    Vector2
	// Skew in degrees, in (-90, 90]: the deviation of the y basis from
	// perpendicular to the x basis.
	Skew   float64
	Origin Vector2
}

// MatrixFromTransform composes a matrix from a decomposed transform:
// translate to position, rotate, skew, scale, all relative to origin.
func MatrixFromTransform(t Transform) AffineMatrix {
	thX := Radians(t.Rotation)
	thY := Radians(t.Rotation + 90 - t.Skew)
	sinX, cosX := math.Sincos(thX)
	sinY, cosY := math.Sincos(thY)
	m := AffineMatrix{
		A: cosX * t.Scale.X,
		B: sinX * t.Scale.X,
		C: cosY * t.Scale.Y,
		D: sinY * t.Scale.Y,
	}
	tr := t.Position.Sub(m.ApplyVector(t.Origin))
	m.Tx = tr.X
	m.Ty = tr.Y
	return m
}

// transformBasisUsable is the squared basis length below which a basis
// vector contributes no usable angle to the decomposition.
const transformBasisUsable = 1e-7

// ToTransform decomposes the matrix into translation, rotation, scale,
// and skew, with a zero origin. Rotation is normalized to [0, 360) and
// skew to (-90, 90]. If a basis vector is degenerate (squared length at
// most 1e-7), its angle is derived from the other basis; if both are
// degenerate, rotation and skew are zero.
func (m AffineMatrix) ToTransform() Transform {
	bx := m.BasisX()
	by := m.BasisY()
	sx := bx.Length()
	sy := by.Length()
	mirrored := m.Determinant() < 0
	if mirrored {
		sy = -sy
	}

	xUsable := bx.LengthSquared() > transformBasisUsable
	yUsable := by.LengthSquared() > transformBasisUsable

	angleY := by.AngleDegrees()
	if mirrored {
		angleY += 180
	}

	var rotation, skew float64
	switch {
	case xUsable && yUsable:
		rotation = bx.AngleDegrees()
		skew = rotation + 90 - angleY
	case xUsable:
		rotation = bx.AngleDegrees()
	case yUsable:
		rotation = angleY - 90
	}

	// Normalize skew to (-90, 90] via signed modulo 180.
	skew = Mod(skew, 180)
	if skew > 90 {
		skew -= 180
	}
	return Transform{
		Position: m.Translation(),
		Rotation: Mod(rotation, 360),
		Scale:    Vector2{X: sx, Y: sy},
		Skew:     skew,
	}
}
