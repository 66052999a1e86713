package geom

import (
	"fmt"
	"math"
)

// Vector2 is a point or direction in the plane. It is a value type; all
// methods return new values.
type Vector2 struct {
	X float64
	Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add adds two vectors.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub subtracts o from v.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales the vector by f.
func (v Vector2) Mul(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

// Div divides the vector by f.
func (v Vector2) Div(f float64) Vector2 {
	return Vector2{X: v.X / f, Y: v.Y / f}
}

// MulVec multiplies component-wise.
func (v Vector2) MulVec(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// DivVec divides component-wise.
func (v Vector2) DivVec(o Vector2) Vector2 {
	return Vector2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Negate returns the vector with the signs of both components flipped.
func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product of v and o, i.e. the z component of
// the 3D cross product of the vectors lifted into z = 0.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the magnitude of the vector.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude of the vector.
//
// This is more efficient than squaring the result of [Vector2.Length].
func (v Vector2) LengthSquared() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

// DistanceSquared returns the squared euclidean distance between two
// points.
func (v Vector2) DistanceSquared(o Vector2) float64 {
	return v.Sub(o).LengthSquared()
}

// Lerp linearly interpolates between two vectors.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the point halfway between v and o.
func (v Vector2) Midpoint(o Vector2) Vector2 {
	return Vector2{X: 0.5 * (v.X + o.X), Y: 0.5 * (v.Y + o.Y)}
}

// Normalize returns a vector of magnitude 1 with the same angle as v.
// Normalizing the zero vector returns the zero vector; this is not an
// error.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle returns the angle in radians between the vector and (1, 0), in
// the positive y direction. This is atan2(y, x).
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleDegrees returns [Vector2.Angle] expressed in degrees.
func (v Vector2) AngleDegrees() float64 {
	return Degrees(v.Angle())
}

// RotateRadians rotates the vector by th radians about the origin.
func (v Vector2) RotateRadians(th float64) Vector2 {
	sin, cos := math.Sincos(th)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Rotate rotates the vector by the given angle in degrees about the
// origin.
func (v Vector2) Rotate(degrees float64) Vector2 {
	return v.RotateRadians(Radians(degrees))
}

// Rotate90 rotates the vector by 90 degrees. This is cheaper than the
// general rotation.
func (v Vector2) Rotate90() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// RotateNeg90 rotates the vector by -90 degrees.
func (v Vector2) RotateNeg90() Vector2 {
	return Vector2{X: v.Y, Y: -v.X}
}

// ProjectionOntoLine returns the closest point to v on the infinite line
// through a and b. If a and b coincide, a is returned.
func (v Vector2) ProjectionOntoLine(a, b Vector2) Vector2 {
	d := b.Sub(a)
	len2 := d.LengthSquared()
	if len2 == 0 {
		return a
	}
	h := v.Sub(a).Dot(d) / len2
	return a.Add(d.Mul(h))
}

// ProjectionOntoSegment returns the closest point to v on the segment
// from a to b. The projection parameter is clamped to the segment.
func (v Vector2) ProjectionOntoSegment(a, b Vector2) Vector2 {
	d := b.Sub(a)
	len2 := d.LengthSquared()
	if len2 == 0 {
		return a
	}
	h := Clamp(v.Sub(a).Dot(d)/len2, 0, 1)
	return a.Add(d.Mul(h))
}

// DistanceToSegment returns the distance from v to the segment from a to
// b.
func (v Vector2) DistanceToSegment(a, b Vector2) float64 {
	return v.Distance(v.ProjectionOntoSegment(a, b))
}

// IsValid reports whether both components are finite.
func (v Vector2) IsValid() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// EqualWithinTolerance reports whether v and o are componentwise within
// the absolute tolerance tol of each other.
func (v Vector2) EqualWithinTolerance(o Vector2, tol float64) bool {
	return EqualWithinTolerance(v.X, o.X, tol) && EqualWithinTolerance(v.Y, o.Y, tol)
}
