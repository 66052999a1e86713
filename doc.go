// Package geom is a 2D vector-geometry kernel: vectors, affine
// transforms, cubic Bézier mathematics, and the anchor/path/shape/group
// entity hierarchy built on top of them.
//
// The package distinguishes two layers. The math layer ([Vector2],
// [AffineMatrix], [BoundingBox], [Cubic], [Line]) consists of immutable
// value types whose methods return new values. The entity layer
// ([Anchor], [Path], [Shape], [Group], [Axis]) consists of mutable,
// heap-allocated entities that form exclusive ownership trees; their
// operations mutate in place and return the receiver so that calls can
// be chained, and every entity supports Clone for the
// clone-before-mutate convention.
//
// Angles in the public API are expressed in degrees unless a name says
// otherwise; trigonometry is performed in radians internally.
//
// Numerical edge cases produce well-defined degenerate results rather
// than errors: normalizing a zero vector leaves it zero, inverting a
// singular matrix yields non-finite coefficients, and closest-point
// queries report the absence of a result explicitly. Validators (the
// IsValid methods) let callers opt into finiteness checks, for example
// after deserialization.
//
// Boolean path operations (union, intersection, difference, exclusion)
// are delegated to an external polygon-clipping engine; see Unite and
// friends. The kernel converts to and from that engine's contour
// format but does not implement clipping itself.
package geom
