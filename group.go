package geom

import (
	"math"
	"slices"
)

// Group is an ordered container of heterogeneous geometry entities:
// paths, shapes, nested groups, axes. A group exclusively owns its
// children; no entity appears under two parents. Operations aggregate
// recursively over the children.
type Group struct {
	Children []Element
}

// NewGroup returns a group over the given children. The group takes
// ownership of them.
func NewGroup(children ...Element) *Group {
	return &Group{Children: children}
}

// Clone returns a deep copy of the group and its subtree.
func (g *Group) Clone() *Group {
	children := make([]Element, len(g.Children))
	for i, c := range g.Children {
		children[i] = c.CloneElement()
	}
	return &Group{Children: children}
}

// CloneElement implements [Element].
func (g *Group) CloneElement() Element { return g.Clone() }

// IsValid implements [Element].
func (g *Group) IsValid() bool {
	for _, c := range g.Children {
		if c == nil || !c.IsValid() {
			return false
		}
	}
	return true
}

// Affine implements [Element], transforming every child.
func (g *Group) Affine(m AffineMatrix) Element {
	for _, c := range g.Children {
		c.Affine(m)
	}
	return g
}

// AffineWithoutTranslation implements [Element].
func (g *Group) AffineWithoutTranslation(m AffineMatrix) Element {
	return g.Affine(m.WithoutTranslation())
}

// LooseBounds implements [Element], aggregating over children with
// bounds. ok is false when no child has a bounding box.
func (g *Group) LooseBounds() (BoundingBox, bool) {
	return g.aggregateBounds(Element.LooseBounds)
}

// Bounds implements [Element].
func (g *Group) Bounds() (BoundingBox, bool) {
	return g.aggregateBounds(Element.Bounds)
}

func (g *Group) aggregateBounds(bounds func(Element) (BoundingBox, bool)) (BoundingBox, bool) {
	var out BoundingBox
	found := false
	for _, c := range g.Children {
		b, ok := bounds(c)
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
// minimum-distance result over the subtree.
func (g *Group) ClosestPointWithinDistance(pt Vector2, maxDistance float64) (PathHit, bool) {
	best := PathHit{Distance: math.Inf(1)}
	found := false
	limit := maxDistance
	for _, c := range g.Children {
		if hit, ok := c.ClosestPointWithinDistance(pt, limit); ok {
			best = hit
			found = true
			limit = hit.Distance
		}
	}
	return best, found
}

// SetFill implements [Element]. Every styleable child receives its own
// copy of the style; axes are skipped.
func (g *Group) SetFill(f *Fill) Element {
	for _, c := range g.Children {
		if _, isAxis := c.(*Axis); isAxis {
			continue
		}
		c.SetFill(f.Clone())
	}
	return g
}

// SetStroke implements [Element]. Every styleable child receives its
// own copy of the style; axes are skipped.
func (g *Group) SetStroke(s *Stroke) Element {
	for _, c := range g.Children {
		if _, isAxis := c.(*Axis); isAxis {
			continue
		}
		c.SetStroke(s.Clone())
	}
	return g
}

// AllPaths implements [Element], enumerating the subtree in drawing
// order.
func (g *Group) AllPaths() []*Path {
	var out []*Path
	for _, c := range g.Children {
		out = append(out, c.AllPaths()...)
	}
	return out
}

// Walk drives w over every path in the subtree.
func (g *Group) Walk(w PathWalker) {
	for _, p := range g.AllPaths() {
		p.Walk(w)
	}
}

// JoinPaths stitches the group's open paths together with the given
// tolerance (see [JoinPaths]) and replaces the group's children with
// the result. It returns the receiver.
func (g *Group) JoinPaths(tolerance float64) *Group {
	paths := JoinPaths(g.AllPaths(), tolerance)
	g.Children = make([]Element, len(paths))
	for i, p := range paths {
		g.Children[i] = p
	}
	return g
}

// JoinPaths joins open paths whose endpoints coincide within tolerance
// (compared by squared distance), in any of the four end/start
// orientations, splicing anchor lists so that Bézier handle continuity
// is preserved at the joins. Passes repeat until no more merges are
// possible; each merge reduces the number of paths, so the loop
// terminates. Paths already closed are left untouched. After stitching,
// any open path whose two endpoints coincide within tolerance is
// closed, dropping its duplicate trailing anchor.
//
// The paths are mutated and consumed; the returned slice owns them.
func JoinPaths(paths []*Path, tolerance float64) []*Path {
	tol2 := tolerance * tolerance

	var done []*Path
	open := make([]*Path, 0, len(paths))
	for _, p := range paths {
		if p.Closed || len(p.Anchors) < 2 {
			done = append(done, p)
		} else {
			open = append(open, p)
		}
	}

	for merged := true; merged; {
		merged = false
	scan:
		for i := 0; i < len(open); i++ {
			a := open[i]
			for j := i + 1; j < len(open); j++ {
				b := open[j]
				aStart := a.StartAnchor().Position
				aEnd := a.EndAnchor().Position
				bStart := b.StartAnchor().Position
				bEnd := b.EndAnchor().Position
				switch {
				case aEnd.DistanceSquared(bStart) <= tol2:
				case aEnd.DistanceSquared(bEnd) <= tol2:
					b.Reverse()
				case aStart.DistanceSquared(bStart) <= tol2:
					a.Reverse()
				case aStart.DistanceSquared(bEnd) <= tol2:
					a.Reverse()
					b.Reverse()
				default:
					continue
				}
				spliceJoined(a, b)
				open = slices.Delete(open, j, j+1)
				merged = true
				break scan
			}
		}
	}

	for _, p := range open {
		if len(p.Anchors) > 2 &&
			p.StartAnchor().Position.DistanceSquared(p.EndAnchor().Position) <= tol2 {
			last := p.EndAnchor()
			p.Anchors[0].HandleIn = last.HandleIn
			p.Anchors = p.Anchors[:len(p.Anchors)-1]
			p.Closed = true
		}
	}
	return append(done, open...)
}

// spliceJoined appends src's anchors onto dst, assuming dst's end
// coincides with src's start. The junction anchor keeps dst's incoming
// handle and takes over src's outgoing handle, preserving curvature on
// both sides of the join.
func spliceJoined(dst, src *Path) {
	junction := dst.EndAnchor()
	junction.HandleOut = src.Anchors[0].HandleOut
	dst.Anchors = append(dst.Anchors, src.Anchors[1:]...)
}
