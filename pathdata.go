package geom

// The kernel's boundary format: an ordered sequence of path commands,
// used to hand geometry to external collaborators (boolean-ops and
// stroking engines, format serializers, renderers) and to receive
// results back. Engine output may contain quadratic and conic commands;
// those are mapped onto cubic handles on ingest, so paths themselves
// only ever carry lines and cubics.

type PathCommandKind uint8

const (
	MoveToKind PathCommandKind = iota
	LineToKind
	QuadToKind
	ConicToKind
	CubicToKind
	ClosePathKind
)

// PathCommand is one drawing command. For CubicToKind, P0 and P1 are
// the control points and P2 the endpoint; for QuadToKind and
// ConicToKind, P0 is the control point and P1 the endpoint; for
// MoveToKind and LineToKind only P0 is used. Weight is the conic weight
// and only meaningful for ConicToKind.
type PathCommand struct {
	Kind   PathCommandKind
	P0     Vector2
	P1     Vector2
	P2     Vector2
	Weight float64
}

func MoveTo(p Vector2) PathCommand {
	return PathCommand{Kind: MoveToKind, P0: p}
}

func LineTo(p Vector2) PathCommand {
	return PathCommand{Kind: LineToKind, P0: p}
}

func QuadTo(control, end Vector2) PathCommand {
	return PathCommand{Kind: QuadToKind, P0: control, P1: end}
}

func ConicTo(control, end Vector2, weight float64) PathCommand {
	return PathCommand{Kind: ConicToKind, P0: control, P1: end, Weight: weight}
}

func CubicTo(control1, control2, end Vector2) PathCommand {
	return PathCommand{Kind: CubicToKind, P0: control1, P1: control2, P2: end}
}

func ClosePath() PathCommand {
	return PathCommand{Kind: ClosePathKind}
}

// Commands returns the path as a command sequence: a MoveTo, one LineTo
// or CubicTo per segment, and a ClosePath for closed paths.
func (p *Path) Commands() []PathCommand {
	if len(p.Anchors) == 0 {
		return nil
	}
	out := make([]PathCommand, 0, p.SegmentCount()+2)
	out = append(out, MoveTo(p.Anchors[0].Position))
	for i := 0; i < p.SegmentCount(); i++ {
		s := p.Segment(i)
		if s.IsLinear() {
			out = append(out, LineTo(s.A2.Position))
		} else {
			c := s.Cubic()
			out = append(out, CubicTo(c.P1, c.P2, c.P3))
		}
	}
	if p.Closed {
		out = append(out, ClosePath())
	}
	return out
}

// commandWeldTolerance is the distance within which a trailing anchor
// produced by a ClosePath back to the start is welded onto the first
// anchor.
const commandWeldTolerance = 1e-9

// PathsFromCommands builds paths from a command sequence. Each MoveTo
// starts a new path; quadratic and conic commands are converted to
// cubic handles (conics via a single analytic conic→cubic
// approximation). A ClosePath whose current endpoint coincides with the
// start welds the duplicate anchor away.
func PathsFromCommands(cmds []PathCommand) []*Path {
	var out []*Path
	var cur *Path
	flush := func() {
		if cur != nil && len(cur.Anchors) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	ensure := func(start Vector2) {
		if cur == nil {
			cur = NewPath(NewAnchor(start))
		}
	}

	for _, cmd := range cmds {
		switch cmd.Kind {
		case MoveToKind:
			flush()
			cur = NewPath(NewAnchor(cmd.P0))
		case LineToKind:
			ensure(cmd.P0)
			cur.Anchors = append(cur.Anchors, NewAnchor(cmd.P0))
		case QuadToKind:
			ensure(cmd.P1)
			appendCurve(cur, cmd.P0, cmd.P0, cmd.P1, 2.0/3.0)
		case ConicToKind:
			ensure(cmd.P1)
			// A conic of weight 1 is an ordinary parabolic arc; other
			// weights get the analytic single-subdivision
			// approximation.
			k := 2.0 / 3.0
			if w := cmd.Weight; w > 0 && w != 1 {
				k = 4 * w / (3 * (1 + w))
			}
			appendCurve(cur, cmd.P0, cmd.P0, cmd.P1, k)
		case CubicToKind:
			ensure(cmd.P2)
			last := cur.EndAnchor()
			last.HandleOut = cmd.P0.Sub(last.Position)
			cur.Anchors = append(cur.Anchors, NewAnchorWithHandles(
				cmd.P2, cmd.P1.Sub(cmd.P2), Vector2{}))
		case ClosePathKind:
			if cur == nil {
				continue
			}
			if len(cur.Anchors) > 1 {
				first := cur.Anchors[0]
				last := cur.EndAnchor()
				if first.Position.Distance(last.Position) <= commandWeldTolerance {
					first.HandleIn = last.HandleIn
					cur.Anchors = cur.Anchors[:len(cur.Anchors)-1]
				}
			}
			cur.Closed = true
			flush()
		}
	}
	flush()
	return out
}

// appendCurve appends a curved segment to p where the cubic handles are
// the fraction k of the way from each endpoint toward the (shared)
// control point.
func appendCurve(p *Path, control1, control2, end Vector2, k float64) {
	last := p.EndAnchor()
	last.HandleOut = control1.Sub(last.Position).Mul(k)
	p.Anchors = append(p.Anchors, NewAnchorWithHandles(
		end, control2.Sub(end).Mul(k), Vector2{}))
}

// PathFromCommands builds a single path from a command sequence,
// returning the first path if the sequence describes several.
func PathFromCommands(cmds []PathCommand) *Path {
	paths := PathsFromCommands(cmds)
	if len(paths) == 0 {
		return NewPath()
	}
	return paths[0]
}

// PathWalker is a canvas-style traversal callback. The kernel drives a
// walker with the path's commands; rendering collaborators implement it
// to emit their own path representation. The kernel does not render
// anything itself.
type PathWalker interface {
	MoveTo(p Vector2)
	LineTo(p Vector2)
	CubicTo(control1, control2, end Vector2)
	ClosePath()
}

// Walk drives w over the path's segments.
func (p *Path) Walk(w PathWalker) {
	if len(p.Anchors) == 0 {
		return
	}
	w.MoveTo(p.Anchors[0].Position)
	for i := 0; i < p.SegmentCount(); i++ {
		s := p.Segment(i)
		if s.IsLinear() {
			w.LineTo(s.A2.Position)
		} else {
			c := s.Cubic()
			w.CubicTo(c.P1, c.P2, c.P3)
		}
	}
	if p.Closed {
		w.ClosePath()
	}
}
