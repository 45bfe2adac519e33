package wave

import "math"

// Point is a 2D point in surface pixels, y growing downwards.
type Point struct {
	X float64
	Y float64
}

// SegmentKind identifies a path command.
type SegmentKind int

const (
	// SegmentMoveTo starts a new subpath at Points[0].
	SegmentMoveTo SegmentKind = iota
	// SegmentLineTo draws a straight line to Points[0].
	SegmentLineTo
	// SegmentCubicTo draws a cubic Bézier with controls Points[0], Points[1]
	// ending at Points[2].
	SegmentCubicTo
	// SegmentClose closes the current subpath.
	SegmentClose
)

// Segment is one path command. Unused points are zero.
type Segment struct {
	Kind   SegmentKind
	Points [3]Point
}

// End returns the point the pen rests on after the segment.
// Close segments report the zero point; use Path.Flatten for closed shapes.
func (s Segment) End() Point {
	switch s.Kind {
	case SegmentMoveTo, SegmentLineTo:
		return s.Points[0]
	case SegmentCubicTo:
		return s.Points[2]
	}
	return Point{}
}

// Path is an immutable-by-convention list of drawing commands. It carries
// no renderer types so any host can translate it.
type Path struct {
	Segments []Segment
}

// MoveTo appends a move command.
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentMoveTo, Points: [3]Point{{x, y}}})
}

// LineTo appends a line command.
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentLineTo, Points: [3]Point{{x, y}}})
}

// CubicTo appends a cubic Bézier command.
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.Segments = append(p.Segments, Segment{
		Kind:   SegmentCubicTo,
		Points: [3]Point{{x1, y1}, {x2, y2}, {x, y}},
	})
}

// Close appends a close command.
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Kind: SegmentClose})
}

// Start returns the first MoveTo point, or the zero point for an empty path.
func (p Path) Start() Point {
	for _, s := range p.Segments {
		if s.Kind == SegmentMoveTo {
			return s.Points[0]
		}
	}
	return Point{}
}

// LastPoint returns the pen position before the final Close, if any.
func (p Path) LastPoint() Point {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if p.Segments[i].Kind != SegmentClose {
			return p.Segments[i].End()
		}
	}
	return Point{}
}

// IsClosed reports whether the path ends with a Close command.
func (p Path) IsClosed() bool {
	n := len(p.Segments)
	return n > 0 && p.Segments[n-1].Kind == SegmentClose
}

// Flatten converts the path into a polyline. Each cubic is sampled into
// stepsPerCurve straight pieces (minimum 1). Close commands append the
// subpath start so the polyline is explicitly closed.
func (p Path) Flatten(stepsPerCurve int) []Point {
	if stepsPerCurve < 1 {
		stepsPerCurve = 1
	}

	points := make([]Point, 0, len(p.Segments)+stepsPerCurve*2)
	var pen, subpathStart Point
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentMoveTo:
			pen = s.Points[0]
			subpathStart = pen
			points = append(points, pen)
		case SegmentLineTo:
			pen = s.Points[0]
			points = append(points, pen)
		case SegmentCubicTo:
			for i := 1; i <= stepsPerCurve; i++ {
				t := float64(i) / float64(stepsPerCurve)
				points = append(points, cubicAt(pen, s.Points[0], s.Points[1], s.Points[2], t))
			}
			pen = s.Points[2]
		case SegmentClose:
			if pen != subpathStart {
				points = append(points, subpathStart)
			}
			pen = subpathStart
		}
	}
	return points
}

// cubicAt evaluates a cubic Bézier at t ∈ [0, 1].
func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Bounds returns the axis-aligned bounds of the path's control polygon.
// Bézier curves lie inside the hull of their control points, so the box
// always contains the rendered shape.
func (p Path) Bounds() (lo, hi Point) {
	first := true
	for _, s := range p.Segments {
		n := 0
		switch s.Kind {
		case SegmentMoveTo, SegmentLineTo:
			n = 1
		case SegmentCubicTo:
			n = 3
		}
		for _, pt := range s.Points[:n] {
			if first {
				lo, hi = pt, pt
				first = false
				continue
			}
			lo.X = math.Min(lo.X, pt.X)
			lo.Y = math.Min(lo.Y, pt.Y)
			hi.X = math.Max(hi.X, pt.X)
			hi.Y = math.Max(hi.Y, pt.Y)
		}
	}
	return lo, hi
}

// Contains reports whether pt lies inside the flattened outline using the
// even-odd rule. Points exactly on an edge may go either way.
func (p Path) Contains(pt Point, stepsPerCurve int) bool {
	return Polygon(p.Flatten(stepsPerCurve)).Contains(pt)
}

// Polygon is a flattened outline. Flatten once and reuse it when testing
// many points against the same frame.
type Polygon []Point

// Contains 射线法判断点是否在多边形内（even-odd）
func (poly Polygon) Contains(pt Point) bool {
	inside := false
	n := len(poly)
	if n < 3 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			// x 坐标：射线与边 (a, b) 的交点
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
