package xgeom

import "math"

// Intersect returns the concrete points that a and b have in common,
// or nil if there are none. Rectangles answer with points on their
// boundary, and points collected from several edges, such as at a
// shared corner, are not deduplicated. Reversed orderings forward to
// the same computation.
//
// Parallel segments yield no intersection points even when collinear
// and coincident. For integer element types the computed points are
// truncated toward zero.
func Intersect[T Scalar](a, b Shape[T]) []Vec[T] {
	switch a := a.(type) {
	case Vec[T]:
		return vecIntersect(a, b)
	case Segment[T]:
		return segIntersect(a, b)
	case Rect[T]:
		return rectIntersect(a, b)
	case Circle[T]:
		return circleIntersect(a, b)
	default:
		panic("xgeom: unknown shape")
	}
}

func vecIntersect[T Scalar](p Vec[T], b Shape[T]) []Vec[T] {
	switch b := b.(type) {
	case Vec[T]:
		if near(p, b) {
			return []Vec[T]{p}
		}
		return nil
	case Segment[T]:
		if onSegment(b, p) {
			return []Vec[T]{p}
		}
		return nil
	case Rect[T]:
		if onRectBoundary(b, p) {
			return []Vec[T]{p}
		}
		return nil
	case Circle[T]:
		if onCircleBoundary(b, p) {
			return []Vec[T]{p}
		}
		return nil
	default:
		panic("xgeom: unknown shape")
	}
}

func segIntersect[T Scalar](l Segment[T], b Shape[T]) []Vec[T] {
	switch b := b.(type) {
	case Vec[T]:
		if onSegment(l, b) {
			return []Vec[T]{b}
		}
		return nil
	case Segment[T]:
		if p, ok := segCrossPoint(l, b); ok {
			return []Vec[T]{p}
		}
		return nil
	case Rect[T]:
		return rectSegIntersect(b, l)
	case Circle[T]:
		return circleSegIntersect(b, l)
	default:
		panic("xgeom: unknown shape")
	}
}

func rectIntersect[T Scalar](r Rect[T], b Shape[T]) []Vec[T] {
	switch b := b.(type) {
	case Vec[T]:
		if onRectBoundary(r, b) {
			return []Vec[T]{b}
		}
		return nil
	case Segment[T]:
		return rectSegIntersect(r, b)
	case Rect[T]:
		var pts []Vec[T]
		for e := range b.Edges() {
			pts = append(pts, rectSegIntersect(r, e)...)
		}
		return pts
	case Circle[T]:
		return circleRectIntersect(b, r)
	default:
		panic("xgeom: unknown shape")
	}
}

func circleIntersect[T Scalar](c Circle[T], b Shape[T]) []Vec[T] {
	switch b := b.(type) {
	case Vec[T]:
		if onCircleBoundary(c, b) {
			return []Vec[T]{b}
		}
		return nil
	case Segment[T]:
		return circleSegIntersect(c, b)
	case Rect[T]:
		return circleRectIntersect(c, b)
	case Circle[T]:
		return circlesIntersect(c, b)
	default:
		panic("xgeom: unknown shape")
	}
}

func onRectBoundary[T Scalar](r Rect[T], p Vec[T]) bool {
	for e := range r.Edges() {
		if onSegment(e, p) {
			return true
		}
	}
	return false
}

func onCircleBoundary[T Scalar](c Circle[T], p Vec[T]) bool {
	r := float64(c.Radius)
	return math.Abs(dist2(c.Center, p)-r*r) < Eps
}

// segCrossPoint returns the single crossing point of a and b, if any.
func segCrossPoint[T Scalar](a, b Segment[T]) (Vec[T], bool) {
	t, u, ok := segParams(a, b)
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec[T]{}, false
	}
	return a.At(t), true
}

// rectSegIntersect collects the segment's crossing point with each of
// the rect's four edges, up to four points in edge order.
func rectSegIntersect[T Scalar](r Rect[T], l Segment[T]) []Vec[T] {
	var pts []Vec[T]
	for e := range r.Edges() {
		if p, ok := segCrossPoint(e, l); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// circleSegIntersect solves |l(t) - center|² = r² for t and keeps the
// roots inside the segment's extent. A tangent segment yields one
// point. A zero-length segment yields its point when it lies on the
// boundary.
func circleSegIntersect[T Scalar](c Circle[T], l Segment[T]) []Vec[T] {
	dx := float64(l.End.X) - float64(l.Start.X)
	dy := float64(l.End.Y) - float64(l.Start.Y)
	fx := float64(l.Start.X) - float64(c.Center.X)
	fy := float64(l.Start.Y) - float64(c.Center.Y)
	r := float64(c.Radius)

	a := dx*dx + dy*dy
	if a == 0 {
		if onCircleBoundary(c, l.Start) {
			return []Vec[T]{l.Start}
		}
		return nil
	}

	b := 2 * (fx*dx + fy*dy)
	e := fx*fx + fy*fy - r*r
	disc := b*b - 4*a*e
	if disc < 0 {
		return nil
	}

	sq := math.Sqrt(disc)
	var pts []Vec[T]
	if t := (-b - sq) / (2 * a); t >= 0 && t <= 1 {
		pts = append(pts, l.At(t))
	}
	if sq == 0 {
		return pts
	}
	if t := (-b + sq) / (2 * a); t >= 0 && t <= 1 {
		pts = append(pts, l.At(t))
	}
	return pts
}

func circleRectIntersect[T Scalar](c Circle[T], r Rect[T]) []Vec[T] {
	var pts []Vec[T]
	for e := range r.Edges() {
		pts = append(pts, circleSegIntersect(c, e)...)
	}
	return pts
}

// circlesIntersect computes the intersection of two circle boundaries
// via the lens formula. Concentric circles, including coincident
// ones, yield no points, as do circles too far apart or nested too
// deeply to touch.
func circlesIntersect[T Scalar](c1, c2 Circle[T]) []Vec[T] {
	d2 := dist2(c1.Center, c2.Center)
	d := math.Sqrt(d2)
	r1, r2 := float64(c1.Radius), float64(c2.Radius)
	if d == 0 || d > r1+r2 || d < math.Abs(r1-r2) {
		return nil
	}

	a := (r1*r1 - r2*r2 + d2) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	ux := (float64(c2.Center.X) - float64(c1.Center.X)) / d
	uy := (float64(c2.Center.Y) - float64(c1.Center.Y)) / d
	bx := float64(c1.Center.X) + a*ux
	by := float64(c1.Center.Y) + a*uy

	if h == 0 {
		return []Vec[T]{V(T(bx), T(by))}
	}
	return []Vec[T]{
		V(T(bx-h*uy), T(by+h*ux)),
		V(T(bx+h*uy), T(by-h*ux)),
	}
}
