package xgeom

import "math"

// Segment is a directed line segment from Start to End. A zero-length
// segment is valid and behaves as the single point Start in the query
// functions.
type Segment[T Scalar] struct {
	Start, End Vec[T]
}

// Seg returns the segment from start to end.
func Seg[T Scalar](start, end Vec[T]) Segment[T] {
	return Segment[T]{Start: start, End: end}
}

// Dir returns the displacement from Start to End.
func (l Segment[T]) Dir() Vec[T] {
	return l.End.Sub(l.Start)
}

// Len returns the length of the segment.
func (l Segment[T]) Len() float64 {
	return l.Start.Dist(l.End)
}

// Len2 returns the squared length of the segment.
func (l Segment[T]) Len2() float64 {
	return dist2(l.Start, l.End)
}

// At returns the point at parameter t along the segment, with t=0 at
// Start and t=1 at End. t is unrestricted: values outside [0, 1]
// extrapolate along the segment's line.
func (l Segment[T]) At(t float64) Vec[T] {
	sx, sy := float64(l.Start.X), float64(l.Start.Y)
	return V(
		T(sx+(float64(l.End.X)-sx)*t),
		T(sy+(float64(l.End.Y)-sy)*t),
	)
}

// Mid returns the midpoint of the segment.
func (l Segment[T]) Mid() Vec[T] {
	return l.At(0.5)
}

// Side classifies which half-plane p lies in relative to the directed
// segment: 1 if p is to the left, -1 if to the right, and 0 if p is
// collinear with the segment's line.
func (l Segment[T]) Side(p Vec[T]) int {
	dx := float64(l.End.X) - float64(l.Start.X)
	dy := float64(l.End.Y) - float64(l.Start.Y)
	px := float64(p.X) - float64(l.Start.X)
	py := float64(p.Y) - float64(l.Start.Y)
	return sgn(dx*py - dy*px)
}

// onSegment reports whether p lies on l: collinear within Eps with the
// projection parameter in [0, 1]. A zero-length segment contains
// exactly the points near its start.
func onSegment[T Scalar](l Segment[T], p Vec[T]) bool {
	sx, sy := float64(l.Start.X), float64(l.Start.Y)
	dx := float64(l.End.X) - sx
	dy := float64(l.End.Y) - sy
	px := float64(p.X) - sx
	py := float64(p.Y) - sy

	if math.Abs(px*dy-py*dx) >= Eps {
		return false
	}
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return near(l.Start, p)
	}
	u := (px*dx + py*dy) / len2
	return u >= 0 && u <= 1
}
