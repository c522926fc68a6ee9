package xgeom

import "math"

// Closest returns the point of s nearest to p.
//
// For a point it is the point itself; for a segment, the clamped
// projection of p onto the segment; for a rect, p clamped
// component-wise into the rect; and for a circle, the projection of p
// onto the circle's boundary.
//
// Two degenerate cases have sentinel answers instead of NaN: a
// zero-length segment answers with its Start, and a circle queried at
// its own center answers with the center.
func Closest[T Scalar](s Shape[T], p Vec[T]) Vec[T] {
	switch s := s.(type) {
	case Vec[T]:
		return s
	case Segment[T]:
		return closestOnSegment(s, p)
	case Rect[T]:
		return p.Clamp(s.Min(), s.Max())
	case Circle[T]:
		return closestOnCircle(s, p)
	default:
		panic("xgeom: unknown shape")
	}
}

func closestOnSegment[T Scalar](l Segment[T], p Vec[T]) Vec[T] {
	dx := float64(l.End.X) - float64(l.Start.X)
	dy := float64(l.End.Y) - float64(l.Start.Y)
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return l.Start
	}

	px := float64(p.X) - float64(l.Start.X)
	py := float64(p.Y) - float64(l.Start.Y)
	t := (px*dx + py*dy) / len2
	return l.At(min(max(t, 0), 1))
}

func closestOnCircle[T Scalar](c Circle[T], p Vec[T]) Vec[T] {
	dx := float64(p.X) - float64(c.Center.X)
	dy := float64(p.Y) - float64(c.Center.Y)
	d := math.Sqrt(dx*dx + dy*dy)
	if d == 0 {
		return c.Center
	}

	r := float64(c.Radius)
	return V(
		T(float64(c.Center.X)+dx/d*r),
		T(float64(c.Center.Y)+dy/d*r),
	)
}
