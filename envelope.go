package xgeom

// BoundingCircle returns the smallest circle that fully encloses s.
// It is exact for every shape: a point becomes a zero-radius circle,
// a segment's enclosing circle is centered on its midpoint, a rect's
// on its center with the half-diagonal as radius, and a circle is its
// own envelope. The result is idempotent under repeated application.
//
// For integer element types the radius is truncated toward zero.
func BoundingCircle[T Scalar](s Shape[T]) Circle[T] {
	switch s := s.(type) {
	case Vec[T]:
		return Circ(s, T(0))
	case Segment[T]:
		return Circ(s.Mid(), T(s.Len()/2))
	case Rect[T]:
		return BoundingCircle[T](Seg(s.Min(), s.Max()))
	case Circle[T]:
		return s
	default:
		panic("xgeom: unknown shape")
	}
}

// BoundingRect returns the smallest axis-aligned rectangle that fully
// encloses s: a zero-size rect for a point, the span of the endpoints
// for a segment, the center ± radius box for a circle, and the rect
// itself for a rect. The result is canonical and idempotent under
// repeated application.
func BoundingRect[T Scalar](s Shape[T]) Rect[T] {
	switch s := s.(type) {
	case Vec[T]:
		return Rect[T]{Pos: s}
	case Segment[T]:
		lo := s.Start.Min(s.End)
		return Rect[T]{Pos: lo, Size: s.Start.Max(s.End).Sub(lo)}
	case Rect[T]:
		return s
	case Circle[T]:
		return Rect[T]{
			Pos:  s.Center.SubS(s.Radius),
			Size: V(2*s.Radius, 2*s.Radius),
		}
	default:
		panic("xgeom: unknown shape")
	}
}
