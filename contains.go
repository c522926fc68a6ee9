package xgeom

// Contains reports whether every point of inner lies within the
// closed outer shape.
//
// Point-point containment is tolerant: two points contain each other
// when their squared distance is below [Eps]. Circle-point
// containment is strict: points on the circle's boundary are not
// contained. Rect and segment containment are boundary-inclusive.
//
// Containment implies overlap for every pairing except coincident
// parallel segments, which contain each other even though [Overlaps]
// reports parallel segments as disjoint.
func Contains[T Scalar](outer, inner Shape[T]) bool {
	switch outer := outer.(type) {
	case Vec[T]:
		return vecContains(outer, inner)
	case Segment[T]:
		return segContains(outer, inner)
	case Rect[T]:
		return rectContains(outer, inner)
	case Circle[T]:
		return circleContains(outer, inner)
	default:
		panic("xgeom: unknown shape")
	}
}

// vecContains treats the point as a closed Eps-ball: it contains
// another shape only when that shape degenerates to the same point.
func vecContains[T Scalar](p Vec[T], inner Shape[T]) bool {
	switch inner := inner.(type) {
	case Vec[T]:
		return near(p, inner)
	case Segment[T]:
		return near(p, inner.Start) && near(p, inner.End)
	case Rect[T]:
		return near(p, inner.Min()) && near(p, inner.Max())
	case Circle[T]:
		r := float64(inner.Radius)
		return r*r < Eps && near(p, inner.Center)
	default:
		panic("xgeom: unknown shape")
	}
}

func segContains[T Scalar](l Segment[T], inner Shape[T]) bool {
	switch inner := inner.(type) {
	case Vec[T]:
		return onSegment(l, inner)
	case Segment[T]:
		return onSegment(l, inner.Start) && onSegment(l, inner.End)
	case Rect[T]:
		// Only a degenerate rect fits on a segment, in which case
		// its corners collapse onto it.
		return onSegment(l, inner.Min()) &&
			onSegment(l, V(inner.Pos.X+inner.Size.X, inner.Pos.Y)) &&
			onSegment(l, V(inner.Pos.X, inner.Pos.Y+inner.Size.Y)) &&
			onSegment(l, inner.Max())
	case Circle[T]:
		r := float64(inner.Radius)
		return r*r < Eps && onSegment(l, inner.Center)
	default:
		panic("xgeom: unknown shape")
	}
}

func rectContains[T Scalar](r Rect[T], inner Shape[T]) bool {
	switch inner := inner.(type) {
	case Vec[T]:
		return inRect(r, inner)
	case Segment[T]:
		return inRect(r, inner.Start) && inRect(r, inner.End)
	case Rect[T]:
		return inRect(r, inner.Min()) && inRect(r, inner.Max())
	case Circle[T]:
		cx, cy := float64(inner.Center.X), float64(inner.Center.Y)
		rad := float64(inner.Radius)
		return cx-rad >= float64(r.Pos.X) &&
			cy-rad >= float64(r.Pos.Y) &&
			cx+rad <= float64(r.Pos.X)+float64(r.Size.X) &&
			cy+rad <= float64(r.Pos.Y)+float64(r.Size.Y)
	default:
		panic("xgeom: unknown shape")
	}
}

func circleContains[T Scalar](c Circle[T], inner Shape[T]) bool {
	switch inner := inner.(type) {
	case Vec[T]:
		return inCircle(c, inner)
	case Segment[T]:
		// The disk is convex, so the endpoints suffice.
		return inCircle(c, inner.Start) && inCircle(c, inner.End)
	case Rect[T]:
		return inCircle(c, inner.Min()) &&
			inCircle(c, V(inner.Pos.X+inner.Size.X, inner.Pos.Y)) &&
			inCircle(c, V(inner.Pos.X, inner.Pos.Y+inner.Size.Y)) &&
			inCircle(c, inner.Max())
	case Circle[T]:
		r1, r2 := float64(c.Radius), float64(inner.Radius)
		if r1 < r2 {
			return false
		}
		return dist2(c.Center, inner.Center) <= (r1-r2)*(r1-r2)
	default:
		panic("xgeom: unknown shape")
	}
}
