package xgeom

import "math"

// Overlaps reports whether a and b share at least one point. Unlike
// [Contains] it is boundary-inclusive everywhere: shapes that only
// touch still overlap. It is symmetric for every type pair; reversed
// orderings forward to the same test.
//
// Parallel segments never overlap, even when collinear and
// coincident. That simplification is shared with [Intersect].
func Overlaps[T Scalar](a, b Shape[T]) bool {
	switch a := a.(type) {
	case Vec[T]:
		return vecOverlaps(a, b)
	case Segment[T]:
		return segOverlaps(a, b)
	case Rect[T]:
		return rectOverlaps(a, b)
	case Circle[T]:
		return circleOverlaps(a, b)
	default:
		panic("xgeom: unknown shape")
	}
}

func vecOverlaps[T Scalar](p Vec[T], b Shape[T]) bool {
	switch b := b.(type) {
	case Vec[T]:
		return near(p, b)
	case Segment[T]:
		return onSegment(b, p)
	case Rect[T]:
		return inRect(b, p)
	case Circle[T]:
		return hitsCircle(b, p)
	default:
		panic("xgeom: unknown shape")
	}
}

func segOverlaps[T Scalar](l Segment[T], b Shape[T]) bool {
	switch b := b.(type) {
	case Vec[T]:
		return onSegment(l, b)
	case Segment[T]:
		return segsCross(l, b)
	case Rect[T]:
		return rectSegOverlap(b, l)
	case Circle[T]:
		return circleSegOverlap(b, l)
	default:
		panic("xgeom: unknown shape")
	}
}

func rectOverlaps[T Scalar](r Rect[T], b Shape[T]) bool {
	switch b := b.(type) {
	case Vec[T]:
		return inRect(r, b)
	case Segment[T]:
		return rectSegOverlap(r, b)
	case Rect[T]:
		return r.Pos.X <= b.Pos.X+b.Size.X && b.Pos.X <= r.Pos.X+r.Size.X &&
			r.Pos.Y <= b.Pos.Y+b.Size.Y && b.Pos.Y <= r.Pos.Y+r.Size.Y
	case Circle[T]:
		return circleRectOverlap(b, r)
	default:
		panic("xgeom: unknown shape")
	}
}

func circleOverlaps[T Scalar](c Circle[T], b Shape[T]) bool {
	switch b := b.(type) {
	case Vec[T]:
		return hitsCircle(c, b)
	case Segment[T]:
		return circleSegOverlap(c, b)
	case Rect[T]:
		return circleRectOverlap(c, b)
	case Circle[T]:
		r := float64(c.Radius) + float64(b.Radius)
		return dist2(c.Center, b.Center) <= r*r
	default:
		panic("xgeom: unknown shape")
	}
}

// hitsCircle is the boundary-inclusive companion of inCircle.
func hitsCircle[T Scalar](c Circle[T], p Vec[T]) bool {
	r := float64(c.Radius)
	return dist2(c.Center, p) <= r*r
}

// segParams solves the parametric line intersection of a and b,
// returning the parameter along each. ok is false when the segments
// are parallel.
func segParams[T Scalar](a, b Segment[T]) (t, u float64, ok bool) {
	rx := float64(a.End.X) - float64(a.Start.X)
	ry := float64(a.End.Y) - float64(a.Start.Y)
	sx := float64(b.End.X) - float64(b.Start.X)
	sy := float64(b.End.Y) - float64(b.Start.Y)

	d := rx*sy - ry*sx
	if d == 0 {
		return 0, 0, false
	}

	qx := float64(b.Start.X) - float64(a.Start.X)
	qy := float64(b.Start.Y) - float64(a.Start.Y)
	return (qx*sy - qy*sx) / d, (qx*ry - qy*rx) / d, true
}

// segsCross reports whether the two segments cross within their
// extents.
func segsCross[T Scalar](a, b Segment[T]) bool {
	t, u, ok := segParams(a, b)
	return ok && t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// rectSegOverlap tests the segment's endpoints against the rect, then
// the segment against each edge, so that segments lying entirely
// inside the rect still register.
func rectSegOverlap[T Scalar](r Rect[T], l Segment[T]) bool {
	if inRect(r, l.Start) || inRect(r, l.End) {
		return true
	}
	for e := range r.Edges() {
		if segsCross(e, l) {
			return true
		}
	}
	return false
}

func circleSegOverlap[T Scalar](c Circle[T], l Segment[T]) bool {
	r := float64(c.Radius)
	return dist2(c.Center, closestOnSegment(l, c.Center)) <= r*r
}

// circleRectOverlap clamps the circle's center into the rect and
// compares the clamped point's distance against the radius. A NaN
// distance, possible only with NaN coordinates, counts as zero: the
// center is treated as already inside.
func circleRectOverlap[T Scalar](c Circle[T], r Rect[T]) bool {
	cx, cy := float64(c.Center.X), float64(c.Center.Y)
	px := math.Min(math.Max(cx, float64(r.Pos.X)), float64(r.Pos.X)+float64(r.Size.X))
	py := math.Min(math.Max(cy, float64(r.Pos.Y)), float64(r.Pos.Y)+float64(r.Size.Y))

	o := (px-cx)*(px-cx) + (py-cy)*(py-cy)
	if math.IsNaN(o) {
		o = 0
	}
	rad := float64(c.Radius)
	return o <= rad*rad
}
