package xgeom

import "iter"

// Rect is an axis-aligned rectangle anchored at Pos with extents
// Size. Size is expected to be nonnegative; the query functions in
// this package assume canonical rectangles, so callers holding a rect
// with negative extents should normalize it with [Rect.Canon] first.
type Rect[T Scalar] struct {
	Pos, Size Vec[T]
}

// Rt returns the rectangle at (x, y) with width w and height h.
func Rt[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Pos: V(x, y), Size: V(w, h)}
}

// Min returns the rectangle's anchor corner.
func (r Rect[T]) Min() Vec[T] {
	return r.Pos
}

// Max returns the corner opposite the anchor.
func (r Rect[T]) Max() Vec[T] {
	return r.Pos.Add(r.Size)
}

// Dx returns the rectangle's width.
func (r Rect[T]) Dx() T {
	return r.Size.X
}

// Dy returns the rectangle's height.
func (r Rect[T]) Dy() T {
	return r.Size.Y
}

// Center returns the rectangle's center point.
func (r Rect[T]) Center() Vec[T] {
	return r.Pos.Add(r.Size.DivS(2))
}

// Top returns the rectangle's top edge, directed left to right.
func (r Rect[T]) Top() Segment[T] {
	return Seg(r.Pos, V(r.Pos.X+r.Size.X, r.Pos.Y))
}

// Right returns the rectangle's right edge, directed top to bottom.
func (r Rect[T]) Right() Segment[T] {
	return Seg(V(r.Pos.X+r.Size.X, r.Pos.Y), r.Max())
}

// Bottom returns the rectangle's bottom edge, directed left to right.
func (r Rect[T]) Bottom() Segment[T] {
	return Seg(V(r.Pos.X, r.Pos.Y+r.Size.Y), r.Max())
}

// Left returns the rectangle's left edge, directed top to bottom.
func (r Rect[T]) Left() Segment[T] {
	return Seg(r.Pos, V(r.Pos.X, r.Pos.Y+r.Size.Y))
}

// Edge returns edge i of the rectangle in top, right, bottom, left
// order. i is taken modulo 4, so any index, including negative ones,
// names an edge.
func (r Rect[T]) Edge(i int) Segment[T] {
	switch (i%4 + 4) % 4 {
	case 0:
		return r.Top()
	case 1:
		return r.Right()
	case 2:
		return r.Bottom()
	default:
		return r.Left()
	}
}

// Edges yields the rectangle's four boundary edges in top, right,
// bottom, left order.
func (r Rect[T]) Edges() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		_ = yield(r.Top()) && yield(r.Right()) && yield(r.Bottom()) && yield(r.Left())
	}
}

// Area returns the rectangle's area.
func (r Rect[T]) Area() T {
	return r.Size.Area()
}

// Perim returns the rectangle's perimeter, 2*(w+h).
func (r Rect[T]) Perim() T {
	return 2 * (r.Size.X + r.Size.Y)
}

// Canon returns the canonical version of the rectangle: the same
// point set but with nonnegative Size.
func (r Rect[T]) Canon() Rect[T] {
	if r.Size.X < 0 {
		r.Pos.X += r.Size.X
		r.Size.X = -r.Size.X
	}
	if r.Size.Y < 0 {
		r.Pos.Y += r.Size.Y
		r.Size.Y = -r.Size.Y
	}
	return r
}

// Add returns the rectangle translated by v.
func (r Rect[T]) Add(v Vec[T]) Rect[T] {
	r.Pos = r.Pos.Add(v)
	return r
}

// Resize returns the rectangle with its size set to size, keeping the
// anchor fixed.
func (r Rect[T]) Resize(size Vec[T]) Rect[T] {
	r.Size = size
	return r
}

// CenterAt returns the rectangle moved so that its center is at p.
func (r Rect[T]) CenterAt(p Vec[T]) Rect[T] {
	r.Pos = p.Sub(r.Size.DivS(2))
	return r
}

// inRect reports whether p lies within the closed rectangle.
func inRect[T Scalar](r Rect[T], p Vec[T]) bool {
	return p.X >= r.Pos.X && p.Y >= r.Pos.Y &&
		p.X <= r.Pos.X+r.Size.X && p.Y <= r.Pos.Y+r.Size.Y
}
