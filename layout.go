package xgeom

import (
	"iter"

	"deedles.dev/xiter"
)

// Sides is a bitmask naming zero or more sides of a rectangle.
type Sides uint32

const (
	SideNone Sides = 0
	SideTop  Sides = 1 << (iota - 1)
	SideBottom
	SideLeft
	SideRight
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the left one w wide.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(V(w, r.Dy()))
	right = r.Resize(V(r.Dx()-w, r.Dy())).Add(V(w, 0))
	return left, right
}

func hsplitHalf[T Scalar](r Rect[T]) (left, right Rect[T]) {
	return hsplit(r, r.Dx()/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the top one h tall.
func vsplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resize(V(r.Dx(), h))
	bottom = r.Resize(V(r.Dx(), r.Dy()-h)).Add(V(0, h))
	return top, bottom
}

func vsplitHalf[T Scalar](r Rect[T]) (top, bottom Rect[T]) {
	return vsplit(r, r.Dy()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles to
// split r by recursively halving each remaining section, first to the
// right and then downwards. In other words,
//
//	tiles := make([]xgeom.Rect[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}
		if numtiles == 1 {
			yield(r)
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]

		c, n := split(r)
		for range numtiles - 2 {
			if !yield(c) {
				return
			}

			split, next = next, split
			c, n = split(n)
		}

		if yield(c) {
			yield(n)
		}
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the first covers the left two-thirds of r and the rest split
// the remaining third evenly as a vertical sidebar.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		first, rem := hsplit(r, 2*r.Dx()/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles into
// an even vertical splitting of r. In other words,
//
//	tiles := make([]xgeom.Rect[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		c := r.Resize(V(r.Dx(), r.Dy()/T(numtiles)))
		shift := V(0, c.Dy())
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles
// into an even horizontal splitting of r. In other words,
//
//	tiles := make([]xgeom.Rect[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		c := r.Resize(V(r.Dx()/T(numtiles), r.Dy()))
		shift := V(c.Dx(), 0)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(shift)
		}
	}
}

// TileRows arranges and resizes the elements of tiles into rows and
// columns whose union reproduces r. Each full row holds cols tiles;
// the final row splits evenly between whatever tiles remain.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, r) {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T Scalar](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		shift := V(0, first.Canon().Dy())
		for {
			if !yield(first) {
				return
			}
			first = first.Add(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, widening them all to the width of
// the widest so that the stack has straight sides.
func ArrangeVerticalStack[T Scalar](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	first := rects[0].Canon()
	for _, r := range rects {
		if w := r.Canon().Dx(); w > first.Size.X {
			first.Size.X = w
		}
	}
	rects[0] = first

	prev := first
	for i := 1; i < len(rects); i++ {
		rects[i] = Rt(prev.Pos.X, prev.Pos.Y+prev.Size.Y, first.Size.X, rects[i].Canon().Dy())
		prev = rects[i]
	}
}

// Align shifts the named sides of inner to line up with the
// corresponding sides of outer, stretching inner when opposite sides
// are both named. With no sides named, inner is centered in outer.
func Align[T Scalar](outer, inner Rect[T], sides Sides) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case sides&SideTop != 0:
		inner.Pos.Y = outer.Pos.Y
		if sides&SideBottom != 0 {
			inner.Size.Y = outer.Size.Y
		}
	case sides&SideBottom != 0:
		inner.Pos.Y = outer.Pos.Y + outer.Size.Y - inner.Size.Y
	}
	switch {
	case sides&SideLeft != 0:
		inner.Pos.X = outer.Pos.X
		if sides&SideRight != 0 {
			inner.Size.X = outer.Size.X
		}
	case sides&SideRight != 0:
		inner.Pos.X = outer.Pos.X + outer.Size.X - inner.Size.X
	}

	return inner
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
