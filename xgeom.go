// Package xgeom provides generic 2D geometric primitives: vectors,
// line segments, axis-aligned rectangles, and circles, along with a
// uniform set of containment, overlap, intersection, closest-point,
// and bounding-shape queries over them.
//
// It is patterned loosely after image.Point and image.Rectangle, but
// is parameterized over the numeric element type and extends the
// geometry far beyond rectangles.
//
// Every type in this package is an immutable value type: operations
// return new values and never modify their receiver or arguments.
// Nothing in this package holds state, so independently-owned values
// may be used from any number of goroutines.
package xgeom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that xgeom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Shape is the closed set of geometric primitives understood by the
// query functions in this package: [Vec], [Segment], [Rect], and
// [Circle].
type Shape[T Scalar] interface {
	shape(T)
}

func (Vec[T]) shape(T)     {}
func (Segment[T]) shape(T) {}
func (Rect[T]) shape(T)    {}
func (Circle[T]) shape(T)  {}

// Eps is the tolerance used by the approximate comparisons in this
// package, such as point-point containment and point-on-segment
// tests. The right value depends on the scale of the caller's
// coordinates, so it may be changed at program start. It is not
// synchronized and must not be modified while queries are running.
var Eps = 1e-3

// ErrDegenerate indicates an input with no meaningful answer, such as
// normalizing a zero-length vector.
var ErrDegenerate = errors.New("degenerate input")

func sgn[T Scalar](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// dist2 returns the squared distance between p and q, computed in
// float64 so that unsigned element types cannot wrap.
func dist2[T Scalar](p, q Vec[T]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return dx*dx + dy*dy
}

// near reports whether p and q are the same point within Eps.
func near[T Scalar](p, q Vec[T]) bool {
	return dist2(p, q) < Eps
}
