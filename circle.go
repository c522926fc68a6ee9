package xgeom

import "math"

// Circle is the disk of the given radius around Center. Radius is
// expected to be nonnegative.
type Circle[T Scalar] struct {
	Center Vec[T]
	Radius T
}

// Circ returns the circle of radius r around center.
func Circ[T Scalar](center Vec[T], r T) Circle[T] {
	return Circle[T]{Center: center, Radius: r}
}

// Area returns the circle's area.
func (c Circle[T]) Area() float64 {
	r := float64(c.Radius)
	return math.Pi * r * r
}

// Perim returns the circle's perimeter.
func (c Circle[T]) Perim() float64 {
	return 2 * math.Pi * float64(c.Radius)
}

// Circum returns the circle's circumference. It is a synonym for
// [Circle.Perim].
func (c Circle[T]) Circum() float64 {
	return c.Perim()
}

// inCircle reports whether p lies strictly inside the circle. Points
// on the boundary are not inside.
func inCircle[T Scalar](c Circle[T], p Vec[T]) bool {
	r := float64(c.Radius)
	return dist2(c.Center, p) < r*r
}
