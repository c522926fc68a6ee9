package xgeom

import "math"

// Vec is a 2D vector. It doubles as a point and as a displacement;
// which reading applies depends on context.
//
// Vec is comparable, and == and != compare components exactly.
// Queries that need tolerance, such as [Contains], use [Eps] instead.
// Callers can therefore rely on == for deduplication and on the query
// functions for geometric tests.
type Vec[T Scalar] struct {
	X, Y T
}

// V returns the vector (x, y).
func V[T Scalar](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Add returns the component-wise sum of v and w.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return V(v.X+w.X, v.Y+w.Y)
}

// Sub returns the component-wise difference of v and w.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	return V(v.X-w.X, v.Y-w.Y)
}

// Mul returns the component-wise product of v and w.
func (v Vec[T]) Mul(w Vec[T]) Vec[T] {
	return V(v.X*w.X, v.Y*w.Y)
}

// Div returns the component-wise quotient of v and w.
func (v Vec[T]) Div(w Vec[T]) Vec[T] {
	return V(v.X/w.X, v.Y/w.Y)
}

// AddS returns v with s added to both components.
func (v Vec[T]) AddS(s T) Vec[T] {
	return V(v.X+s, v.Y+s)
}

// SubS returns v with s subtracted from both components.
func (v Vec[T]) SubS(s T) Vec[T] {
	return V(v.X-s, v.Y-s)
}

// MulS returns v scaled by s.
func (v Vec[T]) MulS(s T) Vec[T] {
	return V(v.X*s, v.Y*s)
}

// DivS returns v divided by s.
func (v Vec[T]) DivS(s T) Vec[T] {
	return V(v.X/s, v.Y/s)
}

// Neg returns v with both components negated.
func (v Vec[T]) Neg() Vec[T] {
	return V(-v.X, -v.Y)
}

// Area returns the product of v's components. When v is the size of a
// rectangle, this is that rectangle's area.
func (v Vec[T]) Area() T {
	return v.X * v.Y
}

// Dot returns the dot product of v and w.
func (v Vec[T]) Dot(w Vec[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product of v and w, the z component
// of the 3D cross product. Its sign tells which side of v the vector
// w points to.
func (v Vec[T]) Cross(w Vec[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Len returns the magnitude of v.
func (v Vec[T]) Len() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// Len2 returns the squared magnitude of v, avoiding the square root
// when only comparison is needed.
func (v Vec[T]) Len2() T {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between the points v and w.
func (v Vec[T]) Dist(w Vec[T]) float64 {
	return math.Sqrt(dist2(v, w))
}

// Dist2 returns the squared distance between the points v and w.
func (v Vec[T]) Dist2(w Vec[T]) float64 {
	return dist2(v, w)
}

// Norm returns the unit vector in the direction of v. If v has zero
// magnitude there is no such direction and Norm returns
// [ErrDegenerate] instead of a NaN-valued vector.
func (v Vec[T]) Norm() (Vec[T], error) {
	m := v.Len()
	if m == 0 {
		return Vec[T]{}, ErrDegenerate
	}
	return V(T(float64(v.X)/m), T(float64(v.Y)/m)), nil
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec[T]) Perp() Vec[T] {
	return V(-v.Y, v.X)
}

// Floor returns v with both components rounded down.
func (v Vec[T]) Floor() Vec[T] {
	return V(T(math.Floor(float64(v.X))), T(math.Floor(float64(v.Y))))
}

// Ceil returns v with both components rounded up.
func (v Vec[T]) Ceil() Vec[T] {
	return V(T(math.Ceil(float64(v.X))), T(math.Ceil(float64(v.Y))))
}

// Min returns the component-wise minimum of v and w.
func (v Vec[T]) Min(w Vec[T]) Vec[T] {
	return V(min(v.X, w.X), min(v.Y, w.Y))
}

// Max returns the component-wise maximum of v and w.
func (v Vec[T]) Max(w Vec[T]) Vec[T] {
	return V(max(v.X, w.X), max(v.Y, w.Y))
}

// Clamp returns v clamped component-wise into the box spanned by lo
// and hi.
func (v Vec[T]) Clamp(lo, hi Vec[T]) Vec[T] {
	return v.Max(lo).Min(hi)
}

// Lerp returns the linear interpolation between v and w at t. t is
// unrestricted: values outside [0, 1] extrapolate.
func (v Vec[T]) Lerp(w Vec[T], t float64) Vec[T] {
	return V(
		T(float64(v.X)+(float64(w.X)-float64(v.X))*t),
		T(float64(v.Y)+(float64(w.Y)-float64(v.Y))*t),
	)
}

// Polar reinterprets the cartesian vector v as polar coordinates,
// returning (radius, angle).
func (v Vec[T]) Polar() Vec[T] {
	return V(T(v.Len()), T(math.Atan2(float64(v.Y), float64(v.X))))
}

// Cartesian reinterprets v as polar (radius, angle) coordinates and
// returns the corresponding cartesian vector. It is the inverse of
// [Vec.Polar] up to floating-point tolerance.
func (v Vec[T]) Cartesian() Vec[T] {
	r, theta := float64(v.X), float64(v.Y)
	return V(T(math.Cos(theta)*r), T(math.Sin(theta)*r))
}
