package xgeom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestIntersectVecs(t *testing.T) {
	p := xgeom.V(1.0, 1)
	require.Equal(t, []xgeom.Vec[float64]{p}, xgeom.Intersect(p, xgeom.V(1.0, 1)))
	require.Empty(t, xgeom.Intersect(p, xgeom.V(2.0, 2)))
}

func TestIntersectSegments(t *testing.T) {
	a := xgeom.Seg(xgeom.V(0.0, 0), xgeom.V(2.0, 2))
	b := xgeom.Seg(xgeom.V(0.0, 2), xgeom.V(2.0, 0))
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(1.0, 1)}, xgeom.Intersect(a, b))

	// Parallel segments produce no intersection points.
	require.Empty(t, xgeom.Intersect(a, xgeom.Seg(xgeom.V(0.0, 1), xgeom.V(2.0, 3))))
	require.Empty(t, xgeom.Intersect(a, a))

	// The lines cross but the segments do not reach the crossing.
	require.Empty(t, xgeom.Intersect(a, xgeom.Seg(xgeom.V(3.0, 0), xgeom.V(4.0, 0))))
}

func TestIntersectSegmentVec(t *testing.T) {
	l := xgeom.Seg(xgeom.V(0.0, 0), xgeom.V(10.0, 0))
	p := xgeom.V(5.0, 0)

	require.Equal(t, []xgeom.Vec[float64]{p}, xgeom.Intersect(l, p))
	require.Equal(t, xgeom.Intersect(l, p), xgeom.Intersect(p, l))
	require.Empty(t, xgeom.Intersect(l, xgeom.V(5.0, 1)))
}

func TestIntersectRectSegment(t *testing.T) {
	r := xgeom.Rt(0.0, 0, 2, 2)
	l := xgeom.Seg(xgeom.V(-1.0, 1), xgeom.V(3.0, 1))

	pts := xgeom.Intersect(r, l)
	require.ElementsMatch(t, []xgeom.Vec[float64]{xgeom.V(0.0, 1), xgeom.V(2.0, 1)}, pts)
	require.Equal(t, pts, xgeom.Intersect(l, r))

	require.Empty(t, xgeom.Intersect(r, xgeom.Seg(xgeom.V(-1.0, 5), xgeom.V(3.0, 5))))
}

func TestIntersectRectVec(t *testing.T) {
	r := xgeom.Rt(0.0, 0, 2, 2)

	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(2.0, 1)}, xgeom.Intersect(r, xgeom.V(2.0, 1)))

	// The rect answers with boundary points only.
	require.Empty(t, xgeom.Intersect(r, xgeom.V(1.0, 1)))
}

func TestIntersectRects(t *testing.T) {
	a := xgeom.Rt(0.0, 0, 4, 4)
	b := xgeom.Rt(2.0, 2, 4, 4)

	pts := xgeom.Intersect(a, b)
	require.ElementsMatch(t, []xgeom.Vec[float64]{xgeom.V(4.0, 2), xgeom.V(2.0, 4)}, pts)

	require.Empty(t, xgeom.Intersect(a, xgeom.Rt(10.0, 10, 1, 1)))
}

func TestIntersectCircleSegment(t *testing.T) {
	c := xgeom.Circ(xgeom.V(0.0, 0), 1.0)

	pts := xgeom.Intersect(c, xgeom.Seg(xgeom.V(-2.0, 0), xgeom.V(2.0, 0)))
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(-1.0, 0), xgeom.V(1.0, 0)}, pts)

	// A tangent segment touches in a single point.
	pts = xgeom.Intersect(c, xgeom.Seg(xgeom.V(-2.0, 1), xgeom.V(2.0, 1)))
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(0.0, 1)}, pts)

	// A chord cut short by the segment's extent yields one point.
	pts = xgeom.Intersect(c, xgeom.Seg(xgeom.V(0.0, 0), xgeom.V(2.0, 0)))
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(1.0, 0)}, pts)

	require.Empty(t, xgeom.Intersect(c, xgeom.Seg(xgeom.V(-2.0, 2), xgeom.V(2.0, 2))))
}

func TestIntersectCircleRect(t *testing.T) {
	c := xgeom.Circ(xgeom.V(0.0, 0), 1.0)
	r := xgeom.Rt(0.0, -2, 4, 4)

	pts := xgeom.Intersect(c, r)
	require.ElementsMatch(t, []xgeom.Vec[float64]{xgeom.V(0.0, -1), xgeom.V(0.0, 1)}, pts)
	require.ElementsMatch(t, pts, xgeom.Intersect(r, c))
}

func TestIntersectCircles(t *testing.T) {
	a := xgeom.Circ(xgeom.V(0.0, 0), 1.0)
	b := xgeom.Circ(xgeom.V(1.0, 0), 1.0)

	h := math.Sqrt(0.75)
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(0.5, h), xgeom.V(0.5, -h)}, xgeom.Intersect(a, b))

	// Externally tangent circles touch in one point.
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(1.0, 0)},
		xgeom.Intersect(a, xgeom.Circ(xgeom.V(2.0, 0), 1.0)))

	require.Empty(t, xgeom.Intersect(a, xgeom.Circ(xgeom.V(5.0, 0), 1.0)), "too far apart")
	require.Empty(t, xgeom.Intersect(a, xgeom.Circ(xgeom.V(0.1, 0), 0.1)), "nested too deeply")
	require.Empty(t, xgeom.Intersect(a, a), "coincident circles")
}

func TestIntersectCircleVec(t *testing.T) {
	c := xgeom.Circ(xgeom.V(0.0, 0), 1.0)

	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(1.0, 0)}, xgeom.Intersect(c, xgeom.V(1.0, 0)))
	require.Equal(t, []xgeom.Vec[float64]{xgeom.V(1.0, 0)}, xgeom.Intersect(xgeom.V(1.0, 0), c))
	require.Empty(t, xgeom.Intersect(c, xgeom.V(0.5, 0)), "interior point is not on the boundary")
}
