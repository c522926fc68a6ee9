package xgeom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestBoundingCircle(t *testing.T) {
	require.Equal(t, xgeom.Circ(xgeom.V(1.0, 2), 0.0), xgeom.BoundingCircle[float64](xgeom.V(1.0, 2)))

	l := xgeom.Seg(xgeom.V(0.0, 0), xgeom.V(6.0, 8))
	require.Equal(t, xgeom.Circ(xgeom.V(3.0, 4), 5.0), xgeom.BoundingCircle[float64](l))

	r := xgeom.Rt(0.0, 0, 2, 2)
	c := xgeom.BoundingCircle[float64](r)
	require.Equal(t, xgeom.V(1.0, 1), c.Center)
	require.InDelta(t, math.Sqrt2, c.Radius, 1e-12)

	self := xgeom.Circ(xgeom.V(3.0, 3), 7.0)
	require.Equal(t, self, xgeom.BoundingCircle[float64](self))
}

func TestBoundingRect(t *testing.T) {
	require.Equal(t, xgeom.Rt(1.0, 2, 0, 0), xgeom.BoundingRect[float64](xgeom.V(1.0, 2)))

	// The span is the same regardless of the segment's direction.
	l := xgeom.Seg(xgeom.V(5.0, 1), xgeom.V(2.0, 3))
	require.Equal(t, xgeom.Rt(2.0, 1, 3, 2), xgeom.BoundingRect[float64](l))
	require.Equal(t, xgeom.Rt(2.0, 1, 3, 2), xgeom.BoundingRect[float64](xgeom.Seg(l.End, l.Start)))

	require.Equal(t, xgeom.Rt(-1.0, -1, 4, 4), xgeom.BoundingRect[float64](xgeom.Circ(xgeom.V(1.0, 1), 2.0)))

	self := xgeom.Rt(3.0, 3, 7, 7)
	require.Equal(t, self, xgeom.BoundingRect[float64](self))
}

func TestEnvelopeIdempotent(t *testing.T) {
	for _, s := range testShapes() {
		r := xgeom.BoundingRect(s)
		require.Equal(t, r, xgeom.BoundingRect[float64](r))

		c := xgeom.BoundingCircle(s)
		require.Equal(t, c, xgeom.BoundingCircle[float64](c))
	}
}

func TestEnvelopeEncloses(t *testing.T) {
	for _, s := range testShapes() {
		for _, p := range boundarySamples(s) {
			require.True(t, xgeom.Contains[float64](xgeom.BoundingRect(s), p))
		}
	}
}
