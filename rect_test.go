package xgeom_test

import (
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

func TestRectAreaPerim(t *testing.T) {
	r := xgeom.Rt(0.0, 0, 2, 2)
	require.Equal(t, 4.0, r.Area())

	// Guards against the off-by-two perimeter: 2*(w+h), not w+h.
	require.Equal(t, 8.0, r.Perim())

	require.Equal(t, 16, xgeom.Rt(0, 0, 4, 4).Perim())
}

func TestRectCorners(t *testing.T) {
	r := xgeom.Rt(1.0, 2, 3, 4)
	require.Equal(t, xgeom.V(1.0, 2), r.Min())
	require.Equal(t, xgeom.V(4.0, 6), r.Max())
	require.Equal(t, 3.0, r.Dx())
	require.Equal(t, 4.0, r.Dy())
	require.Equal(t, xgeom.V(2.5, 4), r.Center())
}

func TestRectEdges(t *testing.T) {
	r := xgeom.Rt(0.0, 0, 2, 2)

	require.Equal(t, xgeom.Seg(xgeom.V(0.0, 0), xgeom.V(2.0, 0)), r.Top())
	require.Equal(t, xgeom.Seg(xgeom.V(2.0, 0), xgeom.V(2.0, 2)), r.Right())
	require.Equal(t, xgeom.Seg(xgeom.V(0.0, 2), xgeom.V(2.0, 2)), r.Bottom())
	require.Equal(t, xgeom.Seg(xgeom.V(0.0, 0), xgeom.V(0.0, 2)), r.Left())

	require.Equal(t, r.Top(), r.Edge(0))
	require.Equal(t, r.Right(), r.Edge(1))
	require.Equal(t, r.Bottom(), r.Edge(2))
	require.Equal(t, r.Left(), r.Edge(3))

	// Indexes wrap modulo 4, including negative ones.
	require.Equal(t, r.Right(), r.Edge(5))
	require.Equal(t, r.Top(), r.Edge(-4))
	require.Equal(t, r.Left(), r.Edge(-1))

	var edges []xgeom.Segment[float64]
	for e := range r.Edges() {
		edges = append(edges, e)
	}
	require.Equal(t, []xgeom.Segment[float64]{r.Top(), r.Right(), r.Bottom(), r.Left()}, edges)
}

func TestRectCanon(t *testing.T) {
	require.Equal(t, xgeom.Rt(0.0, 0, 2, 2), xgeom.Rt(2.0, 2, -2, -2).Canon())
	require.Equal(t, xgeom.Rt(1.0, 1, 3, 3), xgeom.Rt(1.0, 1, 3, 3).Canon())
}

func TestRectAdjust(t *testing.T) {
	r := xgeom.Rt(1.0, 1, 2, 2)
	require.Equal(t, xgeom.Rt(3.0, 0, 2, 2), r.Add(xgeom.V(2.0, -1)))
	require.Equal(t, xgeom.Rt(1.0, 1, 5, 6), r.Resize(xgeom.V(5.0, 6)))
	require.Equal(t, xgeom.Rt(4.0, 4, 2, 2), r.CenterAt(xgeom.V(5.0, 5)))
}
