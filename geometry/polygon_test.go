package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An L shape, counterclockwise. Vertex 3 is reflex.
var lshapePoints = []Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}

func mustPolygon(t *testing.T, points []Point) *Polygon {
	t.Helper()
	polygon, err := NewPolygon(points)
	require.NoError(t, err)
	return polygon
}

func vertexByID(t *testing.T, p *Polygon, id VertexID) Vertex {
	t.Helper()
	v, err := p.Vertex(id)
	require.NoError(t, err)
	return v
}

func TestNewPolygonDegenerate(t *testing.T) {
	_, err := NewPolygon([]Point{{0, 0}, {1, 1}})
	require.Error(t, err)
	assert.IsType(t, DegenerateInputError{}, err)
}

func TestEdges(t *testing.T) {
	polygon := mustPolygon(t, squarePoints)
	edges := polygon.Edges()
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, edges)
}

func TestDoubleArea(t *testing.T) {
	rightTriangle := mustPolygon(t, []Point{{0, 0}, {3, 0}, {0, 4}})
	assert.Equal(t, 12.0, rightTriangle.DoubleArea())

	square := mustPolygon(t, squarePoints)
	assert.Equal(t, 32.0, square.DoubleArea())
	assert.True(t, square.IsCCW())

	lshape := mustPolygon(t, lshapePoints)
	assert.Equal(t, 24.0, lshape.DoubleArea())

	// Clockwise winding flips the sign
	cwSquare := mustPolygon(t, []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}})
	assert.Equal(t, -32.0, cwSquare.DoubleArea())
	assert.False(t, cwSquare.IsCCW())
}

func TestPointsRoundTrip(t *testing.T) {
	polygon := mustPolygon(t, lshapePoints)
	assert.Equal(t, lshapePoints, polygon.Points())
}

func TestInCone(t *testing.T) {
	polygon := mustPolygon(t, lshapePoints)
	reflex := vertexByID(t, polygon, 3)

	// The reflex corner sees the origin corner...
	assert.True(t, polygon.InCone(reflex, vertexByID(t, polygon, 0)))
	// ...but looking from vertex 2 toward vertex 4 leaves the polygon
	assert.False(t, polygon.InCone(vertexByID(t, polygon, 2), vertexByID(t, polygon, 4)))

	// A convex corner of the square sees both non-adjacent corners
	square := mustPolygon(t, squarePoints)
	assert.True(t, square.InCone(vertexByID(t, square, 0), vertexByID(t, square, 2)))
	assert.True(t, square.InCone(vertexByID(t, square, 2), vertexByID(t, square, 0)))
}

func TestDiagonal(t *testing.T) {
	polygon := mustPolygon(t, lshapePoints)

	cases := []struct {
		a, b  VertexID
		valid bool
	}{
		{0, 3, true},  // cuts the L into two rectangles
		{0, 2, true},  // cuts off the bottom right corner
		{1, 3, true},  // cuts off the bottom right corner the other way
		{2, 4, false}, // passes outside the reflex corner
		{1, 4, false}, // likewise
	}
	for _, c := range cases {
		a := vertexByID(t, polygon, c.a)
		b := vertexByID(t, polygon, c.b)
		assert.Equal(t, c.valid, polygon.Diagonal(a, b), "diagonal %d-%d", c.a, c.b)
		assert.Equal(t, c.valid, polygon.Diagonal(b, a), "diagonal %d-%d", c.b, c.a)
	}
}

func TestContainsPointByEvenOdd(t *testing.T) {
	polygon := mustPolygon(t, lshapePoints)

	assert.True(t, polygon.ContainsPointByEvenOdd(Point{1, 1}))
	assert.True(t, polygon.ContainsPointByEvenOdd(Point{3, 1}))
	assert.True(t, polygon.ContainsPointByEvenOdd(Point{1, 3}))

	// The notch is outside
	assert.False(t, polygon.ContainsPointByEvenOdd(Point{3, 3}))
	assert.False(t, polygon.ContainsPointByEvenOdd(Point{-1, 1}))
	assert.False(t, polygon.ContainsPointByEvenOdd(Point{1, 5}))
}

func TestBoundingBox(t *testing.T) {
	polygon := mustPolygon(t, lshapePoints)
	bb := polygon.BoundingBox()
	assert.Equal(t, BoundingBox{MinX: 0, MaxX: 4, MinY: 0, MaxY: 4}, bb)
	assert.Equal(t, Point{2, 2}, bb.Center())
}
