package geometer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulate(t *testing.T) {
	triangles, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}})
	require.NoError(t, err)
	assert.Len(t, triangles, 2)

	var doubleArea float64
	for _, triangle := range triangles {
		doubleArea += triangle.DoubleArea()
	}
	assert.Equal(t, 32.0, doubleArea)
}

func TestTriangulateDegenerateInput(t *testing.T) {
	_, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestConvexHull(t *testing.T) {
	// An interior point drops out of the hull
	hull, err := ConvexHull([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, hull)
}
