package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{1, 1}
	p2 := Point{2, 2}

	assert.True(t, p1.Between(p0, p2))
	assert.True(t, p1.Between(p2, p0))
	assert.False(t, p0.Between(p1, p2))
	assert.False(t, p0.Between(p2, p1))
	assert.False(t, p2.Between(p0, p1))
	assert.False(t, p2.Between(p1, p0))

	// Endpoints are between
	assert.True(t, p0.Between(p0, p2))
	assert.True(t, p2.Between(p0, p2))
}

func TestBetweenDegenerateSegment(t *testing.T) {
	// A zero-length segment contains only its own point, even for other
	// points sharing its x or y coordinate
	assert.True(t, Point{0, 0}.Between(Point{0, 0}, Point{0, 0}))
	assert.False(t, Point{5, 0}.Between(Point{0, 0}, Point{0, 0}))
	assert.False(t, Point{0, 5}.Between(Point{0, 0}, Point{0, 0}))
}

func TestBetweenVertical(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{0, 1}
	p2 := Point{0, 2}

	assert.True(t, p1.Between(p0, p2))
	assert.True(t, p1.Between(p2, p0))
	assert.False(t, p0.Between(p1, p2))
	assert.False(t, p2.Between(p0, p1))
}

func TestBetweenRequiresCollinearity(t *testing.T) {
	// In the closed coordinate range of the segment, but off the line
	assert.False(t, Point{1, 2}.Between(Point{0, 0}, Point{2, 2}))
}

func TestLeftAndLeftOn(t *testing.T) {
	ab := LineSegment{Point{0, 0}, Point{4, 0}}

	assert.True(t, Point{2, 1}.Left(ab))
	assert.True(t, Point{2, 1}.LeftOn(ab))

	assert.False(t, Point{2, -1}.Left(ab))
	assert.False(t, Point{2, -1}.LeftOn(ab))

	// On the line: LeftOn only
	assert.False(t, Point{2, 0}.Left(ab))
	assert.True(t, Point{2, 0}.LeftOn(ab))

	// The reverse segment flips the answers
	ba := ab.Reverse()
	assert.True(t, Point{2, -1}.Left(ba))
	assert.False(t, Point{2, 1}.Left(ba))
}

func TestBelow(t *testing.T) {
	assert.True(t, Point{0, 0}.Below(Point{0, 1}))
	assert.False(t, Point{0, 1}.Below(Point{0, 0}))

	// Equal Y falls back to X, simulating a slightly rotated plane
	assert.True(t, Point{0, 1}.Below(Point{2, 1}))
	assert.False(t, Point{2, 1}.Below(Point{0, 1}))

	assert.True(t, Point{5, 5}.Above(Point{5, 4}))
}

func TestRotatedAbout(t *testing.T) {
	origin := Point{0, 0}
	p := Point{1, 0}

	quarter := p.RotatedAbout(origin, math.Pi/2)
	assert.InDelta(t, 0, quarter.X, 1e-12)
	assert.InDelta(t, 1, quarter.Y, 1e-12)

	half := p.RotatedAbout(origin, math.Pi)
	assert.InDelta(t, -1, half.X, 1e-12)
	assert.InDelta(t, 0, half.Y, 1e-12)

	full := p.RotatedAbout(origin, 2*math.Pi)
	assert.InDelta(t, 1, full.X, 1e-12)
	assert.InDelta(t, 0, full.Y, 1e-12)

	// Rotating about the point itself is a no-op
	spun := Point{3, 4}.RotatedAbout(Point{3, 4}, 1.234)
	assert.InDelta(t, 3, spun.X, 1e-12)
	assert.InDelta(t, 4, spun.Y, 1e-12)
}
