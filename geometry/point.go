package geometry

import "math"

// Between reports whether p lies on the closed segment ab. The three points
// must be collinear; betweenness is then checked by projecting onto the x
// axis, or onto the y axis when ab is vertical. Endpoints count as between.
func (p Point) Between(a, b Point) bool {
	if a == b {
		// Degenerate segment: only the point itself lies on it
		return p == a
	}
	if !(Triangle{a, b, p}).HasCollinearPoints() {
		return false
	}
	if (LineSegment{a, b}).IsVertical() {
		return inClosedRange(p.Y, a.Y, b.Y)
	}
	return inClosedRange(p.X, a.X, b.X)
}

func inClosedRange(v, e1, e2 float64) bool {
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	return e1 <= v && v <= e2
}

// Left reports whether p is strictly left of the directed line through ab.
func (p Point) Left(ab LineSegment) bool {
	return (Triangle{ab.A, ab.B, p}).AreaSign() > 0
}

// LeftOn is like Left, but also admits points on the line.
func (p Point) LeftOn(ab LineSegment) bool {
	return (Triangle{ab.A, ab.B, p}).AreaSign() >= 0
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". So the lowest point of
// a set is also the leftmost of the lowest, which is the starting corner the
// hull algorithms want.
func (p Point) Below(q Point) bool {
	if p.Y == q.Y {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) Above(q Point) bool {
	return !p.Below(q)
}

// RotatedAbout returns p rotated counterclockwise by the given angle in
// radians around center.
func (p Point) RotatedAbout(center Point, radians float64) Point {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}

func dist2(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
