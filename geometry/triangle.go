package geometry

// DoubleArea returns twice the signed area of the triangle: positive when
// the corners wind counterclockwise, negative when clockwise, and exactly
// zero iff the corners are collinear, including any two of them being
// equal. Every other predicate in this package bottoms out here, so this is
// the one place precision matters: for integer-valued coordinates the
// products and differences are exact in float64.
func (t Triangle) DoubleArea() float64 {
	t1 := (t.B.X - t.A.X) * (t.C.Y - t.A.Y)
	t2 := (t.C.X - t.A.X) * (t.B.Y - t.A.Y)
	return t1 - t2
}

// AreaSign is the orientation of the triangle: 1 for counterclockwise, -1
// for clockwise, 0 for collinear.
func (t Triangle) AreaSign() int {
	area := t.DoubleArea()
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	}
	return 0
}

func (t Triangle) HasCollinearPoints() bool {
	return t.AreaSign() == 0
}

// StrictlyContains reports whether p lies strictly inside the triangle.
// Points on an edge or at a corner do not count. Works for either winding;
// a degenerate triangle contains nothing.
func (t Triangle) StrictlyContains(p Point) bool {
	s1 := (Triangle{t.A, t.B, p}).AreaSign()
	s2 := (Triangle{t.B, t.C, p}).AreaSign()
	s3 := (Triangle{t.C, t.A, p}).AreaSign()
	if s1 == 0 || s2 == 0 || s3 == 0 {
		return false
	}
	return s1 == s2 && s2 == s3
}
