package geometry

func (s LineSegment) Reverse() LineSegment {
	return LineSegment{s.B, s.A}
}

func (s LineSegment) IsVertical() bool {
	return s.A.X == s.B.X
}

func (s LineSegment) IsHorizontal() bool {
	return s.A.Y == s.B.Y
}

// ProperIntersects reports whether s and cd cross at a single interior
// point: each segment's endpoints must lie strictly on opposite sides of
// the other. A configuration with any collinear triple among the four
// endpoints is never proper; if it touches at all, it's improper.
func (s LineSegment) ProperIntersects(cd LineSegment) bool {
	a, b, c, d := s.A, s.B, cd.A, cd.B

	abc := Triangle{a, b, c}
	abd := Triangle{a, b, d}
	cda := Triangle{c, d, a}
	cdb := Triangle{c, d, b}

	if abc.HasCollinearPoints() || abd.HasCollinearPoints() ||
		cda.HasCollinearPoints() || cdb.HasCollinearPoints() {
		return false
	}

	abSplitsCD := abc.AreaSign()*abd.AreaSign() < 0
	cdSplitsAB := cda.AreaSign()*cdb.AreaSign() < 0
	return abSplitsCD && cdSplitsAB
}

// ImproperIntersects reports whether an endpoint of one segment lies on the
// other: the touching and collinear-overlap cases. Note that a segment
// always improperly intersects itself; callers that need to exclude
// self-intersection do so with adjacency checks, not here.
func (s LineSegment) ImproperIntersects(cd LineSegment) bool {
	a, b, c, d := s.A, s.B, cd.A, cd.B
	return c.Between(a, b) || d.Between(a, b) || a.Between(c, d) || b.Between(c, d)
}

func (s LineSegment) Intersects(cd LineSegment) bool {
	return s.ProperIntersects(cd) || s.ImproperIntersects(cd)
}

// IncidentTo reports whether p is one of the segment's endpoints.
func (s LineSegment) IncidentTo(p Point) bool {
	return s.A == p || s.B == p
}

// ConnectedTo reports whether the two segments share an endpoint.
func (s LineSegment) ConnectedTo(cd LineSegment) bool {
	return s.IncidentTo(cd.A) || s.IncidentTo(cd.B)
}
