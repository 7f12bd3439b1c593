package geometry

// ExtremeEdges is the quadratic reference implementation: a directed edge
// (a,b) is a hull edge iff every other vertex lies strictly left of it or
// on the closed segment ab. All such edges are collected and chained into a
// cycle. O(n³); it exists for cross-checking the faster strategies, not for
// performance.
type ExtremeEdges struct{}

func (ExtremeEdges) Name() string { return "extreme_edges" }

func (ExtremeEdges) ConvexHull(p *Polygon) ([]VertexID, error) {
	verts := p.Vertices()
	if hull, ok := collinearHull(verts); ok {
		return hull, nil
	}

	next := make(map[VertexID]VertexID, len(verts))
	for _, a := range verts {
		for _, b := range verts {
			if a.ID == b.ID || a.Coords == b.Coords {
				continue
			}
			if isExtremeEdge(verts, a, b) {
				next[a.ID] = b.ID
			}
		}
	}

	start := lowestThenLeftmost(verts)
	hull := []VertexID{start.ID}
	for current := next[start.ID]; current != start.ID; current = next[current] {
		hull = append(hull, current)
		if len(hull) > len(verts) {
			fatalf("extreme edges visited %d vertices without closing the hull", len(hull))
		}
	}
	return hull, nil
}

// isExtremeEdge checks every other vertex against the directed edge a→b.
// The between case admits collinear points inside the span of the edge, so
// the full-length edge qualifies and its sub-edges do not: a sub-edge has a
// collinear vertex beyond one of its ends, which fails both tests. That is
// what keeps edge-interior points off the hull.
func isExtremeEdge(verts []Vertex, a, b Vertex) bool {
	ab := LineSegment{a.Coords, b.Coords}
	for _, v := range verts {
		if v.ID == a.ID || v.ID == b.ID {
			continue
		}
		if v.Coords.Left(ab) {
			continue
		}
		if v.Coords.Between(ab.A, ab.B) {
			continue
		}
		return false
	}
	return true
}
