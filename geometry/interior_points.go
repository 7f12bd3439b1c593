package geometry

// InteriorPoints is the brute-force oracle: a vertex is interior iff it
// lies strictly inside some triangle formed by three other vertices, or on
// a segment between two other vertices. The hull is the complement, ordered
// by sweeping around its lowest vertex. O(n⁴); it exists purely to validate
// the other four strategies in tests and benchmarks.
type InteriorPoints struct{}

func (InteriorPoints) Name() string { return "interior_points" }

func (InteriorPoints) ConvexHull(p *Polygon) ([]VertexID, error) {
	verts := p.Vertices()
	if hull, ok := collinearHull(verts); ok {
		return hull, nil
	}

	var hullVerts []Vertex
	for _, v := range verts {
		if !isInteriorPoint(verts, v) {
			hullVerts = append(hullVerts, v)
		}
	}

	// The survivors are exactly the hull corners, so their polar order
	// around the lowest one is the hull order.
	anchor := lowestThenLeftmost(hullVerts)
	rest := make([]Vertex, 0, len(hullVerts)-1)
	for _, v := range hullVerts {
		if v.ID != anchor.ID {
			rest = append(rest, v)
		}
	}
	sortCCWAround(anchor, rest)

	hull := []VertexID{anchor.ID}
	for _, v := range rest {
		hull = append(hull, v.ID)
	}
	return hull, nil
}

func isInteriorPoint(verts []Vertex, target Vertex) bool {
	for _, a := range verts {
		if a.ID == target.ID {
			continue
		}
		for _, b := range verts {
			if b.ID == target.ID || b.ID == a.ID {
				continue
			}
			// Collinear case: on a segment between two others, but not
			// coincident with either of them
			if target.Coords != a.Coords && target.Coords != b.Coords &&
				target.Coords.Between(a.Coords, b.Coords) {
				return true
			}
			for _, c := range verts {
				if c.ID == target.ID || c.ID == a.ID || c.ID == b.ID {
					continue
				}
				if (Triangle{a.Coords, b.Coords, c.Coords}).StrictlyContains(target.Coords) {
					return true
				}
			}
		}
	}
	return false
}
