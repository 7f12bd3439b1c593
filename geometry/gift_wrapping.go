package geometry

// GiftWrapping is the Jarvis march: starting from the lowest vertex, wrap
// around the point set by repeatedly picking the vertex that every other
// vertex lies to the left of. O(nh) for h hull vertices, so it beats the
// sorting algorithms when the hull is small.
type GiftWrapping struct{}

func (GiftWrapping) Name() string { return "gift_wrapping" }

func (GiftWrapping) ConvexHull(p *Polygon) ([]VertexID, error) {
	verts := p.Vertices()
	if hull, ok := collinearHull(verts); ok {
		return hull, nil
	}

	start := lowestThenLeftmost(verts)
	hull := []VertexID{start.ID}
	current := start
	for {
		next := selectNextHullVertex(verts, current)
		if next.ID == start.ID {
			break
		}
		hull = append(hull, next.ID)
		current = next
		if len(hull) > len(verts) {
			// The wrap failed to close; impossible for a finite point set
			fatalf("gift wrapping visited %d vertices without closing the hull", len(hull))
		}
	}
	return hull, nil
}

// selectNextHullVertex picks the vertex all others are left of when seen
// from current. Among collinear candidates the farthest wins, so points in
// the interior of a hull edge are skipped over.
func selectNextHullVertex(verts []Vertex, current Vertex) Vertex {
	var candidate Vertex
	have := false
	for _, v := range verts {
		if v.ID == current.ID {
			continue
		}
		if !have {
			candidate = v
			have = true
			continue
		}
		sign := (Triangle{current.Coords, candidate.Coords, v.Coords}).AreaSign()
		if sign < 0 {
			candidate = v
		} else if sign == 0 && dist2(current.Coords, v.Coords) > dist2(current.Coords, candidate.Coords) {
			candidate = v
		}
	}
	return candidate
}
