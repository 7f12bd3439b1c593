package geometry

// QuickHull divides and conquers: split the vertex set by the line through
// the leftmost and rightmost vertices, then recursively expand each side
// around its farthest point. Average O(n log n); degrades to O(n²) when
// most points end up on the hull.
type QuickHull struct{}

func (QuickHull) Name() string { return "quick_hull" }

func (QuickHull) ConvexHull(p *Polygon) ([]VertexID, error) {
	verts := p.Vertices()
	if hull, ok := collinearHull(verts); ok {
		return hull, nil
	}

	left := verts[0]
	right := verts[0]
	for _, v := range verts[1:] {
		if v.Coords.X < left.Coords.X ||
			(v.Coords.X == left.Coords.X && v.Coords.Y < left.Coords.Y) {
			left = v
		}
		if v.Coords.X > right.Coords.X ||
			(v.Coords.X == right.Coords.X && v.Coords.Y > right.Coords.Y) {
			right = v
		}
	}

	// Counterclockwise assembly: the left extreme, the chain below the
	// split line, the right extreme, then the chain above. "Below" the
	// directed line left→right is its right side.
	hull := []VertexID{left.ID}
	hull = append(hull, expandHull(rightOf(verts, left, right), left, right)...)
	hull = append(hull, right.ID)
	hull = append(hull, expandHull(rightOf(verts, right, left), right, left)...)
	return hull, nil
}

// rightOf filters to the vertices strictly right of the directed line a→b.
// Points on the line are dropped: they're interior to the hull edge or to
// the region already accounted for.
func rightOf(verts []Vertex, a, b Vertex) []Vertex {
	var out []Vertex
	for _, v := range verts {
		if (Triangle{a.Coords, b.Coords, v.Coords}).AreaSign() < 0 {
			out = append(out, v)
		}
	}
	return out
}

// expandHull returns the hull vertices strictly between a and b on the
// right of a→b, ordered from a to b. verts must already be filtered to that
// side.
func expandHull(verts []Vertex, a, b Vertex) []VertexID {
	if len(verts) == 0 {
		return nil
	}

	// The farthest vertex from the line a→b is the most negative signed
	// area, since everything here is on the right side.
	farthest := verts[0]
	best := (Triangle{a.Coords, b.Coords, farthest.Coords}).DoubleArea()
	for _, v := range verts[1:] {
		if area := (Triangle{a.Coords, b.Coords, v.Coords}).DoubleArea(); area < best {
			best = area
			farthest = v
		}
	}

	hull := expandHull(rightOf(verts, a, farthest), a, farthest)
	hull = append(hull, farthest.ID)
	hull = append(hull, expandHull(rightOf(verts, farthest, b), farthest, b)...)
	return hull
}
