package geometry

// GrahamScan sorts the vertices by polar angle around the lowest vertex and
// sweeps once, popping the stack whenever the chain turns clockwise.
// O(n log n), dominated by the sort.
type GrahamScan struct{}

func (GrahamScan) Name() string { return "graham_scan" }

func (GrahamScan) ConvexHull(p *Polygon) ([]VertexID, error) {
	verts := p.Vertices()
	if hull, ok := collinearHull(verts); ok {
		return hull, nil
	}

	anchor := lowestThenLeftmost(verts)
	rest := make([]Vertex, 0, len(verts)-1)
	for _, v := range verts {
		if v.ID != anchor.ID {
			rest = append(rest, v)
		}
	}
	// Nearest-first ordering on ties means a point in the interior of an
	// anchor-incident hull edge arrives before the edge's far corner, and
	// the collinear pop below removes it when the corner shows up.
	sortCCWAround(anchor, rest)

	var stack VertexStack
	stack.Push(anchor)
	stack.Push(rest[0])
	for _, v := range rest[1:] {
		// Strictly left turns only; collinear points in the middle of an
		// edge get popped along with genuine right turns.
		for stack.Len() >= 2 {
			top := stack.Peek()
			under := stack.PeekUnder()
			if (Triangle{under.Coords, top.Coords, v.Coords}).AreaSign() > 0 {
				break
			}
			stack.Pop()
		}
		stack.Push(v)
	}

	hull := make([]VertexID, 0, stack.Len())
	for _, v := range stack {
		hull = append(hull, v.ID)
	}
	return hull, nil
}
