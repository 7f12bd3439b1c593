package geometry

import "sort"

// HullAlgorithm is the contract shared by the five convex hull strategies:
// given a polygon, return the ids of its hull vertices in counterclockwise
// order, each exactly once. Collinear points in the interior of a hull edge
// are excluded. The strategies differ only in how much work they do; they
// must agree on the resulting vertex set, which the tests exploit to
// cross-validate them.
type HullAlgorithm interface {
	Name() string
	ConvexHull(p *Polygon) ([]VertexID, error)
}

// HullAlgorithms enumerates every strategy, fastest first.
func HullAlgorithms() []HullAlgorithm {
	return []HullAlgorithm{
		GrahamScan{},
		QuickHull{},
		GiftWrapping{},
		ExtremeEdges{},
		InteriorPoints{},
	}
}

// collinearHull handles the degenerate case where every vertex lies on one
// line: the "hull" is the segment between the two extreme vertices, so
// those two are returned. Reports ok=false for inputs with an interior,
// which the real algorithms handle.
func collinearHull(verts []Vertex) ([]VertexID, bool) {
	ref := verts[0].Coords
	var refB Point
	found := false
	for _, v := range verts[1:] {
		if v.Coords != ref {
			refB = v.Coords
			found = true
			break
		}
	}
	if !found {
		// Every vertex coincides; one of them is the whole hull.
		return []VertexID{verts[0].ID}, true
	}
	for _, v := range verts {
		if !(Triangle{ref, refB, v.Coords}).HasCollinearPoints() {
			return nil, false
		}
	}

	low, high := verts[0], verts[0]
	for _, v := range verts[1:] {
		if v.Coords.Below(low.Coords) {
			low = v
		}
		if high.Coords.Below(v.Coords) {
			high = v
		}
	}
	return []VertexID{low.ID, high.ID}, true
}

// lowestThenLeftmost returns the vertex with the smallest y coordinate,
// breaking ties by smallest x. It is always a hull vertex, which is why the
// sweep algorithms start there.
func lowestThenLeftmost(verts []Vertex) Vertex {
	best := verts[0]
	for _, v := range verts[1:] {
		if v.Coords.Below(best.Coords) {
			best = v
		}
	}
	return best
}

// sortCCWAround sorts verts in place by polar angle around the anchor,
// nearest first among ties. The anchor must be below all of verts (in the
// lexicographic sense), so every angle falls in [0, π] and the orientation
// sign is a consistent comparator.
func sortCCWAround(anchor Vertex, verts []Vertex) {
	sort.SliceStable(verts, func(i, j int) bool {
		s := (Triangle{anchor.Coords, verts[i].Coords, verts[j].Coords}).AreaSign()
		if s != 0 {
			return s > 0
		}
		return dist2(anchor.Coords, verts[i].Coords) < dist2(anchor.Coords, verts[j].Coords)
	})
}
