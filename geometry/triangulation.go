package geometry

// EarNotFoundError means no ear was found while more than 3 vertices
// remained. Every simple polygon with an interior has at least two ears, so
// this indicates an invalid input: self-intersecting or zero-area. The
// condition is fatal; rescanning the same topology cannot turn up an ear
// that isn't there.
type EarNotFoundError struct{}

func (EarNotFoundError) Error() string {
	return "no ear found; polygon is likely invalid"
}

// TriangleIDs is an unordered triple of vertex ids naming one triangle of a
// triangulation. Triples are stored rotated so the smallest id comes first.
// Rotation preserves orientation, so triangles recorded from a
// counterclockwise polygon stay counterclockwise while equality is still
// order-free.
type TriangleIDs [3]VertexID

func newTriangleIDs(a, b, c VertexID) TriangleIDs {
	switch {
	case b <= a && b <= c:
		return TriangleIDs{b, c, a}
	case c <= a && c <= b:
		return TriangleIDs{c, a, b}
	}
	return TriangleIDs{a, b, c}
}

// Triangulation is a set of id triples covering a polygon with no overlap.
// It keeps a reference to the source polygon's vertex map so triples can be
// reprojected onto coordinates.
type Triangulation struct {
	triangles map[TriangleIDs]struct{}
	order     []TriangleIDs
	vmap      *VertexMap
}

func newTriangulation(vmap *VertexMap) *Triangulation {
	return &Triangulation{
		triangles: make(map[TriangleIDs]struct{}),
		vmap:      vmap,
	}
}

func (tr *Triangulation) insert(ids TriangleIDs) {
	if _, ok := tr.triangles[ids]; ok {
		return
	}
	tr.triangles[ids] = struct{}{}
	tr.order = append(tr.order, ids)
}

func (tr *Triangulation) Len() int {
	return len(tr.triangles)
}

func (tr *Triangulation) Contains(a, b, c VertexID) bool {
	_, ok := tr.triangles[newTriangleIDs(a, b, c)]
	return ok
}

// Slice returns the triangles in the order they were clipped. The set has
// no semantic order; this is just deterministic iteration.
func (tr *Triangulation) Slice() []TriangleIDs {
	return append([]TriangleIDs(nil), tr.order...)
}

// ToTriangles reprojects the id triples onto coordinate triples. This is
// the seam renderers and serializers consume.
func (tr *Triangulation) ToTriangles() []Triangle {
	triangles := make([]Triangle, 0, len(tr.order))
	for _, ids := range tr.order {
		triangles = append(triangles, Triangle{
			A: tr.vmap.mustGet(ids[0]).Coords,
			B: tr.vmap.mustGet(ids[1]).Coords,
			C: tr.vmap.mustGet(ids[2]).Coords,
		})
	}
	return triangles
}

// DoubleArea sums the signed double areas of the triangles. For a valid
// triangulation of a polygon with integer-valued coordinates this equals
// the polygon's own DoubleArea exactly, not approximately; the tests rely
// on that.
func (tr *Triangulation) DoubleArea() float64 {
	var area float64
	for _, t := range tr.ToTriangles() {
		area += t.DoubleArea()
	}
	return area
}

// Triangulate clips ears off a working copy of the polygon until only one
// triangle remains. An ear is a vertex whose neighbors see each other along
// a diagonal; clipping it removes the vertex and records the triangle
// (prev, v, next). Either winding is accepted: a clockwise polygon is
// clipped on a reversed copy and the recorded triples are flipped back so
// their orientation matches the input.
//
// An n-vertex simple polygon always produces exactly n-2 triangles.
func (p *Polygon) Triangulate() (*Triangulation, error) {
	if p.DoubleArea() == 0 {
		// A zero-area polygon has no interior and no ears.
		return nil, EarNotFoundError{}
	}

	triangulation := newTriangulation(p.vmap)
	work := &Polygon{vmap: p.vmap.Clone()}
	reversed := false
	if !work.IsCCW() {
		work.vmap.Reverse()
		reversed = true
	}

	record := func(a, b, c VertexID) {
		if reversed {
			a, c = c, a
		}
		triangulation.insert(newTriangleIDs(a, b, c))
	}

	for work.vmap.Len() > 3 {
		earID, ok := findEar(work)
		if !ok {
			return nil, EarNotFoundError{}
		}
		v, err := work.vmap.Remove(earID)
		if err != nil {
			return nil, err
		}
		record(v.Prev, v.ID, v.Next)
	}

	// The three remaining vertices are the final triangle.
	v := work.vmap.Anchor()
	record(v.Prev, v.ID, v.Next)

	return triangulation, nil
}

// findEar scans the working polygon in topology order and returns the first
// vertex whose removal leaves a valid simple polygon. The two-ears theorem
// guarantees one exists at every stage for a valid input.
func findEar(work *Polygon) (VertexID, bool) {
	for _, v := range work.vmap.Values() {
		prev := work.vmap.mustGet(v.Prev)
		next := work.vmap.mustGet(v.Next)
		if work.Diagonal(prev, next) {
			return v.ID, true
		}
	}
	return 0, false
}
