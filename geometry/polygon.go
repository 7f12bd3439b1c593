package geometry

import "math"

// Polygon is a simple polygon over an owned vertex map. The polygon is
// read-only from the caller's perspective: algorithms that need to mutate
// topology (ear clipping) work on a clone of the map, so a Polygon handed
// to them is never changed.
type Polygon struct {
	vmap *VertexMap
}

// NewPolygon builds a polygon from boundary points given in either winding
// order. Fails with DegenerateInputError for fewer than 3 points.
func NewPolygon(points []Point) (*Polygon, error) {
	vmap, err := NewVertexMap(points)
	if err != nil {
		return nil, err
	}
	return &Polygon{vmap: vmap}, nil
}

func (p *Polygon) NumVertices() int {
	return p.vmap.Len()
}

// Vertex returns a read-only copy of the vertex with the given id.
func (p *Polygon) Vertex(id VertexID) (Vertex, error) {
	return p.vmap.Get(id)
}

// Vertices returns the polygon's vertices in creation order.
func (p *Polygon) Vertices() []Vertex {
	return p.vmap.Values()
}

// Points returns the boundary coordinates in cycle order starting from the
// anchor. This is the reprojection seam renderers and serializers consume.
func (p *Polygon) Points() []Point {
	points := make([]Point, 0, p.vmap.Len())
	for _, e := range p.Edges() {
		points = append(points, p.vmap.mustGet(e.Src).Coords)
	}
	return points
}

// Edge is one directed boundary edge.
type Edge struct {
	Src, Dst VertexID
}

// Edges walks the boundary cycle once around from the anchor.
func (p *Polygon) Edges() []Edge {
	anchor := p.vmap.Anchor()
	edges := make([]Edge, 0, p.vmap.Len())
	current := anchor
	for {
		edges = append(edges, Edge{Src: current.ID, Dst: current.Next})
		current = p.vmap.mustGet(current.Next)
		if current.ID == anchor.ID {
			break
		}
	}
	return edges
}

// DoubleArea returns twice the signed area of the polygon, as the sum of
// the signed double areas of the fan triangles (anchor, v, v.Next). The fan
// is valid for any simple polygon no matter where the anchor sits, because
// the pieces outside the polygon cancel over the full boundary. Positive
// means counterclockwise winding.
func (p *Polygon) DoubleArea() float64 {
	anchor := p.vmap.Anchor()
	var area float64
	for _, v := range p.vmap.Values() {
		next := p.vmap.mustGet(v.Next)
		area += (Triangle{anchor.Coords, v.Coords, next.Coords}).DoubleArea()
	}
	return area
}

func (p *Polygon) IsCCW() bool {
	return p.DoubleArea() > 0
}

func (p *Polygon) lineSegment(id1, id2 VertexID) LineSegment {
	return LineSegment{p.vmap.mustGet(id1).Coords, p.vmap.mustGet(id2).Coords}
}

// InCone reports whether b lies inside the open cone at a spanned by a's
// two boundary neighbors. The test branches on whether a is convex or
// reflex, decided by which side of the edge a→a.Next the predecessor falls
// on.
func (p *Polygon) InCone(a, b Vertex) bool {
	ab := LineSegment{a.Coords, b.Coords}
	ba := ab.Reverse()
	a0 := p.vmap.mustGet(a.Prev)
	a1 := p.vmap.mustGet(a.Next)

	if a0.Coords.LeftOn(LineSegment{a.Coords, a1.Coords}) {
		return a0.Coords.Left(ab) && a1.Coords.Left(ba)
	}
	// Otherwise a is reflex
	return !(a1.Coords.LeftOn(ab) && a0.Coords.LeftOn(ba))
}

// Diagonal reports whether the segment between a and b is a proper internal
// diagonal: inside the cones at both endpoints, and not cut by any boundary
// edge that doesn't share an endpoint with it.
func (p *Polygon) Diagonal(a, b Vertex) bool {
	return p.InCone(a, b) && p.InCone(b, a) && p.diagonalNonIntersecting(a, b)
}

func (p *Polygon) diagonalNonIntersecting(a, b Vertex) bool {
	ab := LineSegment{a.Coords, b.Coords}
	for _, e := range p.Edges() {
		edge := p.lineSegment(e.Src, e.Dst)
		if !edge.ConnectedTo(ab) && edge.Intersects(ab) {
			return false
		}
	}
	return true
}

// ContainsPointByEvenOdd is crossing-count point-in-polygon. Points on the
// boundary are not reliably classified; this exists for validating
// triangulations and for consumers that only care about clearly interior
// points.
func (p *Polygon) ContainsPointByEvenOdd(pt Point) bool {
	return p.crossingCount(pt)%2 == 1
}

// Crossing count helper for the even odd rule. Counts boundary edges
// crossed by the rightward ray from pt.
func (p *Polygon) crossingCount(pt Point) int {
	count := 0
	for _, e := range p.Edges() {
		seg := p.lineSegment(e.Src, e.Dst)
		a, b := seg.A, seg.B
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		// Where the edge meets the horizontal through pt
		x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > pt.X {
			count++
		}
	}
	return count
}

// BoundingBox is the axis-aligned extent of a polygon.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (bb BoundingBox) Center() Point {
	return Point{
		X: 0.5*(bb.MaxX-bb.MinX) + bb.MinX,
		Y: 0.5*(bb.MaxY-bb.MinY) + bb.MinY,
	}
}

func (p *Polygon) BoundingBox() BoundingBox {
	bb := BoundingBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, v := range p.vmap.Values() {
		bb.MinX = math.Min(bb.MinX, v.Coords.X)
		bb.MaxX = math.Max(bb.MaxX, v.Coords.X)
		bb.MinY = math.Min(bb.MinY, v.Coords.Y)
		bb.MaxY = math.Max(bb.MaxY, v.Coords.Y)
	}
	return bb
}
