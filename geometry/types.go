package geometry

// A VertexID identifies one vertex within a single VertexMap. Ids are
// assigned by the map at construction time, so ids from different maps
// overlap and must never be mixed.
type VertexID int

type Point struct {
	X float64
	Y float64
}

// Note that everything in this package holds points by value. A point is
// never modified once a vertex map owns it; some callers rely on exact
// coordinate equality, and we cannot tolerate loss of precision.
type LineSegment struct {
	A Point
	B Point
}

type Triangle struct {
	A, B, C Point
}

// A Vertex is a point on a polygon boundary together with its links in the
// boundary cycle. Prev and Next are maintained by the owning VertexMap and
// nothing else may rewire them.
type Vertex struct {
	ID     VertexID
	Coords Point
	Prev   VertexID
	Next   VertexID
}

type VertexStack []Vertex

type VertexSet map[VertexID]struct{}
