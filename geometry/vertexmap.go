package geometry

import "fmt"

// DegenerateInputError means a polygon was built from fewer than 3 points.
type DegenerateInputError struct {
	NumPoints int
}

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("a polygon needs at least 3 points, got %d", e.NumPoints)
}

// ForeignIDError means a VertexID was used with a map it doesn't belong to,
// either because it came from a different map or because its vertex has
// already been removed.
type ForeignIDError struct {
	ID VertexID
}

func (e ForeignIDError) Error() string {
	return fmt.Sprintf("vertex id %d does not belong to this vertex map", e.ID)
}

// VertexMap owns the vertices of one polygon and maintains the circular
// doubly-linked boundary cycle: for every vertex v it holds,
// Get(v.Next).Prev == v.ID and Get(v.Prev).Next == v.ID, and the whole map
// is exactly one cycle. Vertices are created only by NewVertexMap and
// destroyed only by Remove.
//
// Ids come from a counter scoped to the map, so construction is
// deterministic: the i'th input point always gets id i.
type VertexMap struct {
	vertices map[VertexID]*Vertex
	// Live ids in creation order. Go randomizes map iteration, and the
	// triangulation tie-break ("clip the first ear found") has to be
	// deterministic.
	order []VertexID
}

// NewVertexMap wires the given points into a boundary cycle in input order,
// wrapping the last point back to the first.
func NewVertexMap(points []Point) (*VertexMap, error) {
	if len(points) < 3 {
		return nil, DegenerateInputError{NumPoints: len(points)}
	}
	n := len(points)
	vm := &VertexMap{
		vertices: make(map[VertexID]*Vertex, n),
		order:    make([]VertexID, 0, n),
	}
	for i, point := range points {
		id := VertexID(i)
		vm.vertices[id] = &Vertex{
			ID:     id,
			Coords: point,
			Prev:   VertexID(CircularIndex(i-1, n)),
			Next:   VertexID(CircularIndex(i+1, n)),
		}
		vm.order = append(vm.order, id)
	}
	return vm, nil
}

func (vm *VertexMap) Len() int {
	return len(vm.vertices)
}

// Get returns a read-only copy of the vertex with the given id.
func (vm *VertexMap) Get(id VertexID) (Vertex, error) {
	v, ok := vm.vertices[id]
	if !ok {
		return Vertex{}, ForeignIDError{ID: id}
	}
	return *v, nil
}

// mustGet is for internal lookups of ids the map itself handed out; a miss
// is an invariant violation, not a caller mistake.
func (vm *VertexMap) mustGet(id VertexID) Vertex {
	v, ok := vm.vertices[id]
	if !ok {
		fatalf("vertex id %d does not belong to this vertex map", id)
	}
	return *v
}

// Remove unlinks the vertex from the cycle, bridging its neighbors
// together, and destroys it. The caller must ensure more than 3 vertices
// remain; a boundary cycle cannot drop below 3.
func (vm *VertexMap) Remove(id VertexID) (Vertex, error) {
	v, ok := vm.vertices[id]
	if !ok {
		return Vertex{}, ForeignIDError{ID: id}
	}
	removed := *v
	vm.vertices[removed.Prev].Next = removed.Next
	vm.vertices[removed.Next].Prev = removed.Prev
	delete(vm.vertices, id)
	for i, ordered := range vm.order {
		if ordered == id {
			vm.order = append(vm.order[:i], vm.order[i+1:]...)
			break
		}
	}
	return removed, nil
}

// Values returns the live vertices in creation order.
func (vm *VertexMap) Values() []Vertex {
	values := make([]Vertex, 0, len(vm.order))
	for _, id := range vm.order {
		values = append(values, *vm.vertices[id])
	}
	return values
}

// Anchor is an arbitrary but fixed vertex used to start boundary walks.
func (vm *VertexMap) Anchor() Vertex {
	return *vm.vertices[vm.order[0]]
}

// Clone returns an independent copy of the map. Ids are preserved, so ids
// recorded against the original resolve to the same coordinates in the
// clone.
func (vm *VertexMap) Clone() *VertexMap {
	clone := &VertexMap{
		vertices: make(map[VertexID]*Vertex, len(vm.vertices)),
		order:    append([]VertexID(nil), vm.order...),
	}
	for id, v := range vm.vertices {
		copied := *v
		clone.vertices[id] = &copied
	}
	return clone
}

// Reverse flips the winding of the cycle in place by swapping every
// vertex's links.
func (vm *VertexMap) Reverse() {
	for _, v := range vm.vertices {
		v.Prev, v.Next = v.Next, v.Prev
	}
}
