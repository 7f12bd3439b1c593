package geometry

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *VertexStack) Push(v Vertex) {
	*s = append(*s, v)
}

func (s *VertexStack) Pop() Vertex {
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VertexStack) Peek() Vertex {
	return (*s)[len(*s)-1]
}

// PeekUnder returns the element just beneath the top of the stack. The
// Graham scan turns on the top two elements, so this saves a pop/push pair.
func (s *VertexStack) PeekUnder() Vertex {
	return (*s)[len(*s)-2]
}

func (s *VertexStack) Len() int {
	return len(*s)
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}

func (set VertexSet) Add(id VertexID) {
	set[id] = struct{}{}
}

func (set VertexSet) Contains(id VertexID) bool {
	_, ok := set[id]
	return ok
}

func (set VertexSet) Equals(other VertexSet) bool {
	if len(set) != len(other) {
		return false
	}
	for id := range set {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
