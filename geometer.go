// A 2D computational geometry kernel for Go.
//
// This package provides exact orientation predicates over float64
// coordinates, ear clipping triangulation of simple polygons, and a family
// of five convex hull algorithms that can be cross-checked against each
// other. Build a Polygon from an ordered point sequence, then ask it for a
// triangulation or a hull; or use the convenience functions here to go
// straight from points to coordinates.
package geometer

import "github.com/osuushi/geometer/geometry"

type Point = geometry.Point
type Triangle = geometry.Triangle
type Polygon = geometry.Polygon
type VertexID = geometry.VertexID
type HullAlgorithm = geometry.HullAlgorithm

// Triangulate a simple polygon given as an ordered point sequence, in
// either winding order. Returns the triangles as coordinate triples, ready
// for rendering.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := geometry.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	polygon, err := geometry.NewPolygon(points)
	if err != nil {
		return nil, err
	}
	triangulation, err := polygon.Triangulate()
	if err != nil {
		return nil, err
	}
	return triangulation.ToTriangles(), nil
}

// ConvexHull of an ordered point sequence, computed with the Graham scan.
// Returns the hull corners in counterclockwise order. Collinear input
// collapses to the two extreme points.
func ConvexHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := geometry.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	polygon, err := geometry.NewPolygon(points)
	if err != nil {
		return nil, err
	}
	hull, err := geometry.GrahamScan{}.ConvexHull(polygon)
	if err != nil {
		return nil, err
	}
	result = make([]Point, 0, len(hull))
	for _, id := range hull {
		v, vertexErr := polygon.Vertex(id)
		if vertexErr != nil {
			return nil, vertexErr
		}
		result = append(result, v.Coords)
	}
	return result, nil
}
