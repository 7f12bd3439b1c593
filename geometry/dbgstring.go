package geometry

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/geometer/dbg"
)

// DbgString renders the boundary cycle with readable vertex names, coloring
// convex corners green, reflex corners red, and flat (collinear) corners
// cyan. Reflex corners are the ones that make ear clipping interesting, so
// this is usually the first thing to look at when a polygon misbehaves.
func (p *Polygon) DbgString() string {
	ccw := p.IsCCW()
	var parts []string
	for _, e := range p.Edges() {
		v := p.vmap.mustGet(e.Src)
		prev := p.vmap.mustGet(v.Prev)
		next := p.vmap.mustGet(v.Next)
		sign := (Triangle{prev.Coords, v.Coords, next.Coords}).AreaSign()

		name := dbg.Name(v.ID)
		switch {
		case sign == 0:
			name = aurora.Cyan(name).String()
		case (sign > 0) == ccw:
			name = aurora.Green(name).String()
		default:
			name = aurora.Red(name).String()
		}
		parts = append(parts, fmt.Sprintf("%s(%v, %v)", name, v.Coords.X, v.Coords.Y))
	}
	return strings.Join(parts, " → ")
}

// DbgString names each triangle's corners.
func (tr *Triangulation) DbgString() string {
	var parts []string
	for _, ids := range tr.order {
		parts = append(parts, fmt.Sprintf("(%s %s %s)",
			dbg.Name(ids[0]), dbg.Name(ids[1]), dbg.Name(ids[2])))
	}
	return strings.Join(parts, ", ")
}
