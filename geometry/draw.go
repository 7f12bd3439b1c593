package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering. These draw to a temp PNG and cat it to the terminal
// (iTerm only). Useful when staring at a misbehaving fixture.

const dbgDrawPadding = 20

func dbgContext(bb BoundingBox, scale float64) *gg.Context {
	width := int(scale*(bb.MaxX-bb.MinX)) + dbgDrawPadding*2
	height := int(scale*(bb.MaxY-bb.MinY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bb.MinX, -bb.MinY)
	return c
}

func dbgShow(c *gg.Context, path string) {
	c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
}

func tracePath(c *gg.Context, points []Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func (p *Polygon) DbgDraw(scale float64) {
	c := dbgContext(p.BoundingBox(), scale)
	tracePath(c, p.Points())
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()
	dbgShow(c, "/tmp/polygon.png")
}

func (tr *Triangulation) DbgDraw(scale float64) {
	triangles := tr.ToTriangles()
	bb := BoundingBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, t := range triangles {
		for _, p := range []Point{t.A, t.B, t.C} {
			bb.MinX = math.Min(bb.MinX, p.X)
			bb.MaxX = math.Max(bb.MaxX, p.X)
			bb.MinY = math.Min(bb.MinY, p.Y)
			bb.MaxY = math.Max(bb.MaxY, p.Y)
		}
	}

	c := dbgContext(bb, scale)
	c.SetLineWidth(1)
	for i, t := range triangles {
		tracePath(c, []Point{t.A, t.B, t.C})
		// Walk the hue so adjacent triangles are distinguishable
		hue := float64(i) / float64(len(triangles))
		c.SetRGB(0.2+0.8*hue, 0.5, 1-0.8*hue)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	dbgShow(c, "/tmp/triangulation.png")
}

// DbgDrawHull draws the polygon with its hull overlaid.
func DbgDrawHull(p *Polygon, hull []VertexID, scale float64) {
	c := dbgContext(p.BoundingBox(), scale)
	tracePath(c, p.Points())
	c.SetRGB(0, 0.5, 0)
	c.Fill()

	points := make([]Point, 0, len(hull))
	for _, id := range hull {
		v, err := p.Vertex(id)
		if err != nil {
			fatalf("hull contains foreign vertex id %d", id)
		}
		points = append(points, v.Coords)
	}
	tracePath(c, points)
	c.SetRGB(1, 0, 1)
	c.SetLineWidth(2)
	c.Stroke()
	dbgShow(c, "/tmp/hull.png")
}
