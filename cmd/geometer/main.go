package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/geometer/geometry"
)

// Demo of the geometry kernel. Input on stdin should be newline separated
// points in the form "x y", one polygon per run. The polygon should be
// simple; either winding order is fine. Nothing is validated beyond the
// vertex count.
var (
	op = kingpin.Flag("op", "Operation to run.").
		Default("triangulate").Enum("triangulate", "hull")
	algorithm = kingpin.Flag("algorithm", "Convex hull algorithm (for --op=hull).").
			Default("graham_scan").Enum(hullNames()...)
	draw = kingpin.Flag("draw", "Render the result as a PNG and print it to the terminal (iTerm only).").
		Bool()
	scale = kingpin.Flag("scale", "Scale factor for --draw.").
		Default("10").Float64()
	verbose = kingpin.Flag("verbose", "Dump the full result structures.").
		Short('v').Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	polygon, err := geometry.NewPolygon(points)
	kingpin.FatalIfError(err, "invalid polygon")

	if *verbose {
		fmt.Println(polygon.DbgString())
	}

	switch *op {
	case "triangulate":
		runTriangulate(polygon)
	case "hull":
		runHull(polygon)
	}
}

func runTriangulate(polygon *geometry.Polygon) {
	triangulation, err := polygon.Triangulate()
	kingpin.FatalIfError(err, "triangulation failed")

	fmt.Printf("%d triangles, double area %v\n", triangulation.Len(), triangulation.DoubleArea())
	if *verbose {
		fmt.Println(triangulation.DbgString())
		pretty.Println(triangulation.ToTriangles())
	}
	if *draw {
		triangulation.DbgDraw(*scale)
	}
}

func runHull(polygon *geometry.Polygon) {
	alg := hullByName(*algorithm)
	hull, err := alg.ConvexHull(polygon)
	kingpin.FatalIfError(err, "hull computation failed")

	fmt.Printf("%d hull vertices (%s)\n", len(hull), alg.Name())
	if *verbose {
		pretty.Println(hull)
	}
	if *draw {
		geometry.DbgDrawHull(polygon, hull, *scale)
	}
}

func hullNames() []string {
	var names []string
	for _, alg := range geometry.HullAlgorithms() {
		names = append(names, alg.Name())
	}
	return names
}

func hullByName(name string) geometry.HullAlgorithm {
	for _, alg := range geometry.HullAlgorithms() {
		if alg.Name() == name {
			return alg
		}
	}
	// kingpin already validated the enum
	panic("unknown hull algorithm " + name)
}

func readPoints(in *os.File) []geometry.Point {
	var points []geometry.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		kingpin.FatalIfError(err, "invalid x value %q", parts[0])
		y, err := strconv.ParseFloat(parts[1], 64)
		kingpin.FatalIfError(err, "invalid y value %q", parts[1])
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points
}
