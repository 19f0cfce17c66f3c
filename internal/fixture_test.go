package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into triangle definitions. This is not
// a full (or even correct) svg parser. It finds the first polygon in the file,
// which must have exactly three points, all on one circle centered at the
// origin. The points are the ideal vertices; the circle is the disk boundary.
// If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type fixtureTriangle struct {
	Angles   [3]float64
	Radius   float64
	Vertices [3]Point
}

func LoadFixture(name string) fixtureTriangle {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	if len(pointStrings) != 3 {
		log.Fatalf("Fixture %q has %d points, expected 3", name, len(pointStrings))
	}

	var result fixtureTriangle
	for i, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		result.Vertices[i] = Point{X: x, Y: y}
		result.Angles[i] = math.Atan2(y, x)
	}

	result.Radius = result.Vertices[0].Norm()
	for _, v := range result.Vertices[1:] {
		if !Equal(v.Norm(), result.Radius, 1e-6) {
			log.Fatalf("Fixture %q has vertices on different circles", name)
		}
	}
	return result
}
