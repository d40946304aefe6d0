// pkg/geometry/polygon.go
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// MinSides is the smallest side count that still describes a polygon.
const MinSides = 3

// ErrInsufficientSides is returned when a polygon is requested with fewer than MinSides sides.
var ErrInsufficientSides = errors.New("insufficient sides for a polygon")

// Point is a real-valued 2D coordinate.
type Point = geom.Coord

// Polygon describes a regular polygon by its side count, side length,
// rotation of the first vertex and center.
type Polygon struct {
	Sides      int
	SideLength float64
	Offset     float64 // radians
	Center     Point
}

// Vertices returns the vertex list of the polygon described by p.
func (p Polygon) Vertices() ([]Point, error) {
	return Generate(p.Sides, p.SideLength, p.Offset, p.Center)
}

// Circumradius returns the distance from the center of a regular polygon
// to each of its vertices.
func Circumradius(sides int, sideLength float64) (float64, error) {
	if sides < MinSides {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientSides, sides)
	}
	halfInterior := (math.Pi - 2*math.Pi/float64(sides)) / 2
	return sideLength / (2 * math.Cos(halfInterior)), nil
}

// Generate computes the vertices of a regular polygon centered at center.
// The first vertex sits at angle offset and the rest follow in increasing
// angular order, 2π/sides apart, so consecutive points form the edges and
// the last point closes back to the first.
func Generate(sides int, sideLength, offset float64, center Point) ([]Point, error) {
	radius, err := Circumradius(sides, sideLength)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, sides)
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		phi := step*float64(i) + offset
		unit := Point{X: math.Cos(phi), Y: math.Sin(phi)}
		points = append(points, center.Plus(unit.Times(radius)))
	}
	return points, nil
}
