package internal

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
)

type Point = r2.Point

// What kind of curve a Path traces.
type PathKind int

const (
	// An arc of a circle orthogonal to the boundary.
	OrthogonalArc PathKind = iota
	// A diameter between antipodal boundary points.
	Diameter
	// A diameter used because the orthogonal circle could not be constructed
	// reliably. This happens for nearly antipodal points.
	DegenerateDiameter
)

func (k PathKind) String() string {
	switch k {
	case OrthogonalArc:
		return "arc"
	case Diameter:
		return "diameter"
	case DegenerateDiameter:
		return "degenerate diameter"
	default:
		return "unknown"
	}
}

// A circle which meets the unit circle at right angles. Its center is always
// outside the unit disk, and Radius² = |Center|² - 1.
type OrthogonalCircle struct {
	Center Point
	Radius float64
}

func (c OrthogonalCircle) PointAt(angle float64) Point {
	return c.Center.Add(BoundaryPoint(angle, c.Radius))
}

// A sampled geodesic. The first point is at the requested start and the last
// at the requested end. Paths are never modified after construction.
type Path struct {
	Points []Point
	Kind   PathKind
	// Only meaningful when Kind is OrthogonalArc.
	Circle OrthogonalCircle
}

func (p Path) Start() Point {
	return p.Points[0]
}

func (p Path) End() Point {
	return p.Points[len(p.Points)-1]
}

func (p Path) Reverse() Path {
	newPath := Path{Kind: p.Kind, Circle: p.Circle}
	newPath.Points = make([]Point, len(p.Points))
	for i, point := range p.Points {
		newPath.Points[len(p.Points)-1-i] = point
	}
	return newPath
}

// Scale the path about the origin, e.g. to move it from the unit disk onto a
// disk of another radius.
func (p Path) Scale(factor float64) Path {
	newPath := Path{
		Kind: p.Kind,
		Circle: OrthogonalCircle{
			Center: p.Circle.Center.Mul(factor),
			Radius: p.Circle.Radius * factor,
		},
	}
	newPath.Points = make([]Point, len(p.Points))
	for i, point := range p.Points {
		newPath.Points[i] = point.Mul(factor)
	}
	return newPath
}

func (p Path) Points3D() []mgl64.Vec3 {
	return to3D(p.Points)
}

// Renderers that work in 3D want a z coordinate. It is always zero.
func to3D(points []Point) []mgl64.Vec3 {
	result := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		result[i] = mgl64.Vec3{p.X, p.Y, 0}
	}
	return result
}
