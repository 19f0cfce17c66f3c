package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/osuushi/poincare/internal/dbg"
	"github.com/pkg/errors"
)

// An ideal triangle on a Poincaré disk of the given radius. Side i runs from
// vertex i to vertex i+1 (mod 3). Points is the closed outline: the three sides
// concatenated with their shared vertices merged, and the first point repeated
// at the end.
type IdealTriangle struct {
	Angles [3]float64
	Radius float64
	Sides  [3]Path
	Points []Point
}

// NewIdealTriangle builds the triangle with ideal vertices at the given angles
// on a disk of the given radius.
//
// Panics with a PoincareError if the radius is not positive, or if any side
// cannot be built. Side errors carry the index of the failed side.
func NewIdealTriangle(angles [3]float64, radius float64, numPointsPerSide int, cfg Config) *IdealTriangle {
	if !(radius > 0) || math.IsInf(radius, 0) {
		throwf(ErrInvalidRadius, "radius must be positive and finite, got %g", radius)
	}

	tri := &IdealTriangle{Angles: angles, Radius: radius}
	for i := range tri.Sides {
		start := BoundaryPoint(angles[i], 1)
		end := BoundaryPoint(angles[CircularIndex(i+1, 3)], 1)

		var side Path
		err := catch(func() {
			side = GeodesicArc(start, end, numPointsPerSide, cfg)
		})
		if err != nil {
			dbg.Logf(dbg.Error, "side %d of triangle %v: %v", i, angles, err)
			panic(errors.Wrapf(err, "side %d", i))
		}
		tri.Sides[i] = side.Scale(radius)
	}

	// The last point of each side is the first point of the next, so drop it.
	// The final side's last point is the very first point, which closes the loop.
	tri.Points = make([]Point, 0, 3*(numPointsPerSide-1)+1)
	for _, side := range tri.Sides {
		tri.Points = append(tri.Points, side.Points[:len(side.Points)-1]...)
	}
	tri.Points = append(tri.Points, tri.Points[0])
	return tri
}

// Vertices gives the three ideal vertices on the disk boundary.
func (tri *IdealTriangle) Vertices() [3]Point {
	var vertices [3]Point
	for i, angle := range tri.Angles {
		vertices[i] = BoundaryPoint(angle, tri.Radius)
	}
	return vertices
}

func (tri *IdealTriangle) Points3D() []mgl64.Vec3 {
	return to3D(tri.Points)
}

// SamplesPerSide is the sample count each side was built with.
func (tri *IdealTriangle) SamplesPerSide() int {
	return len(tri.Sides[0].Points)
}

// Rotate rebuilds the triangle with every vertex moved theta radians around the
// disk. Used to redraw a rotating triangle once per frame.
func (tri *IdealTriangle) Rotate(theta float64, cfg Config) *IdealTriangle {
	var angles [3]float64
	for i, angle := range tri.Angles {
		angles[i] = angle + theta
	}
	return NewIdealTriangle(angles, tri.Radius, tri.SamplesPerSide(), cfg)
}

// A batch of angle triples sharing a disk.
type TriangleList [][3]float64

// Build every triangle in the list. A triangle that fails does not stop the
// rest; its slot in the result is nil and its error is reported in errs, in
// list order.
func (list TriangleList) Build(radius float64, numPointsPerSide int, cfg Config) (triangles []*IdealTriangle, errs []error) {
	triangles = make([]*IdealTriangle, len(list))
	for i, angles := range list {
		angles := angles
		err := catch(func() {
			triangles[i] = NewIdealTriangle(angles, radius, numPointsPerSide, cfg)
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "triangle %d", i))
		}
	}
	return triangles, errs
}

// DiameterGrid gives n diameters of a disk of the given radius, evenly spaced
// in angle starting from the x axis.
func DiameterGrid(n int, radius float64, numPoints int, cfg Config) []Path {
	if !(radius > 0) || math.IsInf(radius, 0) {
		throwf(ErrInvalidRadius, "radius must be positive and finite, got %g", radius)
	}
	if n <= 0 {
		return nil
	}
	grid := make([]Path, n)
	for i := range grid {
		angle := float64(i) * math.Pi / float64(n)
		start := BoundaryPoint(angle, 1)
		grid[i] = GeodesicArc(start, start.Mul(-1), numPoints, cfg).Scale(radius)
	}
	return grid
}
