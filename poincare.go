// Ideal triangles on the Poincaré disk.
//
// This package traces hyperbolic geodesics between points on the boundary of
// the Poincaré disk, and assembles them into ideal triangles: triangles whose
// three vertices sit on the circle at infinity. The output is plain polylines,
// ready for any vector renderer to stroke or fill.
package poincare

import (
	"github.com/osuushi/poincare/internal"
)

type Point = internal.Point
type Path = internal.Path
type PathKind = internal.PathKind
type OrthogonalCircle = internal.OrthogonalCircle
type IdealTriangle = internal.IdealTriangle
type TriangleList = internal.TriangleList
type Config = internal.Config

const (
	OrthogonalArc      = internal.OrthogonalArc
	Diameter           = internal.Diameter
	DegenerateDiameter = internal.DegenerateDiameter
)

var (
	ErrDegenerateInput      = internal.ErrDegenerateInput
	ErrInvalidBoundaryPoint = internal.ErrInvalidBoundaryPoint
	ErrInvalidSampleCount   = internal.ErrInvalidSampleCount
	ErrInvalidRadius        = internal.ErrInvalidRadius
)

// DefaultConfig gives the standard tolerances, with boundary validation on.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// BoundaryPoint gives the point at angle theta on the circle of the given
// radius.
func BoundaryPoint(theta, radius float64) Point {
	return internal.BoundaryPoint(theta, radius)
}

// Compute the geodesic from p1 to p2, two points on the unit circle, as
// numPoints samples. The first sample is p1 and the last is p2.
//
// Errors match ErrDegenerateInput, ErrInvalidBoundaryPoint or
// ErrInvalidSampleCount under errors.Cause.
func GeodesicArc(p1, p2 Point, numPoints int, cfg Config) (result Path, err error) {
	defer func() {
		recoveredErr := internal.HandlePoincarePanicRecover(recover())
		if recoveredErr != nil {
			result = Path{}
			err = recoveredErr
		}
	}()
	return internal.GeodesicArc(p1, p2, numPoints, cfg), nil
}

// Build the ideal triangle with vertices at the given angles on a disk of the
// given radius. The outline has 3*(numPointsPerSide-1)+1 points, with the first
// point repeated at the end.
func NewIdealTriangle(angles [3]float64, radius float64, numPointsPerSide int, cfg Config) (result *IdealTriangle, err error) {
	defer func() {
		recoveredErr := internal.HandlePoincarePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NewIdealTriangle(angles, radius, numPointsPerSide, cfg), nil
}

// Build many triangles on one disk. Failed triangles are nil in the result and
// each has an entry in errs; the others are unaffected.
func BuildTriangles(list TriangleList, radius float64, numPointsPerSide int, cfg Config) (triangles []*IdealTriangle, errs []error) {
	return list.Build(radius, numPointsPerSide, cfg)
}

// n evenly spaced diameters of the disk, for drawing a reference grid.
func DiameterGrid(n int, radius float64, numPoints int, cfg Config) (result []Path, err error) {
	defer func() {
		recoveredErr := internal.HandlePoincarePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.DiameterGrid(n, radius, numPoints, cfg), nil
}
