package internal

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/osuushi/poincare/internal/dbg"
)

// Facilities for tracing a hyperbolic geodesic between two ideal points, i.e.
// two points on the unit circle. The geodesic is either a diameter, when the
// points are antipodal, or the part of a circle orthogonal to the unit circle
// which lies inside the disk.
//
// The construction is split into three steps which do not share state:
//
// 1. interiorArc decides which of the two spans of the orthogonal circle lies
// inside the disk, and gives it in increasing angle order.
// 2. arc.sample emits points along that span in increasing angle order.
// 3. orientFrom reorders the samples so that they start at the caller's first
// point.
//
// Every step is a function of the inputs alone, so slowly moving inputs give
// slowly moving output.

// GeodesicArc returns numPoints samples along the geodesic from p1 to p2. Both
// points must be on the unit circle and must not coincide.
//
// Panics with a PoincareError on invalid input.
func GeodesicArc(p1, p2 Point, numPoints int, cfg Config) Path {
	validateEndpoints(p1, p2, numPoints, cfg)

	if isAntipodal(p1, p2, cfg.AntipodalTolerance) {
		return diameter(p1, p2, numPoints, Diameter)
	}

	circle, ok := OrthogonalCircleThrough(p1, p2, cfg)
	if !ok {
		dbg.Logf(dbg.Warn, "orthogonal circle through %v and %v is degenerate, falling back to a diameter", p1, p2)
		return diameter(p1, p2, numPoints, DegenerateDiameter)
	}

	span := interiorArc(circle, p1, p2)
	return Path{
		Points: orientFrom(p1, span.sample(numPoints)),
		Kind:   OrthogonalArc,
		Circle: circle,
	}
}

func validateEndpoints(p1, p2 Point, numPoints int, cfg Config) {
	if numPoints < 2 {
		throwf(ErrInvalidSampleCount, "need at least 2 samples per geodesic, got %d", numPoints)
	}

	coincident := cfg.coincidentTolerance()
	for _, p := range []Point{p1, p2} {
		norm := p.Norm()
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			throwf(ErrInvalidBoundaryPoint, "point %v is not finite", p)
		}
		if norm < coincident {
			throwf(ErrDegenerateInput, "point %v is at the origin", p)
		}
		if cfg.ValidateBoundary && !(math.Abs(norm-1) <= cfg.BoundaryTolerance) {
			throwf(ErrInvalidBoundaryPoint, "point %v has norm %g, not 1", p, norm)
		}
	}

	if p1.Sub(p2).Norm() < coincident {
		throwf(ErrDegenerateInput, "endpoints %v and %v coincide", p1, p2)
	}
}

func isAntipodal(p1, p2 Point, tolerance float64) bool {
	return Equal(p1.X, -p2.X, tolerance) && Equal(p1.Y, -p2.Y, tolerance)
}

// Straight line samples from p1 to p2 inclusive.
func diameter(p1, p2 Point, numPoints int, kind PathKind) Path {
	points := make([]Point, numPoints)
	for i, t := range linspace(0, 1, numPoints) {
		points[i] = p1.Mul(1 - t).Add(p2.Mul(t))
	}
	return Path{Points: points, Kind: kind}
}

// OrthogonalCircleThrough finds the circle through p1 and p2 which is
// orthogonal to the unit circle. The second return value is false when the
// construction is numerically degenerate, which happens when p1 and p2 are
// nearly antipodal and the circle approaches a straight line.
//
// The center lies on the perpendicular bisector of the chord, mid + t*perp.
// Orthogonality means |center - p1|² = |center|² - 1. Expanding both sides,
// the t² terms cancel, along with the cross term on the left (d is
// perpendicular to perp), leaving
//
//	t * (2 p1·perp) = d·d - mid·mid + 1
//
// with d = mid - p1.
func OrthogonalCircleThrough(p1, p2 Point, cfg Config) (OrthogonalCircle, bool) {
	mid := p1.Add(p2).Mul(0.5)
	perp := p2.Sub(p1).Ortho().Normalize()
	d := mid.Sub(p1)

	coefficient := 2 * p1.Dot(perp)
	if math.Abs(coefficient) < cfg.DegenerateTolerance {
		return OrthogonalCircle{}, false
	}

	t := (d.Dot(d) - mid.Dot(mid) + 1) / coefficient
	center := mid.Add(perp.Mul(t))
	return OrthogonalCircle{Center: center, Radius: p1.Sub(center).Norm()}, true
}

// A span of an orthogonal circle, from the angle From to the angle To, measured
// around the circle's center. From is never greater than To.
type arc struct {
	circle   OrthogonalCircle
	from, to s1.Angle
}

func angleAround(center, p Point) s1.Angle {
	return s1.Angle(math.Atan2(p.Y-center.Y, p.X-center.X))
}

// Pick the span of the circle between p1 and p2 which lies inside the unit
// disk. The two angles split the circle into the span between them, and the
// complementary span which wraps through ±π. Whichever one has its midpoint
// inside the disk is the geodesic.
func interiorArc(circle OrthogonalCircle, p1, p2 Point) arc {
	a1 := angleAround(circle.Center, p1)
	a2 := angleAround(circle.Center, p2)
	low, high := a1, a2
	if high < low {
		low, high = high, low
	}

	middle := circle.PointAt(((low + high) / 2).Radians())
	if middle.Norm() > 1 {
		return arc{circle: circle, from: high - 2*math.Pi, to: low}
	}
	return arc{circle: circle, from: low, to: high}
}

// Sample the arc at evenly spaced angles, in increasing angle order.
func (a arc) sample(numPoints int) []Point {
	points := make([]Point, numPoints)
	for i, angle := range linspace(a.from.Radians(), a.to.Radians(), numPoints) {
		points[i] = a.circle.PointAt(angle)
	}
	return points
}

// Make the samples run from start. If the last sample is closer to start than
// the first, the result is reversed. The input is never modified.
func orientFrom(start Point, points []Point) []Point {
	result := make([]Point, len(points))
	first, last := points[0], points[len(points)-1]
	if last.Sub(start).Norm() < first.Sub(start).Norm() {
		for i, p := range points {
			result[len(points)-1-i] = p
		}
	} else {
		copy(result, points)
	}
	return result
}
