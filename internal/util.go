package internal

import (
	"math"

	"github.com/golang/geo/r2"
)

// Default tolerances. All of them are measured on the unit disk, so callers
// working at other radii should rescale their points before calling in.
const (
	// Two boundary points whose coordinates sum to within this distance of zero
	// are treated as antipodal, and the geodesic between them is a diameter.
	DefaultAntipodalTolerance = 1e-6

	// When the linear coefficient for the orthogonal circle center drops below
	// this, the center runs off toward infinity and the arc flattens into a
	// diameter anyway.
	DefaultDegenerateTolerance = 1e-10

	// How far off the unit circle an input point may lie before it is rejected.
	DefaultBoundaryTolerance = 1e-6

	// Endpoints closer than this are the same ideal point, and a point this close
	// to the origin has no direction.
	DefaultCoincidentTolerance = 1e-6
)

// Config holds the numeric tolerances used by the geodesic construction.
type Config struct {
	AntipodalTolerance  float64 `yaml:"antipodal_tolerance"`
	DegenerateTolerance float64 `yaml:"degenerate_tolerance"`
	BoundaryTolerance   float64 `yaml:"boundary_tolerance"`
	// Non-positive values fall back to DefaultCoincidentTolerance, so coincident
	// endpoints are always rejected.
	CoincidentTolerance float64 `yaml:"coincident_tolerance"`

	// Reject points that are not on the unit circle. With this off, such points
	// produce arbitrary (but finite) geometry.
	ValidateBoundary bool `yaml:"validate_boundary"`
}

func DefaultConfig() Config {
	return Config{
		AntipodalTolerance:  DefaultAntipodalTolerance,
		DegenerateTolerance: DefaultDegenerateTolerance,
		BoundaryTolerance:   DefaultBoundaryTolerance,
		CoincidentTolerance: DefaultCoincidentTolerance,
		ValidateBoundary:    true,
	}
}

func (cfg Config) coincidentTolerance() float64 {
	if cfg.CoincidentTolerance > 0 {
		return cfg.CoincidentTolerance
	}
	return DefaultCoincidentTolerance
}

// Equal compares two floats within the given tolerance.
func Equal(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// BoundaryPoint gives the point at angle theta on the circle of the given
// radius. Theta is used as is, with no normalization.
func BoundaryPoint(theta, radius float64) Point {
	return r2.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}

// Evenly spaced values from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	result := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range result {
		result[i] = a + step*float64(i)
	}
	// Avoid accumulated drift on the far end
	result[n-1] = b
	return result
}
