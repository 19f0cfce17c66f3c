package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tolerance for comparing computed geometry in tests
const Epsilon = 1e-9

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestLinspace(t *testing.T) {
	values := linspace(-1, 1, 5)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, values)

	values = linspace(0, 2*math.Pi, 7)
	assert.Len(t, values, 7)
	assert.Equal(t, 0.0, values[0])
	assert.Equal(t, 2*math.Pi, values[6])
	for i := 1; i < len(values); i++ {
		assert.InDelta(t, math.Pi/3, values[i]-values[i-1], Epsilon)
	}
}

func TestBoundaryPoint(t *testing.T) {
	// Angles are not normalized, so whole turns land on the same point
	for _, theta := range []float64{-math.Pi / 3, 0, 1, math.Pi, 7 * math.Pi} {
		p := BoundaryPoint(theta, 2.5)
		assert.InDelta(t, 2.5, p.Norm(), Epsilon)
		q := BoundaryPoint(theta+4*math.Pi, 2.5)
		assert.InDelta(t, p.X, q.X, Epsilon)
		assert.InDelta(t, p.Y, q.Y, Epsilon)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1e-6, cfg.AntipodalTolerance)
	assert.Equal(t, 1e-10, cfg.DegenerateTolerance)
	assert.Equal(t, 1e-6, cfg.BoundaryTolerance)
	assert.Equal(t, 1e-6, cfg.CoincidentTolerance)
	assert.True(t, cfg.ValidateBoundary)

	cfg.CoincidentTolerance = 0
	assert.Equal(t, DefaultCoincidentTolerance, cfg.coincidentTolerance())
	cfg.CoincidentTolerance = 1e-3
	assert.Equal(t, 1e-3, cfg.coincidentTolerance())
}
