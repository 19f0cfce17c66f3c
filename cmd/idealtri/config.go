package main

import (
	"math"
	"os"

	"github.com/osuushi/poincare"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings shared by every triangle in a run. Any of them can come from a YAML
// file; flags override the file.
type Settings struct {
	Radius     float64         `yaml:"radius"`
	Samples    int             `yaml:"samples"`
	Grid       int             `yaml:"grid"`
	Tolerances poincare.Config `yaml:"tolerances"`
}

func DefaultSettings() Settings {
	return Settings{
		Radius:     2.5,
		Samples:    200,
		Grid:       0,
		Tolerances: poincare.DefaultConfig(),
	}
}

// LoadSettings reads settings from a YAML file. Keys missing from the file keep
// their defaults. An empty path gives the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, errors.Wrapf(err, "reading %s", path)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, "parsing %s", path)
	}
	return settings, nil
}

func (s Settings) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return errors.Wrapf(poincare.ErrInvalidRadius, "radius %g", s.Radius)
	}
	if s.Samples < 2 {
		return errors.Wrapf(poincare.ErrInvalidSampleCount, "samples %d", s.Samples)
	}
	if s.Grid < 0 {
		return errors.Errorf("grid must not be negative, got %d", s.Grid)
	}
	t := s.Tolerances
	if t.AntipodalTolerance < 0 || t.DegenerateTolerance < 0 || t.BoundaryTolerance < 0 {
		return errors.Errorf("tolerances must not be negative: %+v", t)
	}
	if !(t.CoincidentTolerance > 0) {
		return errors.Errorf("coincident tolerance must be positive, got %g", t.CoincidentTolerance)
	}
	return nil
}
