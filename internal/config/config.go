// Package config holds the observable constants of the evacuation
// model as an overridable, validated configuration
// struct instead of scattered literals. Default() reproduces the
// spec's constants exactly; LoadFile lets a deployment retune the
// flow-velocity coefficients without touching code.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// PathKind distinguishes the four flow-velocity coefficient sets of
// the flow-velocity law.
type PathKind string

const (
	PathRoom      PathKind = "room"
	PathTransit   PathKind = "transit"
	PathStairDown PathKind = "stair_down"
	PathStairUp   PathKind = "stair_up"
)

// VelocityParams is the (v0, a, d0) triple for one PathKind.
type VelocityParams struct {
	V0 float64 `yaml:"v0" validate:"gt=0"`
	A  float64 `yaml:"a" validate:"gt=0"`
	D0 float64 `yaml:"d0" validate:"gt=0"`
}

// Config is the full set of tunable simulation constants.
type Config struct {
	MinWidth        float64 `yaml:"min_width" validate:"gt=0"`
	MinDensity      float64 `yaml:"min_density" validate:"gt=0"`
	MaxDensity      float64 `yaml:"max_density" validate:"gtfield=MinDensity"`
	ModellingStep   float64 `yaml:"modelling_step" validate:"gt=0"`
	ProjectionArea  float64 `yaml:"projection_area" validate:"gt=0"`
	NDigits         int     `yaml:"n_digits" validate:"gt=0"`
	EmptyTolerance  float64 `yaml:"empty_tolerance" validate:"gt=0"`
	MaxTicks        int     `yaml:"max_ticks" validate:"gt=0"`
	SafetyZoneID    string  `yaml:"safety_zone_id" validate:"required,uuid"`
	SafetyZoneSide  float64 `yaml:"safety_zone_side" validate:"gt=0"`

	Velocity map[PathKind]VelocityParams `yaml:"velocity" validate:"required,dive"`
}

// D09 is the density ceiling (persons/m²) above which speed_in_room
// clamps its input, derived from ProjectionArea as
// defines: D09 = 0.9 / projection_area.
func (c Config) D09() float64 {
	return 0.9 / c.ProjectionArea
}

// Default reproduces the model's reference constants exactly.
func Default() Config {
	return Config{
		MinWidth:       0.5,
		MinDensity:     0.1,
		MaxDensity:     5.0,
		ModellingStep:  0.008,
		ProjectionArea: 0.1,
		NDigits:        15,
		EmptyTolerance: 1e-2,
		MaxTicks:       10000,
		SafetyZoneID:   "e6315dac-ad4b-11ed-9732-d36b774c66a1",
		SafetyZoneSide: 1e9, // effectively unbounded capacity
		Velocity: map[PathKind]VelocityParams{
			PathRoom:      {V0: 100, A: 0.295, D0: 0.51},
			PathTransit:   {V0: 100, A: 0.295, D0: 0.65},
			PathStairDown: {V0: 100, A: 0.400, D0: 0.89},
			PathStairUp:   {V0: 60, A: 0.305, D0: 0.67},
		},
	}
}

// LoadFile reads a YAML override file layered over Default() and
// validates the result. An empty or missing path returns Default().
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}
