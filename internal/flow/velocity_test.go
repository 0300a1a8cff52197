package flow

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/arx-evac/evacsim/internal/config"
)

// expectedSpeedThroughTransit computes the reference formula directly
// from its terms (v(d), D, m, the D>=0.9 override) independently of
// SpeedThroughTransit's own code path, so a regression that changes
// the production implementation's shape (not just its constants) is
// still caught.
func expectedSpeedThroughTransit(cfg config.Config, width, d float64) float64 {
	p := cfg.Velocity[config.PathTransit]
	if d <= p.D0 {
		return p.V0
	}

	vd := p.V0 * (1 - p.A*math.Log(d/p.D0))

	D := d * cfg.ProjectionArea
	m := 1.0
	if D > 0.5 {
		m = 1.25 - 0.5*D
	}
	q := vd * D * m

	if D >= 0.9 {
		if width < 1.6 {
			q = 2.5 + 3.75*width
		} else {
			q = 8.5
		}
	}

	return q / D
}

func TestSpeedInRoom_FlatBelowD0(t *testing.T) {
	cfg := config.Default()
	p := cfg.Velocity[config.PathRoom]
	assert.Equal(t, p.V0, SpeedInRoom(cfg, p.D0/2))
}

func TestSpeedInRoom_ClampsAtD09(t *testing.T) {
	cfg := config.Default()
	atCeiling := SpeedInRoom(cfg, cfg.D09())
	beyond := SpeedInRoom(cfg, cfg.D09()*10)
	assert.Equal(t, atCeiling, beyond)
}

func TestSpeedOnStair_InvalidDirectionPanics(t *testing.T) {
	cfg := config.Default()
	assert.Panics(t, func() { SpeedOnStair(cfg, 0, 1.0) })
}

// At d = 9.5 (D = 0.95) the doorway is saturated and the width-only
// override applies: q = 2.5 + 3.75*1.0 = 6.25 for the narrow door
// against 8.5 for the wide one.
func TestSpeedThroughTransit_NarrowDoorSlowerWhenSaturated(t *testing.T) {
	cfg := config.Default()
	narrow := SpeedThroughTransit(cfg, 1.0, 9.5)
	wide := SpeedThroughTransit(cfg, 2.0, 9.5)
	assert.Less(t, narrow, wide)
}

// TestSpeedThroughTransit_MatchesFormula checks the returned speed
// against an independently-computed reference value across every
// regime: below d0, D<=0.5, 0.5<D<0.9, and the D>=0.9 override for
// both narrow and wide doors.
func TestSpeedThroughTransit_MatchesFormula(t *testing.T) {
	cfg := config.Default()
	p := cfg.Velocity[config.PathTransit]

	cases := []struct {
		name  string
		width float64
		d     float64
	}{
		{"below d0", 1.2, p.D0 / 2},
		{"D below 0.5", 1.2, 2.0},
		{"0.5 < D < 0.9", 1.2, 6.0},
		{"D >= 0.9 narrow door", 1.0, 9.0},
		{"D >= 0.9 wide door", 2.0, 9.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SpeedThroughTransit(cfg, c.width, c.d)
			want := expectedSpeedThroughTransit(cfg, c.width, c.d)
			assert.InDelta(t, want, got, 1e-9)
		})
	}
}

// TestSpeed_MonotonicNonIncreasing checks the empirical law never
// speeds up as density rises, for all three surfaces.
func TestSpeed_MonotonicNonIncreasing(t *testing.T) {
	cfg := config.Default()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("speed_in_room is non-increasing in density", prop.ForAll(
		func(d1, delta float64) bool {
			d2 := d1 + delta
			return SpeedInRoom(cfg, d1) >= SpeedInRoom(cfg, d2)-1e-9
		},
		gen.Float64Range(0, 10),
		gen.Float64Range(0, 10),
	))

	properties.Property("speed_on_stair (down) is non-increasing in density", prop.ForAll(
		func(d1, delta float64) bool {
			d2 := d1 + delta
			return SpeedOnStair(cfg, Down, d1) >= SpeedOnStair(cfg, Down, d2)-1e-9
		},
		gen.Float64Range(0, 10),
		gen.Float64Range(0, 10),
	))

	properties.TestingRun(t)
}
