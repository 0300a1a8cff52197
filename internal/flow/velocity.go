// Package flow implements the density-dependent people-flow-velocity
// model: the empirical speed-vs-density law and its three
// surfaces — room, staircase, and doorway/transit.
package flow

import (
	"fmt"
	"math"

	"github.com/arx-evac/evacsim/internal/common/errs"
	"github.com/arx-evac/evacsim/internal/config"
)

// Direction distinguishes ascending from descending staircase travel;
// speed_on_stair uses a different coefficient set for each.
type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

// baseSpeed implements the empirical speed-density law:
// v(d) = v0 if d <= d0, else v0 * (1 - a * ln(d/d0)).
func baseSpeed(p config.VelocityParams, d float64) float64 {
	if d <= p.D0 {
		return p.V0
	}
	return p.V0 * (1 - p.A*math.Log(d/p.D0))
}

// SpeedInRoom returns the walking speed (m/min) at density d inside a
// room, clamping d to the D09 ceiling first (densities
// above 0.9 persons per projection area saturate).
func SpeedInRoom(cfg config.Config, d float64) float64 {
	if d09 := cfg.D09(); d > d09 {
		d = d09
	}
	return baseSpeed(cfg.Velocity[config.PathRoom], d)
}

// SpeedOnStair returns the walking speed (m/min) at density d on a
// staircase, using the ascending or descending coefficient set. dir
// must be Up or Down; any other value is a defect, not a reported
// error, since the caller always knows which way a person is moving.
func SpeedOnStair(cfg config.Config, dir Direction, d float64) float64 {
	var kind config.PathKind
	switch dir {
	case Up:
		kind = config.PathStairUp
	case Down:
		kind = config.PathStairDown
	default:
		panic(errs.New(errs.CodeInvariantViolation, fmt.Sprintf("flow: invalid stair direction %d", dir)))
	}
	return baseSpeed(cfg.Velocity[kind], d)
}

// narrowDoorWidth is the threshold below which a saturated doorway's
// throughput is given by the width-only override instead of the
// density-scaled formula.
const narrowDoorWidth = 1.6

// SpeedThroughTransit returns the walking speed (m/min) through a
// transit of the given width at density d.
//
// Below the transit path's critical density the base law alone
// applies (v0). Above it, the density is projected to persons per
// projection-area unit (D = d * projection_area) and an intermediate
// specific flow q = v(d)*D*m is formed, where m damps the flow once D
// exceeds 0.5. Once D reaches 0.9 the doorway is saturated and q is
// overridden by a width-only formula (a fixed 8.5 for wide doors, or
// a linear function of width for narrow ones). The result is always
// converted back from specific flow to a speed via q/D.
func SpeedThroughTransit(cfg config.Config, width, d float64) float64 {
	p := cfg.Velocity[config.PathTransit]
	if d <= p.D0 {
		return p.V0
	}

	D := d * cfg.ProjectionArea
	m := 1.0
	if D > 0.5 {
		m = 1.25 - 0.5*D
	}
	q := baseSpeed(p, d) * D * m

	if D >= 0.9 {
		if width < narrowDoorWidth {
			q = 2.5 + 3.75*width
		} else {
			q = 8.5
		}
	}

	return q / D
}
