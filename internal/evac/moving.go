// Package evac implements the discrete-time evacuation stepper
// (at most one fixed-step flow transfer per transit per tick,
// breadth-traversed from the safety zone) plus the driver loop
// that runs ticks until the building empties.
package evac

import (
	"time"

	"github.com/google/uuid"

	"github.com/arx-evac/evacsim/internal/bim"
	"github.com/arx-evac/evacsim/internal/building"
	"github.com/arx-evac/evacsim/internal/common/logger"
	"github.com/arx-evac/evacsim/internal/config"
	"github.com/arx-evac/evacsim/internal/flow"
	"github.com/arx-evac/evacsim/internal/metrics"
)

// Moving drives a validated Bim graph through successive ticks,
// accumulating elapsed evacuation time.
type Moving struct {
	bim *bim.Bim
	cfg config.Config
	log *logger.Logger
	met *metrics.Collector

	elapsedMinutes float64
	ticks          int
}

// New wraps a validated Bim graph in a Moving stepper. met may be
// nil; every metrics call is a no-op against a nil collector.
func New(b *bim.Bim, cfg config.Config, log *logger.Logger, met *metrics.Collector) *Moving {
	if log == nil {
		log = logger.Noop()
	}
	return &Moving{bim: b, cfg: cfg, log: log, met: met}
}

// TimeInMinutes returns the cumulative simulated time elapsed across
// every Step call so far.
func (m *Moving) TimeInMinutes() float64 { return m.elapsedMinutes }

// BuildingZones returns every zone except the safety zone, a snapshot
// of the building's current occupancy.
func (m *Moving) BuildingZones() []*bim.Zone {
	zones := make([]*bim.Zone, 0, len(m.bim.Zones()))
	for id, z := range m.bim.Zones() {
		if id == m.bim.SafetyZoneID {
			continue
		}
		zones = append(zones, z)
	}
	return zones
}

// Step advances the simulation by one ModellingStep tick: breadth
// traverses the graph from the safety zone and, for every transit not
// yet crossed this tick, moves people from its unvisited ("giving")
// side into its visited ("receiving") side.
func (m *Moving) Step() {
	started := time.Now()
	for _, z := range m.bim.Zones() {
		z.IsVisited = false
	}
	for _, t := range m.bim.Transits() {
		t.IsVisited = false
	}

	start := m.bim.Zone(m.bim.SafetyZoneID)
	start.IsVisited = true
	queue := []*bim.Zone{start}

	for len(queue) > 0 {
		receiving := queue[0]
		queue = queue[1:]

		for _, tid := range receiving.Output {
			t := m.bim.Transit(tid)
			if t == nil || t.IsVisited || t.IsBlocked {
				continue
			}

			giving := m.otherZone(t, receiving.ID)
			if giving == nil || giving.IsVisited {
				continue
			}
			t.IsVisited = true

			moved, saturated := m.partOfPeopleFlow(receiving, giving, t)
			giving.SetNumOfPeople(giving.NumOfPeople() - moved)
			receiving.SetNumOfPeople(receiving.NumOfPeople() + moved)
			t.NumOfPeople = moved
			m.met.ObserveTransfer(moved, saturated)

			giving.IsVisited = true
			queue = append(queue, giving)
		}
	}

	m.elapsedMinutes += m.cfg.ModellingStep
	m.ticks++
	m.met.SetPopulations(m.bim.NumOfPeople(), start.NumOfPeople())
	m.met.ObserveStep(time.Since(started).Seconds())
}

func (m *Moving) otherZone(t *bim.Transit, fromID uuid.UUID) *bim.Zone {
	for _, id := range t.Output {
		if id != fromID {
			return m.bim.Zone(id)
		}
	}
	return nil
}

// partOfPeopleFlow computes the number of people transferred across t
// from giving into receiving during one tick. The effective width is
// widened to giving's whole floor area once its density drops to or
// below MinDensity, so the last fractional occupants leave in one
// tick instead of trickling through the real (often much narrower)
// opening; above that density the transit's own width applies. The
// slower of the element speed and the transit speed bounds the exit
// speed, which converts to a per-tick flow clamped first to what
// giving actually has (near-empty only) and then to receiving's
// remaining capacity.
func (m *Moving) partOfPeopleFlow(receiving, giving *bim.Zone, t *bim.Transit) (moved float64, saturated bool) {
	d := giving.Density()

	width := t.Width
	nearEmpty := d <= m.cfg.MinDensity
	if nearEmpty {
		width = giving.Area()
	}

	speedElement := m.speedInElement(receiving, giving)
	speedTransit := flow.SpeedThroughTransit(m.cfg, width, d)
	speed := speedElement
	if speedTransit < speed {
		speed = speedTransit
	}

	moved = d * speed * width * m.cfg.ModellingStep

	if nearEmpty && moved > giving.NumOfPeople() {
		moved = giving.NumOfPeople()
	}

	capacity := m.cfg.MaxDensity*receiving.Area() - receiving.NumOfPeople()
	if capacity < 0 {
		return 0, true
	}
	if moved > capacity {
		moved = capacity
		saturated = true
	}

	if moved < 0 {
		moved = 0
	}
	return moved, saturated
}

// speedInElement picks the room or staircase speed law for travel out
// of giving, using the sign of the z-level difference to resolve
// staircase direction.
func (m *Moving) speedInElement(receiving, giving *bim.Zone) float64 {
	d := giving.Density()
	if giving.Sign != building.SignStaircase {
		return flow.SpeedInRoom(m.cfg, d)
	}

	dir := flow.Up
	if giving.ZLevel-receiving.ZLevel > 1e-3 {
		dir = flow.Down
	}
	return flow.SpeedOnStair(m.cfg, dir, d)
}
