package bim

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arx-evac/evacsim/internal/building"
	"github.com/arx-evac/evacsim/internal/common/errs"
	"github.com/arx-evac/evacsim/internal/common/logger"
	"github.com/arx-evac/evacsim/internal/config"
)

// Bim is the bipartite Zone/Transit graph materialized from a parsed
// building.Building, plus the synthetic safety zone every outer
// transit is wired to.
type Bim struct {
	SafetyZoneID uuid.UUID

	zones    map[uuid.UUID]*Zone
	transits map[uuid.UUID]*Transit

	cfg config.Config
	log *logger.Logger
}

// NewBim walks every level of b, builds a Zone for each Room/Staircase
// element and a Transit for each DoorWay*, computes every transit's
// width, and synthesizes the safety zone that all single-sided
// transits drain into. A building whose transits fail geometry
// validation is never returned partially: one aggregated
// TransitGeometryInvalid error reports every offender.
func NewBim(b building.Building, cfg config.Config, log *logger.Logger) (*Bim, error) {
	if log == nil {
		log = logger.Noop()
	}

	bim := &Bim{
		SafetyZoneID: uuid.MustParse(cfg.SafetyZoneID),
		zones:        make(map[uuid.UUID]*Zone),
		transits:     make(map[uuid.UUID]*Transit),
		cfg:          cfg,
		log:          log,
	}

	var offenses []errs.Offense

	for _, level := range b.Levels {
		for _, e := range level.Elements {
			switch {
			case e.Sign.IsZone():
				z, err := newZone(e, cfg.NDigits)
				if err != nil {
					offenses = append(offenses, errs.Offense{
						Sign: string(e.Sign), ID: e.ID.String(), Name: e.Name,
						Level: level.Name, Note: err.Error(),
					})
					continue
				}
				z.Output = e.Output
				bim.zones[z.ID] = z

			case e.Sign.IsDoorWay():
				bim.transits[e.ID] = newTransit(e)

			default:
				log.Warn("bim: ignoring element of unknown sign",
					zap.String("sign", string(e.Sign)), zap.String("id", e.ID.String()))
			}
		}
	}

	if err := errs.NewAggregate(errs.CodeIngestMalformed,
		"one or more zones failed to build", offenses); err != nil {
		return nil, err
	}

	sz := bim.synthesizeSafetyZone()
	bim.zones[sz.ID] = sz

	if err := bim.wireAndValidateTransits(); err != nil {
		return nil, err
	}

	return bim, nil
}

// synthesizeSafetyZone builds the reserved zone every building exit
// drains into: a single large square centred on the origin, so large
// that its capacity never binds.
func (bim *Bim) synthesizeSafetyZone() *Zone {
	side := bim.cfg.SafetyZoneSide
	ring := []building.BPoint{
		{X: -side / 2, Y: -side / 2, Z: 0},
		{X: side / 2, Y: -side / 2, Z: 0},
		{X: side / 2, Y: side / 2, Z: 0},
		{X: -side / 2, Y: side / 2, Z: 0},
		{X: -side / 2, Y: -side / 2, Z: 0},
	}
	area := side * side
	return &Zone{
		ID:      bim.SafetyZoneID,
		Sign:    building.SignRoom,
		Polygon: ring,
		Name:    "Safety zone",
		area:    area,
		IsSafe:  true,
	}
}

// wireAndValidateTransits resolves every transit's zone_A/zone_B from
// its Output ids, rewrites single-sided transits to drain into the
// safety zone, computes widths, and enforces MinWidth. All offenses
// are gathered into one error.
func (bim *Bim) wireAndValidateTransits() error {
	var offenses []errs.Offense

	for _, t := range bim.transits {
		switch len(t.Output) {
		case 1:
			t.Output = []uuid.UUID{t.Output[0], bim.SafetyZoneID}
		case 2:
			// the safety zone never appears
			// as output[0]; swap so downstream code can always treat
			// output[0] as the building-side zone.
			if t.Output[0] == bim.SafetyZoneID {
				t.Output[0], t.Output[1] = t.Output[1], t.Output[0]
			}
		default:
			offenses = append(offenses, errs.Offense{
				Sign: string(t.Sign), ID: t.ID.String(), Note: fmt.Sprintf("expected 1 or 2 outputs, got %d", len(t.Output)),
			})
			continue
		}

		zoneA := bim.zones[t.Output[0]]
		if zoneA == nil {
			offenses = append(offenses, errs.Offense{
				Sign: string(t.Sign), ID: t.ID.String(), Note: fmt.Sprintf("output zone %s not found", t.Output[0]),
			})
			continue
		}
		var zoneB *Zone
		if t.Output[1] != bim.SafetyZoneID {
			zoneB = bim.zones[t.Output[1]]
			if zoneB == nil {
				offenses = append(offenses, errs.Offense{
					Sign: string(t.Sign), ID: t.ID.String(), Note: fmt.Sprintf("output zone %s not found", t.Output[1]),
				})
				continue
			}
		}

		if t.skipWidthCalculation(zoneA, zoneB) {
			zoneA.Output = appendUnique(zoneA.Output, t.ID)
			if zoneB != nil {
				zoneB.Output = appendUnique(zoneB.Output, t.ID)
			}
			continue // no width, no MinWidth check
		}

		if err := computeWidth(t, zoneA, zoneB, bim.cfg.NDigits); err != nil {
			offenses = append(offenses, errs.Offense{Sign: string(t.Sign), ID: t.ID.String(), Note: err.Error()})
			continue
		}

		if t.Width <= bim.cfg.MinWidth {
			offenses = append(offenses, errs.Offense{
				Sign: string(t.Sign), ID: t.ID.String(),
				Note: fmt.Sprintf("width %.4f does not exceed MinWidth %.4f", t.Width, bim.cfg.MinWidth),
			})
		}

		zoneA.Output = appendUnique(zoneA.Output, t.ID)
		if zoneB != nil {
			zoneB.Output = appendUnique(zoneB.Output, t.ID)
		} else {
			bim.zones[bim.SafetyZoneID].Output = appendUnique(bim.zones[bim.SafetyZoneID].Output, t.ID)
		}
	}

	return errs.NewAggregate(errs.CodeTransitGeometryInvalid,
		"one or more transits failed geometry validation", offenses)
}

func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// Zone looks up a zone by id.
func (bim *Bim) Zone(id uuid.UUID) *Zone { return bim.zones[id] }

// Transit looks up a transit by id.
func (bim *Bim) Transit(id uuid.UUID) *Transit { return bim.transits[id] }

// Zones returns every zone, including the safety zone.
func (bim *Bim) Zones() map[uuid.UUID]*Zone { return bim.zones }

// Transits returns every transit.
func (bim *Bim) Transits() map[uuid.UUID]*Transit { return bim.transits }

// NumOfPeople sums occupancy across every zone except the safety
// zone.
func (bim *Bim) NumOfPeople() float64 {
	var total float64
	for id, z := range bim.zones {
		if id == bim.SafetyZoneID {
			continue
		}
		total += z.NumOfPeople()
	}
	return total
}

// Area sums floor area across every zone except the safety zone.
func (bim *Bim) Area() float64 {
	var total float64
	for id, z := range bim.zones {
		if id == bim.SafetyZoneID {
			continue
		}
		total += z.Area()
	}
	return total
}

// SetDensity applies a uniform density to every building zone (the
// safety zone's population is a simulation output, never an input).
func (bim *Bim) SetDensity(d float64) {
	for id, z := range bim.zones {
		if id == bim.SafetyZoneID {
			continue
		}
		z.SetDensity(d)
	}
}

