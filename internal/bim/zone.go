// Package bim materializes the bipartite Zone/Transit graph from an
// ingested building.Building and
// validates it with a breadth-oriented traversal from the safety
// zone.
package bim

import (
	"github.com/google/uuid"

	"github.com/arx-evac/evacsim/internal/building"
	"github.com/arx-evac/evacsim/internal/geometry"
)

// Zone is a room, a staircase segment, or the synthetic safety zone —
// the unit of occupancy in the evacuation graph.
type Zone struct {
	ID      uuid.UUID
	Sign    building.Sign
	Polygon []building.BPoint
	Name    string
	ZLevel  float64

	area        float64
	numOfPeople float64

	GraphLevel int
	IsVisited  bool
	IsBlocked  bool
	IsSafe     bool

	// Output lists the transit ids adjacent to this zone.
	Output []uuid.UUID
}

// Area returns the zone's floor area in m², computed once at
// construction time from the polygon's triangulation.
func (z *Zone) Area() float64 { return z.area }

// NumOfPeople returns the current occupancy.
func (z *Zone) NumOfPeople() float64 { return z.numOfPeople }

// Density returns persons per m² of floor area.
func (z *Zone) Density() float64 {
	if z.area == 0 {
		return 0
	}
	return z.numOfPeople / z.area
}

// SetNumOfPeople sets occupancy directly; density is derived from it
// on read: one field is stored, the other derived.
// Negative values are a defect (InvariantViolation), never a
// construction-time input, so this panics rather than returning an
// error — callers validate before the simulation loop starts.
func (z *Zone) SetNumOfPeople(n float64) {
	if n < 0 {
		panic("bim: negative num_of_people is an invariant violation")
	}
	z.numOfPeople = n
}

// SetDensity sets occupancy from a density value (num_of_people =
// density * area), the model's coupled setter.
func (z *Zone) SetDensity(d float64) {
	if d < 0 {
		panic("bim: negative density is an invariant violation")
	}
	z.numOfPeople = d * z.area
}

// newZone builds a Zone from a raw building element, computing area
// via the geometry kernel (C1).
func newZone(e building.BuildElement, nDigits int) (*Zone, error) {
	poly := toGeometryPoints(e.Polygon)
	area, err := geometry.PolygonArea(poly, nDigits)
	if err != nil {
		return nil, err
	}

	return &Zone{
		ID:      e.ID,
		Sign:    e.Sign,
		Polygon: e.Polygon,
		Name:    e.Name,
		ZLevel:  zLevelOf(e.Polygon),
		area:    area,
	}, nil
}

func zLevelOf(ring []building.BPoint) float64 {
	if len(ring) == 0 {
		return 0
	}
	return ring[0].Z
}

func toGeometryPoints(ring []building.BPoint) []geometry.Point {
	pts := make([]geometry.Point, len(ring))
	for i, p := range ring {
		pts[i] = geometry.Point{X: p.X, Y: p.Y}
	}
	return pts
}
