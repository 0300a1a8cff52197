package bim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arx-evac/evacsim/internal/building"
	"github.com/arx-evac/evacsim/internal/common/errs"
	"github.com/arx-evac/evacsim/internal/geometry"
)

// Transit is a doorway or virtual opening — the unit of flow between
// two zones. Its Width is computed once at build time
// from the geometry of its own polygon and its host zone(s)'.
type Transit struct {
	ID      uuid.UUID
	Sign    building.Sign
	Polygon []building.BPoint // exactly 4 distinct vertices

	Width       float64
	NumOfPeople float64
	IsVisited   bool
	IsBlocked   bool

	// Output lists one zone id (outer transits, rewired to the
	// safety zone by the graph builder) or two.
	Output []uuid.UUID
}

func newTransit(e building.BuildElement) *Transit {
	return &Transit{
		ID:      e.ID,
		Sign:    e.Sign,
		Polygon: e.Polygon,
		Output:  append([]uuid.UUID(nil), e.Output...),
	}
}

// skipWidthCalculation handles the case where a DoorWay
// joining two staircases has no meaningful width and is left
// unmodified.
func (t *Transit) skipWidthCalculation(zoneA, zoneB *Zone) bool {
	return t.Sign == building.SignDoorWay &&
		zoneA != nil && zoneB != nil &&
		zoneA.Sign == building.SignStaircase && zoneB.Sign == building.SignStaircase
}

// computeWidth classifies the
// four transit vertices against zoneA, derive the interior/exterior
// vertex pairing, and average the relevant pair of edge lengths
// depending on transit sign.
func computeWidth(t *Transit, zoneA, zoneB *Zone, nDigits int) error {
	pts := toGeometryPoints(t.Polygon)
	ring := openClosedRing(pts)
	if len(ring) != 4 {
		return errs.New(errs.CodeTransitGeometryInvalid,
			fmt.Sprintf("transit %s: expected 4 distinct vertices, got %d", t.ID, len(ring)))
	}

	zoneATriangles, err := geometry.Triangulate(openClosedRing(toGeometryPoints(zoneA.Polygon)))
	if err != nil {
		return errs.Wrap(err, errs.CodeTransitGeometryInvalid, fmt.Sprintf("transit %s: triangulating zone %s", t.ID, zoneA.ID))
	}

	var interior, exterior []geometry.Point
	for _, p := range ring {
		if geometry.PointInPolygon(p, zoneATriangles) {
			interior = append(interior, p)
		} else {
			exterior = append(exterior, p)
		}
	}

	if len(interior) != 2 {
		return errs.New(errs.CodeTransitGeometryInvalid,
			fmt.Sprintf("transit %s: expected exactly 2 interior vertices relative to zone %s, got %d", t.ID, zoneA.ID, len(interior)))
	}

	p1, p2 := interior[0], interior[1]
	p3, p4 := exterior[0], exterior[1]

	// Pick the normal-edge pairing (p1-p3, p2-p4) vs (p1-p4, p2-p3)
	// so that the first edge, p1-p3, is the shorter candidate.
	if p1.Dist(p3) > p1.Dist(p4) {
		p3, p4 = p4, p3
	}

	var width float64
	switch {
	case t.Sign == building.SignDoorWay:
		if zoneB == nil {
			return errs.New(errs.CodeTransitGeometryInvalid,
				fmt.Sprintf("transit %s: DoorWay requires a second zone", t.ID))
		}
		if t.skipWidthCalculation(zoneA, zoneB) {
			return nil // width not meaningful between two staircases, leave unmodified
		}

		normal1 := geometry.Segment{A: p1, B: p3}
		normal2 := geometry.Segment{A: p2, B: p4}
		parallel1 := geometry.Segment{A: p1, B: p2} // the door's span on zoneA's side
		parallel2 := geometry.Segment{A: p3, B: p4} // the door's span on zoneB's side

		edgeA, err := intersectedEdge(normal1, ringEdges(zoneA.Polygon))
		if err != nil {
			return errs.Wrap(err, errs.CodeTransitGeometryInvalid, fmt.Sprintf("transit %s vs zone %s", t.ID, zoneA.ID))
		}
		edgeB, err := intersectedEdge(normal2, ringEdges(zoneB.Polygon))
		if err != nil {
			return errs.Wrap(err, errs.CodeTransitGeometryInvalid, fmt.Sprintf("transit %s vs zone %s", t.ID, zoneB.ID))
		}

		proj1 := geometry.ProjectOnto(parallel1, edgeA)
		proj2 := geometry.ProjectOnto(parallel2, edgeB)
		width = (proj1 + proj2) / 2

	default: // DoorWayInt, DoorWayOut: average of the two parallel edges
		parallel1 := geometry.Segment{A: p1, B: p2}
		parallel2 := geometry.Segment{A: p3, B: p4}
		width = (parallel1.Length() + parallel2.Length()) / 2
	}

	t.Width = geometry.RoundSignificant(width, nDigits)
	return nil
}

// openClosedRing drops a trailing vertex equal to the first.
func openClosedRing(ring []geometry.Point) []geometry.Point {
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		return ring[:len(ring)-1]
	}
	return ring
}

// ringEdges returns the polygon's boundary segments (open ring,
// wrapping last-to-first).
func ringEdges(ring []building.BPoint) []geometry.Segment {
	pts := openClosedRing(toGeometryPoints(ring))
	n := len(pts)
	edges := make([]geometry.Segment, n)
	for i := 0; i < n; i++ {
		edges[i] = geometry.Segment{A: pts[i], B: pts[(i+1)%n]}
	}
	return edges
}

// intersectedEdge finds the single polygon edge that the given
// normal edge intersects. Exactly one
// match is required.
func intersectedEdge(normal geometry.Segment, edges []geometry.Segment) (geometry.Segment, error) {
	var found []geometry.Segment
	for _, e := range edges {
		if geometry.Intersects(normal, e) {
			found = append(found, e)
		}
	}
	if len(found) != 1 {
		return geometry.Segment{}, fmt.Errorf("expected exactly 1 intersected edge, found %d", len(found))
	}
	return found[0], nil
}
