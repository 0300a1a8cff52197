package bim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arx-evac/evacsim/internal/common/errs"
)

// Complexity summarizes the shape of a validated graph: how many
// zones and transits it has, how deep the graph runs from the safety
// zone, and how wide any single level gets.
type Complexity struct {
	NumberOfZones    int
	NumberOfTransits int
	DepthOfBimGraph  int
	WidthOfBimGraph  int
}

// Validate breadth-traverses the graph from the safety zone,
// assigning each reached zone a GraphLevel, then reports Complexity.
// Any zone left unreached is a broken evacuation path and is reported
// as a single aggregated GraphConnectivityBroken error; a graph with
// unreachable zones is never silently accepted.
func (bim *Bim) Validate() (Complexity, error) {
	for _, z := range bim.zones {
		z.IsVisited = false
		z.GraphLevel = -1
	}
	for _, t := range bim.transits {
		t.IsVisited = false
	}

	start := bim.zones[bim.SafetyZoneID]
	start.IsVisited = true
	start.GraphLevel = 0

	queue := []*Zone{start}
	levelCounts := map[int]int{0: 1}
	depth := 0

	for len(queue) > 0 {
		z := queue[0]
		queue = queue[1:]

		for _, tid := range z.Output {
			t := bim.transits[tid]
			if t == nil || t.IsVisited {
				continue
			}
			t.IsVisited = true

			next := bim.otherZone(t, z.ID)
			if next == nil || next.IsVisited {
				continue
			}
			next.IsVisited = true
			next.GraphLevel = z.GraphLevel + 1
			levelCounts[next.GraphLevel]++
			if next.GraphLevel > depth {
				depth = next.GraphLevel
			}
			queue = append(queue, next)
		}
	}

	var offenses []errs.Offense
	for id, z := range bim.zones {
		if id == bim.SafetyZoneID {
			continue
		}
		if !z.IsVisited {
			offenses = append(offenses, errs.Offense{
				Sign: string(z.Sign), ID: z.ID.String(), Name: z.Name,
				Note: "unreachable from the safety zone",
			})
		}
	}
	if err := errs.NewAggregate(errs.CodeGraphConnectivityBroken,
		"one or more zones are unreachable from the safety zone", offenses); err != nil {
		return Complexity{}, err
	}

	width := 0
	for lvl, count := range levelCounts {
		if lvl == 0 {
			continue // the safety zone's own level never counts toward width
		}
		if count > width {
			width = count
		}
	}

	return Complexity{
		NumberOfZones:    len(bim.zones) - 1, // excludes the safety zone
		NumberOfTransits: len(bim.transits),
		DepthOfBimGraph:  depth,
		WidthOfBimGraph:  width,
	}, nil
}

// otherZone returns the zone at the far end of t from fromID.
func (bim *Bim) otherZone(t *Transit, fromID uuid.UUID) *Zone {
	for _, id := range t.Output {
		if id != fromID {
			return bim.zones[id]
		}
	}
	return nil
}

func (c Complexity) String() string {
	return fmt.Sprintf("zones=%d transits=%d depth=%d width=%d",
		c.NumberOfZones, c.NumberOfTransits, c.DepthOfBimGraph, c.WidthOfBimGraph)
}
