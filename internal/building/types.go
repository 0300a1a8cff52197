// Package building ingests the external JSON building description
// into immutable typed records: BPoint, Sign,
// BuildElement, Level, and Building. Nothing here is mutated after
// Parse returns — internal/bim owns the graph built from these
// records and external callers only borrow references to them.
package building

import "github.com/google/uuid"

// BPoint is an immutable 3-D point in metres.
type BPoint struct {
	X, Y, Z float64
}

// Sign tags the kind of a BuildElement.
type Sign string

const (
	SignRoom       Sign = "Room"
	SignStaircase  Sign = "Staircase"
	SignDoorWay    Sign = "DoorWay"
	SignDoorWayInt Sign = "DoorWayInt"
	SignDoorWayOut Sign = "DoorWayOut"
)

// IsDoorWay reports whether the sign denotes any transit kind.
func (s Sign) IsDoorWay() bool {
	return s == SignDoorWay || s == SignDoorWayInt || s == SignDoorWayOut
}

// IsZone reports whether the sign denotes a zone kind (room or
// staircase).
func (s Sign) IsZone() bool {
	return s == SignRoom || s == SignStaircase
}

func parseSign(s string) (Sign, bool) {
	switch Sign(s) {
	case SignRoom, SignStaircase, SignDoorWay, SignDoorWayInt, SignDoorWayOut:
		return Sign(s), true
	default:
		return "", false
	}
}

// BuildElement is one raw, immutable element parsed from the
// building description: a room, staircase, or doorway.
type BuildElement struct {
	ID      uuid.UUID
	Sign    Sign
	Polygon []BPoint // closed ring: first point repeated as last
	Output  []uuid.UUID
	Name    string
	SizeZ   float64
}

// Level is one storey of the building.
type Level struct {
	Name     string
	ZLevel   float64
	Elements []BuildElement
}

// Building is the full, immutable building description.
type Building struct {
	Name    string
	Address string
	Levels  []Level
}
