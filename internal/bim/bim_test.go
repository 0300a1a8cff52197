package bim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-evac/evacsim/internal/building"
	"github.com/arx-evac/evacsim/internal/config"
)

// oneRoomOneDoorBuilding builds the smallest possible valid layout: a
// 4x4 room with a single doorway straddling its eastern wall, wired
// straight to the safety zone.
func oneRoomOneDoorBuilding(t *testing.T) building.Building {
	t.Helper()
	roomID := uuid.New()
	doorID := uuid.New()

	room := building.BuildElement{
		ID:   roomID,
		Sign: building.SignRoom,
		Name: "Room 1",
		Polygon: []building.BPoint{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
		},
		Output: []uuid.UUID{doorID},
	}
	door := building.BuildElement{
		ID:   doorID,
		Sign: building.SignDoorWayOut,
		Name: "Door 1",
		Polygon: []building.BPoint{
			{X: 4, Y: 1}, {X: 4.3, Y: 1}, {X: 4.3, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 1},
		},
		Output: []uuid.UUID{roomID},
	}

	return building.Building{
		Name: "Test Building",
		Levels: []building.Level{
			{Name: "1", ZLevel: 0, Elements: []building.BuildElement{room, door}},
		},
	}
}

func TestNewBim_BuildsGraphAndSafetyZone(t *testing.T) {
	cfg := config.Default()
	b, err := NewBim(oneRoomOneDoorBuilding(t), cfg, nil)
	require.NoError(t, err)

	assert.Len(t, b.Zones(), 2) // room + safety zone
	assert.Len(t, b.Transits(), 1)

	sz := b.Zone(b.SafetyZoneID)
	require.NotNil(t, sz)
	assert.True(t, sz.IsSafe)
	assert.Len(t, sz.Output, 1)
}

func TestNewBim_TransitWidthComputed(t *testing.T) {
	cfg := config.Default()
	b, err := NewBim(oneRoomOneDoorBuilding(t), cfg, nil)
	require.NoError(t, err)

	for _, tr := range b.Transits() {
		assert.Greater(t, tr.Width, cfg.MinWidth)
	}
}

func TestNewBim_RejectsNarrowDoor(t *testing.T) {
	cfg := config.Default()
	bld := oneRoomOneDoorBuilding(t)
	// Narrow the door to a sliver well under MinWidth.
	door := &bld.Levels[0].Elements[1]
	door.Polygon = []building.BPoint{
		{X: 4, Y: 1}, {X: 4.01, Y: 1}, {X: 4.01, Y: 1.1}, {X: 4, Y: 1.1}, {X: 4, Y: 1},
	}

	_, err := NewBim(bld, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exceed MinWidth")
}

func TestBim_SetDensity_ExcludesSafetyZone(t *testing.T) {
	cfg := config.Default()
	b, err := NewBim(oneRoomOneDoorBuilding(t), cfg, nil)
	require.NoError(t, err)

	b.SetDensity(0.3)
	assert.Greater(t, b.NumOfPeople(), 0.0)

	sz := b.Zone(b.SafetyZoneID)
	assert.Equal(t, 0.0, sz.NumOfPeople())
}

func TestBim_Area_ExcludesSafetyZone(t *testing.T) {
	cfg := config.Default()
	b, err := NewBim(oneRoomOneDoorBuilding(t), cfg, nil)
	require.NoError(t, err)

	assert.InDelta(t, 16.0, b.Area(), 1e-6)
}
