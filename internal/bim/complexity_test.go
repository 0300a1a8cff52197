package bim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-evac/evacsim/internal/building"
	"github.com/arx-evac/evacsim/internal/config"
)

func TestValidate_OneRoomOneDoor(t *testing.T) {
	cfg := config.Default()
	b, err := NewBim(oneRoomOneDoorBuilding(t), cfg, nil)
	require.NoError(t, err)

	complexity, err := b.Validate()
	require.NoError(t, err)

	assert.Equal(t, 1, complexity.NumberOfZones)
	assert.Equal(t, 1, complexity.NumberOfTransits)
	assert.Equal(t, 1, complexity.DepthOfBimGraph)
	assert.Equal(t, 1, complexity.WidthOfBimGraph)
}

func TestValidate_UnreachableZoneIsReported(t *testing.T) {
	cfg := config.Default()
	bld := oneRoomOneDoorBuilding(t)

	// An isolated room with no transit at all.
	isolated := building.BuildElement{
		ID:   uuid.New(),
		Sign: building.SignRoom,
		Name: "Isolated",
		Polygon: []building.BPoint{
			{X: 10, Y: 10}, {X: 12, Y: 10}, {X: 12, Y: 12}, {X: 10, Y: 12}, {X: 10, Y: 10},
		},
	}
	bld.Levels[0].Elements = append(bld.Levels[0].Elements, isolated)

	b, err := NewBim(bld, cfg, nil)
	require.NoError(t, err)

	_, err = b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable from the safety zone")
}
