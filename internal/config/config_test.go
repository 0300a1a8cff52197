package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesObservableConstants(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.5, cfg.MinWidth)
	assert.Equal(t, 0.1, cfg.MinDensity)
	assert.Equal(t, 5.0, cfg.MaxDensity)
	assert.Equal(t, 0.008, cfg.ModellingStep)
	assert.Equal(t, 15, cfg.NDigits)
	assert.Equal(t, "e6315dac-ad4b-11ed-9732-d36b774c66a1", cfg.SafetyZoneID)
	assert.InDelta(t, 9.0, cfg.D09(), 1e-9)

	room := cfg.Velocity[PathRoom]
	assert.Equal(t, VelocityParams{V0: 100, A: 0.295, D0: 0.51}, room)
}

func TestLoadFile_MissingPathReturnsDefault(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_NonexistentFileReturnsDefault(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_OverridesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_width: 0.75\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, cfg.MinWidth)
	assert.Equal(t, Default().MinDensity, cfg.MinDensity)
}

func TestLoadFile_RejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_width: -1\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}
