package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/undertow/internal/simulation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "undertow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "levels", cfg.Level.Dir)
	assert.Equal(t, 60, cfg.Sim.TickRate)
	assert.Equal(t, 5, cfg.Sim.MaxSteps)
	assert.Equal(t, simulation.DefaultTuning(), cfg.Tuning)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "127.0.0.1:7070", cfg.Telemetry.Addr)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
log:
  level: debug
sim:
  tick_rate: 120
tuning:
  drain_rate: 0.5
  walk_speed: 4
telemetry:
  enabled: true
  addr: ":9000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 120, cfg.Sim.TickRate)
	assert.Equal(t, 0.5, cfg.Tuning.DrainRate)
	assert.Equal(t, 4.0, cfg.Tuning.WalkSpeed)
	assert.Equal(t, simulation.DefaultTuning().SwimSpeed, cfg.Tuning.SwimSpeed)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, ":9000", cfg.Telemetry.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("UNDERTOW_LOG_LEVEL", "error")
	t.Setenv("UNDERTOW_AUDIO_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "window: [1, 2\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"window":    "window:\n  width: 0\n",
		"tick rate": "sim:\n  tick_rate: -1\n",
		"volume":    "audio:\n  volume: 3\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
