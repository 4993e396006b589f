// Package config loads game settings from an optional YAML file and
// UNDERTOW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"chosenoffset.com/undertow/internal/simulation"
)

// EnvPrefix is prepended to environment overrides, e.g. UNDERTOW_LOG_LEVEL.
const EnvPrefix = "UNDERTOW"

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type LevelConfig struct {
	Path string `mapstructure:"path"`
	Dir  string `mapstructure:"dir"`
}

type SimConfig struct {
	TickRate int   `mapstructure:"tick_rate"`
	MaxSteps int   `mapstructure:"max_steps"`
	Seed     int64 `mapstructure:"seed"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Config is the full set of runtime settings.
type Config struct {
	Window    WindowConfig      `mapstructure:"window"`
	Log       LogConfig         `mapstructure:"log"`
	Level     LevelConfig       `mapstructure:"level"`
	Sim       SimConfig         `mapstructure:"sim"`
	Tuning    simulation.Tuning `mapstructure:"tuning"`
	Audio     AudioConfig       `mapstructure:"audio"`
	Telemetry TelemetryConfig   `mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Undertow")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("level.path", "")
	v.SetDefault("level.dir", "levels")

	v.SetDefault("sim.tick_rate", 60)
	v.SetDefault("sim.max_steps", 5)
	v.SetDefault("sim.seed", 1)

	t := simulation.DefaultTuning()
	v.SetDefault("tuning.walk_speed", t.WalkSpeed)
	v.SetDefault("tuning.swim_speed", t.SwimSpeed)
	v.SetDefault("tuning.jump_speed", t.JumpSpeed)
	v.SetDefault("tuning.gravity", t.Gravity)
	v.SetDefault("tuning.max_fall_speed", t.MaxFallSpeed)
	v.SetDefault("tuning.swim_sink", t.SwimSink)
	v.SetDefault("tuning.vehicle_speed", t.VehicleSpeed)
	v.SetDefault("tuning.drain_rate", t.DrainRate)
	v.SetDefault("tuning.recharge_rate", t.RechargeRate)
	v.SetDefault("tuning.exit_gap", t.ExitGap)
	v.SetDefault("tuning.board_radius", t.BoardRadius)
	v.SetDefault("tuning.collect_radius", t.CollectRadius)
	v.SetDefault("tuning.artifact_radius", t.ArtifactRadius)
	v.SetDefault("tuning.node_radius", t.NodeRadius)
	v.SetDefault("tuning.pressure_rate", t.PressureRate)
	v.SetDefault("tuning.pressure_recovery", t.PressureRecovery)
	v.SetDefault("tuning.pressure_max", t.PressureMax)
	v.SetDefault("tuning.pixels_per_meter", t.PixelsPerMeter)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.addr", "127.0.0.1:7070")
}

// Load reads settings from path. An empty path or a missing file yields the
// defaults, still subject to environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("invalid tick rate %d", c.Sim.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f outside [0, 1]", c.Audio.Volume)
	}
	if c.Tuning.PressureMax < 0 {
		return fmt.Errorf("negative pressure_max %.2f", c.Tuning.PressureMax)
	}
	return nil
}
