// Package simulation implements the fixed-step game simulation: the
// locomotion mode state machine, per-mode movement, vehicle battery and
// pressure bookkeeping, proximity interactions and the artifact minigame.
// Nothing in this package draws; the renderer only reads its state.
package simulation

import (
	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/undertow/internal/core/geom"
)

// Tuning holds every per-tick movement and resource constant. Speeds are in
// world units per tick.
type Tuning struct {
	// Locomotion
	WalkSpeed    float64 `mapstructure:"walk_speed"`
	SwimSpeed    float64 `mapstructure:"swim_speed"`
	JumpSpeed    float64 `mapstructure:"jump_speed"`
	Gravity      float64 `mapstructure:"gravity"`
	MaxFallSpeed float64 `mapstructure:"max_fall_speed"`
	SwimSink     float64 `mapstructure:"swim_sink"` // downward drift while swimming, 0 = neutral buoyancy

	// Vehicle
	VehicleSpeed float64 `mapstructure:"vehicle_speed"`
	DrainRate    float64 `mapstructure:"drain_rate"`    // battery per tick with the light on
	RechargeRate float64 `mapstructure:"recharge_rate"` // battery per tick while surfaced with the light off
	ExitGap      float64 `mapstructure:"exit_gap"`

	// Interaction radii
	BoardRadius    float64 `mapstructure:"board_radius"`
	CollectRadius  float64 `mapstructure:"collect_radius"`
	ArtifactRadius float64 `mapstructure:"artifact_radius"`
	NodeRadius     float64 `mapstructure:"node_radius"`

	// Pressure
	PressureRate     float64 `mapstructure:"pressure_rate"`
	PressureRecovery float64 `mapstructure:"pressure_recovery"`
	PressureMax      float64 `mapstructure:"pressure_max"`

	// Display
	PixelsPerMeter float64 `mapstructure:"pixels_per_meter"`
}

// DefaultTuning returns the tuning used when no config file overrides it.
// Values assume 60 ticks per second.
func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:    3,
		SwimSpeed:    2,
		JumpSpeed:    9,
		Gravity:      0.5,
		MaxFallSpeed: 12,
		SwimSink:     0,

		VehicleSpeed: 5,
		DrainRate:    0.2,
		RechargeRate: 0.1,
		ExitGap:      4,

		BoardRadius:    100,
		CollectRadius:  40,
		ArtifactRadius: 80,
		NodeRadius:     18,

		PressureRate:     0.15,
		PressureRecovery: 0.5,
		PressureMax:      100,

		PixelsPerMeter: 10,
	}
}

// World describes the traversable space. The shore occupies x <= ShoreX and
// its walkable top is GroundY; the ocean fills x > ShoreX between OceanTop
// and OceanBottom.
type World struct {
	Width       float64
	GroundY     float64
	ShoreX      float64
	OceanTop    float64
	OceanBottom float64

	// Vertical travel band for the top edge of the vehicle
	VehicleMinY float64
	VehicleMaxY float64
}

// DefaultWorld returns the built-in shoreline layout.
func DefaultWorld() World {
	return World{
		Width:       2400,
		GroundY:     300,
		ShoreX:      500,
		OceanTop:    300,
		OceanBottom: 1400,
		VehicleMinY: 280,
		VehicleMaxY: 1360,
	}
}

// Bounds returns the rectangle every entity is clamped to.
func (w World) Bounds() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: w.Width, H: w.OceanBottom}
}

// IsWater reports whether a top-left anchor at (x, y) is in the ocean.
func (w World) IsWater(x, y float64) bool {
	return x > w.ShoreX && y > w.OceanTop
}

// FloorAt returns the y coordinate an entity standing at x rests on.
func (w World) FloorAt(x float64) float64 {
	if x <= w.ShoreX {
		return w.GroundY
	}
	return w.OceanBottom
}

// DepthOf returns how far below the ocean top y is, never negative.
func (w World) DepthOf(y float64) float64 {
	return mgl64.Clamp(y-w.OceanTop, 0, w.OceanBottom-w.OceanTop)
}
