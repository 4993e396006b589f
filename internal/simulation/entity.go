package simulation

import (
	"fmt"
	"strings"

	"chosenoffset.com/undertow/internal/core/geom"
)

// Mode is the player's locomotion context. Exactly one is active at a time.
type Mode int

const (
	ModeOnFoot Mode = iota
	ModeSwimming
	ModePiloting
	// ModeMinigame overlays ModePiloting while an artifact is being decoded.
	ModeMinigame
)

func (m Mode) String() string {
	switch m {
	case ModeOnFoot:
		return "on_foot"
	case ModeSwimming:
		return "swimming"
	case ModePiloting:
		return "piloting"
	case ModeMinigame:
		return "minigame"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// WorldMode selects which layer of the world is visible. Collectibles only
// exist in the layer matching their category.
type WorldMode int

const (
	WorldSurface WorldMode = iota
	WorldBeneath
)

func (w WorldMode) String() string {
	switch w {
	case WorldSurface:
		return "surface"
	case WorldBeneath:
		return "beneath"
	default:
		return fmt.Sprintf("world(%d)", int(w))
	}
}

// Toggle returns the other world layer.
func (w WorldMode) Toggle() WorldMode {
	if w == WorldSurface {
		return WorldBeneath
	}
	return WorldSurface
}

// ParseWorldMode converts a category name into a WorldMode.
func ParseWorldMode(s string) (WorldMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "surface":
		return WorldSurface, nil
	case "beneath":
		return WorldBeneath, nil
	default:
		return 0, fmt.Errorf("unknown world mode %q", s)
	}
}

// Player is the controllable character.
type Player struct {
	X, Y      float64
	W, H      float64
	WalkSpeed float64
	SwimSpeed float64
	VX, VY    float64
	OnGround  bool
	Mode      Mode
}

// Bounds returns the player's rectangle.
func (p *Player) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// MaxBattery is the full charge of the vehicle battery.
const MaxBattery = 100.0

// batteryEpsilon absorbs float drift so a battery drained in exact steps
// lands on zero instead of a tiny positive remainder.
const batteryEpsilon = 1e-9

// Vehicle is the boardable submarine.
type Vehicle struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Occupied  bool
	LightOn   bool
	Battery   float64
	DrainRate float64
}

// Bounds returns the vehicle's rectangle.
func (v *Vehicle) Bounds() geom.Rect {
	return geom.Rect{X: v.X, Y: v.Y, W: v.W, H: v.H}
}

// Center returns the midpoint of the vehicle.
func (v *Vehicle) Center() geom.Vec {
	return v.Bounds().Center()
}

// SetLight switches the light. Turning it on is refused with an empty
// battery. It returns whether the light state changed.
func (v *Vehicle) SetLight(on bool) bool {
	if on && v.Battery <= 0 {
		return false
	}
	if v.LightOn == on {
		return false
	}
	v.LightOn = on
	return true
}

// Drain applies one tick of light drain. It reports true on the tick the
// battery runs out, which also forces the light off.
func (v *Vehicle) Drain() bool {
	if !v.LightOn {
		return false
	}
	v.Battery -= v.DrainRate
	if v.Battery <= batteryEpsilon {
		v.Battery = 0
		v.LightOn = false
		return true
	}
	if v.Battery > MaxBattery {
		v.Battery = MaxBattery
	}
	return false
}

// Recharge adds charge, capped at MaxBattery.
func (v *Vehicle) Recharge(amount float64) {
	if amount <= 0 {
		return
	}
	v.Battery += amount
	if v.Battery > MaxBattery {
		v.Battery = MaxBattery
	}
}

// normalize enforces the battery invariants on freshly loaded state.
func (v *Vehicle) normalize() {
	if v.Battery < 0 {
		v.Battery = 0
	}
	if v.Battery > MaxBattery {
		v.Battery = MaxBattery
	}
	if v.Battery == 0 {
		v.LightOn = false
	}
}

// Collectible is a fragment lying in one world layer.
type Collectible struct {
	ID        string
	X, Y      float64 // center
	Size      float64
	Category  WorldMode
	Value     int
	Collected bool
}

// Center returns the collectible's position.
func (c *Collectible) Center() geom.Vec {
	return geom.Vec{c.X, c.Y}
}

// collect marks the collectible taken. Only the first call returns true.
func (c *Collectible) collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}

// Artifact is a sea-floor object that opens the node-matching minigame when
// the piloted vehicle comes close.
type Artifact struct {
	ID     string
	X, Y   float64 // center
	Pairs  int
	Value  int
	Solved bool

	// set on cancel, cleared once the vehicle leaves the trigger radius
	dismissed bool
}

// Center returns the artifact's position.
func (a *Artifact) Center() geom.Vec {
	return geom.Vec{a.X, a.Y}
}
