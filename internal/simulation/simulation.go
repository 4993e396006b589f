package simulation

import (
	"math/rand"

	"github.com/rs/zerolog"

	"chosenoffset.com/undertow/internal/core/geom"
	"chosenoffset.com/undertow/internal/inventory"
)

// Default entity sizes.
const (
	DefaultPlayerWidth   = 20.0
	DefaultPlayerHeight  = 36.0
	DefaultVehicleWidth  = 100.0
	DefaultVehicleHeight = 40.0
	DefaultFragmentSize  = 14.0
)

// Setup is everything needed to start a run.
type Setup struct {
	World        World
	Tuning       Tuning
	PlayerSpawn  geom.Vec
	VehicleSpawn geom.Vec
	Battery      float64
	LightOn      bool
	Collectibles []Collectible
	Artifacts    []Artifact

	// Viewport size, used to lay out the minigame in pointer coordinates
	ViewWidth  float64
	ViewHeight float64

	Seed int64
}

// Simulation is the complete mutable game state. It is owned by a single
// loop driver and is not safe for concurrent use.
type Simulation struct {
	World  World
	Tuning Tuning

	Player       Player
	Vehicle      Vehicle
	Collectibles []*Collectible
	Artifacts    []*Artifact

	WorldMode WorldMode
	Pressure  float64
	Inventory *inventory.Inventory

	// Minigame is non-nil exactly while Player.Mode is ModeMinigame
	Minigame *Minigame

	ViewWidth  float64
	ViewHeight float64

	spawn    geom.Vec
	artifact *Artifact
	tick     uint64
	rng      *rand.Rand
	events   []Event
	log      zerolog.Logger
}

// New builds a simulation from a setup.
func New(setup Setup, log zerolog.Logger) *Simulation {
	t := setup.Tuning
	s := &Simulation{
		World:      setup.World,
		Tuning:     t,
		Inventory:  inventory.New(),
		ViewWidth:  setup.ViewWidth,
		ViewHeight: setup.ViewHeight,
		spawn:      setup.PlayerSpawn,
		rng:        rand.New(rand.NewSource(setup.Seed)),
		log:        log.With().Str("component", "simulation").Logger(),
	}

	s.Player = Player{
		X:         setup.PlayerSpawn.X(),
		Y:         setup.PlayerSpawn.Y(),
		W:         DefaultPlayerWidth,
		H:         DefaultPlayerHeight,
		WalkSpeed: t.WalkSpeed,
		SwimSpeed: t.SwimSpeed,
	}
	s.clampPlayer()
	s.Player.Mode = s.Classify(s.Player.X, s.Player.Y)

	s.Vehicle = Vehicle{
		X:         setup.VehicleSpawn.X(),
		Y:         setup.VehicleSpawn.Y(),
		W:         DefaultVehicleWidth,
		H:         DefaultVehicleHeight,
		Speed:     t.VehicleSpeed,
		LightOn:   setup.LightOn,
		Battery:   setup.Battery,
		DrainRate: t.DrainRate,
	}
	s.Vehicle.normalize()
	s.clampVehicle()

	for i := range setup.Collectibles {
		c := setup.Collectibles[i]
		if c.Size <= 0 {
			c.Size = DefaultFragmentSize
		}
		s.Collectibles = append(s.Collectibles, &c)
	}
	for i := range setup.Artifacts {
		a := setup.Artifacts[i]
		s.Artifacts = append(s.Artifacts, &a)
	}

	return s
}

// Tick returns the number of steps taken so far.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Score returns the total value recovered.
func (s *Simulation) Score() int {
	return s.Inventory.Score()
}

// Step advances the simulation by exactly one tick.
func (s *Simulation) Step(in Frame) {
	s.tick++

	s.handleActions(in)
	s.move(in)
	s.updateLocomotion()
	s.updateBattery()
	s.updatePressure()
	s.resolveProximity()
}

// Events returns the events emitted since the last call and clears them.
func (s *Simulation) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Anchor returns the point used for proximity checks and depth: the vehicle
// center while aboard, otherwise the player center.
func (s *Simulation) Anchor() geom.Vec {
	if s.Vehicle.Occupied {
		return s.Vehicle.Center()
	}
	return s.Player.Bounds().Center()
}

// Depth returns the anchor's depth below the ocean top in meters.
func (s *Simulation) Depth() float64 {
	var y float64
	if s.Vehicle.Occupied {
		y = s.Vehicle.Y
	} else {
		y = s.Player.Y
	}
	d := s.World.DepthOf(y)
	if s.Tuning.PixelsPerMeter > 0 {
		d /= s.Tuning.PixelsPerMeter
	}
	return d
}

func (s *Simulation) handleActions(in Frame) {
	if s.Player.Mode == ModeMinigame {
		s.updateMinigame(in)
		return
	}

	if in.Pressed(ActionToggleWorld) {
		s.WorldMode = s.WorldMode.Toggle()
		s.emit(Event{Kind: EventWorldToggled, ID: s.WorldMode.String()})
	}

	if in.Pressed(ActionToggleLight) && s.Player.Mode == ModePiloting {
		if s.Vehicle.SetLight(!s.Vehicle.LightOn) {
			kind := EventLightOff
			if s.Vehicle.LightOn {
				kind = EventLightOn
			}
			s.emit(Event{Kind: kind})
		}
	}

	if in.Pressed(ActionInteract) {
		s.Interact()
	}
}

func (s *Simulation) updateBattery() {
	v := &s.Vehicle
	if v.LightOn {
		if v.Drain() {
			s.emit(Event{Kind: EventBatteryDepleted})
			s.emit(Event{Kind: EventLightOff})
		}
		return
	}
	if v.Y <= s.World.VehicleMinY {
		v.Recharge(s.Tuning.RechargeRate)
	}
}

func (s *Simulation) emit(ev Event) {
	ev.Tick = s.tick
	s.events = append(s.events, ev)
	s.log.Debug().
		Uint64("tick", ev.Tick).
		Str("event", ev.Kind.String()).
		Str("from", ev.From.String()).
		Str("to", ev.To.String()).
		Str("id", ev.ID).
		Int("value", ev.Value).
		Msg("simulation event")
}
