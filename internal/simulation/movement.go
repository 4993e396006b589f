package simulation

import (
	"math"

	"chosenoffset.com/undertow/internal/core/geom"
)

// waterlineMargin keeps a swimmer's anchor strictly below the ocean top so
// surfacing does not flip the mode back and forth every tick.
const waterlineMargin = 1.0

func (s *Simulation) move(in Frame) {
	switch s.Player.Mode {
	case ModeOnFoot:
		s.moveOnFoot(in)
	case ModeSwimming:
		s.moveSwimming(in)
	case ModePiloting:
		s.moveVehicle(in)
	case ModeMinigame:
		// frozen until the minigame resolves
	}
	s.clampPlayer()
}

func (s *Simulation) moveOnFoot(in Frame) {
	p := &s.Player
	t := s.Tuning

	dx, _ := in.Axis()
	p.VX = dx * p.WalkSpeed

	if in.Held(ActionUp) && p.OnGround {
		p.VY = -t.JumpSpeed
		p.OnGround = false
	}
	p.VY = math.Min(p.VY+t.Gravity, t.MaxFallSpeed)

	p.X += p.VX
	p.Y += p.VY
	s.groundClamp()
}

func (s *Simulation) groundClamp() {
	p := &s.Player
	floor := s.World.FloorAt(p.X)
	if p.Y+p.H >= floor {
		p.Y = floor - p.H
		p.VY = 0
		p.OnGround = true
	} else {
		p.OnGround = false
	}
}

func (s *Simulation) moveSwimming(in Frame) {
	p := &s.Player
	w := s.World

	dx, dy := in.Axis()
	p.VX = dx * p.SwimSpeed
	p.VY = 0

	p.X += p.VX
	p.Y += dy*p.SwimSpeed + s.Tuning.SwimSink

	// Below the waterline the shore is a wall; at the surface the swimmer
	// can climb out onto it.
	minX := w.ShoreX + waterlineMargin
	if p.Y <= w.OceanTop+p.H/2 {
		minX = 0
	}
	p.X = geom.Clamp(p.X, minX, w.Width-p.W)
	p.Y = geom.Clamp(p.Y, w.OceanTop+waterlineMargin, w.OceanBottom-p.H)
	p.OnGround = p.Y+p.H >= w.OceanBottom
}

func (s *Simulation) moveVehicle(in Frame) {
	v := &s.Vehicle
	dx, dy := in.Axis()
	v.X += dx * v.Speed
	v.Y += dy * v.Speed
	s.clampVehicle()
	s.slavePlayer()
}

// slavePlayer pins the player to the center of the vehicle.
func (s *Simulation) slavePlayer() {
	p := &s.Player
	v := &s.Vehicle
	p.X = v.X + (v.W-p.W)/2
	p.Y = v.Y + (v.H-p.H)/2
	p.VX, p.VY = 0, 0
	p.OnGround = false
}

func (s *Simulation) clampVehicle() {
	v := &s.Vehicle
	w := s.World
	v.X = geom.Clamp(v.X, w.ShoreX, w.Width-v.W)
	v.Y = geom.Clamp(v.Y, w.VehicleMinY, w.VehicleMaxY)
}

func (s *Simulation) clampPlayer() {
	p := &s.Player
	b := s.World.Bounds()
	p.X = geom.Clamp(p.X, b.X, b.Right()-p.W)
	maxY := b.Bottom() - p.H
	if p.Y >= maxY {
		p.Y = maxY
		if p.VY > 0 {
			p.VY = 0
		}
		if p.Mode == ModeOnFoot {
			p.OnGround = true
		}
	}
	if p.Y < b.Y {
		p.Y = b.Y
	}
}
