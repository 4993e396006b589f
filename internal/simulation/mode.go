package simulation

import (
	"chosenoffset.com/undertow/internal/core/geom"
)

// Classify returns the locomotion mode implied by a top-left position.
func (s *Simulation) Classify(x, y float64) Mode {
	if s.World.IsWater(x, y) {
		return ModeSwimming
	}
	return ModeOnFoot
}

// updateLocomotion re-derives OnFoot/Swimming from position. The mode field
// is only written when the derived mode differs.
func (s *Simulation) updateLocomotion() {
	p := &s.Player
	if p.Mode != ModeOnFoot && p.Mode != ModeSwimming {
		return
	}

	want := s.Classify(p.X, p.Y)
	if want == p.Mode {
		return
	}

	kind := EventLeftWater
	if want == ModeSwimming {
		kind = EventEnteredWater
		p.VY = 0
		p.OnGround = false
	}
	s.setMode(want, kind)
}

func (s *Simulation) setMode(to Mode, kind EventKind) {
	s.transition(to, Event{Kind: kind})
}

// transition writes the mode field and emits ev with From/To filled in.
// Landing on foot snaps the player onto the floor beneath them.
func (s *Simulation) transition(to Mode, ev Event) {
	ev.From = s.Player.Mode
	ev.To = to
	s.Player.Mode = to
	if to == ModeOnFoot {
		s.groundClamp()
	}
	s.emit(ev)
}

// updatePressure accumulates pressure while swimming, scaled by depth, and
// bleeds it off otherwise. A full gauge forces the player back to shore.
func (s *Simulation) updatePressure() {
	t := s.Tuning
	if s.Player.Mode == ModeSwimming {
		span := s.World.OceanBottom - s.World.OceanTop
		factor := 0.0
		if span > 0 {
			factor = s.World.DepthOf(s.Player.Y) / span
		}
		s.Pressure += t.PressureRate * factor
	} else {
		s.Pressure -= t.PressureRecovery
	}
	s.Pressure = geom.Clamp(s.Pressure, 0, t.PressureMax)

	if s.Player.Mode == ModeSwimming && t.PressureMax > 0 && s.Pressure >= t.PressureMax {
		s.blackout()
	}
}

func (s *Simulation) blackout() {
	p := &s.Player
	p.X, p.Y = s.spawn.X(), s.spawn.Y()
	p.VX, p.VY = 0, 0
	p.OnGround = false
	s.clampPlayer()
	s.Pressure = 0
	s.setMode(s.Classify(p.X, p.Y), EventPressureBlackout)
}
