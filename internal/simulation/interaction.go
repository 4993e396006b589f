package simulation

import (
	"chosenoffset.com/undertow/internal/core/geom"
)

// ArtifactCategory is the inventory category solved artifacts are filed under.
const ArtifactCategory = "artifact"

// Interact handles the interaction input. On foot or swimming it boards the
// vehicle when in range; while piloting it exits. It reports whether the
// mode changed.
func (s *Simulation) Interact() bool {
	switch s.Player.Mode {
	case ModeOnFoot, ModeSwimming:
		return s.board()
	case ModePiloting:
		s.exitVehicle()
		return true
	default:
		return false
	}
}

// InBoardingRange reports whether the player could board right now.
func (s *Simulation) InBoardingRange() bool {
	if s.Vehicle.Occupied {
		return false
	}
	return geom.Within(s.Player.Bounds().Center(), s.Vehicle.Center(), s.Tuning.BoardRadius)
}

func (s *Simulation) board() bool {
	if !s.InBoardingRange() {
		return false
	}
	s.Vehicle.Occupied = true
	s.slavePlayer()
	s.setMode(ModePiloting, EventBoarded)
	return true
}

func (s *Simulation) exitVehicle() {
	p := &s.Player
	v := &s.Vehicle
	w := s.World

	v.Occupied = false
	p.Y = v.Y
	p.X = v.X - p.W - s.Tuning.ExitGap
	// Exit to the left unless that would put the player inside the shore
	// below the waterline; then use the right side.
	if p.X < 0 || (p.X <= w.ShoreX && p.Y > w.OceanTop+p.H/2) {
		p.X = v.X + v.W + s.Tuning.ExitGap
	}
	p.VX, p.VY = 0, 0
	p.OnGround = false
	s.clampPlayer()

	s.setMode(s.Classify(p.X, p.Y), EventExited)
}

// resolveProximity collects fragments in range and opens artifacts the
// piloted vehicle reaches.
func (s *Simulation) resolveProximity() {
	if s.Player.Mode == ModeMinigame {
		return
	}

	anchor := s.Anchor()
	for _, c := range s.Collectibles {
		if c.Collected || c.Category != s.WorldMode {
			continue
		}
		if geom.Within(anchor, c.Center(), s.Tuning.CollectRadius) {
			s.collect(c)
		}
	}

	if s.Player.Mode != ModePiloting {
		return
	}
	for _, a := range s.Artifacts {
		if a.Solved {
			continue
		}
		inRange := geom.Within(anchor, a.Center(), s.Tuning.ArtifactRadius)
		if a.dismissed {
			if !inRange {
				a.dismissed = false
			}
			continue
		}
		if inRange {
			s.startMinigame(a)
			return
		}
	}
}

// collect takes a collectible if it is still available. A second call never
// changes state or score.
func (s *Simulation) collect(c *Collectible) bool {
	if !c.collect() {
		return false
	}
	s.Inventory.Record(c.ID, c.Category.String(), c.Value)
	s.emit(Event{Kind: EventCollected, ID: c.ID, Value: c.Value})
	return true
}

// CollectedCount returns how many collectibles have been taken.
func (s *Simulation) CollectedCount() int {
	n := 0
	for _, c := range s.Collectibles {
		if c.Collected {
			n++
		}
	}
	return n
}

// SolvedCount returns how many artifacts have been decoded.
func (s *Simulation) SolvedCount() int {
	n := 0
	for _, a := range s.Artifacts {
		if a.Solved {
			n++
		}
	}
	return n
}
