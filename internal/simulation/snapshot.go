package simulation

// Snapshot is a read-only copy of the state the HUD and the telemetry feed
// display.
type Snapshot struct {
	Tick      uint64       `json:"tick"`
	Mode      string       `json:"mode"`
	World     string       `json:"world"`
	Player    BodyState    `json:"player"`
	Vehicle   VehicleState `json:"vehicle"`
	Depth     float64      `json:"depth"`
	Pressure  float64      `json:"pressure"`
	MaxPress  float64      `json:"pressure_max"`
	Score     int          `json:"score"`
	Collected int          `json:"collected"`
	Total     int          `json:"total"`
	Solved    int          `json:"artifacts_solved"`
	Artifacts int          `json:"artifacts_total"`
	CanBoard  bool         `json:"can_board"`
}

// BodyState is a position and velocity.
type BodyState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// VehicleState is the externally visible vehicle state.
type VehicleState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Occupied bool    `json:"occupied"`
	LightOn  bool    `json:"light_on"`
	Battery  float64 `json:"battery"`
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:  s.tick,
		Mode:  s.Player.Mode.String(),
		World: s.WorldMode.String(),
		Player: BodyState{
			X:  s.Player.X,
			Y:  s.Player.Y,
			VX: s.Player.VX,
			VY: s.Player.VY,
		},
		Vehicle: VehicleState{
			X:        s.Vehicle.X,
			Y:        s.Vehicle.Y,
			Occupied: s.Vehicle.Occupied,
			LightOn:  s.Vehicle.LightOn,
			Battery:  s.Vehicle.Battery,
		},
		Depth:     s.Depth(),
		Pressure:  s.Pressure,
		MaxPress:  s.Tuning.PressureMax,
		Score:     s.Score(),
		Collected: s.CollectedCount(),
		Total:     len(s.Collectibles),
		Solved:    s.SolvedCount(),
		Artifacts: len(s.Artifacts),
		CanBoard:  s.Player.Mode != ModePiloting && s.Player.Mode != ModeMinigame && s.InBoardingRange(),
	}
}
