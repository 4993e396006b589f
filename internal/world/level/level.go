// Package level loads world layouts from YAML files.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/undertow/internal/core/geom"
	"chosenoffset.com/undertow/internal/simulation"
)

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

//go:embed default.yaml
var defaultLevel []byte

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldData is the geometry block of a level file.
type WorldData struct {
	Width       float64 `yaml:"width"`
	GroundY     float64 `yaml:"ground_y"`
	ShoreX      float64 `yaml:"shore_x"`
	OceanTop    float64 `yaml:"ocean_top"`
	OceanBottom float64 `yaml:"ocean_bottom"`
	VehicleMinY float64 `yaml:"vehicle_min_y"`
	VehicleMaxY float64 `yaml:"vehicle_max_y"`
}

// VehicleData is the vehicle's starting state.
type VehicleData struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Battery *float64 `yaml:"battery"`
	LightOn bool     `yaml:"light_on"`
}

// CollectibleData is one fragment entry.
type CollectibleData struct {
	ID       string  `yaml:"id"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Size     float64 `yaml:"size"`
	Category string  `yaml:"category"`
	Value    int     `yaml:"value"`
}

// ArtifactData is one artifact entry.
type ArtifactData struct {
	ID    string  `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Pairs int     `yaml:"pairs"`
	Value int     `yaml:"value"`
}

// File is the decoded contents of a level file.
type File struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	World        WorldData         `yaml:"world"`
	PlayerSpawn  Point             `yaml:"player_spawn"`
	Vehicle      VehicleData       `yaml:"vehicle"`
	Collectibles []CollectibleData `yaml:"collectibles"`
	Artifacts    []ArtifactData    `yaml:"artifacts"`
}

// Default returns the built-in level.
func Default() (*File, error) {
	return Parse(defaultLevel)
}

// Load reads and validates a level file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates level YAML. Entries without an ID get a
// random one.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	for i := range f.Collectibles {
		if f.Collectibles[i].ID == "" {
			f.Collectibles[i].ID = uuid.NewString()
		}
	}
	for i := range f.Artifacts {
		if f.Artifacts[i].ID == "" {
			f.Artifacts[i].ID = uuid.NewString()
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLevel, fmt.Sprintf(format, args...))
}

// Validate checks the world geometry and every entry.
func (f *File) Validate() error {
	w := f.World
	if w.Width <= 0 {
		return invalid("width must be positive, got %v", w.Width)
	}
	if w.OceanTop >= w.OceanBottom {
		return invalid("ocean_top %v must be above ocean_bottom %v", w.OceanTop, w.OceanBottom)
	}
	if w.ShoreX < 0 || w.ShoreX >= w.Width {
		return invalid("shore_x %v outside world width %v", w.ShoreX, w.Width)
	}
	if w.GroundY <= 0 || w.GroundY > w.OceanBottom {
		return invalid("ground_y %v outside (0, %v]", w.GroundY, w.OceanBottom)
	}
	if w.VehicleMinY > w.VehicleMaxY {
		return invalid("vehicle_min_y %v exceeds vehicle_max_y %v", w.VehicleMinY, w.VehicleMaxY)
	}
	if b := f.Vehicle.Battery; b != nil && (*b < 0 || *b > simulation.MaxBattery) {
		return invalid("battery %v outside [0, %v]", *b, simulation.MaxBattery)
	}

	seen := make(map[string]bool)
	for _, c := range f.Collectibles {
		if seen[c.ID] {
			return invalid("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if _, err := simulation.ParseWorldMode(c.Category); err != nil {
			return invalid("collectible %q: %v", c.ID, err)
		}
		if c.Value < 0 {
			return invalid("collectible %q has negative value", c.ID)
		}
	}
	for _, a := range f.Artifacts {
		if seen[a.ID] {
			return invalid("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Pairs < 1 || a.Pairs > simulation.MaxMinigamePairs {
			return invalid("artifact %q pairs %d outside [1, %d]", a.ID, a.Pairs, simulation.MaxMinigamePairs)
		}
	}
	return nil
}

// WorldGeometry converts the geometry block.
func (f *File) WorldGeometry() simulation.World {
	w := f.World
	return simulation.World{
		Width:       w.Width,
		GroundY:     w.GroundY,
		ShoreX:      w.ShoreX,
		OceanTop:    w.OceanTop,
		OceanBottom: w.OceanBottom,
		VehicleMinY: w.VehicleMinY,
		VehicleMaxY: w.VehicleMaxY,
	}
}

// Setup builds the starting state for a run of this level.
func (f *File) Setup(tuning simulation.Tuning, viewW, viewH float64, seed int64) simulation.Setup {
	battery := simulation.MaxBattery
	if f.Vehicle.Battery != nil {
		battery = *f.Vehicle.Battery
	}

	setup := simulation.Setup{
		World:        f.WorldGeometry(),
		Tuning:       tuning,
		PlayerSpawn:  geom.Vec{f.PlayerSpawn.X, f.PlayerSpawn.Y},
		VehicleSpawn: geom.Vec{f.Vehicle.X, f.Vehicle.Y},
		Battery:      battery,
		LightOn:      f.Vehicle.LightOn,
		ViewWidth:    viewW,
		ViewHeight:   viewH,
		Seed:         seed,
	}
	for _, c := range f.Collectibles {
		// category was checked by Validate
		cat, _ := simulation.ParseWorldMode(c.Category)
		setup.Collectibles = append(setup.Collectibles, simulation.Collectible{
			ID:       c.ID,
			X:        c.X,
			Y:        c.Y,
			Size:     c.Size,
			Category: cat,
			Value:    c.Value,
		})
	}
	for _, a := range f.Artifacts {
		setup.Artifacts = append(setup.Artifacts, simulation.Artifact{
			ID:    a.ID,
			X:     a.X,
			Y:     a.Y,
			Pairs: a.Pairs,
			Value: a.Value,
		})
	}
	return setup
}
