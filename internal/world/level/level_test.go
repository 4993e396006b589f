package level

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chosenoffset.com/undertow/internal/simulation"
)

const minimalLevel = `
name: Test Bay
world:
  width: 1000
  ground_y: 200
  shore_x: 300
  ocean_top: 200
  ocean_bottom: 800
  vehicle_min_y: 180
  vehicle_max_y: 760
player_spawn: {x: 50, y: 164}
vehicle: {x: 320, y: 180}
collectibles:
  - {id: a, x: 100, y: 190, category: surface, value: 3}
  - {x: 500, y: 400, category: Beneath, value: 7}
artifacts:
  - {x: 600, y: 700, pairs: 2, value: 50}
`

func TestParseMinimalLevel(t *testing.T) {
	f, err := Parse([]byte(minimalLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if f.Name != "Test Bay" {
		t.Errorf("Expected name 'Test Bay', got '%s'", f.Name)
	}
	if len(f.Collectibles) != 2 {
		t.Fatalf("Expected 2 collectibles, got %d", len(f.Collectibles))
	}
	if f.Collectibles[0].ID != "a" {
		t.Errorf("Expected explicit id to be kept, got '%s'", f.Collectibles[0].ID)
	}
	if _, err := uuid.Parse(f.Collectibles[1].ID); err != nil {
		t.Errorf("Expected generated uuid, got '%s'", f.Collectibles[1].ID)
	}
	if _, err := uuid.Parse(f.Artifacts[0].ID); err != nil {
		t.Errorf("Expected generated artifact uuid, got '%s'", f.Artifacts[0].ID)
	}
}

func TestSetupConvertsEntries(t *testing.T) {
	f, err := Parse([]byte(minimalLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	setup := f.Setup(simulation.DefaultTuning(), 800, 600, 9)

	if setup.World.ShoreX != 300 || setup.World.OceanBottom != 800 {
		t.Errorf("Unexpected world geometry: %+v", setup.World)
	}
	if setup.Battery != simulation.MaxBattery {
		t.Errorf("Expected missing battery to default to full, got %v", setup.Battery)
	}
	if setup.Collectibles[1].Category != simulation.WorldBeneath {
		t.Errorf("Expected beneath category, got %v", setup.Collectibles[1].Category)
	}
	if setup.Artifacts[0].Pairs != 2 {
		t.Errorf("Expected 2 pairs, got %d", setup.Artifacts[0].Pairs)
	}
	if setup.ViewWidth != 800 || setup.Seed != 9 {
		t.Errorf("Viewport or seed not carried: %+v", setup)
	}

	sim := simulation.New(setup, zerolog.Nop())
	if sim.Player.Mode != simulation.ModeOnFoot {
		t.Errorf("Expected spawn on foot, got %v", sim.Player.Mode)
	}
}

func TestValidateRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"zero width", [2]string{"width: 1000", "width: 0"}},
		{"inverted ocean", [2]string{"ocean_top: 200", "ocean_top: 900"}},
		{"inverted vehicle band", [2]string{"vehicle_min_y: 180", "vehicle_min_y: 900"}},
		{"shore outside world", [2]string{"shore_x: 300", "shore_x: 1200"}},
		{"unknown category", [2]string{"category: surface", "category: sky"}},
		{"duplicate id", [2]string{"{x: 500", "{id: a, x: 500"}},
		{"too many pairs", [2]string{"pairs: 2", "pairs: 40"}},
		{"battery overflow", [2]string{"vehicle: {x: 320, y: 180}", "vehicle: {x: 320, y: 180, battery: 120}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(minimalLevel, tt.replace[0], tt.replace[1], 1)
			_, err := Parse([]byte(data))
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Expected ErrInvalidLevel, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("world: [oops"))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if errors.Is(err, ErrInvalidLevel) {
		t.Error("Syntax errors should not be reported as validation errors")
	}
}

func TestDefaultLevelIsValid(t *testing.T) {
	f, err := Default()
	if err != nil {
		t.Fatalf("Default level failed to load: %v", err)
	}
	if len(f.Artifacts) == 0 {
		t.Error("Expected the default level to contain an artifact")
	}
	if f.WorldGeometry() != simulation.DefaultWorld() {
		t.Errorf("Default level geometry %+v differs from DefaultWorld", f.WorldGeometry())
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("bay.yaml", minimalLevel)
	write("unnamed.yml", strings.Replace(minimalLevel, "name: Test Bay", "", 1))
	write("broken.yaml", "world: [")
	write("notes.txt", "not a level")
	write(".hidden.yaml", minimalLevel)
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	levels, err := ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d: %+v", len(levels), levels)
	}
	if levels[0].Name != "Test Bay" || levels[1].Name != "unnamed" {
		t.Errorf("Unexpected names: %+v", levels)
	}
	if filepath.Base(levels[0].Path) != "bay.yaml" {
		t.Errorf("Unexpected path %s", levels[0].Path)
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	if _, err := ScanDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestBundledLevelsLoad(t *testing.T) {
	levels, err := ScanDirectory(filepath.Join("..", "..", "..", "levels"))
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(levels) != 2 {
		t.Errorf("Expected 2 bundled levels, got %d", len(levels))
	}
}
