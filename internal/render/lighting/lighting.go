// Package lighting tracks ambient light by depth and the light sources that
// cut through it.
package lighting

import (
	"image/color"
	"math"
	"sort"

	"chosenoffset.com/undertow/internal/render"
)

// Ambient light at the surface and at the deepest point.
const (
	SurfaceAmbient = 1.0
	DeepAmbient    = 0.08
)

// LightSource represents a single light source in the game world
type LightSource struct {
	X         float64     // World X position (in pixels)
	Y         float64     // World Y position (in pixels)
	Radius    float64     // Light radius (in pixels)
	Intensity float64     // Light intensity (0.0 to 1.0)
	Color     color.NRGBA // Light color

	// Cone lights point along Angle (radians) and cover Spread radians.
	// Spread 0 means an omnidirectional glow.
	Angle  float64
	Spread float64
}

// Manager handles all light sources in the game
type Manager struct {
	ambientLight   float64 // 0.0 = pitch black, 1.0 = fully lit
	vehicleLight   *LightSource
	vehicleLightOn bool
	staticLights   map[string]*LightSource
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		ambientLight: SurfaceAmbient,
		staticLights: make(map[string]*LightSource),
	}
}

// SetAmbientLight sets the global ambient light level
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = math.Max(0, math.Min(1, level))
}

// GetAmbientLight returns the current ambient light level
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// SetAmbientForDepth fades ambient light linearly from the surface to the
// sea floor. fraction is depth over total ocean depth.
func (m *Manager) SetAmbientForDepth(fraction float64) {
	fraction = math.Max(0, math.Min(1, fraction))
	m.SetAmbientLight(SurfaceAmbient - (SurfaceAmbient-DeepAmbient)*fraction)
}

// Darkness returns the alpha of the black overlay for the current ambient level.
func (m *Manager) Darkness() float64 {
	return 1 - m.ambientLight
}

// SetVehicleLight configures the vehicle's headlamp.
func (m *Manager) SetVehicleLight(light LightSource) {
	l := light
	m.vehicleLight = &l
}

// EnableVehicleLight turns the headlamp on or off
func (m *Manager) EnableVehicleLight(enabled bool) {
	m.vehicleLightOn = enabled
}

// IsVehicleLightOn returns whether the headlamp is currently on
func (m *Manager) IsVehicleLightOn() bool {
	return m.vehicleLightOn
}

// UpdateVehicleLight moves the headlamp and points it along angle.
func (m *Manager) UpdateVehicleLight(x, y, angle float64) {
	if m.vehicleLight != nil {
		m.vehicleLight.X = x
		m.vehicleLight.Y = y
		m.vehicleLight.Angle = angle
	}
}

// AddStaticLight adds or replaces a fixed glow keyed by id.
func (m *Manager) AddStaticLight(id string, light LightSource) {
	l := light
	m.staticLights[id] = &l
}

// RemoveStaticLight removes a fixed glow, e.g. once an artifact is decoded.
func (m *Manager) RemoveStaticLight(id string) {
	delete(m.staticLights, id)
}

// ClearStaticLights removes all fixed lights (called when loading a new level)
func (m *Manager) ClearStaticLights() {
	m.staticLights = make(map[string]*LightSource)
}

// GetAllLights returns all active light sources, the headlamp first and the
// rest in id order.
func (m *Manager) GetAllLights() []LightSource {
	lights := make([]LightSource, 0, len(m.staticLights)+1)
	if m.vehicleLightOn && m.vehicleLight != nil {
		lights = append(lights, *m.vehicleLight)
	}

	ids := make([]string, 0, len(m.staticLights))
	for id := range m.staticLights {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		lights = append(lights, *m.staticLights[id])
	}
	return lights
}

// Triangles builds a fan for a light, offset by (-camX, -camY) into screen
// space. The center is fully tinted and the rim is transparent.
func Triangles(l LightSource, camX, camY float64, segments int) ([]render.Vertex, []uint16) {
	if segments < 3 {
		segments = 3
	}
	start, sweep := 0.0, 2*math.Pi
	if l.Spread > 0 {
		start = l.Angle - l.Spread/2
		sweep = l.Spread
	}

	r := float32(l.Color.R) / 255
	g := float32(l.Color.G) / 255
	b := float32(l.Color.B) / 255
	a := float32(l.Intensity)

	cx := float32(l.X - camX)
	cy := float32(l.Y - camY)
	vertices := make([]render.Vertex, 0, segments+2)
	vertices = append(vertices, render.Vertex{
		DstX: cx, DstY: cy, SrcX: 1, SrcY: 1,
		ColorR: r * a, ColorG: g * a, ColorB: b * a, ColorA: a,
	})
	for i := 0; i <= segments; i++ {
		theta := start + sweep*float64(i)/float64(segments)
		vertices = append(vertices, render.Vertex{
			DstX: cx + float32(l.Radius*math.Cos(theta)),
			DstY: cy + float32(l.Radius*math.Sin(theta)),
			SrcX: 1, SrcY: 1,
		})
	}

	indices := make([]uint16, 0, segments*3)
	for i := 1; i <= segments; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return vertices, indices
}
