package lighting

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmbientFadesWithDepth(t *testing.T) {
	m := NewManager()
	assert.Equal(t, SurfaceAmbient, m.GetAmbientLight())

	m.SetAmbientForDepth(1)
	assert.InDelta(t, DeepAmbient, m.GetAmbientLight(), 1e-9)

	m.SetAmbientForDepth(0.5)
	assert.InDelta(t, (SurfaceAmbient+DeepAmbient)/2, m.GetAmbientLight(), 1e-9)

	m.SetAmbientForDepth(7)
	assert.InDelta(t, DeepAmbient, m.GetAmbientLight(), 1e-9)
	assert.InDelta(t, 1-DeepAmbient, m.Darkness(), 1e-9)
}

func TestVehicleLightOnlyListedWhenOn(t *testing.T) {
	m := NewManager()
	m.SetVehicleLight(LightSource{Radius: 200, Intensity: 0.8, Spread: math.Pi / 3})
	assert.Empty(t, m.GetAllLights())

	m.EnableVehicleLight(true)
	m.UpdateVehicleLight(10, 20, math.Pi)
	lights := m.GetAllLights()
	require.Len(t, lights, 1)
	assert.Equal(t, 10.0, lights[0].X)
	assert.Equal(t, math.Pi, lights[0].Angle)
}

func TestStaticLights(t *testing.T) {
	m := NewManager()
	m.AddStaticLight("b", LightSource{X: 2})
	m.AddStaticLight("a", LightSource{X: 1})
	m.EnableVehicleLight(true)
	m.SetVehicleLight(LightSource{X: 99})

	lights := m.GetAllLights()
	require.Len(t, lights, 3)
	assert.Equal(t, []float64{99, 1, 2}, []float64{lights[0].X, lights[1].X, lights[2].X})

	m.RemoveStaticLight("a")
	assert.Len(t, m.GetAllLights(), 2)
	m.ClearStaticLights()
	assert.Len(t, m.GetAllLights(), 1)
}

func TestTrianglesFan(t *testing.T) {
	l := LightSource{X: 100, Y: 50, Radius: 10, Intensity: 0.5, Color: color.NRGBA{255, 255, 255, 255}, Spread: math.Pi / 2}
	vertices, indices := Triangles(l, 100, 50, 8)

	require.Len(t, vertices, 10)
	require.Len(t, indices, 24)
	assert.Equal(t, float32(0), vertices[0].DstX)
	assert.Equal(t, float32(0.5), vertices[0].ColorA)
	for _, v := range vertices[1:] {
		d := math.Hypot(float64(v.DstX), float64(v.DstY))
		assert.InDelta(t, 10, d, 1e-3)
		assert.Zero(t, v.ColorA)
	}
	assert.Equal(t, uint16(9), indices[len(indices)-1])
}
