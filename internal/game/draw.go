package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/undertow/internal/render"
	"chosenoffset.com/undertow/internal/render/lighting"
	"chosenoffset.com/undertow/internal/simulation"
)

var (
	skyColor      = color.RGBA{150, 200, 235, 255}
	sandColor     = color.RGBA{194, 170, 120, 255}
	surfaceColor  = color.RGBA{40, 120, 170, 255}
	deepColor     = color.RGBA{4, 16, 40, 255}
	floorColor    = color.RGBA{60, 50, 40, 255}
	playerColor   = color.RGBA{240, 110, 80, 255}
	vehicleColor  = color.RGBA{240, 200, 60, 255}
	windowColor   = color.RGBA{120, 220, 255, 255}
	artifactColor = color.RGBA{90, 230, 220, 255}
	solvedColor   = color.RGBA{70, 90, 90, 255}

	// fragment colors per world layer
	fragmentColors = map[simulation.WorldMode]color.RGBA{
		simulation.WorldSurface: {255, 215, 80, 255},
		simulation.WorldBeneath: {190, 120, 255, 255},
	}

	// one color per minigame pair
	pairColors = [simulation.MaxMinigamePairs]color.RGBA{
		{240, 90, 90, 255},
		{90, 200, 90, 255},
		{90, 140, 240, 255},
		{240, 200, 70, 255},
		{200, 100, 230, 255},
		{80, 220, 220, 255},
		{250, 150, 60, 255},
		{230, 230, 230, 255},
	}
)

// oceanBands is the number of strips the depth gradient is drawn with.
const oceanBands = 16

// lightSegments is the triangle count of each light fan.
const lightSegments = 24

// Draw draws the game screen.
func (g *Game) Draw(screen render.Image) {
	if g.WhiteImg == nil {
		g.WhiteImg = g.Renderer.NewImage(3, 3)
		g.WhiteImg.Fill(color.White)
	}

	screen.Fill(skyColor)
	g.drawWorld(screen)
	g.drawCollectibles(screen)
	g.drawArtifacts(screen)
	g.drawVehicle(screen)
	g.drawPlayer(screen)
	g.drawLighting(screen)
	g.drawMinigame(screen)
	g.GameHUD.Draw(screen, g.Renderer)
	g.drawUI(screen)
}

// toScreen converts world coordinates to screen coordinates.
func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(x - g.Camera.X), float32(y - g.Camera.Y)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func (g *Game) drawWorld(screen render.Image) {
	w := g.Sim.World

	// Shore
	sx, sy := g.toScreen(0, w.GroundY)
	g.Renderer.FillRect(screen, sx, sy, float32(w.ShoreX), float32(w.OceanBottom-w.GroundY), sandColor)

	// Ocean, darker with depth
	span := w.OceanBottom - w.OceanTop
	band := span / oceanBands
	for i := 0; i < oceanBands; i++ {
		x, y := g.toScreen(w.ShoreX, w.OceanTop+float64(i)*band)
		clr := lerpColor(surfaceColor, deepColor, float64(i)/float64(oceanBands-1))
		g.Renderer.FillRect(screen, x, y, float32(w.Width-w.ShoreX), float32(band)+1, clr)
	}

	// Surface line and sea floor
	x0, y0 := g.toScreen(w.ShoreX, w.OceanTop)
	x1, _ := g.toScreen(w.Width, w.OceanTop)
	g.Renderer.StrokeLine(screen, x0, y0, x1, y0, 2, color.RGBA{200, 235, 255, 255})
	fx, fy := g.toScreen(w.ShoreX, w.OceanBottom-6)
	g.Renderer.FillRect(screen, fx, fy, float32(w.Width-w.ShoreX), 6, floorColor)
}

func (g *Game) drawCollectibles(screen render.Image) {
	clr := fragmentColors[g.Sim.WorldMode]
	for _, c := range g.Sim.Collectibles {
		if c.Collected || c.Category != g.Sim.WorldMode {
			continue
		}
		x, y := g.toScreen(c.X, c.Y)
		g.Renderer.FillCircle(screen, x, y, float32(c.Size/2), clr)
	}
}

func (g *Game) drawArtifacts(screen render.Image) {
	for _, a := range g.Sim.Artifacts {
		x, y := g.toScreen(a.X, a.Y)
		if a.Solved {
			g.Renderer.FillCircle(screen, x, y, 10, solvedColor)
			continue
		}
		g.Renderer.FillCircle(screen, x, y, 12, artifactColor)
		g.Renderer.StrokeCircle(screen, x, y, float32(g.Sim.Tuning.ArtifactRadius), 1, color.NRGBA{90, 230, 220, 80})
	}
}

func (g *Game) drawVehicle(screen render.Image) {
	v := &g.Sim.Vehicle
	x, y := g.toScreen(v.X, v.Y)
	g.Renderer.FillRect(screen, x, y, float32(v.W), float32(v.H), vehicleColor)

	// Porthole on the side the headlamp faces
	px := x + float32(v.W)*0.7
	if g.facing != 0 {
		px = x + float32(v.W)*0.3
	}
	g.Renderer.FillCircle(screen, px, y+float32(v.H)/2, float32(v.H)/4, windowColor)
}

// drawPlayer draws the player unless they are inside the vehicle.
func (g *Game) drawPlayer(screen render.Image) {
	if g.Sim.Vehicle.Occupied {
		return
	}
	p := &g.Sim.Player
	x, y := g.toScreen(p.X, p.Y)
	g.Renderer.FillRect(screen, x, y, float32(p.W), float32(p.H), playerColor)
}

// drawLighting darkens the scene by depth and adds the light fans on top.
func (g *Game) drawLighting(screen render.Image) {
	dark := g.LightingManager.Darkness()
	if dark > 0.01 {
		g.Renderer.FillRect(screen, 0, 0, float32(g.ScreenWidth), float32(g.ScreenHeight), color.NRGBA{0, 0, 10, uint8(dark * 255)})
	}

	opts := &render.DrawTrianglesOptions{AntiAlias: true, Additive: true}
	for _, l := range g.LightingManager.GetAllLights() {
		// fade lights in as it gets darker
		l.Intensity *= dark
		if l.Intensity <= 0 {
			continue
		}
		vertices, indices := lighting.Triangles(l, g.Camera.X, g.Camera.Y, lightSegments)
		screen.DrawTriangles(vertices, indices, g.WhiteImg, opts)
	}
}

// drawMinigame draws the node ring over a dimmed screen.
func (g *Game) drawMinigame(screen render.Image) {
	m := g.Sim.Minigame
	if m == nil {
		return
	}
	g.Renderer.FillRect(screen, 0, 0, float32(g.ScreenWidth), float32(g.ScreenHeight), color.RGBA{0, 0, 0, 170})

	// Lines between matched partners
	for i, a := range m.Nodes {
		if !a.Matched {
			continue
		}
		for _, b := range m.Nodes[i+1:] {
			if b.Pair == a.Pair {
				g.Renderer.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, pairColors[a.Pair%len(pairColors)])
			}
		}
	}

	r := float32(m.NodeRadius)
	for i, n := range m.Nodes {
		c := pairColors[n.Pair%len(pairColors)]
		var clr color.Color = c
		if n.Matched {
			clr = color.NRGBA{c.R, c.G, c.B, 110}
		}
		g.Renderer.FillCircle(screen, float32(n.X), float32(n.Y), r, clr)
		if i == m.Selected() {
			g.Renderer.StrokeCircle(screen, float32(n.X), float32(n.Y), r+5, 3, color.White)
		}
	}

	title := fmt.Sprintf("Decoding %s: %d pair(s) left", m.ArtifactID, m.Remaining())
	tw, _ := g.Renderer.MeasureText(title, 1.5)
	g.Renderer.DrawText(screen, title, (g.ScreenWidth-tw)/2, 40, color.RGBA{220, 255, 250, 255}, 1.5)
}

// drawUI draws the fading on-screen messages.
func (g *Game) drawUI(screen render.Image) {
	y := float64(g.ScreenHeight) - 30 - 20*float64(len(g.Messages))
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, int(y), color.NRGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}
