// Package hud draws the heads-up display: mode, depth, battery, pressure
// and recovery progress.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/undertow/internal/render"
	"chosenoffset.com/undertow/internal/simulation"
)

// Config defines what to display in the HUD
type Config struct {
	ShowBattery  bool
	ShowPressure bool
	ShowProgress bool
	ShowHints    bool
	Position     string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 // Background opacity (0-1)
}

// DefaultConfig returns the configuration used in play
func DefaultConfig() Config {
	return Config{
		ShowBattery:  true,
		ShowPressure: true,
		ShowProgress: true,
		ShowHints:    true,
		Position:     "top-left",
		Opacity:      0.7,
	}
}

// Line is one row of HUD text.
type Line struct {
	Text  string
	Color color.RGBA
}

var (
	labelColor = color.RGBA{200, 200, 200, 255}
	titleColor = color.RGBA{255, 255, 200, 255}
	hintColor  = color.RGBA{150, 200, 255, 255}
	dimColor   = color.RGBA{150, 150, 150, 255}
)

const (
	lineHeight = 16
	barHeight  = 12
)

// HUD manages the heads-up display
type HUD struct {
	config       Config
	screenWidth  int
	screenHeight int
	panelWidth   int
	snap         simulation.Snapshot
}

// New creates a new HUD with the given configuration
func New(config Config, screenWidth, screenHeight int) *HUD {
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   220,
	}
}

// SetSnapshot sets the state to display
func (h *HUD) SetSnapshot(s simulation.Snapshot) {
	h.snap = s
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

func modeLabel(mode string) string {
	switch mode {
	case "on_foot":
		return "On foot"
	case "swimming":
		return "Swimming"
	case "piloting":
		return "Piloting"
	case "minigame":
		return "Decoding artifact"
	default:
		return mode
	}
}

// Lines returns the text rows for a snapshot. Bars are drawn separately.
func Lines(s simulation.Snapshot, cfg Config) []Line {
	lines := []Line{
		{Text: modeLabel(s.Mode), Color: titleColor},
		{Text: fmt.Sprintf("Depth: %.1f m", s.Depth), Color: labelColor},
		{Text: "World: " + s.World, Color: labelColor},
	}

	if cfg.ShowProgress {
		lines = append(lines,
			Line{Text: fmt.Sprintf("Fragments: %d/%d", s.Collected, s.Total), Color: labelColor},
			Line{Text: fmt.Sprintf("Artifacts: %d/%d", s.Solved, s.Artifacts), Color: labelColor},
			Line{Text: fmt.Sprintf("Score: %d", s.Score), Color: labelColor},
		)
	}

	if cfg.ShowHints {
		switch {
		case s.Mode == "minigame":
			lines = append(lines, Line{Text: "Click pairs / Esc: leave", Color: hintColor})
		case s.Mode == "piloting":
			lines = append(lines, Line{Text: "E: exit  L: light", Color: hintColor})
		case s.CanBoard:
			lines = append(lines, Line{Text: "E: board", Color: hintColor})
		}
	}
	return lines
}

// BatteryColor picks the fill color for a battery level in [0, 100].
func BatteryColor(level float64) color.RGBA {
	pct := level / simulation.MaxBattery
	switch {
	case pct > 0.6:
		return color.RGBA{50, 180, 50, 255}
	case pct > 0.3:
		return color.RGBA{200, 180, 50, 255}
	default:
		return color.RGBA{200, 50, 50, 255}
	}
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	lines := Lines(h.snap, h.config)
	height := h.panelHeight(len(lines))
	x, y := h.calculatePosition(height)

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), color.RGBA{20, 20, 30, alpha})
	r.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), 1, color.RGBA{60, 60, 80, alpha})

	currentY := y + 8
	for _, l := range lines {
		r.DrawText(screen, l.Text, x+8, currentY, l.Color, 1)
		currentY += lineHeight
	}

	if h.config.ShowBattery {
		light := "off"
		if h.snap.Vehicle.LightOn {
			light = "on"
		}
		label := fmt.Sprintf("Battery %.0f%% (light %s)", h.snap.Vehicle.Battery, light)
		currentY = h.drawBar(screen, r, x+8, currentY, h.snap.Vehicle.Battery/simulation.MaxBattery, BatteryColor(h.snap.Vehicle.Battery), label)
	}
	if h.config.ShowPressure && h.snap.MaxPress > 0 {
		frac := h.snap.Pressure / h.snap.MaxPress
		clr := color.RGBA{80, 140, 220, 255}
		if frac > 0.75 {
			clr = color.RGBA{220, 80, 80, 255}
		}
		h.drawBar(screen, r, x+8, currentY, frac, clr, fmt.Sprintf("Pressure %.0f%%", frac*100))
	}
}

// drawBar draws a labelled progress bar and returns the next free y.
func (h *HUD) drawBar(screen render.Image, r render.Renderer, x, y int, frac float64, fill color.RGBA, label string) int {
	r.DrawText(screen, label, x, y, dimColor, 1)
	y += lineHeight

	barWidth := float32(h.panelWidth - 16)
	r.FillRect(screen, float32(x), float32(y), barWidth, barHeight, color.RGBA{40, 20, 20, 255})
	if frac > 0 {
		if frac > 1 {
			frac = 1
		}
		r.FillRect(screen, float32(x+1), float32(y+1), (barWidth-2)*float32(frac), barHeight-2, fill)
	}
	return y + barHeight + 4
}

func (h *HUD) panelHeight(lineCount int) int {
	height := 16 + lineCount*lineHeight
	if h.config.ShowBattery {
		height += lineHeight + barHeight + 4
	}
	if h.config.ShowPressure {
		height += lineHeight + barHeight + 4
	}
	return height
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition(height int) (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - height - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - height - padding
	default:
		return padding, padding
	}
}
