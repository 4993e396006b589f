// Package menu implements the title screen and level picker.
package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/undertow/internal/render"
	"chosenoffset.com/undertow/internal/world/level"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
)

// BuiltinName labels the level compiled into the binary.
const BuiltinName = "Shoreline (built-in)"

// Selection is the level chosen from the menu. An empty Path selects the
// built-in level.
type Selection struct {
	Name string
	Path string
}

const (
	listX       = 50
	listY       = 120
	entryHeight = 30
	entryWidth  = 320
)

// MainMenu represents the main menu screen.
type MainMenu struct {
	entries      []Selection
	selected     int
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int
}

// NewMainMenu creates a new main menu listing the built-in level followed by
// the levels found on disk.
func NewMainMenu(levels []level.Entry, r render.Renderer, input render.InputManager, width, height int) *MainMenu {
	entries := []Selection{{Name: BuiltinName}}
	for _, l := range levels {
		entries = append(entries, Selection{Name: l.Name, Path: l.Path})
	}
	return &MainMenu{
		entries:      entries,
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// SetScreenSize updates the screen dimensions
func (m *MainMenu) SetScreenSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// Entries returns the selectable levels in display order.
func (m *MainMenu) Entries() []Selection {
	return m.entries
}

// Selected returns the index of the highlighted entry.
func (m *MainMenu) Selected() int {
	return m.selected
}

// Update updates the menu state based on user input.
// Returns true if a level was chosen.
func (m *MainMenu) Update() (selected bool, selection Selection) {
	if m.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		mouseX, mouseY := m.input.GetCursorPosition()
		for i := range m.entries {
			r := rect{x: listX, y: listY + i*entryHeight, w: entryWidth, h: entryHeight - 5}
			if !pointInRect(mouseX, mouseY, r) {
				continue
			}
			// Clicking the highlighted entry starts it
			if i == m.selected {
				return true, m.entries[i]
			}
			m.selected = i
			break
		}
	}

	if m.input.IsKeyJustPressed(render.KeyUp) || m.input.IsKeyJustPressed(render.KeyW) {
		m.selected = (m.selected - 1 + len(m.entries)) % len(m.entries)
	}
	if m.input.IsKeyJustPressed(render.KeyDown) || m.input.IsKeyJustPressed(render.KeyS) {
		m.selected = (m.selected + 1) % len(m.entries)
	}
	if m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace) {
		return true, m.entries[m.selected]
	}

	return false, Selection{}
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	screen.Fill(color.RGBA{8, 24, 40, 255})

	titleColor := color.RGBA{220, 240, 255, 255}
	m.renderer.DrawText(screen, "UNDERTOW", listX, 30, titleColor, 3.0)
	m.renderer.DrawText(screen, "Select a dive site", listX, 80, titleColor, 1.5)

	for i, e := range m.entries {
		y := listY + i*entryHeight
		itemColor := color.RGBA{160, 190, 210, 255}
		if i == m.selected {
			itemColor = color.RGBA{255, 255, 100, 255}
			m.renderer.DrawText(screen, ">", listX-20, y, itemColor, 1.2)
		}
		m.renderer.DrawText(screen, e.Name, listX, y, itemColor, 1.2)
	}

	if len(m.entries) == 1 {
		m.renderer.DrawText(screen, "No level files found, only the built-in site is available.",
			listX, listY+2*entryHeight, color.RGBA{255, 150, 100, 255}, 1.0)
	}

	instructionY := m.screenHeight - 60
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.renderer.DrawText(screen, "Up/Down to choose, Enter or click again to dive.", 20, instructionY, instructionColor, 1.0)
	m.renderer.DrawText(screen, fmt.Sprintf("%d site(s) available", len(m.entries)), 20, instructionY+20, instructionColor, 1.0)
}

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
