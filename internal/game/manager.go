// Package game wires the simulation to the screen: it owns the title menu,
// the running level and the per-frame loop driver.
package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/undertow/internal/audio"
	"chosenoffset.com/undertow/internal/render"
	"chosenoffset.com/undertow/internal/simulation"
	"chosenoffset.com/undertow/internal/ui/menu"
	"chosenoffset.com/undertow/internal/world/level"
)

// Settings are the simulation parameters every level is started with.
type Settings struct {
	Tuning   simulation.Tuning
	TickRate int
	MaxSteps int
	Seed     int64
	Bindings map[string]simulation.Action
}

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	MainMenu     *menu.MainMenu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Settings     Settings

	Audio     *audio.Player
	Telemetry Publisher
	Now       func() time.Time

	log zerolog.Logger
}

// NewManager creates a new game manager.
func NewManager(r render.Renderer, input render.InputManager, settings Settings, width, height int, log zerolog.Logger) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        menu.StateMainMenu,
		Renderer:     r,
		InputMgr:     input,
		Settings:     settings,
		log:          log,
	}
}

// SetMainMenu sets the main menu.
func (m *Manager) SetMainMenu(mainMenu *menu.MainMenu) {
	m.MainMenu = mainMenu
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.State {
	case menu.StateMainMenu:
		if m.MainMenu == nil {
			return nil
		}
		selected, selection := m.MainMenu.Update()
		if selected {
			if err := m.LoadGame(selection); err != nil {
				m.log.Error().Err(err).Str("path", selection.Path).Msg("failed to load level")
				return nil
			}
			m.State = menu.StatePlaying
		}
	case menu.StatePlaying:
		if m.Game == nil {
			return nil
		}
		// Escape cancels the minigame; otherwise it returns to the menu.
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) && m.Game.Sim.Player.Mode != simulation.ModeMinigame && m.MainMenu != nil {
			m.Game.ReleaseInput()
			m.State = menu.StateMainMenu
			return nil
		}
		return m.Game.Update()
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		if m.MainMenu != nil {
			m.MainMenu.Draw(screen)
		}
	case menu.StatePlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.MainMenu != nil {
			m.MainMenu.SetScreenSize(outsideWidth, outsideHeight)
		}
		if m.Game != nil {
			m.Game.SetScreenSize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// LoadGame loads the selected level and starts a fresh run of it.
func (m *Manager) LoadGame(selection menu.Selection) error {
	var (
		f   *level.File
		err error
	)
	if selection.Path == "" {
		f, err = level.Default()
	} else {
		f, err = level.Load(selection.Path)
	}
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}
	m.StartLevel(f)
	return nil
}

// StartLevel replaces the running game with a new run of f.
func (m *Manager) StartLevel(f *level.File) {
	s := m.Settings
	setup := f.Setup(s.Tuning, float64(m.ScreenWidth), float64(m.ScreenHeight), s.Seed)

	m.Game = NewGame(Options{
		Name:      f.Name,
		Setup:     setup,
		TickRate:  s.TickRate,
		MaxSteps:  s.MaxSteps,
		Bindings:  s.Bindings,
		Audio:     m.Audio,
		Telemetry: m.Telemetry,
		Now:       m.Now,
	}, m.Renderer, m.InputMgr, m.ScreenWidth, m.ScreenHeight, m.log)
	m.State = menu.StatePlaying
}
