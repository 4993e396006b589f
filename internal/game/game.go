package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/undertow/internal/audio"
	"chosenoffset.com/undertow/internal/render"
	"chosenoffset.com/undertow/internal/render/lighting"
	"chosenoffset.com/undertow/internal/simulation"
	"chosenoffset.com/undertow/internal/ui/hud"
)

// messageDuration is how long an on-screen message stays up, in seconds.
const messageDuration = 3.0

// Headlamp and artifact glow parameters.
var (
	headlamp = lighting.LightSource{
		Radius:    340,
		Intensity: 0.85,
		Color:     color.NRGBA{255, 240, 200, 255},
		Spread:    math.Pi / 3,
	}
	artifactGlow = lighting.LightSource{
		Radius:    90,
		Intensity: 0.45,
		Color:     color.NRGBA{90, 230, 220, 255},
	}
)

// Options configures a new Game.
type Options struct {
	Name     string
	Setup    simulation.Setup
	TickRate int
	MaxSteps int
	Bindings map[string]simulation.Action

	Audio     *audio.Player
	Telemetry Publisher
	// Now defaults to time.Now
	Now func() time.Time
}

// Game drives one run of a level: it feeds input into the simulation at a
// fixed rate and presents the result.
type Game struct {
	Name         string
	ScreenWidth  int
	ScreenHeight int

	Sim       *simulation.Simulation
	Input     *simulation.InputState
	Scheduler *simulation.Scheduler

	Camera          Camera
	WhiteImg        render.Image
	Renderer        render.Renderer
	InputMgr        render.InputManager
	LightingManager *lighting.Manager
	Audio           *audio.Player
	Telemetry       Publisher
	GameHUD         *hud.HUD

	// UI state
	Messages []Message

	log      zerolog.Logger
	now      func() time.Time
	lastTime time.Time
	facing   float64 // headlamp angle in radians
	lastVehX float64
}

// NewGame creates a game for the given setup.
func NewGame(opts Options, r render.Renderer, input render.InputManager, width, height int, log zerolog.Logger) *Game {
	opts.Setup.ViewWidth = float64(width)
	opts.Setup.ViewHeight = float64(height)
	sim := simulation.New(opts.Setup, log.With().Str("level", opts.Name).Logger())
	log = log.With().Str("component", "game").Str("level", opts.Name).Logger()

	if opts.Audio == nil {
		opts.Audio = audio.Disabled(log)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	lightingMgr := lighting.NewManager()
	lightingMgr.SetVehicleLight(headlamp)
	for _, a := range sim.Artifacts {
		if a.Solved {
			continue
		}
		glow := artifactGlow
		glow.X, glow.Y = a.X, a.Y
		lightingMgr.AddStaticLight(a.ID, glow)
	}

	g := &Game{
		Name:            opts.Name,
		ScreenWidth:     width,
		ScreenHeight:    height,
		Sim:             sim,
		Input:           simulation.NewInputState(opts.Bindings),
		Scheduler:       simulation.NewScheduler(opts.TickRate, opts.MaxSteps),
		Renderer:        r,
		InputMgr:        input,
		LightingManager: lightingMgr,
		Audio:           opts.Audio,
		Telemetry:       opts.Telemetry,
		GameHUD:         hud.New(hud.DefaultConfig(), width, height),
		log:             log,
		now:             opts.Now,
		lastVehX:        sim.Vehicle.X,
	}
	g.GameHUD.SetSnapshot(sim.Snapshot())
	g.UpdateCamera()
	g.updateLighting()

	log.Info().
		Int("collectibles", len(sim.Collectibles)).
		Int("artifacts", len(sim.Artifacts)).
		Str("mode", sim.Player.Mode.String()).
		Msg("level started")
	return g
}

// Update handles game logic updates. It runs as many fixed steps as the
// wall-clock time since the previous call allows.
func (g *Game) Update() error {
	now := g.now()
	var elapsed time.Duration
	if !g.lastTime.IsZero() {
		elapsed = now.Sub(g.lastTime)
	}
	g.lastTime = now

	g.pollInput()
	g.Scheduler.Advance(elapsed, g.step)
	g.updateMessages(elapsed.Seconds())

	snap := g.Sim.Snapshot()
	g.GameHUD.SetSnapshot(snap)
	if g.Telemetry != nil {
		g.Telemetry.Publish(snap)
	}

	g.UpdateCamera()
	g.updateLighting()
	return nil
}

// pollInput turns key and mouse edges into InputState events.
func (g *Game) pollInput() {
	for _, k := range render.AllKeys() {
		if g.InputMgr.IsKeyJustPressed(k) {
			g.Input.KeyDown(k.Name())
		}
		if g.InputMgr.IsKeyJustReleased(k) {
			g.Input.KeyUp(k.Name())
		}
	}
	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		g.Input.PointerDown(float64(x), float64(y))
	}
}

// ReleaseInput drops all held keys, e.g. when the game loses focus.
func (g *Game) ReleaseInput() {
	g.Input.Reset()
	g.lastTime = time.Time{}
}

func (g *Game) step() {
	g.Sim.Step(g.Input.Drain())
	g.handleEvents(g.Sim.Events())
}

func (g *Game) handleEvents(events []simulation.Event) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		g.log.Debug().
			Uint64("tick", g.Sim.Tick()).
			Str("event", ev.Kind.String()).
			Str("id", ev.ID).
			Msg("event")

		switch ev.Kind {
		case simulation.EventMinigameSolved:
			g.LightingManager.RemoveStaticLight(ev.ID)
			g.log.Info().Str("artifact", ev.ID).Int("score", g.Sim.Score()).Msg("artifact decoded")
		case simulation.EventPressureBlackout:
			g.log.Warn().Float64("depth", g.Sim.Depth()).Msg("pressure blackout")
		}

		if text, ok := EventMessage(ev); ok {
			g.ShowMessage(text)
		}
	}
	g.Audio.HandleEvents(events)
}

// EventMessage returns the on-screen text for an event, if it has one.
func EventMessage(ev simulation.Event) (string, bool) {
	switch ev.Kind {
	case simulation.EventEnteredWater:
		return "You slip into the water", true
	case simulation.EventLeftWater:
		return "Back on dry land", true
	case simulation.EventBoarded:
		return "Aboard the submersible", true
	case simulation.EventExited:
		return "You leave the submersible", true
	case simulation.EventLightOn:
		return "Headlamp on", true
	case simulation.EventLightOff:
		return "Headlamp off", true
	case simulation.EventBatteryDepleted:
		return "Battery depleted", true
	case simulation.EventCollected:
		return fmt.Sprintf("Recovered a fragment (+%d)", ev.Value), true
	case simulation.EventWorldToggled:
		return "The world shifts: " + ev.ID, true
	case simulation.EventMinigameStarted:
		return "An artifact hums beneath you", true
	case simulation.EventMinigameSolved:
		return fmt.Sprintf("Artifact decoded (+%d)", ev.Value), true
	case simulation.EventMinigameCancelled:
		return "You drift away from the artifact", true
	case simulation.EventPressureBlackout:
		return "The pressure overwhelms you. You wake on the shore.", true
	default:
		return "", false
	}
}

// updateMessages updates message timers and removes expired messages.
func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	g.log.Debug().Str("text", text).Msg("message")
}

// SetScreenSize resizes the viewport. A minigame already in progress keeps
// its layout; the next one uses the new size.
func (g *Game) SetScreenSize(width, height int) {
	g.ScreenWidth = width
	g.ScreenHeight = height
	g.Sim.ViewWidth = float64(width)
	g.Sim.ViewHeight = float64(height)
	g.GameHUD.SetScreenSize(width, height)
	g.UpdateCamera()
}

// UpdateCamera centers the camera on the player, or the vehicle while aboard.
func (g *Game) UpdateCamera() {
	anchor := g.Sim.Anchor()
	g.Camera.X = anchor.X() - float64(g.ScreenWidth)/2
	g.Camera.Y = anchor.Y() - float64(g.ScreenHeight)/2

	// Clamp camera to world bounds
	bounds := g.Sim.World.Bounds()
	if g.Camera.X > bounds.W-float64(g.ScreenWidth) {
		g.Camera.X = bounds.W - float64(g.ScreenWidth)
	}
	if g.Camera.Y > bounds.H-float64(g.ScreenHeight) {
		g.Camera.Y = bounds.H - float64(g.ScreenHeight)
	}
	if g.Camera.X < 0 {
		g.Camera.X = 0
	}
	if g.Camera.Y < 0 {
		g.Camera.Y = 0
	}
}

// updateLighting dims the ambient light with depth and points the headlamp
// the way the vehicle last moved.
func (g *Game) updateLighting() {
	w := g.Sim.World
	span := w.OceanBottom - w.OceanTop
	if span > 0 {
		g.LightingManager.SetAmbientForDepth(w.DepthOf(g.Sim.Anchor().Y()) / span)
	}

	v := &g.Sim.Vehicle
	dx := v.X - g.lastVehX
	g.lastVehX = v.X
	if dx > 0.01 {
		g.facing = 0
	} else if dx < -0.01 {
		g.facing = math.Pi
	}

	c := v.Center()
	g.LightingManager.EnableVehicleLight(v.LightOn)
	g.LightingManager.UpdateVehicleLight(c.X()+math.Cos(g.facing)*v.W/2, c.Y(), g.facing)
}
