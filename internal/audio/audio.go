// Package audio plays short procedural cues for simulation events.
package audio

import (
	"fmt"
	"sync"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"chosenoffset.com/undertow/internal/simulation"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueSplash Cue = iota
	CueSurface
	CueBoard
	CueExit
	CueLightOn
	CueLightOff
	CueDepleted
	CueCollect
	CueToggleWorld
	CueMinigameOpen
	CueMatch
	CueMiss
	CueSolved
	CueBlackout
	cueCount
)

var cueNames = [cueCount]string{
	"splash", "surface", "board", "exit", "light_on", "light_off", "depleted",
	"collect", "toggle_world", "minigame_open", "match", "miss", "solved", "blackout",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Synthesize renders a cue as interleaved stereo float32 LE samples at
// SampleRate.
func Synthesize(c Cue) []byte {
	switch c {
	case CueSplash:
		return genSplash()
	case CueSurface:
		return genSurface()
	case CueBoard:
		return genBoard()
	case CueExit:
		return genExit()
	case CueLightOn:
		return genClick(1200)
	case CueLightOff:
		return genClick(700)
	case CueDepleted:
		return genDepleted()
	case CueCollect:
		return arpeggio([]float64{783.99, 1046.5}, 0.06, 0.15, 0.38)
	case CueToggleWorld:
		return genToggleWorld()
	case CueMinigameOpen:
		return genMinigameOpen()
	case CueMatch:
		return arpeggio([]float64{659.25, 987.77}, 0.05, 0.1, 0.3)
	case CueMiss:
		return genMiss()
	case CueSolved:
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.075, 0.18, 0.38)
	case CueBlackout:
		return genBlackout()
	}
	return nil
}

// CueFor returns the cue played for an event, if any.
func CueFor(ev simulation.Event) (Cue, bool) {
	switch ev.Kind {
	case simulation.EventEnteredWater:
		return CueSplash, true
	case simulation.EventLeftWater:
		return CueSurface, true
	case simulation.EventBoarded:
		return CueBoard, true
	case simulation.EventExited:
		return CueExit, true
	case simulation.EventLightOn:
		return CueLightOn, true
	case simulation.EventLightOff:
		return CueLightOff, true
	case simulation.EventBatteryDepleted:
		return CueDepleted, true
	case simulation.EventCollected:
		return CueCollect, true
	case simulation.EventWorldToggled:
		return CueToggleWorld, true
	case simulation.EventMinigameStarted:
		return CueMinigameOpen, true
	case simulation.EventNodeMatched:
		return CueMatch, true
	case simulation.EventNodeMissed:
		return CueMiss, true
	case simulation.EventMinigameSolved:
		return CueSolved, true
	case simulation.EventPressureBlackout:
		return CueBlackout, true
	}
	return 0, false
}

// Player plays cues through the ebiten audio context. A disabled Player
// accepts every call and plays nothing.
type Player struct {
	ctx    *ebaudio.Context
	volume float64
	log    zerolog.Logger

	mu     sync.Mutex
	cache  map[Cue][]byte
	active []*ebaudio.Player
}

// Disabled returns a Player that never makes a sound.
func Disabled(log zerolog.Logger) *Player {
	return &Player{log: log.With().Str("component", "audio").Logger()}
}

// New opens the shared audio context, reusing one that already exists.
func New(volume float64, log zerolog.Logger) *Player {
	p := Disabled(log)
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	} else if ctx.SampleRate() != SampleRate {
		p.log.Warn().Int("rate", ctx.SampleRate()).Msg("audio context has a different sample rate, sound disabled")
		return p
	}
	p.ctx = ctx
	p.volume = volume
	p.cache = make(map[Cue][]byte)
	return p
}

// Enabled reports whether cues are actually played.
func (p *Player) Enabled() bool {
	return p.ctx != nil
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if p.ctx == nil || p.volume <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	data, ok := p.cache[c]
	if !ok {
		data = Synthesize(c)
		p.cache[c] = data
	}
	if len(data) == 0 {
		return
	}

	live := p.active[:0]
	for _, ap := range p.active {
		if ap.IsPlaying() {
			live = append(live, ap)
		} else {
			_ = ap.Close()
		}
	}
	p.active = live

	ap := p.ctx.NewPlayerF32FromBytes(data)
	ap.SetVolume(p.volume)
	ap.Play()
	p.active = append(p.active, ap)
	p.log.Trace().Str("cue", c.String()).Msg("play")
}

// HandleEvents plays the cue for each event that has one.
func (p *Player) HandleEvents(events []simulation.Event) {
	for _, ev := range events {
		if c, ok := CueFor(ev); ok {
			p.Play(c)
		}
	}
}
