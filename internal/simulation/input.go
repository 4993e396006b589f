package simulation

import (
	"strings"

	"chosenoffset.com/undertow/internal/core/geom"
)

// Action is a logical input the simulation understands.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionInteract
	ActionToggleLight
	ActionToggleWorld
	ActionCancel
	actionCount
)

func (a Action) valid() bool {
	return a > ActionNone && a < actionCount
}

// DefaultBindings maps key names to actions. Letter keys are matched
// case-insensitively and both "Space" and " " name the space bar.
var DefaultBindings = map[string]Action{
	"ArrowLeft":  ActionLeft,
	"ArrowRight": ActionRight,
	"ArrowUp":    ActionUp,
	"ArrowDown":  ActionDown,
	"a":          ActionLeft,
	"d":          ActionRight,
	"w":          ActionUp,
	"s":          ActionDown,
	"e":          ActionInteract,
	"l":          ActionToggleLight,
	"Space":      ActionToggleWorld,
	"Escape":     ActionCancel,
}

// NormalizeKey folds the different spellings of a key name into one.
func NormalizeKey(name string) string {
	if name == " " || strings.EqualFold(name, "space") || strings.EqualFold(name, "spacebar") {
		return "Space"
	}
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return name
}

// InputState collects key and pointer events between ticks. Event callbacks
// only set flags here; the simulation consumes them through Drain.
type InputState struct {
	bindings map[string]Action
	down     map[string]bool
	pressed  [actionCount]bool
	pointers []geom.Vec
}

// NewInputState creates an input state with the given bindings, or
// DefaultBindings when nil.
func NewInputState(bindings map[string]Action) *InputState {
	if bindings == nil {
		bindings = DefaultBindings
	}
	normalized := make(map[string]Action, len(bindings))
	for k, a := range bindings {
		if a.valid() {
			normalized[NormalizeKey(k)] = a
		}
	}
	return &InputState{
		bindings: normalized,
		down:     make(map[string]bool),
	}
}

// KeyDown records a key press. Unbound keys and auto-repeat are ignored.
func (s *InputState) KeyDown(name string) {
	key := NormalizeKey(name)
	a, ok := s.bindings[key]
	if !ok || s.down[key] {
		return
	}
	s.down[key] = true
	s.pressed[a] = true
}

// KeyUp records a key release.
func (s *InputState) KeyUp(name string) {
	delete(s.down, NormalizeKey(name))
}

// PointerDown queues a pointer press in viewport coordinates.
func (s *InputState) PointerDown(x, y float64) {
	s.pointers = append(s.pointers, geom.Vec{x, y})
}

// Held reports whether any key bound to a is currently down.
func (s *InputState) Held(a Action) bool {
	for key := range s.down {
		if s.bindings[key] == a {
			return true
		}
	}
	return false
}

// Reset releases every key and drops queued events.
func (s *InputState) Reset() {
	s.down = make(map[string]bool)
	s.pressed = [actionCount]bool{}
	s.pointers = nil
}

// Drain returns the input for one tick and clears the queued edge events,
// so a press is seen by exactly one tick. Held keys persist.
func (s *InputState) Drain() Frame {
	var f Frame
	for key := range s.down {
		f.held[s.bindings[key]] = true
	}
	f.pressed = s.pressed
	f.Pointers = s.pointers

	s.pressed = [actionCount]bool{}
	s.pointers = nil
	return f
}

// Frame is the immutable input for a single tick.
type Frame struct {
	held     [actionCount]bool
	pressed  [actionCount]bool
	Pointers []geom.Vec
}

// NewFrame builds a frame directly, for scripted input.
func NewFrame(held []Action, pressed []Action, pointers ...geom.Vec) Frame {
	var f Frame
	for _, a := range held {
		if a.valid() {
			f.held[a] = true
		}
	}
	for _, a := range pressed {
		if a.valid() {
			f.pressed[a] = true
		}
	}
	f.Pointers = pointers
	return f
}

// Held reports whether a is held during this tick.
func (f Frame) Held(a Action) bool {
	return a.valid() && f.held[a]
}

// Pressed reports whether a was pressed since the previous tick.
func (f Frame) Pressed(a Action) bool {
	return a.valid() && f.pressed[a]
}

// Axis returns the movement direction from held keys, each component in
// {-1, 0, 1}. Opposite keys cancel.
func (f Frame) Axis() (dx, dy float64) {
	if f.Held(ActionLeft) {
		dx--
	}
	if f.Held(ActionRight) {
		dx++
	}
	if f.Held(ActionUp) {
		dy--
	}
	if f.Held(ActionDown) {
		dy++
	}
	return dx, dy
}
