package game

import (
	"chosenoffset.com/undertow/internal/simulation"
)

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Publisher receives a snapshot after every frame.
type Publisher interface {
	Publish(simulation.Snapshot)
}
