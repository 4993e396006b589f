package simulation

import (
	"math"
	"math/rand"

	"chosenoffset.com/undertow/internal/core/geom"
)

// MaxMinigamePairs bounds the node count so nodes never overlap on the ring.
const MaxMinigamePairs = 8

// Node is one clickable target in the minigame. Two nodes share each Pair.
type Node struct {
	X, Y    float64
	Pair    int
	Matched bool
}

// MatchResult describes what a pointer press did.
type MatchResult int

const (
	MatchNone MatchResult = iota
	MatchSelected
	MatchPaired
	MatchMissed
)

// Minigame is the node-matching puzzle attached to an artifact. Nodes are
// laid out on a ring in viewport coordinates.
type Minigame struct {
	ArtifactID string
	Nodes      []Node
	NodeRadius float64
	Moves      int

	selected int
}

// NewMinigame lays out 2*pairs nodes around center and shuffles which
// nodes belong together.
func NewMinigame(artifactID string, pairs int, center geom.Vec, ringRadius, nodeRadius float64, rng *rand.Rand) *Minigame {
	if pairs < 1 {
		pairs = 1
	}
	if pairs > MaxMinigamePairs {
		pairs = MaxMinigamePairs
	}

	n := pairs * 2
	nodes := make([]Node, n)
	for i := range nodes {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		nodes[i].X = center.X() + ringRadius*math.Cos(angle)
		nodes[i].Y = center.Y() + ringRadius*math.Sin(angle)
	}
	for i, idx := range rng.Perm(n) {
		nodes[idx].Pair = i / 2
	}

	return &Minigame{
		ArtifactID: artifactID,
		Nodes:      nodes,
		NodeRadius: nodeRadius,
		selected:   -1,
	}
}

// Selected returns the index of the selected node, or -1.
func (m *Minigame) Selected() int {
	return m.selected
}

// NodeAt returns the index of the node under (x, y), or -1.
func (m *Minigame) NodeAt(x, y float64) int {
	p := geom.Vec{x, y}
	for i, n := range m.Nodes {
		if geom.Distance(p, geom.Vec{n.X, n.Y}) <= m.NodeRadius {
			return i
		}
	}
	return -1
}

// PointerDown applies a press. The first press selects a node; a press on
// its partner matches both; any other node clears the selection. Matched
// nodes and empty space are ignored, and pressing the selected node again
// deselects it.
func (m *Minigame) PointerDown(x, y float64) MatchResult {
	i := m.NodeAt(x, y)
	if i < 0 || m.Nodes[i].Matched {
		return MatchNone
	}
	if m.selected < 0 {
		m.selected = i
		return MatchSelected
	}
	if m.selected == i {
		m.selected = -1
		return MatchNone
	}

	m.Moves++
	first := m.selected
	m.selected = -1
	if m.Nodes[first].Pair == m.Nodes[i].Pair {
		m.Nodes[first].Matched = true
		m.Nodes[i].Matched = true
		return MatchPaired
	}
	return MatchMissed
}

// Remaining returns the number of unmatched pairs.
func (m *Minigame) Remaining() int {
	n := 0
	for _, node := range m.Nodes {
		if !node.Matched {
			n++
		}
	}
	return n / 2
}

// Solved reports whether every node is matched.
func (m *Minigame) Solved() bool {
	return m.Remaining() == 0
}

func (s *Simulation) startMinigame(a *Artifact) {
	center := geom.Vec{s.ViewWidth / 2, s.ViewHeight / 2}
	ring := math.Min(s.ViewWidth, s.ViewHeight) / 4
	s.Minigame = NewMinigame(a.ID, a.Pairs, center, ring, s.Tuning.NodeRadius, s.rng)
	s.artifact = a
	s.transition(ModeMinigame, Event{Kind: EventMinigameStarted, ID: a.ID})
}

func (s *Simulation) updateMinigame(in Frame) {
	if in.Pressed(ActionCancel) {
		s.cancelMinigame()
		return
	}

	for _, p := range in.Pointers {
		switch s.Minigame.PointerDown(p.X(), p.Y()) {
		case MatchPaired:
			s.emit(Event{Kind: EventNodeMatched, ID: s.Minigame.ArtifactID})
		case MatchMissed:
			s.emit(Event{Kind: EventNodeMissed, ID: s.Minigame.ArtifactID})
		}
		if s.Minigame.Solved() {
			s.solveMinigame()
			return
		}
	}
}

func (s *Simulation) solveMinigame() {
	a := s.artifact
	a.Solved = true
	s.Inventory.Record(a.ID, ArtifactCategory, a.Value)
	s.closeMinigame()
	s.transition(ModePiloting, Event{Kind: EventMinigameSolved, ID: a.ID, Value: a.Value})
}

func (s *Simulation) cancelMinigame() {
	a := s.artifact
	a.dismissed = true
	s.closeMinigame()
	s.transition(ModePiloting, Event{Kind: EventMinigameCancelled, ID: a.ID})
}

func (s *Simulation) closeMinigame() {
	s.Minigame = nil
	s.artifact = nil
}
