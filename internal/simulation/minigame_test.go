package simulation

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/undertow/internal/core/geom"
)

func newTestMinigame(pairs int) *Minigame {
	return NewMinigame("relic", pairs, geom.Vec{400, 300}, 150, 18, rand.New(rand.NewSource(3)))
}

// partners returns, for each pair number, the two node indexes sharing it.
func partners(m *Minigame) map[int][]int {
	out := make(map[int][]int)
	for i, n := range m.Nodes {
		out[n.Pair] = append(out[n.Pair], i)
	}
	return out
}

func nodePos(m *Minigame, i int) geom.Vec {
	return geom.Vec{m.Nodes[i].X, m.Nodes[i].Y}
}

func TestNewMinigameLayout(t *testing.T) {
	m := newTestMinigame(4)
	require.Len(t, m.Nodes, 8)
	assert.Equal(t, -1, m.Selected())
	assert.Equal(t, 4, m.Remaining())

	for _, idx := range partners(m) {
		assert.Len(t, idx, 2)
	}
	for i := range m.Nodes {
		assert.InDelta(t, 150, geom.Distance(nodePos(m, i), geom.Vec{400, 300}), 1e-9)
	}
	assert.InDelta(t, 150, 300-m.Nodes[0].Y, 1e-9, "first node sits at the top of the ring")
}

func TestNewMinigameClampsPairs(t *testing.T) {
	assert.Len(t, newTestMinigame(0).Nodes, 2)
	assert.Len(t, newTestMinigame(50).Nodes, MaxMinigamePairs*2)
}

func TestMinigamePointerDown(t *testing.T) {
	m := newTestMinigame(3)
	pairs := partners(m)
	a, b := pairs[0][0], pairs[0][1]
	other := pairs[1][0]

	assert.Equal(t, MatchNone, m.PointerDown(400, 300), "center of the ring is empty")

	pa := nodePos(m, a)
	assert.Equal(t, MatchSelected, m.PointerDown(pa.X(), pa.Y()))
	assert.Equal(t, a, m.Selected())
	assert.Equal(t, MatchNone, m.PointerDown(pa.X(), pa.Y()), "second press deselects")
	assert.Equal(t, -1, m.Selected())

	m.PointerDown(pa.X(), pa.Y())
	po := nodePos(m, other)
	assert.Equal(t, MatchMissed, m.PointerDown(po.X(), po.Y()))
	assert.Equal(t, -1, m.Selected())
	assert.Equal(t, 1, m.Moves)
	assert.Equal(t, 3, m.Remaining())

	pb := nodePos(m, b)
	m.PointerDown(pa.X(), pa.Y())
	assert.Equal(t, MatchPaired, m.PointerDown(pb.X()+5, pb.Y()-5))
	assert.True(t, m.Nodes[a].Matched)
	assert.True(t, m.Nodes[b].Matched)
	assert.Equal(t, 2, m.Remaining())

	assert.Equal(t, MatchNone, m.PointerDown(pa.X(), pa.Y()), "matched nodes ignore presses")
	assert.False(t, m.Solved())
}

func newArtifactSim(t *testing.T) *Simulation {
	t.Helper()
	setup := newTestSetup()
	setup.Artifacts = []Artifact{{ID: "relic", X: 900, Y: 600, Pairs: 3, Value: 40}}
	return New(setup, zerolog.Nop())
}

// driveToArtifact boards the vehicle and parks it on the artifact.
func driveToArtifact(t *testing.T, s *Simulation) {
	t.Helper()
	boardVehicle(t, s)
	s.Vehicle.X = 900 - s.Vehicle.W/2
	s.Vehicle.Y = 600 - s.Vehicle.H/2
	s.Step(Frame{})
	require.Equal(t, ModeMinigame, s.Player.Mode)
	require.NotNil(t, s.Minigame)
}

func TestMinigameStartsNearArtifactWhilePiloting(t *testing.T) {
	s := newArtifactSim(t)
	driveToArtifact(t, s)

	evs := s.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, EventMinigameStarted, evs[0].Kind)
	assert.Equal(t, "relic", evs[0].ID)
	assert.Equal(t, ModePiloting, evs[0].From)
	assert.True(t, s.Vehicle.Occupied)

	x := s.Vehicle.X
	run(s, 5, hold(ActionRight, ActionDown))
	assert.Equal(t, x, s.Vehicle.X, "vehicle is frozen during the minigame")
}

func TestMinigameIgnoresSwimmers(t *testing.T) {
	s := newArtifactSim(t)
	s.Player.X, s.Player.Y = 890, 582
	s.Player.Mode = ModeSwimming

	s.Step(Frame{})
	assert.Equal(t, ModeSwimming, s.Player.Mode)
	assert.Nil(t, s.Minigame)
}

func TestSolvingMinigameRecordsArtifact(t *testing.T) {
	s := newArtifactSim(t)
	driveToArtifact(t, s)
	s.Events()

	for _, idx := range partners(s.Minigame) {
		require.NotNil(t, s.Minigame)
		s.Step(NewFrame(nil, nil, nodePos(s.Minigame, idx[0]), nodePos(s.Minigame, idx[1])))
	}

	assert.Equal(t, ModePiloting, s.Player.Mode)
	assert.Nil(t, s.Minigame)
	assert.True(t, s.Artifacts[0].Solved)
	assert.Equal(t, 40, s.Score())
	assert.Equal(t, 1, s.Inventory.CountByCategory(ArtifactCategory))

	got := kinds(s.Events())
	assert.Equal(t, []EventKind{EventNodeMatched, EventNodeMatched, EventNodeMatched, EventMinigameSolved}, got)

	s.Step(Frame{})
	assert.Equal(t, ModePiloting, s.Player.Mode, "solved artifacts stay closed")
}

func TestMinigameMissEmitsEvent(t *testing.T) {
	s := newArtifactSim(t)
	driveToArtifact(t, s)
	s.Events()

	pairs := partners(s.Minigame)
	s.Step(NewFrame(nil, nil, nodePos(s.Minigame, pairs[0][0]), nodePos(s.Minigame, pairs[1][0])))

	assert.Equal(t, []EventKind{EventNodeMissed}, kinds(s.Events()))
	assert.Equal(t, ModeMinigame, s.Player.Mode)
	assert.Equal(t, 3, s.Minigame.Remaining())
}

func TestCancelledMinigameRearmsAfterLeaving(t *testing.T) {
	s := newArtifactSim(t)
	driveToArtifact(t, s)
	s.Events()

	s.Step(press(ActionCancel))
	assert.Equal(t, ModePiloting, s.Player.Mode)
	assert.Nil(t, s.Minigame)
	assert.Equal(t, []EventKind{EventMinigameCancelled}, kinds(s.Events()))

	run(s, 3, Frame{})
	assert.Equal(t, ModePiloting, s.Player.Mode, "no retrigger while still in range")

	parkedX := s.Vehicle.X
	s.Vehicle.X = parkedX + 400
	s.Step(Frame{})
	s.Vehicle.X = parkedX
	s.Step(Frame{})
	assert.Equal(t, ModeMinigame, s.Player.Mode)
	assert.False(t, s.Artifacts[0].Solved)
	assert.Equal(t, 0, s.Score())
}
