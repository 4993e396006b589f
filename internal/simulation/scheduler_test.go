package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsWholeSteps(t *testing.T) {
	s := NewScheduler(100, 5)
	assert.Equal(t, 10*time.Millisecond, s.StepDuration())

	calls := 0
	n := s.Advance(35*time.Millisecond, func() { calls++ })
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, calls)
	assert.InDelta(t, 0.5, s.Alpha(), 1e-9)

	n = s.Advance(5*time.Millisecond, func() { calls++ })
	assert.Equal(t, 1, n, "leftover time carries over")
	assert.InDelta(t, 0.0, s.Alpha(), 1e-9)
	assert.Equal(t, uint64(4), s.Steps())
}

func TestSchedulerIsIndependentOfFrameRate(t *testing.T) {
	fast := NewScheduler(60, 5)
	slow := NewScheduler(60, 5)
	noop := func() {}

	for i := 0; i < 240; i++ {
		fast.Advance(time.Second/240, noop)
	}
	for i := 0; i < 30; i++ {
		slow.Advance(time.Second/30, noop)
	}
	assert.InDelta(t, float64(fast.Steps()), float64(slow.Steps()), 1)
	assert.InDelta(t, 60, float64(slow.Steps()), 1)
}

func TestSchedulerCapsStepsAndDropsBacklog(t *testing.T) {
	s := NewScheduler(100, 4)
	calls := 0

	n := s.Advance(time.Second, func() { calls++ })
	assert.Equal(t, 4, n)
	assert.Less(t, s.Alpha(), 1.0)

	n = s.Advance(0, func() { calls++ })
	assert.Equal(t, 0, n, "backlog beyond the cap is not replayed")
	assert.Equal(t, 4, calls)
}

func TestSchedulerIgnoresNegativeElapsed(t *testing.T) {
	s := NewScheduler(0, 0)
	assert.Equal(t, time.Second/60, s.StepDuration())

	assert.Zero(t, s.Advance(-time.Second, func() {}))
	assert.Zero(t, s.Alpha())
}
