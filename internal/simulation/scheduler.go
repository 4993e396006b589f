package simulation

import "time"

// Scheduler converts elapsed wall time into a whole number of fixed-size
// simulation steps. The host calls Advance once per frame.
type Scheduler struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	steps    uint64
}

// NewScheduler creates a scheduler running tickRate steps per second and
// at most maxSteps per Advance. Non-positive values fall back to 60 and 5.
func NewScheduler(tickRate, maxSteps int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 5
	}
	return &Scheduler{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// StepDuration returns the fixed timestep.
func (s *Scheduler) StepDuration() time.Duration {
	return s.step
}

// Advance accumulates elapsed time and calls step once per whole timestep.
// When the step cap is hit the remaining whole steps are dropped rather
// than carried into the next frame. It returns the number of steps run.
func (s *Scheduler) Advance(elapsed time.Duration, step func()) int {
	if elapsed > 0 {
		s.acc += elapsed
	}

	n := 0
	for s.acc >= s.step && n < s.maxSteps {
		step()
		s.acc -= s.step
		n++
	}
	if s.acc >= s.step {
		s.acc %= s.step
	}
	s.steps += uint64(n)
	return n
}

// Alpha returns the fraction of a step left in the accumulator, in [0, 1),
// for interpolating between the last two states when drawing.
func (s *Scheduler) Alpha() float64 {
	return float64(s.acc) / float64(s.step)
}

// Steps returns the total number of steps run.
func (s *Scheduler) Steps() uint64 {
	return s.steps
}
