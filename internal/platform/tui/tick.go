// Package tui provides the Bubble Tea integration for retris.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger simulation ticks.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// maxCatchUpTicks bounds how many simulation ticks a single frame may
// run when the terminal falls behind. Excess time is dropped so a
// stalled session does not fast-forward the game.
const maxCatchUpTicks = 8

// Stepper converts wall-clock time into a whole number of simulation
// ticks. Bubble Tea delivers tick messages on a best-effort schedule;
// the accumulator keeps the simulation rate fixed regardless of how
// late or early each message arrives.
type Stepper struct {
	dt   time.Duration
	last time.Time
	acc  time.Duration
}

// NewStepper creates a stepper for the given simulation rate.
func NewStepper(tickRate int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Stepper{dt: time.Second / time.Duration(tickRate)}
}

// Advance consumes the time elapsed since the previous call and
// returns how many simulation ticks to run now. The first call always
// returns one tick.
func (s *Stepper) Advance(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 1
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	s.acc += elapsed

	ticks := 0
	for s.acc >= s.dt {
		s.acc -= s.dt
		ticks++
	}
	if ticks > maxCatchUpTicks {
		ticks = maxCatchUpTicks
		s.acc = 0
	}
	return ticks
}
