// Package slider buffers high-frequency slider input behind a short quiet interval.
package slider

import (
	"time"

	"github.com/rgehrsitz/equitygap/internal/schedule"
)

// DebounceDelay is one frame at 60Hz
const DebounceDelay = 16 * time.Millisecond

// Slider exposes the raw value immediately and a debounced value once input pauses
type Slider struct {
	sched     schedule.Scheduler
	initial   float64
	value     float64
	debounced float64
	delay     time.Duration
	timer     schedule.TimerID
	pending   bool
	onSettle  func(float64)
}

// New creates a slider. onSettle may be nil.
func New(s schedule.Scheduler, initial float64, onSettle func(float64)) *Slider {
	return NewWithDelay(s, initial, DebounceDelay, onSettle)
}

// NewWithDelay creates a slider with a custom quiet interval
func NewWithDelay(s schedule.Scheduler, initial float64, delay time.Duration, onSettle func(float64)) *Slider {
	return &Slider{
		sched:     s,
		initial:   initial,
		value:     initial,
		debounced: initial,
		delay:     delay,
		onSettle:  onSettle,
	}
}

// Value returns the latest raw value
func (s *Slider) Value() float64 {
	return s.value
}

// DebouncedValue returns the last settled value
func (s *Slider) DebouncedValue() float64 {
	return s.debounced
}

// Settling reports whether an update is waiting for the quiet interval to pass
func (s *Slider) Settling() bool {
	return s.pending
}

// UpdateValue records v and restarts the quiet interval
func (s *Slider) UpdateValue(v float64) {
	s.value = v
	s.cancelTimer()
	s.pending = true
	s.timer = s.sched.ScheduleAfter(s.delay, func() {
		s.pending = false
		s.debounced = v
		if s.onSettle != nil {
			s.onSettle(v)
		}
	})
}

// Reset cancels any pending update and restores the initial value
func (s *Slider) Reset() {
	s.cancelTimer()
	s.value = s.initial
	s.debounced = s.initial
}

// Dispose cancels any pending update; the slider keeps its current values
func (s *Slider) Dispose() {
	s.cancelTimer()
}

func (s *Slider) cancelTimer() {
	if s.pending {
		s.sched.CancelTimer(s.timer)
		s.pending = false
	}
}
