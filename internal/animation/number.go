package animation

import (
	"time"

	"github.com/rgehrsitz/equitygap/internal/schedule"
)

// Number is an animated numeric value. Starting a new animation supersedes the one in flight.
type Number struct {
	sched    schedule.Scheduler
	value    float64
	target   float64
	duration time.Duration
	cancel   func()
	onChange func(float64)
}

// NewNumber creates an animated value that defaults to the given duration
func NewNumber(s schedule.Scheduler, initial float64, duration time.Duration) *Number {
	return &Number{
		sched:    s,
		value:    initial,
		target:   initial,
		duration: duration,
	}
}

// OnChange registers a callback for every displayed value
func (n *Number) OnChange(fn func(float64)) {
	n.onChange = fn
}

// Value returns the currently displayed value
func (n *Number) Value() float64 {
	return n.value
}

// Target returns the value the number is heading towards
func (n *Number) Target() float64 {
	return n.target
}

// Animating reports whether an animation is still in flight
func (n *Number) Animating() bool {
	return n.cancel != nil && n.value != n.target
}

// AnimateTo starts animating towards target using the default duration
func (n *Number) AnimateTo(target float64) {
	n.AnimateToWithin(target, n.duration)
}

// AnimateToWithin starts animating towards target over d
func (n *Number) AnimateToWithin(target float64, d time.Duration) {
	n.Stop()
	n.target = target
	n.cancel = AnimateValue(n.sched, n.value, target, d, n.set)
}

// SetValue jumps straight to v
func (n *Number) SetValue(v float64) {
	n.Stop()
	n.target = v
	n.set(v)
}

// Stop freezes the value where it is
func (n *Number) Stop() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

func (n *Number) set(v float64) {
	n.value = v
	if n.onChange != nil {
		n.onChange(v)
	}
}
