// Package animation interpolates displayed numbers towards new targets one frame at a time.
package animation

import (
	"math"
	"time"

	"github.com/rgehrsitz/equitygap/internal/schedule"
)

// Durations used by the calculator views
type Durations struct {
	Fast     time.Duration `yaml:"fast" json:"fast"`
	Normal   time.Duration `yaml:"normal" json:"normal"`
	Slow     time.Duration `yaml:"slow" json:"slow"`
	Odometer time.Duration `yaml:"odometer" json:"odometer"`
}

// DefaultDurations returns the stock animation timings
func DefaultDurations() Durations {
	return Durations{
		Fast:     150 * time.Millisecond,
		Normal:   250 * time.Millisecond,
		Slow:     400 * time.Millisecond,
		Odometer: time.Second,
	}
}

// minDelta is the smallest change worth animating
const minDelta = 0.01

// EaseOutCubic decelerates towards the end of the animation
func EaseOutCubic(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}

// AnimateValue moves from start to end over duration, calling cb once per frame with the
// interpolated value. The last call always delivers end exactly. Changes smaller than a cent
// skip animation and call cb(end) immediately.
//
// The returned function cancels the animation; after it returns cb is never called again.
// Calling it more than once is safe.
func AnimateValue(s schedule.Scheduler, start, end float64, duration time.Duration, cb func(float64)) (cancel func()) {
	delta := end - start
	if math.Abs(delta) < minDelta {
		cb(end)
		return func() {}
	}

	startTime := s.Now()
	cancelled := false
	var frameID schedule.FrameID

	var step func()
	step = func() {
		if cancelled {
			return
		}

		progress := 1.0
		if duration > 0 {
			progress = math.Min(float64(s.Now().Sub(startTime))/float64(duration), 1)
		}
		if progress >= 1 {
			cb(end)
			return
		}

		cb(start + delta*EaseOutCubic(progress))
		frameID = s.ScheduleFrame(step)
	}
	frameID = s.ScheduleFrame(step)

	return func() {
		if cancelled {
			return
		}
		cancelled = true
		s.CancelFrame(frameID)
	}
}
