// Package schedule provides the frame and timer hooks that animations and debounced inputs run on.
package schedule

import "time"

// FrameID identifies a pending frame callback
type FrameID uint64

// TimerID identifies a pending timer
type TimerID uint64

// Scheduler queues work against the display refresh signal and the clock.
// Cancelling an unknown or already-fired handle is a no-op.
type Scheduler interface {
	Now() time.Time
	ScheduleFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	ScheduleAfter(d time.Duration, fn func()) TimerID
	CancelTimer(id TimerID)
}
