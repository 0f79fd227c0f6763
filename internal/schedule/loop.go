package schedule

import (
	"sort"
	"time"
)

// FrameInterval is one refresh at 60Hz
const FrameInterval = 16 * time.Millisecond

type frame struct {
	id FrameID
	fn func()
}

type timer struct {
	id       TimerID
	deadline time.Time
	seq      uint64
	fn       func()
}

// Loop is a single-threaded Scheduler driven by explicit Tick calls.
//
// Frame callbacks queued before a tick run on that tick; callbacks queued while a tick is running
// wait for the next one. Timers fire on the first tick at or after their deadline, earliest first.
// A Loop must only be used from one goroutine.
type Loop struct {
	now       time.Time
	nextFrame FrameID
	nextTimer TimerID
	seq       uint64
	frames    []frame
	running   map[FrameID]struct{}
	timers    map[TimerID]*timer
}

// NewLoop creates a loop whose clock starts at start
func NewLoop(start time.Time) *Loop {
	return &Loop{
		now:    start,
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the time of the most recent tick
func (l *Loop) Now() time.Time {
	return l.now
}

// ScheduleFrame queues fn for the next tick
func (l *Loop) ScheduleFrame(fn func()) FrameID {
	l.nextFrame++
	l.frames = append(l.frames, frame{id: l.nextFrame, fn: fn})
	return l.nextFrame
}

// CancelFrame removes a queued frame callback
func (l *Loop) CancelFrame(id FrameID) {
	delete(l.running, id)
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// ScheduleAfter runs fn on the first tick at least d after now
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) TimerID {
	l.nextTimer++
	l.seq++
	l.timers[l.nextTimer] = &timer{
		id:       l.nextTimer,
		deadline: l.now.Add(d),
		seq:      l.seq,
		fn:       fn,
	}
	return l.nextTimer
}

// CancelTimer stops a pending timer
func (l *Loop) CancelTimer(id TimerID) {
	delete(l.timers, id)
}

// Pending reports whether any frame callback or timer is outstanding
func (l *Loop) Pending() bool {
	return len(l.frames) > 0 || len(l.timers) > 0
}

// Tick advances the clock to now, runs the queued frame callbacks and fires due timers.
// The clock never moves backwards.
func (l *Loop) Tick(now time.Time) {
	if now.After(l.now) {
		l.now = now
	}

	frames := l.frames
	l.frames = nil
	l.running = make(map[FrameID]struct{}, len(frames))
	for _, f := range frames {
		l.running[f.id] = struct{}{}
	}
	for _, f := range frames {
		// an earlier callback in this tick may have cancelled this one
		if _, ok := l.running[f.id]; !ok {
			continue
		}
		delete(l.running, f.id)
		f.fn()
	}
	l.running = nil

	for _, t := range l.dueTimers() {
		if _, ok := l.timers[t.id]; !ok {
			continue
		}
		delete(l.timers, t.id)
		t.fn()
	}
}

// Advance ticks once per frame interval until d has elapsed
func (l *Loop) Advance(d time.Duration) {
	end := l.now.Add(d)
	for l.now.Before(end) {
		next := l.now.Add(FrameInterval)
		if next.After(end) {
			next = end
		}
		l.Tick(next)
	}
}

func (l *Loop) dueTimers() []*timer {
	var due []*timer
	for _, t := range l.timers {
		if !t.deadline.After(l.now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	return due
}
