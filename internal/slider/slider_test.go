package slider

import (
	"testing"
	"time"

	"github.com/rgehrsitz/equitygap/internal/schedule"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSlider_BurstSettlesOnce(t *testing.T) {
	loop := schedule.NewLoop(epoch)
	var settled []float64
	s := New(loop, 0, func(v float64) { settled = append(settled, v) })

	for i := 1; i <= 5; i++ {
		s.UpdateValue(float64(i * 100))
		loop.Tick(epoch.Add(time.Duration(i) * 2 * time.Millisecond))
	}

	assert.Equal(t, 500.0, s.Value(), "raw value updates immediately")
	assert.Equal(t, 0.0, s.DebouncedValue(), "debounced value waits for quiet")
	assert.True(t, s.Settling())

	loop.Advance(100 * time.Millisecond)

	assert.Equal(t, []float64{500}, settled)
	assert.Equal(t, 500.0, s.DebouncedValue())
	assert.False(t, s.Settling())
}

func TestSlider_SeparateBurstsSettleSeparately(t *testing.T) {
	loop := schedule.NewLoop(epoch)
	var settled []float64
	s := New(loop, 0, func(v float64) { settled = append(settled, v) })

	s.UpdateValue(1)
	loop.Advance(50 * time.Millisecond)
	s.UpdateValue(2)
	loop.Advance(50 * time.Millisecond)

	assert.Equal(t, []float64{1, 2}, settled)
}

func TestSlider_NilCallback(t *testing.T) {
	loop := schedule.NewLoop(epoch)
	s := New(loop, 3, nil)

	s.UpdateValue(7)
	loop.Advance(50 * time.Millisecond)

	assert.Equal(t, 7.0, s.DebouncedValue())
}

func TestSlider_Reset(t *testing.T) {
	loop := schedule.NewLoop(epoch)
	called := false
	s := New(loop, 10, func(float64) { called = true })

	s.UpdateValue(99)
	s.Reset()
	s.Reset()
	loop.Advance(50 * time.Millisecond)

	assert.False(t, called, "reset should cancel the pending settle")
	assert.Equal(t, 10.0, s.Value())
	assert.Equal(t, 10.0, s.DebouncedValue())
	assert.False(t, loop.Pending())
}

func TestSlider_Dispose(t *testing.T) {
	loop := schedule.NewLoop(epoch)
	called := false
	s := NewWithDelay(loop, 0, 40*time.Millisecond, func(float64) { called = true })

	s.UpdateValue(5)
	s.Dispose()
	loop.Advance(100 * time.Millisecond)

	assert.False(t, called)
	assert.Equal(t, 5.0, s.Value())
	assert.Equal(t, 0.0, s.DebouncedValue())
}
