package tui

import (
	"time"

	"github.com/rgehrsitz/equitygap/internal/animation"
	"github.com/rgehrsitz/equitygap/internal/calculation"
	"github.com/rgehrsitz/equitygap/internal/config"
	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/rgehrsitz/equitygap/internal/schedule"
	"github.com/rgehrsitz/equitygap/internal/slider"
)

// Metric identifiers for the animated headline numbers
const (
	MetricYearsGained     = "yearsGained"
	MetricValueDifference = "valueDifference"
	MetricPercentageGain  = "percentageGain"
	MetricOptimizedValue  = "optimizedValue"
	MetricBaselineValue   = "baselineValue"
)

// Session wires slider input through the debounce buffers into the calculation engine and
// animates the resulting metrics. All work happens on the loop's goroutine.
type Session struct {
	cfg     *config.Configuration
	engine  *calculation.CalculationEngine
	loop    *schedule.Loop
	input   domain.ScenarioInput
	results calculation.Results
	buffers map[string]*slider.Slider
	metrics map[string]*animation.Number
	runs    int
}

// NewSession computes the initial results and shows them without animation
func NewSession(cfg *config.Configuration, engine *calculation.CalculationEngine, start time.Time) *Session {
	s := &Session{
		cfg:     cfg,
		engine:  engine,
		loop:    schedule.NewLoop(start),
		input:   cfg.Inputs,
		buffers: make(map[string]*slider.Slider, len(cfg.Sliders)),
		metrics: make(map[string]*animation.Number),
	}

	for _, sc := range cfg.Sliders {
		id := sc.ID
		initial, _ := s.input.Get(id)
		s.buffers[id] = slider.NewWithDelay(s.loop, initial, cfg.Animation.Debounce, func(v float64) {
			s.apply(id, v)
		})
	}

	d := cfg.Animation.Durations
	s.metrics[MetricYearsGained] = animation.NewNumber(s.loop, 0, d.Slow)
	s.metrics[MetricPercentageGain] = animation.NewNumber(s.loop, 0, d.Slow)
	s.metrics[MetricValueDifference] = animation.NewNumber(s.loop, 0, d.Odometer)
	s.metrics[MetricOptimizedValue] = animation.NewNumber(s.loop, 0, d.Odometer)
	s.metrics[MetricBaselineValue] = animation.NewNumber(s.loop, 0, d.Odometer)

	s.recalculate()
	for id, n := range s.metrics {
		n.SetValue(metricValue(s.results.Summary, id))
	}
	return s
}

// Input returns the settled scenario input
func (s *Session) Input() domain.ScenarioInput { return s.input }

// Results returns the latest calculation
func (s *Session) Results() calculation.Results { return s.results }

// Runs returns how many calculations have been performed
func (s *Session) Runs() int { return s.runs }

// Sliders returns the slider descriptors
func (s *Session) Sliders() []domain.SliderConfig { return s.cfg.Sliders }

// Currency returns the configured ISO currency code
func (s *Session) Currency() string { return s.cfg.Currency }

// Assumptions returns the growth constants in use
func (s *Session) Assumptions() domain.Assumptions { return s.engine.Assumptions }

// Metric returns the animated value for a metric id, or nil
func (s *Session) Metric(id string) *animation.Number { return s.metrics[id] }

// RawValue returns the latest, possibly unsettled, value of a slider
func (s *Session) RawValue(id string) float64 {
	if b, ok := s.buffers[id]; ok {
		return b.Value()
	}
	v, _ := s.input.Get(id)
	return v
}

// Settling reports whether the slider has input waiting to be applied
func (s *Session) Settling(id string) bool {
	b, ok := s.buffers[id]
	return ok && b.Settling()
}

// SetSlider feeds a new raw value into the slider's debounce buffer
func (s *Session) SetSlider(id string, v float64) {
	sc, ok := domain.SliderByID(s.cfg.Sliders, id)
	if !ok {
		return
	}
	s.buffers[id].UpdateValue(sc.Clamp(v))
}

// Reset restores every slider to its configured value and recalculates
func (s *Session) Reset() {
	for _, b := range s.buffers {
		b.Reset()
	}
	s.input = s.cfg.Inputs
	s.recalculate()
	s.animateMetrics()
}

// Tick advances the session clock, running animation frames and due debounce timers
func (s *Session) Tick(now time.Time) { s.loop.Tick(now) }

// Busy reports whether any timer or animation frame is outstanding
func (s *Session) Busy() bool { return s.loop.Pending() }

// Close cancels pending input and stops all animations
func (s *Session) Close() {
	for _, b := range s.buffers {
		b.Dispose()
	}
	for _, n := range s.metrics {
		n.Stop()
	}
}

func (s *Session) apply(id string, v float64) {
	updated, err := s.input.With(id, v)
	if err != nil {
		return
	}
	s.input = updated
	s.recalculate()
	s.animateMetrics()
}

func (s *Session) recalculate() {
	s.results = s.engine.Calculate(s.input)
	s.runs++
}

func (s *Session) animateMetrics() {
	for id, n := range s.metrics {
		n.AnimateTo(metricValue(s.results.Summary, id))
	}
}

func metricValue(sum domain.ResultSummary, id string) float64 {
	switch id {
	case MetricYearsGained:
		return sum.YearsGained
	case MetricValueDifference:
		return sum.ValueDifference
	case MetricPercentageGain:
		return sum.PercentageGain
	case MetricOptimizedValue:
		return sum.OptimizedValue
	case MetricBaselineValue:
		return sum.BaselineValue
	}
	return 0
}
