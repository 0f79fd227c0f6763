package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.Equal(t, domain.DefaultProjectionYears, engine.Years())
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_Calculate_DefaultInput(t *testing.T) {
	engine := NewCalculationEngine()

	res := engine.Calculate(domain.DefaultInput())

	assert.Equal(t, 645507.0, res.Summary.BaselineValue)
	assert.Equal(t, 1057430.0, res.Summary.OptimizedValue)
	assert.Equal(t, 411923.0, res.Summary.ValueDifference)
	assert.Equal(t, 63.81, res.Summary.PercentageGain)
	assert.Equal(t, 6.0, res.Summary.YearsGained)

	require.Len(t, res.Chart.Baseline, 31)
	require.Len(t, res.Chart.Optimized, 31)
	require.Len(t, res.Chart.Difference, 31)
	require.Len(t, res.Chart.Labels, 31)
	assert.Equal(t, 90000.0, res.Chart.Baseline[0])
	assert.Equal(t, "Year 1", res.Chart.Labels[0])
	assert.Equal(t, "Year 31", res.Chart.Labels[30])
}

func TestCalculationEngine_Calculate_Invariants(t *testing.T) {
	engine := NewCalculationEngine()

	inputs := []domain.ScenarioInput{
		{Equity: 0, Cash: 0, MonthlySavings: 0},
		{Equity: 0, Cash: 10000, MonthlySavings: 0},
		{Equity: 500000, Cash: 0, MonthlySavings: 0},
		{Equity: 0, Cash: 0, MonthlySavings: 500},
		{Equity: 500000, Cash: 100000, MonthlySavings: 5000, InvestmentInterest: 100},
		domain.DefaultInput(),
	}

	for _, in := range inputs {
		res := engine.Calculate(in)

		assert.Len(t, res.Chart.Baseline, 31)
		assert.Len(t, res.Chart.Optimized, 31)
		assert.Equal(t, in.Equity+in.Cash, res.Chart.Baseline[0], "baseline year 0 for %+v", in)
		assert.Equal(t, in.Equity+in.Cash, res.Chart.Optimized[0], "optimized year 0 for %+v", in)
		assert.GreaterOrEqual(t, res.Summary.YearsGained, 0.5)
		assert.LessOrEqual(t, res.Summary.YearsGained, 12.0)
		assert.False(t, math.IsNaN(res.Summary.PercentageGain))
		assert.GreaterOrEqual(t, res.Summary.PercentageGain, 0.0)

		for i := range res.Chart.Baseline {
			assert.GreaterOrEqual(t, res.Chart.Baseline[i], 0.0)
			assert.GreaterOrEqual(t, res.Chart.Optimized[i], 0.0)
			assert.Equal(t, math.Max(0, res.Chart.Optimized[i]-res.Chart.Baseline[i]), res.Chart.Difference[i])
		}
	}
}

func TestCalculationEngine_Calculate_Deterministic(t *testing.T) {
	engine := NewCalculationEngine()
	in := domain.DefaultInput()

	first := engine.Calculate(in)
	second := engine.Calculate(in)

	assert.Equal(t, first, second)
}

func TestCalculationEngine_Calculate_InvalidInputFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		input domain.ScenarioInput
	}{
		{"NaN savings", domain.ScenarioInput{Equity: 75000, Cash: 15000, MonthlySavings: math.NaN()}},
		{"infinite equity", domain.ScenarioInput{Equity: math.Inf(1), Cash: 15000}},
		{"negative cash", domain.ScenarioInput{Equity: 75000, Cash: -1}},
		{"interest out of range", domain.ScenarioInput{Equity: 75000, InvestmentInterest: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &TestLogger{}
			engine := NewCalculationEngine()
			engine.SetLogger(logger)

			res := engine.Calculate(tt.input)

			assert.Equal(t, domain.ZeroSummary(), res.Summary)
			assert.Len(t, res.Chart.Baseline, 31)
			assert.Len(t, res.Chart.Labels, 31)
			for _, v := range res.Chart.Optimized {
				assert.Zero(t, v)
			}
			assert.NotEmpty(t, logger.messages, "Should log the fallback")
		})
	}
}

func TestCalculationEngine_TryCalculate_ReportsError(t *testing.T) {
	engine := NewCalculationEngine()

	res, err := engine.TryCalculate(domain.ScenarioInput{MonthlySavings: math.NaN()})

	assert.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "monthly savings")
}

func TestCalculationEngine_OverflowingInput(t *testing.T) {
	engine := NewCalculationEngine()
	input := domain.ScenarioInput{Age: 32, Equity: 1e308}
	require.NoError(t, input.Validate(), "huge finite values are valid input")

	var res *Results
	var err error
	assert.NotPanics(t, func() { res, err = engine.TryCalculate(input) })
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "overflows")

	fallback := engine.Calculate(input)
	assert.Equal(t, domain.ZeroSummary(), fallback.Summary)
	assert.Len(t, fallback.Chart.Baseline, domain.DefaultProjectionYears+1)

	_, err = engine.Sweep(input, SweepParameter{Name: domain.SliderCash, Min: 0, Max: 1000, Steps: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculationEngine_Calculate_ZeroHorizonUsesDefault(t *testing.T) {
	engine := NewCalculationEngine()
	engine.Assumptions.ProjectionYears = 0

	res := engine.Calculate(domain.DefaultInput())

	assert.Len(t, res.Chart.Baseline, domain.DefaultProjectionYears+1)
}

func TestCalculationEngine_Calculate_BadAssumptionsFallBack(t *testing.T) {
	engine := NewCalculationEngine()
	engine.Assumptions.EquityReleaseFraction = engine.Assumptions.EquityReleaseFraction.Mul(decimalTwelve)

	res := engine.Calculate(domain.DefaultInput())

	assert.Equal(t, domain.ZeroSummary(), res.Summary)
	assert.Len(t, res.Chart.Difference, 31)
}

func TestCalculationEngine_Sweep(t *testing.T) {
	engine := NewCalculationEngine()

	sweep, err := engine.Sweep(domain.DefaultInput(), SweepParameter{
		Name:  domain.SliderMonthlySavings,
		Min:   0,
		Max:   1000,
		Steps: 5,
	})

	require.NoError(t, err)
	require.Len(t, sweep.Points, 5)
	assert.Equal(t, domain.SliderMonthlySavings, sweep.Parameter)
	assert.Equal(t, 0.0, sweep.Points[0].Value)
	assert.Equal(t, 250.0, sweep.Points[1].Value)
	assert.Equal(t, 1000.0, sweep.Points[4].Value)
	assert.Equal(t, engine.Summary(domain.DefaultInput()), sweep.Points[2].Summary)
	for i := 1; i < len(sweep.Points); i++ {
		assert.Greater(t, sweep.Points[i].Summary.BaselineValue, sweep.Points[i-1].Summary.BaselineValue)
	}
}

func TestCalculationEngine_Sweep_Errors(t *testing.T) {
	engine := NewCalculationEngine()
	base := domain.DefaultInput()

	_, err := engine.Sweep(base, SweepParameter{Name: "salary", Min: 0, Max: 1, Steps: 3})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sweep parameter")

	_, err = engine.Sweep(base, SweepParameter{Name: domain.SliderCash, Min: 0, Max: 1, Steps: 1})
	assert.Error(t, err)

	_, err = engine.Sweep(base, SweepParameter{Name: domain.SliderCash, Min: 10, Max: 1, Steps: 3})
	assert.Error(t, err)

	_, err = engine.Sweep(base, SweepParameter{Name: domain.SliderCash, Min: -100, Max: 0, Steps: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
