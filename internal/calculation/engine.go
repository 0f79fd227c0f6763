package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Results carries everything the view layer reads after one calculation
type Results struct {
	Summary domain.ResultSummary `json:"summary"`
	Chart   domain.ChartSeries   `json:"chart"`
}

// CalculationEngine turns scenario inputs into summaries and chart series
type CalculationEngine struct {
	Assumptions domain.Assumptions
	Logger      Logger
	Debug       bool // Log every successful calculation at debug level
}

// NewCalculationEngine creates an engine using the default assumptions
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewCalculationEngineWithAssumptions creates an engine with caller supplied growth constants
func NewCalculationEngineWithAssumptions(assumptions domain.Assumptions) *CalculationEngine {
	return &CalculationEngine{
		Assumptions: assumptions,
		Logger:      NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil installs a no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Years returns the projection horizon in use
func (ce *CalculationEngine) Years() int {
	if ce.Assumptions.ProjectionYears < 1 {
		return domain.DefaultProjectionYears
	}
	return ce.Assumptions.ProjectionYears
}

// Calculate projects both strategies and assembles the view models.
// It never fails: invalid input, non-finite values and panics all produce a zeroed result.
func (ce *CalculationEngine) Calculate(input domain.ScenarioInput) (res Results) {
	defer func() {
		if r := recover(); r != nil {
			ce.logger().Errorf("calculation panicked for %+v: %v", input, r)
			res = ce.fallback()
		}
	}()

	out, err := ce.TryCalculate(input)
	if err != nil {
		ce.logger().Warnf("falling back to zero result: %v", err)
		return ce.fallback()
	}
	return *out
}

// Summary returns only the headline metrics
func (ce *CalculationEngine) Summary(input domain.ScenarioInput) domain.ResultSummary {
	return ce.Calculate(input).Summary
}

// ChartSeries returns only the chart data
func (ce *CalculationEngine) ChartSeries(input domain.ScenarioInput) domain.ChartSeries {
	return ce.Calculate(input).Chart
}

// TryCalculate performs the same work as Calculate but reports why a calculation failed
func (ce *CalculationEngine) TryCalculate(input domain.ScenarioInput) (*Results, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	baseline, optimized, err := ProjectTrajectories(input.Equity, input.Cash, input.MonthlySavings, ce.Years(), ce.Assumptions)
	if err != nil {
		return nil, fmt.Errorf("failed to project trajectories: %w", err)
	}
	if err := checkTrajectories(baseline, optimized); err != nil {
		return nil, err
	}

	summary := ce.summarize(baseline, optimized)
	if err := checkFinite(summary); err != nil {
		return nil, err
	}

	if ce.Debug {
		ce.logger().Debugf("baseline final %.0f, optimized final %.0f, years gained %.1f",
			summary.BaselineValue, summary.OptimizedValue, summary.YearsGained)
	}

	return &Results{
		Summary: summary,
		Chart:   domain.NewChartSeries(baseline, optimized),
	}, nil
}

func (ce *CalculationEngine) summarize(baseline, optimized domain.Trajectory) domain.ResultSummary {
	baselineFinal := decimal.NewFromFloat(baseline.Final())
	optimizedFinal := decimal.NewFromFloat(optimized.Final())
	difference := optimizedFinal.Sub(baselineFinal).Round(0)

	percentageGain := decimalZero
	if baselineFinal.GreaterThan(decimalZero) {
		percentageGain = difference.Div(baselineFinal).Mul(decimalHundred).Round(2)
	}

	yearsGained := YearsGained(baseline, optimized, ce.Assumptions.YearsGainedFloor, ce.Assumptions.YearsGainedCap)

	return domain.ResultSummary{
		BaselineValue:   baselineFinal.InexactFloat64(),
		OptimizedValue:  optimizedFinal.InexactFloat64(),
		YearsGained:     decimal.NewFromFloat(yearsGained).Round(1).InexactFloat64(),
		PercentageGain:  percentageGain.InexactFloat64(),
		ValueDifference: difference.InexactFloat64(),
	}
}

func (ce *CalculationEngine) fallback() Results {
	return Results{
		Summary: domain.ZeroSummary(),
		Chart:   domain.ZeroChartSeries(ce.Years()),
	}
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// checkTrajectories rejects projections that overflowed float64
func checkTrajectories(trajectories ...domain.Trajectory) error {
	for _, t := range trajectories {
		for year, v := range t {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: projection overflows at year %d", domain.ErrInvalidInput, year)
			}
		}
	}
	return nil
}

func checkFinite(s domain.ResultSummary) error {
	for _, v := range []float64{s.BaselineValue, s.OptimizedValue, s.YearsGained, s.PercentageGain, s.ValueDifference} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite result %+v", domain.ErrInvalidInput, s)
		}
	}
	return nil
}
