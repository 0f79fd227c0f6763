package calculation

import (
	"fmt"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// SweepParameter describes one slider to vary
type SweepParameter struct {
	Name  string // slider id
	Min   float64
	Max   float64
	Steps int
}

// Sweep recalculates the scenario for evenly spaced values of a single slider
func (ce *CalculationEngine) Sweep(base domain.ScenarioInput, param SweepParameter) (*domain.Sweep, error) {
	if _, ok := base.Get(param.Name); !ok {
		return nil, fmt.Errorf("unknown sweep parameter %q", param.Name)
	}
	if param.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", param.Steps)
	}
	if param.Max < param.Min {
		return nil, fmt.Errorf("sweep range is inverted: %v > %v", param.Min, param.Max)
	}

	sweep := &domain.Sweep{
		Parameter: param.Name,
		Base:      base,
		Points:    make([]domain.SweepPoint, 0, param.Steps),
	}

	for _, value := range sweepValues(param) {
		input, err := base.With(param.Name, value)
		if err != nil {
			return nil, err
		}
		out, err := ce.TryCalculate(input)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate %s=%v: %w", param.Name, value, err)
		}
		sweep.Points = append(sweep.Points, domain.SweepPoint{Value: value, Summary: out.Summary})
	}

	return sweep, nil
}

func sweepValues(param SweepParameter) []float64 {
	values := make([]float64, param.Steps)
	step := (param.Max - param.Min) / float64(param.Steps-1)
	for i := range values {
		values[i] = param.Min + step*float64(i)
	}
	values[len(values)-1] = param.Max
	return values
}
