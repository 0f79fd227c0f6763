package breakeven

import (
	"context"
	"fmt"
	"math"

	"github.com/rgehrsitz/equitygap/internal/calculation"
	"github.com/rgehrsitz/equitygap/internal/domain"
)

// Solver finds the smallest slider value that reaches a goal
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve binary searches the slider's step grid for the first value whose metric reaches the target.
// The metric is assumed to be non-decreasing in the slider value.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	steps := int(math.Round((req.Slider.Max - req.Slider.Min) / req.Slider.Step))
	valueAt := func(i int) float64 {
		return req.Slider.Clamp(req.Slider.Min + float64(i)*req.Slider.Step)
	}

	result := &Result{Request: req, Slider: req.Slider.ID}

	low, err := s.evaluate(req, valueAt(0))
	if err != nil {
		return nil, err
	}
	result.Iterations++
	if req.Goal.Metric(low) >= req.Target {
		result.Success = true
		result.Value = valueAt(0)
		result.Summary = low
		result.ConvergenceInfo = "Target already met at the slider minimum"
		return result, nil
	}

	high, err := s.evaluate(req, valueAt(steps))
	if err != nil {
		return nil, err
	}
	result.Iterations++
	if req.Goal.Metric(high) < req.Target {
		result.Value = valueAt(steps)
		result.Summary = high
		result.ConvergenceInfo = "Target not reachable within the slider range"
		return result, nil
	}

	lo, hi := 0, steps
	best := high
	for hi-lo > 1 {
		if result.Iterations >= req.MaxIterations {
			result.Value = valueAt(hi)
			result.Summary = best
			result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
			return result, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := (lo + hi) / 2
		summary, err := s.evaluate(req, valueAt(mid))
		if err != nil {
			return nil, err
		}
		result.Iterations++
		if req.Goal.Metric(summary) >= req.Target {
			hi = mid
			best = summary
		} else {
			lo = mid
		}
	}

	result.Success = true
	result.Value = valueAt(hi)
	result.Summary = best
	result.ConvergenceInfo = "Binary search converged"
	return result, nil
}

// SolveEach runs the same goal against every slider, keeping the base for the others
func (s *Solver) SolveEach(ctx context.Context, base domain.ScenarioInput, sliders []domain.SliderConfig, goal Goal, target float64) ([]Result, error) {
	results := make([]Result, 0, len(sliders))
	for _, sc := range sliders {
		res, err := s.Solve(ctx, Request{Base: base, Slider: sc, Goal: goal, Target: target})
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func (s *Solver) evaluate(req Request, value float64) (domain.ResultSummary, error) {
	input, err := req.Base.With(req.Slider.ID, value)
	if err != nil {
		return domain.ResultSummary{}, &BreakEvenError{Operation: "solve", Message: "failed to apply slider value", Cause: err}
	}
	out, err := s.CalcEngine.TryCalculate(input)
	if err != nil {
		return domain.ResultSummary{}, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("failed to calculate %s=%v", req.Slider.ID, value),
			Cause:     err,
		}
	}
	return out.Summary, nil
}
