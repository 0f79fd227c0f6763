package breakeven

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// Goal names the headline metric a solve tries to reach
type Goal string

const (
	GoalYearsGained Goal = "years_gained" // reach at least Target years gained
	GoalExtraWealth Goal = "extra_wealth" // reach at least Target value difference
)

// ParseGoal maps a command line name onto a Goal
func ParseGoal(name string) (Goal, error) {
	switch name {
	case "years", "years_gained", "years-gained":
		return GoalYearsGained, nil
	case "wealth", "extra_wealth", "extra-wealth":
		return GoalExtraWealth, nil
	}
	return "", &BreakEvenError{Operation: "parse_goal", Message: fmt.Sprintf("unknown goal %q", name)}
}

// Metric extracts the value the goal is measured on
func (g Goal) Metric(s domain.ResultSummary) float64 {
	if g == GoalYearsGained {
		return s.YearsGained
	}
	return s.ValueDifference
}

// Request describes one goal-seek over a single slider
type Request struct {
	Base          domain.ScenarioInput
	Slider        domain.SliderConfig
	Goal          Goal
	Target        float64
	MaxIterations int
}

// Validate checks the request before any calculation runs
func (r Request) Validate() error {
	if r.Goal != GoalYearsGained && r.Goal != GoalExtraWealth {
		return &BreakEvenError{Operation: "validate_request", Message: fmt.Sprintf("unsupported goal: %s", r.Goal)}
	}
	if _, ok := r.Base.Get(r.Slider.ID); !ok {
		return &BreakEvenError{Operation: "validate_request", Message: fmt.Sprintf("unknown slider %q", r.Slider.ID)}
	}
	if r.Slider.Step <= 0 || r.Slider.Max <= r.Slider.Min {
		return &BreakEvenError{Operation: "validate_request", Message: fmt.Sprintf("slider %s has no searchable range", r.Slider.ID)}
	}
	if math.IsNaN(r.Target) || math.IsInf(r.Target, 0) {
		return &BreakEvenError{Operation: "validate_request", Message: "target must be a finite number"}
	}
	return nil
}

// Result is the outcome of a goal-seek
type Result struct {
	Request         Request              `json:"-"`
	Slider          string               `json:"slider"`
	Success         bool                 `json:"success"`
	Iterations      int                  `json:"iterations"`
	Value           float64              `json:"value"`
	Summary         domain.ResultSummary `json:"summary"`
	ConvergenceInfo string               `json:"convergenceInfo"`
}

// SolverOptions configures the search
type SolverOptions struct {
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{MaxIterations: 50}
}

// BreakEvenError represents errors from the goal-seek solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
