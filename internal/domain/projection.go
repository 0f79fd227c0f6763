package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trajectory is the projected total wealth for years 0..n, rounded to whole units
type Trajectory []float64

// Final returns the last value of the trajectory, or 0 when empty
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// ResultSummary holds the headline metrics derived from both trajectories
type ResultSummary struct {
	BaselineValue   float64 `json:"baselineValue" yaml:"baseline_value"`
	OptimizedValue  float64 `json:"optimizedValue" yaml:"optimized_value"`
	YearsGained     float64 `json:"yearsGained" yaml:"years_gained"`
	PercentageGain  float64 `json:"percentageGain" yaml:"percentage_gain"`
	ValueDifference float64 `json:"valueDifference" yaml:"value_difference"`
}

// ZeroSummary is returned whenever a calculation cannot be completed
func ZeroSummary() ResultSummary {
	return ResultSummary{}
}

// ChartSeries is the view projection of the two trajectories
type ChartSeries struct {
	Baseline   Trajectory `json:"baseline" yaml:"baseline"`
	Optimized  Trajectory `json:"optimized" yaml:"optimized"`
	Difference Trajectory `json:"difference" yaml:"difference"`
	Labels     []string   `json:"labels" yaml:"labels"`
}

// NewChartSeries assembles chart data from a baseline and optimized trajectory.
// Difference points never go below zero.
func NewChartSeries(baseline, optimized Trajectory) ChartSeries {
	diff := make(Trajectory, len(baseline))
	for i := range baseline {
		if i < len(optimized) && optimized[i] > baseline[i] {
			diff[i] = optimized[i] - baseline[i]
		}
	}
	return ChartSeries{
		Baseline:   baseline,
		Optimized:  optimized,
		Difference: diff,
		Labels:     YearLabels(len(baseline)),
	}
}

// ZeroChartSeries returns all-zero series sized for the given horizon
func ZeroChartSeries(years int) ChartSeries {
	if years < 0 {
		years = 0
	}
	n := years + 1
	return ChartSeries{
		Baseline:   make(Trajectory, n),
		Optimized:  make(Trajectory, n),
		Difference: make(Trajectory, n),
		Labels:     YearLabels(n),
	}
}

// YearLabels returns "Year 1".."Year n"
func YearLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Year %d", i+1)
	}
	return labels
}

// Report bundles one calculation for the CLI formatters
type Report struct {
	ID          uuid.UUID     `json:"id" yaml:"id"`
	GeneratedAt time.Time     `json:"generatedAt" yaml:"generated_at"`
	Currency    string        `json:"currency" yaml:"currency"`
	Input       ScenarioInput `json:"input" yaml:"input"`
	Assumptions Assumptions   `json:"assumptions" yaml:"assumptions"`
	Summary     ResultSummary `json:"summary" yaml:"summary"`
	Chart       ChartSeries   `json:"chart" yaml:"chart"`
}

// SweepPoint is one step of a single-parameter sweep
type SweepPoint struct {
	Value   float64       `json:"value" yaml:"value"`
	Summary ResultSummary `json:"summary" yaml:"summary"`
}

// Sweep holds the results of varying one slider across a range
type Sweep struct {
	Parameter string        `json:"parameter" yaml:"parameter"`
	Base      ScenarioInput `json:"base" yaml:"base"`
	Points    []SweepPoint  `json:"points" yaml:"points"`
}
