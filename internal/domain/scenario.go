package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks a scenario input that cannot be projected
var ErrInvalidInput = errors.New("invalid scenario input")

// ScenarioInput holds the household figures supplied by the sliders
type ScenarioInput struct {
	Age                int     `yaml:"age" json:"age"`
	Equity             float64 `yaml:"equity" json:"equity"`                          // Current home equity
	Cash               float64 `yaml:"cash" json:"cash"`                              // Available cash
	MonthlySavings     float64 `yaml:"monthly_savings" json:"monthlySavings"`         // Amount saved every month
	InvestmentInterest float64 `yaml:"investment_interest" json:"investmentInterest"` // 0-100
}

// DefaultInput returns the values the calculator opens with
func DefaultInput() ScenarioInput {
	return ScenarioInput{
		Age:                32,
		Equity:             75000,
		Cash:               15000,
		MonthlySavings:     500,
		InvestmentInterest: 50,
	}
}

// Validate checks that every field is finite and inside its allowed range
func (in ScenarioInput) Validate() error {
	if in.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative", ErrInvalidInput)
	}
	amounts := []struct {
		name  string
		value float64
	}{
		{"equity", in.Equity},
		{"cash", in.Cash},
		{"monthly savings", in.MonthlySavings},
	}
	for _, a := range amounts {
		if !IsPositive(a.value) {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidInput, a.name, a.value)
		}
	}
	if !IsInRange(in.InvestmentInterest, 0, 100) {
		return fmt.Errorf("%w: investment interest must be between 0 and 100, got %v", ErrInvalidInput, in.InvestmentInterest)
	}
	return nil
}

// With returns a copy of the input with the slider identified by id set to value.
func (in ScenarioInput) With(id string, value float64) (ScenarioInput, error) {
	switch id {
	case SliderAge:
		in.Age = int(math.Round(value))
	case SliderEquity:
		in.Equity = value
	case SliderCash:
		in.Cash = value
	case SliderMonthlySavings:
		in.MonthlySavings = value
	case SliderInvestmentInterest:
		in.InvestmentInterest = value
	default:
		return in, fmt.Errorf("unknown slider %q", id)
	}
	return in, nil
}

// Get returns the value of the slider identified by id.
func (in ScenarioInput) Get(id string) (float64, bool) {
	switch id {
	case SliderAge:
		return float64(in.Age), true
	case SliderEquity:
		return in.Equity, true
	case SliderCash:
		return in.Cash, true
	case SliderMonthlySavings:
		return in.MonthlySavings, true
	case SliderInvestmentInterest:
		return in.InvestmentInterest, true
	}
	return 0, false
}

// IsInRange reports whether value is a real number within [min, max]
func IsInRange(value, min, max float64) bool {
	if math.IsNaN(value) {
		return false
	}
	return value >= min && value <= max
}

// IsPositive reports whether value is finite and not negative
func IsPositive(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}
