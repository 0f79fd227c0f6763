package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestDefault_IsValid(t *testing.T) {
	config := Default()

	assert.NoError(t, NewInputParser().ValidateConfiguration(config))
	assert.Equal(t, domain.DefaultInput(), config.Inputs)
	assert.Equal(t, "GBP", config.Currency)
	assert.Len(t, config.Sliders, 5)
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "valid.yaml")

	validYAML := `
inputs:
  age: 40
  equity: 120000
  cash: 20000
  monthly_savings: 750
  investment_interest: 60

assumptions:
  baseline_annual_return: 0.04
  optimized_annual_return: 0.08
  home_appreciation_rate: 0.025
  equity_release_fraction: 0.4
  projection_years: 25
  years_gained_floor: 0.5
  years_gained_cap: 10

animation:
  durations:
    odometer: 800ms
  debounce: 20ms

currency: USD
`
	require.NoError(t, os.WriteFile(validFile, []byte(validYAML), 0644))

	config, err := NewInputParser().LoadFromFile(validFile)

	require.NoError(t, err)
	assert.Equal(t, 40, config.Inputs.Age)
	assert.Equal(t, 120000.0, config.Inputs.Equity)
	assert.Equal(t, 750.0, config.Inputs.MonthlySavings)
	assert.True(t, config.Assumptions.OptimizedAnnualReturn.Equal(decimal.NewFromFloat(0.08)))
	assert.True(t, config.Assumptions.EquityReleaseFraction.Equal(decimal.NewFromFloat(0.4)))
	assert.Equal(t, 25, config.Assumptions.ProjectionYears)
	assert.Equal(t, 10.0, config.Assumptions.YearsGainedCap)
	assert.Equal(t, 800*time.Millisecond, config.Animation.Durations.Odometer)
	assert.Equal(t, 150*time.Millisecond, config.Animation.Durations.Fast, "unset durations keep defaults")
	assert.Equal(t, 20*time.Millisecond, config.Animation.Debounce)
	assert.Equal(t, "USD", config.Currency)
	assert.Len(t, config.Sliders, 5, "sliders default when omitted")
}

func TestInputParser_Parse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"negative equity", "inputs: {equity: -5}", "equity"},
		{"interest out of range", "inputs: {investment_interest: 101}", "investment interest"},
		{"release fraction", "assumptions: {equity_release_fraction: 1.5}", "equity release fraction"},
		{"projection years", "assumptions: {projection_years: 0}", "projection years"},
		{"cap below floor", "assumptions: {years_gained_floor: 5, years_gained_cap: 2}", "cap"},
		{"return too low", "assumptions: {baseline_annual_return: -1}", "baseline annual return"},
		{"debounce", "animation: {debounce: 0s}", "debounce"},
		{"currency", "currency: JPY", "currency"},
		{"unknown slider", `sliders: [{id: salary, label: Salary, min: 0, max: 1, step: 1, default: 0, format: currency}]`, "unknown id"},
		{"missing slider", `sliders: [{id: age, label: Age, min: 25, max: 70, step: 1, default: 32, format: years}]`, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewInputParser().Parse([]byte(tt.yaml))

			assert.Error(t, err)
			assert.Nil(t, config)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestInputParser_ValidateSliders(t *testing.T) {
	parser := NewInputParser()

	sliders := domain.DefaultSliders()
	assert.NoError(t, parser.validateSliders(sliders))

	dup := append(domain.DefaultSliders(), domain.DefaultSliders()[0])
	assert.ErrorContains(t, parser.validateSliders(dup), "more than once")

	bad := domain.DefaultSliders()
	bad[1].Step = 0
	assert.ErrorContains(t, parser.validateSliders(bad), "step must be positive")

	bad = domain.DefaultSliders()
	bad[2].Default = 1e9
	assert.ErrorContains(t, parser.validateSliders(bad), "outside")

	bad = domain.DefaultSliders()
	bad[3].Format = "roman"
	assert.ErrorContains(t, parser.validateSliders(bad), "unknown format")
}
