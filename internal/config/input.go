package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/equitygap/internal/animation"
	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/rgehrsitz/equitygap/internal/slider"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the full calculator setup read from YAML
type Configuration struct {
	Inputs      domain.ScenarioInput  `yaml:"inputs" json:"inputs"`
	Assumptions domain.Assumptions    `yaml:"assumptions" json:"assumptions"`
	Animation   AnimationSettings     `yaml:"animation" json:"animation"`
	Sliders     []domain.SliderConfig `yaml:"sliders" json:"sliders"`
	Currency    string                `yaml:"currency" json:"currency"`
}

// AnimationSettings controls the view timings
type AnimationSettings struct {
	Durations animation.Durations `yaml:"durations" json:"durations"`
	Debounce  time.Duration       `yaml:"debounce" json:"debounce"`
}

// Default returns the built-in configuration used when no file is given
func Default() *Configuration {
	sliders := domain.DefaultSliders()
	return &Configuration{
		Inputs:      domain.InputFromSliders(sliders),
		Assumptions: domain.DefaultAssumptions(),
		Animation: AnimationSettings{
			Durations: animation.DefaultDurations(),
			Debounce:  slider.DebounceDelay,
		},
		Sliders:  sliders,
		Currency: "GBP",
	}
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Sections missing from the file keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration data
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := config.Inputs.Validate(); err != nil {
		return fmt.Errorf("inputs validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	if err := ip.validateAnimation(&config.Animation); err != nil {
		return fmt.Errorf("animation validation failed: %w", err)
	}
	if err := ip.validateSliders(config.Sliders); err != nil {
		return fmt.Errorf("slider validation failed: %w", err)
	}
	switch config.Currency {
	case "GBP", "USD", "EUR":
	default:
		return fmt.Errorf("currency must be GBP, USD or EUR, got %q", config.Currency)
	}
	return nil
}

// validateAssumptions validates the growth constants
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	minusOne := decimal.NewFromInt(-1)
	one := decimal.NewFromInt(1)

	if a.BaselineAnnualReturn.LessThanOrEqual(minusOne) {
		return fmt.Errorf("baseline annual return must be greater than -100%%")
	}
	if a.OptimizedAnnualReturn.LessThanOrEqual(minusOne) {
		return fmt.Errorf("optimized annual return must be greater than -100%%")
	}
	if a.HomeAppreciationRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("home appreciation rate must be greater than -100%%")
	}
	if a.EquityReleaseFraction.LessThan(decimal.Zero) || a.EquityReleaseFraction.GreaterThan(one) {
		return fmt.Errorf("equity release fraction must be between 0 and 1")
	}
	if a.ProjectionYears <= 0 || a.ProjectionYears > 50 {
		return fmt.Errorf("projection years must be between 1 and 50")
	}
	if a.YearsGainedFloor < 0 {
		return fmt.Errorf("years gained floor cannot be negative")
	}
	if a.YearsGainedCap < a.YearsGainedFloor {
		return fmt.Errorf("years gained cap (%v) cannot be below the floor (%v)", a.YearsGainedCap, a.YearsGainedFloor)
	}
	return nil
}

func (ip *InputParser) validateAnimation(a *AnimationSettings) error {
	d := a.Durations
	for name, v := range map[string]time.Duration{"fast": d.Fast, "normal": d.Normal, "slow": d.Slow, "odometer": d.Odometer} {
		if v < 0 {
			return fmt.Errorf("%s duration cannot be negative", name)
		}
	}
	if a.Debounce <= 0 {
		return fmt.Errorf("debounce interval must be positive")
	}
	return nil
}

// validateSliders checks each descriptor and that every input has exactly one slider
func (ip *InputParser) validateSliders(sliders []domain.SliderConfig) error {
	validFormats := map[string]bool{
		domain.FormatYears:    true,
		domain.FormatCurrency: true,
		domain.FormatMonthly:  true,
		domain.FormatPercent:  true,
	}

	seen := map[string]bool{}
	for i, s := range sliders {
		if _, ok := domain.DefaultInput().Get(s.ID); !ok {
			return fmt.Errorf("slider %d has unknown id %q", i, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("slider %q is defined more than once", s.ID)
		}
		seen[s.ID] = true

		if s.Label == "" {
			return fmt.Errorf("slider %q: label is required", s.ID)
		}
		if s.Min >= s.Max {
			return fmt.Errorf("slider %q: min must be below max", s.ID)
		}
		if s.Step <= 0 {
			return fmt.Errorf("slider %q: step must be positive", s.ID)
		}
		if !domain.IsInRange(s.Default, s.Min, s.Max) {
			return fmt.Errorf("slider %q: default %v outside [%v, %v]", s.ID, s.Default, s.Min, s.Max)
		}
		if !validFormats[s.Format] {
			return fmt.Errorf("slider %q: unknown format %q", s.ID, s.Format)
		}
	}

	for _, s := range domain.DefaultSliders() {
		if !seen[s.ID] {
			return fmt.Errorf("slider %q is missing", s.ID)
		}
	}
	return nil
}
