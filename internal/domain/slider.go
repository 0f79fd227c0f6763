package domain

// Slider identifiers
const (
	SliderAge                = "age"
	SliderEquity             = "equity"
	SliderCash               = "cash"
	SliderMonthlySavings     = "monthlySavings"
	SliderInvestmentInterest = "investmentInterest"
)

// Display kinds understood by the output formatters
const (
	FormatYears    = "years"
	FormatCurrency = "currency"
	FormatMonthly  = "monthly"
	FormatPercent  = "percent"
)

// SliderConfig describes one input control. The calculator treats it as opaque.
type SliderConfig struct {
	ID      string  `yaml:"id" json:"id"`
	Label   string  `yaml:"label" json:"label"`
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Step    float64 `yaml:"step" json:"step"`
	Default float64 `yaml:"default" json:"default"`
	Format  string  `yaml:"format" json:"format"`
}

// Clamp snaps value onto the slider's step grid and keeps it within range
func (s SliderConfig) Clamp(value float64) float64 {
	if value < s.Min {
		value = s.Min
	}
	if value > s.Max {
		value = s.Max
	}
	if s.Step > 0 {
		steps := (value - s.Min) / s.Step
		value = s.Min + float64(int64(steps+0.5))*s.Step
		if value > s.Max {
			value = s.Max
		}
	}
	return value
}

// DefaultSliders returns the five calculator sliders
func DefaultSliders() []SliderConfig {
	return []SliderConfig{
		{ID: SliderAge, Label: "Your Age", Min: 25, Max: 70, Step: 1, Default: 32, Format: FormatYears},
		{ID: SliderEquity, Label: "Current Home Equity", Min: 0, Max: 500000, Step: 5000, Default: 75000, Format: FormatCurrency},
		{ID: SliderCash, Label: "Available Cash", Min: 0, Max: 100000, Step: 1000, Default: 15000, Format: FormatCurrency},
		{ID: SliderMonthlySavings, Label: "Monthly Savings", Min: 0, Max: 5000, Step: 50, Default: 500, Format: FormatMonthly},
		{ID: SliderInvestmentInterest, Label: "Investment Property Interest", Min: 0, Max: 100, Step: 1, Default: 50, Format: FormatPercent},
	}
}

// SliderByID finds a slider configuration by its identifier
func SliderByID(sliders []SliderConfig, id string) (SliderConfig, bool) {
	for _, s := range sliders {
		if s.ID == id {
			return s, true
		}
	}
	return SliderConfig{}, false
}

// InputFromSliders builds a scenario input from the slider defaults
func InputFromSliders(sliders []SliderConfig) ScenarioInput {
	in := ScenarioInput{}
	for _, s := range sliders {
		// unknown ids are ignored
		in, _ = in.With(s.ID, s.Default)
	}
	return in
}
