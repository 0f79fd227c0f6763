package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultProjectionYears is the horizon the calculator projects over
const DefaultProjectionYears = 30

// Assumptions contains the growth constants used by both trajectories
type Assumptions struct {
	BaselineAnnualReturn  decimal.Decimal `yaml:"baseline_annual_return" json:"baselineAnnualReturn"`   // conservative savings return
	OptimizedAnnualReturn decimal.Decimal `yaml:"optimized_annual_return" json:"optimizedAnnualReturn"` // return on released equity + cash
	HomeAppreciationRate  decimal.Decimal `yaml:"home_appreciation_rate" json:"homeAppreciationRate"`
	EquityReleaseFraction decimal.Decimal `yaml:"equity_release_fraction" json:"equityReleaseFraction"`
	ProjectionYears       int             `yaml:"projection_years" json:"projectionYears"`
	YearsGainedFloor      float64         `yaml:"years_gained_floor" json:"yearsGainedFloor"`
	YearsGainedCap        float64         `yaml:"years_gained_cap" json:"yearsGainedCap"`
}

// DefaultAssumptions returns the illustrative constants
func DefaultAssumptions() Assumptions {
	return Assumptions{
		BaselineAnnualReturn:  decimal.NewFromFloat(0.05),
		OptimizedAnnualReturn: decimal.NewFromFloat(0.07),
		HomeAppreciationRate:  decimal.NewFromFloat(0.03),
		EquityReleaseFraction: decimal.NewFromFloat(0.5),
		ProjectionYears:       DefaultProjectionYears,
		YearsGainedFloor:      0.5,
		YearsGainedCap:        12,
	}
}

// Describe returns human readable lines for report headers
func (a Assumptions) Describe() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		"Baseline return on cash and savings: " + a.BaselineAnnualReturn.Mul(hundred).StringFixed(1) + "% annually",
		"Optimized return on released equity and cash: " + a.OptimizedAnnualReturn.Mul(hundred).StringFixed(1) + "% annually",
		"Home appreciation: " + a.HomeAppreciationRate.Mul(hundred).StringFixed(1) + "% annually",
		"Equity released in optimized strategy: " + a.EquityReleaseFraction.Mul(hundred).StringFixed(0) + "%",
	}
}
