package calculation

import (
	"fmt"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
	decimalZero   = decimal.Zero
)

// ProjectTrajectories produces the baseline and optimized wealth trajectories for years 0..years.
//
// Baseline: home equity appreciates on its own while cash plus annualized savings compound at the
// baseline return. Optimized: a fraction of the equity is released into the investable pot, which
// compounds at the optimized return; the rest of the equity keeps appreciating with the home.
// Compounding runs on unrounded values; each stored point is rounded to whole units.
func ProjectTrajectories(equity, cash, monthlySavings float64, years int, assumptions domain.Assumptions) (domain.Trajectory, domain.Trajectory, error) {
	if years < 1 {
		return nil, nil, fmt.Errorf("%w: projection years must be at least 1, got %d", domain.ErrInvalidInput, years)
	}
	names := []string{"equity", "cash", "monthly savings"}
	for i, v := range []float64{equity, cash, monthlySavings} {
		if !domain.IsPositive(v) {
			return nil, nil, fmt.Errorf("%w: %s must be a finite non-negative number, got %v", domain.ErrInvalidInput, names[i], v)
		}
	}

	fraction := assumptions.EquityReleaseFraction
	if fraction.LessThan(decimalZero) || fraction.GreaterThan(decimalOne) {
		return nil, nil, fmt.Errorf("%w: equity release fraction must be between 0 and 1, got %s", domain.ErrInvalidInput, fraction)
	}

	equityDec := decimal.NewFromFloat(equity)
	cashDec := decimal.NewFromFloat(cash)
	annualSavings := decimal.NewFromFloat(monthlySavings).Mul(decimalTwelve)
	released := equityDec.Mul(fraction)

	baseline := project(equityDec, cashDec, annualSavings, assumptions.BaselineAnnualReturn, assumptions.HomeAppreciationRate, years)
	optimized := project(equityDec.Sub(released), cashDec.Add(released), annualSavings, assumptions.OptimizedAnnualReturn, assumptions.HomeAppreciationRate, years)

	return baseline, optimized, nil
}

// project compounds a home-equity pot and an investable pot side by side
func project(home, assets, annualSavings, assetReturn, homeAppreciation decimal.Decimal, years int) domain.Trajectory {
	assetGrowth := decimalOne.Add(assetReturn)
	homeGrowth := decimalOne.Add(homeAppreciation)

	trajectory := make(domain.Trajectory, 0, years+1)
	for year := 0; year <= years; year++ {
		total := home.Add(assets).Round(0)
		if total.LessThan(decimalZero) {
			total = decimalZero
		}
		trajectory = append(trajectory, total.InexactFloat64())

		home = home.Mul(homeGrowth)
		assets = assets.Mul(assetGrowth).Add(annualSavings)
	}
	return trajectory
}
