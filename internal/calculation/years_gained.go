package calculation

import (
	"math"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// YearsGained estimates how much sooner the optimized path reaches the baseline's final wealth.
//
// The optimized trajectory is scanned for the first year whose value meets or exceeds the
// baseline's final value; the years left on the horizon after that point are the years gained.
// The result is clamped to [floor, cap]. Degenerate input returns floor.
func YearsGained(baseline, optimized domain.Trajectory, floor, cap float64) float64 {
	if len(baseline) < 2 || len(baseline) != len(optimized) {
		return floor
	}

	target := baseline.Final()
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return floor
	}

	totalYears := len(baseline) - 1
	yearsToReachBaseline := totalYears
	for i, v := range optimized {
		if v >= target {
			yearsToReachBaseline = i
			break
		}
	}

	gained := float64(totalYears - yearsToReachBaseline)
	if math.IsNaN(gained) || math.IsInf(gained, 0) {
		return floor
	}
	return math.Max(floor, math.Min(cap, gained))
}
