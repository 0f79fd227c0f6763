package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTrajectories_FirstYears(t *testing.T) {
	baseline, optimized, err := ProjectTrajectories(75000, 15000, 500, 30, domain.DefaultAssumptions())

	require.NoError(t, err)
	require.Len(t, baseline, 31)
	require.Len(t, optimized, 31)

	// home 77,250 + assets 15,000*1.05+6,000
	assert.Equal(t, []float64{90000, 99000, 108405}, []float64(baseline[:3]))
	// home 37,500*1.03 + assets 52,500*1.07+6,000
	assert.Equal(t, []float64{90000, 100800, 112311}, []float64(optimized[:3]))
	assert.Equal(t, 645507.0, baseline.Final())
	assert.Equal(t, 1057430.0, optimized.Final())
}

func TestProjectTrajectories_NoRelease(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	assumptions.EquityReleaseFraction = decimalZero
	assumptions.OptimizedAnnualReturn = assumptions.BaselineAnnualReturn

	baseline, optimized, err := ProjectTrajectories(100000, 20000, 250, 10, assumptions)

	require.NoError(t, err)
	assert.Equal(t, baseline, optimized)
	assert.Len(t, baseline, 11)
}

func TestProjectTrajectories_RejectsInvalidInput(t *testing.T) {
	assumptions := domain.DefaultAssumptions()

	tests := []struct {
		name                  string
		equity, cash, savings float64
		years                 int
	}{
		{"zero years", 1, 1, 1, 0},
		{"negative equity", -1, 0, 0, 30},
		{"NaN cash", 0, math.NaN(), 0, 30},
		{"infinite savings", 0, 0, math.Inf(1), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, o, err := ProjectTrajectories(tt.equity, tt.cash, tt.savings, tt.years, assumptions)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, b)
			assert.Nil(t, o)
		})
	}
}

func TestYearsGained(t *testing.T) {
	tests := []struct {
		name      string
		baseline  domain.Trajectory
		optimized domain.Trajectory
		want      float64
	}{
		{
			name:      "crossing mid horizon",
			baseline:  domain.Trajectory{10, 20, 30, 40, 50},
			optimized: domain.Trajectory{10, 30, 50, 70, 90},
			want:      2,
		},
		{
			name:      "never reached returns floor",
			baseline:  domain.Trajectory{10, 20, 30},
			optimized: domain.Trajectory{10, 15, 20},
			want:      0.5,
		},
		{
			name:      "reached only at the end returns floor",
			baseline:  domain.Trajectory{10, 20, 30},
			optimized: domain.Trajectory{10, 20, 30},
			want:      0.5,
		},
		{
			name:      "zero baseline",
			baseline:  domain.Trajectory{0, 0, 0},
			optimized: domain.Trajectory{0, 0, 0},
			want:      0.5,
		},
		{
			name:      "NaN baseline",
			baseline:  domain.Trajectory{0, math.NaN()},
			optimized: domain.Trajectory{0, 1},
			want:      0.5,
		},
		{
			name:      "mismatched lengths",
			baseline:  domain.Trajectory{1, 2, 3},
			optimized: domain.Trajectory{1, 2},
			want:      0.5,
		},
		{
			name:      "empty",
			baseline:  nil,
			optimized: nil,
			want:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearsGained(tt.baseline, tt.optimized, 0.5, 12))
		})
	}
}

func TestYearsGained_Cap(t *testing.T) {
	baseline := make(domain.Trajectory, 31)
	optimized := make(domain.Trajectory, 31)
	for i := range baseline {
		baseline[i] = float64(i)
		optimized[i] = 100
	}

	assert.Equal(t, 12.0, YearsGained(baseline, optimized, 0.5, 12))
}
