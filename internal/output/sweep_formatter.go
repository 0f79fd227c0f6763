package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// SweepFormatter renders a single-parameter sweep
type SweepFormatter interface {
	Name() string
	FormatSweep(sweep *domain.Sweep, code string) ([]byte, error)
}

// SweepConsoleFormatter prints the sweep as a table with the point closest to the base marked
type SweepConsoleFormatter struct{}

func (s SweepConsoleFormatter) Name() string { return "console" }

func (s SweepConsoleFormatter) FormatSweep(sweep *domain.Sweep, code string) ([]byte, error) {
	if len(sweep.Points) == 0 {
		return nil, fmt.Errorf("sweep has no points")
	}
	var buf bytes.Buffer
	base, _ := sweep.Base.Get(sweep.Parameter)
	baseIdx := closestPoint(sweep.Points, base)

	fmt.Fprintf(&buf, "SWEEP: %s\n", strings.ToUpper(sweep.Parameter))
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "%-18s %-12s %-16s %-16s %-8s\n", sweep.Parameter, "Years", "Difference", "Optimized", "Gain")
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	for i, p := range sweep.Points {
		value := formatSweepValue(sweep.Parameter, p.Value, code)
		if i == baseIdx {
			value += " ← BASE"
		}
		fmt.Fprintf(&buf, "%-18s %-12s %-16s %-16s %-8s\n",
			value,
			FormatYears(p.Summary.YearsGained),
			FormatCurrency(p.Summary.ValueDifference, code, 0),
			FormatCurrency(p.Summary.OptimizedValue, code, 0),
			FormatPercentage(p.Summary.PercentageGain, 1))
	}
	return buf.Bytes(), nil
}

// SweepCSVFormatter writes one row per sweep point
type SweepCSVFormatter struct{}

func (s SweepCSVFormatter) Name() string { return "csv" }

func (s SweepCSVFormatter) FormatSweep(sweep *domain.Sweep, _ string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{sweep.Parameter, "YearsGained", "ValueDifference", "BaselineValue", "OptimizedValue", "PercentageGain"}); err != nil {
		return nil, err
	}
	for _, p := range sweep.Points {
		row := []string{
			formatFloat(p.Value, 2),
			formatFloat(p.Summary.YearsGained, 1),
			formatFloat(p.Summary.ValueDifference, 0),
			formatFloat(p.Summary.BaselineValue, 0),
			formatFloat(p.Summary.OptimizedValue, 0),
			formatFloat(p.Summary.PercentageGain, 2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SweepJSONFormatter serializes the sweep
type SweepJSONFormatter struct{}

func (s SweepJSONFormatter) Name() string { return "json" }

func (s SweepJSONFormatter) FormatSweep(sweep *domain.Sweep, _ string) ([]byte, error) {
	return json.MarshalIndent(sweep, "", "  ")
}

// GetSweepFormatterByName returns the sweep formatter for name, or nil
func GetSweepFormatterByName(name string) SweepFormatter {
	switch name {
	case "console", "console-lite", "verbose":
		return SweepConsoleFormatter{}
	case "csv":
		return SweepCSVFormatter{}
	case "json":
		return SweepJSONFormatter{}
	}
	return nil
}

func formatSweepValue(parameter string, value float64, code string) string {
	switch parameter {
	case domain.SliderAge:
		return FormatSliderValue(domain.FormatYears, value, code)
	case domain.SliderMonthlySavings:
		return FormatMonthly(value, code)
	case domain.SliderInvestmentInterest:
		return FormatPercentage(value, 0)
	default:
		return FormatCurrency(value, code, 0)
	}
}

func closestPoint(points []domain.SweepPoint, base float64) int {
	best, bestDiff := 0, math.Inf(1)
	for i, p := range points {
		if d := math.Abs(p.Value - base); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
