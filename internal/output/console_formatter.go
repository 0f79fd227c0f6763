package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// ConsoleFormatter prints the headline metrics only
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	code := currencyOf(report)
	s := report.Summary

	fmt.Fprintln(&buf, "EQUITY GAP SUMMARY")
	fmt.Fprintln(&buf, "==================")
	fmt.Fprintf(&buf, "Years gained:     %s\n", FormatYears(s.YearsGained))
	fmt.Fprintf(&buf, "Extra wealth:     %s (%s)\n", FormatCurrency(s.ValueDifference, code, 0), FormatPercentage(s.PercentageGain, 1))
	fmt.Fprintf(&buf, "Baseline:         %s\n", FormatCurrency(s.BaselineValue, code, 0))
	fmt.Fprintf(&buf, "Optimized:        %s\n", FormatCurrency(s.OptimizedValue, code, 0))
	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter prints inputs, assumptions, metrics and the year by year projection
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	code := currencyOf(report)

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "HOME EQUITY OPPORTUNITY ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "Report: %s\n", report.ID)
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range report.Assumptions.Describe() {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	in := report.Input
	fmt.Fprintln(&buf, "YOUR SITUATION:")
	fmt.Fprintf(&buf, "  Age:                    %s\n", FormatSliderValue(domain.FormatYears, float64(in.Age), code))
	fmt.Fprintf(&buf, "  Home equity:            %s\n", FormatCurrency(in.Equity, code, 0))
	fmt.Fprintf(&buf, "  Available cash:         %s\n", FormatCurrency(in.Cash, code, 0))
	fmt.Fprintf(&buf, "  Monthly savings:        %s\n", FormatMonthly(in.MonthlySavings, code))
	fmt.Fprintf(&buf, "  Investment interest:    %s\n", FormatPercentage(in.InvestmentInterest, 0))
	fmt.Fprintln(&buf)

	s := report.Summary
	fmt.Fprintln(&buf, "RESULTS:")
	fmt.Fprintf(&buf, "  Years gained:           %s\n", FormatYears(s.YearsGained))
	fmt.Fprintf(&buf, "  Baseline wealth:        %s\n", FormatCurrency(s.BaselineValue, code, 0))
	fmt.Fprintf(&buf, "  Optimized wealth:       %s\n", FormatCurrency(s.OptimizedValue, code, 0))
	fmt.Fprintf(&buf, "  Difference:             %s\n", FormatCurrency(s.ValueDifference, code, 0))
	fmt.Fprintf(&buf, "  Percentage gain:        %s\n", FormatPercentage(s.PercentageGain, 2))
	fmt.Fprintln(&buf)

	chart := report.Chart
	if len(chart.Baseline) == 0 {
		return buf.Bytes(), nil
	}
	fmt.Fprintln(&buf, "PROJECTION:")
	fmt.Fprintf(&buf, "%-10s %16s %16s %16s\n", "", "Baseline", "Optimized", "Difference")
	fmt.Fprintln(&buf, strings.Repeat("-", 61))
	for i := range chart.Baseline {
		label := fmt.Sprintf("Year %d", i+1)
		if i < len(chart.Labels) {
			label = chart.Labels[i]
		}
		fmt.Fprintf(&buf, "%-10s %16s %16s %16s\n", label,
			FormatCurrency(chart.Baseline[i], code, 0),
			FormatCurrency(valueAt(chart.Optimized, i), code, 0),
			FormatCurrency(valueAt(chart.Difference, i), code, 0))
	}
	return buf.Bytes(), nil
}

func valueAt(t domain.Trajectory, i int) float64 {
	if i < len(t) {
		return t[i]
	}
	return 0
}
