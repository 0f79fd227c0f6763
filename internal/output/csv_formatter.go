package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// CSVSummarizer writes the inputs and headline metrics as a single row
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "Equity", "Cash", "MonthlySavings", "InvestmentInterest", "BaselineValue", "OptimizedValue", "ValueDifference", "PercentageGain", "YearsGained"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	in, s := report.Input, report.Summary
	row := []string{
		strconv.Itoa(in.Age),
		formatFloat(in.Equity, 0),
		formatFloat(in.Cash, 0),
		formatFloat(in.MonthlySavings, 0),
		formatFloat(in.InvestmentInterest, 0),
		formatFloat(s.BaselineValue, 0),
		formatFloat(s.OptimizedValue, 0),
		formatFloat(s.ValueDifference, 0),
		formatFloat(s.PercentageGain, 2),
		formatFloat(s.YearsGained, 1),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedFormatter writes one row per projected year
type CSVDetailedFormatter struct{}

func (c CSVDetailedFormatter) Name() string { return "detailed-csv" }

func (c CSVDetailedFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "Label", "Baseline", "Optimized", "Difference"}); err != nil {
		return nil, err
	}
	chart := report.Chart
	for i := range chart.Baseline {
		label := ""
		if i < len(chart.Labels) {
			label = chart.Labels[i]
		}
		row := []string{
			strconv.Itoa(i),
			label,
			formatFloat(chart.Baseline[i], 0),
			formatFloat(valueAt(chart.Optimized, i), 0),
			formatFloat(valueAt(chart.Difference, i), 0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
