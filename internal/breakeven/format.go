package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/rgehrsitz/equitygap/internal/output"
)

// TableFormatter formats goal-seek results as a console table
type TableFormatter struct {
	Currency string
}

// Format renders one row per slider
func (tf *TableFormatter) Format(results []Result) string {
	var sb strings.Builder

	sb.WriteString("GOAL SEEK RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if len(results) > 0 {
		req := results[0].Request
		sb.WriteString(fmt.Sprintf("Goal:   %s\n", req.Goal))
		sb.WriteString(fmt.Sprintf("Target: %s\n", tf.formatTarget(req.Goal, req.Target)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-30s %-12s %16s %14s %16s\n", "Slider", "Status", "Needed", "Years Gained", "Extra Wealth"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, res := range results {
		sb.WriteString(fmt.Sprintf("%-30s %-12s %16s %14s %16s\n",
			tf.truncate(res.Request.Slider.Label, 30),
			tf.formatStatus(res.Success),
			output.FormatSliderValue(res.Request.Slider.Format, res.Value, tf.Currency),
			output.FormatYears(res.Summary.YearsGained),
			output.FormatCurrency(res.Summary.ValueDifference, tf.Currency, 0)))
	}
	sb.WriteString("\n")

	for _, res := range results {
		if !res.Success {
			sb.WriteString(fmt.Sprintf("• %s: %s\n", res.Request.Slider.Label, res.ConvergenceInfo))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatTarget(goal Goal, target float64) string {
	if goal == GoalYearsGained {
		return output.FormatYears(target)
	}
	return output.FormatCurrency(target, tf.Currency, 0)
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ reached"
	}
	return "✗ out of range"
}

func (tf *TableFormatter) truncate(s string, width int) string {
	if len([]rune(s)) <= width {
		return s
	}
	return string([]rune(s)[:width-1]) + "…"
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

type jsonOutput struct {
	Goal    Goal                 `json:"goal"`
	Target  float64              `json:"target"`
	Base    domain.ScenarioInput `json:"base"`
	Results []Result             `json:"results"`
}

// Format generates JSON output
func (jf *JSONFormatter) Format(results []Result) (string, error) {
	out := jsonOutput{Results: results}
	if len(results) > 0 {
		out.Goal = results[0].Request.Goal
		out.Target = results[0].Request.Target
		out.Base = results[0].Request.Base
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}
