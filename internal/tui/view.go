package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/equitygap/internal/output"
	"github.com/rgehrsitz/equitygap/internal/tui/components"
)

// View renders the calculator
func (m Model) View() string {
	if m.showHelp {
		return m.renderApp(m.renderHelp())
	}

	left := m.renderSliders()
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderMetrics(), "", m.renderGauge())
	top := lipgloss.JoinHorizontal(lipgloss.Top, BorderStyle.Render(left), "  ", right)

	content := lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.renderStrategies(),
		m.renderChart(),
	)
	return m.renderApp(content)
}

// renderApp wraps content with the title and status bars
func (m Model) renderApp(content string) string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Home Equity Opportunity"),
		SubtitleStyle.Render("How much sooner could your equity get you there?"),
	)
	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content, m.renderStatusBar()))
}

func (m Model) renderStatusBar() string {
	parts := make([]string, 0, len(keys.shortHelp()))
	for _, b := range keys.shortHelp() {
		parts = append(parts, StatusKeyStyle.Render(b.Help().Key)+" "+b.Help().Desc)
	}
	status := strings.Join(parts, " • ")
	if m.session.Busy() {
		status += "   " + m.spinner.Render()
	}
	return StatusBarStyle.Width(max(m.width-2, lipgloss.Width(status)+2)).Render(status)
}

func (m Model) renderSliders() string {
	code := m.session.Currency()
	rows := make([]string, 0, len(m.session.Sliders()))
	for i, sc := range m.session.Sliders() {
		kind := sc.Format
		p := components.NewParameterSlider(sc, m.session.RawValue(sc.ID), func(v float64) string {
			return output.FormatSliderValue(kind, v, code)
		}).WithWidth(32).SetFocused(i == m.focus)
		p.Settling = m.session.Settling(sc.ID)
		rows = append(rows, p.Render())
	}
	return strings.Join(rows, "\n\n")
}

func (m Model) renderMetrics() string {
	code := m.session.Currency()
	currency := func(v float64) string { return output.FormatCurrency(v, code, 0) }

	card := func(id, label string, format components.ValueFormatter) *components.MetricCard {
		n := m.session.Metric(id)
		return components.NewMetricCard(label, n.Value(), format).WithTarget(n.Target())
	}

	years := card(MetricYearsGained, "Years Gained", output.FormatYears).
		WithHighlight(true).
		WithDescription("reach the same wealth sooner")
	extra := card(MetricValueDifference, "Extra Wealth", currency).
		WithDescription(fmt.Sprintf("after %d years", m.session.Assumptions().ProjectionYears))
	gain := card(MetricPercentageGain, "Percentage Gain", func(v float64) string { return output.FormatPercentage(v, 1) })
	optimized := card(MetricOptimizedValue, "Release Equity", currency)
	baseline := card(MetricBaselineValue, "Keep Equity", currency)

	return components.MetricGrid([]*components.MetricCard{years, extra, gain, optimized, baseline}, 2)
}

func (m Model) renderGauge() string {
	a := m.session.Assumptions()
	return components.NewGauge("Head start", m.session.Metric(MetricYearsGained).Value(), a.YearsGainedCap).
		WithWidth(36).
		Render()
}

func (m Model) renderStrategies() string {
	code := m.session.Currency()
	a := m.session.Assumptions()
	in := m.session.Input()
	sum := m.session.Results().Summary
	fraction := a.EquityReleaseFraction.InexactFloat64()

	keep := components.NewStrategyCard("Keep equity in your home", ColorChartLine1).
		WithOutcome(output.FormatCurrency(sum.BaselineValue, code, 0)).
		AddHighlight(fmt.Sprintf("savings grow at %s", output.FormatPercentage(a.BaselineAnnualReturn.InexactFloat64()*100, 1))).
		AddHighlight(fmt.Sprintf("home grows at %s", output.FormatPercentage(a.HomeAppreciationRate.InexactFloat64()*100, 1))).
		SetSelected(m.chartMode == ChartBaseline || m.chartMode == ChartBoth)

	release := components.NewStrategyCard(fmt.Sprintf("Release %s of equity", output.FormatPercentage(fraction*100, 0)), ColorChartLine2).
		WithOutcome(output.FormatCurrency(sum.OptimizedValue, code, 0)).
		AddHighlight(fmt.Sprintf("%s invested at %s", output.FormatCurrency(in.Equity*fraction+in.Cash, code, 0), output.FormatPercentage(a.OptimizedAnnualReturn.InexactFloat64()*100, 1))).
		AddHighlight(fmt.Sprintf("plus %s", output.FormatMonthly(in.MonthlySavings, code))).
		SetSelected(m.chartMode == ChartOptimized || m.chartMode == ChartBoth)

	return components.StrategyRow(keep, release)
}

func (m Model) renderChart() string {
	chart := m.session.Results().Chart
	width := max(m.width-4, 50)
	c := components.NewASCIIChart("Projected wealth · "+m.chartMode.String()).
		WithSize(width, 10).
		WithLabels(chart.Labels).
		WithYFormat(components.CompactFormatter(output.CurrencySymbol(m.session.Currency())))

	switch m.chartMode {
	case ChartDifference:
		c.AddArea("Extra wealth", chart.Difference, ColorChartLine3)
	case ChartBaseline:
		c.AddSeries("Keep equity", chart.Baseline, ColorChartLine1)
	case ChartOptimized:
		c.AddSeries("Release equity", chart.Optimized, ColorChartLine2)
	default:
		c.AddSeries("Keep equity", chart.Baseline, ColorChartLine1)
		c.AddSeries("Release equity", chart.Optimized, ColorChartLine2)
	}
	return c.Render()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, k := range keys.fullHelp() {
		b.WriteString(HelpKeyStyle.Render(fmt.Sprintf("%-8s", k.Help().Key)))
		b.WriteString(" ")
		b.WriteString(HelpDescStyle.Render(k.Help().Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Assumptions"))
	b.WriteString("\n\n")
	for _, line := range m.session.Assumptions().Describe() {
		b.WriteString(SubtitleStyle.Render("• " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Illustrative projection only. Press any key to return."))
	return BorderStyle.Render(b.String())
}
