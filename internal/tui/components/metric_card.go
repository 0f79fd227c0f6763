package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/equitygap/internal/tui/tuistyles"
)

// MetricCard displays one headline number. Value is the currently displayed (possibly
// mid-animation) figure; Target is where it is heading.
type MetricCard struct {
	Label       string
	Value       float64
	Target      float64
	Format      ValueFormatter
	Description string
	Highlight   bool
	Width       int
}

// NewMetricCard creates a card showing value with the given formatter
func NewMetricCard(label string, value float64, format ValueFormatter) *MetricCard {
	return &MetricCard{
		Label:  label,
		Value:  value,
		Target: value,
		Format: format,
		Width:  26,
	}
}

// WithTarget records the value the display is animating towards
func (m *MetricCard) WithTarget(target float64) *MetricCard {
	m.Target = target
	return m
}

// WithDescription adds a subtitle under the value
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithHighlight renders the value in the accent colour
func (m *MetricCard) WithHighlight(highlight bool) *MetricCard {
	m.Highlight = highlight
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Moving reports whether the displayed value has not reached its target yet
func (m *MetricCard) Moving() bool {
	return m.Value != m.Target
}

func (m *MetricCard) text(v float64) string {
	if m.Format == nil {
		return FormatCompact(v)
	}
	return m.Format(v)
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	valueStyle := tuistyles.MetricValueStyle
	if m.Highlight {
		valueStyle = tuistyles.MetricHighlightStyle
	}

	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.text(m.Value))
	if m.Moving() {
		up := m.Target > m.Value
		content += " " + tuistyles.MetricTrendStyle(up).Render(tuistyles.TrendIndicator(up))
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	border := tuistyles.ColorBorder
	if m.Highlight {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns "Label: value" without a border
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.text(m.Value))
}

// MetricGrid lays cards out in rows of the given number of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, row []string
	for i, card := range cards {
		row = append(row, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
