package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/equitygap/internal/tui/tuistyles"
)

// StrategyCard summarises one of the two wealth strategies
type StrategyCard struct {
	Name       string
	Outcome    string
	Highlights []string
	Color      lipgloss.Color
	IsSelected bool
	Width      int
}

// NewStrategyCard creates a card for the named strategy
func NewStrategyCard(name string, color lipgloss.Color) *StrategyCard {
	return &StrategyCard{Name: name, Color: color, Width: 38}
}

// WithOutcome sets the headline result line
func (s *StrategyCard) WithOutcome(outcome string) *StrategyCard {
	s.Outcome = outcome
	return s
}

// AddHighlight appends a bullet line
func (s *StrategyCard) AddHighlight(highlight string) *StrategyCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as the one currently charted
func (s *StrategyCard) SetSelected(selected bool) *StrategyCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *StrategyCard) WithWidth(width int) *StrategyCard {
	s.Width = width
	return s
}

// Render returns the bordered card
func (s *StrategyCard) Render() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(s.Color).Render(s.Name))
	if s.Outcome != "" {
		b.WriteString("\n")
		b.WriteString(tuistyles.MetricValueStyle.Render(s.Outcome))
	}
	for _, h := range s.Highlights {
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render("• " + h))
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = s.Color
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(b.String())
}

// StrategyRow renders cards side by side
func StrategyRow(cards ...*StrategyCard) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = c.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
