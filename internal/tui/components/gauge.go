package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/equitygap/internal/tui/tuistyles"
)

// Gauge shows a value against a fixed maximum, e.g. years gained out of the cap
type Gauge struct {
	Label string
	Value float64
	Max   float64
	Width int
}

// NewGauge creates a gauge for value out of max
func NewGauge(label string, value, max float64) *Gauge {
	return &Gauge{Label: label, Value: value, Max: max, Width: 40}
}

// WithWidth sets the bar width
func (g *Gauge) WithWidth(width int) *Gauge {
	g.Width = width
	return g
}

// Fraction returns Value/Max clamped to [0, 1]
func (g *Gauge) Fraction() float64 {
	if g.Max <= 0 || math.IsNaN(g.Value) {
		return 0
	}
	return math.Max(0, math.Min(1, g.Value/g.Max))
}

// Render returns the label line and the bar
func (g *Gauge) Render() string {
	filled := int(math.Round(float64(g.Width) * g.Fraction()))

	var b strings.Builder
	if g.Label != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground).Render(g.Label))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", g.Width-filled)))
	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf(" %.1f / %.0f", g.Value, g.Max)))
	return b.String()
}

// Spinner cycles through braille frames while a value is settling
type Spinner struct {
	frames  []string
	current int
	Message string
}

// NewSpinner creates a spinner
func NewSpinner() *Spinner {
	return &Spinner{frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}}
}

// WithMessage sets the text shown next to the spinner
func (s *Spinner) WithMessage(message string) *Spinner {
	s.Message = message
	return s
}

// Next advances to the next frame
func (s *Spinner) Next() {
	s.current = (s.current + 1) % len(s.frames)
}

// Render returns the current frame and message
func (s *Spinner) Render() string {
	frame := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Render(s.frames[s.current])
	if s.Message == "" {
		return frame
	}
	return frame + " " + tuistyles.SubtitleStyle.Render(s.Message)
}
