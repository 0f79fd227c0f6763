package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/rgehrsitz/equitygap/internal/tui/tuistyles"
)

// ValueFormatter renders a slider value for display
type ValueFormatter func(float64) string

// ParameterSlider displays one calculator input as a horizontal bar
type ParameterSlider struct {
	ID        string
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Format    ValueFormatter
	Width     int
	IsFocused bool
	Settling  bool // value changed but not yet applied
}

// NewParameterSlider builds a slider from its descriptor, starting at value
func NewParameterSlider(cfg domain.SliderConfig, value float64, format ValueFormatter) *ParameterSlider {
	p := &ParameterSlider{
		ID:     cfg.ID,
		Label:  cfg.Label,
		Min:    cfg.Min,
		Max:    cfg.Max,
		Step:   cfg.Step,
		Format: format,
		Width:  30,
	}
	p.SetValue(value)
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment moves the value one step up, stopping at Max
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement moves the value one step down, stopping at Min
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// JumpTo moves the value to a fraction (0-1) of the range, snapped to the step grid
func (p *ParameterSlider) JumpTo(fraction float64) {
	p.SetValue(p.Min + fraction*(p.Max-p.Min))
}

// SetValue sets the value, clamped to the range and snapped to the step grid
func (p *ParameterSlider) SetValue(value float64) {
	if math.IsNaN(value) {
		value = p.Min
	}
	p.Value = domain.SliderConfig{Min: p.Min, Max: p.Max, Step: p.Step}.Clamp(value)
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *ParameterSlider) format(v float64) string {
	if p.Format == nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return p.Format(v)
}

// Render returns the label, value and bar on two lines
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	marker := "  "
	if p.IsFocused {
		marker = tuistyles.StatusKeyStyle.Render("▶ ")
	}
	value := valueStyle.Render(p.format(p.Value))
	if p.Settling {
		value += tuistyles.SubtitleStyle.Render(" …")
	}

	header := marker + labelStyle.Render(p.Label)
	gap := p.Width + 2 - lipgloss.Width(header) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(value)
	b.WriteString("\n  ")
	b.WriteString(p.renderBar())
	return b.String()
}

// renderBar draws the track with the thumb at the current position
func (p *ParameterSlider) renderBar() string {
	width := p.Width
	if width < 3 {
		width = 3
	}
	thumb := int(math.Round(float64(width-1) * p.Percentage()))
	if thumb < 0 {
		thumb = 0
	}
	if thumb > width-1 {
		thumb = width - 1
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	if thumb > 0 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := width - thumb - 1; rest > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", rest)))
	}
	return bar.String()
}

// RenderCompact returns a single-line version
func (p *ParameterSlider) RenderCompact() string {
	return tuistyles.ParameterLabelStyle.Render(p.Label+":") + " " + tuistyles.ParameterValueStyle.Render(p.format(p.Value))
}
