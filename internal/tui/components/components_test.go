package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/rgehrsitz/equitygap/internal/tui/tuistyles"
)

func equitySlider() *ParameterSlider {
	sc, _ := domain.SliderByID(domain.DefaultSliders(), domain.SliderEquity)
	return NewParameterSlider(sc, sc.Default, func(v float64) string { return fmt.Sprintf("£%.0f", v) })
}

func TestParameterSlider_StepsAndBounds(t *testing.T) {
	p := equitySlider()
	assert.Equal(t, 75000.0, p.Value)

	p.Increment()
	assert.Equal(t, 80000.0, p.Value)

	p.Decrement()
	p.Decrement()
	assert.Equal(t, 70000.0, p.Value)

	p.SetValue(1e9)
	assert.Equal(t, 500000.0, p.Value)
	p.Increment()
	assert.Equal(t, 500000.0, p.Value, "stays at max")

	p.SetValue(-10)
	assert.Equal(t, 0.0, p.Value)

	p.JumpTo(0.5)
	assert.Equal(t, 250000.0, p.Value)
	assert.InDelta(t, 0.5, p.Percentage(), 1e-9)

	p.SetValue(12345)
	assert.Equal(t, 10000.0, p.Value, "snaps to the step grid")
}

func TestParameterSlider_Render(t *testing.T) {
	p := equitySlider().SetFocused(true)
	out := p.Render()

	assert.Contains(t, out, "Current Home Equity")
	assert.Contains(t, out, "£75000")
	assert.Contains(t, out, "●")
	assert.Contains(t, p.RenderCompact(), "Current Home Equity:")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Extra Wealth", 1000, nil).WithTarget(2000).WithDescription("after 30 years")

	assert.True(t, card.Moving())
	out := card.Render()
	assert.Contains(t, out, "Extra Wealth")
	assert.Contains(t, out, "£1K")
	assert.Contains(t, out, tuistyles.TrendIndicator(true))
	assert.Contains(t, out, "after 30 years")

	card.Value = 2000
	assert.False(t, card.Moving())
	assert.NotContains(t, card.Render(), tuistyles.TrendIndicator(true))
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	cards := []*MetricCard{
		NewMetricCard("A", 1, nil),
		NewMetricCard("B", 2, nil),
		NewMetricCard("C", 3, nil),
	}
	out := MetricGrid(cards, 2)
	for _, label := range []string{"A", "B", "C"} {
		assert.Contains(t, out, label)
	}
}

func TestCompactFormatter(t *testing.T) {
	assert.Equal(t, "£1.1M", FormatCompact(1057430))
	assert.Equal(t, "£412K", FormatCompact(411923))
	assert.Equal(t, "£500", FormatCompact(500))
	assert.Equal(t, "-$2K", CompactFormatter("$")(-2000))
}

func TestASCIIChart_Render(t *testing.T) {
	empty := NewASCIIChart("Empty").Render()
	assert.Contains(t, empty, "No data to display")

	chart := NewASCIIChart("Wealth").
		WithSize(50, 8).
		WithLabels([]string{"Year 1", "Year 2", "Year 3"}).
		AddSeries("Keep", []float64{90000, 99000, 108405}, tuistyles.ColorChartLine1).
		AddSeries("Release", []float64{90000, 100800, 112311}, tuistyles.ColorChartLine2)
	out := chart.Render()

	assert.Contains(t, out, "Wealth")
	assert.Contains(t, out, "Year 1")
	assert.Contains(t, out, "Year 3")
	assert.Contains(t, out, "Keep")
	assert.Contains(t, out, "Release")
	assert.Contains(t, out, "£0", "axis starts at zero for wealth")
}

func TestASCIIChart_FlatAndSinglePoint(t *testing.T) {
	flat := NewASCIIChart("").AddArea("Zero", []float64{0, 0, 0}, tuistyles.ColorChartLine3).Render()
	assert.NotEmpty(t, flat)

	single := NewASCIIChart("").AddSeries("One", []float64{42}, tuistyles.ColorChartLine1).Render()
	assert.Contains(t, single, "●")
}

func TestGauge(t *testing.T) {
	g := NewGauge("Head start", 6, 12).WithWidth(10)
	assert.InDelta(t, 0.5, g.Fraction(), 1e-9)

	out := g.Render()
	assert.Contains(t, out, "Head start")
	assert.Equal(t, 5, strings.Count(out, "█"))
	assert.Contains(t, out, "6.0 / 12")

	assert.Equal(t, 1.0, NewGauge("", 20, 12).Fraction())
	assert.Equal(t, 0.0, NewGauge("", 3, 0).Fraction())
}

func TestSpinner(t *testing.T) {
	s := NewSpinner().WithMessage("updating")
	first := s.Render()
	s.Next()

	assert.NotEqual(t, first, s.Render())
	assert.Contains(t, s.Render(), "updating")
}

func TestStrategyCard(t *testing.T) {
	card := NewStrategyCard("Release 50% of equity", tuistyles.ColorChartLine2).
		WithOutcome("£1,057,430").
		AddHighlight("invested at 7.0%").
		SetSelected(true)
	out := StrategyRow(card, NewStrategyCard("Keep equity", tuistyles.ColorChartLine1))

	assert.Contains(t, out, "Release 50% of equity")
	assert.Contains(t, out, "£1,057,430")
	assert.Contains(t, out, "• invested at 7.0%")
	assert.Contains(t, out, "Keep equity")
}
