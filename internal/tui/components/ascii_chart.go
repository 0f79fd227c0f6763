package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/equitygap/internal/tui/tuistyles"
)

// DataSeries is one line on the chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
	Fill   bool // shade the area under the line
}

// ASCIIChart draws one or more series on a character grid
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string
	Width      int
	Height     int
	ShowLegend bool
	YFormat    ValueFormatter
}

// NewASCIIChart creates an empty chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     12,
		ShowLegend: true,
		YFormat:    FormatCompact,
	}
}

// AddSeries adds a line to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// AddArea adds a filled series to the chart
func (c *ASCIIChart) AddArea(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color, Fill: true})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithYFormat sets how Y-axis values are printed
func (c *ASCIIChart) WithYFormat(f ValueFormatter) *ASCIIChart {
	c.YFormat = f
	return c
}

// cell is one grid position: the glyph and the series that drew it
type cell struct {
	char   rune
	series int
}

const yAxisWidth = 9

// Render returns the chart as styled text
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 || c.pointCount() == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(tuistyles.TitleStyle.Render(c.Title))
		out.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	out.WriteString(c.renderGrid(minVal, maxVal))

	if c.ShowLegend && len(c.Series) > 1 {
		out.WriteString("\n")
		out.WriteString(c.renderLegend())
	}
	return out.String()
}

func (c *ASCIIChart) pointCount() int {
	n := 0
	for _, s := range c.Series {
		if len(s.Points) > n {
			n = len(s.Points)
		}
	}
	return n
}

// bounds returns the value range to plot. Wealth never goes below zero so the floor is pinned at
// zero when all data is non-negative.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				continue
			}
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if lo >= 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	hi += (hi - lo) * 0.05
	return lo, hi
}

func (c *ASCIIChart) plotWidth() int {
	w := c.Width - yAxisWidth - 3
	if w < 2 {
		w = 2
	}
	return w
}

func (c *ASCIIChart) plotHeight() int {
	if c.Height < 2 {
		return 2
	}
	return c.Height
}

// position maps point i of n with value v onto the grid
func (c *ASCIIChart) position(i, n int, v, minVal, maxVal float64) (int, int) {
	w, h := c.plotWidth(), c.plotHeight()
	x := 0
	if n > 1 {
		x = int(math.Round(float64(i) / float64(n-1) * float64(w-1)))
	}
	y := h - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(h-1)))
	return x, y
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	w, h := c.plotWidth(), c.plotHeight()
	grid := make([][]cell, h)
	for i := range grid {
		grid[i] = make([]cell, w)
		for j := range grid[i] {
			grid[i][j] = cell{char: ' ', series: -1}
		}
	}

	for idx, s := range c.Series {
		n := len(s.Points)
		for i, v := range s.Points {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			x, y := c.position(i, n, v, minVal, maxVal)
			if s.Fill {
				fillColumn(grid, x, y, idx)
			}
			if i > 0 {
				px, py := c.position(i-1, n, s.Points[i-1], minVal, maxVal)
				drawLine(grid, px, py, x, y, idx)
			}
			set(grid, x, y, cell{char: seriesChar(idx), series: idx})
		}
	}

	var out strings.Builder
	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for row := range grid {
		label := ""
		if row == 0 || row == h-1 || row == h/2 {
			v := maxVal - float64(row)/float64(h-1)*(maxVal-minVal)
			label = c.YFormat(v)
		}
		out.WriteString(axisStyle.Render(label))
		out.WriteString(" │ ")
		for _, cl := range grid[row] {
			if cl.series < 0 {
				out.WriteRune(' ')
				continue
			}
			out.WriteString(lipgloss.NewStyle().Foreground(c.Series[cl.series].Color).Render(string(cl.char)))
		}
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", w+1))
	out.WriteString("\n")
	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(w))
		out.WriteString("\n")
	}
	return out.String()
}

func set(grid [][]cell, x, y int, cl cell) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = cl
	}
}

// fillColumn shades from the point down to the axis without overwriting lines
func fillColumn(grid [][]cell, x, y, series int) {
	for row := y + 1; row < len(grid); row++ {
		if row >= 0 && x >= 0 && x < len(grid[row]) && grid[row][x].series < 0 {
			grid[row][x] = cell{char: '░', series: series}
		}
	}
}

// drawLine connects two points with Bresenham's algorithm, leaving existing marks in place
func drawLine(grid [][]cell, x0, y0, x1, y1, series int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			if grid[y][x].series < 0 || grid[y][x].char == '░' {
				grid[y][x] = cell{char: '·', series: series}
			}
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels prints the first, middle and last labels under the axis
func (c *ASCIIChart) renderXAxisLabels(width int) string {
	n := len(c.Labels)
	line := []rune(strings.Repeat(" ", width+3))
	place := func(i int) {
		x := 0
		if n > 1 {
			x = int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
		}
		label := []rune(c.Labels[i])
		start := x + 2 - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > len(line) {
			start = len(line) - len(label)
		}
		if start < 0 {
			return
		}
		copy(line[start:], label)
	}
	place(0)
	if n > 2 {
		place(n / 2)
	}
	if n > 1 {
		place(n - 1)
	}
	return strings.Repeat(" ", yAxisWidth) + lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(strings.TrimRight(string(line), " "))
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return strings.Repeat(" ", yAxisWidth+3) + tuistyles.SubtitleStyle.Render(strings.Join(items, "   "))
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// CompactFormatter abbreviates large values for axes, e.g. "£1.2M" or "£450K"
func CompactFormatter(symbol string) ValueFormatter {
	return func(value float64) string {
		sign := ""
		if value < 0 {
			sign = "-"
			value = -value
		}
		switch {
		case value >= 1_000_000:
			return fmt.Sprintf("%s%s%.1fM", sign, symbol, value/1_000_000)
		case value >= 1_000:
			return fmt.Sprintf("%s%s%.0fK", sign, symbol, value/1_000)
		default:
			return fmt.Sprintf("%s%s%.0f", sign, symbol, value)
		}
	}
}

// FormatCompact abbreviates pound values
var FormatCompact = CompactFormatter("£")

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
