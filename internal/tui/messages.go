package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/equitygap/internal/schedule"
)

// ChartMode selects what the projection chart shows
type ChartMode int

const (
	ChartBoth ChartMode = iota
	ChartDifference
	ChartBaseline
	ChartOptimized
)

func (c ChartMode) String() string {
	switch c {
	case ChartBoth:
		return "Both strategies"
	case ChartDifference:
		return "Extra wealth"
	case ChartBaseline:
		return "Keep equity"
	case ChartOptimized:
		return "Release equity"
	default:
		return "Unknown"
	}
}

// Next cycles to the following chart mode
func (c ChartMode) Next() ChartMode {
	return (c + 1) % 4
}

// FrameMsg drives the session loop once per display frame
type FrameMsg time.Time

// frameCmd asks bubbletea for the next frame
func frameCmd() tea.Cmd {
	return tea.Tick(schedule.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
