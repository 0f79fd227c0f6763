package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/equitygap/internal/domain"
)

// bigStepFactor is how many steps a page key moves
const bigStepFactor = 10

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameMsg:
		m.session.Tick(time.Time(msg))
		m.spinner.Next()
		if m.session.Busy() {
			return m, frameCmd()
		}
		m.ticking = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.session.Close()
		return m, tea.Quit
	}
	if m.showHelp {
		// any key closes help
		m.showHelp = false
		return m, nil
	}

	sliders := m.session.Sliders()
	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, keys.Up):
		if len(sliders) > 0 {
			m.focus = (m.focus - 1 + len(sliders)) % len(sliders)
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if len(sliders) > 0 {
			m.focus = (m.focus + 1) % len(sliders)
		}
		return m, nil
	case key.Matches(msg, keys.Chart):
		m.chartMode = m.chartMode.Next()
		return m, nil
	case key.Matches(msg, keys.Reset):
		m.session.Reset()
		return m.ensureTicking()
	}

	if len(sliders) == 0 {
		return m, nil
	}
	sc := sliders[m.focus]
	current := m.session.RawValue(sc.ID)

	switch {
	case key.Matches(msg, keys.Left):
		return m.setSlider(sc, current-sc.Step)
	case key.Matches(msg, keys.Right):
		return m.setSlider(sc, current+sc.Step)
	case key.Matches(msg, keys.BigLeft):
		return m.setSlider(sc, current-sc.Step*bigStepFactor)
	case key.Matches(msg, keys.BigRight):
		return m.setSlider(sc, current+sc.Step*bigStepFactor)
	case key.Matches(msg, keys.Min):
		return m.setSlider(sc, sc.Min)
	case key.Matches(msg, keys.Max):
		return m.setSlider(sc, sc.Max)
	}
	return m, nil
}

func (m Model) setSlider(sc domain.SliderConfig, v float64) (tea.Model, tea.Cmd) {
	if sc.Clamp(v) == m.session.RawValue(sc.ID) {
		return m, nil
	}
	m.session.SetSlider(sc.ID, v)
	return m.ensureTicking()
}
