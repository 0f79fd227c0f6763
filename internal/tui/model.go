package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/equitygap/internal/calculation"
	"github.com/rgehrsitz/equitygap/internal/config"
	"github.com/rgehrsitz/equitygap/internal/tui/components"
)

// Model is the calculator screen
type Model struct {
	session *Session
	spinner *components.Spinner

	focus     int
	chartMode ChartMode
	showHelp  bool

	// true while a FrameMsg is in flight
	ticking bool

	width  int
	height int
}

// NewModel creates the calculator for cfg. start seeds the animation clock.
func NewModel(cfg *config.Configuration, engine *calculation.CalculationEngine, start time.Time) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions)
	}
	return Model{
		session: NewSession(cfg, engine, start),
		spinner: components.NewSpinner().WithMessage("updating"),
		width:   100,
		height:  40,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Home Equity Opportunity")
}

// Session exposes the calculator state
func (m Model) Session() *Session { return m.session }

// Focus returns the index of the focused slider
func (m Model) Focus() int { return m.focus }

// ChartMode returns the current chart view
func (m Model) ChartMode() ChartMode { return m.chartMode }

// ensureTicking starts the frame loop if it is not already running
func (m Model) ensureTicking() (Model, tea.Cmd) {
	if m.ticking || !m.session.Busy() {
		return m, nil
	}
	m.ticking = true
	return m, frameCmd()
}
