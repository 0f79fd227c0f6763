package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/equitygap/internal/calculation"
	"github.com/rgehrsitz/equitygap/internal/config"
	"github.com/rgehrsitz/equitygap/internal/tui"
)

func main() {
	cfg := config.Default()

	// Optional config file path
	if len(os.Args) > 1 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	engine := calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions)
	model := tui.NewModel(cfg, engine, time.Now())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
