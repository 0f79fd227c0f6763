package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/equitygap/internal/breakeven"
	"github.com/rgehrsitz/equitygap/internal/calculation"
	"github.com/rgehrsitz/equitygap/internal/config"
	"github.com/rgehrsitz/equitygap/internal/domain"
	"github.com/rgehrsitz/equitygap/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "equitygap %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

// inputFlags maps command line flags onto slider ids
var inputFlags = map[string]string{
	"age":                 domain.SliderAge,
	"equity":              domain.SliderEquity,
	"cash":                domain.SliderCash,
	"monthly-savings":     domain.SliderMonthlySavings,
	"investment-interest": domain.SliderInvestmentInterest,
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("age", 0, "Your age in years")
	cmd.Flags().Float64("equity", 0, "Current home equity")
	cmd.Flags().Float64("cash", 0, "Available cash")
	cmd.Flags().Float64("monthly-savings", 0, "Amount saved every month")
	cmd.Flags().Float64("investment-interest", 0, "Interest in investment property (0-100)")
}

// loadConfiguration reads --config (or the defaults) and applies any input flags the user set
func loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	parser := config.NewInputParser()
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for flag, id := range inputFlags {
		if cmd.Flags().Lookup(flag) == nil || !cmd.Flags().Changed(flag) {
			continue
		}
		v, _ := cmd.Flags().GetFloat64(flag)
		updated, err := cfg.Inputs.With(id, v)
		if err != nil {
			return nil, err
		}
		cfg.Inputs = updated
	}

	if err := cfg.Inputs.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(cmd *cobra.Command, cfg *config.Configuration) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions)
	debugMode, _ := cmd.Flags().GetBool("debug")
	engine.SetLogger(newLogger(cmd.ErrOrStderr(), debugMode))
	engine.Debug = debugMode
	return engine
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "equitygap",
		Short:         "Home equity opportunity calculator",
		Long:          "Projects how releasing home equity into investments changes long-term wealth and how many years it brings financial goals forward",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(slidersCmd())
	rootCmd.AddCommand(targetCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the equity opportunity for one scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unsupported format: %s (available: %s)", outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			results, err := newEngine(cmd, cfg).TryCalculate(cfg.Inputs)
			if err != nil {
				return err
			}

			report := &domain.Report{
				ID:          uuid.New(),
				GeneratedAt: time.Now(),
				Currency:    cfg.Currency,
				Input:       cfg.Inputs,
				Assumptions: cfg.Assumptions,
				Summary:     results.Summary,
				Chart:       results.Chart,
			}

			if toFile, _ := cmd.Flags().GetBool("save"); toFile {
				filename, err := output.WriteFormatted(f, report, output.FileExtension(f))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	addInputFlags(cmd)
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			parser := config.NewInputParser()
			if _, err := parser.LoadFromFile(inputFile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", inputFile)
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Recalculate across a range of one input",
		Long:  "Varies a single input between --min and --max and reports the summary at each step. The range defaults to the slider range.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}

			paramName, _ := cmd.Flags().GetString("param")
			slider, ok := domain.SliderByID(cfg.Sliders, paramName)
			if !ok {
				return fmt.Errorf("unknown parameter %q", paramName)
			}

			param := calculation.SweepParameter{Name: paramName, Min: slider.Min, Max: slider.Max}
			if cmd.Flags().Changed("min") {
				param.Min, _ = cmd.Flags().GetFloat64("min")
			}
			if cmd.Flags().Changed("max") {
				param.Max, _ = cmd.Flags().GetFloat64("max")
			}
			param.Steps, _ = cmd.Flags().GetInt("steps")

			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetSweepFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unsupported format: %s", outputFormat)
			}

			sweep, err := newEngine(cmd, cfg).Sweep(cfg.Inputs, param)
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}

			data, err := f.FormatSweep(sweep, cfg.Currency)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("param", "p", domain.SliderEquity, "Input to vary (age, equity, cash, monthlySavings, investmentInterest)")
	cmd.Flags().Float64("min", 0, "Lowest value (defaults to the slider minimum)")
	cmd.Flags().Float64("max", 0, "Highest value (defaults to the slider maximum)")
	cmd.Flags().IntP("steps", "s", 6, "Number of evenly spaced values")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	addInputFlags(cmd)
	return cmd
}

func slidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sliders",
		Short: "List the calculator inputs and their ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-20s %-30s %-14s %-14s %-12s %-14s\n", "ID", "Label", "Min", "Max", "Step", "Current")
			fmt.Fprintln(w, strings.Repeat("-", 109))
			for _, s := range cfg.Sliders {
				current, _ := cfg.Inputs.Get(s.ID)
				fmt.Fprintf(w, "%-20s %-30s %-14s %-14s %-12s %-14s\n",
					s.ID, s.Label,
					output.FormatSliderValue(s.Format, s.Min, cfg.Currency),
					output.FormatSliderValue(s.Format, s.Max, cfg.Currency),
					output.FormatNumber(s.Step, 0),
					output.FormatSliderValue(s.Format, current, cfg.Currency))
			}
			return nil
		},
	}
}

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Find the input needed to reach a goal",
		Long:  "For each input (or the one named by --param), finds the smallest slider value that reaches the --goal target while the other inputs stay fixed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}

			goalName, _ := cmd.Flags().GetString("goal")
			goal, err := breakeven.ParseGoal(goalName)
			if err != nil {
				return err
			}
			target, _ := cmd.Flags().GetFloat64("value")

			sliders := cfg.Sliders
			if paramName, _ := cmd.Flags().GetString("param"); paramName != "" {
				sc, ok := domain.SliderByID(cfg.Sliders, paramName)
				if !ok {
					return fmt.Errorf("unknown parameter %q", paramName)
				}
				sliders = []domain.SliderConfig{sc}
			}

			solver := breakeven.NewDefaultSolver(newEngine(cmd, cfg))
			results, err := solver.SolveEach(context.Background(), cfg.Inputs, sliders, goal, target)
			if err != nil {
				return fmt.Errorf("goal seek failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			switch outputFormat {
			case "console", "table":
				fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{Currency: cfg.Currency}).Format(results))
			case "json":
				js, err := (&breakeven.JSONFormatter{Pretty: true}).Format(results)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), js)
			default:
				return fmt.Errorf("unsupported format: %s", outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().StringP("goal", "g", "years", "Goal to reach (years, wealth)")
	cmd.Flags().Float64P("value", "v", 10, "Target years gained or extra wealth")
	cmd.Flags().StringP("param", "p", "", "Only solve for this input")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	addInputFlags(cmd)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
