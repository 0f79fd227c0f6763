package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "equitygap", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "validate", "sweep", "sliders", "target", "version"}

	names := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, names[name], "Expected command %q to be registered", name)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestCalculate_DefaultsCSV(t *testing.T) {
	out, _, err := execute(t, "calculate", "--format", "csv")

	require.NoError(t, err)
	assert.Contains(t, out, "32,75000,15000,500,50,645507,1057430,411923,63.81,6.0")
}

func TestCalculate_FlagOverrides(t *testing.T) {
	out, _, err := execute(t, "calculate", "--format", "csv", "--equity", "500000", "--cash", "0", "--monthly-savings", "0")

	require.NoError(t, err)
	assert.Contains(t, out, ",500000,0,0,")
	assert.Contains(t, out, ",12.0\n", "large equity saturates at the cap")
}

func TestCalculate_ConsoleOutput(t *testing.T) {
	out, _, err := execute(t, "calculate")

	require.NoError(t, err)
	assert.Contains(t, out, "HOME EQUITY OPPORTUNITY ANALYSIS")
	assert.Contains(t, out, "6.0 years")
	assert.Contains(t, out, "£411,923")
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "calculate", "--equity", "-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "equity")
}

func TestCalculate_OverflowingInput(t *testing.T) {
	var err error
	assert.NotPanics(t, func() {
		_, _, err = execute(t, "calculate", "--equity", "1e308")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")
}

func TestCalculate_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "calculate", "--format", "pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestCalculate_Debug(t *testing.T) {
	_, stderr, err := execute(t, "calculate", "--format", "json", "--debug")

	require.NoError(t, err)
	assert.NotEmpty(t, stderr, "debug mode should log to stderr")
}

func TestCalculate_Save(t *testing.T) {
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	out, _, err := execute(t, "calculate", "--format", "json", "--save")

	require.NoError(t, err)
	assert.Contains(t, out, "Report written to equity_gap_report_")
	matches, err := filepath.Glob("equity_gap_report_*.json")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCalculate_WithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs:\n  equity: 0\n  cash: 0\n  monthly_savings: 0\ncurrency: USD\n"), 0644))

	out, _, err := execute(t, "calculate", "--config", path, "--format", "console-lite")

	require.NoError(t, err)
	assert.Contains(t, out, "0.5 years")
	assert.Contains(t, out, "$0")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("inputs:\n  age: 45\n"), 0644))
	require.NoError(t, os.WriteFile(invalid, []byte("assumptions:\n  projection_years: 0\n"), 0644))

	out, _, err := execute(t, "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, _, err = execute(t, "validate", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestSweep(t *testing.T) {
	out, _, err := execute(t, "sweep", "--param", "equity", "--min", "0", "--max", "150000", "--steps", "3", "--format", "csv")

	require.NoError(t, err)
	assert.Contains(t, out, "equity,YearsGained")
	assert.Contains(t, out, "75000.00,6.0,411923,")
}

func TestSweep_SliderIDs(t *testing.T) {
	for _, id := range []string{"age", "equity", "cash", "monthlySavings", "investmentInterest"} {
		t.Run(id, func(t *testing.T) {
			out, _, err := execute(t, "sweep", "--param", id, "--steps", "2", "--format", "json")
			require.NoError(t, err)
			assert.Contains(t, out, `"parameter": "`+id+`"`)
		})
	}
}

func TestCalculate_CompactJSON(t *testing.T) {
	out, _, err := execute(t, "calculate", "--format", "json-compact")

	require.NoError(t, err)
	assert.Contains(t, out, `"valueDifference":411923`)
}

func TestSweep_UnknownParameter(t *testing.T) {
	_, _, err := execute(t, "sweep", "--param", "salary")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parameter")
}

func TestSliders(t *testing.T) {
	out, _, err := execute(t, "sliders")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Home Equity")
	assert.Contains(t, out, "£500,000")
	assert.Contains(t, out, "£500/month")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "equitygap dev")
}

func TestTarget_SingleParameter(t *testing.T) {
	out, _, err := execute(t, "target", "--goal", "wealth", "--value", "411923", "--param", "equity")

	require.NoError(t, err)
	assert.Contains(t, out, "GOAL SEEK RESULTS")
	assert.Contains(t, out, "£75,000")
	assert.NotContains(t, out, "Available Cash")
}

func TestTarget_JSON(t *testing.T) {
	out, _, err := execute(t, "target", "--goal", "years", "--value", "6", "--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"goal": "years_gained"`)
	assert.Contains(t, out, `"slider": "monthlySavings"`)
}

func TestTarget_Errors(t *testing.T) {
	_, _, err := execute(t, "target", "--goal", "income")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown goal")

	_, _, err = execute(t, "target", "--param", "salary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parameter")

	_, _, err = execute(t, "target", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
