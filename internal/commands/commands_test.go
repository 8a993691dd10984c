package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `accounts:
  - name: Card A
    balance: "2000.00"
    apr: "25"
    minimum_payment: "50.00"
    kind: revolving
  - name: Card B
    balance: "500.00"
    apr: "15"
    minimum_payment: "25.00"
    kind: revolving
goals:
  - name: Emergency fund
    current_amount: "1000.00"
    target_amount: "5000.00"
    target_date: "2028-09-01"
monthly_payment: "200.00"
extra_monthly_payment: "100.00"
monthly_contribution: "250.00"
available_monthly_income: "4000.00"
current_debt_payments: "350.00"
today: "2026-09-01"
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paydown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestPayoffCommand_PrintsSummaries(t *testing.T) {
	out, err := run(t, "payoff", "--scenario", writeScenario(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Card A")
	assert.Contains(t, out, "Card B")
	assert.Contains(t, out, "Paid off in")
	assert.Contains(t, out, "total interest $")
}

func TestPayoffCommand_AccountFilter(t *testing.T) {
	out, err := run(t, "payoff", "--scenario", writeScenario(t), "--account", "Card B")
	require.NoError(t, err)

	assert.Contains(t, out, "Card B")
	assert.NotContains(t, out, "Card A")
}

func TestPayoffCommand_ReportsInsufficientPayment(t *testing.T) {
	out, err := run(t, "payoff", "--scenario", writeScenario(t), "--payment", "15", "--account", "Card A")
	require.NoError(t, err)

	assert.Contains(t, out, "never covers the first month's interest")
}

func TestPayoffCommand_FullSchedule(t *testing.T) {
	out, err := run(t, "payoff", "--scenario", writeScenario(t), "--account", "Card B", "--full")
	require.NoError(t, err)

	assert.Contains(t, out, "opening")
	assert.Contains(t, out, "closing")
	assert.Contains(t, out, "2026-10")
}

func TestCompareCommand_PrintsBothStrategiesAndRecommendation(t *testing.T) {
	out, err := run(t, "compare", "--scenario", writeScenario(t))
	require.NoError(t, err)

	assert.Contains(t, out, "avalanche:")
	assert.Contains(t, out, "snowball:")
	assert.Contains(t, out, "Recommended:")
}

func TestSavingsCommand_PrintsStatusAndRecommendations(t *testing.T) {
	out, err := run(t, "savings", "--scenario", writeScenario(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Emergency fund")
	assert.Contains(t, out, "status")
	assert.Contains(t, out, "Reaches target in 16 month(s)")
}

func TestCommands_RejectMissingScenario(t *testing.T) {
	_, err := run(t, "compare", "--scenario", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestCommands_TodayFlagOverridesFile(t *testing.T) {
	out, err := run(t, "compare", "--scenario", writeScenario(t), "--today", "2030-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2030")
}

func TestInitCommand_WritesStarterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")
	out, err := run(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote starter scenario")

	_, err = os.Stat(path)
	require.NoError(t, err)

	// Refuses to clobber without --force.
	_, err = run(t, "init", path)
	require.Error(t, err)

	_, err = run(t, "init", path, "--force")
	require.NoError(t, err)
}
