// Package commands wires the projection engine to the paydown CLI.
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paydown-dev/paydown/internal/buildinfo"
	"github.com/paydown-dev/paydown/internal/scenario"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "paydown",
		Short:   "Debt payoff and savings projections",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPayoffCommand())
	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newSavingsCommand())

	return rootCmd
}

// resolveToday picks the simulation anchor date: the --today flag wins, then
// the scenario file's pin, then the wall clock truncated to a date.
func resolveToday(sc *scenario.Scenario, flag string) (time.Time, error) {
	if flag != "" {
		t, err := time.Parse("2006-01-02", flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing --today %q: %w", flag, err)
		}
		return t, nil
	}
	now := time.Now().UTC()
	fallback := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return sc.ResolveToday(fallback)
}
