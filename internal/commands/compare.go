package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/paydown-dev/paydown/internal/model"
	"github.com/paydown-dev/paydown/internal/payoff"
	"github.com/paydown-dev/paydown/internal/scenario"
)

func newCompareCommand() *cobra.Command {
	var scenarioPath string
	var extra string
	var today string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare avalanche and snowball payoff strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(scenarioPath)
			if err != nil {
				return err
			}
			accounts, err := sc.ModelAccounts()
			if err != nil {
				return err
			}
			anchor, err := resolveToday(sc, today)
			if err != nil {
				return err
			}

			extraValue := sc.ExtraMonthlyPayment
			if extra != "" {
				extraValue = extra
			}
			extraPayment, err := sc.Amount("extra_monthly_payment", extraValue)
			if err != nil {
				return err
			}

			comparison, err := payoff.Compare(accounts, extraPayment, payoff.AllocateOptions{Today: anchor})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStrategy(out, model.StrategyAvalanche, comparison.Avalanche)
			printStrategy(out, model.StrategySnowball, comparison.Snowball)
			fmt.Fprintf(out, "Recommended: %s\n%s\n", comparison.RecommendedStrategy, comparison.Summary.Recommendation)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "paydown.yaml", "scenario file")
	cmd.Flags().StringVar(&extra, "extra", "", "override the scenario's extra monthly payment")
	cmd.Flags().StringVar(&today, "today", "", "anchor date (2006-01-02), defaults to today")

	return cmd
}

func printStrategy(out io.Writer, strategy model.Strategy, result model.StrategyResult) {
	fmt.Fprintf(out, "%s: %d month(s), total interest $%s, debt-free %s\n",
		strategy, result.TotalMonths, result.TotalInterestPaid.StringFixed(2),
		result.PayoffDate.Format("Jan 2006"))
	for _, s := range result.AccountSchedules {
		fmt.Fprintf(out, "  %s: paid off %s (%d month(s))\n",
			s.AccountName, s.PayoffDate.Format("Jan 2006"), len(s.Schedule))
	}
}
