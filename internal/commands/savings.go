package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paydown-dev/paydown/internal/model"
	"github.com/paydown-dev/paydown/internal/savings"
	"github.com/paydown-dev/paydown/internal/scenario"
)

func newSavingsCommand() *cobra.Command {
	var scenarioPath string
	var contribution string
	var today string

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Project savings goals and recommend contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(scenarioPath)
			if err != nil {
				return err
			}
			goals, err := sc.ModelGoals()
			if err != nil {
				return err
			}
			anchor, err := resolveToday(sc, today)
			if err != nil {
				return err
			}

			contributionValue := sc.MonthlyContribution
			if contribution != "" {
				contributionValue = contribution
			}
			monthly, err := sc.Amount("monthly_contribution", contributionValue)
			if err != nil {
				return err
			}
			income, err := sc.Amount("available_monthly_income", sc.AvailableMonthlyIncome)
			if err != nil {
				return err
			}
			debtPayments, err := sc.Amount("current_debt_payments", sc.CurrentDebtPayments)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var progressList []model.GoalProgress
			for _, goal := range goals {
				projection, err := savings.Project(savings.ProjectParams{
					CurrentAmount:       goal.CurrentAmount,
					TargetAmount:        goal.TargetAmount,
					MonthlyContribution: monthly,
					TargetDate:          goal.TargetDate,
					Today:               anchor,
				})
				if err != nil {
					return fmt.Errorf("projecting %s: %w", goal.Name, err)
				}

				progress := savings.Progress(goal, monthly, anchor)
				progressList = append(progressList, progress)

				fmt.Fprintf(out, "%s: $%s of $%s (%s%%), status %s\n",
					goal.Name, goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2),
					progress.PercentComplete, progress.Status)
				if len(projection.Schedule) == 0 {
					fmt.Fprintf(out, "  %s\n", progress.StatusMessage)
				} else {
					meets := "misses"
					if projection.WillMeetTargetDate {
						meets = "meets"
					}
					fmt.Fprintf(out, "  Reaches target in %d month(s) (%s), which %s the %s target date.\n",
						projection.MonthsToCompletion,
						projection.ProjectedCompletionDate.Format("Jan 2006"),
						meets, goal.TargetDate.Format("Jan 2006"))
				}
			}

			for _, rec := range savings.GenerateRecommendations(progressList, income, debtPayments) {
				fmt.Fprintf(out, "[%s] %s: %s\n", rec.Type, rec.GoalName, rec.Reasoning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "paydown.yaml", "scenario file")
	cmd.Flags().StringVar(&contribution, "contribution", "", "override the scenario's monthly contribution")
	cmd.Flags().StringVar(&today, "today", "", "anchor date (2006-01-02), defaults to today")

	return cmd
}
