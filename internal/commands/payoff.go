package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/paydown-dev/paydown/internal/interest"
	"github.com/paydown-dev/paydown/internal/model"
	"github.com/paydown-dev/paydown/internal/payoff"
	"github.com/paydown-dev/paydown/internal/scenario"
)

func newPayoffCommand() *cobra.Command {
	var scenarioPath string
	var accountName string
	var payment string
	var today string
	var full bool

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Amortize a single account under a fixed monthly payment",
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

			monthly := sc.MonthlyPayment
			if payment != "" {
				monthly = payment
			}
			monthlyPayment, err := sc.Amount("monthly_payment", monthly)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, account := range accounts {
				if accountName != "" && account.Name != accountName {
					continue
				}
				projection, err := payoff.Amortize(payoff.AmortizeParams{
					Balance:        account.Balance,
					APR:            account.APR,
					MonthlyPayment: monthlyPayment,
					Kind:           account.Kind,
					Today:          anchor,
				})
				if err != nil {
					return fmt.Errorf("amortizing %s: %w", account.Name, err)
				}
				printProjection(out, account, monthlyPayment, projection, full)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "paydown.yaml", "scenario file")
	cmd.Flags().StringVar(&accountName, "account", "", "limit to one account by name")
	cmd.Flags().StringVar(&payment, "payment", "", "override the scenario's monthly payment")
	cmd.Flags().StringVar(&today, "today", "", "anchor date (2006-01-02), defaults to today")
	cmd.Flags().BoolVar(&full, "full", false, "print the full month-by-month schedule")

	return cmd
}

func printProjection(out io.Writer, account model.Account, monthlyPayment decimal.Decimal, p model.Projection, full bool) {
	fmt.Fprintf(out, "%s (%s, %s%% APR, accruing $%s/day)\n",
		account.Name, account.Kind, account.APR,
		interest.Daily(account.Balance, account.APR).StringFixed(2))

	if len(p.Schedule) == 0 {
		fmt.Fprintf(out, "  A payment of $%s never covers the first month's interest; this balance will not be paid off.\n\n",
			monthlyPayment.StringFixed(2))
		return
	}

	fmt.Fprintf(out, "  Paid off in %d month(s) by %s, total interest $%s, total paid $%s\n",
		p.TotalMonths, p.PayoffDate.Format("Jan 2006"),
		p.TotalInterestPaid.StringFixed(2), p.TotalPaid.StringFixed(2))

	if full {
		printSchedule(out, p.Schedule)
	}
	fmt.Fprintln(out)
}

func printSchedule(out io.Writer, schedule []model.ScheduleMonth) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tdate\topening\tinterest\tpayment\tprincipal\tclosing")
	for _, m := range schedule {
		fmt.Fprintf(w, "  %d\t%04d-%02d\t%s\t%s\t%s\t%s\t%s\n",
			m.MonthNumber, m.Year, m.Month,
			m.OpeningBalance.StringFixed(2), m.InterestCharged.StringFixed(2),
			m.PaymentMade.StringFixed(2), m.PrincipalApplied.StringFixed(2),
			m.ClosingBalance.StringFixed(2))
	}
	w.Flush()
}
