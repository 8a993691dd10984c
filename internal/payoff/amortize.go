// Package payoff simulates debt payoff: single-account amortization, the
// multi-account waterfall allocator, and the avalanche/snowball comparator.
// All simulations are pure: inputs are never mutated, "today" is an explicit
// parameter, and every loop is hard-capped.
package payoff

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/interest"
	"github.com/paydown-dev/paydown/internal/model"
)

// DefaultMaxPayoffMonths caps payoff simulations at 30 years. The cap is the
// non-termination safeguard for inputs whose payment barely exceeds interest.
const DefaultMaxPayoffMonths = 360

// payoffTolerance absorbs sub-cent residue left by installment rounding.
var payoffTolerance = decimal.RequireFromString("0.01")

// AmortizeParams are the inputs to a single-account amortization.
// MaxMonths of zero means DefaultMaxPayoffMonths.
type AmortizeParams struct {
	Balance        decimal.Decimal
	APR            decimal.Decimal // percent
	MonthlyPayment decimal.Decimal
	Kind           model.AccrualKind
	MaxMonths      int
	Today          time.Time
}

// Amortize simulates one account to payoff under a fixed monthly payment.
//
// If the payment does not exceed the first month's interest (and APR is
// positive) the account can never be paid off; the result is the sentinel
// projection: empty schedule, TotalMonths at the cap, zero totals, and a
// payoff date the cap's distance from today.
func Amortize(p AmortizeParams) (model.Projection, error) {
	maxMonths := p.MaxMonths
	if maxMonths == 0 {
		maxMonths = DefaultMaxPayoffMonths
	}
	if err := validateAmortize(p, maxMonths); err != nil {
		return model.Projection{}, err
	}

	balance := p.Balance
	cumulativeInterest := decimal.Zero
	monthNumber := 0
	current := p.Today

	firstMonthInterest := interest.ForKind(p.Kind, balance, p.APR)
	if p.APR.IsPositive() && p.MonthlyPayment.Cmp(firstMonthInterest) <= 0 {
		return model.Projection{
			Schedule:          []model.ScheduleMonth{},
			TotalMonths:       maxMonths,
			TotalInterestPaid: decimal.Zero,
			PayoffDate:        p.Today.AddDate(0, maxMonths, 0),
			TotalPaid:         decimal.Zero,
		}, nil
	}

	schedule := []model.ScheduleMonth{}
	for monthNumber < maxMonths && !paidOff(balance, p.Kind) {
		monthNumber++
		current = current.AddDate(0, 1, 0)

		opening := balance
		monthlyInterest := interest.ForKind(p.Kind, balance, p.APR)
		payment := decimal.Min(p.MonthlyPayment, balance.Add(monthlyInterest))
		principal := payment.Sub(monthlyInterest)

		var closing decimal.Decimal
		if p.Kind == model.AccrualInstallment {
			closing = decimal.Max(decimal.Zero, balance.Sub(principal))
		} else {
			closing = decimal.Max(decimal.Zero, balance.Add(monthlyInterest).Sub(payment))
		}

		cumulativeInterest = cumulativeInterest.Add(monthlyInterest)

		schedule = append(schedule, model.ScheduleMonth{
			MonthNumber:            monthNumber,
			Month:                  int(current.Month()),
			Year:                   current.Year(),
			OpeningBalance:         opening.Round(2),
			InterestCharged:        monthlyInterest.Round(2),
			PaymentMade:            payment.Round(2),
			PrincipalApplied:       principal.Round(2),
			ClosingBalance:         closing.Round(2),
			CumulativeInterestPaid: cumulativeInterest.Round(2),
		})

		balance = closing
	}

	return model.Projection{
		Schedule:          schedule,
		TotalMonths:       monthNumber,
		TotalInterestPaid: cumulativeInterest.Round(2),
		PayoffDate:        current,
		TotalPaid:         p.Balance.Add(cumulativeInterest).Round(2),
	}, nil
}

// paidOff reports whether a working balance counts as retired. Installment
// balances stop at the sub-cent tolerance; revolving balances run to zero.
func paidOff(balance decimal.Decimal, kind model.AccrualKind) bool {
	if kind == model.AccrualInstallment {
		return balance.Cmp(payoffTolerance) <= 0
	}
	return !balance.IsPositive()
}
