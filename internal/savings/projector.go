// Package savings projects savings-goal accumulation, classifies goal
// health, and generates contribution recommendations. Like the payoff
// simulations it is pure: snapshots are never mutated and "today" is always
// an explicit parameter.
package savings

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/model"
)

// DefaultMaxProjectionMonths caps goal projections at 50 years.
const DefaultMaxProjectionMonths = 600

// NeverCompletes is the sentinel completion date for a goal that cannot be
// reached (no positive contribution and target not yet met).
var NeverCompletes = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

var hundred = decimal.NewFromInt(100)

// ProjectParams are the inputs to a goal projection.
// MaxMonths of zero means DefaultMaxProjectionMonths.
type ProjectParams struct {
	CurrentAmount       decimal.Decimal
	TargetAmount        decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetDate          time.Time
	MaxMonths           int
	Today               time.Time
}

func (p ProjectParams) validate(maxMonths int) error {
	var msgs []string
	if p.CurrentAmount.IsNegative() {
		msgs = append(msgs, "currentAmount: must not be negative")
	}
	if !p.TargetAmount.IsPositive() {
		msgs = append(msgs, "targetAmount: must be positive")
	}
	if maxMonths <= 0 {
		msgs = append(msgs, "maxMonths: must be positive")
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Project simulates monthly contributions until the target is reached or the
// month cap is hit.
//
// A non-positive contribution, or a goal already at target, returns a
// degenerate projection with an empty schedule: completion today if the
// target is met, NeverCompletes otherwise.
func Project(p ProjectParams) (model.SavingsProjection, error) {
	maxMonths := p.MaxMonths
	if maxMonths == 0 {
		maxMonths = DefaultMaxProjectionMonths
	}
	if err := p.validate(maxMonths); err != nil {
		return model.SavingsProjection{}, err
	}

	alreadyMet := p.CurrentAmount.Cmp(p.TargetAmount) >= 0
	if !p.MonthlyContribution.IsPositive() || alreadyMet {
		completion := NeverCompletes
		if alreadyMet {
			completion = p.Today
		}
		return model.SavingsProjection{
			Schedule:                []model.SavingsProjectionMonth{},
			ProjectedCompletionDate: completion,
			MonthsToCompletion:      0,
			TotalContributions:      decimal.Zero,
			WillMeetTargetDate:      alreadyMet,
		}, nil
	}

	schedule := []model.SavingsProjectionMonth{}
	balance := p.CurrentAmount
	monthNumber := 0
	current := p.Today

	for balance.LessThan(p.TargetAmount) && monthNumber < maxMonths {
		monthNumber++
		current = current.AddDate(0, 1, 0)

		opening := balance
		closing := balance.Add(p.MonthlyContribution)
		percent := decimal.Min(hundred, closing.Div(p.TargetAmount).Mul(hundred).Round(1))

		schedule = append(schedule, model.SavingsProjectionMonth{
			MonthNumber:      monthNumber,
			Month:            int(current.Month()),
			Year:             current.Year(),
			OpeningBalance:   opening.Round(2),
			ContributionMade: p.MonthlyContribution.Round(2),
			ClosingBalance:   closing.Round(2),
			PercentComplete:  percent,
		})

		balance = closing
	}

	return model.SavingsProjection{
		Schedule:                schedule,
		ProjectedCompletionDate: current,
		MonthsToCompletion:      monthNumber,
		TotalContributions:      p.MonthlyContribution.Mul(decimal.NewFromInt(int64(monthNumber))).Round(2),
		WillMeetTargetDate:      !current.After(p.TargetDate),
	}, nil
}
