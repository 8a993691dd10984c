package payoff

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/interest"
	"github.com/paydown-dev/paydown/internal/model"
)

// AllocateOptions carry the shared simulation parameters.
// MaxMonths of zero means DefaultMaxPayoffMonths.
type AllocateOptions struct {
	MaxMonths int
	Today     time.Time
}

// accountState is the per-account working state of a waterfall run. Each
// strategy run builds its own states from the snapshots, so strategy runs
// never share mutable state.
type accountState struct {
	account            model.Account
	balance            decimal.Decimal
	minPayment         decimal.Decimal
	schedule           []model.ScheduleMonth
	monthInterest      decimal.Decimal
	monthPayment       decimal.Decimal
	cumulativeInterest decimal.Decimal
}

// Allocate simulates all accounts together under one strategy, paying every
// active account its minimum each month and cascading a shared extra-payment
// pool down the strategy order.
func Allocate(accounts []model.Account, extraMonthlyPayment decimal.Decimal, strategy model.Strategy, opts AllocateOptions) (model.StrategyResult, error) {
	maxMonths := opts.MaxMonths
	if maxMonths == 0 {
		maxMonths = DefaultMaxPayoffMonths
	}
	if err := validateAccounts(accounts, maxMonths); err != nil {
		return model.StrategyResult{}, err
	}
	if !strategy.Valid() {
		return model.StrategyResult{}, joinValidation([]ValidationError{{"strategy", "must be avalanche or snowball"}})
	}
	if len(accounts) == 0 {
		return model.StrategyResult{
			AccountSchedules:  []model.AccountPayoffSchedule{},
			TotalMonths:       0,
			TotalInterestPaid: decimal.Zero,
			PayoffDate:        opts.Today,
		}, nil
	}

	states := orderStates(accounts, strategy)

	for month := 1; month <= maxMonths; month++ {
		active := activeStates(states)
		if len(active) == 0 {
			break
		}

		current := opts.Today.AddDate(0, month, 0)
		extraRemaining := extraMonthlyPayment

		// Minimum pass: every active account accrues interest and pays its
		// minimum, regardless of where the extra payment is targeted.
		for _, s := range active {
			monthlyInterest := interest.ForKind(s.account.Kind, s.balance, s.account.APR)
			payment := decimal.Min(s.minPayment, s.balance.Add(monthlyInterest))
			s.monthInterest = monthlyInterest
			s.monthPayment = payment
			s.balance = decimal.Max(decimal.Zero, s.balance.Add(monthlyInterest).Sub(payment))
			s.cumulativeInterest = s.cumulativeInterest.Add(monthlyInterest)
		}

		// Extra pass: pour the pool into the first account still carrying a
		// balance, cascading to the next when one zeroes out mid-month.
		target := firstWithBalance(active, nil)
		for target != nil && extraRemaining.IsPositive() {
			applied := decimal.Min(extraRemaining, target.balance)
			target.monthPayment = target.monthPayment.Add(applied)
			target.balance = decimal.Max(decimal.Zero, target.balance.Sub(applied))
			extraRemaining = extraRemaining.Sub(applied)
			if extraRemaining.IsPositive() {
				target = firstWithBalance(active, target)
			}
		}

		for _, s := range active {
			opening := s.account.Balance
			if n := len(s.schedule); n > 0 {
				opening = s.schedule[n-1].ClosingBalance
			}
			s.schedule = append(s.schedule, model.ScheduleMonth{
				MonthNumber:            month,
				Month:                  int(current.Month()),
				Year:                   current.Year(),
				OpeningBalance:         opening.Round(2),
				InterestCharged:        s.monthInterest.Round(2),
				PaymentMade:            s.monthPayment.Round(2),
				PrincipalApplied:       s.monthPayment.Sub(s.monthInterest).Round(2),
				ClosingBalance:         s.balance.Round(2),
				CumulativeInterestPaid: s.cumulativeInterest.Round(2),
			})
		}
	}

	schedules := make([]model.AccountPayoffSchedule, len(states))
	totalMonths := 0
	totalInterest := decimal.Zero
	for i, s := range states {
		payoffDate := opts.Today
		if n := len(s.schedule); n > 0 {
			last := s.schedule[n-1]
			payoffDate = time.Date(last.Year, time.Month(last.Month), 1, 0, 0, 0, 0, time.UTC)
		}
		schedules[i] = model.AccountPayoffSchedule{
			AccountID:   s.account.ID,
			AccountName: s.account.Name,
			Kind:        s.account.Kind,
			Schedule:    s.schedule,
			PayoffDate:  payoffDate,
		}
		if len(s.schedule) > totalMonths {
			totalMonths = len(s.schedule)
		}
		totalInterest = totalInterest.Add(s.cumulativeInterest)
	}

	return model.StrategyResult{
		AccountSchedules:  schedules,
		TotalMonths:       totalMonths,
		TotalInterestPaid: totalInterest.Round(2),
		PayoffDate:        opts.Today.AddDate(0, totalMonths, 0),
	}, nil
}

// orderStates builds fresh working state in strategy order. Ties keep input
// order (stable sort). An account without an explicit minimum payment gets
// the policy default.
func orderStates(accounts []model.Account, strategy model.Strategy) []*accountState {
	ordered := make([]model.Account, len(accounts))
	copy(ordered, accounts)
	if strategy == model.StrategyAvalanche {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].APR.GreaterThan(ordered[j].APR)
		})
	} else {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance.LessThan(ordered[j].Balance)
		})
	}

	states := make([]*accountState, len(ordered))
	for i, a := range ordered {
		minPayment := a.MinimumPayment
		if !minPayment.IsPositive() {
			minPayment = interest.DefaultMinimumPayment(a.Balance)
		}
		states[i] = &accountState{
			account:    a,
			balance:    a.Balance,
			minPayment: minPayment,
			schedule:   []model.ScheduleMonth{},
		}
	}
	return states
}

// activeStates returns the states still carrying a balance, in order.
func activeStates(states []*accountState) []*accountState {
	active := make([]*accountState, 0, len(states))
	for _, s := range states {
		if s.balance.IsPositive() {
			active = append(active, s)
		}
	}
	return active
}

// firstWithBalance returns the first state with a positive balance,
// skipping the given one.
func firstWithBalance(states []*accountState, skip *accountState) *accountState {
	for _, s := range states {
		if s != skip && s.balance.IsPositive() {
			return s
		}
	}
	return nil
}
