package payoff

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/model"
)

// Compare runs both strategies over the same accounts and extra payment and
// recommends the one that pays less interest. InterestSaved is computed as
// snowball minus avalanche; a non-negative difference recommends avalanche.
func Compare(accounts []model.Account, extraMonthlyPayment decimal.Decimal, opts AllocateOptions) (model.StrategyComparison, error) {
	avalanche, err := Allocate(accounts, extraMonthlyPayment, model.StrategyAvalanche, opts)
	if err != nil {
		return model.StrategyComparison{}, fmt.Errorf("avalanche run: %w", err)
	}
	snowball, err := Allocate(accounts, extraMonthlyPayment, model.StrategySnowball, opts)
	if err != nil {
		return model.StrategyComparison{}, fmt.Errorf("snowball run: %w", err)
	}

	interestSaved := snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid)
	monthsSaved := snowball.TotalMonths - avalanche.TotalMonths

	recommended := model.StrategySnowball
	if !interestSaved.IsNegative() {
		recommended = model.StrategyAvalanche
	}

	return model.StrategyComparison{
		RecommendedStrategy: recommended,
		Avalanche:           avalanche,
		Snowball:            snowball,
		Summary: model.ComparisonSummary{
			InterestSaved:  interestSaved.Abs().Round(2),
			MonthsSaved:    absInt(monthsSaved),
			Recommendation: recommendationText(interestSaved, monthsSaved),
		},
	}, nil
}

// comparisonOutcome keys the recommendation message templates.
type comparisonOutcome int

const (
	outcomeTie comparisonOutcome = iota
	outcomeAvalancheWins
	outcomeSnowballWins
)

var outcomeWording = map[comparisonOutcome]struct {
	winner    string
	rationale string
}{
	outcomeAvalancheWins: {"Avalanche", "attacking the highest APR accounts first"},
	outcomeSnowballWins:  {"Snowball", "paying off the smallest balances first for quick wins"},
}

func classifyOutcome(interestSaved decimal.Decimal, monthsSaved int) comparisonOutcome {
	if interestSaved.Abs().LessThan(decimal.NewFromInt(1)) && absInt(monthsSaved) < 1 {
		return outcomeTie
	}
	if !interestSaved.IsNegative() {
		return outcomeAvalancheWins
	}
	return outcomeSnowballWins
}

func recommendationText(interestSaved decimal.Decimal, monthsSaved int) string {
	outcome := classifyOutcome(interestSaved, monthsSaved)
	if outcome == outcomeTie {
		return "Both strategies perform nearly identically for your accounts."
	}
	w := outcomeWording[outcome]
	return fmt.Sprintf("You'll save $%s and pay off debt %d month(s) faster with the %s method by %s.",
		interestSaved.Abs().StringFixed(2), absInt(monthsSaved), w.winner, w.rationale)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
