package savings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/model"
)

// debtLoadThreshold is the share of available income above which debt
// payments take priority over catching up a behind goal.
var debtLoadThreshold = decimal.RequireFromString("0.3")

// GenerateRecommendations produces one recommendation per goal that has not
// been achieved. A behind goal under a heavy debt load suggests pausing;
// otherwise behind and at-risk goals suggest the required contribution, and
// on-track goals confirm the current pace.
func GenerateRecommendations(goals []model.GoalProgress, availableMonthlyIncome, currentDebtPayments decimal.Decimal) []model.Recommendation {
	var recommendations []model.Recommendation

	for _, progress := range goals {
		switch progress.Status {
		case model.GoalAchieved:
			continue

		case model.GoalBehind:
			if currentDebtPayments.GreaterThan(availableMonthlyIncome.Mul(debtLoadThreshold)) {
				recommendations = append(recommendations, model.Recommendation{
					GoalID:                 progress.GoalID,
					GoalName:               progress.Name,
					Type:                   model.RecommendConsiderPausingForDebt,
					SuggestedMonthlyAmount: decimal.Zero,
					Reasoning:              "Your debt payments are high. Consider focusing on debt reduction before aggressive savings.",
					Impact:                 decimal.Zero,
				})
				continue
			}
			recommendations = append(recommendations, model.Recommendation{
				GoalID:                 progress.GoalID,
				GoalName:               progress.Name,
				Type:                   model.RecommendIncreaseContribution,
				SuggestedMonthlyAmount: progress.RequiredMonthlyContribution,
				Reasoning:              fmt.Sprintf("Increase to $%s/month to meet your target date.", progress.RequiredMonthlyContribution.StringFixed(2)),
				Impact:                 decimal.NewFromInt(int64(progress.MonthsRemaining)),
			})

		case model.GoalAtRisk:
			increase := progress.RequiredMonthlyContribution.Sub(progress.AverageMonthlyContribution)
			recommendations = append(recommendations, model.Recommendation{
				GoalID:                 progress.GoalID,
				GoalName:               progress.Name,
				Type:                   model.RecommendIncreaseContribution,
				SuggestedMonthlyAmount: progress.RequiredMonthlyContribution,
				Reasoning:              fmt.Sprintf("Slightly behind. Add $%s/month to stay on track.", increase.StringFixed(2)),
				Impact:                 increase,
			})

		case model.GoalOnTrack:
			recommendations = append(recommendations, model.Recommendation{
				GoalID:                 progress.GoalID,
				GoalName:               progress.Name,
				Type:                   model.RecommendOnTrack,
				SuggestedMonthlyAmount: progress.AverageMonthlyContribution,
				Reasoning:              "You're on track! Keep up the current pace.",
				Impact:                 decimal.Zero,
			})
		}
	}

	return recommendations
}
