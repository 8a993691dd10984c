package savings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydown-dev/paydown/internal/model"
)

func progressWith(status model.GoalStatus, required, average string, monthsRemaining int) model.GoalProgress {
	return model.GoalProgress{
		GoalID:                      uuid.New(),
		Name:                        "Vacation",
		Status:                      status,
		RequiredMonthlyContribution: dec(required),
		AverageMonthlyContribution:  dec(average),
		MonthsRemaining:             monthsRemaining,
	}
}

func TestGenerateRecommendations_AchievedGoalsSkipped(t *testing.T) {
	recs := GenerateRecommendations(
		[]model.GoalProgress{progressWith(model.GoalAchieved, "0", "100", 0)},
		dec("4000"), dec("500"))
	assert.Empty(t, recs)
}

func TestGenerateRecommendations_BehindWithHeavyDebtSuggestsPausing(t *testing.T) {
	// Debt payments of 1500 exceed 30% of 4000 income.
	recs := GenerateRecommendations(
		[]model.GoalProgress{progressWith(model.GoalBehind, "400", "100", 10)},
		dec("4000"), dec("1500"))
	require.Len(t, recs, 1)

	assert.Equal(t, model.RecommendConsiderPausingForDebt, recs[0].Type)
	assert.True(t, recs[0].SuggestedMonthlyAmount.IsZero())
	assert.True(t, recs[0].Impact.IsZero())
}

func TestGenerateRecommendations_BehindSuggestsRequiredContribution(t *testing.T) {
	recs := GenerateRecommendations(
		[]model.GoalProgress{progressWith(model.GoalBehind, "400", "100", 10)},
		dec("4000"), dec("500"))
	require.Len(t, recs, 1)

	assert.Equal(t, model.RecommendIncreaseContribution, recs[0].Type)
	assert.True(t, recs[0].SuggestedMonthlyAmount.Equal(dec("400")))
	assert.True(t, recs[0].Impact.Equal(dec("10")))
	assert.Contains(t, recs[0].Reasoning, "$400.00/month")
}

func TestGenerateRecommendations_AtRiskSuggestsTopUp(t *testing.T) {
	recs := GenerateRecommendations(
		[]model.GoalProgress{progressWith(model.GoalAtRisk, "333.33", "300", 12)},
		dec("4000"), dec("500"))
	require.Len(t, recs, 1)

	assert.Equal(t, model.RecommendIncreaseContribution, recs[0].Type)
	assert.True(t, recs[0].SuggestedMonthlyAmount.Equal(dec("333.33")))
	assert.True(t, recs[0].Impact.Equal(dec("33.33")))
	assert.Contains(t, recs[0].Reasoning, "$33.33/month")
}

func TestGenerateRecommendations_OnTrackConfirmsPace(t *testing.T) {
	recs := GenerateRecommendations(
		[]model.GoalProgress{progressWith(model.GoalOnTrack, "333.33", "350", 12)},
		dec("4000"), dec("500"))
	require.Len(t, recs, 1)

	assert.Equal(t, model.RecommendOnTrack, recs[0].Type)
	assert.True(t, recs[0].SuggestedMonthlyAmount.Equal(dec("350")))
	assert.True(t, recs[0].Impact.IsZero())
}

func TestGenerateRecommendations_ExactThirtyPercentIsNotHeavy(t *testing.T) {
	// The pause rule requires debt payments strictly above 30% of income.
	recs := GenerateRecommendations(
		[]model.GoalProgress{progressWith(model.GoalBehind, "400", "100", 10)},
		dec("4000"), dec("1200"))
	require.Len(t, recs, 1)
	assert.Equal(t, model.RecommendIncreaseContribution, recs[0].Type)
}

func TestGenerateRecommendations_OnePerUnachievedGoal(t *testing.T) {
	recs := GenerateRecommendations([]model.GoalProgress{
		progressWith(model.GoalAchieved, "0", "100", 0),
		progressWith(model.GoalBehind, "400", "100", 10),
		progressWith(model.GoalOnTrack, "200", "250", 6),
	}, dec("4000"), decimal.Zero)
	assert.Len(t, recs, 2)
}
