package savings

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/model"
)

// shortfallAtRiskPercent separates a near-miss goal (at-risk) from one that
// is properly behind: a contribution shortfall under 20% of the required
// amount is still recoverable.
var shortfallAtRiskPercent = decimal.NewFromInt(20)

// MonthsRemaining returns the calendar-month difference from today to the
// target date, floored at zero.
func MonthsRemaining(today, targetDate time.Time) int {
	months := (targetDate.Year()-today.Year())*12 + int(targetDate.Month()) - int(today.Month())
	if months < 0 {
		return 0
	}
	return months
}

// RequiredMonthlyContribution returns the monthly amount needed to close the
// gap to target by the target date, rounded to 2 decimals. Zero when the
// target date has passed or the goal is already met.
func RequiredMonthlyContribution(currentAmount, targetAmount decimal.Decimal, targetDate, today time.Time) decimal.Decimal {
	monthsRemaining := MonthsRemaining(today, targetDate)
	if monthsRemaining <= 0 {
		return decimal.Zero
	}
	required := targetAmount.Sub(currentAmount).Div(decimal.NewFromInt(int64(monthsRemaining))).Round(2)
	return decimal.Max(decimal.Zero, required)
}

// DetermineStatus classifies a goal, in priority order: achieved, past the
// target date, contributing enough, and finally the shortfall split between
// at-risk and behind.
func DetermineStatus(currentAmount, targetAmount decimal.Decimal, targetDate time.Time, avgMonthlyContribution decimal.Decimal, today time.Time) model.GoalStatus {
	if currentAmount.Cmp(targetAmount) >= 0 {
		return model.GoalAchieved
	}

	monthsRemaining := MonthsRemaining(today, targetDate)
	if monthsRemaining <= 0 {
		return model.GoalBehind
	}

	required := RequiredMonthlyContribution(currentAmount, targetAmount, targetDate, today)
	if avgMonthlyContribution.Cmp(required) >= 0 {
		return model.GoalOnTrack
	}

	shortfall := required.Sub(avgMonthlyContribution)
	shortfallPercent := hundred
	if required.IsPositive() {
		shortfallPercent = shortfall.Div(required).Mul(hundred)
	}
	if shortfallPercent.LessThan(shortfallAtRiskPercent) {
		return model.GoalAtRisk
	}
	return model.GoalBehind
}

// Progress builds the per-goal roll-up from a snapshot and the goal's
// observed average monthly contribution.
func Progress(goal model.SavingsGoal, avgMonthlyContribution decimal.Decimal, today time.Time) model.GoalProgress {
	remaining := decimal.Max(decimal.Zero, goal.TargetAmount.Sub(goal.CurrentAmount))
	percentComplete := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		percentComplete = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred).Round(1)
	}

	monthsRemaining := MonthsRemaining(today, goal.TargetDate)
	daysRemaining := int(goal.TargetDate.Sub(today).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	required := RequiredMonthlyContribution(goal.CurrentAmount, goal.TargetAmount, goal.TargetDate, today)
	status := DetermineStatus(goal.CurrentAmount, goal.TargetAmount, goal.TargetDate, avgMonthlyContribution, today)

	// Completion projected at the observed average pace.
	var projectedDate time.Time
	var achievable bool
	switch {
	case goal.CurrentAmount.Cmp(goal.TargetAmount) >= 0:
		projectedDate = today
		achievable = true
	case avgMonthlyContribution.IsPositive():
		monthsNeeded := int(remaining.Div(avgMonthlyContribution).Ceil().IntPart())
		projectedDate = today.AddDate(0, monthsNeeded, 0)
		achievable = true
	default:
		projectedDate = NeverCompletes
		achievable = false
	}

	return model.GoalProgress{
		GoalID:                      goal.ID,
		Name:                        goal.Name,
		TargetAmount:                goal.TargetAmount,
		CurrentAmount:               goal.CurrentAmount,
		RemainingAmount:             remaining.Round(2),
		PercentComplete:             percentComplete,
		TargetDate:                  goal.TargetDate,
		DaysRemaining:               daysRemaining,
		MonthsRemaining:             monthsRemaining,
		Status:                      status,
		RequiredMonthlyContribution: required,
		AverageMonthlyContribution:  avgMonthlyContribution.Round(2),
		ProjectedCompletionDate:     projectedDate,
		IsAchievable:                achievable,
		StatusMessage:               statusMessage(status, goal, required, avgMonthlyContribution, monthsRemaining),
	}
}

// statusMessage is the templated per-status display text.
func statusMessage(status model.GoalStatus, goal model.SavingsGoal, required, avg decimal.Decimal, monthsRemaining int) string {
	switch status {
	case model.GoalAchieved:
		return "Goal achieved! Congratulations!"
	case model.GoalOnTrack:
		return fmt.Sprintf("On track to reach your goal by %s.", goal.TargetDate.Format("Jan 2006"))
	case model.GoalAtRisk:
		return fmt.Sprintf("Slightly behind. Increase contributions by $%s/month.", required.Sub(avg).StringFixed(2))
	case model.GoalBehind:
		if monthsRemaining <= 0 {
			return "Target date has passed. Consider updating your goal."
		}
		return fmt.Sprintf("Behind schedule. Need $%s/month to catch up.", required.StringFixed(2))
	}
	return ""
}
