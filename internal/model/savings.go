package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus classifies how a savings goal is tracking toward its target
// date. It is derived per evaluation, never stored.
type GoalStatus string

const (
	GoalOnTrack  GoalStatus = "on-track"
	GoalAtRisk   GoalStatus = "at-risk"
	GoalBehind   GoalStatus = "behind"
	GoalAchieved GoalStatus = "achieved"
)

// SavingsGoal is an immutable snapshot of a savings goal.
type SavingsGoal struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SavingsProjectionMonth is one simulated period of goal accumulation.
type SavingsProjectionMonth struct {
	MonthNumber      int             `json:"monthNumber"`
	Month            int             `json:"calendarMonth"`
	Year             int             `json:"calendarYear"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	ContributionMade decimal.Decimal `json:"contributionMade"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	PercentComplete  decimal.Decimal `json:"percentComplete"` // 1-decimal, capped at 100
}

// SavingsProjection is the forward simulation of a goal under a fixed
// monthly contribution.
type SavingsProjection struct {
	Schedule                []SavingsProjectionMonth `json:"schedule"`
	ProjectedCompletionDate time.Time                `json:"projectedCompletionDate"`
	MonthsToCompletion      int                      `json:"monthsToCompletion"`
	TotalContributions      decimal.Decimal          `json:"totalContributions"`
	WillMeetTargetDate      bool                     `json:"willMeetTargetDate"`
}

// GoalProgress is the per-goal roll-up consumed by status display and
// recommendation generation.
type GoalProgress struct {
	GoalID                      uuid.UUID       `json:"goalId"`
	Name                        string          `json:"name"`
	TargetAmount                decimal.Decimal `json:"targetAmount"`
	CurrentAmount               decimal.Decimal `json:"currentAmount"`
	RemainingAmount             decimal.Decimal `json:"remainingAmount"`
	PercentComplete             decimal.Decimal `json:"percentComplete"`
	TargetDate                  time.Time       `json:"targetDate"`
	DaysRemaining               int             `json:"daysRemaining"`
	MonthsRemaining             int             `json:"monthsRemaining"`
	Status                      GoalStatus      `json:"status"`
	RequiredMonthlyContribution decimal.Decimal `json:"requiredMonthlyContribution"`
	AverageMonthlyContribution  decimal.Decimal `json:"averageMonthlyContribution"`
	ProjectedCompletionDate     time.Time       `json:"projectedCompletionDate"`
	IsAchievable                bool            `json:"isAchievable"`
	StatusMessage               string          `json:"statusMessage"`
}

// RecommendationType categorizes a savings recommendation.
type RecommendationType string

const (
	RecommendIncreaseContribution   RecommendationType = "increase-contribution"
	RecommendExtendTargetDate       RecommendationType = "extend-target-date"
	RecommendReduceTargetAmount     RecommendationType = "reduce-target-amount"
	RecommendOnTrack                RecommendationType = "on-track"
	RecommendPrioritizeThisGoal     RecommendationType = "prioritize-this-goal"
	RecommendConsiderPausingForDebt RecommendationType = "consider-pausing-for-debt"
)

// Recommendation is a single suggested action for a goal.
type Recommendation struct {
	GoalID                 uuid.UUID          `json:"goalId"`
	GoalName               string             `json:"goalName"`
	Type                   RecommendationType `json:"type"`
	SuggestedMonthlyAmount decimal.Decimal    `json:"suggestedMonthlyAmount"`
	Reasoning              string             `json:"reasoning"`
	Impact                 decimal.Decimal    `json:"impact"`
}
