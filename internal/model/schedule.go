package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy orders accounts for extra-payment allocation.
type Strategy string

const (
	// StrategyAvalanche targets the highest-APR account first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball targets the lowest-balance account first.
	StrategySnowball Strategy = "snowball"
)

// Valid reports whether the strategy is a known ordering policy.
func (s Strategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// ScheduleMonth is one simulated period of an amortization schedule.
// All monetary fields are rounded to 2 decimals when the month is recorded.
type ScheduleMonth struct {
	MonthNumber            int             `json:"monthNumber"`   // 1-based
	Month                  int             `json:"calendarMonth"` // 1-12
	Year                   int             `json:"calendarYear"`
	OpeningBalance         decimal.Decimal `json:"openingBalance"`
	InterestCharged        decimal.Decimal `json:"interestCharged"`
	PaymentMade            decimal.Decimal `json:"paymentMade"`
	PrincipalApplied       decimal.Decimal `json:"principalApplied"`
	ClosingBalance         decimal.Decimal `json:"closingBalance"`
	CumulativeInterestPaid decimal.Decimal `json:"cumulativeInterestPaid"`
}

// Projection is the result of amortizing a single account under a fixed
// monthly payment. An empty Schedule with TotalMonths equal to the month cap
// signals that the payment never covers the first month's interest; callers
// must branch on len(Schedule) to detect it.
type Projection struct {
	Schedule          []ScheduleMonth `json:"schedule"`
	TotalMonths       int             `json:"totalMonths"`
	TotalInterestPaid decimal.Decimal `json:"totalInterestPaid"`
	PayoffDate        time.Time       `json:"payoffDate"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
}

// AccountPayoffSchedule is one account's schedule within a multi-account
// strategy simulation.
type AccountPayoffSchedule struct {
	AccountID   uuid.UUID       `json:"accountId"`
	AccountName string          `json:"accountName"`
	Kind        AccrualKind     `json:"accountKind"`
	Schedule    []ScheduleMonth `json:"schedule"`
	PayoffDate  time.Time       `json:"payoffDate"`
}

// StrategyResult is the outcome of simulating all accounts under one
// ordering policy with a shared extra-payment pool.
type StrategyResult struct {
	AccountSchedules  []AccountPayoffSchedule `json:"accountSchedules"`
	TotalMonths       int                     `json:"totalMonths"`
	TotalInterestPaid decimal.Decimal         `json:"totalInterestPaid"`
	PayoffDate        time.Time               `json:"payoffDate"`
}

// ComparisonSummary quantifies the gap between the two strategies.
// InterestSaved and MonthsSaved are absolute values.
type ComparisonSummary struct {
	InterestSaved  decimal.Decimal `json:"interestSaved"`
	MonthsSaved    int             `json:"monthsSaved"`
	Recommendation string          `json:"recommendation"`
}

// StrategyComparison holds both strategy runs and the recommendation
// derived from them.
type StrategyComparison struct {
	RecommendedStrategy Strategy          `json:"recommendedStrategy"`
	Avalanche           StrategyResult    `json:"avalanche"`
	Snowball            StrategyResult    `json:"snowball"`
	Summary             ComparisonSummary `json:"summary"`
}
