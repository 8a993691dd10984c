package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccrualKind selects how an account accrues interest each month.
type AccrualKind string

const (
	// AccrualRevolving compounds a daily rate over a 30-day cycle
	// (credit cards and lines of credit).
	AccrualRevolving AccrualKind = "revolving"
	// AccrualInstallment charges simple monthly interest (loans).
	AccrualInstallment AccrualKind = "installment"
)

// Valid reports whether the kind is one of the known accrual models.
func (k AccrualKind) Valid() bool {
	return k == AccrualRevolving || k == AccrualInstallment
}

// Account is an immutable snapshot of a debt account. Simulations carry
// their own working balance and never mutate the snapshot.
type Account struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	APR            decimal.Decimal `json:"apr"` // annual rate in percent, e.g. 24.99
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	Kind           AccrualKind     `json:"kind"`
}
