// Package interest computes one period's interest for a balance under the
// engine's accrual models. The revolving and installment models round at
// different points on purpose: installment rounds at computation, revolving
// defers rounding until the value is written into a schedule month. Existing
// projections depend on that difference, so it must not be unified.
package interest

import (
	"github.com/shopspring/decimal"

	"github.com/paydown-dev/paydown/internal/model"
)

const (
	daysPerYear   = 365
	cycleDays     = 30 // billing-cycle approximation of one month
	monthsPerYear = 12
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// Minimum-payment policy default: greater of $25 or 2% of balance.
	minimumPaymentFloor = decimal.NewFromInt(25)
	minimumPaymentRate  = decimal.RequireFromString("0.02")
)

// RevolvingMonthly returns one month's interest for a daily-compounded
// revolving balance: balance * ((1+apr/100/365)^30 - 1). The result is not
// rounded here.
func RevolvingMonthly(balance, apr decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() || !apr.IsPositive() {
		return decimal.Zero
	}
	dailyRate := apr.Div(hundred).Div(decimal.NewFromInt(daysPerYear))
	growth := one.Add(dailyRate).Pow(decimal.NewFromInt(cycleDays))
	return balance.Mul(growth).Sub(balance)
}

// InstallmentMonthly returns one month's simple interest for an installment
// balance: balance * apr/100/12, rounded to 2 decimals immediately.
func InstallmentMonthly(balance, apr decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() || !apr.IsPositive() {
		return decimal.Zero
	}
	monthlyRate := apr.Div(hundred).Div(decimal.NewFromInt(monthsPerYear))
	return balance.Mul(monthlyRate).Round(2)
}

// ForKind dispatches to the accrual model for the given account kind.
func ForKind(kind model.AccrualKind, balance, apr decimal.Decimal) decimal.Decimal {
	if kind == model.AccrualInstallment {
		return InstallmentMonthly(balance, apr)
	}
	return RevolvingMonthly(balance, apr)
}

// Daily returns one day's simple interest, rounded to 2 decimals. Display
// metric only; simulations never use it.
func Daily(balance, apr decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() || !apr.IsPositive() {
		return decimal.Zero
	}
	dailyRate := apr.Div(hundred).Div(decimal.NewFromInt(daysPerYear))
	return balance.Mul(dailyRate).Round(2)
}

// DefaultMinimumPayment returns the policy minimum payment for a balance:
// max($25, 2% of balance), or zero for a non-positive balance. Callers that
// supply their own minimum override this.
func DefaultMinimumPayment(balance decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	return decimal.Max(minimumPaymentFloor, balance.Mul(minimumPaymentRate).Round(2))
}

// AmortizedPayment returns the fixed monthly payment that retires principal
// over the given number of months at the given APR (standard annuity
// formula), rounded to 2 decimals.
func AmortizedPayment(principal, apr decimal.Decimal, months int) decimal.Decimal {
	if !principal.IsPositive() || months <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(months))
	if apr.IsZero() {
		return principal.Div(n).Round(2)
	}
	monthlyRate := apr.Div(hundred).Div(decimal.NewFromInt(monthsPerYear))
	growth := one.Add(monthlyRate).Pow(n)
	payment := principal.Mul(monthlyRate.Mul(growth)).Div(growth.Sub(one))
	return payment.Round(2)
}
