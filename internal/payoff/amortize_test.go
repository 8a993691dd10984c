package payoff

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydown-dev/paydown/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

var testToday = date(2026, 9, 1)

func TestAmortize_RevolvingPaysOff(t *testing.T) {
	p, err := Amortize(AmortizeParams{
		Balance:        dec("5000"),
		APR:            dec("24"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualRevolving,
		Today:          testToday,
	})
	require.NoError(t, err)

	require.NotEmpty(t, p.Schedule)
	assert.Less(t, p.TotalMonths, DefaultMaxPayoffMonths)
	assert.Equal(t, len(p.Schedule), p.TotalMonths)

	final := p.Schedule[len(p.Schedule)-1]
	assert.True(t, final.ClosingBalance.IsZero(), "final closing balance should be zero, got %s", final.ClosingBalance)
	assert.True(t, p.TotalPaid.Equal(dec("5000").Add(p.TotalInterestPaid)))
	assert.Equal(t, testToday.AddDate(0, p.TotalMonths, 0), p.PayoffDate)
}

func TestAmortize_ScheduleInvariants(t *testing.T) {
	p, err := Amortize(AmortizeParams{
		Balance:        dec("5000"),
		APR:            dec("24"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualRevolving,
		Today:          testToday,
	})
	require.NoError(t, err)

	prevCumulative := decimal.Zero
	for _, m := range p.Schedule {
		assert.True(t, m.PrincipalApplied.Equal(m.PaymentMade.Sub(m.InterestCharged)),
			"month %d: principal %s != payment %s - interest %s",
			m.MonthNumber, m.PrincipalApplied, m.PaymentMade, m.InterestCharged)
		assert.False(t, m.ClosingBalance.IsNegative(), "month %d: negative closing balance", m.MonthNumber)
		assert.True(t, m.CumulativeInterestPaid.Cmp(prevCumulative) >= 0,
			"month %d: cumulative interest decreased", m.MonthNumber)
		prevCumulative = m.CumulativeInterestPaid
	}
}

func TestAmortize_InsufficientPaymentSentinel(t *testing.T) {
	// 1000 at 20%: first month's interest ~= 16.58 > 15.
	p, err := Amortize(AmortizeParams{
		Balance:        dec("1000"),
		APR:            dec("20"),
		MonthlyPayment: dec("15"),
		Kind:           model.AccrualRevolving,
		Today:          testToday,
	})
	require.NoError(t, err)

	assert.Empty(t, p.Schedule)
	assert.Equal(t, DefaultMaxPayoffMonths, p.TotalMonths)
	assert.True(t, p.TotalInterestPaid.IsZero())
	assert.True(t, p.TotalPaid.IsZero())
	assert.Equal(t, testToday.AddDate(0, DefaultMaxPayoffMonths, 0), p.PayoffDate)
}

func TestAmortize_ZeroAPRIsNotSentinel(t *testing.T) {
	p, err := Amortize(AmortizeParams{
		Balance:        dec("1200"),
		APR:            decimal.Zero,
		MonthlyPayment: dec("100"),
		Kind:           model.AccrualInstallment,
		Today:          testToday,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, p.TotalMonths)
	assert.True(t, p.TotalInterestPaid.IsZero())
	assert.True(t, p.TotalPaid.Equal(dec("1200")))
}

func TestAmortize_InstallmentFinalPaymentClamped(t *testing.T) {
	p, err := Amortize(AmortizeParams{
		Balance:        dec("1000"),
		APR:            dec("12"),
		MonthlyPayment: dec("300"),
		Kind:           model.AccrualInstallment,
		Today:          testToday,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.Schedule)

	final := p.Schedule[len(p.Schedule)-1]
	// Never pays more than balance plus interest.
	assert.True(t, final.PaymentMade.Cmp(dec("300")) <= 0)
	assert.True(t, final.ClosingBalance.Cmp(dec("0.01")) <= 0)
}

func TestAmortize_Idempotent(t *testing.T) {
	params := AmortizeParams{
		Balance:        dec("5000"),
		APR:            dec("24"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualRevolving,
		Today:          testToday,
	}
	first, err := Amortize(params)
	require.NoError(t, err)
	second, err := Amortize(params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAmortize_CalendarMonthsAdvance(t *testing.T) {
	p, err := Amortize(AmortizeParams{
		Balance:        dec("300"),
		APR:            dec("12"),
		MonthlyPayment: dec("150"),
		Kind:           model.AccrualRevolving,
		Today:          date(2026, 11, 1),
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(p.Schedule), 2)

	assert.Equal(t, 12, p.Schedule[0].Month)
	assert.Equal(t, 2026, p.Schedule[0].Year)
	assert.Equal(t, 1, p.Schedule[1].Month)
	assert.Equal(t, 2027, p.Schedule[1].Year)
}

func TestAmortize_RejectsInvalidInputs(t *testing.T) {
	_, err := Amortize(AmortizeParams{
		Balance:        dec("-5"),
		APR:            dec("24"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualRevolving,
		Today:          testToday,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "balance")

	_, err = Amortize(AmortizeParams{
		Balance:        dec("100"),
		APR:            dec("-1"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualRevolving,
		Today:          testToday,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apr")

	_, err = Amortize(AmortizeParams{
		Balance:        dec("100"),
		APR:            dec("10"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualRevolving,
		MaxMonths:      -1,
		Today:          testToday,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxMonths")

	_, err = Amortize(AmortizeParams{
		Balance:        dec("100"),
		APR:            dec("10"),
		MonthlyPayment: dec("200"),
		Kind:           model.AccrualKind("bogus"),
		Today:          testToday,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind")
}

func TestAmortize_CapsAtMaxMonths(t *testing.T) {
	// Payment barely above first-month interest: legal but very slow.
	p, err := Amortize(AmortizeParams{
		Balance:        dec("1000"),
		APR:            dec("20"),
		MonthlyPayment: dec("16.70"),
		Kind:           model.AccrualRevolving,
		MaxMonths:      24,
		Today:          testToday,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, p.TotalMonths)
	assert.True(t, p.Schedule[len(p.Schedule)-1].ClosingBalance.IsPositive())
}
