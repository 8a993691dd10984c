package payoff

import (
	"fmt"
	"strings"

	"github.com/paydown-dev/paydown/internal/model"
)

// ValidationError describes a single structurally invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// joinValidation collapses validation errors into one error, or nil.
func joinValidation(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func validateAmortize(p AmortizeParams, maxMonths int) error {
	var errs []ValidationError
	if p.Balance.IsNegative() {
		errs = append(errs, ValidationError{"balance", "must not be negative"})
	}
	if p.APR.IsNegative() {
		errs = append(errs, ValidationError{"apr", "must not be negative"})
	}
	if maxMonths <= 0 {
		errs = append(errs, ValidationError{"maxMonths", "must be positive"})
	}
	if !p.Kind.Valid() {
		errs = append(errs, ValidationError{"kind", fmt.Sprintf("unknown accrual kind %q", p.Kind)})
	}
	return joinValidation(errs)
}

func validateAccounts(accounts []model.Account, maxMonths int) error {
	var errs []ValidationError
	for _, a := range accounts {
		if a.Balance.IsNegative() {
			errs = append(errs, ValidationError{"balance", fmt.Sprintf("account %q must not be negative", a.Name)})
		}
		if a.APR.IsNegative() {
			errs = append(errs, ValidationError{"apr", fmt.Sprintf("account %q must not be negative", a.Name)})
		}
		if a.MinimumPayment.IsNegative() {
			errs = append(errs, ValidationError{"minimumPayment", fmt.Sprintf("account %q must not be negative", a.Name)})
		}
		if !a.Kind.Valid() {
			errs = append(errs, ValidationError{"kind", fmt.Sprintf("account %q has unknown accrual kind %q", a.Name, a.Kind)})
		}
	}
	if maxMonths <= 0 {
		errs = append(errs, ValidationError{"maxMonths", "must be positive"})
	}
	return joinValidation(errs)
}
