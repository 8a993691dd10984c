// Package scenario loads and saves the YAML files the CLI feeds to the
// projection engine. Monetary values are kept as strings in the file and
// parsed to decimals on load, so files stay exact and hand-editable.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/paydown-dev/paydown/internal/model"
)

// Scenario is the top-level structure of a scenario YAML file.
type Scenario struct {
	Accounts []Account `yaml:"accounts,omitempty"`
	Goals    []Goal    `yaml:"goals,omitempty"`

	// Shared simulation parameters.
	MonthlyPayment      string `yaml:"monthly_payment,omitempty"`
	ExtraMonthlyPayment string `yaml:"extra_monthly_payment,omitempty"`
	MonthlyContribution string `yaml:"monthly_contribution,omitempty"`

	// Inputs to savings recommendations.
	AvailableMonthlyIncome string `yaml:"available_monthly_income,omitempty"`
	CurrentDebtPayments    string `yaml:"current_debt_payments,omitempty"`

	// Today anchors all simulated dates ("2006-01-02"). Empty means the
	// caller decides (the CLI uses the wall clock).
	Today string `yaml:"today,omitempty"`
}

// Account is one debt account in a scenario file.
type Account struct {
	ID             string `yaml:"id,omitempty"` // uuid; generated when absent
	Name           string `yaml:"name"`
	Balance        string `yaml:"balance"`
	APR            string `yaml:"apr"`
	MinimumPayment string `yaml:"minimum_payment,omitempty"`
	Kind           string `yaml:"kind"` // revolving or installment
}

// Goal is one savings goal in a scenario file.
type Goal struct {
	ID            string `yaml:"id,omitempty"`
	Name          string `yaml:"name"`
	CurrentAmount string `yaml:"current_amount"`
	TargetAmount  string `yaml:"target_amount"`
	TargetDate    string `yaml:"target_date"` // "2006-01-02"
	CreatedAt     string `yaml:"created_at,omitempty"`
}

// Load reads a scenario YAML file from disk.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Save writes a Scenario to a YAML file.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}

// ModelAccounts converts the file's accounts to engine snapshots, parsing
// amounts and generating IDs where the file omits them.
func (s *Scenario) ModelAccounts() ([]model.Account, error) {
	accounts := make([]model.Account, 0, len(s.Accounts))
	for i, a := range s.Accounts {
		id, err := parseID(a.ID)
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i+1, a.Name, err)
		}
		balance, err := parseAmount("balance", a.Balance)
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i+1, a.Name, err)
		}
		apr, err := parseAmount("apr", a.APR)
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i+1, a.Name, err)
		}
		minPayment := decimal.Zero
		if a.MinimumPayment != "" {
			minPayment, err = parseAmount("minimum_payment", a.MinimumPayment)
			if err != nil {
				return nil, fmt.Errorf("account %d (%s): %w", i+1, a.Name, err)
			}
		}
		kind := model.AccrualKind(a.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("account %d (%s): kind must be %q or %q, got %q",
				i+1, a.Name, model.AccrualRevolving, model.AccrualInstallment, a.Kind)
		}
		accounts = append(accounts, model.Account{
			ID:             id,
			Name:           a.Name,
			Balance:        balance,
			APR:            apr,
			MinimumPayment: minPayment,
			Kind:           kind,
		})
	}
	return accounts, nil
}

// ModelGoals converts the file's goals to engine snapshots.
func (s *Scenario) ModelGoals() ([]model.SavingsGoal, error) {
	goals := make([]model.SavingsGoal, 0, len(s.Goals))
	for i, g := range s.Goals {
		id, err := parseID(g.ID)
		if err != nil {
			return nil, fmt.Errorf("goal %d (%s): %w", i+1, g.Name, err)
		}
		current, err := parseAmount("current_amount", g.CurrentAmount)
		if err != nil {
			return nil, fmt.Errorf("goal %d (%s): %w", i+1, g.Name, err)
		}
		target, err := parseAmount("target_amount", g.TargetAmount)
		if err != nil {
			return nil, fmt.Errorf("goal %d (%s): %w", i+1, g.Name, err)
		}
		targetDate, err := parseDate("target_date", g.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("goal %d (%s): %w", i+1, g.Name, err)
		}
		createdAt := time.Time{}
		if g.CreatedAt != "" {
			createdAt, err = parseDate("created_at", g.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("goal %d (%s): %w", i+1, g.Name, err)
			}
		}
		goals = append(goals, model.SavingsGoal{
			ID:            id,
			Name:          g.Name,
			CurrentAmount: current,
			TargetAmount:  target,
			TargetDate:    targetDate,
			CreatedAt:     createdAt,
		})
	}
	return goals, nil
}

// Amount parses one of the scenario's scalar money fields, defaulting to
// zero when the field is empty.
func (s *Scenario) Amount(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseAmount(name, value)
}

// ResolveToday returns the scenario's anchor date, or the fallback when the
// file does not pin one.
func (s *Scenario) ResolveToday(fallback time.Time) (time.Time, error) {
	if s.Today == "" {
		return fallback, nil
	}
	return parseDate("today", s.Today)
}

func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("id %q: %w", raw, err)
	}
	return id, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, raw, err)
	}
	return d, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", field, raw, err)
	}
	return t, nil
}

// Example returns a starter scenario for `paydown init`.
func Example() *Scenario {
	return &Scenario{
		Accounts: []Account{
			{Name: "Visa", Balance: "5000.00", APR: "24.99", MinimumPayment: "100.00", Kind: string(model.AccrualRevolving)},
			{Name: "Car loan", Balance: "12000.00", APR: "6.5", MinimumPayment: "250.00", Kind: string(model.AccrualInstallment)},
		},
		Goals: []Goal{
			{Name: "Emergency fund", CurrentAmount: "1000.00", TargetAmount: "5000.00", TargetDate: "2027-09-01"},
		},
		MonthlyPayment:         "200.00",
		ExtraMonthlyPayment:    "150.00",
		MonthlyContribution:    "250.00",
		AvailableMonthlyIncome: "4000.00",
		CurrentDebtPayments:    "350.00",
	}
}
