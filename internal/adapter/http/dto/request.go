package dto

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
	"github.com/finvision/corpledger/internal/usecase"
)

// CreateEntryRequest represents a request to create an income or expense.
type CreateEntryRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Account     string          `json:"account"`
	Department  string          `json:"department"`
	Client      string          `json:"client,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	Type        string          `json:"type,omitempty"`
	Invoice     string          `json:"invoice,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() usecase.AddEntryInput {
	return usecase.AddEntryInput{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        r.Date,
		Account:     r.Account,
		Department:  r.Department,
		Client:      r.Client,
		Supplier:    r.Supplier,
		Type:        domain.ExpenseType(r.Type),
		Invoice:     r.Invoice,
	}
}

// CreateAccountRequest represents a request to add a bank account.
type CreateAccountRequest struct {
	Bank           string          `json:"bank"`
	Branch         string          `json:"branch"`
	Number         string          `json:"number"`
	Type           string          `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToDomain converts to a domain account.
func (r *CreateAccountRequest) ToDomain() domain.Account {
	return domain.Account{
		Bank:           r.Bank,
		Branch:         r.Branch,
		Number:         r.Number,
		Type:           r.Type,
		OpeningBalance: r.OpeningBalance,
	}
}

// CreateDepartmentRequest represents a request to add a department.
type CreateDepartmentRequest struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Owner  string          `json:"owner"`
}

// ToDomain converts to a domain department.
func (r *CreateDepartmentRequest) ToDomain() domain.Department {
	return domain.Department{Name: r.Name, Budget: r.Budget, Owner: r.Owner}
}

// CreateTaxRuleRequest represents a request to add a tax rule.
type CreateTaxRuleRequest struct {
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Periodicity string          `json:"periodicity"`
}

// ToDomain converts to a domain tax rule.
func (r *CreateTaxRuleRequest) ToDomain() domain.TaxRule {
	return domain.TaxRule{Name: r.Name, Rate: r.Rate, Periodicity: r.Periodicity}
}

// AddCategoryRequest represents a request to extend a category vocabulary.
type AddCategoryRequest struct {
	Name string `json:"name"`
}

// FilterFromQuery builds a domain filter from list query parameters.
// Absent parameters impose no constraint.
func FilterFromQuery(query url.Values) (domain.Filter, error) {
	filter := domain.Filter{
		DateFrom:   query.Get("from"),
		DateTo:     query.Get("to"),
		Category:   query.Get("category"),
		Department: query.Get("department"),
	}

	if raw := query.Get("min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.AmountMin = &min
	}
	if raw := query.Get("max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.AmountMax = &max
	}

	return filter, nil
}
