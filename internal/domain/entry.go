package domain

import (
	"github.com/shopspring/decimal"
)

// ExpenseType tags an expense as fixed or variable. The tag is informational:
// classification is always recomputed from the category (see classify.go).
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "fixed"
	ExpenseVariable ExpenseType = "variable"
)

// Entry is a single income or expense record in the current period.
// Entries are immutable once created; an update is a delete plus a recreate.
type Entry struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // ISO date, YYYY-MM-DD
	Account     string          `json:"account"`
	Department  string          `json:"department"`

	// Income only.
	Client string `json:"client,omitempty"`

	// Expense only.
	Supplier string      `json:"supplier,omitempty"`
	Type     ExpenseType `json:"type,omitempty"`

	// Fiscal document reference (nota fiscal), either kind.
	Invoice string `json:"invoice,omitempty"`
}

// SumAmounts returns the sum of the amounts of all entries.
func SumAmounts(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
