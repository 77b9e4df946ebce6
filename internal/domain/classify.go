package domain

import (
	"github.com/shopspring/decimal"
)

// Categories whose expenses are fixed costs. Everything else is variable.
var fixedExpenseCategories = map[string]bool{
	"Folha de Pagamento": true,
	"Aluguel":            true,
	"Impostos":           true,
}

// IsFixedExpense reports whether a category belongs to the fixed-cost set.
// Classification is a pure function of the category: stored type tags are
// never consulted, so a category edit reclassifies on the next read.
func IsFixedExpense(category string) bool {
	return fixedExpenseCategories[category]
}

// ClassifyExpenseType returns the type tag matching an expense category.
func ClassifyExpenseType(category string) ExpenseType {
	if IsFixedExpense(category) {
		return ExpenseFixed
	}
	return ExpenseVariable
}

// ExpenseClass is one side of the fixed/variable split.
type ExpenseClass struct {
	Entries    []Entry         `json:"entries"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"` // of the combined total
}

// ExpenseBreakdown is the full fixed/variable partition of a set of expenses.
type ExpenseBreakdown struct {
	Fixed    ExpenseClass    `json:"fixed"`
	Variable ExpenseClass    `json:"variable"`
	Total    decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// ClassifyExpenses partitions expenses into fixed and variable classes and
// computes totals and percentages. Both percentages are zero when the
// combined total is zero.
func ClassifyExpenses(expenses []Entry) ExpenseBreakdown {
	fixed := ExpenseClass{Entries: []Entry{}, Total: decimal.Zero, Percentage: decimal.Zero}
	variable := ExpenseClass{Entries: []Entry{}, Total: decimal.Zero, Percentage: decimal.Zero}

	for _, e := range expenses {
		if IsFixedExpense(e.Category) {
			fixed.Entries = append(fixed.Entries, e)
			fixed.Total = fixed.Total.Add(e.Amount)
		} else {
			variable.Entries = append(variable.Entries, e)
			variable.Total = variable.Total.Add(e.Amount)
		}
	}

	total := fixed.Total.Add(variable.Total)
	if total.IsPositive() {
		fixed.Percentage = fixed.Total.Div(total).Mul(oneHundred)
		variable.Percentage = variable.Total.Div(total).Mul(oneHundred)
	}

	return ExpenseBreakdown{Fixed: fixed, Variable: variable, Total: total}
}
