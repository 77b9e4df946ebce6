package domain

import (
	"github.com/shopspring/decimal"
)

// ReportSummary holds the headline totals of a report.
type ReportSummary struct {
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	NetResult      decimal.Decimal `json:"net_result"`
	CarriedBalance decimal.Decimal `json:"carried_balance"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
}

// Report is a self-contained view of the ledger for a date range. It is a
// value assembled from a document snapshot; building it mutates nothing.
type Report struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Company CompanyProfile `json:"company"`

	Summary     ReportSummary      `json:"summary"`
	Incomes     []Entry            `json:"incomes"`
	Expenses    []Entry            `json:"expenses"`
	Breakdown   ExpenseBreakdown   `json:"expense_breakdown"`
	Departments []DepartmentRollup `json:"departments"`
	Taxes       []TaxAssessment    `json:"taxes"`
}

// BuildReport filters the document's entries to [from, to], classifies the
// filtered expenses, rolls up departments and taxes over the same range, and
// combines the carried balance with the range's net result into the final
// balance.
func BuildReport(doc *Document, carried decimal.Decimal, from, to string) *Report {
	rangeFilter := Filter{DateFrom: from, DateTo: to}
	incomes := FilterEntries(doc.Incomes, rangeFilter)
	expenses := FilterEntries(doc.Expenses, rangeFilter)

	totalIncome := SumAmounts(incomes)
	totalExpense := SumAmounts(expenses)
	net := totalIncome.Sub(totalExpense)

	return &Report{
		From:    from,
		To:      to,
		Company: doc.Profile,
		Summary: ReportSummary{
			TotalIncome:    totalIncome,
			TotalExpense:   totalExpense,
			NetResult:      net,
			CarriedBalance: carried,
			FinalBalance:   carried.Add(net),
		},
		Incomes:     incomes,
		Expenses:    expenses,
		Breakdown:   ClassifyExpenses(expenses),
		Departments: RollupDepartments(doc.Departments, incomes, expenses),
		Taxes:       AssessTaxes(doc.TaxRules, totalIncome, net),
	}
}
