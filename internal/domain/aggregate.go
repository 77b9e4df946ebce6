package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DepartmentRollup is the per-department income/expense summary for a range.
type DepartmentRollup struct {
	Name        string          `json:"name"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Net         decimal.Decimal `json:"net"`
	Budget      decimal.Decimal `json:"budget"`
	Utilization decimal.Decimal `json:"utilization"` // expense / budget, percent
}

// RollupDepartments sums the given entries per configured department,
// joining on the entry's department name. Utilization is zero when the
// budget ceiling is zero.
func RollupDepartments(departments []Department, incomes, expenses []Entry) []DepartmentRollup {
	rollups := make([]DepartmentRollup, 0, len(departments))
	for _, dept := range departments {
		income := decimal.Zero
		for _, e := range incomes {
			if e.Department == dept.Name {
				income = income.Add(e.Amount)
			}
		}
		expense := decimal.Zero
		for _, e := range expenses {
			if e.Department == dept.Name {
				expense = expense.Add(e.Amount)
			}
		}

		utilization := decimal.Zero
		if dept.Budget.IsPositive() {
			utilization = expense.Div(dept.Budget).Mul(oneHundred)
		}

		rollups = append(rollups, DepartmentRollup{
			Name:        dept.Name,
			Income:      income,
			Expense:     expense,
			Net:         income.Sub(expense),
			Budget:      dept.Budget,
			Utilization: utilization,
		})
	}
	return rollups
}

// TaxAssessment is a tax rule applied to its computed basis.
type TaxAssessment struct {
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	Basis     decimal.Decimal `json:"basis"`
	AmountDue decimal.Decimal `json:"amount_due"`
}

// AssessTaxes computes the basis and amount due for every rule. The basis is
// selected from the rule's name: a name mentioning revenue or billing taxes
// total revenue, one mentioning profit taxes the non-negative part of the
// net result, and anything else falls back to total revenue so that no rule
// is silently skipped.
func AssessTaxes(rules []TaxRule, totalRevenue, netResult decimal.Decimal) []TaxAssessment {
	profitBasis := netResult
	if profitBasis.IsNegative() {
		profitBasis = decimal.Zero
	}

	assessments := make([]TaxAssessment, 0, len(rules))
	for _, rule := range rules {
		name := strings.ToLower(rule.Name)

		var basis decimal.Decimal
		switch {
		case strings.Contains(name, "receita") || strings.Contains(name, "faturamento"):
			basis = totalRevenue
		case strings.Contains(name, "lucro"):
			basis = profitBasis
		default:
			basis = totalRevenue
		}

		assessments = append(assessments, TaxAssessment{
			Name:      rule.Name,
			Rate:      rule.Rate,
			Basis:     basis,
			AmountDue: basis.Mul(rule.Rate).Div(oneHundred),
		})
	}
	return assessments
}
