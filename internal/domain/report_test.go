package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildReport(t *testing.T) {
	doc := DefaultDocument()
	doc.Profile.LegalName = "Empresa Teste LTDA"
	doc.Departments = []Department{
		{Name: "Administrativo", Budget: decimal.NewFromInt(1000)},
	}
	doc.TaxRules = []TaxRule{
		{Name: "Imposto sobre Receita", Rate: decimal.NewFromInt(6)},
	}
	doc.Incomes = []Entry{
		{ID: "i2", Date: "2026-01-20", Category: "Vendas de Produtos", Amount: decimal.NewFromInt(3000)},
		{ID: "i1", Date: "2026-01-05", Category: "Prestação de Serviços", Amount: decimal.NewFromInt(2000)},
		{ID: "i0", Date: "2025-12-28", Category: "Vendas de Produtos", Amount: decimal.NewFromInt(9999)},
	}
	doc.Expenses = []Entry{
		{ID: "e1", Date: "2026-01-10", Category: "Aluguel", Department: "Administrativo", Amount: decimal.NewFromInt(2000)},
		{ID: "e0", Date: "2026-02-01", Category: "Marketing", Amount: decimal.NewFromInt(777)},
	}

	report := BuildReport(doc, decimal.NewFromInt(500), "2026-01-01", "2026-01-31")

	// Entries outside the range are excluded everywhere.
	if len(report.Incomes) != 2 {
		t.Fatalf("expected 2 incomes in range, got %d", len(report.Incomes))
	}
	if len(report.Expenses) != 1 {
		t.Fatalf("expected 1 expense in range, got %d", len(report.Expenses))
	}

	if !report.Summary.TotalIncome.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("total income = %s, want 5000", report.Summary.TotalIncome)
	}
	if !report.Summary.TotalExpense.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("total expense = %s, want 2000", report.Summary.TotalExpense)
	}
	if !report.Summary.NetResult.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("net result = %s, want 3000", report.Summary.NetResult)
	}
	if !report.Summary.CarriedBalance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("carried balance = %s, want 500", report.Summary.CarriedBalance)
	}
	if !report.Summary.FinalBalance.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("final balance = %s, want 3500", report.Summary.FinalBalance)
	}

	// Breakdown and rollups see only the filtered entries.
	if !report.Breakdown.Fixed.Total.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("fixed total = %s, want 2000", report.Breakdown.Fixed.Total)
	}
	if !report.Breakdown.Variable.Total.IsZero() {
		t.Errorf("variable total = %s, want 0", report.Breakdown.Variable.Total)
	}

	if len(report.Departments) != 1 {
		t.Fatalf("expected 1 department rollup, got %d", len(report.Departments))
	}
	if !report.Departments[0].Expense.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("department expense = %s, want 2000", report.Departments[0].Expense)
	}

	if len(report.Taxes) != 1 {
		t.Fatalf("expected 1 tax assessment, got %d", len(report.Taxes))
	}
	if !report.Taxes[0].AmountDue.Equal(decimal.NewFromInt(300)) {
		t.Errorf("tax due = %s, want 300 (6%% of 5000)", report.Taxes[0].AmountDue)
	}

	if report.Company.LegalName != "Empresa Teste LTDA" {
		t.Errorf("company legal name = %q", report.Company.LegalName)
	}
	if report.From != "2026-01-01" || report.To != "2026-01-31" {
		t.Errorf("range = [%s, %s]", report.From, report.To)
	}
}

func TestBuildReport_DoesNotMutateDocument(t *testing.T) {
	doc := DefaultDocument()
	doc.Incomes = []Entry{
		{ID: "i1", Date: "2026-01-05", Amount: decimal.NewFromInt(100)},
	}

	BuildReport(doc, decimal.Zero, "2026-01-01", "2026-01-31")

	if len(doc.Incomes) != 1 || doc.Incomes[0].ID != "i1" {
		t.Error("document was mutated by report build")
	}
}

func TestBuildReport_EmptyRange(t *testing.T) {
	doc := DefaultDocument()
	doc.Incomes = []Entry{
		{ID: "i1", Date: "2026-01-05", Amount: decimal.NewFromInt(100)},
	}

	report := BuildReport(doc, decimal.NewFromInt(250), "2026-03-01", "2026-03-31")

	if len(report.Incomes) != 0 {
		t.Errorf("expected no incomes, got %d", len(report.Incomes))
	}
	if !report.Summary.NetResult.IsZero() {
		t.Errorf("net result = %s, want 0", report.Summary.NetResult)
	}
	if !report.Summary.FinalBalance.Equal(decimal.NewFromInt(250)) {
		t.Errorf("final balance = %s, want carried 250", report.Summary.FinalBalance)
	}
}
