package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
)

// LedgerUseCase is the single point of mutation for the ledger document.
// Every operation reads the whole document, mutates it in memory and writes
// it back as one unit.
type LedgerUseCase struct {
	store DocumentStore
	idGen IDGenerator
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(store DocumentStore, idGen IDGenerator) *LedgerUseCase {
	return &LedgerUseCase{
		store: store,
		idGen: idGen,
	}
}

// AddEntryInput represents input for creating an income or expense entry.
type AddEntryInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        string
	Account     string
	Department  string
	Client      string             // income only
	Supplier    string             // expense only
	Type        domain.ExpenseType // expense only; inferred from category when empty
	Invoice     string
}

// AddIncome creates an income entry and prepends it to the current period.
func (uc *LedgerUseCase) AddIncome(ctx context.Context, input AddEntryInput) (*domain.Entry, error) {
	entry := domain.Entry{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
		Account:     input.Account,
		Department:  input.Department,
		Client:      input.Client,
		Invoice:     input.Invoice,
	}
	if err := domain.ValidateEntry(&entry); err != nil {
		return nil, err
	}

	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()
	doc.Incomes = append([]domain.Entry{entry}, doc.Incomes...)

	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddExpense creates an expense entry and prepends it to the current period.
func (uc *LedgerUseCase) AddExpense(ctx context.Context, input AddEntryInput) (*domain.Entry, error) {
	entry := domain.Entry{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
		Account:     input.Account,
		Department:  input.Department,
		Supplier:    input.Supplier,
		Type:        input.Type,
		Invoice:     input.Invoice,
	}
	if entry.Type == "" {
		entry.Type = domain.ClassifyExpenseType(entry.Category)
	}
	if err := domain.ValidateEntry(&entry); err != nil {
		return nil, err
	}

	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()
	doc.Expenses = append([]domain.Entry{entry}, doc.Expenses...)

	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteIncome removes an income entry by ID. Deleting an absent ID is a
// no-op, not an error.
func (uc *LedgerUseCase) DeleteIncome(ctx context.Context, id string) error {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return err
	}
	doc.Incomes = removeEntry(doc.Incomes, id)
	return uc.store.SaveDocument(ctx, doc)
}

// DeleteExpense removes an expense entry by ID. Deleting an absent ID is a
// no-op, not an error.
func (uc *LedgerUseCase) DeleteExpense(ctx context.Context, id string) error {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return err
	}
	doc.Expenses = removeEntry(doc.Expenses, id)
	return uc.store.SaveDocument(ctx, doc)
}

func removeEntry(entries []domain.Entry, id string) []domain.Entry {
	result := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			result = append(result, e)
		}
	}
	return result
}

// ListIncomes returns the current-period income entries matching the filter,
// most recent first.
func (uc *LedgerUseCase) ListIncomes(ctx context.Context, filter domain.Filter) ([]domain.Entry, error) {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterEntries(doc.Incomes, filter), nil
}

// ListExpenses returns the current-period expense entries matching the
// filter, most recent first.
func (uc *LedgerUseCase) ListExpenses(ctx context.Context, filter domain.Filter) ([]domain.Entry, error) {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterEntries(doc.Expenses, filter), nil
}

// Balance returns the current corporate balance.
func (uc *LedgerUseCase) Balance(ctx context.Context) (decimal.Decimal, error) {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return doc.Balance(), nil
}

// GetDocument returns the full current-period document.
func (uc *LedgerUseCase) GetDocument(ctx context.Context) (*domain.Document, error) {
	return uc.store.LoadDocument(ctx)
}

// AddAccount appends a bank account. Accounts are never deleted.
func (uc *LedgerUseCase) AddAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := domain.ValidateAccount(&account); err != nil {
		return nil, err
	}
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	doc.Accounts = append(doc.Accounts, account)
	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &account, nil
}

// AddDepartment appends a department.
func (uc *LedgerUseCase) AddDepartment(ctx context.Context, dept domain.Department) (*domain.Department, error) {
	if err := domain.ValidateDepartment(&dept); err != nil {
		return nil, err
	}
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	doc.Departments = append(doc.Departments, dept)
	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &dept, nil
}

// AddEmployee appends an employee record.
func (uc *LedgerUseCase) AddEmployee(ctx context.Context, emp domain.Employee) (*domain.Employee, error) {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	doc.Employees = append(doc.Employees, emp)
	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &emp, nil
}

// AddTaxRule appends a tax rule.
func (uc *LedgerUseCase) AddTaxRule(ctx context.Context, rule domain.TaxRule) (*domain.TaxRule, error) {
	if err := domain.ValidateTaxRule(&rule); err != nil {
		return nil, err
	}
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	doc.TaxRules = append(doc.TaxRules, rule)
	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &rule, nil
}

// SetBudgetTargets replaces the company-wide budget targets.
func (uc *LedgerUseCase) SetBudgetTargets(ctx context.Context, budget domain.BudgetTargets) error {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return err
	}
	doc.Budget = budget
	return uc.store.SaveDocument(ctx, doc)
}

// UpdateProfile replaces the company profile.
func (uc *LedgerUseCase) UpdateProfile(ctx context.Context, profile domain.CompanyProfile) error {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return err
	}
	doc.Profile = profile
	return uc.store.SaveDocument(ctx, doc)
}

// AddIncomeCategory appends a category to the income vocabulary. Adding an
// existing category is a no-op.
func (uc *LedgerUseCase) AddIncomeCategory(ctx context.Context, category string) error {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return err
	}
	doc.IncomeCategories = appendCategory(doc.IncomeCategories, category)
	return uc.store.SaveDocument(ctx, doc)
}

// AddExpenseCategory appends a category to the expense vocabulary. Adding an
// existing category is a no-op.
func (uc *LedgerUseCase) AddExpenseCategory(ctx context.Context, category string) error {
	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return err
	}
	doc.ExpenseCategories = appendCategory(doc.ExpenseCategories, category)
	return uc.store.SaveDocument(ctx, doc)
}

func appendCategory(categories []string, category string) []string {
	for _, c := range categories {
		if c == category {
			return categories
		}
	}
	return append(categories, category)
}
