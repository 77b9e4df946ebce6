package domain

import (
	"github.com/shopspring/decimal"
)

// SchemaVersion is the version of the persisted document shape. Documents
// stored with a different version fail to load (ErrUnsupportedSchema).
const SchemaVersion = 1

// Address is the company's registered address.
type Address struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// CompanyProfile holds the company registration data.
type CompanyProfile struct {
	LegalName string  `json:"legal_name"`
	TradeName string  `json:"trade_name"`
	TaxID     string  `json:"tax_id"` // CNPJ
	Sector    string  `json:"sector"`
	TaxRegime string  `json:"tax_regime"`
	Size      string  `json:"size"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Website   string  `json:"website,omitempty"`
	OpenedAt  string  `json:"opened_at,omitempty"`
	Address   Address `json:"address"`
}

// Account is a bank account. Accounts are append-only; only the close engine
// mutates an opening balance after creation.
type Account struct {
	Bank           string          `json:"bank"`
	Branch         string          `json:"branch"`
	Number         string          `json:"number"`
	Type           string          `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// Department is a cost center. Entries reference departments by name; the
// name is a denormalized join key, not an enforced foreign key.
type Department struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Owner  string          `json:"owner"`
}

// Employee is a payroll record.
type Employee struct {
	Name       string          `json:"name"`
	TaxID      string          `json:"tax_id"` // CPF
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HiredAt    string          `json:"hired_at"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Status     string          `json:"status"`
	Benefits   string          `json:"benefits,omitempty"`
}

// TaxRule is a configured tax. The calculation basis is selected from the
// rule's name (see AssessTaxes).
type TaxRule struct {
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"` // percentage
	Periodicity string          `json:"periodicity"`
}

// BudgetTargets holds company-wide budget goals.
type BudgetTargets struct {
	RevenueTarget    decimal.Decimal `json:"revenue_target"`
	ExpenseCeiling   decimal.Decimal `json:"expense_ceiling"`
	ProfitTarget     decimal.Decimal `json:"profit_target"`
	EmergencyReserve decimal.Decimal `json:"emergency_reserve"`
}

// Document is the aggregate root: the whole current-period ledger, persisted
// and re-read as one unit. Every mutation is load, modify, save.
type Document struct {
	SchemaVersion int `json:"schema_version"`

	Profile        CompanyProfile `json:"profile"`
	Accounts       []Account      `json:"accounts"`
	PaymentMethods []string       `json:"payment_methods"`
	Employees      []Employee     `json:"employees"`
	Departments    []Department   `json:"departments"`
	TaxRules       []TaxRule      `json:"tax_rules"`
	Budget         BudgetTargets  `json:"budget"`

	IncomeCategories  []string `json:"income_categories"`
	ExpenseCategories []string `json:"expense_categories"`

	// Current-period entries, most recent first.
	Incomes  []Entry `json:"incomes"`
	Expenses []Entry `json:"expenses"`

	// Balance carried into the current period by the last close. Used as the
	// opening total when no bank account exists to carry it.
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// DefaultDocument returns the bootstrap document written on first access.
func DefaultDocument() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Profile: CompanyProfile{
			TaxRegime: "simples",
			Size:      "micro",
			Address:   Address{Country: "Brasil"},
		},
		Accounts:       []Account{},
		PaymentMethods: []string{"Dinheiro", "PIX", "Cartão de Crédito", "Cartão de Débito", "Boleto"},
		Employees:      []Employee{},
		Departments: []Department{
			{Name: "Administrativo", Budget: decimal.Zero},
			{Name: "Operacional", Budget: decimal.Zero},
			{Name: "Financeiro", Budget: decimal.Zero},
		},
		TaxRules: []TaxRule{},
		IncomeCategories: []string{
			"Vendas de Produtos",
			"Prestação de Serviços",
			"Receitas Financeiras",
			"Outras Receitas",
		},
		ExpenseCategories: []string{
			"Folha de Pagamento",
			"Aluguel",
			"Fornecedores",
			"Impostos",
			"Marketing",
			"Utilidades",
			"Manutenção",
			"Despesas Financeiras",
			"Outras Despesas",
		},
		Incomes:  []Entry{},
		Expenses: []Entry{},
	}
}

// OpeningTotal returns the opening balance of the current period: the sum of
// the accounts' opening balances, or the carried period-opening balance when
// no account exists to hold it.
func (d *Document) OpeningTotal() decimal.Decimal {
	if len(d.Accounts) == 0 {
		return d.OpeningBalance
	}
	total := decimal.Zero
	for _, a := range d.Accounts {
		total = total.Add(a.OpeningBalance)
	}
	return total
}

// Balance returns the current corporate balance:
// opening total + period incomes - period expenses.
func (d *Document) Balance() decimal.Decimal {
	return d.OpeningTotal().
		Add(SumAmounts(d.Incomes)).
		Sub(SumAmounts(d.Expenses))
}
