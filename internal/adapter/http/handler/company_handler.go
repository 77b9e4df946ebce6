package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finvision/corpledger/internal/adapter/http/dto"
	"github.com/finvision/corpledger/internal/domain"
)

// CompanyService defines the behavior needed by CompanyHandler.
type CompanyService interface {
	GetDocument(ctx context.Context) (*domain.Document, error)
	AddAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	AddDepartment(ctx context.Context, dept domain.Department) (*domain.Department, error)
	AddEmployee(ctx context.Context, emp domain.Employee) (*domain.Employee, error)
	AddTaxRule(ctx context.Context, rule domain.TaxRule) (*domain.TaxRule, error)
	SetBudgetTargets(ctx context.Context, budget domain.BudgetTargets) error
	UpdateProfile(ctx context.Context, profile domain.CompanyProfile) error
	AddIncomeCategory(ctx context.Context, category string) error
	AddExpenseCategory(ctx context.Context, category string) error
}

// CompanyHandler handles company-configuration HTTP requests: accounts,
// departments, employees, tax rules, budget targets, profile, categories.
type CompanyHandler struct {
	companyUC CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyUC CompanyService) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC}
}

// CreateAccount adds a bank account.
func (h *CompanyHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.companyUC.AddAccount(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add account", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

// ListAccounts lists bank accounts.
func (h *CompanyHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	doc, err := h.companyUC.GetDocument(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load accounts", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc.Accounts)
}

// CreateDepartment adds a department.
func (h *CompanyHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dept, err := h.companyUC.AddDepartment(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add department", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, dept)
}

// ListDepartments lists departments.
func (h *CompanyHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	doc, err := h.companyUC.GetDocument(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load departments", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc.Departments)
}

// CreateEmployee adds an employee record.
func (h *CompanyHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var emp domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.companyUC.AddEmployee(r.Context(), emp)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add employee", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListEmployees lists employee records.
func (h *CompanyHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	doc, err := h.companyUC.GetDocument(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load employees", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc.Employees)
}

// CreateTaxRule adds a tax rule.
func (h *CompanyHandler) CreateTaxRule(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaxRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rule, err := h.companyUC.AddTaxRule(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add tax rule", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

// ListTaxRules lists tax rules.
func (h *CompanyHandler) ListTaxRules(w http.ResponseWriter, r *http.Request) {
	doc, err := h.companyUC.GetDocument(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load tax rules", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc.TaxRules)
}

// SetBudget replaces the company-wide budget targets.
func (h *CompanyHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var budget domain.BudgetTargets
	if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.companyUC.SetBudgetTargets(r.Context(), budget); err != nil {
		writeError(w, mapDomainError(err), "failed to set budget", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

// SetProfile replaces the company profile.
func (h *CompanyHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.companyUC.UpdateProfile(r.Context(), profile); err != nil {
		writeError(w, mapDomainError(err), "failed to update profile", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// AddIncomeCategory extends the income category vocabulary.
func (h *CompanyHandler) AddIncomeCategory(w http.ResponseWriter, r *http.Request) {
	h.addCategory(w, r, h.companyUC.AddIncomeCategory)
}

// AddExpenseCategory extends the expense category vocabulary.
func (h *CompanyHandler) AddExpenseCategory(w http.ResponseWriter, r *http.Request) {
	h.addCategory(w, r, h.companyUC.AddExpenseCategory)
}

func (h *CompanyHandler) addCategory(w http.ResponseWriter, r *http.Request, add func(context.Context, string) error) {
	var req dto.AddCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "category name required", "")
		return
	}

	if err := add(r.Context(), req.Name); err != nil {
		writeError(w, mapDomainError(err), "failed to add category", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, req)
}
