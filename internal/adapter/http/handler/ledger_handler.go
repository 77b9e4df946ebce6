package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/adapter/http/dto"
	"github.com/finvision/corpledger/internal/domain"
	"github.com/finvision/corpledger/internal/infrastructure/metrics"
	"github.com/finvision/corpledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	AddIncome(ctx context.Context, input usecase.AddEntryInput) (*domain.Entry, error)
	AddExpense(ctx context.Context, input usecase.AddEntryInput) (*domain.Entry, error)
	DeleteIncome(ctx context.Context, id string) error
	DeleteExpense(ctx context.Context, id string) error
	ListIncomes(ctx context.Context, filter domain.Filter) ([]domain.Entry, error)
	ListExpenses(ctx context.Context, filter domain.Filter) ([]domain.Entry, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
}

// LedgerHandler handles income/expense entry HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// CreateIncome creates an income entry.
func (h *LedgerHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.AddIncome(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create income", err.Error())
		return
	}

	metrics.EntriesCreated.WithLabelValues("income").Inc()
	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// CreateExpense creates an expense entry.
func (h *LedgerHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.AddExpense(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create expense", err.Error())
		return
	}

	metrics.EntriesCreated.WithLabelValues("expense").Inc()
	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// DeleteIncome deletes an income entry. Deleting an unknown ID succeeds.
func (h *LedgerHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ledgerUC.DeleteIncome(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete income", err.Error())
		return
	}
	metrics.EntriesDeleted.WithLabelValues("income").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// DeleteExpense deletes an expense entry. Deleting an unknown ID succeeds.
func (h *LedgerHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ledgerUC.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete expense", err.Error())
		return
	}
	metrics.EntriesDeleted.WithLabelValues("expense").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// ListIncomes lists income entries matching the filter query parameters.
func (h *LedgerHandler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.FilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	entries, err := h.ledgerUC.ListIncomes(r.Context(), filter)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list incomes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// ListExpenses lists expense entries matching the filter query parameters.
func (h *LedgerHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.FilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	entries, err := h.ledgerUC.ListExpenses(r.Context(), filter)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// Balance returns the current corporate balance.
func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledgerUC.Balance(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}
