package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
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

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		Account:     e.Account,
		Department:  e.Department,
		Client:      e.Client,
		Supplier:    e.Supplier,
		Type:        string(e.Type),
		Invoice:     e.Invoice,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i := range entries {
		result[i] = EntryFromDomain(&entries[i])
	}
	return result
}

// ListEntriesResponse represents a filtered entry list.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// BalanceResponse represents the current corporate balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// CloseResponse represents the outcome of a close trigger.
type CloseResponse struct {
	Closed  bool             `json:"closed"`
	Archive *ArchiveResponse `json:"archive,omitempty"`
}

// ArchiveResponse represents an archived period in API responses.
type ArchiveResponse struct {
	Period        string           `json:"period"`
	Incomes       []*EntryResponse `json:"incomes"`
	Expenses      []*EntryResponse `json:"expenses"`
	EndingBalance decimal.Decimal  `json:"ending_balance"`
	ArchivedAt    time.Time        `json:"archived_at"`
}

// ArchiveFromDomain converts a domain archive record to a response.
func ArchiveFromDomain(a *domain.ArchiveRecord) *ArchiveResponse {
	return &ArchiveResponse{
		Period:        a.Period,
		Incomes:       EntriesFromDomain(a.Incomes),
		Expenses:      EntriesFromDomain(a.Expenses),
		EndingBalance: a.EndingBalance,
		ArchivedAt:    a.ArchivedAt,
	}
}

// ArchivesFromDomain converts domain archive records to responses.
func ArchivesFromDomain(archives []*domain.ArchiveRecord) []*ArchiveResponse {
	result := make([]*ArchiveResponse, len(archives))
	for i, a := range archives {
		result[i] = ArchiveFromDomain(a)
	}
	return result
}
