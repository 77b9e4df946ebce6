package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArchiveRecord is a frozen snapshot of one closed period. Records are
// written once by the close engine and never modified afterwards; the close
// trigger's label guard ensures at most one record per period label.
type ArchiveRecord struct {
	Period        string          `json:"period"` // YYYY-MM, or InitialPeriodLabel
	Incomes       []Entry         `json:"incomes"`
	Expenses      []Entry         `json:"expenses"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
	ArchivedAt    time.Time       `json:"archived_at"`
}
