package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
)

// DocumentStore persists the ledger document and its companion markers under
// fixed keys. Implementations expose each call as atomic from the caller's
// point of view; concurrent writers on the same store are last-write-wins.
type DocumentStore interface {
	// LoadDocument returns the current-period document. A store with no
	// document yet bootstraps, persists and returns the default document;
	// an unreadable stored document fails with domain.ErrCorruptDocument.
	LoadDocument(ctx context.Context) (*domain.Document, error)
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// LastClosedPeriod returns the last-closed period label, or "" when no
	// close has ever run.
	LastClosedPeriod(ctx context.Context) (string, error)
	SetLastClosedPeriod(ctx context.Context, label string) error

	// CarriedBalance is the balance carried out of the last close, tracked
	// independently of the account list.
	CarriedBalance(ctx context.Context) (decimal.Decimal, error)
	SetCarriedBalance(ctx context.Context, balance decimal.Decimal) error

	// SaveArchive upserts the archive for a period label. Write-once per
	// label is enforced by the close trigger, not here: a close retried
	// before its label advanced must be able to rewrite the same record.
	SaveArchive(ctx context.Context, record *domain.ArchiveRecord) error
	GetArchive(ctx context.Context, label string) (*domain.ArchiveRecord, error)
	// ListArchives returns all archives, most recent period first.
	ListArchives(ctx context.Context) ([]*domain.ArchiveRecord, error)
}

// IDGenerator generates unique entry IDs.
type IDGenerator interface {
	Generate() string
}
